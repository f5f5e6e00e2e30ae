package butterfly

import _ "embed"

// Version is the release of the butterfly module, read from the VERSION file.
//
//go:embed VERSION
var Version string
