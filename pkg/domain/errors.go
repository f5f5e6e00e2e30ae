package domain

import "errors"

// ErrElementNotVisible is returned by hosts when a click targets a button
// that is not part of the current view.
var ErrElementNotVisible = errors.New("element not visible to current actor")
