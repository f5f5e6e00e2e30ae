package loam

// UseCaseMetadata is the front matter of a use-case document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type UseCaseMetadata struct {
	Title  string   `json:"title" mapstructure:"title"`
	Actors []string `json:"actors" mapstructure:"actors"`
	// Order sorts use cases. Ties fall back to the document ID.
	Order int `json:"order" mapstructure:"order"`
}
