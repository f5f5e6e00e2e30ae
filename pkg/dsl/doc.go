/*
Package dsl provides a Go DSL for building use-case diagrams in code.

It is the programmatic counterpart of the YAML and Loam loaders: a fluent
builder that is handy for tests, embedding and generated programs.

Example usage:

	b := dsl.New()
	b.Actor("Administrator")
	b.Actor("Subscriber")

	b.UseCase("Ban subscriber").For("Administrator")
	b.UseCase("Post comment").For("Administrator", "Subscriber")

	// The result can be used as a ports.DiagramLoader
	loader, err := b.Build()
*/
package dsl
