package dsl

// UseCaseBuilder provides a fluent API for configuring a use case.
type UseCaseBuilder struct {
	title  string
	actors []string
}

// For associates the use case with the named actors.
func (u *UseCaseBuilder) For(actors ...string) *UseCaseBuilder {
	u.actors = append(u.actors, actors...)
	return u
}

// Title returns the use case title.
func (u *UseCaseBuilder) Title() string {
	return u.title
}
