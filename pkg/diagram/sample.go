package diagram

// Forum returns a small moderation diagram: administrators may ban or create
// subscribers and post comments, subscribers may create subscribers and post
// comments. It backs the CLI demo mode.
func Forum() *Diagram {
	d := New()
	admin := d.InsertActor(Actor{Name: "Administrator"})
	subscriber := d.InsertActor(Actor{Name: "Subscriber"})
	ban := d.InsertUseCase(UseCase{Title: "Ban subscriber"})
	create := d.InsertUseCase(UseCase{Title: "Create subscriber"})
	post := d.InsertUseCase(UseCase{Title: "Post comment"})

	for _, assoc := range []Association{
		{admin, ban},
		{admin, create},
		{admin, post},
		{subscriber, create},
		{subscriber, post},
	} {
		// identifiers come from the inserts above
		_ = d.InsertAssociation(assoc.Actor, assoc.UseCase)
	}
	return d
}
