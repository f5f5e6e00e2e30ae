/*
Package diagram models use-case diagrams and turns them into portals.

A diagram is a graph of actors, use cases and associations between them. Each
use case becomes one button of the generated portal; the actors associated with
it form the button's visibility set.

	d := diagram.New()
	admin := d.InsertActor(diagram.Actor{Name: "Administrator"})
	ban := d.InsertUseCase(diagram.UseCase{Title: "Ban subscriber"})
	if err := d.InsertAssociation(admin, ban); err != nil {
		return err
	}

	portal := diagram.BuildPortal(d, diagram.ActionsByTitle(map[string]func(){
		"Ban subscriber": banSubscriber,
	}))
*/
package diagram
