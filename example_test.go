package butterfly_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/butterfly"
	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/dsl"
	"github.com/aretw0/butterfly/pkg/ports"
)

// ExampleNew mounts a portal built with the DSL and presses a button.
func ExampleNew() {
	// 1. Declare the diagram
	b := dsl.New().Actors("Librarian", "Reader")
	b.UseCase("Add book").For("Librarian")
	b.UseCase("Borrow book").For("Librarian", "Reader")

	d, err := b.Diagram()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Bind each use case to a function
	portal := diagram.BuildPortal(d, diagram.ActionsByTitle(map[string]func(){
		"Add book":    func() { fmt.Println("book added") },
		"Borrow book": func() { fmt.Println("book borrowed") },
	}))

	// 3. Mount it for a reader
	ctx := context.Background()
	engine := butterfly.New(portal, domain.NewActor("Reader"), ports.Invoke())
	fmt.Println(engine.Render(ctx).Labels())

	// 4. Press the only visible button, then switch actors
	if err := engine.Click(ctx, 1); err != nil {
		log.Fatal(err)
	}
	engine.SetActor(ctx, domain.NewActor("Librarian"))
	fmt.Println(engine.Render(ctx).Labels())

	// Output:
	// [Borrow book]
	// book borrowed
	// [Add book Borrow book]
}
