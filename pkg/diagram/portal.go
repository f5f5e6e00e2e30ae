package diagram

import "github.com/aretw0/butterfly/pkg/domain"

// BuildPortal generates a portal with one button per use case, in use-case
// order. The button label is the use-case title, its visibility set holds the
// associated actors and its action is produced by bind.
func BuildPortal[E any](d *Diagram, bind func(UseCase) E) domain.Portal[E] {
	entries := d.UseCases()
	buttons := make([]domain.Button[E], 0, len(entries))
	for _, entry := range entries {
		buttons = append(buttons, domain.NewButton(
			entry.UseCase.Title,
			AllowedActors(d, entry.ID),
			bind(entry.UseCase),
		))
	}
	return domain.NewPortal(buttons...)
}

// AllowedActors returns the visibility set of a use case.
func AllowedActors(d *Diagram, useCaseID UseCaseID) domain.ActorSet {
	actors := d.ActorsOf(useCaseID)
	ids := make([]domain.Actor, len(actors))
	for i, a := range actors {
		ids[i] = domain.NewActor(a.Name)
	}
	return domain.NewActorSet(ids...)
}

// ActionsByTitle returns a binder that looks actions up by use-case title.
// Titles missing from actions are bound to the zero value of E.
func ActionsByTitle[E any](actions map[string]E) func(UseCase) E {
	return func(uc UseCase) E {
		return actions[uc.Title]
	}
}

// TitleAction binds every use case to its own title. It is the binder used
// when effects are resolved by name (see the registry package).
func TitleAction(uc UseCase) string {
	return uc.Title
}
