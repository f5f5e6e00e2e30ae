package diagram

import "fmt"

// AssociationErrorKind tells which side of an association is missing.
type AssociationErrorKind int

const (
	NonexistentActor AssociationErrorKind = iota
	NonexistentUseCase
)

// AssociationError describes an invalid association.
type AssociationError struct {
	Kind      AssociationErrorKind
	ActorID   ActorID
	UseCaseID UseCaseID
}

func (e *AssociationError) Error() string {
	switch e.Kind {
	case NonexistentActor:
		return fmt.Sprintf("invalid association: nonexistent actor %d", e.ActorID)
	default:
		return fmt.Sprintf("invalid association: nonexistent use case %d", e.UseCaseID)
	}
}
