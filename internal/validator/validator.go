package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/butterfly/pkg/diagram"
)

// Finding is a diagram smell that does not break the invariants but
// usually points at a modelling mistake.
type Finding struct {
	Kind    string
	Subject string
}

func (f Finding) String() string {
	switch f.Kind {
	case KindOrphanUseCase:
		return fmt.Sprintf("Use case '%s' has no actor and is never rendered", f.Subject)
	case KindIdleActor:
		return fmt.Sprintf("Actor '%s' has no use case and always sees an empty portal", f.Subject)
	case KindDuplicateTitle:
		return fmt.Sprintf("Title '%s' is used by more than one use case", f.Subject)
	default:
		return f.Kind + ": " + f.Subject
	}
}

const (
	KindOrphanUseCase  = "orphan_use_case"
	KindIdleActor      = "idle_actor"
	KindDuplicateTitle = "duplicate_title"
)

// Lint reports findings in declaration order: use cases first, then actors.
func Lint(d *diagram.Diagram) []Finding {
	var findings []Finding

	used := make(map[diagram.ActorID]bool)
	for _, assoc := range d.Associations() {
		used[assoc.Actor] = true
	}

	seen := make(map[string]int)
	for _, uc := range d.UseCases() {
		title := uc.UseCase.Title
		seen[title]++
		if seen[title] == 2 {
			findings = append(findings, Finding{Kind: KindDuplicateTitle, Subject: title})
		}
		if len(d.ActorsOf(uc.ID)) == 0 {
			findings = append(findings, Finding{Kind: KindOrphanUseCase, Subject: title})
		}
	}

	for _, a := range d.Actors() {
		if !used[a.ID] {
			findings = append(findings, Finding{Kind: KindIdleActor, Subject: a.Actor.Name})
		}
	}

	return findings
}

// ValidateDiagram checks the invariants and, when strict, fails on any
// finding as well.
func ValidateDiagram(d *diagram.Diagram, strict bool) error {
	if err := d.CheckInvariants(); err != nil {
		return err
	}
	if !strict {
		return nil
	}

	var errors []string
	for _, f := range Lint(d) {
		errors = append(errors, f.String())
	}
	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}
