// Package codegen emits Go source for a portal generated from a use-case
// diagram. The output depends only on the domain package and is formatted
// with go/format.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/aretw0/butterfly/pkg/diagram"
)

const domainImport = "github.com/aretw0/butterfly/pkg/domain"

// Generate writes a complete Go file defining the portal called name in
// package pkg, and returns it gofmt-ed.
func Generate(d *diagram.Diagram, pkg, name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := GenerateHeader(&buf, pkg); err != nil {
		return nil, err
	}
	if err := GenerateImports(&buf); err != nil {
		return nil, err
	}
	if err := GeneratePortalDefinition(&buf, d, name); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// GenerateHeader writes the generated-code banner and the package clause.
func GenerateHeader(w io.Writer, pkg string) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("invalid package name %q", pkg)
	}
	_, err := fmt.Fprintf(w, "// Code generated by butterfly generate. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	return err
}

// GenerateImports writes the imports needed by the portal definition.
func GenerateImports(w io.Writer) error {
	_, err := fmt.Fprintf(w, "import %q\n\n", domainImport)
	return err
}

// GeneratePortalDefinition writes the actions struct and the portal
// constructor. Use cases are emitted in diagram order, actors sorted.
func GeneratePortalDefinition(w io.Writer, d *diagram.Diagram, name string) error {
	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return fmt.Errorf("invalid portal name %q: must be an exported Go identifier", name)
	}
	actionsType := name + "Actions"
	useCases := d.UseCases()
	fields := FieldNames(useCases)

	ew := &errWriter{w: w}

	ew.printf("// %s holds the effect bound to each use case of %s.\n", actionsType, name)
	if len(useCases) == 0 {
		ew.printf("type %s[E any] struct{}\n\n", actionsType)
	} else {
		ew.printf("type %s[E any] struct {\n", actionsType)
		for i, entry := range useCases {
			ew.printf("\t%s E // %s\n", fields[i], strconv.Quote(entry.UseCase.Title))
		}
		ew.printf("}\n\n")
	}

	ew.printf("// %s builds the portal generated from the use-case diagram.\n", name)
	ew.printf("func %s[E any](actions %s[E]) domain.Portal[E] {\n", name, actionsType)
	if len(useCases) == 0 {
		ew.printf("\treturn domain.NewPortal[E]()\n}\n")
		return ew.err
	}
	ew.printf("\treturn domain.NewPortal[E](\n")
	for i, entry := range useCases {
		ew.printf("\t\tdomain.NewButton(%s,\n", strconv.Quote(entry.UseCase.Title))
		ew.printf("\t\t\tdomain.NewActorSet(")
		for j, actor := range diagram.AllowedActors(d, entry.ID).Actors() {
			if j > 0 {
				ew.printf(", ")
			}
			ew.printf("%s", strconv.Quote(actor.String()))
		}
		ew.printf("),\n")
		ew.printf("\t\t\tactions.%s),\n", fields[i])
	}
	ew.printf("\t)\n}\n")

	return ew.err
}

// FieldNames derives one exported identifier per use case from its title.
// Collisions get the smallest free numeric suffix, starting at 2, in diagram
// order. A suffixed name never clashes with one derived from another title.
func FieldNames(useCases []diagram.UseCaseEntry) []string {
	names := make([]string, len(useCases))
	taken := make(map[string]bool, len(useCases))
	for i, entry := range useCases {
		base := identifier(entry.UseCase.Title)
		name := base
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s%d", base, n)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

func identifier(title string) string {
	var sb strings.Builder
	for _, word := range strings.FieldsFunc(title, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		runes := []rune(word)
		sb.WriteRune(unicode.ToUpper(runes[0]))
		sb.WriteString(string(runes[1:]))
	}
	id := sb.String()
	if id == "" || !token.IsExported(id) {
		id = "UseCase" + id
	}
	return id
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
