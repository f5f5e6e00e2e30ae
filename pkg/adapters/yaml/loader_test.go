package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forumYAML = `
actors: [Administrator, Subscriber]
use_cases:
  - title: Ban subscriber
    actors: [Administrator]
  - title: Create subscriber
    actors: [Administrator, Subscriber]
  - title: Post comment
    actors: [Administrator, Subscriber]
`

func TestLoader_Contract(t *testing.T) {
	t.Run("Bytes", func(t *testing.T) {
		tests.DiagramLoaderContractTest(t, NewFromBytes([]byte(forumYAML)), diagram.Forum())
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "forum.yaml")
		require.NoError(t, os.WriteFile(path, []byte(forumYAML), 0o644))
		tests.DiagramLoaderContractTest(t, NewLoader(path), diagram.Forum())
	})
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"Malformed", "actors: [", "failed to parse"},
		{"UnknownKey", "actors: [A]\nroles: [B]", "failed to decode"},
		{"UndeclaredActor", "actors: [A]\nuse_cases:\n  - title: X\n    actors: [B]", "nonexistent actor"},
		{"DuplicateActor", "actors: [A, A]", "duplicate actor"},
		{"EmptyTitle", "actors: [A]\nuse_cases:\n  - actors: [A]", "title must not be empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParse_UndeclaredActorIsAssociationError(t *testing.T) {
	_, err := Parse([]byte("actors: [A]\nuse_cases:\n  - title: X\n    actors: [B]"))

	var assocErr *diagram.AssociationError
	require.ErrorAs(t, err, &assocErr)
	assert.Equal(t, diagram.NonexistentActor, assocErr.Kind)
}

func TestParse_Empty(t *testing.T) {
	d, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, d.Actors())
	assert.Empty(t, d.UseCases())
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).LoadDiagram(context.Background())
	assert.Error(t, err)
}
