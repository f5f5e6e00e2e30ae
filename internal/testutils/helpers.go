package testutils

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"
)

// SetupDiagramRepo initializes a Loam repository in a fresh temp dir and
// saves one document per entry of docs (ID to raw Markdown with front
// matter). It returns the absolute directory and the repository, and fails
// the test on any error.
func SetupDiagramRepo(t *testing.T, docs map[string]string, opts ...loam.Option) (string, core.Repository) {
	t.Helper()

	dir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err)

	repo, err := loam.Init(dir, opts...)
	require.NoError(t, err, "failed to init loam repo")

	ctx := context.Background()
	for id, content := range docs {
		require.NoError(t, repo.Save(ctx, core.Document{ID: id, Content: content}), "failed to save %s", id)
	}
	return dir, repo
}
