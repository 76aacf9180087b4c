package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"beanlint.dev/pkg/beanlint/internal/adapter"
	m "beanlint.dev/pkg/beanlint/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o750))
}

// newProject lays out an empty conventional project in a temp dir.
func newProject(t *testing.T, name string) m.Project {
	t.Helper()

	root := t.TempDir()
	mkdir(t, filepath.Join(root, "src", "main", "java"))
	mkdir(t, filepath.Join(root, "src", "test", "java"))

	return m.Project{Root: m.Path(root), Name: name}
}

func newFS() adapter.SourceFSAdapter {
	return adapter.NewLocalSourceFSAdapter()
}
