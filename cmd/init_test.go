package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runInit(t *testing.T) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	return cmd.Execute()
}

func TestInitCmd_WritesDefaultConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, runInit(t))

	content, err := os.ReadFile(filepath.Join(".", configFileName))
	require.NoError(t, err)

	assert.Contains(t, string(content), "report:")
	assert.Contains(t, string(content), "log:")
}

func TestInitCmd_RefusesToOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, runInit(t))

	err := runInit(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")
}
