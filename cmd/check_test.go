package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd(), newFactoriesCmd(), newProxyCmd(), newSuitesCmd(), newListCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestCheckCmd_FlagsPropagateToRunner(t *testing.T) {
	stub := &stubRunner{}
	swapRunner(t, stub)

	_, err := execute(t, "check", "--parallel", "3", "--keep-going", "./repo")
	require.NoError(t, err)

	assert.Equal(t, 3, stub.args.Parallel)
	assert.True(t, stub.args.KeepGoing)
	require.Len(t, stub.args.Paths, 1)
	assert.Equal(t, "./repo", string(stub.args.Paths[0]))
	assert.Empty(t, stub.args.Only)
	assert.Equal(t, 1, stub.cleanups)
}

func TestCheckCmd_ExcludeFlagPropagates(t *testing.T) {
	stub := &stubRunner{}
	swapRunner(t, stub)
	t.Cleanup(func() { excludePatterns = nil })

	_, err := execute(t, "check", "-x", "-it$", "./repo")
	require.NoError(t, err)

	assert.Equal(t, []string{"-it$"}, stub.args.Exclude)
}

func TestCheckCmd_EndToEndReportsMissingSuite(t *testing.T) {
	t.Chdir(t.TempDir())

	root := t.TempDir()
	testRoot := filepath.Join(root, "src", "test", "java", "com", "acme")
	require.NoError(t, os.MkdirAll(testRoot, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(testRoot, "FooTests.java"), []byte("public class FooTests {}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(testRoot, "BarTests.java"), []byte("public class BarTests {}"), 0o600))

	output, err := execute(t, "check", root)
	require.Error(t, err)
	assert.Contains(t, output, "MissingTestSuite")
}

func TestCheckCmd_EndToEndPassesOnConformingProject(t *testing.T) {
	t.Chdir(t.TempDir())

	root := t.TempDir()
	testRoot := filepath.Join(root, "src", "test", "java", "com", "acme")
	require.NoError(t, os.MkdirAll(testRoot, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(testRoot, "FooTests.java"), []byte("public class FooTests {}"), 0o600))

	output, err := execute(t, "check", root)
	require.NoError(t, err)
	assert.Contains(t, output, "follow the conventions")
}

func TestCheckCmd_YAMLFormat(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(func() { formatFlag = defaultFormat })

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "main", "java"), 0o750))

	output, err := execute(t, "check", "--format", "yaml", root)
	require.NoError(t, err)
	assert.Contains(t, output, "projects:")
	assert.Contains(t, output, "status: pass")
}
