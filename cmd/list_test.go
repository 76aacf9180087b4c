package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_SummarizesProjects(t *testing.T) {
	t.Chdir(t.TempDir())

	root := t.TempDir()
	project := filepath.Join(root, "svc-a")

	mainRoot := filepath.Join(project, "src", "main", "java", "com", "acme")
	require.NoError(t, os.MkdirAll(mainRoot, 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(mainRoot, "AcmeConfiguration.java"),
		[]byte("@Configuration(value = \"acme\", proxyBeanMethods = false)\npublic class AcmeConfiguration {}"),
		0o600,
	))

	metaInf := filepath.Join(project, "src", "main", "resources", "META-INF")
	require.NoError(t, os.MkdirAll(metaInf, 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(metaInf, "spring.factories"),
		[]byte("org.springframework.cloud.bootstrap.BootstrapConfiguration=com.acme.AcmeConfiguration\n"),
		0o600,
	))

	testRoot := filepath.Join(project, "src", "test", "java", "com", "acme")
	require.NoError(t, os.MkdirAll(testRoot, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(testRoot, "FooTests.java"), []byte("public class FooTests {}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(testRoot, "BarTests.java"), []byte("public class BarTests {}"), 0o600))
	require.NoError(t, os.WriteFile(
		filepath.Join(testRoot, "AcmeTestsSuite.java"),
		[]byte("@Suite\npublic class AcmeTestsSuite {} // FooTests.class BarTests.class"),
		0o600,
	))

	output, err := execute(t, "list", root)
	require.NoError(t, err)

	assert.Contains(t, output, "svc-a")
	assert.Contains(t, strings.ToUpper(output), "TOTAL PROJECTS 1")
}

func TestListCmd_EmptyRootListsNothing(t *testing.T) {
	t.Chdir(t.TempDir())

	output, err := execute(t, "list", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, strings.ToUpper(output), "TOTAL PROJECTS 0")
}
