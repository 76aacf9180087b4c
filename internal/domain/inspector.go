package domain

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"beanlint.dev/pkg/beanlint/internal/adapter"
	m "beanlint.dev/pkg/beanlint/internal/model"
)

// Inspector produces the introspection summaries behind the list command:
// per project, how many classes are registered, how many configuration and
// test classes exist, and how many suite files are present.
type Inspector struct {
	fs        adapter.SourceFSAdapter
	factories adapter.FactoriesAdapter
	scanner   *ProjectScanner
}

// NewInspector creates an Inspector.
func NewInspector(fs adapter.SourceFSAdapter, factories adapter.FactoriesAdapter, scanner *ProjectScanner) *Inspector {
	return &Inspector{fs: fs, factories: factories, scanner: scanner}
}

// Inspect discovers projects under the given roots and summarizes each.
func (i *Inspector) Inspect(ctx context.Context, roots []m.Path, exclude []string) ([]m.ProjectSummary, error) {
	projects, err := i.scanner.Discover(ctx, roots, exclude)
	if err != nil {
		return nil, err
	}

	summaries := make([]m.ProjectSummary, 0, len(projects))

	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		summary, err := i.summarize(project)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (i *Inspector) summarize(project m.Project) (m.ProjectSummary, error) {
	summary := m.ProjectSummary{Project: project}

	registered, err := i.countRegistered(project)
	if err != nil {
		return summary, err
	}

	summary.RegisteredClasses = registered

	if err := i.countMainSources(project, &summary); err != nil {
		return summary, err
	}

	if err := i.countTestSources(project, &summary); err != nil {
		return summary, err
	}

	return summary, nil
}

func (i *Inspector) countRegistered(project m.Project) (int, error) {
	mappingPath := i.fs.JoinPath(string(project.Root), m.FactoriesFile)

	if _, err := i.fs.FileInfo(mappingPath); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}

		return 0, fmt.Errorf("stat %s: %w", mappingPath, err)
	}

	entries, err := i.factories.Load(mappingPath)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, entry := range entries {
		total += len(entry.Classes)
	}

	return total, nil
}

func (i *Inspector) countMainSources(project m.Project, summary *m.ProjectSummary) error {
	root := i.fs.JoinPath(string(project.Root), m.MainSourceRoot)

	if _, err := i.fs.FileInfo(root); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("stat %s: %w", root, err)
	}

	return i.fs.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !strings.HasSuffix(info.Name(), m.ConfigClassSuffix) {
			return nil
		}

		src, err := i.fs.ReadFile(m.Path(path))
		if err != nil {
			return err
		}

		if bytes.Contains(src, []byte(m.ConfigMarker)) {
			summary.ConfigClasses++
		}

		return nil
	})
}

func (i *Inspector) countTestSources(project m.Project, summary *m.ProjectSummary) error {
	root := i.fs.JoinPath(string(project.Root), m.TestSourceRoot)

	if _, err := i.fs.FileInfo(root); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("stat %s: %w", root, err)
	}

	return i.fs.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		name := info.Name()

		switch {
		case strings.HasSuffix(name, m.SuiteClassSuffix):
			summary.SuiteFiles++
		case strings.HasSuffix(name, m.TestClassSuffix):
			if !strings.Contains(name, "Base") && !strings.Contains(name, "Abstract") {
				summary.TestClasses++
			}
		}

		return nil
	})
}
