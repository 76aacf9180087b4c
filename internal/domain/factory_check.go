package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"beanlint.dev/pkg/beanlint/internal/adapter"
	m "beanlint.dev/pkg/beanlint/internal/model"
)

// FactoryValidator confirms that every class declared under the well-known
// registration keys of the mapping file exists as a source file.
type FactoryValidator struct {
	fs        adapter.SourceFSAdapter
	factories adapter.FactoriesAdapter
}

// NewFactoryValidator creates a FactoryValidator with the provided adapters.
func NewFactoryValidator(fs adapter.SourceFSAdapter, factories adapter.FactoriesAdapter) *FactoryValidator {
	return &FactoryValidator{fs: fs, factories: factories}
}

// Name returns the task name.
func (v *FactoryValidator) Name() string {
	return "factories"
}

// Validate checks the project's registration mapping file. A project without
// a mapping file passes trivially.
func (v *FactoryValidator) Validate(ctx context.Context, project m.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mappingPath := v.fs.JoinPath(string(project.Root), m.FactoriesFile)

	if _, err := v.fs.FileInfo(mappingPath); err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no registration mapping file", "project", project.Name)
			return nil
		}

		return fmt.Errorf("stat %s: %w", mappingPath, err)
	}

	entries, err := v.factories.Load(mappingPath)
	if err != nil {
		return err
	}

	var missing []string

	for _, entry := range entries {
		for _, class := range entry.Classes {
			sourcePath := v.sourcePathFor(project, class)

			if _, err := v.fs.FileInfo(sourcePath); err != nil {
				if os.IsNotExist(err) {
					missing = append(missing, class)
					continue
				}

				return fmt.Errorf("stat %s: %w", sourcePath, err)
			}
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return &m.Violation{
		Rule:    m.RuleMissingRegisteredClass,
		Project: project.Name,
		Path:    mappingPath,
		Missing: sortedUnique(missing),
	}
}

// sourcePathFor maps a fully-qualified class name to the expected source file
// under the project's main source root.
func (v *FactoryValidator) sourcePathFor(project m.Project, class string) m.Path {
	relative := strings.ReplaceAll(class, ".", "/") + m.JavaSourceExt

	return v.fs.JoinPath(string(project.Root), m.MainSourceRoot, relative)
}

// sortedUnique returns the lexicographically sorted, de-duplicated copy of
// names, for reproducible violation payloads.
func sortedUnique(names []string) []string {
	sort.Strings(names)

	out := names[:0]

	for i, name := range names {
		if i == 0 || name != names[i-1] {
			out = append(out, name)
		}
	}

	return out
}
