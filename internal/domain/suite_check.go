package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"beanlint.dev/pkg/beanlint/internal/adapter"
	m "beanlint.dev/pkg/beanlint/internal/model"
)

// SuiteValidator confirms that a project's aggregate test-suite file
// references every individual test class.
type SuiteValidator struct {
	fs adapter.SourceFSAdapter
}

// NewSuiteValidator creates a SuiteValidator.
func NewSuiteValidator(fs adapter.SourceFSAdapter) *SuiteValidator {
	return &SuiteValidator{fs: fs}
}

// Name returns the task name.
func (v *SuiteValidator) Name() string {
	return "suites"
}

// Validate enumerates test classes and suite files under the project's test
// source root. A project without a test root passes trivially; a single test
// class needs no suite.
func (v *SuiteValidator) Validate(ctx context.Context, project m.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	root := v.fs.JoinPath(string(project.Root), m.TestSourceRoot)

	if _, err := v.fs.FileInfo(root); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("stat %s: %w", root, err)
	}

	classes, suites, err := v.enumerate(root)
	if err != nil {
		return err
	}

	if len(suites) > 1 {
		return &m.Violation{
			Rule:    m.RuleAmbiguousTestSuite,
			Project: project.Name,
			Path:    root,
			Missing: sortedUnique(suiteNames(suites)),
		}
	}

	if len(suites) == 0 {
		if len(classes) > 1 {
			return &m.Violation{
				Rule:    m.RuleMissingTestSuite,
				Project: project.Name,
				Path:    root,
				Missing: sortedUnique(classes),
			}
		}

		return nil
	}

	return v.checkMembership(project, suites[0], classes)
}

// enumerate walks the test root once, collecting test-class stems and suite
// file paths. Base/Abstract test classes are excluded from the required set.
func (v *SuiteValidator) enumerate(root m.Path) (classes []string, suites []m.Path, err error) {
	err = v.fs.Walk(root, true, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if info.IsDir() {
			return nil
		}

		name := info.Name()

		switch {
		case strings.HasSuffix(name, m.SuiteClassSuffix):
			suites = append(suites, m.Path(path))
		case strings.HasSuffix(name, m.TestClassSuffix):
			if strings.Contains(name, "Base") || strings.Contains(name, "Abstract") {
				return nil
			}

			classes = append(classes, strings.TrimSuffix(name, m.JavaSourceExt))
		}

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return classes, suites, nil
}

// checkMembership reads the suite file and verifies every test class appears
// in it by its compiled-unit reference name.
func (v *SuiteValidator) checkMembership(project m.Project, suite m.Path, classes []string) error {
	text, err := v.fs.ReadFile(suite)
	if err != nil {
		return fmt.Errorf("read %s: %w", suite, err)
	}

	var missing []string

	for _, class := range classes {
		reference := class + m.CompiledUnitExt
		if !strings.Contains(string(text), reference) {
			missing = append(missing, reference)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return &m.Violation{
		Rule:    m.RuleIncompleteTestSuite,
		Project: project.Name,
		Path:    suite,
		Missing: sortedUnique(missing),
	}
}

// suiteNames reduces suite paths to their base file names for reporting.
func suiteNames(suites []m.Path) []string {
	names := make([]string, 0, len(suites))

	for _, suite := range suites {
		names = append(names, filepath.Base(string(suite)))
	}

	return names
}
