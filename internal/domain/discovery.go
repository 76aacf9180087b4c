package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"beanlint.dev/pkg/beanlint/internal/adapter"
	m "beanlint.dev/pkg/beanlint/internal/model"
)

// skippedDirs are directory names discovery never descends into. "src" is
// skipped because projects do not nest inside their own source trees.
var skippedDirs = map[string]struct{}{
	"src":          {},
	"build":        {},
	"target":       {},
	"out":          {},
	"node_modules": {},
}

// ProjectScanner discovers validated projects under one or more roots. A
// directory counts as a project when it carries the conventional layout
// (a main or test source root).
type ProjectScanner struct {
	fs adapter.SourceFSAdapter
}

// NewProjectScanner creates a ProjectScanner.
func NewProjectScanner(fs adapter.SourceFSAdapter) *ProjectScanner {
	return &ProjectScanner{fs: fs}
}

// Discover walks each root and returns the projects found, sorted by name.
// Exclude patterns are regular expressions matched against project names.
func (s *ProjectScanner) Discover(ctx context.Context, roots []m.Path, exclude []string) ([]m.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	excludeRes, err := compilePatterns(exclude)
	if err != nil {
		return nil, err
	}

	var projects []m.Project

	for _, root := range roots {
		found, err := s.discoverUnder(root)
		if err != nil {
			return nil, err
		}

		projects = append(projects, found...)
	}

	projects = filterProjects(projects, excludeRes)

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})

	return projects, nil
}

// discoverUnder walks a single root collecting project directories.
func (s *ProjectScanner) discoverUnder(root m.Path) ([]m.Project, error) {
	var projects []m.Project

	err := s.fs.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		name := info.Name()
		if path != string(root) {
			if _, skip := skippedDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
		}

		if !s.hasProjectLayout(m.Path(path)) {
			return nil
		}

		projects = append(projects, m.Project{
			Root: m.Path(path),
			Name: s.projectName(root, m.Path(path)),
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover projects under %s: %w", root, err)
	}

	return projects, nil
}

// hasProjectLayout reports whether dir carries a conventional source root.
func (s *ProjectScanner) hasProjectLayout(dir m.Path) bool {
	for _, marker := range []string{m.MainSourceRoot, m.TestSourceRoot} {
		info, err := s.fs.FileInfo(s.fs.JoinPath(string(dir), marker))
		if err == nil && info.IsDir() {
			return true
		}
	}

	return false
}

// projectName derives a display name: the path relative to the walk root, or
// the directory's own base name when the root itself is the project.
func (s *ProjectScanner) projectName(root, dir m.Path) string {
	rel, err := s.fs.RelPath(root, dir)
	if err != nil || rel == "." {
		abs, absErr := filepath.Abs(string(dir))
		if absErr != nil {
			return string(dir)
		}

		return filepath.Base(abs)
	}

	return filepath.ToSlash(string(rel))
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		res = append(res, re)
	}

	return res, nil
}

func filterProjects(projects []m.Project, exclude []*regexp.Regexp) []m.Project {
	if len(exclude) == 0 {
		return projects
	}

	kept := projects[:0]

	for _, project := range projects {
		excluded := false

		for _, re := range exclude {
			if re.MatchString(project.Name) {
				excluded = true
				break
			}
		}

		if !excluded {
			kept = append(kept, project)
		}
	}

	return kept
}
