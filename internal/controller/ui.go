// Package controller provides output adapters for displaying validation results.
package controller

import (
	"context"
	"os"

	"golang.org/x/term"

	m "beanlint.dev/pkg/beanlint/internal/model"
)

// Report formats supported by the check commands.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// UI defines the interface for displaying validation output. Implementations
// can use different output methods (plain text, YAML, TUI).
type UI interface {
	// DisplayRunStart announces a validation run.
	DisplayRunStart(ctx context.Context, projects int, parallel int)

	// DisplayResults renders per-project outcomes. For incomplete-suite
	// violations the missing references are written line by line before the
	// failure message, so build logs carry the diagnostic list.
	DisplayResults(ctx context.Context, results []m.ProjectResult) error

	// DisplayProjects renders the introspection table for the list command.
	DisplayProjects(ctx context.Context, summaries []m.ProjectSummary) error
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// QuietUI discards all display calls. The watch command uses it for the
// runner feeding its TUI, which renders results itself.
type QuietUI struct{}

// DisplayRunStart implements UI.
func (QuietUI) DisplayRunStart(context.Context, int, int) {}

// DisplayResults implements UI.
func (QuietUI) DisplayResults(context.Context, []m.ProjectResult) error { return nil }

// DisplayProjects implements UI.
func (QuietUI) DisplayProjects(context.Context, []m.ProjectSummary) error { return nil }
