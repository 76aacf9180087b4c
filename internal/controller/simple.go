package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "beanlint.dev/pkg/beanlint/internal/model"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// SimpleUI implements UI using a cobra Command's output streams.
type SimpleUI struct {
	cmd    *cobra.Command
	format string
}

// NewSimpleUI creates a SimpleUI emitting the given report format.
func NewSimpleUI(cmd *cobra.Command, format string) *SimpleUI {
	return &SimpleUI{cmd: cmd, format: format}
}

// DisplayRunStart announces the run on the text format; YAML output stays a
// single parseable document.
func (s *SimpleUI) DisplayRunStart(ctx context.Context, projects int, parallel int) {
	if err := ctx.Err(); err != nil {
		return
	}

	if s.format != FormatText {
		return
	}

	s.printf("Validating %d project(s) with %d worker(s)\n", projects, parallel)
}

// DisplayResults renders per-project outcomes.
func (s *SimpleUI) DisplayResults(ctx context.Context, results []m.ProjectResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == FormatYAML {
		return s.writeYAML(results)
	}

	failed := 0

	for _, result := range results {
		if !result.Failed() {
			s.printf("%s %s\n", passStyle.Render("ok"), result.Project.Name)
			continue
		}

		failed++

		for _, violation := range result.Violations {
			if violation.Rule == m.RuleIncompleteTestSuite {
				for _, reference := range violation.Missing {
					s.printf("missing from suite: %s\n", reference)
				}
			}

			s.printf("%s %s\n", failStyle.Render("FAIL"), violation.Error())
		}

		if result.Err != nil {
			s.printf("%s project %s: %v\n", failStyle.Render("ERROR"), result.Project.Name, result.Err)
		}
	}

	if failed == 0 {
		s.printf("All %d project(s) follow the conventions\n", len(results))
	} else {
		s.printf("%d of %d project(s) failed validation\n", failed, len(results))
	}

	return nil
}

// DisplayProjects renders the introspection summary table.
func (s *SimpleUI) DisplayProjects(ctx context.Context, summaries []m.ProjectSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Project", "Registered", "Config Classes", "Test Classes", "Suites"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, summary := range summaries {
		table.Append([]string{
			summary.Project.Name,
			fmt.Sprintf("%d", summary.RegisteredClasses),
			fmt.Sprintf("%d", summary.ConfigClasses),
			fmt.Sprintf("%d", summary.TestClasses),
			fmt.Sprintf("%d", summary.SuiteFiles),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Projects %d", len(summaries)), "", "", "", ""})
	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

// yamlReport is the machine-readable shape of a validation run.
type yamlReport struct {
	Projects []yamlProject `yaml:"projects"`
	Failed   int           `yaml:"failed"`
}

type yamlProject struct {
	Name       string          `yaml:"name"`
	Root       string          `yaml:"root"`
	Status     string          `yaml:"status"`
	Violations []yamlViolation `yaml:"violations,omitempty"`
	Error      string          `yaml:"error,omitempty"`
}

type yamlViolation struct {
	Rule    string   `yaml:"rule"`
	Path    string   `yaml:"path,omitempty"`
	Missing []string `yaml:"missing,omitempty"`
}

func (s *SimpleUI) writeYAML(results []m.ProjectResult) error {
	report := yamlReport{Projects: make([]yamlProject, 0, len(results))}

	for _, result := range results {
		project := yamlProject{
			Name:   result.Project.Name,
			Root:   string(result.Project.Root),
			Status: "pass",
		}

		if len(result.Violations) > 0 {
			project.Status = "fail"
		}

		if result.Err != nil {
			project.Status = "error"
			project.Error = result.Err.Error()
		}

		for _, violation := range result.Violations {
			project.Violations = append(project.Violations, yamlViolation{
				Rule:    string(violation.Rule),
				Path:    string(violation.Path),
				Missing: violation.Missing,
			})
		}

		if result.Failed() {
			report.Failed++
		}

		report.Projects = append(report.Projects, project)
	}

	encoded, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	s.printf("%s", encoded)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
