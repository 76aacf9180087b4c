package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "beanlint.dev/pkg/beanlint/internal/model"
)

var (
	watchHeaderStyle = lipgloss.NewStyle().Bold(true)
	watchHintStyle   = lipgloss.NewStyle().Faint(true)
)

// RunStartedMsg tells the watch view a validation run began.
type RunStartedMsg struct{}

// RunFinishedMsg carries the results of a completed validation run.
type RunFinishedMsg struct {
	Results []m.ProjectResult
}

// WatchModel is the Bubble Tea model behind the watch command: a spinner
// while validation runs, then per-project outcomes until the next change.
type WatchModel struct {
	spinner  spinner.Model
	running  bool
	results  []m.ProjectResult
	lastRun  time.Time
	quitting bool
}

// NewWatchModel constructs the initial watch view state.
func NewWatchModel() WatchModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return WatchModel{spinner: sp}
}

// Init starts the spinner ticker.
func (wm WatchModel) Init() tea.Cmd {
	return wm.spinner.Tick
}

// Update handles key presses, run lifecycle messages, and spinner ticks.
func (wm WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			wm.quitting = true
			return wm, tea.Quit
		}

	case RunStartedMsg:
		wm.running = true
		return wm, wm.spinner.Tick

	case RunFinishedMsg:
		wm.running = false
		wm.results = msg.Results
		wm.lastRun = time.Now()
		return wm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		wm.spinner, cmd = wm.spinner.Update(msg)
		return wm, cmd
	}

	return wm, nil
}

// View renders the current watch state.
func (wm WatchModel) View() string {
	if wm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(watchHeaderStyle.Render("beanlint watch"))
	b.WriteString("\n\n")

	if wm.running {
		fmt.Fprintf(&b, "%s validating...\n", wm.spinner.View())
		return b.String()
	}

	failed := 0

	for _, result := range wm.results {
		if !result.Failed() {
			fmt.Fprintf(&b, "%s %s\n", passStyle.Render("ok"), result.Project.Name)
			continue
		}

		failed++

		for _, violation := range result.Violations {
			fmt.Fprintf(&b, "%s %s\n", failStyle.Render("FAIL"), violation.Error())
		}

		if result.Err != nil {
			fmt.Fprintf(&b, "%s project %s: %v\n", failStyle.Render("ERROR"), result.Project.Name, result.Err)
		}
	}

	if len(wm.results) > 0 {
		b.WriteString("\n")

		if failed == 0 {
			fmt.Fprintf(&b, "%s\n", passStyle.Render(fmt.Sprintf("all %d project(s) pass", len(wm.results))))
		} else {
			fmt.Fprintf(&b, "%s\n", failStyle.Render(fmt.Sprintf("%d of %d project(s) failing", failed, len(wm.results))))
		}

		fmt.Fprintf(&b, "last run %s\n", wm.lastRun.Format("15:04:05"))
	}

	b.WriteString(watchHintStyle.Render("watching for changes; press q to quit"))
	b.WriteString("\n")

	return b.String()
}

// WatchTUI wraps the Bubble Tea program so the watch command can push run
// lifecycle events from its watcher goroutine.
type WatchTUI struct {
	program *tea.Program
}

// NewWatchTUI creates the program writing to output.
func NewWatchTUI(output io.Writer) *WatchTUI {
	return &WatchTUI{program: tea.NewProgram(NewWatchModel(), tea.WithOutput(output))}
}

// Run blocks until the user quits the view.
func (t *WatchTUI) Run() error {
	_, err := t.program.Run()
	return err
}

// RunStarted signals that a validation pass began.
func (t *WatchTUI) RunStarted() {
	t.program.Send(RunStartedMsg{})
}

// RunFinished publishes the results of a validation pass.
func (t *WatchTUI) RunFinished(results []m.ProjectResult) {
	t.program.Send(RunFinishedMsg{Results: results})
}

// Quit stops the program.
func (t *WatchTUI) Quit() {
	t.program.Quit()
}
