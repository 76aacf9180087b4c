package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "beanlint.dev/pkg/beanlint/internal/model"
)

func TestWatchModel_RunLifecycle(t *testing.T) {
	model := NewWatchModel()

	updated, _ := model.Update(RunStartedMsg{})
	wm, ok := updated.(WatchModel)
	require.True(t, ok)
	assert.True(t, wm.running)
	assert.Contains(t, wm.View(), "validating")

	updated, _ = wm.Update(RunFinishedMsg{Results: []m.ProjectResult{
		{Project: m.Project{Name: "svc-a"}},
		{
			Project: m.Project{Name: "svc-b"},
			Violations: []*m.Violation{{
				Rule:    m.RuleMissingTestSuite,
				Project: "svc-b",
				Path:    "src/test/java",
			}},
		},
	}})
	wm, ok = updated.(WatchModel)
	require.True(t, ok)
	assert.False(t, wm.running)

	view := wm.View()
	assert.Contains(t, view, "svc-a")
	assert.Contains(t, view, "MissingTestSuite")
	assert.Contains(t, view, "1 of 2 project(s) failing")
	assert.Contains(t, view, "press q to quit")
}

func TestWatchModel_QuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}

	for _, key := range keys {
		model := NewWatchModel()

		updated, cmd := model.Update(key)
		wm, ok := updated.(WatchModel)
		require.True(t, ok)
		assert.True(t, wm.quitting, key.String())
		require.NotNil(t, cmd, key.String())
	}
}

func TestWatchModel_EmptyResultsViewShowsHeader(t *testing.T) {
	view := NewWatchModel().View()
	assert.Contains(t, view, "beanlint watch")
	assert.Contains(t, view, "watching for changes")
}
