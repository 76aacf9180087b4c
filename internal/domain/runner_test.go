package domain

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "beanlint.dev/pkg/beanlint/internal/model"
)

// recordingUI captures what the runner asked to display.
type recordingUI struct {
	mu      sync.Mutex
	started bool
	results []m.ProjectResult
}

func (u *recordingUI) DisplayRunStart(_ context.Context, _ int, _ int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.started = true
}

func (u *recordingUI) DisplayResults(_ context.Context, results []m.ProjectResult) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.results = results
	return nil
}

func (u *recordingUI) DisplayProjects(_ context.Context, _ []m.ProjectSummary) error {
	return nil
}

// funcValidator adapts a function to the Validator interface.
type funcValidator struct {
	name string
	fn   func(ctx context.Context, project m.Project) error
}

func (v funcValidator) Name() string { return v.name }

func (v funcValidator) Validate(ctx context.Context, project m.Project) error {
	return v.fn(ctx, project)
}

func passValidator(name string) Validator {
	return funcValidator{name: name, fn: func(context.Context, m.Project) error { return nil }}
}

func violateValidator(name string, rule m.Rule) Validator {
	return funcValidator{name: name, fn: func(_ context.Context, project m.Project) error {
		return &m.Violation{Rule: rule, Project: project.Name}
	}}
}

// multiProjectTree lays out n sibling projects under one root.
func multiProjectTree(t *testing.T, names ...string) m.Path {
	t.Helper()

	root := t.TempDir()
	for _, name := range names {
		mkdir(t, filepath.Join(root, name, "src", "main", "java"))
	}

	return m.Path(root)
}

func TestRunner_AllValidatorsPass(t *testing.T) {
	root := multiProjectTree(t, "svc-a", "svc-b")
	ui := &recordingUI{}

	runner := NewRunner(NewProjectScanner(newFS()), ui, passValidator("factories"), passValidator("proxy"))

	err := runner.Run(context.Background(), RunArgs{Paths: []m.Path{root}})
	require.NoError(t, err)

	assert.True(t, ui.started)
	require.Len(t, ui.results, 2)
	assert.False(t, ui.results[0].Failed())
	assert.False(t, ui.results[1].Failed())
}

func TestRunner_FailFastReturnsTheViolation(t *testing.T) {
	root := multiProjectTree(t, "svc-a")
	ui := &recordingUI{}

	runner := NewRunner(NewProjectScanner(newFS()), ui,
		violateValidator("proxy", m.RuleMissingProxyDeclaration))

	err := runner.Run(context.Background(), RunArgs{Paths: []m.Path{root}})
	require.Error(t, err)

	var violation *m.Violation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, m.RuleMissingProxyDeclaration, violation.Rule)
}

func TestRunner_FirstViolationAbortsRemainingValidatorsForProject(t *testing.T) {
	root := multiProjectTree(t, "svc-a")
	ui := &recordingUI{}

	called := false
	after := funcValidator{name: "after", fn: func(context.Context, m.Project) error {
		called = true
		return nil
	}}

	runner := NewRunner(NewProjectScanner(newFS()), ui,
		violateValidator("factories", m.RuleMissingRegisteredClass), after)

	err := runner.Run(context.Background(), RunArgs{Paths: []m.Path{root}})
	require.Error(t, err)
	assert.False(t, called)
}

func TestRunner_KeepGoingCollectsAllProjects(t *testing.T) {
	root := multiProjectTree(t, "svc-a", "svc-b", "svc-c")
	ui := &recordingUI{}

	failOnly := funcValidator{name: "factories", fn: func(_ context.Context, project m.Project) error {
		if project.Name == "svc-b" {
			return &m.Violation{Rule: m.RuleMissingRegisteredClass, Project: project.Name}
		}
		return nil
	}}

	runner := NewRunner(NewProjectScanner(newFS()), ui, failOnly)

	err := runner.Run(context.Background(), RunArgs{Paths: []m.Path{root}, KeepGoing: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3")

	require.Len(t, ui.results, 3)
	assert.Equal(t, "svc-a", ui.results[0].Project.Name)
	assert.Equal(t, "svc-b", ui.results[1].Project.Name)
	assert.True(t, ui.results[1].Failed())
	assert.Equal(t, "svc-c", ui.results[2].Project.Name)
}

func TestRunner_ParallelProjectsAllValidated(t *testing.T) {
	root := multiProjectTree(t, "p1", "p2", "p3", "p4", "p5")
	ui := &recordingUI{}

	var (
		mu   sync.Mutex
		seen []string
	)

	track := funcValidator{name: "factories", fn: func(_ context.Context, project m.Project) error {
		mu.Lock()
		seen = append(seen, project.Name)
		mu.Unlock()
		return nil
	}}

	runner := NewRunner(NewProjectScanner(newFS()), ui, track)

	err := runner.Run(context.Background(), RunArgs{Paths: []m.Path{root}, Parallel: 3})
	require.NoError(t, err)
	assert.Len(t, seen, 5)
}

func TestRunner_OnlyFilterSelectsValidatorsByName(t *testing.T) {
	root := multiProjectTree(t, "svc-a")
	ui := &recordingUI{}

	runner := NewRunner(NewProjectScanner(newFS()), ui,
		violateValidator("factories", m.RuleMissingRegisteredClass), passValidator("proxy"))

	err := runner.Run(context.Background(), RunArgs{Paths: []m.Path{root}, Only: []string{"proxy"}})
	require.NoError(t, err)
}

func TestRunner_UnknownOnlyNameErrors(t *testing.T) {
	runner := NewRunner(NewProjectScanner(newFS()), &recordingUI{}, passValidator("factories"))

	err := runner.Run(context.Background(), RunArgs{Only: []string{"nope"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown validator")
}

func TestRunner_CleanupsRunOncePerRunInLIFOOrder(t *testing.T) {
	root := multiProjectTree(t, "svc-a")
	ui := &recordingUI{}

	runner := NewRunner(NewProjectScanner(newFS()), ui, passValidator("factories"))

	var order []string
	runner.RegisterCleanup(func() { order = append(order, "first") })
	runner.RegisterCleanup(func() { order = append(order, "second") })

	require.NoError(t, runner.Run(context.Background(), RunArgs{Paths: []m.Path{root}}))
	assert.Equal(t, []string{"second", "first"}, order)

	// A second run must not re-run the finalizers.
	require.NoError(t, runner.Run(context.Background(), RunArgs{Paths: []m.Path{root}}))
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestRunner_InfrastructureErrorIsNotAViolation(t *testing.T) {
	root := multiProjectTree(t, "svc-a")
	ui := &recordingUI{}

	broken := funcValidator{name: "factories", fn: func(context.Context, m.Project) error {
		return errors.New("disk on fire")
	}}

	runner := NewRunner(NewProjectScanner(newFS()), ui, broken)

	err := runner.Run(context.Background(), RunArgs{Paths: []m.Path{root}})
	require.Error(t, err)

	var violation *m.Violation
	assert.False(t, errors.As(err, &violation))
	assert.Contains(t, err.Error(), "disk on fire")
}
