package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"beanlint.dev/pkg/beanlint/internal/controller"
	m "beanlint.dev/pkg/beanlint/internal/model"
)

// RunArgs parameterizes one validation run.
type RunArgs struct {
	Paths   []m.Path
	Exclude []string

	// Only restricts the run to the named validators; empty means all.
	Only []string

	// Parallel is the number of projects validated concurrently.
	Parallel int

	// KeepGoing validates every project and reports all failures instead of
	// aborting on the first failing project.
	KeepGoing bool
}

// Runner drives discovery and validator fan-out for a run.
type Runner interface {
	// Run validates the discovered projects, displays the outcome, and
	// returns a non-nil error when any project fails, matching the
	// exit-code convention of the CLI.
	Run(ctx context.Context, args RunArgs) error

	// Check validates the discovered projects and returns the per-project
	// results without displaying them. The error reports an aborted run
	// (fail-fast cancellation or an infrastructure problem), not ordinary
	// violations, which live in the results.
	Check(ctx context.Context, args RunArgs) ([]m.ProjectResult, error)

	// RegisterCleanup adds a finalizer that runs exactly once per Run, in
	// LIFO order, regardless of outcome.
	RegisterCleanup(fn func())
}

type runner struct {
	scanner    *ProjectScanner
	ui         controller.UI
	validators []Validator

	mu       sync.Mutex
	cleanups []func()
}

// NewRunner creates a Runner over the given validators. Validators run in
// the order given; projects have no ordering dependency between each other.
func NewRunner(scanner *ProjectScanner, ui controller.UI, validators ...Validator) Runner {
	return &runner{scanner: scanner, ui: ui, validators: validators}
}

// RegisterCleanup adds a guaranteed finalizer for the next Run.
func (r *runner) RegisterCleanup(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cleanups = append(r.cleanups, fn)
}

// Run discovers projects, validates each one, and displays the outcome.
func (r *runner) Run(ctx context.Context, args RunArgs) error {
	defer r.runCleanups()

	results, runErr := r.Check(ctx, args)

	if dispErr := r.ui.DisplayResults(ctx, results); dispErr != nil {
		return dispErr
	}

	if runErr != nil {
		return runErr
	}

	failed := 0

	for _, result := range results {
		if result.Failed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d project(s) failed validation", failed, len(results))
	}

	return nil
}

// Check validates the discovered projects. Projects run concurrently up to
// args.Parallel; validators within a project run sequentially and stop at
// the project's first violation. Results come back sorted by project name.
func (r *runner) Check(ctx context.Context, args RunArgs) ([]m.ProjectResult, error) {
	validators, err := r.selectValidators(args.Only)
	if err != nil {
		return nil, err
	}

	projects, err := r.scanner.Discover(ctx, args.Paths, args.Exclude)
	if err != nil {
		return nil, err
	}

	parallel := args.Parallel
	if parallel < 1 {
		parallel = 1
	}

	r.ui.DisplayRunStart(ctx, len(projects), parallel)

	var (
		resultsMu sync.Mutex
		results   []m.ProjectResult
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for _, project := range projects {
		group.Go(func() error {
			result := r.validateProject(groupCtx, project, validators)

			resultsMu.Lock()
			results = append(results, result)
			resultsMu.Unlock()

			if result.Failed() && !args.KeepGoing {
				// Cancels the group so in-flight projects stop early.
				return firstFailure(result)
			}

			return nil
		})
	}

	runErr := group.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Project.Name < results[j].Project.Name
	})

	return results, runErr
}

// validateProject runs the validators against one project, stopping at the
// first violation or infrastructure error.
func (r *runner) validateProject(ctx context.Context, project m.Project, validators []Validator) m.ProjectResult {
	result := m.ProjectResult{Project: project}

	for _, validator := range validators {
		if err := ctx.Err(); err != nil {
			result.Err = err
			break
		}

		err := validator.Validate(ctx, project)
		if err == nil {
			continue
		}

		var violation *m.Violation
		if errors.As(err, &violation) {
			slog.Info("convention violation",
				"project", project.Name,
				"task", validator.Name(),
				"rule", violation.Rule,
			)

			result.Violations = append(result.Violations, violation)

			break
		}

		result.Err = fmt.Errorf("%s: %w", validator.Name(), err)

		break
	}

	return result
}

// selectValidators resolves the Only filter against the configured set.
func (r *runner) selectValidators(only []string) ([]Validator, error) {
	if len(only) == 0 {
		return r.validators, nil
	}

	byName := make(map[string]Validator, len(r.validators))
	for _, validator := range r.validators {
		byName[validator.Name()] = validator
	}

	selected := make([]Validator, 0, len(only))

	for _, name := range only {
		validator, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown validator %q", name)
		}

		selected = append(selected, validator)
	}

	return selected, nil
}

// runCleanups executes and drops the registered finalizers, newest first.
func (r *runner) runCleanups() {
	r.mu.Lock()
	cleanups := r.cleanups
	r.cleanups = nil
	r.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// firstFailure picks the error that represents a failed project result.
func firstFailure(result m.ProjectResult) error {
	if result.Err != nil {
		return result.Err
	}

	return result.Violations[0]
}
