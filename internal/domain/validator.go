// Package domain implements project discovery and the convention validators.
package domain

import (
	"context"

	m "beanlint.dev/pkg/beanlint/internal/model"
)

// Validator is one independently runnable convention check. Implementations
// are stateless: each call is a pure function of the project's file tree, and
// validators for different projects may run concurrently.
//
// A convention failure is reported as a *model.Violation through the error
// return; any other error means the check could not be performed.
type Validator interface {
	// Name returns the task name the validator is exposed under.
	Name() string

	// Validate checks one project and returns nil when it conforms.
	Validate(ctx context.Context, project m.Project) error
}
