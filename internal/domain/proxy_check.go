package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"beanlint.dev/pkg/beanlint/internal/adapter"
	m "beanlint.dev/pkg/beanlint/internal/model"
)

// SelfInvocationDetector reports which bean methods a configuration class
// declares and how often each is referenced within the same compilation
// unit. It exists as an interface so the shipped text-pattern heuristic can
// later be swapped for a parse-tree-based analysis without touching the
// validator's pass/fail contract.
type SelfInvocationDetector interface {
	// MethodNames extracts the public method names declared in src, in
	// declaration order.
	MethodNames(src []byte) []string

	// CallCount counts occurrences of `name(` in src. The count includes
	// the declaration itself, so a value above one indicates at least one
	// additional same-class call site.
	CallCount(src []byte, name string) int
}

// beanMethodPattern matches a public method declaration: return type with an
// optional generic parameter, then the method name and opening parenthesis.
var beanMethodPattern = regexp.MustCompile(`public\s+[\w$.]+(?:<[^>\n]*>)?\s+([\w$]+)\s*\(`)

// RegexSelfInvocationDetector is the text-pattern implementation. It does not
// resolve identifiers, so name collisions across unrelated classes can
// produce false positives or negatives.
type RegexSelfInvocationDetector struct{}

// NewRegexSelfInvocationDetector constructs a RegexSelfInvocationDetector.
func NewRegexSelfInvocationDetector() *RegexSelfInvocationDetector {
	return &RegexSelfInvocationDetector{}
}

// MethodNames extracts public method names from src. The result is a fresh
// slice on every call so no state leaks between scanned files.
func (d *RegexSelfInvocationDetector) MethodNames(src []byte) []string {
	var names []string

	for _, match := range beanMethodPattern.FindAllSubmatch(src, -1) {
		names = append(names, string(match[1]))
	}

	return names
}

// CallCount counts textual references to the method in src.
func (d *RegexSelfInvocationDetector) CallCount(src []byte, name string) int {
	return bytes.Count(src, []byte(name+"("))
}

// explicitProxyPattern matches the required explicit declaration:
// @Configuration(value = "<name>", proxyBeanMethods = <bool>).
var explicitProxyPattern = regexp.MustCompile(`@Configuration\(\s*value\s*=\s*"[^"]*"\s*,\s*proxyBeanMethods\s*=\s*(?:true|false)\s*\)`)

// ProxyValidator inspects configuration classes for self-invocation patterns
// and requires an explicit proxying declaration when none are found.
type ProxyValidator struct {
	fs       adapter.SourceFSAdapter
	detector SelfInvocationDetector
}

// NewProxyValidator creates a ProxyValidator using the provided detector.
func NewProxyValidator(fs adapter.SourceFSAdapter, detector SelfInvocationDetector) *ProxyValidator {
	return &ProxyValidator{fs: fs, detector: detector}
}

// Name returns the task name.
func (v *ProxyValidator) Name() string {
	return "proxy"
}

// Validate scans every configuration class under the project's main source
// root. A file counts as a configuration class when its name ends in the
// configuration suffix and its content contains the configuration marker.
func (v *ProxyValidator) Validate(ctx context.Context, project m.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	root := v.fs.JoinPath(string(project.Root), m.MainSourceRoot)

	if _, err := v.fs.FileInfo(root); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("stat %s: %w", root, err)
	}

	var flagged []string

	err := v.fs.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !strings.HasSuffix(info.Name(), m.ConfigClassSuffix) {
			return nil
		}

		src, err := v.fs.ReadFile(m.Path(path))
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		if !bytes.Contains(src, []byte(m.ConfigMarker)) {
			return nil
		}

		if v.requiresExplicitDeclaration(src) && !explicitProxyPattern.Match(src) {
			flagged = append(flagged, strings.TrimSuffix(info.Name(), m.JavaSourceExt))
		}

		return nil
	})
	if err != nil {
		return err
	}

	if len(flagged) == 0 {
		return nil
	}

	return &m.Violation{
		Rule:    m.RuleMissingProxyDeclaration,
		Project: project.Name,
		Path:    root,
		Missing: sortedUnique(flagged),
	}
}

// requiresExplicitDeclaration reports whether the class must carry the
// explicit proxyBeanMethods declaration: true when no declared method is
// referenced more than once in the file.
func (v *ProxyValidator) requiresExplicitDeclaration(src []byte) bool {
	// Method names are re-extracted per file; the detector keeps no state
	// across files.
	for _, name := range v.detector.MethodNames(src) {
		if v.detector.CallCount(src, name) > 1 {
			slog.Debug("self-invocation detected", "method", name)
			return false
		}
	}

	return true
}
