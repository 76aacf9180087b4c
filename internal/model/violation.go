package model

import (
	"fmt"
	"strings"
)

// Rule identifies which convention a violation breaks.
type Rule string

const (
	// RuleMissingRegisteredClass fires when a registration-mapping entry
	// names a class with no corresponding source file.
	RuleMissingRegisteredClass Rule = "MissingRegisteredClass"

	// RuleMissingProxyDeclaration fires when a configuration class lacks an
	// explicit proxyBeanMethods declaration.
	RuleMissingProxyDeclaration Rule = "MissingProxyDeclaration"

	// RuleMissingTestSuite fires when multiple test classes exist without an
	// aggregate suite file.
	RuleMissingTestSuite Rule = "MissingTestSuite"

	// RuleAmbiguousTestSuite fires when more than one suite file exists.
	RuleAmbiguousTestSuite Rule = "AmbiguousTestSuite"

	// RuleIncompleteTestSuite fires when the suite file omits one or more
	// test classes.
	RuleIncompleteTestSuite Rule = "IncompleteTestSuite"
)

// Violation is a convention failure. It implements error so validators can
// return it through the usual error path; callers distinguish it from
// infrastructure errors with errors.As.
type Violation struct {
	Rule    Rule
	Project string
	Path    Path     // file or directory the rule fired on
	Missing []string // sorted, de-duplicated offending names
}

// Error renders a human-readable message naming the project, the rule, and
// the offending classes.
func (v *Violation) Error() string {
	switch v.Rule {
	case RuleMissingRegisteredClass:
		return fmt.Sprintf("project %s: %s: registered classes have no source file: %s",
			v.Project, v.Rule, strings.Join(v.Missing, ", "))
	case RuleMissingProxyDeclaration:
		return fmt.Sprintf("project %s: %s: configuration classes must declare proxyBeanMethods explicitly: %s",
			v.Project, v.Rule, strings.Join(v.Missing, ", "))
	case RuleMissingTestSuite:
		return fmt.Sprintf("project %s: %s: %d test classes found but no *TestsSuite file exists under %s",
			v.Project, v.Rule, len(v.Missing), v.Path)
	case RuleAmbiguousTestSuite:
		return fmt.Sprintf("project %s: %s: more than one *TestsSuite file exists: %s",
			v.Project, v.Rule, strings.Join(v.Missing, ", "))
	case RuleIncompleteTestSuite:
		return fmt.Sprintf("project %s: %s: suite %s does not reference: %s",
			v.Project, v.Rule, v.Path, strings.Join(v.Missing, ", "))
	}

	return fmt.Sprintf("project %s: %s", v.Project, v.Rule)
}
