// Package model defines the data structures shared by the beanlint validators.
package model

// Path represents a file system path.
type Path string

// Conventional layout of a validated project, relative to its root.
const (
	// MainSourceRoot holds production sources.
	MainSourceRoot = "src/main/java"

	// ResourcesRoot holds production resources, including the registration
	// mapping file.
	ResourcesRoot = "src/main/resources"

	// TestSourceRoot holds test sources.
	TestSourceRoot = "src/test/java"

	// FactoriesFile is the registration mapping file, relative to the
	// project root.
	FactoriesFile = ResourcesRoot + "/META-INF/spring.factories"
)

// Source file naming conventions the validators match against.
const (
	// JavaSourceExt is the extension of scanned source files.
	JavaSourceExt = ".java"

	// ConfigClassSuffix selects configuration-class candidates by file name.
	ConfigClassSuffix = "Configuration" + JavaSourceExt

	// ConfigMarker must appear in a candidate's content for it to count as
	// a configuration class.
	ConfigMarker = "@Configuration"

	// TestClassSuffix selects test classes by file name.
	TestClassSuffix = "Tests" + JavaSourceExt

	// SuiteClassSuffix selects aggregate test-suite files by file name.
	SuiteClassSuffix = "TestsSuite" + JavaSourceExt

	// CompiledUnitExt is the reference form a suite uses to name a test
	// class (file-name stem + this suffix).
	CompiledUnitExt = ".class"
)

// Project is one validated directory subtree. It exists only for the
// duration of a validator invocation and is never mutated.
type Project struct {
	Root Path
	Name string
}

// ProjectSummary is the introspection view of one project, as shown by the
// list command.
type ProjectSummary struct {
	Project           Project
	RegisteredClasses int
	ConfigClasses     int
	TestClasses       int
	SuiteFiles        int
}

// ProjectResult holds the outcome of running validators against one project.
// Violations are convention failures; Err reports an infrastructure problem
// (unreadable file, bad mapping syntax) that prevented validation.
type ProjectResult struct {
	Project    Project
	Violations []*Violation
	Err        error
}

// Failed reports whether the project failed validation for any reason.
func (r ProjectResult) Failed() bool {
	return r.Err != nil || len(r.Violations) > 0
}
