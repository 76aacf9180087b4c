package model

// Well-known registration keys in the mapping file. The validator checks
// exactly these two entry points and nothing else.
const (
	KeyBootstrapConfiguration = "org.springframework.cloud.bootstrap.BootstrapConfiguration"
	KeyAutoConfiguration      = "org.springframework.boot.autoconfigure.EnableAutoConfiguration"
)

// RegistrationKeys lists the mapping-file keys the factory validator reads,
// in the order they are checked.
var RegistrationKeys = []string{
	KeyBootstrapConfiguration,
	KeyAutoConfiguration,
}

// Registration is one mapping-file entry: a registration point and the
// fully-qualified class names declared under it.
type Registration struct {
	Key     string
	Classes []string
}
