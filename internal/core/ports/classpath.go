package ports

// ClasspathResolver resolves the plugin classpath injected into builds under test.
//
//go:generate mockgen -source=classpath.go -destination=mocks/mock_classpath.go -package=mocks
type ClasspathResolver interface {
	// Resolve expands the given patterns relative to root into sorted, absolute paths.
	Resolve(patterns []string, root string) ([]string, error)

	// DefaultClasspath reads the plugin-under-test metadata for a project directory.
	DefaultClasspath(projectDir string) ([]string, error)
}
