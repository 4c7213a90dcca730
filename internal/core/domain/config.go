package domain

// RunConfig is the resolved content of a jute.yaml file.
// Root, ProjectDir and BuildFile are absolute once returned by a ConfigLoader.
// PluginClasspath holds glob patterns relative to Root.
type RunConfig struct {
	Root             string
	ProjectDir       string
	BuildFile        string
	BuildTool        string
	Arguments        []string
	Properties       []Property
	PluginClasspath  []string
	DefaultClasspath bool
	Environment      map[string]string
}
