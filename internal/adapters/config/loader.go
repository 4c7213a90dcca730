// Package config provides the configuration loader for jute.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/jute/internal/core/domain"
	"go.trai.ch/jute/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover walks up from cwd and returns the nearest jute.yaml.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, err.Error()), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no config file in any parent directory"), "cwd", cwd)
}

// Load reads the configuration file at path and resolves its paths against the file's directory.
func (l *Loader) Load(path string) (*domain.RunConfig, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var jutefile Jutefile
	if err := readAndUnmarshalYAML(absPath, &jutefile); err != nil {
		return nil, zerr.With(err, "path", absPath)
	}

	if jutefile.Version != "" && jutefile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("unsupported version %q in %s, assuming %q",
			jutefile.Version, domain.ConfigFileName, SupportedVersion))
	}

	root := filepath.Dir(absPath)
	cfg := &domain.RunConfig{
		Root:             root,
		ProjectDir:       resolvePath(root, jutefile.ProjectDir),
		BuildTool:        resolveTool(root, jutefile.BuildTool),
		Arguments:        jutefile.Arguments,
		PluginClasspath:  jutefile.PluginClasspath,
		DefaultClasspath: jutefile.DefaultClasspath,
		Environment:      jutefile.Environment,
	}

	if jutefile.BuildFile != "" {
		cfg.BuildFile = resolvePath(root, jutefile.BuildFile)
		if jutefile.ProjectDir != "" && filepath.Dir(cfg.BuildFile) != cfg.ProjectDir {
			l.Logger.Warn(fmt.Sprintf("'projectDir' defined in %s is ignored because 'buildFile' is set",
				domain.ConfigFileName))
		}
		cfg.ProjectDir = filepath.Dir(cfg.BuildFile)
	}

	projectProps, err := parseProperties(domain.KindProject, &jutefile.Properties)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "section", "properties"), "path", absPath)
	}
	systemProps, err := parseProperties(domain.KindSystem, &jutefile.SystemProperties)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "section", "systemProperties"), "path", absPath)
	}
	cfg.Properties = append(projectProps, systemProps...)

	return cfg, nil
}

// parseProperties turns a YAML mapping into properties, keeping document order.
// A sequence value becomes a multi-value property.
func parseProperties(kind domain.PropertyKind, node *yaml.Node) ([]domain.Property, error) {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "expected a mapping"), "line", node.Line)
	}

	props := make([]domain.Property, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var (
			p   domain.Property
			err error
		)
		switch valueNode.Kind {
		case yaml.ScalarNode:
			p, err = domain.NewProperty(kind, keyNode.Value, scalarValue(valueNode))
		case yaml.SequenceNode:
			values := make([]string, 0, len(valueNode.Content))
			for _, item := range valueNode.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed,
						"property values must be scalars"), "property", keyNode.Value), "line", item.Line)
				}
				values = append(values, scalarValue(item))
			}
			p, err = domain.NewMultiValueProperty(kind, keyNode.Value, values...)
		default:
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed,
				"property value must be a scalar or a sequence"), "property", keyNode.Value), "line", valueNode.Line)
		}
		if err != nil {
			return nil, zerr.With(err, "line", keyNode.Line)
		}
		props = append(props, p)
	}

	return props, nil
}

// scalarValue returns the text of a scalar node. Every null spelling yields the empty value.
func scalarValue(node *yaml.Node) string {
	if node.Tag == "!!null" {
		return ""
	}
	return node.Value
}

func resolvePath(root, configured string) string {
	if configured == "" {
		return filepath.Clean(root)
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(root, configured))
}

// resolveTool anchors tool paths such as ./gradlew at the config root.
// Bare executable names are looked up on PATH later.
func resolveTool(root, tool string) string {
	if tool == "" || filepath.IsAbs(tool) || !strings.ContainsRune(tool, '/') {
		return tool
	}
	return filepath.Clean(filepath.Join(root, tool))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error())
	}

	return nil
}
