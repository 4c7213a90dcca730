package config

import "gopkg.in/yaml.v3"

// SupportedVersion is the only jute.yaml schema version understood by the loader.
const SupportedVersion = "1"

// Jutefile represents the structure of the jute.yaml configuration file.
type Jutefile struct {
	Version          string            `yaml:"version"`
	ProjectDir       string            `yaml:"projectDir"`
	BuildFile        string            `yaml:"buildFile"`
	BuildTool        string            `yaml:"buildTool"`
	Arguments        []string          `yaml:"arguments"`
	Properties       yaml.Node         `yaml:"properties"`
	SystemProperties yaml.Node         `yaml:"systemProperties"`
	PluginClasspath  []string          `yaml:"pluginClasspath"`
	DefaultClasspath bool              `yaml:"defaultClasspath"`
	Environment      map[string]string `yaml:"environment"`
}
