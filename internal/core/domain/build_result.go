package domain

import "time"

// Command is a single build tool process invocation.
type Command struct {
	Path string
	Args []string
	Dir  string
	Env  map[string]string
}

// BuildResult is the outcome of one build tool invocation.
type BuildResult struct {
	Fingerprint string        `json:"fingerprint,omitzero"`
	ProjectDir  string        `json:"project_dir,omitzero"`
	Arguments   []string      `json:"arguments,omitempty"`
	ExitCode    int           `json:"exit_code"`
	Success     bool          `json:"success"`
	Duration    time.Duration `json:"duration,omitzero"`
	Timestamp   time.Time     `json:"timestamp,omitzero"`
	Output      string        `json:"-"`
}
