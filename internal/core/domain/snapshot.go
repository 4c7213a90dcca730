package domain

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is the ordered, read-only set of properties from the most recent declaration.
// The zero value is an empty snapshot.
type Snapshot struct {
	props []Property
}

// NewSnapshot captures the given properties in order. The input slice is copied.
func NewSnapshot(props ...Property) Snapshot {
	return Snapshot{props: slices.Clone(props)}
}

// Len returns the number of properties in the snapshot.
func (s Snapshot) Len() int {
	return len(s.props)
}

// Properties returns a copy of the captured properties.
func (s Snapshot) Properties() []Property {
	return slices.Clone(s.props)
}

// Options renders every property, in snapshot order.
func (s Snapshot) Options() []string {
	opts := make([]string, len(s.props))
	for i, p := range s.props {
		opts[i] = p.Option()
	}
	return opts
}

// Fingerprint identifies the rendered form of the snapshot.
func (s Snapshot) Fingerprint() string {
	return Fingerprint("", s.Options())
}

// Fingerprint hashes a project directory and an argument list into a short stable key.
func Fingerprint(projectDir string, args []string) string {
	d := xxhash.New()
	_, _ = d.WriteString(projectDir)
	for _, a := range args {
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(a)
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
