package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ValueDelimiter joins the values of a multi-value property.
const ValueDelimiter = ","

// PropertyKind classifies a property and decides the flag it is rendered with.
type PropertyKind string

const (
	// KindProject is a project property, rendered as -Pname=value.
	KindProject PropertyKind = "project"
	// KindSystem is a JVM system property, rendered as -Dname=value.
	KindSystem PropertyKind = "system"
)

var kindPrefixes = map[PropertyKind]string{
	KindProject: "-P",
	KindSystem:  "-D",
}

// Prefix returns the command-line flag prefix for the kind and whether the kind is known.
func (k PropertyKind) Prefix() (string, bool) {
	p, ok := kindPrefixes[k]
	return p, ok
}

// Create builds a property of this kind.
func (k PropertyKind) Create(name, value string) (Property, error) {
	return NewProperty(k, name, value)
}

// Property is a named build property that renders to exactly one command-line option.
// It is immutable once built.
type Property struct {
	kind  PropertyKind
	name  string
	value string
}

// NewProperty validates and builds a property.
func NewProperty(kind PropertyKind, name, value string) (Property, error) {
	if _, ok := kind.Prefix(); !ok {
		return Property{}, zerr.With(zerr.Wrap(ErrInvalidProperty, "unknown property kind"), "kind", string(kind))
	}
	if name == "" {
		return Property{}, zerr.With(zerr.Wrap(ErrInvalidProperty, "property name is empty"), "kind", string(kind))
	}
	if strings.Contains(name, "=") {
		return Property{}, zerr.With(zerr.Wrap(ErrInvalidProperty, "property name contains '='"), "name", name)
	}
	return Property{kind: kind, name: name, value: value}, nil
}

// NewMultiValueProperty builds a property whose value is the given values joined by ValueDelimiter.
// A value that itself contains the delimiter is rejected, since it could not be told apart
// from two separate values once joined.
func NewMultiValueProperty(kind PropertyKind, name string, values ...string) (Property, error) {
	for i, v := range values {
		if strings.Contains(v, ValueDelimiter) {
			err := zerr.Wrap(ErrInvalidProperty, "property value contains the value delimiter")
			err = zerr.With(err, "name", name)
			return Property{}, zerr.With(err, "index", i)
		}
	}
	return NewProperty(kind, name, strings.Join(values, ValueDelimiter))
}

// ParseAssignment builds a property from a "name=value" assignment, splitting at the first '='.
func ParseAssignment(kind PropertyKind, assignment string) (Property, error) {
	name, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return Property{}, zerr.With(zerr.Wrap(ErrInvalidProperty, "expected name=value"), "assignment", assignment)
	}
	return NewProperty(kind, name, value)
}

// Kind returns the property kind.
func (p Property) Kind() PropertyKind { return p.kind }

// Name returns the property name.
func (p Property) Name() string { return p.name }

// Value returns the property value, joined if it was built from several values.
func (p Property) Value() string { return p.value }

// Option renders the property as a single command-line token, e.g. -Pfoo=bar.
func (p Property) Option() string {
	prefix, _ := p.kind.Prefix()
	return prefix + p.name + "=" + p.value
}

// String implements fmt.Stringer.
func (p Property) String() string {
	return p.Option()
}
