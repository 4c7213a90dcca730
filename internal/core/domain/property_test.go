package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jute/internal/core/domain"
)

func TestNewProperty(t *testing.T) {
	tests := []struct {
		name       string
		kind       domain.PropertyKind
		propName   string
		value      string
		wantOption string
		wantErr    string
	}{
		{
			name:       "project property",
			kind:       domain.KindProject,
			propName:   "foo",
			value:      "bar",
			wantOption: "-Pfoo=bar",
		},
		{
			name:       "system property",
			kind:       domain.KindSystem,
			propName:   "org.gradle.caching",
			value:      "true",
			wantOption: "-Dorg.gradle.caching=true",
		},
		{
			name:       "empty value",
			kind:       domain.KindProject,
			propName:   "flag",
			value:      "",
			wantOption: "-Pflag=",
		},
		{
			name:       "value with equals sign",
			kind:       domain.KindProject,
			propName:   "expr",
			value:      "a=b",
			wantOption: "-Pexpr=a=b",
		},
		{
			name:     "empty name",
			kind:     domain.KindProject,
			propName: "",
			value:    "bar",
			wantErr:  "property name is empty",
		},
		{
			name:     "name with equals sign",
			kind:     domain.KindProject,
			propName: "a=b",
			value:    "c",
			wantErr:  "property name contains '='",
		},
		{
			name:     "unknown kind",
			kind:     domain.PropertyKind("environment"),
			propName: "foo",
			value:    "bar",
			wantErr:  "unknown property kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := domain.NewProperty(tt.kind, tt.propName, tt.value)
			if tt.wantErr != "" {
				require.Error(t, err)
				require.ErrorIs(t, err, domain.ErrInvalidProperty)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, p.Kind())
			assert.Equal(t, tt.propName, p.Name())
			assert.Equal(t, tt.value, p.Value())
			assert.Equal(t, tt.wantOption, p.Option())
			assert.Equal(t, tt.wantOption, p.String())
		})
	}
}

func TestProperty_OptionIsStable(t *testing.T) {
	a, err := domain.KindProject.Create("name", "value")
	require.NoError(t, err)
	b, err := domain.NewProperty(domain.KindProject, "name", "value")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a.Option(), a.Option())
	assert.Equal(t, a.Option(), b.Option())
}

func TestNewMultiValueProperty(t *testing.T) {
	t.Run("joins values", func(t *testing.T) {
		p, err := domain.NewMultiValueProperty(domain.KindProject, "list", "x", "y", "z")
		require.NoError(t, err)
		assert.Equal(t, "x,y,z", p.Value())
		assert.Equal(t, "-Plist=x,y,z", p.Option())
	})

	t.Run("single value", func(t *testing.T) {
		p, err := domain.NewMultiValueProperty(domain.KindProject, "list", "only")
		require.NoError(t, err)
		assert.Equal(t, "only", p.Value())
	})

	t.Run("no values", func(t *testing.T) {
		p, err := domain.NewMultiValueProperty(domain.KindProject, "list")
		require.NoError(t, err)
		assert.Empty(t, p.Value())
		assert.Equal(t, "-Plist=", p.Option())
	})

	t.Run("rejects value containing delimiter", func(t *testing.T) {
		_, err := domain.NewMultiValueProperty(domain.KindProject, "list", "x", "y,z")
		require.ErrorIs(t, err, domain.ErrInvalidProperty)
		assert.Contains(t, err.Error(), "value delimiter")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := domain.NewMultiValueProperty(domain.KindProject, "", "x")
		require.ErrorIs(t, err, domain.ErrInvalidProperty)
	})
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		input     string
		wantName  string
		wantValue string
		wantErr   bool
	}{
		{input: "foo=bar", wantName: "foo", wantValue: "bar"},
		{input: "foo=", wantName: "foo", wantValue: ""},
		{input: "foo=a=b", wantName: "foo", wantValue: "a=b"},
		{input: "list=x,y", wantName: "list", wantValue: "x,y"},
		{input: "foo", wantErr: true},
		{input: "=bar", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := domain.ParseAssignment(domain.KindProject, tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidProperty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.wantValue, p.Value())
		})
	}
}
