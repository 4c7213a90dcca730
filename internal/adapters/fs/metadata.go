package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"go.trai.ch/jute/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultClasspath returns the implementation classpath of the plugin under test.
// The metadata file is taken from the JUTE_PLUGIN_METADATA environment variable when set,
// otherwise it is searched for in build/pluginUnderTestMetadata of projectDir and its parents.
func (r *Resolver) DefaultClasspath(projectDir string) ([]string, error) {
	path, err := r.findMetadata(projectDir)
	if err != nil {
		return nil, err
	}

	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPluginMetadataInvalid, err.Error()), "path", path)
	}

	raw, ok := p.Get(domain.PluginMetadataClasspathKey)
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrPluginMetadataInvalid, "missing key"),
			"key", domain.PluginMetadataClasspathKey), "path", path)
	}

	var entries []string
	for _, entry := range filepath.SplitList(raw) {
		if entry = strings.TrimSpace(entry); entry != "" {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrPluginMetadataInvalid, "empty classpath"), "path", path)
	}

	return entries, nil
}

func (r *Resolver) findMetadata(projectDir string) (string, error) {
	if explicit := r.getenv(domain.EnvPluginMetadata); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrPluginMetadataNotFound, err.Error()),
				"env", domain.EnvPluginMetadata), "path", explicit)
		}
		return explicit, nil
	}

	currentDir, err := filepath.Abs(projectDir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrPluginMetadataNotFound, err.Error()), "project_dir", projectDir)
	}

	for {
		candidate := filepath.Join(currentDir, domain.PluginMetadataDir, domain.PluginMetadataFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrPluginMetadataNotFound, "no metadata in any parent directory"),
		"project_dir", projectDir)
}

func (r *Resolver) getenv(key string) string {
	if r.Getenv != nil {
		return r.Getenv(key)
	}
	return os.Getenv(key)
}
