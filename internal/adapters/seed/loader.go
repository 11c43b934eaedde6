// Package seed reads YAML files of entries to preload into the registry.
package seed

import (
	"os"

	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Version is the seed file format understood by Loader.
const Version = "1"

// File represents the structure of a seed file.
type File struct {
	Version string           `yaml:"version"`
	Entries []map[string]any `yaml:"entries"`
}

// Loader implements ports.SeedLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the seed file at path. Entries are returned unchecked, in file order;
// validation happens on admission.
func (l *Loader) Load(path string) ([]domain.RawEntry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the operator
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSeedReadFailed.Error()), "path", path)
	}

	var seed File
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSeedParseFailed.Error()), "path", path)
	}

	if seed.Version != "" && seed.Version != Version {
		l.Logger.Warn("unknown seed file version", "path", path, "version", seed.Version)
	}

	entries := make([]domain.RawEntry, 0, len(seed.Entries))
	for _, e := range seed.Entries {
		entries = append(entries, domain.RawEntry(e))
	}
	return entries, nil
}
