package config

import (
	"fmt"

	"github.com/lerenn/sur/pkg/fs"
	"github.com/lerenn/sur/pkg/resource"
)

// FileName is the configuration file looked up at the project source root.
const FileName = "sur.yml"

// Config represents the sur.yml configuration.
type Config struct {
	Exclude Exclude  `yaml:"exclude"`
	Kinds   []string `yaml:"kinds,omitempty"`
}

// Exclude lists what must be ignored by the exploration.
type Exclude struct {
	// Sources are source file paths, relative paths resolve against the source root.
	Sources []string `yaml:"sources,omitempty"`
	// Resources are resource names that are never reported.
	Resources []string `yaml:"resources,omitempty"`
	// Assets are asset catalog base names whose entries are never collected.
	Assets []string `yaml:"assets,omitempty"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if _, err := c.kinds(); err != nil {
		return err
	}

	for _, source := range c.Exclude.Sources {
		if source == "" {
			return ErrEmptySourcePath
		}
	}

	return nil
}

// Rules converts the configuration into exclusion rules.
// Excluded sources are resolved against sourceRoot.
func (c Config) Rules(fsys fs.FS, sourceRoot string) (resource.Rules, error) {
	kinds, err := c.kinds()
	if err != nil {
		return resource.Rules{}, err
	}

	sources := make([]string, 0, len(c.Exclude.Sources))
	for _, source := range c.Exclude.Sources {
		resolved, err := fsys.ResolvePath(sourceRoot, source)
		if err != nil {
			return resource.Rules{}, fmt.Errorf("failed to resolve excluded source %s: %w", source, err)
		}
		sources = append(sources, resolved)
	}

	return resource.NewRules(sources, c.Exclude.Resources, c.Exclude.Assets, kinds), nil
}

// kinds parses the enabled kinds, an empty list enables all of them.
func (c Config) kinds() ([]resource.Kind, error) {
	if len(c.Kinds) == 0 {
		return resource.AllKinds(), nil
	}

	kinds := make([]resource.Kind, 0, len(c.Kinds))
	for _, name := range c.Kinds {
		kind, err := resource.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKinds, err)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
