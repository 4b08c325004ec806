package collector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lerenn/sur/pkg/resource"
)

// CollectCatalog adds every enabled-kind entry of an asset catalog.
func (c *realCollector) CollectCatalog(catalogPath string, rules resource.Rules) error {
	if rules.IsAssetExcluded(baseName(catalogPath)) {
		c.logger.Logf("Skipping excluded asset catalog %s", catalogPath)
		return nil
	}

	pattern := doublestar.EscapeMeta(catalogPath)
	for _, kind := range rules.EnabledKinds() {
		matches, err := c.fs.Glob(filepath.Join(pattern, "**", "*."+kind.CatalogExtension()))
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrCatalogGlob, catalogPath, err)
		}

		resources := make([]resource.Resource, 0, len(matches))
		for _, match := range matches {
			resources = append(resources, resource.Resource{
				Name: baseName(match),
				Declaration: resource.Declaration{
					Type:        resource.DeclarationCatalog,
					CatalogPath: catalogPath,
				},
				Kind: kind,
				Path: match,
			})
		}
		c.store.AddResources(resources...)
	}

	return nil
}

// CollectFile adds a standalone image file.
func (c *realCollector) CollectFile(path string, rules resource.Rules) {
	if !rules.IsKindEnabled(resource.KindImage) {
		return
	}

	c.store.AddResources(resource.Resource{
		Name:        baseName(path),
		Declaration: resource.Declaration{Type: resource.DeclarationFile},
		Kind:        resource.KindImage,
		Path:        path,
	})
}

// baseName returns the last path element without its extension.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
