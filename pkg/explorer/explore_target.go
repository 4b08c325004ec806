package explorer

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lerenn/sur/pkg/matcher"
	"github.com/lerenn/sur/pkg/project"
	"github.com/lerenn/sur/pkg/resource"
)

const (
	catalogExtension = "xcassets"
	sourceExtension  = "swift"
)

// fileExtensions are the standalone resource file extensions.
var fileExtensions = []string{"png", "jpg", "jpeg", "pdf", "gif", "svg"}

// markupExtensions are the Interface Builder file extensions.
var markupExtensions = []string{"xib", "storyboard"}

// groupExtensions are the extensions looked up in synchronized groups.
var groupExtensions = func() []string {
	exts := []string{catalogExtension}
	exts = append(exts, fileExtensions...)
	exts = append(exts, markupExtensions...)
	return append(exts, sourceExtension)
}()

// discovery accumulates the files of one target before they are parsed.
type discovery struct {
	rules   resource.Rules
	markup  []string
	sources []string
	seen    map[string]struct{}
}

func (d *discovery) addSource(path string) {
	if d.rules.IsSourceExcluded(path) {
		return
	}
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.sources = append(d.sources, path)
}

// ExploreTarget collects, matches and reports the resources of one target.
func (e *realExplorer) ExploreTarget(
	ctx context.Context, target project.Target, rules resource.Rules) (*matcher.Result, error) {
	e.deps.Store.Reset()

	resourcesPhase, ok := target.ResourcesPhase()
	if !ok {
		e.deps.Reporter.NoResources()
		return &matcher.Result{}, nil
	}

	d := &discovery{rules: rules, seen: make(map[string]struct{})}

	paths, err := phasePaths(resourcesPhase)
	if err != nil {
		return nil, fmt.Errorf("%w: resource files: %w", ErrNotFound, err)
	}
	for _, path := range paths {
		if err := e.routeResource(d, path); err != nil {
			return nil, err
		}
	}

	if sourcesPhase, ok := target.SourcesPhase(); ok {
		if err := e.collectSourcePaths(d, sourcesPhase); err != nil {
			return nil, err
		}
	}

	for _, group := range target.SynchronizedGroups() {
		if err := e.exploreGroup(d, group); err != nil {
			return nil, err
		}
	}

	e.deps.Collector.CollectMarkup(ctx, d.markup)
	if err := e.deps.Collector.CollectSources(ctx, d.sources); err != nil {
		return nil, err
	}

	return e.analyze(rules), nil
}

// routeResource dispatches a resources phase file by extension.
func (e *realExplorer) routeResource(d *discovery, path string) error {
	ext := extension(path)
	switch {
	case ext == catalogExtension:
		return e.deps.Collector.CollectCatalog(path, d.rules)
	case slices.Contains(fileExtensions, ext):
		e.deps.Collector.CollectFile(path, d.rules)
	case slices.Contains(markupExtensions, ext):
		d.markup = append(d.markup, path)
	default:
		e.VerbosePrint("Ignoring resource file %s", path)
	}
	return nil
}

// collectSourcePaths adds the source files of the sources phase.
// Files outside the source tree (derived or SDK files) are skipped.
func (e *realExplorer) collectSourcePaths(d *discovery, phase project.BuildPhase) error {
	files, err := phase.Files()
	if err != nil {
		return fmt.Errorf("%w: source files: %w", ErrNotFound, err)
	}

	for _, file := range files {
		path, err := file.FullPath()
		if err != nil {
			e.VerbosePrint("Skipping source file %s: %v", file.Name(), err)
			continue
		}
		if extension(path) == sourceExtension {
			d.addSource(path)
		}
	}
	return nil
}

// exploreGroup globs a synchronized group for every known extension.
func (e *realExplorer) exploreGroup(d *discovery, group project.FileElement) error {
	root, err := group.FullPath()
	if err != nil {
		e.VerbosePrint("Skipping synchronized group %s: %v", group.Name(), err)
		return nil
	}

	pattern := doublestar.EscapeMeta(root)
	for _, ext := range groupExtensions {
		matches, err := e.deps.FS.Glob(filepath.Join(pattern, "**", "*."+ext))
		if err != nil {
			e.VerbosePrint("Skipping *.%s in synchronized group %s: %v", ext, root, err)
			continue
		}

		for _, match := range matches {
			// Catalog entries are collected through their catalog.
			if ext != catalogExtension && strings.Contains(match, catalogExtension) {
				continue
			}
			if ext == sourceExtension {
				d.addSource(match)
				continue
			}
			if err := e.routeResource(d, match); err != nil {
				return err
			}
		}
	}
	return nil
}

// analyze matches the store content and renders the result.
func (e *realExplorer) analyze(rules resource.Rules) *matcher.Result {
	var onUnused func(resource.Resource)
	if e.showWarnings {
		onUnused = e.deps.Reporter.Warn
	}

	result := e.deps.Matcher.Match(e.deps.Store.Snapshot(), rules, onUnused)
	if !e.showWarnings {
		e.deps.Reporter.Summary(result)
	}
	return result
}

// phasePaths resolves the absolute path of every file of a build phase.
// Any unresolvable file fails the whole phase.
func phasePaths(phase project.BuildPhase) ([]string, error) {
	files, err := phase.Files()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		path, err := file.FullPath()
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
