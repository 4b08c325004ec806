package project

import (
	"fmt"
	"path/filepath"
)

type realProject struct {
	name       string
	sourceRoot string
	graph      *graph
	targets    []Target
}

func (p *realProject) Name() string       { return p.name }
func (p *realProject) SourceRoot() string { return p.sourceRoot }
func (p *realProject) Targets() []Target  { return p.targets }

type nativeTarget struct {
	graph  *graph
	object pbxObject
}

func (t *nativeTarget) Name() string { return t.object.Name }

func (t *nativeTarget) ResourcesPhase() (BuildPhase, bool) {
	return t.phase(isaResourcesBuildPhase)
}

func (t *nativeTarget) SourcesPhase() (BuildPhase, bool) {
	return t.phase(isaSourcesBuildPhase)
}

func (t *nativeTarget) phase(isa string) (BuildPhase, bool) {
	for _, id := range t.object.BuildPhases {
		obj, ok := t.graph.objects[id]
		if ok && obj.Isa == isa {
			return &buildPhase{graph: t.graph, id: id, object: obj}, true
		}
	}
	return nil, false
}

func (t *nativeTarget) SynchronizedGroups() []FileElement {
	groups := make([]FileElement, 0, len(t.object.FileSystemSynchronizedGroups))
	for _, id := range t.object.FileSystemSynchronizedGroups {
		groups = append(groups, &fileElement{graph: t.graph, id: id})
	}
	return groups
}

type buildPhase struct {
	graph  *graph
	id     string
	object pbxObject
}

// Files returns the referenced file elements. Variant groups are expanded to their children.
// Build files or file references missing from the object table are skipped.
func (b *buildPhase) Files() ([]FileElement, error) {
	if b.object.Files == nil {
		return nil, fmt.Errorf("%w: phase %s has no file list", ErrFilesNotFound, b.id)
	}

	var elements []FileElement
	for _, buildFileID := range *b.object.Files {
		buildFile, ok := b.graph.objects[buildFileID]
		if !ok {
			b.graph.logger.Logf("Skipping missing build file %s in phase %s", buildFileID, b.id)
			continue
		}

		// Package products have no file reference.
		if buildFile.FileRef == "" {
			continue
		}

		ref, ok := b.graph.objects[buildFile.FileRef]
		if !ok {
			b.graph.logger.Logf("Skipping missing file reference %s of build file %s", buildFile.FileRef, buildFileID)
			continue
		}

		if ref.Isa != isaVariantGroup {
			elements = append(elements, &fileElement{graph: b.graph, id: buildFile.FileRef})
			continue
		}
		for _, child := range ref.Children {
			elements = append(elements, &fileElement{graph: b.graph, id: child})
		}
	}
	return elements, nil
}

type fileElement struct {
	graph *graph
	id    string
}

func (f *fileElement) Name() string {
	obj := f.graph.objects[f.id]
	if obj.Name != "" {
		return obj.Name
	}
	return filepath.Base(obj.Path)
}

func (f *fileElement) FullPath() (string, error) {
	return f.graph.fullPath(f.id)
}
