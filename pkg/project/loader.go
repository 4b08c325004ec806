package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/sur/pkg/fs"
	"github.com/lerenn/sur/pkg/logger"
	"howett.net/plist"
)

// NewLoaderParams contains parameters for creating a new Loader instance.
type NewLoaderParams struct {
	FS     fs.FS
	Logger logger.Logger
}

type realLoader struct {
	fs     fs.FS
	logger logger.Logger
}

// NewLoader creates a new Loader instance.
func NewLoader(params NewLoaderParams) Loader {
	if params.FS == nil {
		params.FS = fs.NewFS()
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}

	return &realLoader{
		fs:     params.FS,
		logger: params.Logger,
	}
}

// Load reads and decodes <projectPath>/project.pbxproj.
func (l *realLoader) Load(projectPath, sourceRoot string) (Project, error) {
	projectPath = filepath.Clean(projectPath)
	descriptor := filepath.Join(projectPath, projectDescriptorFileName)

	data, err := l.fs.ReadFile(descriptor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProjectLoad, err)
	}

	var doc pbxproj
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrProjectLoad, descriptor, err)
	}

	root, ok := doc.Objects[doc.RootObject]
	if !ok || root.Isa != isaProject {
		return nil, fmt.Errorf("%w: %s has no root project object", ErrProjectLoad, descriptor)
	}

	switch {
	case sourceRoot != "":
		sourceRoot = filepath.Clean(sourceRoot)
	case filepath.IsAbs(root.ProjectDirPath):
		sourceRoot = filepath.Clean(root.ProjectDirPath)
	default:
		sourceRoot = filepath.Join(filepath.Dir(projectPath), root.ProjectDirPath)
	}

	p := &realProject{
		name:       strings.TrimSuffix(filepath.Base(projectPath), projectBundleExtension),
		sourceRoot: sourceRoot,
		graph:      newGraph(doc, sourceRoot, l.logger),
	}

	for _, id := range root.Targets {
		obj, ok := doc.Objects[id]
		if !ok || obj.Isa != isaNativeTarget {
			l.logger.Logf("Skipping non native target %s", id)
			continue
		}
		p.targets = append(p.targets, &nativeTarget{graph: p.graph, object: obj})
	}

	return p, nil
}
