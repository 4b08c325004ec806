package project

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/sur/pkg/logger"
)

const (
	isaProject                = "PBXProject"
	isaNativeTarget           = "PBXNativeTarget"
	isaResourcesBuildPhase    = "PBXResourcesBuildPhase"
	isaSourcesBuildPhase      = "PBXSourcesBuildPhase"
	isaVariantGroup           = "PBXVariantGroup"
	sourceTreeAbsolute        = "<absolute>"
	sourceTreeGroup           = "<group>"
	sourceTreeSourceRoot      = "SOURCE_ROOT"
	projectDescriptorFileName = "project.pbxproj"
	projectBundleExtension    = ".xcodeproj"
	maxGroupDepth             = 256
)

// pbxproj is the decoded project.pbxproj document.
type pbxproj struct {
	RootObject string               `plist:"rootObject"`
	Objects    map[string]pbxObject `plist:"objects"`
}

// pbxObject holds the object fields used while exploring. Unknown keys are ignored.
type pbxObject struct {
	Isa                          string    `plist:"isa"`
	Name                         string    `plist:"name"`
	Path                         string    `plist:"path"`
	SourceTree                   string    `plist:"sourceTree"`
	Children                     []string  `plist:"children"`
	Files                        *[]string `plist:"files"`
	FileRef                      string    `plist:"fileRef"`
	BuildPhases                  []string  `plist:"buildPhases"`
	Targets                      []string  `plist:"targets"`
	MainGroup                    string    `plist:"mainGroup"`
	ProjectDirPath               string    `plist:"projectDirPath"`
	FileSystemSynchronizedGroups []string  `plist:"fileSystemSynchronizedGroups"`
}

// graph indexes the objects of a project and resolves file element paths.
type graph struct {
	objects    map[string]pbxObject
	parents    map[string]string
	sourceRoot string
	logger     logger.Logger
}

func newGraph(doc pbxproj, sourceRoot string, log logger.Logger) *graph {
	parents := make(map[string]string)
	for id, obj := range doc.Objects {
		for _, child := range obj.Children {
			parents[child] = id
		}
	}

	return &graph{
		objects:    doc.Objects,
		parents:    parents,
		sourceRoot: sourceRoot,
		logger:     log,
	}
}

// fullPath resolves the absolute path of the element with the given id.
func (g *graph) fullPath(id string) (string, error) {
	return g.resolve(id, 0)
}

func (g *graph) resolve(id string, depth int) (string, error) {
	if depth > maxGroupDepth {
		return "", fmt.Errorf("%w: group cycle at %s", ErrPathUnresolved, id)
	}

	obj, ok := g.objects[id]
	if !ok {
		return "", fmt.Errorf("%w: unknown object %s", ErrPathUnresolved, id)
	}

	switch obj.SourceTree {
	case sourceTreeAbsolute:
		return filepath.Clean(obj.Path), nil
	case sourceTreeSourceRoot:
		return filepath.Join(g.sourceRoot, obj.Path), nil
	case sourceTreeGroup:
		parent, ok := g.parents[id]
		if !ok {
			return filepath.Join(g.sourceRoot, obj.Path), nil
		}
		parentPath, err := g.resolve(parent, depth+1)
		if err != nil {
			return "", err
		}
		return filepath.Join(parentPath, obj.Path), nil
	default:
		return "", fmt.Errorf("%w: %s has source tree %q", ErrPathUnresolved, id, obj.SourceTree)
	}
}
