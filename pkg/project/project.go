// Package project reads Xcode projects: targets, build phases and file references.
package project

//go:generate mockgen -source=project.go -destination=mocks/project.gen.go -package=mocks

// Loader loads a project from its .xcodeproj bundle.
type Loader interface {
	// Load reads the project. A non empty sourceRoot replaces the directory
	// that SOURCE_ROOT and top level group paths resolve against.
	Load(projectPath, sourceRoot string) (Project, error)
}

// Project is a loaded Xcode project.
type Project interface {
	// Name is the bundle name without the .xcodeproj extension.
	Name() string
	// SourceRoot is the directory that SOURCE_ROOT relative paths resolve against.
	SourceRoot() string
	// Targets returns the native targets in declaration order.
	Targets() []Target
}

// Target is a native build target.
type Target interface {
	Name() string
	// ResourcesPhase returns the resources build phase, if the target has one.
	ResourcesPhase() (BuildPhase, bool)
	// SourcesPhase returns the sources build phase, if the target has one.
	SourcesPhase() (BuildPhase, bool)
	// SynchronizedGroups returns the file system synchronized root groups.
	SynchronizedGroups() []FileElement
}

// BuildPhase is a build phase listing file references.
type BuildPhase interface {
	// Files returns the referenced file elements. Variant groups are expanded to their children.
	// It fails with ErrFilesNotFound when the phase has no file list.
	Files() ([]FileElement, error)
}

// FileElement is a file reference or a group.
type FileElement interface {
	// Name is the display name of the element.
	Name() string
	// FullPath resolves the absolute path of the element.
	FullPath() (string, error)
}
