//go:build unit

package project

import (
	"errors"
	"testing"

	"github.com/lerenn/sur/pkg/fs/mocks"
	loggermocks "github.com/lerenn/sur/pkg/logger/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const pbxprojFixture = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 77;
	objects = {

/* Begin PBXBuildFile section */
		B1000001 /* Assets.xcassets in Resources */ = {isa = PBXBuildFile; fileRef = F1000001 /* Assets.xcassets */; };
		B1000002 /* Main.storyboard in Resources */ = {isa = PBXBuildFile; fileRef = V1000001 /* Main.storyboard */; };
		B1000003 /* splash.png in Resources */ = {isa = PBXBuildFile; fileRef = F1000003 /* splash.png */; };
		B1000004 /* AppDelegate.swift in Sources */ = {isa = PBXBuildFile; fileRef = F1000004 /* AppDelegate.swift */; };
		B1000005 /* Shared.swift in Sources */ = {isa = PBXBuildFile; fileRef = F1000005 /* Shared.swift */; };
		B1000006 /* Package in Frameworks */ = {isa = PBXBuildFile; productRef = P1000001 /* Package */; };
		B1000007 /* Product.app in Resources */ = {isa = PBXBuildFile; fileRef = F1000007 /* Product.app */; };
		B1000008 /* Removed.png in Resources */ = {isa = PBXBuildFile; fileRef = F9999999 /* Removed.png */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		F1000001 /* Assets.xcassets */ = {isa = PBXFileReference; lastKnownFileType = folder.assetcatalog; path = Assets.xcassets; sourceTree = "<group>"; };
		F1000002 /* Base */ = {isa = PBXFileReference; lastKnownFileType = file.storyboard; name = Base; path = Base.lproj/Main.storyboard; sourceTree = "<group>"; };
		F1000003 /* splash.png */ = {isa = PBXFileReference; lastKnownFileType = image.png; path = Resources/splash.png; sourceTree = SOURCE_ROOT; };
		F1000004 /* AppDelegate.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = AppDelegate.swift; sourceTree = "<group>"; };
		F1000005 /* Shared.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = /opt/shared/Shared.swift; sourceTree = "<absolute>"; };
		F1000006 /* fr */ = {isa = PBXFileReference; lastKnownFileType = file.storyboard; name = fr; path = fr.lproj/Main.storyboard; sourceTree = "<group>"; };
		F1000007 /* Product.app */ = {isa = PBXFileReference; explicitFileType = wrapper.application; path = Product.app; sourceTree = BUILT_PRODUCTS_DIR; };
/* End PBXFileReference section */

/* Begin PBXFileSystemSynchronizedRootGroup section */
		S1000001 /* Features */ = {isa = PBXFileSystemSynchronizedRootGroup; path = Features; sourceTree = "<group>"; };
/* End PBXFileSystemSynchronizedRootGroup section */

/* Begin PBXGroup section */
		G1000001 = {
			isa = PBXGroup;
			children = (
				G1000002 /* App */,
			);
			sourceTree = "<group>";
		};
		G1000002 /* App */ = {
			isa = PBXGroup;
			children = (
				F1000001 /* Assets.xcassets */,
				V1000001 /* Main.storyboard */,
				F1000004 /* AppDelegate.swift */,
				S1000001 /* Features */,
			);
			path = App;
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXVariantGroup section */
		V1000001 /* Main.storyboard */ = {
			isa = PBXVariantGroup;
			children = (
				F1000002 /* Base */,
				F1000006 /* fr */,
			);
			name = Main.storyboard;
			sourceTree = "<group>";
		};
/* End PBXVariantGroup section */

/* Begin PBXNativeTarget section */
		T1000001 /* App */ = {
			isa = PBXNativeTarget;
			buildPhases = (
				R1000001 /* Sources */,
				R1000002 /* Resources */,
			);
			fileSystemSynchronizedGroups = (
				S1000001 /* Features */,
			);
			name = App;
			productName = App;
		};
		T1000002 /* Widgets */ = {
			isa = PBXNativeTarget;
			buildPhases = (
				R1000003 /* Resources */,
			);
			name = Widgets;
		};
		T1000003 /* Lint */ = {
			isa = PBXAggregateTarget;
			name = Lint;
		};
		T1000004 /* Extension */ = {
			isa = PBXNativeTarget;
			buildPhases = (
				R1000004 /* Resources */,
			);
			name = Extension;
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		X1000001 /* Project object */ = {
			isa = PBXProject;
			mainGroup = G1000001;
			projectDirPath = "";
			projectRoot = "";
			targets = (
				T1000001 /* App */,
				T1000002 /* Widgets */,
				T1000003 /* Lint */,
				T1000004 /* Extension */,
			);
		};
/* End PBXProject section */

/* Begin PBXResourcesBuildPhase section */
		R1000002 /* Resources */ = {
			isa = PBXResourcesBuildPhase;
			files = (
				B1000001 /* Assets.xcassets in Resources */,
				B1000002 /* Main.storyboard in Resources */,
				B1000003 /* splash.png in Resources */,
				B1000006 /* Package in Frameworks */,
				B1000007 /* Product.app in Resources */,
			);
		};
		R1000003 /* Resources */ = {
			isa = PBXResourcesBuildPhase;
			files = (
				B9999999 /* Missing */,
				B1000008 /* Removed.png in Resources */,
				B1000003 /* splash.png in Resources */,
			);
		};
		R1000004 /* Resources */ = {
			isa = PBXResourcesBuildPhase;
		};
/* End PBXResourcesBuildPhase section */

/* Begin PBXSourcesBuildPhase section */
		R1000001 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			files = (
				B1000004 /* AppDelegate.swift in Sources */,
				B1000005 /* Shared.swift in Sources */,
			);
		};
/* End PBXSourcesBuildPhase section */
	};
	rootObject = X1000001 /* Project object */;
}
`

func loadFixture(t *testing.T) Project {
	t.Helper()
	return loadFixtureWithSourceRoot(t, "")
}

func loadFixtureWithSourceRoot(t *testing.T, sourceRoot string) Project {
	t.Helper()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	mockFS.EXPECT().ReadFile("/work/App.xcodeproj/project.pbxproj").Return([]byte(pbxprojFixture), nil)

	loader := NewLoader(NewLoaderParams{FS: mockFS})
	p, err := loader.Load("/work/App.xcodeproj", sourceRoot)
	require.NoError(t, err)
	return p
}

func fullPaths(t *testing.T, elements []FileElement) []string {
	t.Helper()

	paths := make([]string, 0, len(elements))
	for _, e := range elements {
		path, err := e.FullPath()
		if err != nil {
			paths = append(paths, "unresolved:"+e.Name())
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

func TestLoader_Load(t *testing.T) {
	p := loadFixture(t)

	assert.Equal(t, "App", p.Name())
	assert.Equal(t, "/work", p.SourceRoot())

	require.Len(t, p.Targets(), 3)
	assert.Equal(t, "App", p.Targets()[0].Name())
	assert.Equal(t, "Widgets", p.Targets()[1].Name())
	assert.Equal(t, "Extension", p.Targets()[2].Name())
}

func TestLoader_Load_SourceRootOverride(t *testing.T) {
	p := loadFixtureWithSourceRoot(t, "/checkout/ios/")
	assert.Equal(t, "/checkout/ios", p.SourceRoot())

	app := p.Targets()[0]
	resources, _ := app.ResourcesPhase()
	files, err := resources.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/checkout/ios/App/Assets.xcassets",
		"/checkout/ios/App/Base.lproj/Main.storyboard",
		"/checkout/ios/App/fr.lproj/Main.storyboard",
		"/checkout/ios/Resources/splash.png",
		"unresolved:Product.app",
	}, fullPaths(t, files))

	sources, _ := app.SourcesPhase()
	files, err = sources.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/checkout/ios/App/AppDelegate.swift",
		"/opt/shared/Shared.swift",
	}, fullPaths(t, files))

	assert.Equal(t, []string{"/checkout/ios/App/Features"}, fullPaths(t, app.SynchronizedGroups()))
}

func TestTarget_ResourcesPhase(t *testing.T) {
	app := loadFixture(t).Targets()[0]

	phase, ok := app.ResourcesPhase()
	require.True(t, ok)

	files, err := phase.Files()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/work/App/Assets.xcassets",
		"/work/App/Base.lproj/Main.storyboard",
		"/work/App/fr.lproj/Main.storyboard",
		"/work/Resources/splash.png",
		"unresolved:Product.app",
	}, fullPaths(t, files))
}

func TestTarget_SourcesPhase(t *testing.T) {
	app := loadFixture(t).Targets()[0]

	phase, ok := app.SourcesPhase()
	require.True(t, ok)

	files, err := phase.Files()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/work/App/AppDelegate.swift",
		"/opt/shared/Shared.swift",
	}, fullPaths(t, files))
}

func TestTarget_SynchronizedGroups(t *testing.T) {
	app := loadFixture(t).Targets()[0]

	assert.Equal(t, []string{"/work/App/Features"}, fullPaths(t, app.SynchronizedGroups()))
}

func TestTarget_MissingPhase(t *testing.T) {
	widgets := loadFixture(t).Targets()[1]

	_, ok := widgets.SourcesPhase()
	assert.False(t, ok)
	assert.Empty(t, widgets.SynchronizedGroups())
}

func TestBuildPhase_Files_SkipsMissingObjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	mockFS.EXPECT().ReadFile("/work/App.xcodeproj/project.pbxproj").Return([]byte(pbxprojFixture), nil)
	mockLogger := loggermocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Logf("Skipping non native target %s", "T1000003").AnyTimes()
	mockLogger.EXPECT().Logf("Skipping missing build file %s in phase %s", "B9999999", "R1000003")
	mockLogger.EXPECT().Logf("Skipping missing file reference %s of build file %s", "F9999999", "B1000008")

	p, err := NewLoader(NewLoaderParams{FS: mockFS, Logger: mockLogger}).Load("/work/App.xcodeproj", "")
	require.NoError(t, err)

	phase, ok := p.Targets()[1].ResourcesPhase()
	require.True(t, ok)

	files, err := phase.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/Resources/splash.png"}, fullPaths(t, files))
}

func TestBuildPhase_Files_NoFileList(t *testing.T) {
	extension := loadFixture(t).Targets()[2]

	phase, ok := extension.ResourcesPhase()
	require.True(t, ok)

	_, err := phase.Files()
	assert.ErrorIs(t, err, ErrFilesNotFound)
}

func TestFileElement_FullPath_Unresolved(t *testing.T) {
	app := loadFixture(t).Targets()[0]

	phase, _ := app.ResourcesPhase()
	files, err := phase.Files()
	require.NoError(t, err)

	_, err = files[len(files)-1].FullPath()
	assert.ErrorIs(t, err, ErrPathUnresolved)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		readErr error
	}{
		{name: "read failure", readErr: errors.New("no such file")},
		{name: "not a property list", content: []byte("{ objects = ")},
		{name: "missing root object", content: []byte(`{ objects = { }; rootObject = X; }`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFS(ctrl)
			mockFS.EXPECT().ReadFile("/work/App.xcodeproj/project.pbxproj").Return(tt.content, tt.readErr)

			_, err := NewLoader(NewLoaderParams{FS: mockFS}).Load("/work/App.xcodeproj", "")
			assert.ErrorIs(t, err, ErrProjectLoad)
		})
	}
}
