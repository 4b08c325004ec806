//go:build e2e

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/lerenn/sur/pkg/config"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const projectFixture = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
		B0000001 /* Assets.xcassets in Resources */ = {isa = PBXBuildFile; fileRef = F0000001 /* Assets.xcassets */; };
		B0000002 /* Onboarding.xcassets in Resources */ = {isa = PBXBuildFile; fileRef = F0000002 /* Onboarding.xcassets */; };
		B0000003 /* Main.storyboard in Resources */ = {isa = PBXBuildFile; fileRef = F0000003 /* Main.storyboard */; };
		B0000004 /* View.swift in Sources */ = {isa = PBXBuildFile; fileRef = F0000004 /* View.swift */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		F0000001 /* Assets.xcassets */ = {isa = PBXFileReference; lastKnownFileType = folder.assetcatalog; path = Assets.xcassets; sourceTree = "<group>"; };
		F0000002 /* Onboarding.xcassets */ = {isa = PBXFileReference; lastKnownFileType = folder.assetcatalog; path = Onboarding.xcassets; sourceTree = "<group>"; };
		F0000003 /* Main.storyboard */ = {isa = PBXFileReference; lastKnownFileType = file.storyboard; path = Main.storyboard; sourceTree = "<group>"; };
		F0000004 /* View.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = View.swift; sourceTree = "<group>"; };
/* End PBXFileReference section */

/* Begin PBXGroup section */
		G0000001 = {
			isa = PBXGroup;
			children = (
				G0000002 /* App */,
			);
			sourceTree = "<group>";
		};
		G0000002 /* App */ = {
			isa = PBXGroup;
			children = (
				F0000001 /* Assets.xcassets */,
				F0000002 /* Onboarding.xcassets */,
				F0000003 /* Main.storyboard */,
				F0000004 /* View.swift */,
			);
			path = App;
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXNativeTarget section */
		T0000001 /* App */ = {
			isa = PBXNativeTarget;
			buildPhases = (
				R0000001 /* Sources */,
				R0000002 /* Resources */,
			);
			name = App;
		};
		T0000002 /* AppTests */ = {
			isa = PBXNativeTarget;
			buildPhases = (
			);
			name = AppTests;
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		X0000001 /* Project object */ = {
			isa = PBXProject;
			mainGroup = G0000001;
			projectDirPath = "";
			projectRoot = "";
			targets = (
				T0000001 /* App */,
				T0000002 /* AppTests */,
			);
		};
/* End PBXProject section */

/* Begin PBXResourcesBuildPhase section */
		R0000002 /* Resources */ = {
			isa = PBXResourcesBuildPhase;
			files = (
				B0000001 /* Assets.xcassets in Resources */,
				B0000002 /* Onboarding.xcassets in Resources */,
				B0000003 /* Main.storyboard in Resources */,
			);
		};
/* End PBXResourcesBuildPhase section */

/* Begin PBXSourcesBuildPhase section */
		R0000001 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			files = (
				B0000004 /* View.swift in Sources */,
			);
		};
/* End PBXSourcesBuildPhase section */
	};
	rootObject = X0000001 /* Project object */;
}
`

const viewFixture = `import SwiftUI

struct ContentView: View {
    var body: some View {
        // Image("icon_close")
        Image("logo")
    }
}
`

const storyboardFixture = `<?xml version="1.0" encoding="UTF-8"?>
<document type="com.apple.InterfaceBuilder3.CocoaTouch.Storyboard.XIB" version="3.0">
    <scenes>
        <scene sceneID="s1">
            <objects>
                <view key="view" contentMode="scaleToFill">
                    <color key="backgroundColor" name="brand"/>
                </view>
            </objects>
        </scene>
    </scenes>
    <resources>
        <namedColor name="brand">
            <color red="1" green="0.5" blue="0" alpha="1" colorSpace="custom"/>
        </namedColor>
        <systemColor name="systemBackgroundColor"/>
    </resources>
</document>
`

const contentsFixture = `{"info":{"author":"xcode","version":1}}`

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir     string
	ProjectPath string
	AppPath     string
}

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
	buildOut  []byte
)

// setupTestEnvironment writes an Xcode project with two image sets, one color set,
// one onboarding catalog, a storyboard and a Swift source.
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()

	// Resolved so that printed paths match on systems with a symlinked temp dir.
	tempDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	appPath := filepath.Join(tempDir, "App")
	projectPath := filepath.Join(tempDir, "App.xcodeproj")

	writeFile(t, filepath.Join(projectPath, "project.pbxproj"), projectFixture)
	writeFile(t, filepath.Join(appPath, "View.swift"), viewFixture)
	writeFile(t, filepath.Join(appPath, "Main.storyboard"), storyboardFixture)

	writeImageSet(t, filepath.Join(appPath, "Assets.xcassets", "logo.imageset"), "logo.png", 64)
	writeImageSet(t, filepath.Join(appPath, "Assets.xcassets", "icon_close.imageset"), "icon_close.png", 2048)
	writeFile(t, filepath.Join(appPath, "Assets.xcassets", "brand.colorset", "Contents.json"), contentsFixture)
	writeImageSet(t, filepath.Join(appPath, "Onboarding.xcassets", "welcome.imageset"), "welcome.png", 512)

	return &TestSetup{
		TempDir:     tempDir,
		ProjectPath: projectPath,
		AppPath:     appPath,
	}
}

// writeConfig writes sur.yml at the source root.
func writeConfig(t *testing.T, setup *TestSetup, cfg config.Config) {
	t.Helper()

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	writeFile(t, filepath.Join(setup.TempDir, config.FileName), string(data))
}

func writeImageSet(t *testing.T, dir, image string, size int) {
	t.Helper()

	writeFile(t, filepath.Join(dir, "Contents.json"), contentsFixture)
	writeFile(t, filepath.Join(dir, image), string(make([]byte, size)))
	// Hidden files are not counted in sizes.
	writeFile(t, filepath.Join(dir, ".DS_Store"), "ignored")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// imageSetSize is the size reported for an image set written by writeImageSet.
func imageSetSize(imageSize int) uint64 {
	return uint64(len(contentsFixture) + imageSize)
}

// runSur builds the sur binary once and runs it with args.
func runSur(t *testing.T, setup *TestSetup, args ...string) (string, error) {
	t.Helper()

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "sur-e2e-bin-*")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "sur")

		// Build the binary from the project root
		buildCmd := exec.Command("go", "build", "-o", binPath, "./cmd/sur")
		buildCmd.Dir = ".."
		buildOut, buildErr = buildCmd.CombinedOutput()
	})
	if buildErr != nil {
		t.Logf("Build failed with output: %s", string(buildOut))
	}
	require.NoError(t, buildErr, "Failed to build sur binary")

	cmd := exec.Command(binPath, append([]string{"--no-color"}, args...)...)
	cmd.Dir = setup.TempDir
	output, err := cmd.CombinedOutput()
	return string(output), err
}
