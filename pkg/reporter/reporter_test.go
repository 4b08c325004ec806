//go:build unit

package reporter

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/lerenn/sur/pkg/fs/mocks"
	"github.com/lerenn/sur/pkg/matcher"
	"github.com/lerenn/sur/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func catalogEntry(name, path string) resource.Resource {
	return resource.Resource{
		Name:        name,
		Declaration: resource.Declaration{Type: resource.DeclarationCatalog, CatalogPath: "/app/Assets.xcassets"},
		Kind:        resource.KindImage,
		Path:        path,
	}
}

func standalone(name, path string) resource.Resource {
	return resource.Resource{
		Name:        name,
		Declaration: resource.Declaration{Type: resource.DeclarationFile},
		Kind:        resource.KindImage,
		Path:        path,
	}
}

func TestReporter_Progress(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(NewReporterParams{Writer: &out, NoColor: true})

	r.LoadingProject("App")
	r.ProcessingTarget("App")
	r.NoResources()
	r.TargetFailed("Widgets", errors.New("boom"))
	r.Complete()

	assert.Equal(t, "🔨 Loading project App\n"+
		"📦 Processing target App\n"+
		"    No resources, skip\n"+
		"    Target Widgets failed: boom\n"+
		"🦒 Complete\n", out.String())
}

func TestReporter_Warn(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(NewReporterParams{Writer: &out, NoColor: true})

	r.Warn(catalogEntry("icon_close", "/app/Assets.xcassets/Icons/icon_close.imageset"))
	r.Warn(standalone("splash", "/app/Resources/splash.png"))

	assert.Equal(t, "/app/Assets.xcassets: warning: 'Icons/icon_close' never used\n"+
		"/app/Resources/splash.png: warning: 'splash' never used\n", out.String())
}

func TestReporter_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	var out bytes.Buffer
	r := NewReporter(NewReporterParams{Writer: &out, FS: mockFS, SourceRoot: "/app", NoColor: true})

	result := &matcher.Result{Unused: []resource.Resource{
		catalogEntry("icon_close", "/app/Assets.xcassets/icon_close.imageset"),
		standalone("splash", "/app/Resources/splash.png"),
	}}

	gomock.InOrder(
		mockFS.EXPECT().Size("/app/Assets.xcassets/icon_close.imageset").Return(int64(1500)),
		mockFS.EXPECT().Size("/app/Resources/splash.png").Return(int64(400)),
	)

	total := r.Summary(result)

	assert.Equal(t, int64(1900), total)
	assert.Equal(t, int64(1900), result.TotalSize)
	assert.Equal(t, "    2 unused resources found\n"+
		"     1.5 kB     Assets.xcassets/icon_close.imageset\n"+
		"     400 B      Resources/splash.png\n"+
		"    1.9 kB total\n", out.String())
}

func TestReporter_Summary_Empty(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(NewReporterParams{Writer: &out, NoColor: true})

	total := r.Summary(&matcher.Result{})

	assert.Zero(t, total)
	assert.Equal(t, "    No unused resources found\n", out.String())
}

func TestReporter_Summary_Dimensions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var encoded bytes.Buffer
	require.NoError(t, png.Encode(&encoded, image.NewRGBA(image.Rect(0, 0, 3, 2))))

	mockFS := mocks.NewMockFS(ctrl)
	mockFS.EXPECT().Size("/app/splash.png").Return(int64(encoded.Len()))
	mockFS.EXPECT().ReadFile("/app/splash.png").Return(encoded.Bytes(), nil)
	mockFS.EXPECT().Size("/app/vector.pdf").Return(int64(10))

	var out bytes.Buffer
	r := NewReporter(NewReporterParams{Writer: &out, FS: mockFS, SourceRoot: "/app", ShowDimensions: true, NoColor: true})

	r.Summary(&matcher.Result{Unused: []resource.Resource{
		standalone("splash", "/app/splash.png"),
		standalone("vector", "/app/vector.pdf"),
	}})

	assert.Contains(t, out.String(), "splash.png (3x2)\n")
	assert.Contains(t, out.String(), "vector.pdf\n")
}
