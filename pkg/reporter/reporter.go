// Package reporter prints exploration progress, unused resource warnings and summaries.
package reporter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/lerenn/sur/pkg/fs"
	"github.com/lerenn/sur/pkg/matcher"
	"github.com/lerenn/sur/pkg/resource"
)

//go:generate mockgen -source=reporter.go -destination=mocks/reporter.gen.go -package=mocks

// rasterExtensions are the standalone files whose dimensions can be decoded.
var rasterExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// Reporter renders exploration output.
type Reporter interface {
	LoadingProject(name string)
	ProcessingTarget(name string)
	NoResources()
	TargetFailed(name string, err error)
	Complete()
	// Warn prints an inline warning for an unused resource.
	Warn(res resource.Resource)
	// Summary prints the unused resources with their size and records the total in result.
	Summary(result *matcher.Result) int64
}

// NewReporterParams contains parameters for creating a new Reporter instance.
type NewReporterParams struct {
	Writer io.Writer
	FS     fs.FS
	// SourceRoot is trimmed from paths printed in the summary.
	SourceRoot     string
	ShowDimensions bool
	NoColor        bool
}

type realReporter struct {
	w              io.Writer
	fs             fs.FS
	sourceRoot     string
	showDimensions bool

	bold    *color.Color
	warning *color.Color
	total   *color.Color
	success *color.Color
	failure *color.Color
}

// NewReporter creates a new Reporter instance.
func NewReporter(params NewReporterParams) Reporter {
	if params.Writer == nil {
		params.Writer = os.Stdout
	}
	if params.FS == nil {
		params.FS = fs.NewFS()
	}

	r := &realReporter{
		w:              params.Writer,
		fs:             params.FS,
		sourceRoot:     params.SourceRoot,
		showDimensions: params.ShowDimensions,
		bold:           color.New(color.Bold),
		warning:        color.New(color.FgYellow, color.Bold),
		total:          color.New(color.FgYellow),
		success:        color.New(color.FgHiGreen),
		failure:        color.New(color.FgRed, color.Bold),
	}

	if params.NoColor {
		for _, c := range []*color.Color{r.bold, r.warning, r.total, r.success, r.failure} {
			c.DisableColor()
		}
	}

	return r
}

// LoadingProject prints the project loading line.
func (r *realReporter) LoadingProject(name string) {
	r.bold.Fprintf(r.w, "🔨 Loading project %s\n", name)
}

// ProcessingTarget prints the target processing line.
func (r *realReporter) ProcessingTarget(name string) {
	r.bold.Fprintf(r.w, "📦 Processing target %s\n", name)
}

// NoResources prints the notice for targets without resources phase.
func (r *realReporter) NoResources() {
	fmt.Fprintln(r.w, "    No resources, skip")
}

// TargetFailed prints a target failure that did not stop the run.
func (r *realReporter) TargetFailed(name string, err error) {
	r.failure.Fprintf(r.w, "    Target %s failed: %v\n", name, err)
}

// Complete prints the end of run line.
func (r *realReporter) Complete() {
	r.bold.Fprintln(r.w, "🦒 Complete")
}

// Warn prints an inline warning for an unused resource.
func (r *realReporter) Warn(res resource.Resource) {
	if !res.IsCatalogEntry() {
		fmt.Fprintf(r.w, "%s: warning: '%s' never used\n", res.Path, res.Name)
		return
	}

	catalog := res.Declaration.CatalogPath
	name := res.Name
	if rel, ok := trimRoot(res.Path, catalog); ok {
		name = strings.TrimSuffix(rel, filepath.Ext(rel))
	}
	fmt.Fprintf(r.w, "%s: warning: '%s' never used\n", catalog, name)
}

// Summary prints the unused resources with their size and records the total in result.
func (r *realReporter) Summary(result *matcher.Result) int64 {
	if len(result.Unused) == 0 {
		r.success.Fprintln(r.w, "    No unused resources found")
		result.TotalSize = 0
		return 0
	}

	r.warning.Fprintf(r.w, "    %d unused resources found\n", len(result.Unused))

	var total int64
	for _, res := range result.Unused {
		size := r.fs.Size(res.Path)
		total += size

		name := res.Path
		if rel, ok := trimRoot(res.Path, r.sourceRoot); ok {
			name = rel
		}
		fmt.Fprintf(r.w, "     %-10s %s%s\n", humanize.Bytes(uint64(size)), name, r.dimensions(res))
	}

	r.total.Fprintf(r.w, "    %s total\n", humanize.Bytes(uint64(total)))
	result.TotalSize = total
	return total
}

// dimensions returns " (WxH)" for standalone raster images when enabled.
func (r *realReporter) dimensions(res resource.Resource) string {
	if !r.showDimensions || res.IsCatalogEntry() {
		return ""
	}
	if _, ok := rasterExtensions[strings.ToLower(filepath.Ext(res.Path))]; !ok {
		return ""
	}

	data, err := r.fs.ReadFile(res.Path)
	if err != nil {
		return ""
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	bounds := img.Bounds()
	return fmt.Sprintf(" (%dx%d)", bounds.Dx(), bounds.Dy())
}

// trimRoot returns path relative to root when path is inside root.
func trimRoot(path, root string) (string, bool) {
	if root == "" {
		return "", false
	}
	prefix := strings.TrimSuffix(root, string(filepath.Separator)) + string(filepath.Separator)
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	return strings.TrimPrefix(path, prefix), true
}
