// Package collector turns discovered files into resources and usages.
package collector

import (
	"context"
	"time"

	"github.com/lerenn/sur/pkg/fs"
	"github.com/lerenn/sur/pkg/logger"
	"github.com/lerenn/sur/pkg/resource"
	"github.com/lerenn/sur/pkg/store"
)

//go:generate mockgen -source=collector.go -destination=mocks/collector.gen.go -package=mocks

// Collector feeds the store with the resources and usages of the files it is given.
type Collector interface {
	// CollectCatalog adds every enabled-kind entry of an asset catalog.
	CollectCatalog(catalogPath string, rules resource.Rules) error
	// CollectFile adds a standalone image file.
	CollectFile(path string, rules resource.Rules)
	// CollectSources parses source files concurrently. Usages are stored only
	// when every file of the batch was parsed.
	CollectSources(ctx context.Context, paths []string) error
	// CollectMarkup parses markup files one after the other, skipping failures.
	CollectMarkup(ctx context.Context, paths []string)
}

// NewCollectorParams contains parameters for creating a new Collector instance.
type NewCollectorParams struct {
	FS           fs.FS
	Store        store.Store
	Logger       logger.Logger
	SourceParser SourceParser
	MarkupParser MarkupParser
	// Workers caps concurrent source parsing. Zero means one task per file at once.
	Workers int
	// ParseTimeout bounds each source file parse. Zero means no deadline.
	ParseTimeout time.Duration
}

type realCollector struct {
	fs           fs.FS
	store        store.Store
	logger       logger.Logger
	sourceParser SourceParser
	markupParser MarkupParser
	workers      int
	parseTimeout time.Duration
}

// NewCollector creates a new Collector instance.
func NewCollector(params NewCollectorParams) Collector {
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}

	return &realCollector{
		fs:           params.FS,
		store:        params.Store,
		logger:       params.Logger,
		sourceParser: params.SourceParser,
		markupParser: params.MarkupParser,
		workers:      params.Workers,
		parseTimeout: params.ParseTimeout,
	}
}
