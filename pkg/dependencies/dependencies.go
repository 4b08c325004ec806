// Package dependencies provides a centralized dependency container for the SUR application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/sur/pkg/collector"
	"github.com/lerenn/sur/pkg/config"
	"github.com/lerenn/sur/pkg/fs"
	"github.com/lerenn/sur/pkg/hooks"
	"github.com/lerenn/sur/pkg/logger"
	"github.com/lerenn/sur/pkg/matcher"
	"github.com/lerenn/sur/pkg/project"
	"github.com/lerenn/sur/pkg/prompt"
	"github.com/lerenn/sur/pkg/reporter"
	"github.com/lerenn/sur/pkg/store"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing            = errors.New("fs dependency is required but not set")
	ErrConfigMissing        = errors.New("config dependency is required but not set")
	ErrLoggerMissing        = errors.New("logger dependency is required but not set")
	ErrHookManagerMissing   = errors.New("hook manager dependency is required but not set")
	ErrStoreMissing         = errors.New("store dependency is required but not set")
	ErrProjectLoaderMissing = errors.New("project loader dependency is required but not set")
	ErrCollectorMissing     = errors.New("collector dependency is required but not set")
	ErrMatcherMissing       = errors.New("matcher dependency is required but not set")
	ErrReporterMissing      = errors.New("reporter dependency is required but not set")
	ErrPromptMissing        = errors.New("prompt dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS            fs.FS
	Config        config.Manager
	Logger        logger.Logger
	HookManager   hooks.HookManagerInterface
	Store         store.Store
	ProjectLoader project.Loader
	Collector     collector.Collector
	Matcher       matcher.Matcher
	Reporter      reporter.Reporter
	Prompt        prompt.Prompter
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	fsys := fs.NewFS()
	log := logger.NewNoopLogger()

	return &Dependencies{
		FS:            fsys,
		Logger:        log,
		HookManager:   hooks.NewHookManager(),
		Store:         store.NewStore(),
		ProjectLoader: project.NewLoader(project.NewLoaderParams{FS: fsys, Logger: log}),
		Matcher:       matcher.NewMatcher(matcher.NewMatcherParams{Logger: log}),
		Prompt:        prompt.NewPrompt(),
		// Note: Config, Collector and Reporter depend on the explored project
		// and are set via With* methods
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// WithStore sets the store and returns the instance for chaining.
func (d *Dependencies) WithStore(s store.Store) *Dependencies {
	d.Store = s
	return d
}

// WithProjectLoader sets the project loader and returns the instance for chaining.
func (d *Dependencies) WithProjectLoader(loader project.Loader) *Dependencies {
	d.ProjectLoader = loader
	return d
}

// WithCollector sets the collector and returns the instance for chaining.
func (d *Dependencies) WithCollector(c collector.Collector) *Dependencies {
	d.Collector = c
	return d
}

// WithMatcher sets the matcher and returns the instance for chaining.
func (d *Dependencies) WithMatcher(m matcher.Matcher) *Dependencies {
	d.Matcher = m
	return d
}

// WithReporter sets the reporter and returns the instance for chaining.
func (d *Dependencies) WithReporter(r reporter.Reporter) *Dependencies {
	d.Reporter = r
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(p prompt.Prompter) *Dependencies {
	d.Prompt = p
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.HookManager, ErrHookManagerMissing},
		{d.Store, ErrStoreMissing},
		{d.ProjectLoader, ErrProjectLoaderMissing},
		{d.Collector, ErrCollectorMissing},
		{d.Matcher, ErrMatcherMissing},
		{d.Reporter, ErrReporterMissing},
		{d.Prompt, ErrPromptMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
