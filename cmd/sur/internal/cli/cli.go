package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lerenn/sur/pkg/collector"
	"github.com/lerenn/sur/pkg/config"
	"github.com/lerenn/sur/pkg/dependencies"
	"github.com/lerenn/sur/pkg/explorer"
	"github.com/lerenn/sur/pkg/explorer/consts"
	"github.com/lerenn/sur/pkg/fs"
	"github.com/lerenn/sur/pkg/hooks"
	"github.com/lerenn/sur/pkg/logger"
	"github.com/lerenn/sur/pkg/matcher"
	"github.com/lerenn/sur/pkg/parser/markup"
	"github.com/lerenn/sur/pkg/parser/swift"
	"github.com/lerenn/sur/pkg/project"
	"github.com/lerenn/sur/pkg/prompt"
	"github.com/lerenn/sur/pkg/reporter"
	"github.com/lerenn/sur/pkg/store"
)

var (
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// NoColor disables colored output.
	NoColor bool
)

// ExploreOptions holds the explore command flags.
type ExploreOptions struct {
	ProjectPath     string
	SourceRoot      string
	Target          string
	SelectTarget    bool
	ShowWarnings    bool
	ShowDimensions  bool
	ContinueOnError bool
	Workers         int
	ParseTimeout    time.Duration
}

// NewLogger returns the verbose logger when enabled, a noop logger otherwise.
func NewLogger() logger.Logger {
	if Verbose {
		return logger.NewWriterLogger(os.Stderr)
	}
	return logger.NewNoopLogger()
}

// GetConfigPath returns the config file path used for a source root.
func GetConfigPath(sourceRoot string) string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return filepath.Join(sourceRoot, config.FileName)
}

// ResolveProjectPath returns the project to explore: projectPath when set,
// otherwise the single .xcodeproj found in dir.
func ResolveProjectPath(fsys fs.FS, projectPath, dir string) (string, error) {
	if projectPath != "" {
		resolved, err := fsys.ResolvePath(dir, projectPath)
		if err != nil {
			return "", err
		}
		if isDir, err := fsys.IsDir(resolved); err != nil || !isDir {
			return "", fmt.Errorf("%w: %s", ErrProjectNotFound, resolved)
		}
		return resolved, nil
	}

	matches, err := fsys.Glob(filepath.Join(dir, "*.xcodeproj"))
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w in %s", ErrProjectNotFound, dir)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %v", ErrAmbiguousProject, matches)
	}
}

// NewExplorer wires every dependency of an exploration.
func NewExplorer(fsys fs.FS, opts ExploreOptions) (explorer.Explorer, error) {
	log := NewLogger()

	sourceRoot := opts.SourceRoot
	if sourceRoot == "" {
		sourceRoot = filepath.Dir(opts.ProjectPath)
	}

	configManager := config.NewManager(config.NewManagerParams{
		FS:         fsys,
		Logger:     log,
		ConfigPath: GetConfigPath(sourceRoot),
	})

	// Rules are resolved once and shared by the parsers and the explorer.
	cfg, err := configManager.GetConfigWithFallback()
	if err != nil {
		return nil, err
	}
	rules, err := cfg.Rules(fsys, sourceRoot)
	if err != nil {
		return nil, err
	}
	kinds := rules.EnabledKinds()

	resourceStore := store.NewStore()
	hookManager := hooks.NewHookManager()
	if Verbose {
		if err := hooks.NewLoggingHook(log).RegisterForOperations(
			hookManager, consts.Explore, consts.ExploreTarget); err != nil {
			return nil, err
		}
	}

	deps := dependencies.New().
		WithFS(fsys).
		WithLogger(log).
		WithConfig(configManager).
		WithHookManager(hookManager).
		WithStore(resourceStore).
		WithProjectLoader(project.NewLoader(project.NewLoaderParams{FS: fsys, Logger: log})).
		WithMatcher(matcher.NewMatcher(matcher.NewMatcherParams{Logger: log})).
		WithCollector(collector.NewCollector(collector.NewCollectorParams{
			FS:           fsys,
			Store:        resourceStore,
			Logger:       log,
			SourceParser: swift.NewParser(swift.NewParserParams{FS: fsys, Kinds: kinds}),
			MarkupParser: markup.NewParser(markup.NewParserParams{FS: fsys, Kinds: kinds}),
			Workers:      opts.Workers,
			ParseTimeout: opts.ParseTimeout,
		})).
		WithReporter(reporter.NewReporter(reporter.NewReporterParams{
			Writer:         os.Stdout,
			FS:             fsys,
			SourceRoot:     sourceRoot,
			ShowDimensions: opts.ShowDimensions,
			NoColor:        NoColor,
		}))

	policy := explorer.FailurePolicyAbort
	if opts.ContinueOnError {
		policy = explorer.FailurePolicyContinue
	}

	return explorer.NewExplorer(explorer.NewExplorerParams{
		Dependencies:  deps,
		ProjectPath:   opts.ProjectPath,
		SourceRoot:    sourceRoot,
		Rules:         &rules,
		Target:        opts.Target,
		SelectTarget:  opts.SelectTarget,
		ShowWarnings:  opts.ShowWarnings,
		FailurePolicy: policy,
	}), nil
}

// WriteDefaultConfig writes the embedded configuration template to path.
// An existing file is only replaced when force is set or the user confirms.
func WriteDefaultConfig(fsys fs.FS, prompter prompt.Prompter, path string, content []byte, force bool) error {
	if force {
		return fsys.WriteFileAtomic(path, content, 0644)
	}

	exists, err := fsys.Exists(path)
	if err != nil {
		return err
	}
	if !exists {
		return fsys.CreateFileIfNotExists(path, content, 0644)
	}

	overwrite, err := prompter.PromptForConfirmation(fmt.Sprintf("%s already exists. Overwrite?", path), false)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigExists, path, err)
	}
	if !overwrite {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	return fsys.WriteFileAtomic(path, content, 0644)
}
