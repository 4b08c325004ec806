// Package explorer walks the targets of a project and reports the resources nobody uses.
package explorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/sur/pkg/dependencies"
	"github.com/lerenn/sur/pkg/explorer/consts"
	"github.com/lerenn/sur/pkg/hooks"
	"github.com/lerenn/sur/pkg/matcher"
	"github.com/lerenn/sur/pkg/project"
	"github.com/lerenn/sur/pkg/prompt"
	"github.com/lerenn/sur/pkg/resource"
)

//go:generate mockgen -source=explorer.go -destination=mocks/explorer.gen.go -package=mocks

// FailurePolicy tells what happens to the run when a target fails.
type FailurePolicy int

const (
	// FailurePolicyAbort stops the run at the first failing target.
	FailurePolicyAbort FailurePolicy = iota
	// FailurePolicyContinue records the failure and explores the next target.
	FailurePolicyContinue
)

// Report is the outcome of exploring a project.
type Report struct {
	Project string
	Targets []TargetReport
}

// TargetReport is the outcome of exploring one target.
type TargetReport struct {
	Name   string
	Result *matcher.Result
	// Err is set for failed targets under FailurePolicyContinue.
	Err error
}

// Explorer explores a project.
type Explorer interface {
	// Explore loads the project and explores its targets one after the other.
	Explore(ctx context.Context) (*Report, error)
	// ExploreTarget collects, matches and reports the resources of one target.
	ExploreTarget(ctx context.Context, target project.Target, rules resource.Rules) (*matcher.Result, error)
}

// NewExplorerParams contains parameters for creating a new Explorer instance.
type NewExplorerParams struct {
	Dependencies *dependencies.Dependencies
	// ProjectPath is the .xcodeproj bundle.
	ProjectPath string
	// SourceRoot overrides the source root declared by the project.
	SourceRoot string
	// Rules are used as is when set. Otherwise they are loaded from the configuration.
	Rules *resource.Rules
	// Target restricts the exploration to the target with this name.
	Target string
	// SelectTarget asks which target to explore when Target is empty.
	SelectTarget bool
	// ShowWarnings prints inline warnings instead of a summary.
	ShowWarnings  bool
	FailurePolicy FailurePolicy
}

type realExplorer struct {
	deps          *dependencies.Dependencies
	projectPath   string
	sourceRoot    string
	rules         *resource.Rules
	target        string
	selectTarget  bool
	showWarnings  bool
	failurePolicy FailurePolicy
}

// NewExplorer creates a new Explorer instance.
func NewExplorer(params NewExplorerParams) Explorer {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	return &realExplorer{
		deps:          deps,
		projectPath:   params.ProjectPath,
		sourceRoot:    params.SourceRoot,
		rules:         params.Rules,
		target:        params.Target,
		selectTarget:  params.SelectTarget,
		showWarnings:  params.ShowWarnings,
		failurePolicy: params.FailurePolicy,
	}
}

// VerbosePrint logs a formatted message using the current logger.
func (e *realExplorer) VerbosePrint(msg string, args ...interface{}) {
	if e.deps.Logger != nil {
		e.deps.Logger.Logf(msg, args...)
	}
}

// Explore loads the project and explores its targets one after the other.
func (e *realExplorer) Explore(ctx context.Context) (*Report, error) {
	if err := e.deps.Validate(); err != nil {
		return nil, err
	}

	var report *Report
	params := map[string]interface{}{
		"project": e.projectPath,
		"target":  e.target,
	}

	err := e.executeWithHooks(consts.Explore, params, func(hookCtx *hooks.HookContext) error {
		var err error
		report, err = e.explore(ctx)
		if report != nil {
			hookCtx.Results["targets"] = len(report.Targets)
		}
		return err
	})

	return report, err
}

func (e *realExplorer) explore(ctx context.Context) (*Report, error) {
	p, err := e.deps.ProjectLoader.Load(e.projectPath, e.sourceRoot)
	if err != nil {
		return nil, err
	}
	e.deps.Reporter.LoadingProject(p.Name())

	rules, err := e.resolveRules(p.SourceRoot())
	if err != nil {
		return nil, err
	}

	targets, err := e.selectTargets(p.Targets())
	if err != nil {
		return nil, err
	}

	report := &Report{Project: p.Name()}
	var failures []error
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		e.deps.Reporter.ProcessingTarget(target.Name())
		result, err := e.exploreTargetWithHooks(ctx, target, rules)
		if err == nil {
			report.Targets = append(report.Targets, TargetReport{Name: target.Name(), Result: result})
			continue
		}

		err = fmt.Errorf("target %s: %w", target.Name(), err)
		if e.failurePolicy == FailurePolicyAbort {
			return report, err
		}

		e.deps.Reporter.TargetFailed(target.Name(), err)
		report.Targets = append(report.Targets, TargetReport{Name: target.Name(), Err: err})
		failures = append(failures, err)
	}

	e.deps.Reporter.Complete()
	return report, errors.Join(failures...)
}

// resolveRules returns the preset rules or loads the configuration,
// falling back to defaults, and resolves it against sourceRoot.
func (e *realExplorer) resolveRules(sourceRoot string) (resource.Rules, error) {
	if e.rules != nil {
		return *e.rules, nil
	}

	cfg, err := e.deps.Config.GetConfigWithFallback()
	if err != nil {
		return resource.Rules{}, err
	}

	rules, err := cfg.Rules(e.deps.FS, sourceRoot)
	if err != nil {
		return resource.Rules{}, fmt.Errorf("%w: %w", ErrInvalidSourceRoot, err)
	}
	return rules, nil
}

func (e *realExplorer) selectTargets(targets []project.Target) ([]project.Target, error) {
	name := e.target
	if name == "" && e.selectTarget {
		choice, err := e.deps.Prompt.PromptSelectTarget(targetChoices(targets))
		if err != nil {
			return nil, err
		}
		name = choice.Name
	}
	if name == "" {
		return targets, nil
	}

	for _, target := range targets {
		if target.Name() == name {
			return []project.Target{target}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, name)
}

func targetChoices(targets []project.Target) []prompt.TargetChoice {
	choices := make([]prompt.TargetChoice, 0, len(targets))
	for _, target := range targets {
		choice := prompt.TargetChoice{Name: target.Name()}
		if _, ok := target.ResourcesPhase(); !ok {
			choice.Label = "no resources"
		}
		choices = append(choices, choice)
	}
	return choices
}

func (e *realExplorer) exploreTargetWithHooks(
	ctx context.Context, target project.Target, rules resource.Rules) (*matcher.Result, error) {
	var result *matcher.Result
	params := map[string]interface{}{
		"target": target.Name(),
	}

	err := e.executeWithHooks(consts.ExploreTarget, params, func(hookCtx *hooks.HookContext) error {
		var err error
		result, err = e.ExploreTarget(ctx, target, rules)
		if err == nil {
			hookCtx.Results["unused"] = len(result.Unused)
		}
		return err
	})

	return result, err
}

// executeWithHooks executes an operation with pre and post hooks.
func (e *realExplorer) executeWithHooks(
	operationName string, params map[string]interface{}, operation func(*hooks.HookContext) error) error {
	ctx := &hooks.HookContext{
		OperationName: operationName,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      make(map[string]interface{}),
	}
	// Execute pre-hooks (if hook manager is available)
	if err := e.executePreHooks(operationName, ctx); err != nil {
		return err
	}
	// Execute operation
	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		resultErr = operation(ctx)
	}()
	// Update context with results
	ctx.Error = resultErr
	if resultErr == nil {
		ctx.Results["success"] = true
	}
	// Execute post-hooks or error-hooks (if hook manager is available)
	if hookErr := e.executeHooks(operationName, ctx, resultErr); hookErr != nil {
		return hookErr
	}
	return resultErr
}

// executeHooks executes post-hooks or error-hooks based on the operation result.
func (e *realExplorer) executeHooks(operationName string, ctx *hooks.HookContext, resultErr error) error {
	if e.deps.HookManager == nil {
		return nil
	}

	if resultErr != nil {
		return e.deps.HookManager.ExecuteErrorHooks(operationName, ctx)
	}
	return e.deps.HookManager.ExecutePostHooks(operationName, ctx)
}

// executePreHooks executes pre-hooks if hook manager is available.
func (e *realExplorer) executePreHooks(operationName string, ctx *hooks.HookContext) error {
	if e.deps.HookManager == nil {
		return nil
	}
	return e.deps.HookManager.ExecutePreHooks(operationName, ctx)
}
