package collector

import (
	"context"
	"fmt"
	"sync"

	"github.com/lerenn/sur/pkg/resource"
	"golang.org/x/sync/errgroup"
)

// CollectSources parses source files concurrently.
// The first failure cancels the remaining tasks and nothing is stored.
func (c *realCollector) CollectSources(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if c.workers > 0 {
		g.SetLimit(c.workers)
	}

	var (
		mu     sync.Mutex
		usages []resource.Usage
	)

	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			found, err := c.parseSource(gctx, path)
			if err != nil {
				return fmt.Errorf("%w %s: %w", ErrParseFailure, path, err)
			}

			mu.Lock()
			usages = append(usages, found...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	c.store.AddUsages(usages...)
	return nil
}

type parseOutcome struct {
	usages []resource.Usage
	err    error
}

// parseSource runs the source parser under the optional per-file deadline.
// A parser that ignores its context is abandoned once the deadline expires.
func (c *realCollector) parseSource(ctx context.Context, path string) ([]resource.Usage, error) {
	if c.parseTimeout <= 0 {
		return c.sourceParser.Parse(ctx, path)
	}

	ctx, cancel := context.WithTimeout(ctx, c.parseTimeout)
	defer cancel()

	done := make(chan parseOutcome, 1)
	go func() {
		usages, err := c.sourceParser.Parse(ctx, path)
		done <- parseOutcome{usages: usages, err: err}
	}()

	select {
	case outcome := <-done:
		return outcome.usages, outcome.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// CollectMarkup parses markup files one after the other, skipping failures.
func (c *realCollector) CollectMarkup(ctx context.Context, paths []string) {
	for _, path := range paths {
		if ctx.Err() != nil {
			return
		}

		usages, err := c.markupParser.Parse(ctx, path)
		if err != nil {
			c.logger.Logf("Skipping markup file %s: %v", path, err)
			continue
		}
		c.store.AddUsages(usages...)
	}
}
