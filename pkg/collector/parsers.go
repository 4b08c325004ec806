package collector

import (
	"context"

	"github.com/lerenn/sur/pkg/resource"
)

//go:generate mockgen -source=parsers.go -destination=mocks/parsers.gen.go -package=mocks

// SourceParser turns one source file into usages.
type SourceParser interface {
	Parse(ctx context.Context, path string) ([]resource.Usage, error)
}

// MarkupParser turns one markup file into usages.
type MarkupParser interface {
	Parse(ctx context.Context, path string) ([]resource.Usage, error)
}
