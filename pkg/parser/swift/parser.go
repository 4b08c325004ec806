// Package swift extracts resource usages from Swift source files.
package swift

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/lerenn/sur/pkg/fs"
	"github.com/lerenn/sur/pkg/resource"
)

const (
	stringLiteral = `"((?:[^"\\\n]|\\.)*)"`
	ident         = "(`?[A-Za-z_][A-Za-z0-9_]*`?)"
)

type rule struct {
	kind    resource.Kind
	re      *regexp.Regexp
	produce func(kind resource.Kind, match string) resource.Usage
}

func literalRule(kind resource.Kind, prefix string) rule {
	return rule{
		kind: kind,
		re:   regexp.MustCompile(prefix + `\s*` + stringLiteral),
		produce: func(kind resource.Kind, match string) resource.Usage {
			value, isRegex := literalPattern(match)
			if isRegex {
				return resource.Regex(kind, value)
			}
			return resource.Literal(kind, value)
		},
	}
}

func identifierRule(kind resource.Kind, prefix string, produce func(resource.Kind, string) resource.Usage) rule {
	return rule{
		kind:    kind,
		re:      regexp.MustCompile(prefix + `\s*` + ident),
		produce: produce,
	}
}

var rules = []rule{
	literalRule(resource.KindImage, `\b(?:UIImage|NSImage)\s*\(\s*named\s*:`),
	literalRule(resource.KindImage, `\bImage\s*\(\s*(?:decorative\s*:)?`),
	literalRule(resource.KindImage, `\bSKTexture\s*\(\s*imageNamed\s*:`),
	literalRule(resource.KindImage, `#imageLiteral\s*\(\s*resourceName\s*:`),
	literalRule(resource.KindColor, `\b(?:UIColor|NSColor)\s*\(\s*named\s*:`),
	literalRule(resource.KindColor, `\bColor\s*\(`),

	identifierRule(resource.KindImage, `\bR\.image\.`, resource.LegacyIdentifier),
	identifierRule(resource.KindColor, `\bR\.color\.`, resource.LegacyIdentifier),

	identifierRule(resource.KindImage, `\bImageResource\.`, resource.ModernIdentifier),
	identifierRule(resource.KindImage, `\b(?:UIImage|NSImage)\s*\(\s*resource\s*:\s*\.`, resource.ModernIdentifier),
	identifierRule(resource.KindImage, `\bImage\s*\(\s*\.`, resource.ModernIdentifier),
	identifierRule(resource.KindColor, `\bColorResource\.`, resource.ModernIdentifier),
	identifierRule(resource.KindColor, `\b(?:UIColor|NSColor)\s*\(\s*resource\s*:\s*\.`, resource.ModernIdentifier),
	identifierRule(resource.KindColor, `\bColor\s*\(\s*\.`, resource.ModernIdentifier),
}

// Parser extracts resource usages from one source file.
type Parser interface {
	Parse(ctx context.Context, path string) ([]resource.Usage, error)
}

// NewParserParams contains parameters for creating a new Parser instance.
type NewParserParams struct {
	FS fs.FS
	// Kinds restricts the emitted usages. Empty means every kind.
	Kinds []resource.Kind
}

type realParser struct {
	fs    fs.FS
	kinds map[resource.Kind]struct{}
}

// NewParser creates a new Swift Parser instance.
func NewParser(params NewParserParams) Parser {
	if params.FS == nil {
		params.FS = fs.NewFS()
	}
	if len(params.Kinds) == 0 {
		params.Kinds = resource.AllKinds()
	}

	kinds := make(map[resource.Kind]struct{}, len(params.Kinds))
	for _, k := range params.Kinds {
		kinds[k] = struct{}{}
	}

	return &realParser{
		fs:    params.FS,
		kinds: kinds,
	}
}

// Parse reads the file at path and returns the usages it contains.
func (p *realParser) Parse(ctx context.Context, path string) ([]resource.Usage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadSource, path, err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}

	return p.scan(ctx, stripComments(content))
}

func (p *realParser) scan(ctx context.Context, src []byte) ([]resource.Usage, error) {
	var usages []resource.Usage
	for _, r := range rules {
		if _, enabled := p.kinds[r.kind]; !enabled {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, m := range r.re.FindAllSubmatch(src, -1) {
			usages = append(usages, r.produce(r.kind, string(m[1])))
		}
	}
	return usages, nil
}
