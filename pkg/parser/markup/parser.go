// Package markup extracts resource usages from Interface Builder files (.xib and .storyboard).
package markup

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/lerenn/sur/pkg/fs"
	"github.com/lerenn/sur/pkg/resource"
)

// imageAttributes are the element attributes holding an image name.
var imageAttributes = map[string]struct{}{
	"image":            {},
	"highlightedImage": {},
	"selectedImage":    {},
	"backgroundImage":  {},
	"disabledImage":    {},
}

// Parser extracts resource usages from one markup file.
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

// NewParser creates a new markup Parser instance.
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

// Parse reads the markup file at path and returns the usages it contains.
func (p *realParser) Parse(ctx context.Context, path string) ([]resource.Usage, error) {
	content, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadMarkup, path, err)
	}

	decoder := xml.NewDecoder(bytes.NewReader(content))

	var usages []resource.Usage
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrMalformedMarkup, path, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		usages = append(usages, p.elementUsages(start)...)
	}

	return usages, nil
}

func (p *realParser) elementUsages(start xml.StartElement) []resource.Usage {
	var usages []resource.Usage

	switch start.Name.Local {
	case "image":
		if name := attr(start, "name"); name != "" && attr(start, "catalog") != "system" {
			usages = p.add(usages, resource.Literal(resource.KindImage, name))
		}
	case "color", "namedColor":
		if name := attr(start, "name"); name != "" && attr(start, "catalog") != "System" {
			usages = p.add(usages, resource.Literal(resource.KindColor, name))
		}
	}

	for _, a := range start.Attr {
		if _, ok := imageAttributes[a.Name.Local]; ok && a.Value != "" {
			usages = p.add(usages, resource.Literal(resource.KindImage, a.Value))
		}
	}

	return usages
}

func (p *realParser) add(usages []resource.Usage, usage resource.Usage) []resource.Usage {
	if _, enabled := p.kinds[usage.Kind]; !enabled {
		return usages
	}
	return append(usages, usage)
}

func attr(start xml.StartElement, name string) string {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
