// Package resource defines the resources, usages and exclusion rules correlated by SUR.
package resource

import (
	"fmt"
	"strings"
)

// Kind is the family of a resource or usage.
type Kind int

const (
	// KindImage covers image sets and standalone image files.
	KindImage Kind = iota
	// KindColor covers color sets.
	KindColor
)

// AllKinds returns every kind in the order resources are collected.
func AllKinds() []Kind {
	return []Kind{KindImage, KindColor}
}

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindColor:
		return "color"
	default:
		return "unknown"
	}
}

// ParseKind parses a configuration kind name.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "image":
		return KindImage, nil
	case "color":
		return KindColor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// CatalogExtension returns the extension of catalog sub-entries of this kind.
func (k Kind) CatalogExtension() string {
	switch k {
	case KindColor:
		return "colorset"
	default:
		return "imageset"
	}
}
