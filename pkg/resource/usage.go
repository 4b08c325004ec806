package resource

// PatternType selects how a usage pattern is matched against resource names.
type PatternType int

const (
	// PatternLiteral is a string literal passed to a resource lookup call.
	PatternLiteral PatternType = iota
	// PatternRegex is a regular expression derived from an interpolated literal.
	PatternRegex
	// PatternLegacyIdentifier is an R.swift style generated accessor.
	PatternLegacyIdentifier
	// PatternModernIdentifier is an Xcode generated asset symbol.
	PatternModernIdentifier
)

// String returns a short name for the pattern type.
func (p PatternType) String() string {
	switch p {
	case PatternLiteral:
		return "literal"
	case PatternRegex:
		return "regex"
	case PatternLegacyIdentifier:
		return "legacy-identifier"
	case PatternModernIdentifier:
		return "modern-identifier"
	default:
		return "unknown"
	}
}

// Pattern is the matchable part of a usage.
type Pattern struct {
	Type  PatternType
	Value string
}

// Usage is one reference to a resource found in a source or markup file.
type Usage struct {
	Kind    Kind
	Pattern Pattern
}

// Literal creates a literal usage.
func Literal(kind Kind, value string) Usage {
	return Usage{Kind: kind, Pattern: Pattern{Type: PatternLiteral, Value: value}}
}

// Regex creates a regular expression usage.
func Regex(kind Kind, pattern string) Usage {
	return Usage{Kind: kind, Pattern: Pattern{Type: PatternRegex, Value: pattern}}
}

// LegacyIdentifier creates a legacy generated accessor usage.
func LegacyIdentifier(kind Kind, id string) Usage {
	return Usage{Kind: kind, Pattern: Pattern{Type: PatternLegacyIdentifier, Value: id}}
}

// ModernIdentifier creates a modern generated accessor usage.
func ModernIdentifier(kind Kind, id string) Usage {
	return Usage{Kind: kind, Pattern: Pattern{Type: PatternModernIdentifier, Value: id}}
}
