// Package identifier derives the code-level identifiers generated for resource names.
//
// Two schemes exist. The legacy scheme follows R.swift: separators other than
// underscores are dropped and camel-cased. The modern scheme follows the asset
// symbols generated by Xcode: underscores are separators too and a trailing
// "Image" or "Color" suffix is removed.
package identifier

import (
	"regexp"
	"strings"
	"unicode"
)

var kindSuffix = regexp.MustCompile(`(?i)(image|color)+$`)

// Legacy returns the R.swift style identifier for a resource name.
// Keyword escaping with backticks is not applied.
func Legacy(name string) string {
	return build(name, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Modern returns the Xcode asset symbol identifier for a resource name.
func Modern(name string) string {
	return StripKindSuffix(build(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
}

// StripKindSuffix removes a trailing, possibly repeated, "Image" or "Color"
// suffix in any case. An identifier made only of suffixes becomes empty.
func StripKindSuffix(id string) string {
	return kindSuffix.ReplaceAllString(id, "")
}

// Unquote removes the backticks used to escape Swift keywords.
func Unquote(id string) string {
	return strings.Trim(id, "`")
}

func build(name string, isSeparator func(rune) bool) string {
	components := strings.FieldsFunc(name, isSeparator)
	if len(components) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(components[0])
	for _, c := range components[1:] {
		b.WriteString(upperFirst(c))
	}

	return lowerLeading(trimInvalidStart(b.String()))
}

// trimInvalidStart drops leading characters that cannot start an identifier.
func trimInvalidStart(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return r != '_' && !(r < unicode.MaxASCII && unicode.IsLetter(r))
	})
}

func upperFirst(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// lowerLeading lowercases the leading uppercase run, keeping the last capital
// when it starts the next word: "URLImage" becomes "urlImage".
func lowerLeading(s string) string {
	runes := []rune(s)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}

	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
