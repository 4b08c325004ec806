package swift

import (
	"regexp"
	"strings"
)

// literalPattern converts the content of a Swift string literal into a usage
// value. Interpolated literals become a regular expression where every
// interpolation matches anything.
func literalPattern(content string) (value string, isRegex bool) {
	var (
		parts    []string
		static   strings.Builder
		interped bool
	)

	for i := 0; i < len(content); i++ {
		c := content[i]
		if c != '\\' || i+1 >= len(content) {
			static.WriteByte(c)
			continue
		}

		i++
		switch content[i] {
		case '(':
			end := closingParen(content, i)
			parts = append(parts, static.String())
			static.Reset()
			interped = true
			i = end
		case 'n':
			static.WriteByte('\n')
		case 't':
			static.WriteByte('\t')
		case '0':
			static.WriteByte(0)
		default:
			static.WriteByte(content[i])
		}
	}
	parts = append(parts, static.String())

	if !interped {
		return parts[0], false
	}

	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(quoted, ".*"), true
}

// closingParen returns the index of the parenthesis closing the one at open,
// or the last index when it is unbalanced.
func closingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(s) - 1
}
