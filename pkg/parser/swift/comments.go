package swift

// stripComments blanks line and (nested) block comments, keeping string
// literals and line breaks untouched so that positions stay meaningful.
func stripComments(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)

	const (
		code = iota
		str
		multilineStr
		lineComment
		blockComment
	)

	state := code
	depth := 0
	for i := 0; i < len(out); i++ {
		c := out[i]
		next := byte(0)
		if i+1 < len(out) {
			next = out[i+1]
		}

		switch state {
		case code:
			switch {
			case c == '/' && next == '/':
				state = lineComment
				out[i], out[i+1] = ' ', ' '
				i++
			case c == '/' && next == '*':
				state = blockComment
				depth = 1
				out[i], out[i+1] = ' ', ' '
				i++
			case c == '"' && hasTripleQuote(out, i):
				state = multilineStr
				i += 2
			case c == '"':
				state = str
			}
		case str:
			switch c {
			case '\\':
				i++
			case '"', '\n':
				state = code
			}
		case multilineStr:
			switch {
			case c == '\\':
				i++
			case c == '"' && hasTripleQuote(out, i):
				state = code
				i += 2
			}
		case lineComment:
			if c == '\n' {
				state = code
				continue
			}
			out[i] = ' '
		case blockComment:
			switch {
			case c == '/' && next == '*':
				depth++
				out[i], out[i+1] = ' ', ' '
				i++
			case c == '*' && next == '/':
				depth--
				out[i], out[i+1] = ' ', ' '
				i++
				if depth == 0 {
					state = code
				}
			case c != '\n':
				out[i] = ' '
			}
		}
	}

	return out
}

func hasTripleQuote(src []byte, i int) bool {
	return i+2 < len(src) && src[i+1] == '"' && src[i+2] == '"'
}
