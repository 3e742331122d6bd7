package resolve

import "riddl/internal/token"

// FindTokenAt returns the token whose span contains the 0-based position,
// along with its index in tokens.
func FindTokenAt(tokens []token.Token, line, col int) (token.Token, int, bool) {
	for i, t := range tokens {
		if t.Line() != line {
			continue
		}
		if t.Contains(line, col) {
			return t, i, true
		}
	}
	return token.Token{}, -1, false
}
