package resolve

import (
	"riddl/internal/source"
	"riddl/internal/token"
)

// Resolver finds definitions and references of the name under a token.
type Resolver interface {
	Definition(tokens []token.Token, target token.Token) (source.Range, bool)
	References(tokens []token.Token, target token.Token, includeDeclaration bool) []source.Range
}

// Occurrence is one appearance of a name in a token stream.
type Occurrence struct {
	Index      int
	Token      token.Token
	Definition bool
}

// IsDefinition reports whether tokens[i] is introduced by a definition
// keyword.
func IsDefinition(tokens []token.Token, i int) bool {
	if i <= 0 || i >= len(tokens) {
		return false
	}
	prev := tokens[i-1]
	return prev.Kind == token.Keyword && token.IsDefinitionKeyword(prev.Text)
}

// Occurrences lists every resolvable token whose text is name, in stream
// order, classifying each as definition or usage.
func Occurrences(tokens []token.Token, name string) []Occurrence {
	var out []Occurrence
	for i, t := range tokens {
		if !t.IsResolvable() || t.Text != name {
			continue
		}
		out = append(out, Occurrence{Index: i, Token: t, Definition: IsDefinition(tokens, i)})
	}
	return out
}

// Definitions lists every definition occurrence in the stream.
func Definitions(tokens []token.Token) []Occurrence {
	var out []Occurrence
	for i, t := range tokens {
		if t.IsResolvable() && IsDefinition(tokens, i) {
			out = append(out, Occurrence{Index: i, Token: t, Definition: true})
		}
	}
	return out
}

// Heuristic resolves names by keyword adjacency.
type Heuristic struct{}

var _ Resolver = Heuristic{}

// Definition returns the first definition occurrence of target's text.
func (Heuristic) Definition(tokens []token.Token, target token.Token) (source.Range, bool) {
	if !target.IsResolvable() {
		return source.Range{}, false
	}
	for _, occ := range Occurrences(tokens, target.Text) {
		if occ.Definition {
			return occ.Token.Range(), true
		}
	}
	return source.Range{}, false
}

// References returns every occurrence of target's text in document order,
// leaving out definition occurrences unless includeDeclaration is set.
func (Heuristic) References(tokens []token.Token, target token.Token, includeDeclaration bool) []source.Range {
	if !target.IsResolvable() {
		return nil
	}
	var out []source.Range
	for _, occ := range Occurrences(tokens, target.Text) {
		if occ.Definition && !includeDeclaration {
			continue
		}
		out = append(out, occ.Token.Range())
	}
	return out
}
