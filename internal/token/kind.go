package token

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind represents the category the tokenizer service assigned to a token.
type Kind uint8

const (
	// Other covers every token category the service reports that the editor
	// layer does not distinguish.
	Other Kind = iota
	// Keyword is a reserved RIDDL word (domain, type, entity, ...).
	Keyword
	// Identifier is a user-chosen name.
	Identifier
	// Predefined is a built-in type name (String, Integer, UUID, ...).
	Predefined
	// Readability is a filler word carrying no semantics (is, of, with, ...).
	Readability
	// Punctuation covers braces, separators and operators.
	Punctuation
	// Comment is a line or block comment.
	Comment
	// String is a quoted string or markdown line.
	String
	// Number is a numeric literal.
	Number
)

var kindNames = [...]string{
	Other:       "Other",
	Keyword:     "Keyword",
	Identifier:  "Identifier",
	Predefined:  "Predefined",
	Readability: "Readability",
	Punctuation: "Punctuation",
	Comment:     "Comment",
	String:      "String",
	Number:      "Number",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[lower(name)] = Kind(k)
	}
	m["quotedstring"] = String
	m["markdownline"] = String
	m["numeric"] = Number
	return m
}()

// ParseKind maps a service kind string to a Kind. Matching ignores case;
// unknown strings map to Other.
func ParseKind(s string) Kind {
	if k, ok := kindsByName[lower(s)]; ok {
		return k
	}
	return Other
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Other"
}

// Resolvable reports whether tokens of this kind can name a definition.
func (k Kind) Resolvable() bool {
	return k == Identifier || k == Predefined
}

// cases.Caser is stateful, so each call builds its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
