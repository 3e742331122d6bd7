package riddl

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"

	"riddl/internal/compiler"
	"riddl/internal/token"
)

type definition struct {
	keyword compiler.Token
	name    compiler.Token
	scope   int
	index   int
}

type defKey struct {
	scope   int
	keyword string
	name    string
}

// styler renders message fragments, optionally with ANSI colours.
type styler struct {
	plain bool
	kind  *color.Color
	name  *color.Color
}

func newStyler(plain bool) styler {
	s := styler{
		plain: plain,
		kind:  color.New(color.Bold),
		name:  color.New(color.FgCyan),
	}
	if !plain {
		// color disables itself when stdout is not a terminal
		s.kind.EnableColor()
		s.name.EnableColor()
	}
	return s
}

func (s styler) category(keyword string) string {
	r, size := utf8.DecodeRuneInString(keyword)
	title := string(unicode.ToUpper(r)) + keyword[size:]
	if s.plain {
		return title
	}
	return s.kind.Sprint(title)
}

func (s styler) quoted(name string) string {
	if s.plain {
		return "'" + name + "'"
	}
	return "'" + s.name.Sprint(name) + "'"
}

// collectDefinitions pairs definition keywords with the name that follows.
// scope is the index of the innermost open '{', or -1 at top level.
func collectDefinitions(code []compiler.Token) []definition {
	var (
		defs   []definition
		scopes []int
	)
	for i, t := range code {
		switch t.Text {
		case "{":
			scopes = append(scopes, i)
			continue
		case "}":
			if len(scopes) > 0 {
				scopes = scopes[:len(scopes)-1]
			}
			continue
		}
		if token.ParseKind(t.Kind) != token.Keyword || !token.IsDefinitionKeyword(t.Text) {
			continue
		}
		if i+1 >= len(code) || !token.ParseKind(code[i+1].Kind).Resolvable() {
			continue
		}
		scope := -1
		if len(scopes) > 0 {
			scope = scopes[len(scopes)-1]
		}
		defs = append(defs, definition{keyword: t, name: code[i+1], scope: scope, index: i})
	}
	return defs
}

// validate runs the semantic rules over a syntactically clean token stream.
func validate(toks []compiler.Token, plain bool) compiler.ValidationMessages {
	var (
		out  compiler.ValidationMessages
		st   = newStyler(plain)
		code = significant(toks)
		seen = make(map[defKey]definition)
	)
	for _, d := range collectDefinitions(code) {
		key := defKey{scope: d.scope, keyword: d.keyword.Text, name: d.name.Text}
		if first, dup := seen[key]; dup {
			out.Errors = append(out.Errors, message("Error", d.keyword.Location,
				"%s %s is defined more than once; the first definition is at line %d",
				st.category(d.keyword.Text), st.quoted(d.name.Text), first.name.Location.Line))
		} else {
			seen[key] = d
		}
		if _, container := containerKeywords[d.keyword.Text]; container {
			if r, _ := utf8.DecodeRuneInString(d.name.Text); unicode.IsLower(r) {
				out.Warnings = append(out.Warnings, message("Warning", d.keyword.Location,
					"%s %s should start with an upper case letter",
					st.category(d.keyword.Text), st.quoted(d.name.Text)))
			}
		}
		if isEmptyBody(code, d.index+2) {
			out.Info = append(out.Info, message("Info", d.keyword.Location,
				"%s %s is empty", st.category(d.keyword.Text), st.quoted(d.name.Text)))
		}
	}
	return out
}

// isEmptyBody matches `is { ??? }` starting at code[i].
func isEmptyBody(code []compiler.Token, i int) bool {
	for i < len(code) && token.ParseKind(code[i].Kind) == token.Readability {
		i++
	}
	if i+2 >= len(code) {
		return false
	}
	return code[i].Text == "{" && code[i+1].Text == "???" && code[i+2].Text == "}"
}

func message(kind string, loc compiler.Location, format string, args ...any) compiler.Message {
	// validation messages point at the keyword; only the column is meaningful
	loc.EndOffset = nil
	return compiler.Message{Kind: kind, Message: fmt.Sprintf(format, args...), Location: loc}
}
