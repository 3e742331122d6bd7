package token

// definitionKeywords introduce a named definition: the token right after one
// of these is the declared name.
var definitionKeywords = map[string]struct{}{
	"type":       {},
	"entity":     {},
	"command":    {},
	"event":      {},
	"query":      {},
	"result":     {},
	"domain":     {},
	"context":    {},
	"handler":    {},
	"function":   {},
	"state":      {},
	"adaptor":    {},
	"projector":  {},
	"repository": {},
	"saga":       {},
	"inlet":      {},
	"outlet":     {},
	"connector":  {},
	"streamlet":  {},
	"flow":       {},
	"source":     {},
	"sink":       {},
	"merge":      {},
	"split":      {},
	"router":     {},
	"pipe":       {},
	"epic":       {},
	"story":      {},
	"case":       {},
	"author":     {},
	"user":       {},
	"term":       {},
	"include":    {},
	"constant":   {},
	"field":      {},
}

// IsDefinitionKeyword reports whether text, compared in lower case, is one of
// the keywords that introduce a named definition.
func IsDefinitionKeyword(text string) bool {
	_, ok := definitionKeywords[lower(text)]
	return ok
}

// DefinitionKeywords returns the definition keywords in no particular order.
func DefinitionKeywords() []string {
	out := make([]string, 0, len(definitionKeywords))
	for kw := range definitionKeywords {
		out = append(out, kw)
	}
	return out
}
