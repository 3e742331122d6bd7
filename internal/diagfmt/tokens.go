package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"riddl/internal/token"
)

type TokenOutput struct {
	Kind      string `json:"kind"`
	Text      string `json:"text"`
	Line      int    `json:"line"`
	Col       int    `json:"col"`
	Offset    int    `json:"offset"`
	EndOffset *int   `json:"end_offset,omitempty"`
}

// FormatTokensPretty prints one token per line with its 1-based range.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		r := tok.Range()
		if _, err := fmt.Fprintf(w, "%3d: %-12s %q at %d:%d-%d:%d\n",
			i+1, tok.Kind.String(), tok.Text,
			r.Start.Line+1, r.Start.Col+1,
			r.End.Line+1, r.End.Col+1); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			Line:      tok.Loc.Line,
			Col:       tok.Loc.Col,
			Offset:    tok.Loc.Offset,
			EndOffset: tok.Loc.EndOffset,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
