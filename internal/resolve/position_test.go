package resolve

import (
	"testing"

	"riddl/internal/token"
)

func TestFindTokenAt(t *testing.T) {
	toks := []token.Token{
		{Text: "type", Kind: token.Keyword, Loc: token.Location{Line: 1, Col: 1}},
		{Text: "Sku", Kind: token.Identifier, Loc: token.Location{Line: 1, Col: 6}},
		{Text: "is", Kind: token.Readability, Loc: token.Location{Line: 1, Col: 10}},
	}
	tests := []struct {
		name      string
		line, col int
		want      string
		wantIndex int
		wantOK    bool
	}{
		{"first column", 0, 0, "type", 0, true},
		{"last column", 0, 3, "type", 0, true},
		{"gap after token", 0, 4, "", -1, false},
		{"identifier start", 0, 5, "Sku", 1, true},
		{"end is exclusive", 0, 8, "", -1, false},
		{"other line", 1, 0, "", -1, false},
		{"negative column", 0, -1, "", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, idx, ok := FindTokenAt(toks, tt.line, tt.col)
			if ok != tt.wantOK || got.Text != tt.want || idx != tt.wantIndex {
				t.Fatalf("FindTokenAt(%d,%d) = %q,%d,%v; want %q,%d,%v",
					tt.line, tt.col, got.Text, idx, ok, tt.want, tt.wantIndex, tt.wantOK)
			}
		})
	}
}
