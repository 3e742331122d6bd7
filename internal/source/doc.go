// Package source holds document coordinates shared by the tokenizer adapter,
// the resolver and the diagnostic reconciler.
// Invariants:
//   - Positions are 0-based; columns count UTF-16 code units.
//   - Range.End is exclusive.
//   - A Lines table always has at least one line, even for empty text.
package source
