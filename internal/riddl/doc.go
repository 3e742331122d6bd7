// Package riddl is the built-in RIDDL frontend. It implements
// compiler.Service with a tolerant lexer, a structural syntax check and a
// small set of validation rules, so the editor layer can run without an
// external compiler process.
//
// Invariants:
//   - Lines and columns are 1-based; columns and offsets count UTF-16 units.
//   - Token.Text is an exact slice of the source.
//   - Validation only runs when the syntax phase reported no errors.
package riddl
