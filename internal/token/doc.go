// Package token defines the token records produced by the RIDDL tokenizer
// service and the static vocabulary the editor layer needs.
// Invariants:
//   - Location is 1-based as delivered; Line/Col accessors return 0-based.
//   - A token's span is [Col, Col+Len) on its start line, in UTF-16 units.
//   - Token values are never mutated after construction.
package token
