// Package resolve answers position, definition and reference queries over a
// token stream without a symbol table.
//
// A token is a definition occurrence when the token before it is a keyword
// that introduces a definition. Names are matched by exact text with no
// notion of scope, so correctness depends on names being unique within a
// document. When a name is defined more than once the first definition in
// document order is reported.
package resolve
