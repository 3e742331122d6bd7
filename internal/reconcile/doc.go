// Package reconcile turns raw compiler messages into diagnostics with exact
// source ranges.
//
// Compilers report approximate positions. Ranges are recovered, in order,
// from a quoted identifier named in the message, from the reported offsets,
// or from the word at the reported column. None of this ever fails a whole
// pass: a record that cannot be placed is dropped and logged.
package reconcile
