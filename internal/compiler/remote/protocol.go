// Package remote runs a compiler.Service in another process. Requests and
// replies are msgpack values written back to back on a byte stream, one
// reply per request, in order.
package remote

import "riddl/internal/compiler"

// schemaVersion is bumped whenever request or response change shape.
const schemaVersion uint16 = 1

const (
	methodTokenize = "tokenize"
	methodValidate = "validate"
)

type request struct {
	Schema uint16 `msgpack:"schema"`
	ID     uint64 `msgpack:"id"`
	Method string `msgpack:"method"`
	Source string `msgpack:"source"`
	Origin string `msgpack:"origin"`
	Strip  bool   `msgpack:"strip"`
}

type response struct {
	Schema     uint16                     `msgpack:"schema"`
	ID         uint64                     `msgpack:"id"`
	Tokens     *compiler.TokenResult      `msgpack:"tokens,omitempty"`
	Validation *compiler.ValidationResult `msgpack:"validation,omitempty"`
	Error      string                     `msgpack:"error,omitempty"`
}
