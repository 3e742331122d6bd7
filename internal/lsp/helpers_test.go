package lsp

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/sourcegraph/jsonrpc2"
	"go.lsp.dev/protocol"

	"riddl/internal/compiler"
	"riddl/internal/config"
	"riddl/internal/riddl"
	"riddl/internal/token"
)

const testURI = "file:///work/shop.riddl"

// testSlowConfig keeps validation from firing during query tests.
var testSlowConfig = config.LSPConfig{DebounceMS: 60 * 60 * 1000}

type recorder struct {
	mu        sync.Mutex
	published chan publishDiagnosticsParams
	methods   []string
}

func newRecorder() *recorder {
	return &recorder{published: make(chan publishDiagnosticsParams, 16)}
}

func (r *recorder) Notify(_ context.Context, method string, params interface{}, _ ...jsonrpc2.CallOption) error {
	r.mu.Lock()
	r.methods = append(r.methods, method)
	r.mu.Unlock()
	if p, ok := params.(publishDiagnosticsParams); ok {
		r.published <- p
	}
	return nil
}

func (r *recorder) wait(t *testing.T) publishDiagnosticsParams {
	t.Helper()
	select {
	case p := <-r.published:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for publishDiagnostics")
		return publishDiagnosticsParams{}
	}
}

func (r *recorder) expectNone(t *testing.T, within time.Duration) {
	t.Helper()
	select {
	case p := <-r.published:
		t.Fatalf("unexpected publish: %+v", p)
	case <-time.After(within):
	}
}

func newTestServer(t *testing.T, opts ServerOptions) (*Server, *recorder) {
	t.Helper()
	if opts.Config.DebounceMS == 0 {
		opts.Config.DebounceMS = 10
	}
	s := NewServer(opts)
	rec := newRecorder()
	s.mu.Lock()
	s.client = rec
	s.mu.Unlock()
	t.Cleanup(s.sched.Stop)
	return s, rec
}

func call(t *testing.T, s *Server, method string, params any) interface{} {
	t.Helper()
	var raw json.RawMessage
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			t.Fatalf("marshal %s params: %v", method, err)
		}
		raw = data
	}
	result, err := s.dispatch(context.Background(), method, raw)
	if err != nil {
		t.Fatalf("%s: %v", method, err)
	}
	return result
}

func openDoc(t *testing.T, s *Server, uri, text string) {
	t.Helper()
	call(t, s, "textDocument/didOpen", protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        protocol.DocumentURI(uri),
			LanguageID: "riddl",
			Version:    1,
			Text:       text,
		},
	})
}

func positionParams(uri string, line, col uint32) protocol.TextDocumentPositionParams {
	return protocol.TextDocumentPositionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
		Position:     protocol.Position{Line: line, Character: col},
	}
}

func lex(t *testing.T, text string) []token.Token {
	t.Helper()
	tokens, err := compiler.NewAdapter(riddl.Frontend{}, nil).Tokenize(context.Background(), text, "test.riddl")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return tokens
}

// panicky tokenizes like the built-in frontend but panics on validation.
type panicky struct{ riddl.Frontend }

func (panicky) Validate(context.Context, string, string, bool) (*compiler.ValidationResult, error) {
	panic("boom")
}
