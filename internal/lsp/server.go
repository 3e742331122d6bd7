// Package lsp serves RIDDL language intelligence over the Language Server
// Protocol.
package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"github.com/sourcegraph/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"riddl/internal/compiler"
	"riddl/internal/config"
	"riddl/internal/resolve"
	"riddl/internal/riddl"
	"riddl/internal/schedule"
	"riddl/internal/token"
)

var (
	// ErrExit signals a graceful shutdown after receiving "exit".
	ErrExit = errors.New("lsp exit")
	// ErrExitWithoutShutdown signals an "exit" without a preceding "shutdown".
	ErrExitWithoutShutdown = errors.New("lsp exit without shutdown")
)

// notifier is the outbound half of the connection.
type notifier interface {
	Notify(ctx context.Context, method string, params interface{}, opts ...jsonrpc2.CallOption) error
}

// ServerOptions configures LSP server behavior.
type ServerOptions struct {
	// Service defaults to the built-in frontend.
	Service  compiler.Service
	Resolver resolve.Resolver
	Logger   *zap.Logger
	Config   config.LSPConfig
	Version  string
}

type document struct {
	text    string
	version int32
}

// Server handles JSON-RPC for the RIDDL LSP. Messages are handled one at a
// time in arrival order; validation runs on scheduler timers.
type Server struct {
	svc      *compiler.Adapter
	resolver resolve.Resolver
	sched    *schedule.Scheduler
	log      *zap.Logger
	version  string

	mu                sync.Mutex
	client            notifier
	docs              map[string]*document
	file              config.LSPConfig
	overrides         riddlSettings
	maxDiagnostics    int
	trace             bool
	shutdownRequested bool
	exit              chan error
}

// NewServer constructs a new LSP server.
func NewServer(opts ServerOptions) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	svc := opts.Service
	if svc == nil {
		svc = riddl.Frontend{}
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = resolve.Heuristic{}
	}
	cfg := opts.Config
	if cfg.DebounceMS <= 0 {
		cfg.DebounceMS = int(schedule.DefaultDelay.Milliseconds())
	}
	s := &Server{
		svc:      compiler.NewAdapter(svc, log),
		resolver: resolver,
		log:      log,
		version:  opts.Version,
		docs:     make(map[string]*document),
		file:     cfg,
		exit:     make(chan error, 1),
	}
	s.mu.Lock()
	debounce := s.effectiveLocked()
	s.mu.Unlock()
	s.sched = schedule.New(context.Background(), debounce)
	return s
}

// Run serves rwc until the client exits or disconnects, or ctx is done.
func (s *Server) Run(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, jsonrpc2.HandlerWithError(s.handle))
	s.mu.Lock()
	s.client = conn
	s.mu.Unlock()

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-conn.DisconnectNotify():
	case err = <-s.exit:
	}
	s.sched.Stop()
	_ = conn.Close()
	return err
}

func (s *Server) handle(ctx context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
	var params json.RawMessage
	if req.Params != nil {
		params = *req.Params
	}
	result, err := s.dispatch(ctx, req.Method, params)
	if err != nil && req.Notif {
		s.log.Warn("notification failed", zap.String("method", req.Method), zap.Error(err))
		return nil, nil
	}
	return result, err
}

func (s *Server) dispatch(ctx context.Context, method string, params json.RawMessage) (interface{}, error) {
	if method != "exit" && s.isShutdown() {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidRequest, Message: "server is shutting down"}
	}
	switch method {
	case "initialize":
		return s.handleInitialize(params)
	case "initialized", "$/cancelRequest", "$/setTrace":
		return nil, nil
	case "shutdown":
		return s.handleShutdown()
	case "exit":
		s.handleExit()
		return nil, nil
	case "workspace/didChangeConfiguration":
		return nil, s.handleDidChangeConfiguration(params)
	case "textDocument/didOpen":
		return nil, s.handleDidOpen(params)
	case "textDocument/didChange":
		return nil, s.handleDidChange(params)
	case "textDocument/didSave":
		return nil, s.handleDidSave(params)
	case "textDocument/didClose":
		return nil, s.handleDidClose(ctx, params)
	case "textDocument/hover":
		return s.handleHover(ctx, params)
	case "textDocument/definition":
		return s.handleDefinition(ctx, params)
	case "textDocument/references":
		return s.handleReferences(ctx, params)
	case "textDocument/completion":
		return s.handleCompletion(ctx, params)
	case "textDocument/semanticTokens/full":
		return s.handleSemanticTokens(ctx, params)
	default:
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not found: " + method}
	}
}

func decodeParams(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "invalid params: " + err.Error()}
	}
	return nil
}

func (s *Server) handleInitialize(raw json.RawMessage) (*initializeResult, error) {
	var params initializeParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	if len(params.InitializationOptions) > 0 {
		s.applySettings(params.InitializationOptions)
	}
	root := uriToPath(params.RootURI)
	if root == "" {
		root = params.RootPath
	}
	s.log.Info("initialize", zap.String("root", root))

	return &initializeResult{
		Capabilities: serverCapabilities{
			TextDocumentSync: textDocumentSyncOptions{
				OpenClose: true,
				Change:    2,
				Save: saveOptions{
					IncludeText: true,
				},
			},
			HoverProvider:      true,
			DefinitionProvider: true,
			ReferencesProvider: true,
			CompletionProvider: &completionOptions{},
			SemanticTokensProvider: &semanticTokensOptions{
				Legend: semanticTokensLegend{
					TokenTypes:     semanticTokenTypes,
					TokenModifiers: semanticTokenModifiers,
				},
				Full: true,
			},
		},
		ServerInfo: &serverInfo{Name: "riddl", Version: s.version},
	}, nil
}

func (s *Server) handleShutdown() (interface{}, error) {
	s.mu.Lock()
	s.shutdownRequested = true
	s.mu.Unlock()
	s.sched.Stop()
	return nil, nil
}

func (s *Server) handleExit() {
	err := ErrExitWithoutShutdown
	if s.isShutdown() {
		err = ErrExit
	}
	select {
	case s.exit <- err:
	default:
	}
}

func (s *Server) isShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownRequested
}

func (s *Server) handleDidOpen(raw json.RawMessage) error {
	var params protocol.DidOpenTextDocumentParams
	if err := decodeParams(raw, &params); err != nil {
		return err
	}
	uri := string(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	s.docs[uri] = &document{text: params.TextDocument.Text, version: int32(params.TextDocument.Version)}
	s.mu.Unlock()
	s.scheduleValidation(uri, "didOpen")
	return nil
}

func (s *Server) handleDidChange(raw json.RawMessage) error {
	var params didChangeTextDocumentParams
	if err := decodeParams(raw, &params); err != nil {
		return err
	}
	uri := params.TextDocument.URI
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil {
		doc = &document{}
		s.docs[uri] = doc
	}
	doc.text = applyChanges(doc.text, params.ContentChanges)
	doc.version = params.TextDocument.Version
	s.mu.Unlock()
	s.scheduleValidation(uri, "didChange")
	return nil
}

func (s *Server) handleDidSave(raw json.RawMessage) error {
	var params didSaveTextDocumentParams
	if err := decodeParams(raw, &params); err != nil {
		return err
	}
	uri := string(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil {
		s.mu.Unlock()
		return nil
	}
	if params.Text != nil {
		doc.text = *params.Text
	}
	s.mu.Unlock()
	s.scheduleValidation(uri, "didSave")
	return nil
}

func (s *Server) handleDidClose(ctx context.Context, raw json.RawMessage) error {
	var params protocol.DidCloseTextDocumentParams
	if err := decodeParams(raw, &params); err != nil {
		return err
	}
	uri := string(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.sched.Close(uri)
	s.mu.Lock()
	delete(s.docs, uri)
	client := s.client
	s.mu.Unlock()
	s.publish(ctx, client, uri, nil, nil)
	return nil
}

// snapshot returns the current text of uri.
func (s *Server) snapshot(uri string) (string, int32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.docs[uri]
	if doc == nil {
		return "", 0, false
	}
	return doc.text, doc.version, true
}

// documentTokens retokenizes the open document. Failures yield no tokens.
func (s *Server) documentTokens(ctx context.Context, uri string) ([]token.Token, bool) {
	text, _, ok := s.snapshot(uri)
	if !ok {
		return nil, false
	}
	tokens, err := s.svc.Tokenize(ctx, text, originFor(uri))
	if err != nil {
		s.log.Debug("tokenize failed", zap.String("uri", uri), zap.Error(err))
		return nil, false
	}
	return tokens, true
}

func (s *Server) tracing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trace
}
