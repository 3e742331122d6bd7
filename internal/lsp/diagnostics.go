package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"riddl/internal/compiler"
	"riddl/internal/reconcile"
)

func (s *Server) scheduleValidation(uri, reason string) {
	gen := s.sched.Schedule(uri, func(ctx context.Context, gen uint64) {
		s.runValidation(ctx, uri, gen)
	})
	if s.tracing() {
		s.log.Info("validation scheduled",
			zap.String("uri", uri),
			zap.String("reason", reason),
			zap.Uint64("generation", gen))
	}
}

func (s *Server) runValidation(ctx context.Context, uri string, gen uint64) {
	text, version, ok := s.snapshot(uri)
	if !ok {
		return
	}
	records := s.collectRecords(ctx, uri, text)

	s.mu.Lock()
	client := s.client
	limit := s.maxDiagnostics
	trace := s.trace
	s.mu.Unlock()

	if ctx.Err() != nil {
		if trace {
			s.log.Info("validation discarded", zap.String("uri", uri), zap.Uint64("generation", gen), zap.String("reason", "canceled"))
		}
		return
	}
	diags := toDiagnostics(records, limit)
	committed := s.sched.Commit(uri, gen, func() {
		s.publish(ctx, client, uri, &version, diags)
	})
	if !trace {
		return
	}
	if committed {
		s.log.Info("diagnostics published",
			zap.String("uri", uri),
			zap.Uint64("generation", gen),
			zap.Int("count", len(diags)))
	} else {
		s.log.Info("validation discarded", zap.String("uri", uri), zap.Uint64("generation", gen), zap.String("reason", "superseded"))
	}
}

// collectRecords validates text. A failed or panicking call yields the single
// synthetic record.
func (s *Server) collectRecords(ctx context.Context, uri, text string) (records []reconcile.Record) {
	defer func() {
		if r := recover(); r != nil {
			records = []reconcile.Record{reconcile.FromError(&compiler.PanicError{Op: "validate", Value: r})}
		}
	}()
	res, err := s.svc.Validate(ctx, text, originFor(uri), true)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		s.log.Warn("validation failed", zap.String("uri", uri), zap.Error(err))
		return []reconcile.Record{reconcile.FromError(err)}
	}
	return reconcile.Pass(res, text, s.log)
}

func toDiagnostics(records []reconcile.Record, limit int) []protocol.Diagnostic {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	out := make([]protocol.Diagnostic, 0, len(records))
	for _, rec := range records {
		d := protocol.Diagnostic{
			Range:    toRange(rec.Range),
			Severity: protocol.DiagnosticSeverity(rec.Severity),
			Source:   rec.Source(),
			Message:  rec.Message,
		}
		if rec.Kind != "" {
			d.Code = rec.Kind
		}
		out = append(out, d)
	}
	return out
}

func (s *Server) publish(ctx context.Context, client notifier, uri string, version *int32, diags []protocol.Diagnostic) {
	if client == nil {
		return
	}
	if diags == nil {
		diags = []protocol.Diagnostic{}
	}
	params := publishDiagnosticsParams{
		URI:         uri,
		Version:     version,
		Diagnostics: diags,
	}
	if err := client.Notify(ctx, "textDocument/publishDiagnostics", params); err != nil {
		s.log.Warn("failed to publish diagnostics", zap.String("uri", uri), zap.Error(err))
	}
}
