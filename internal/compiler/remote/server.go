package remote

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"riddl/internal/compiler"
)

// Serve answers requests read from r until r is exhausted or ctx is done.
// A clean end of input returns nil.
func Serve(ctx context.Context, r io.Reader, w io.Writer, svc compiler.Service) error {
	dec := msgpack.NewDecoder(r)
	enc := msgpack.NewEncoder(w)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var req request
		if err := dec.Decode(&req); err != nil {
			if isClosed(err) {
				return nil
			}
			return fmt.Errorf("decode request: %w", err)
		}
		resp := handle(ctx, svc, &req)
		if err := enc.Encode(resp); err != nil {
			if isClosed(err) {
				return nil
			}
			return fmt.Errorf("encode response %d: %w", req.ID, err)
		}
	}
}

func handle(ctx context.Context, svc compiler.Service, req *request) (resp *response) {
	resp = &response{Schema: schemaVersion, ID: req.ID}
	defer func() {
		if r := recover(); r != nil {
			resp.Tokens, resp.Validation = nil, nil
			resp.Error = fmt.Sprintf("%s panicked: %v", req.Method, r)
		}
	}()
	if req.Schema != schemaVersion {
		resp.Error = fmt.Sprintf("unsupported schema %d (want %d)", req.Schema, schemaVersion)
		return resp
	}
	var err error
	switch req.Method {
	case methodTokenize:
		resp.Tokens, err = svc.Tokenize(ctx, req.Source, req.Origin)
	case methodValidate:
		resp.Validation, err = svc.Validate(ctx, req.Source, req.Origin, req.Strip)
	default:
		err = fmt.Errorf("unknown method %q", req.Method)
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.ErrClosedPipe)
}
