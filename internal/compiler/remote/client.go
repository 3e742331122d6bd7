package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"riddl/internal/compiler"
)

// ErrBroken is returned once the stream to the server failed.
var ErrBroken = errors.New("compiler connection broken")

// RemoteError is an error reported by the serving side.
type RemoteError struct {
	Method  string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s: %s", e.Method, e.Message)
}

// Client is a compiler.Service backed by a Serve loop on the other end of
// a stream. Calls are serialised. Canceling the context of a call in
// flight closes the stream, after which every call fails with ErrBroken.
type Client struct {
	mu     sync.Mutex
	rwc    io.ReadWriteCloser
	enc    *msgpack.Encoder
	dec    *msgpack.Decoder
	nextID uint64
	broken error

	closeOnce sync.Once
	closeErr  error

	cmd *exec.Cmd
}

var _ compiler.Service = (*Client)(nil)

// NewClient speaks the protocol over rwc.
func NewClient(rwc io.ReadWriteCloser) *Client {
	return &Client{
		rwc: rwc,
		enc: msgpack.NewEncoder(rwc),
		dec: msgpack.NewDecoder(rwc),
	}
}

// Start launches command and connects to its stdin/stdout. The child's
// stderr is forwarded to ours.
func Start(ctx context.Context, command string, args ...string) (*Client, error) {
	if command == "" {
		return nil, errors.New("compiler command is required")
	}
	cmd := exec.CommandContext(ctx, command, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", command, err)
	}
	c := NewClient(&pipeRWC{reader: stdout, writer: stdin})
	c.cmd = cmd
	return c, nil
}

// Tokenize implements compiler.Service.
func (c *Client) Tokenize(ctx context.Context, source, origin string) (*compiler.TokenResult, error) {
	resp, err := c.call(ctx, &request{Method: methodTokenize, Source: source, Origin: origin})
	if err != nil {
		return nil, err
	}
	return resp.Tokens, nil
}

// Validate implements compiler.Service.
func (c *Client) Validate(ctx context.Context, source, origin string, stripFormatting bool) (*compiler.ValidationResult, error) {
	resp, err := c.call(ctx, &request{Method: methodValidate, Source: source, Origin: origin, Strip: stripFormatting})
	if err != nil {
		return nil, err
	}
	return resp.Validation, nil
}

func (c *Client) call(ctx context.Context, req *request) (*response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.broken != nil {
		return nil, c.broken
	}
	stop := context.AfterFunc(ctx, func() { _ = c.closeStream() })
	resp, err := c.roundTrip(req)
	if !stop() {
		return nil, c.fail(fmt.Errorf("%s abandoned: %w", req.Method, ctx.Err()))
	}
	return resp, err
}

// roundTrip sends req and reads its reply. Caller holds c.mu.
func (c *Client) roundTrip(req *request) (*response, error) {
	c.nextID++
	req.ID = c.nextID
	req.Schema = schemaVersion
	if err := c.enc.Encode(req); err != nil {
		return nil, c.fail(fmt.Errorf("send %s: %w", req.Method, err))
	}
	var resp response
	if err := c.dec.Decode(&resp); err != nil {
		return nil, c.fail(fmt.Errorf("receive %s: %w", req.Method, err))
	}
	if resp.ID != req.ID {
		return nil, c.fail(fmt.Errorf("reply id %d does not match request %d", resp.ID, req.ID))
	}
	if resp.Error != "" {
		return nil, &RemoteError{Method: req.Method, Message: resp.Error}
	}
	return &resp, nil
}

// fail marks the client unusable. Caller holds c.mu.
func (c *Client) fail(err error) error {
	c.broken = fmt.Errorf("%w: %w", ErrBroken, err)
	return c.broken
}

func (c *Client) closeStream() error {
	c.closeOnce.Do(func() { c.closeErr = c.rwc.Close() })
	return c.closeErr
}

// Close closes the stream, which also ends a call in flight, and waits for
// a started process to exit.
func (c *Client) Close() error {
	err := c.closeStream()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.broken == nil {
		c.broken = fmt.Errorf("%w: client closed", ErrBroken)
	}
	if c.cmd != nil && c.cmd.Process != nil {
		if werr := c.cmd.Wait(); werr != nil && err == nil {
			var exit *exec.ExitError
			if !errors.As(werr, &exit) {
				err = werr
			}
		}
	}
	return err
}

type pipeRWC struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func (p *pipeRWC) Read(b []byte) (int, error)  { return p.reader.Read(b) }
func (p *pipeRWC) Write(b []byte) (int, error) { return p.writer.Write(b) }
func (p *pipeRWC) Close() error {
	werr := p.writer.Close()
	rerr := p.reader.Close()
	if werr != nil {
		return werr
	}
	return rerr
}
