package config

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "[lsp]\ndebounce_ms = 100\n")

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, nil, func(c Config) {
			select {
			case changes <- c:
			default:
			}
		})
	}()

	deadline := time.After(5 * time.Second)
	for {
		// keep rewriting until the watcher is registered and reports it
		if err := os.WriteFile(path, []byte("[lsp]\ndebounce_ms = 42\n"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		select {
		case cfg := <-changes:
			if cfg.LSP.DebounceMS != 42 {
				t.Fatalf("unexpected reloaded config: %+v", cfg.LSP)
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("watch: %v", err)
			}
			return
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			cancel()
			<-done
			t.Fatalf("no reload observed")
		}
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), "/does/not/exist/riddl.toml", nil, func(Config) {})
	if err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}
