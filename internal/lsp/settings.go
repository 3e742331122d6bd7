package lsp

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"riddl/internal/config"
)

func (s *Server) handleDidChangeConfiguration(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var params didChangeConfigurationParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil
	}
	s.applySettings(params.Settings)
	return nil
}

// applySettings records client settings. They win over riddl.toml until the
// client changes them again.
func (s *Server) applySettings(raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	var settings lspSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.log.Debug("ignoring malformed settings", zap.Error(err))
		return
	}
	s.mu.Lock()
	if v := settings.RIDDL.DebounceMS; v != nil {
		s.overrides.DebounceMS = v
	}
	if v := settings.RIDDL.MaxDiagnostics; v != nil {
		s.overrides.MaxDiagnostics = v
	}
	if v := settings.RIDDL.Trace; v != nil {
		s.overrides.Trace = v
	}
	debounce := s.effectiveLocked()
	s.mu.Unlock()
	s.sched.SetDelay(debounce)
}

// ApplyConfig replaces the riddl.toml layer, typically after the file
// changed on disk.
func (s *Server) ApplyConfig(cfg config.LSPConfig) {
	s.mu.Lock()
	s.file = cfg
	debounce := s.effectiveLocked()
	trace := s.trace
	s.mu.Unlock()
	s.sched.SetDelay(debounce)
	if trace {
		s.log.Info("configuration reloaded",
			zap.Duration("debounce", debounce),
			zap.Int("max_diagnostics", cfg.MaxDiagnostics))
	}
}

func (s *Server) effectiveLocked() time.Duration {
	cfg := s.file
	if v := s.overrides.DebounceMS; v != nil && *v > 0 {
		cfg.DebounceMS = *v
	}
	if v := s.overrides.MaxDiagnostics; v != nil && *v >= 0 {
		cfg.MaxDiagnostics = *v
	}
	if v := s.overrides.Trace; v != nil {
		cfg.Trace = *v
	}
	s.maxDiagnostics = cfg.MaxDiagnostics
	s.trace = cfg.Trace
	return time.Duration(cfg.DebounceMS) * time.Millisecond
}
