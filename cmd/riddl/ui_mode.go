package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the value of validate --ui.
type uiMode uint8

const (
	uiAuto uiMode = iota
	uiOn
	uiOff
)

var uiModeNames = map[string]uiMode{
	"":     uiAuto,
	"auto": uiAuto,
	"on":   uiOn,
	"off":  uiOff,
}

func parseUIMode(value string) (uiMode, error) {
	mode, ok := uiModeNames[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return uiAuto, fmt.Errorf("validate --ui: unknown mode %q (want auto/on/off)", value)
	}
	return mode, nil
}

// progressView reports whether the interactive progress view is drawn for
// output in format written to out. Only pretty output gets one; JSON stays
// machine readable even with --ui=on.
func (m uiMode) progressView(format string, out *os.File) bool {
	if format != "pretty" {
		return false
	}
	switch m {
	case uiOn:
		return true
	case uiOff:
		return false
	}
	return isTerminal(out) && os.Getenv("TERM") != "dumb"
}
