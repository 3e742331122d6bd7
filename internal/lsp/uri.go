package lsp

import (
	"net/url"
	"path/filepath"
)

// untitledOrigin names documents that have no file path.
const untitledOrigin = "untitled.riddl"

func uriToPath(uri string) string {
	if uri == "" {
		return ""
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" && parsed.Scheme != "file" {
		return ""
	}
	path := parsed.Path
	if parsed.Scheme == "" {
		path = uri
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return filepath.FromSlash(path)
}

func pathToURI(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// originFor is the name the compiler reports in message locations.
func originFor(uri string) string {
	if path := uriToPath(uri); path != "" {
		return path
	}
	return untitledOrigin
}
