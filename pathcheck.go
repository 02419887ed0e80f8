// Copyright 2025 Jonathan Amsterdam.

package argspec

import (
	"os"
	"path/filepath"
)

// Existence validation for path-typed option values.

// pathKind says what a path value must resolve to.
type pathKind int

const (
	kindFile     pathKind = iota // an existing regular file
	kindDir                      // an existing directory
	kindFilePath                 // a file path whose directory exists
)

// checkPath validates candidate for the given kind and returns its
// absolute, cleaned form. For kindFilePath the directory component is
// what gets probed; the returned path is still the full candidate.
// option names the option for error reporting.
func checkPath(candidate, option string, kind pathKind) (string, error) {
	probe := candidate
	if kind == kindFilePath {
		probe = filepath.Dir(candidate)
	}
	info, err := os.Stat(probe)
	if err != nil {
		return "", &ParseError{Kind: NotFound, Option: option, Value: probe, Err: err}
	}
	wantDir := kind != kindFile
	if info.IsDir() != wantDir {
		return "", &ParseError{Kind: WrongKind, Option: option, Value: candidate}
	}
	abs, err := filepath.Abs(candidate)
	if err != nil {
		return "", &ParseError{Kind: NotFound, Option: option, Value: candidate, Err: err}
	}
	return abs, nil
}
