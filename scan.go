// Copyright 2025 Jonathan Amsterdam.

package argspec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Code for scanning tokens and the entry points.

// FailureMode selects what happens when compilation or scanning fails.
type FailureMode int

const (
	// Throw returns the error to the caller.
	Throw FailureMode = iota
	// ReportAndHalt prints the error to standard output and exits the
	// process with status 1.
	ReportAndHalt
)

// Parse compiles spec and scans tokens, returning the error to the
// caller. It is shorthand for Run(spec, tokens, Throw).
func Parse(spec []interface{}, tokens []string) (*Result, error) {
	return Run(spec, tokens, Throw)
}

// Run compiles spec and scans tokens, disposing of any failure
// according to mode.
func Run(spec []interface{}, tokens []string, mode FailureMode) (*Result, error) {
	sp, err := Compile(spec)
	if err != nil {
		return nil, dispose(mode, err)
	}
	res, err := sp.Parse(tokens)
	if err != nil {
		return nil, dispose(mode, err)
	}
	return res, nil
}

// Main is the convenience entry point: it draws the token sequence
// from the process's own arguments and halts with a message on
// standard output if anything is wrong. It also answers shell
// completion requests (see Completion).
func Main(spec []interface{}) *Result {
	sp, err := Compile(spec)
	if err != nil {
		_ = dispose(ReportAndHalt, err)
	}
	sp.Completion().Complete(filepath.Base(os.Args[0]))
	res, err := sp.Parse(os.Args[1:])
	if err != nil {
		_ = dispose(ReportAndHalt, err)
	}
	return res
}

func dispose(mode FailureMode, err error) error {
	if mode == ReportAndHalt {
		fmt.Println(err)
		os.Exit(1)
	}
	return err
}

// Parse scans tokens strictly left to right, one pass. Tokens without
// the option prefix are collected in order as Unnamed. Option tokens
// are split at the first "=" and looked up case-insensitively. The
// first bad token aborts the scan; no partial Result is returned.
func (sp *Spec) Parse(tokens []string) (*Result, error) {
	res := sp.newResult()
	for _, tok := range tokens {
		if !strings.HasPrefix(tok, optionPrefix) {
			res.Unnamed = append(res.Unnamed, tok)
			continue
		}
		name, raw, hasValue := strings.Cut(tok, "=")
		o := sp.types[strings.ToLower(name)]
		if o == nil {
			return nil, &ParseError{Kind: UnknownArgument, Option: name}
		}
		slot := res.slots[strings.ToLower(o.primary)]
		if o.typ == typeFlag {
			// A value part on a flag is ignored.
			slot.value = true
			slot.present = true
			continue
		}
		if !hasValue {
			return nil, &ParseError{Kind: MissingValue, Option: name}
		}
		v, err := sp.coerce(o, name, raw)
		if err != nil {
			return nil, err
		}
		slot.value = v
		slot.present = true
	}
	return res, nil
}

// coerce converts raw according to o's type. name is the option name
// as it appeared on the command line, for error reporting.
func (sp *Spec) coerce(o *option, name, raw string) (interface{}, error) {
	switch o.typ {
	case typeNum:
		n, err := parseNum(raw)
		if err != nil {
			return nil, &ParseError{Kind: InvalidNumber, Option: name, Value: raw, Err: err}
		}
		return n, nil
	case typeStr:
		return raw, nil
	case typeStrList:
		return strings.Split(raw, listSeparator), nil
	case typeYesNo:
		b, err := parseYesNo(raw)
		if err != nil {
			return nil, &ParseError{Kind: InvalidYesNo, Option: name, Value: raw, Err: err}
		}
		return b, nil
	case typeDir:
		return coercePath(raw, name, kindDir)
	case typeFile:
		return coercePath(raw, name, kindFile)
	case typeFilePath:
		return coercePath(raw, name, kindFilePath)
	case typeDirList:
		return coercePathList(raw, name, kindDir)
	case typeFileList:
		return coercePathList(raw, name, kindFile)
	case typeChoice:
		if err := checkChoice(raw, o); err != nil {
			return nil, &ParseError{Kind: InvalidChoice, Option: name, Value: raw, Err: err}
		}
		return raw, nil
	}
	panic(fmt.Sprintf("unknown option type %d", o.typ))
}

func coercePath(raw, name string, kind pathKind) (interface{}, error) {
	abs, err := checkPath(raw, name, kind)
	if err != nil {
		return nil, err
	}
	return abs, nil
}

// coercePathList validates every element of a ";"-separated path list.
// The elements are independent, so the existence probes run
// concurrently; the error reported is still the left-most failing
// element's, as a sequential scan would report it.
func coercePathList(raw, name string, kind pathKind) (interface{}, error) {
	parts := strings.Split(raw, listSeparator)
	abs := make([]string, len(parts))
	errs := make([]error, len(parts))
	var g errgroup.Group
	for i, p := range parts {
		i, p := i, p
		g.Go(func() error {
			abs[i], errs[i] = checkPath(p, name, kind)
			return nil
		})
	}
	_ = g.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return abs, nil
}
