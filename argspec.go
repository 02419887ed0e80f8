// Copyright 2025 Jonathan Amsterdam.

package argspec

import (
	"strings"
)

// Core types: the compiled specification, and the result handed back
// from a parse.

// optionPrefix marks a token as an option rather than a positional.
const optionPrefix = "-"

// optType is the closed set of value types an option can declare.
type optType int

const (
	typeFlag optType = iota
	typeNum
	typeStr
	typeStrList
	typeYesNo
	typeDir
	typeFile
	typeFilePath
	typeDirList
	typeFileList
	typeChoice
)

// typeTokens maps declaration type tokens to their optType.
var typeTokens = map[string]optType{
	"flag":     typeFlag,
	"num":      typeNum,
	"str":      typeStr,
	"[str]":    typeStrList,
	"yesno":    typeYesNo,
	"dir":      typeDir,
	"file":     typeFile,
	"filepath": typeFilePath,
	"[dir]":    typeDirList,
	"[file]":   typeFileList,
	"list":     typeChoice,
}

// option is one compiled declaration. primary and synonym are
// case-preserved and prefix-stripped; allowed is non-nil only for
// typeChoice, keyed by the lowercased allowed values.
type option struct {
	primary      string
	synonym      string // "" when no synonym was declared
	typ          optType
	allowed      map[string]bool
	allowedOrder []string // declared order, for completion
	def          interface{}
}

// names returns every accepted spelling of o, prefix-stripped,
// in both declared and lowercased form.
func (o *option) names() []string {
	ns := []string{o.primary, strings.ToLower(o.primary)}
	if o.synonym != "" {
		ns = append(ns, o.synonym, strings.ToLower(o.synonym))
	}
	return ns
}

// A Spec is a compiled specification. It is immutable after Compile
// and may be used for any number of Parse calls.
type Spec struct {
	opts []*option
	// types is the lookup used by the scanner: lowercased option name,
	// including the prefix, for both the primary name and the synonym.
	types map[string]*option
}

// A Slot holds one option's outcome: its current value and whether the
// option appeared on the command line. A name and its synonym share a
// single Slot, so a value set through one spelling is visible through
// the other.
type Slot struct {
	value   interface{}
	present bool
}

// Value returns the slot's current value: the declared default if the
// option was absent, otherwise the coerced command-line value.
func (s *Slot) Value() interface{} { return s.value }

// Present reports whether the option appeared on the command line.
func (s *Slot) Present() bool { return s.present }

// A Result is the outcome of one parse: a slot per declared option,
// reachable under every accepted spelling of its name, plus the
// positional tokens in order of appearance.
type Result struct {
	slots   map[string]*Slot
	Unnamed []string
}

// Lookup returns the slot for name, trying the spelling as given and
// then lowercased. It returns nil for an undeclared name.
func (r *Result) Lookup(name string) *Slot {
	if s, ok := r.slots[name]; ok {
		return s
	}
	return r.slots[strings.ToLower(name)]
}

// Present reports whether the named option appeared on the command line.
// It is false for undeclared names.
func (r *Result) Present(name string) bool {
	s := r.Lookup(name)
	return s != nil && s.present
}

// Value returns the named option's value, or nil for undeclared names.
func (r *Result) Value(name string) interface{} {
	if s := r.Lookup(name); s != nil {
		return s.value
	}
	return nil
}

// Bool returns the named option's value as a bool. It returns false
// for undeclared names and non-bool values.
func (r *Result) Bool(name string) bool {
	b, _ := r.Value(name).(bool)
	return b
}

// Int returns the named option's value as an int64. Num options parse
// to int64; an int default is converted.
func (r *Result) Int(name string) int64 {
	switch v := r.Value(name).(type) {
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

// String returns the named option's value as a string, or "" if it is
// not a string.
func (r *Result) String(name string) string {
	s, _ := r.Value(name).(string)
	return s
}

// Strings returns the named option's value as a string slice, or nil
// if it is not one.
func (r *Result) Strings(name string) []string {
	ss, _ := r.Value(name).([]string)
	return ss
}
