// Copyright 2025 Jonathan Amsterdam.

package argspec

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Code to compile a specification into lookup tables.

// Compile builds a Spec from a sequence of alternating declaration
// strings and default values. A declaration has the form
//
//	name[|synonym][=type[=value,value,...]]
//
// where the trailing value list is only valid for the "list" type.
// A declaration with no "=type" part declares a flag.
//
// Every malformed declaration is reported; Compile does not stop at
// the first. The returned error is a *SpecError.
func Compile(spec []interface{}) (*Spec, error) {
	var errs error
	if len(spec)%2 != 0 {
		errs = multierror.Append(errs, fmt.Errorf("spec has %d entries; want alternating declaration/default pairs", len(spec)))
	}
	sp := &Spec{types: map[string]*option{}}
	for i := 0; i+1 < len(spec); i += 2 {
		decl, ok := spec[i].(string)
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("spec entry %d: declaration must be a string, got %T", i, spec[i]))
			continue
		}
		o, err := parseDeclaration(decl)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("declaration %q: %v", decl, err))
			continue
		}
		o.def = spec[i+1]
		for _, name := range declaredNames(decl) {
			sp.types[strings.ToLower(name)] = o
		}
		sp.opts = append(sp.opts, o)
	}
	if errs != nil {
		return nil, &SpecError{Err: errs}
	}
	return sp, nil
}

// parseDeclaration parses one declaration string into an option.
// The default value is filled in by the caller.
func parseDeclaration(decl string) (*option, error) {
	nameSpec, rest, hasType := strings.Cut(decl, "=")
	primary, synonym, err := parseNameSpec(nameSpec)
	if err != nil {
		return nil, err
	}
	o := &option{
		primary: strings.TrimPrefix(primary, optionPrefix),
		synonym: strings.TrimPrefix(synonym, optionPrefix),
		typ:     typeFlag,
	}
	if !hasType {
		return o, nil
	}
	typeTok, allowed, hasAllowed := strings.Cut(rest, "=")
	typ, ok := typeTokens[typeTok]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", typeTok)
	}
	o.typ = typ
	if hasAllowed && typ != typeChoice {
		return nil, fmt.Errorf("allowed values are only valid for type \"list\", not %q", typeTok)
	}
	if typ == typeChoice {
		if !hasAllowed || allowed == "" {
			return nil, fmt.Errorf("type \"list\" requires allowed values")
		}
		o.allowed = map[string]bool{}
		for _, v := range strings.Split(allowed, ",") {
			o.allowedOrder = append(o.allowedOrder, v)
			o.allowed[strings.ToLower(v)] = true
		}
	}
	return o, nil
}

func parseNameSpec(nameSpec string) (primary, synonym string, err error) {
	names := strings.Split(nameSpec, "|")
	if len(names) > 2 {
		return "", "", fmt.Errorf("at most one synonym allowed")
	}
	if names[0] == "" || strings.TrimPrefix(names[0], optionPrefix) == "" {
		return "", "", fmt.Errorf("empty option name")
	}
	primary = names[0]
	if len(names) == 2 {
		if strings.TrimPrefix(names[1], optionPrefix) == "" {
			return "", "", fmt.Errorf("empty synonym name")
		}
		synonym = names[1]
	}
	return primary, synonym, nil
}

// declaredNames returns the names of decl's nameSpec part as written,
// prefix included. Compile has already validated decl.
func declaredNames(decl string) []string {
	nameSpec, _, _ := strings.Cut(decl, "=")
	return strings.Split(nameSpec, "|")
}

// newResult builds a fresh Result seeded with every option's default.
// The primary name and the synonym, in both declared and lowercased
// spellings, all map to one shared slot.
func (sp *Spec) newResult() *Result {
	r := &Result{slots: map[string]*Slot{}}
	for _, o := range sp.opts {
		slot := &Slot{value: o.def}
		for _, name := range o.names() {
			r.slots[name] = slot
		}
	}
	return r
}
