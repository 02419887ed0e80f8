// Copyright 2025 Jonathan Amsterdam.

package argspec

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompile(t *testing.T) {
	sp, err := Compile([]interface{}{
		"-nodisk", false,
		"-workers|-w=num", 0,
		"-Mode=list=fast,slow", "fast",
	})
	if err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]optType{
		"-nodisk":  typeFlag,
		"-workers": typeNum,
		"-w":       typeNum,
		"-mode":    typeChoice,
	} {
		o := sp.types[name]
		if o == nil {
			t.Fatalf("%s: no type table entry", name)
		}
		if o.typ != want {
			t.Errorf("%s: got type %d, want %d", name, o.typ, want)
		}
	}
	// Type table keys are lowercased.
	if sp.types["-Mode"] != nil {
		t.Error("type table has a non-lowercased key")
	}
	want := map[string]bool{"fast": true, "slow": true}
	if diff := cmp.Diff(want, sp.types["-mode"].allowed); diff != "" {
		t.Errorf("allowed values mismatch (-want, +got):\n%s", diff)
	}
}

func TestCompileSharedSlots(t *testing.T) {
	sp, err := Compile([]interface{}{
		"-Verbose", false,
		"-workers|-w=num", 3,
	})
	if err != nil {
		t.Fatal(err)
	}
	r := sp.newResult()

	// Declared and lowercased spellings alias one slot.
	if r.slots["Verbose"] == nil || r.slots["Verbose"] != r.slots["verbose"] {
		t.Error("Verbose and verbose do not share a slot")
	}
	// A synonym aliases its primary's slot.
	ws := r.slots["workers"]
	if ws == nil || ws != r.slots["w"] {
		t.Fatal("workers and w do not share a slot")
	}
	ws.value = int64(7)
	ws.present = true
	if got := r.Int("w"); got != 7 {
		t.Errorf("w: got %d, want 7", got)
	}
	if !r.Present("w") {
		t.Error("w: not present after mutation through workers")
	}
}

func TestCompileDefaults(t *testing.T) {
	sp, err := Compile([]interface{}{
		"-nodisk", false,
		"-workers=num", 4,
		"-dirs=[dir]", nil,
	})
	if err != nil {
		t.Fatal(err)
	}
	r := sp.newResult()
	if got := r.Bool("nodisk"); got != false {
		t.Errorf("nodisk: got %v, want false", got)
	}
	if got := r.Int("workers"); got != 4 {
		t.Errorf("workers: got %d, want 4", got)
	}
	if got := r.Value("dirs"); got != nil {
		t.Errorf("dirs: got %v, want nil", got)
	}
	for _, name := range []string{"nodisk", "workers", "dirs"} {
		if r.Present(name) {
			t.Errorf("%s: present before any parse", name)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, test := range []struct {
		name    string
		spec    []interface{}
		wantErr string
	}{
		{
			name:    "odd length",
			spec:    []interface{}{"-v", false, "-w=num"},
			wantErr: "alternating",
		},
		{
			name:    "non-string declaration",
			spec:    []interface{}{5, false},
			wantErr: "must be a string",
		},
		{
			name:    "unknown type",
			spec:    []interface{}{"-x=bogus", nil},
			wantErr: `unknown type "bogus"`,
		},
		{
			name:    "list without values",
			spec:    []interface{}{"-m=list", nil},
			wantErr: "requires allowed values",
		},
		{
			name:    "allowed values on non-list",
			spec:    []interface{}{"-s=str=a,b", nil},
			wantErr: "only valid for type",
		},
		{
			name:    "too many synonyms",
			spec:    []interface{}{"-a|-b|-c=num", 0},
			wantErr: "at most one synonym",
		},
		{
			name:    "empty name",
			spec:    []interface{}{"-=num", 0},
			wantErr: "empty option name",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Compile(test.spec)
			if err == nil {
				t.Fatal("got nil, want error")
			}
			var serr *SpecError
			if !errors.As(err, &serr) {
				t.Fatalf("got %T, want *SpecError", err)
			}
			if serr.Kind() != Structural {
				t.Errorf("got kind %v, want %v", serr.Kind(), Structural)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("got %q, want error containing %q", err, test.wantErr)
			}
		})
	}
}

func TestCompileReportsAllErrors(t *testing.T) {
	_, err := Compile([]interface{}{
		"-a=bogus", nil,
		"-b=wrong", nil,
	})
	if err == nil {
		t.Fatal("got nil, want error")
	}
	for _, want := range []string{`"bogus"`, `"wrong"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
