package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidateInput(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    []string
		wantErr bool
	}{
		"empty":       {input: "", want: []string{}},
		"single":      {input: "work", want: []string{"work"}},
		"extra space": {input: "  work   side-project ", want: []string{"work", "side-project"}},
		"duplicates":  {input: "a b a", want: []string{"a", "b"}},
		"bad char":    {input: "work home!", wantErr: true},
		"slash":       {input: "work/meetings", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ValidateInput(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected ValidateInput(%q) to fail", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateInput returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsTerminalRejectsNonFiles(t *testing.T) {
	if IsTerminal(strings.NewReader("")) {
		t.Fatal("expected a string reader not to be a terminal")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("héllo world", 5); got != "héll…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("expected short string untouched, got %q", got)
	}
}
