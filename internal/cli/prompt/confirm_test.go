package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"  YES  \n", true},
		{"Y", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, err := NewConfirmer(strings.NewReader(tt.input), &out).Confirm("Overwrite SKILL.md?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if out.String() != "Overwrite SKILL.md? [y/N]: " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	got, err := NewConfirmer(strings.NewReader(""), &out).Confirm("Overwrite?")
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Confirm() error = %v, want ErrCancelled", err)
	}
	if got {
		t.Error("Confirm() = true on EOF")
	}
}
