package pipeline

import (
	"errors"
	"slices"
	"sort"
	"strings"
	"testing"
)

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{"default style", "", nil},
		{"named style", "monokai", nil},
		{"unknown style", "no-such-style", ErrUnknownStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css, err := HighlightCSS(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("HighlightCSS() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("HighlightCSS() error = %v", err)
			}
			if !strings.Contains(css, ".chroma") {
				t.Errorf("stylesheet missing .chroma rules:\n%s", css)
			}
		})
	}
}

func TestHighlightStyles(t *testing.T) {
	t.Parallel()

	names := HighlightStyles()
	if !sort.StringsAreSorted(names) {
		t.Error("HighlightStyles() is not sorted")
	}
	for _, want := range []string{DefaultHighlightStyle, "monokai"} {
		if !slices.Contains(names, want) {
			t.Errorf("HighlightStyles() missing %q", want)
		}
	}
}
