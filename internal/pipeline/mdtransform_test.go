package pipeline

import "testing"

func TestPartialTagProtection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "single tag", input: "<p>a</p><glossaryToc/><p>b</p>"},
		{name: "several tags", input: "<one/><twoThree/>"},
		{name: "no tags", input: "<p>plain</p>"},
		{name: "not self closing", input: "<div></div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			protected := ProtectPartialTags(tt.input)
			if PartialTagPattern.MatchString(protected) {
				t.Errorf("ProtectPartialTags left a tag in %q", protected)
			}
			if got := RestorePartialTags(protected); got != tt.input {
				t.Errorf("round trip = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestNormalizeMarkdown(t *testing.T) {
	t.Parallel()

	got := NormalizeMarkdown("a\r\nb\rc\n")
	if got != "a\nb\nc\n" {
		t.Errorf("NormalizeMarkdown = %q, want %q", got, "a\nb\nc\n")
	}
}
