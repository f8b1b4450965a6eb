package pipeline

import "testing"

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and hyphenates",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "spaced slash collapses to one hyphen",
			input:    "Mining / Staking",
			expected: "mining-staking",
		},
		{
			name:     "several spaced slashes",
			input:    "a / b / c",
			expected: "a-b-c",
		},
		{
			name:     "strips percent parens and commas",
			input:    "What is LBC (LBRY Credits), really?",
			expected: "what-is-lbc-lbry-credits-really?",
		},
		{
			name:     "leading digit gets underscore",
			input:    "2019 Roadmap",
			expected: "_2019-roadmap",
		},
		{
			name:     "leading digit after stripping",
			input:    "100% Free, Forever",
			expected: "_100-free-forever",
		},
		{
			name:     "stripped paren exposes digit",
			input:    "(1) First",
			expected: "_1-first",
		},
		{
			name:     "every whitespace char becomes a hyphen",
			input:    "tab\there  two",
			expected: "tab-here--two",
		},
		{
			name:     "non-breaking space is whitespace",
			input:    "a\u00a0b",
			expected: "a-b",
		},
		{
			name:     "unspaced slash is kept",
			input:    "TCP/IP",
			expected: "tcp/ip",
		},
		{
			name:     "unicode letters are kept",
			input:    "Über Café",
			expected: "über-café",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Slugify(tt.input)
			if got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello World",
		"2019 Roadmap",
		"Mining / Staking",
		"100% Free, Forever",
		"already-a-slug",
		"_1-first",
	}

	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q then %q", input, once, twice)
		}
		if again := Slugify(input); again != once {
			t.Errorf("Slugify not deterministic for %q: %q then %q", input, once, again)
		}
	}
}

func TestUniqueSlug(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	got := []string{
		uniqueSlug("intro", seen),
		uniqueSlug("intro", seen),
		uniqueSlug("intro", seen),
		uniqueSlug("intro-1", seen),
	}
	want := []string{"intro", "intro-1", "intro-2", "intro-1-1"}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("uniqueSlug call %d = %q, want %q", i, got[i], want[i])
		}
	}
}
