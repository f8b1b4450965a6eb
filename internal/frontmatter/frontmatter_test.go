package frontmatter

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/alnah/go-mdpage/internal/yamlutil"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		source    string
		wantTitle string
		wantMeta  yamlutil.Pairs
		wantBody  string
	}{
		{
			name:      "title and meta",
			source:    "---\ntitle: Glossary\nmeta:\n  - description: Terms used across LBRY\n---\n\n# Terms\n",
			wantTitle: "Glossary",
			wantMeta:  yamlutil.Pairs{{Key: "description", Value: "Terms used across LBRY"}},
			wantBody:  "# Terms",
		},
		{
			name:      "title only",
			source:    "---\ntitle: Tour\n---\nWelcome.\n",
			wantTitle: "Tour",
			wantBody:  "Welcome.",
		},
		{
			name:     "no front-matter",
			source:   "# Just markdown\n\nText.\n",
			wantBody: "# Just markdown",
		},
		{
			name:     "empty block",
			source:   "---\n---\nBody here.\n",
			wantBody: "Body here.",
		},
		{
			name:      "unknown keys ignored",
			source:    "---\ntitle: Overview\nlayout: wide\n---\nText.\n",
			wantTitle: "Overview",
			wantBody:  "Text.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse([]byte(tt.source))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if doc.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", doc.Title, tt.wantTitle)
			}
			if !reflect.DeepEqual(doc.Meta, tt.wantMeta) {
				t.Errorf("Meta = %#v, want %#v", doc.Meta, tt.wantMeta)
			}
			if !strings.Contains(string(doc.Body), tt.wantBody) {
				t.Errorf("Body = %q, want containing %q", doc.Body, tt.wantBody)
			}
			if strings.Contains(string(doc.Body), "title:") {
				t.Errorf("Body should not contain the front-matter block: %q", doc.Body)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	source := "---\ntitle: [unclosed\n---\nBody.\n"

	doc, err := Parse([]byte(source))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Parse() error = %v, want ErrMalformed", err)
	}
	if string(doc.Body) != source {
		t.Errorf("Body = %q, want the whole source", doc.Body)
	}
	if doc.Title != "" {
		t.Errorf("Title = %q, want empty", doc.Title)
	}
}
