package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "article", nil},
		{"name with hyphen", "glossary-page", nil},
		{"name with underscore", "not_found", nil},
		{"mixed case", "Layout", nil},
		{"empty name", "", ErrInvalidAssetName},
		{"forward slash", "templates/article", ErrInvalidAssetName},
		{"backslash", "templates\\article", ErrInvalidAssetName},
		{"parent traversal", "../secret", ErrInvalidAssetName},
		{"extension", "article.html", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		load         func() (string, error)
		wantErr      error
		wantContains string
	}{
		{
			name:         "article template",
			load:         func() (string, error) { return loader.LoadTemplate(ArticleTemplate) },
			wantContains: `<div class="page__markup">{{.Body}}</div>`,
		},
		{
			name:         "not found template",
			load:         func() (string, error) { return loader.LoadTemplate(NotFoundTemplate) },
			wantContains: "does not exist",
		},
		{
			name:         "layout template",
			load:         func() (string, error) { return loader.LoadTemplate(LayoutTemplate) },
			wantContains: `<meta name="description"`,
		},
		{
			name:         "page style",
			load:         func() (string, error) { return loader.LoadStyle(PageStyle) },
			wantContains: ".page__header",
		},
		{
			name:    "missing template",
			load:    func() (string, error) { return loader.LoadTemplate("missing") },
			wantErr: ErrTemplateNotFound,
		},
		{
			name:    "missing style",
			load:    func() (string, error) { return loader.LoadStyle("missing") },
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "invalid name",
			load:    func() (string, error) { return loader.LoadTemplate("../article") },
			wantErr: ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !containsString(got, tt.wantContains) {
				t.Errorf("content missing %q", tt.wantContains)
			}
		})
	}
}
