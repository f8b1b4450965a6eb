package fileutil_test

import (
	"errors"
	"testing"

	"github.com/spf13/afero"

	"github.com/alnah/go-mdpage/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateFileName - Bare file name validation
// ---------------------------------------------------------------------------

func TestValidateFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileName string
		wantErr  error
	}{
		{
			name:     "script file",
			fileName: "glossary-scripts.js",
			wantErr:  nil,
		},
		{
			name:     "empty name",
			fileName: "",
			wantErr:  fileutil.ErrFileNameEmpty,
		},
		{
			name:     "forward slash traversal",
			fileName: "../etc/passwd",
			wantErr:  fileutil.ErrFileNamePathTraversal,
		},
		{
			name:     "backslash traversal",
			fileName: "..\\windows\\system32",
			wantErr:  fileutil.ErrFileNamePathTraversal,
		},
		{
			name:     "parent directory",
			fileName: "..",
			wantErr:  fileutil.ErrFileNamePathTraversal,
		},
		{
			name:     "null byte injection",
			fileName: "tour.js\x00.sh",
			wantErr:  fileutil.ErrFileNamePathTraversal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateFileName(tt.fileName)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFileName(%q) = %v, want %v", tt.fileName, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestReadFile - Regular file lookups
// ---------------------------------------------------------------------------

func newFs(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/docs/tour.md", []byte("# Tour"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := fsys.MkdirAll("/docs/resources.md", 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return fsys
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	fsys := newFs(t)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", "/docs/tour.md", true},
		{"missing file", "/docs/missing.md", false},
		{"directory", "/docs/resources.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(fsys, tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	fsys := newFs(t)

	tests := []struct {
		name      string
		path      string
		wantFound bool
		wantData  string
	}{
		{"existing file", "/docs/tour.md", true, "# Tour"},
		{"missing file", "/docs/missing.md", false, ""},
		{"directory", "/docs/resources.md", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, found, err := fileutil.ReadFile(fsys, tt.path)
			if err != nil {
				t.Fatalf("ReadFile(%q) error = %v", tt.path, err)
			}
			if found != tt.wantFound {
				t.Errorf("found = %v, want %v", found, tt.wantFound)
			}
			if string(data) != tt.wantData {
				t.Errorf("data = %q, want %q", data, tt.wantData)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Path vs name detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"mdpage", false},
		{"my-site", false},
		{"./mdpage.yaml", true},
		{"../shared/site.yaml", true},
		{"/etc/mdpage/site.yaml", true},
		{"C:\\mdpage\\site.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
