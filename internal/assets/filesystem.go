package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/spf13/afero"
)

// FilesystemLoader loads assets from a directory.
type FilesystemLoader struct {
	fs afero.Fs
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath on fsys.
// Returns ErrInvalidBasePath if the path is not a readable directory.
func NewFilesystemLoader(fsys afero.Fs, basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	info, err := fsys.Stat(basePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, basePath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, basePath)
	}

	// Verify read access by attempting to read directory
	if _, err := afero.ReadDir(fsys, basePath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{fs: afero.NewBasePathFs(fsys, basePath)}, nil
}

// LoadStyle loads {basePath}/styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	return f.read(path.Join("/styles", name+".css"), ErrStyleNotFound, name)
}

// LoadTemplate loads {basePath}/templates/{name}.html.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	return f.read(path.Join("/templates", name+".html"), ErrTemplateNotFound, name)
}

func (f *FilesystemLoader) read(file string, notFound error, name string) (string, error) {
	content, err := afero.ReadFile(f.fs, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", notFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
