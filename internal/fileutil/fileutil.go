// Package fileutil provides file and path helpers over afero filesystems.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// Sentinel errors for file utility operations.
var (
	ErrFileNameEmpty         = errors.New("file name cannot be empty")
	ErrFileNamePathTraversal = errors.New("file name contains path separator, traversal or null byte")
)

// ValidateFileName checks that name is a bare file name, safe to join onto a
// trusted directory.
func ValidateFileName(name string) error {
	if name == "" {
		return ErrFileNameEmpty
	}
	if strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrFileNamePathTraversal, name)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadFile reads a regular file. A missing path or a directory reports
// found=false with a nil error; any other failure is returned.
func ReadFile(fsys afero.Fs, path string) (data []byte, found bool, err error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if info.IsDir() {
		return nil, false, nil
	}

	data, err = afero.ReadFile(fsys, path)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "mdpage" -> false (name)
//   - "./mdpage.yaml" -> true (relative path)
//   - "/etc/mdpage/site.yaml" -> true (absolute)
//   - "C:\mdpage\site.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
