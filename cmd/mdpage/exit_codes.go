package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdpage"
	"github.com/alnah/go-mdpage/internal/config"
)

// Exit codes for the mdpage CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrPageNotFound) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, mdpage.ErrDocumentRead) ||
		errors.Is(err, mdpage.ErrPageScriptRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrMissingPath) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdpage.ErrInvalidAssetPath) ||
		errors.Is(err, mdpage.ErrInvalidPageScript) ||
		errors.Is(err, mdpage.ErrComponentLoad) ||
		errors.Is(err, mdpage.ErrUnresolvedPartial) {
		return ExitUsage
	}

	return ExitGeneral
}
