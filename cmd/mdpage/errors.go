package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags = errors.New("invalid flags")
	ErrMissingPath  = errors.New("missing document path")
	ErrPageNotFound = errors.New("document not found")
	ErrWriteOutput  = errors.New("failed to write output")
)
