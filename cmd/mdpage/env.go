package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Fs     afero.Fs // Config, content and output files
}

// DefaultEnv returns the production environment on the OS filesystem.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Fs:     afero.NewOsFs(),
	}
}
