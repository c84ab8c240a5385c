package main

import (
	"context"
	"io"
	"os"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
	WorkDir string // empty means the process working directory

	// Context, when set, replaces context.Background as the root context.
	Ctx context.Context
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}

// Context returns the root context of a command.
func (e *Environment) Context() context.Context {
	if e.Ctx != nil {
		return e.Ctx
	}
	return context.Background()
}
