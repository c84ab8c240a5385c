//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// stopSignals end a build between entries and terminate watch mode.
var stopSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, stopSignals...)
}
