//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// stopSignals end a build between entries and terminate watch mode.
// SIGTERM is not delivered on Windows.
var stopSignals = []os.Signal{os.Interrupt}

func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, stopSignals...)
}
