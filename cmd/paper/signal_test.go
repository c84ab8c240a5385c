package main

import (
	"context"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("starts not canceled", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		defer stop()

		if ctx.Err() != nil {
			t.Fatalf("ctx.Err() = %v, want nil", ctx.Err())
		}
	})

	t.Run("stop cancels", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		stop()

		if ctx.Err() == nil {
			t.Fatal("context not canceled after stop()")
		}
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()
		<-ctx.Done()
	})
}

func TestStopSignals(t *testing.T) {
	t.Parallel()

	if len(stopSignals) == 0 {
		t.Fatal("no stop signals registered")
	}
}
