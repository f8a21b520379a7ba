// Package graceful ties a context's lifetime to OS termination signals so
// in-flight API pagination and cache writes can stop cleanly on Ctrl-C.
package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Context derives a context that is canceled when SIGINT or SIGTERM is
// received. Callers must invoke the returned CancelFunc to release the
// signal registration.
func Context(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
