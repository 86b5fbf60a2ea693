// Windows signal handling. Windows has no SIGTERM, so only os.Interrupt is
// registered; the Go runtime maps CTRL_BREAK_EVENT and console-close events
// to it as well.

//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// signalContext returns a context canceled on os.Interrupt.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
