// Command wvk searches for a Curve25519 (WireGuard) public key whose
// base64 encoding begins with a chosen prefix, and applies a verified
// offset to the matching private key.
//
// Usage:
//
//	wvk offset PUBLIC_KEY PREFIX SKIP LIMIT
//	wvk add    OFFSET     PREFIX
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(logger)
	root.SetArgs(os.Args[1:])

	err := root.ExecuteContext(ctx)
	os.Exit(exitCode(err, logger))
}

// exitError carries the process exit code to report alongside a
// human-readable diagnostic. Plain errors (e.g. cobra's own arg-count
// failures) fall back to the usage exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

func fatalErrorf(format string, args ...any) error {
	return &exitError{code: 1, err: fmt.Errorf(format, args...)}
}

var errInterrupted = &exitError{code: 3, err: errors.New("interrupted")}

// exitCode maps a command error to a process exit code, logging it first.
// nil means success: exit 0.
func exitCode(err error, logger zerolog.Logger) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.code != 3 { // interrupted prints no extra diagnostic: caller already logged it
			logger.Error().Msg(ee.Error())
		}
		return ee.code
	}
	logger.Error().Msg(err.Error())
	return 2
}
