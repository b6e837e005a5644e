// Command opsearch calibrates equations from a text file: it reports the
// total of the targets whose operands can be combined left to right into
// the target with the configured operators.
//
// Usage:
//
//	opsearch solve equations.txt --ops add,mul,concat --workers 8
//	opsearch check 3267 81 40 27
//	opsearch count 12 --ops add,mul,concat
//	opsearch config --config opsearch.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
