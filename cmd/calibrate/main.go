// Command calibrate sums the calibration equations that can be satisfied by
// inserting operators between their operands.
//
// Usage:
//
//	calibrate [--part 1|2] [--workers N] [--explain] [--debug] <input>
//	calibrate sample [--part 1|2]
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
