// Command roadmap analyzes a road map file and writes the route and
// barely connected network report.
//
//	roadmap [--config run.yaml] [--log-level debug] <input> <output>
//	roadmap generate --locations 20 --roads 40 --seed 3 <output>
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
