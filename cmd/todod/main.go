// Package main is the todod command. It serves the todo command bridge over
// HTTP and carries the operational subcommands (schema migration and a
// local listing) that share the same configuration and wiring.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
