// Command devtool bundles maintenance tasks for the local market store.
package main

import (
	"fmt"
	"os"
)

func main() {
	registry := NewRegistry()
	registry.Register(&MigrateCommand{})
	registry.Register(&CreateDBCommand{})
	registry.Register(&CheckDBCommand{})
	registry.Register(&PlaceholdersCommand{})
	registry.Register(&ReconcileCommand{})

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("unknown command %q", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s: %v", cmd.Name(), err)
		os.Exit(1)
	}
}

func usageError(format string, a ...any) error {
	return fmt.Errorf("usage: devtool "+format, a...)
}
