package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ledgerkeep/assetlog/internal/commands"
	"github.com/ledgerkeep/assetlog/internal/output"
)

func main() {
	// A session only writes once it ends. An interrupt during that write
	// removes the temp file; the target is never left half written.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		output.RemovePending()
		fmt.Fprintln(os.Stderr, "\n⚠️  interrupted, current session discarded")
		os.Exit(130)
	}()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
