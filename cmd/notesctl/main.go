package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/salesnotes/sfdc-notes-agent/internal/cli"
)

func main() {
	logger := zap.NewNop()
	if os.Getenv("NOTESCTL_DEBUG") != "" {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	rootCmd := cli.NewRootCmd(logger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
