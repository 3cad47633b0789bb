package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd creates the root command for notesctl.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "notesctl",
		Short:         "Summarize sales-call transcripts and push the notes to Salesforce",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newSummarizeCmd(logger))
	rootCmd.AddCommand(newPushCmd(logger))

	return rootCmd
}
