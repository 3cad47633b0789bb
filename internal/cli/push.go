package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
	"github.com/salesnotes/sfdc-notes-agent/internal/usecase/push"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

func newPushCmd(logger *zap.Logger) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "push <run.json>",
		Short: "Synchronize a saved run's notes into Salesforce",
		Long: "Synchronize the opportunity comments from a saved run document " +
			"(produced by 'summarize --save') into the mapped Salesforce records.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.PushConfigured() {
				return fmt.Errorf("Salesforce push is not configured; set SALESFORCE_USERNAME, SALESFORCE_PASSWORD and the assessment field mapping")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read run document: %w", err)
			}
			var run entities.RunResult
			if err := json.Unmarshal(data, &run); err != nil {
				return fmt.Errorf("failed to parse run document: %w", err)
			}
			if len(run.Notes) == 0 {
				fmt.Println("Run contains no notes, nothing to push.")
				return nil
			}

			sf := cfg.Salesforce
			pushCfg := entities.PushConfig{
				LoginURL:                sf.LoginURL,
				Username:                sf.Username,
				Password:                sf.Password,
				SecurityToken:           sf.SecurityToken,
				AssessmentObject:        sf.AssessmentObject,
				AssessmentLookupField:   sf.AssessmentLookupField,
				AssessmentCommentsField: sf.AssessmentCommentsField,
				AppendMode:              sf.AppendMode,
			}
			if overwrite {
				pushCfg.AppendMode = false
			}

			outcomes, err := push.NewService(logger).Sync(cmd.Context(), run.Notes, pushCfg)
			if err != nil {
				return err
			}

			PrintOutcomesTable(outcomes, os.Stdout)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing opportunity comments instead of prepending the new block")

	return cmd
}
