package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
	"github.com/salesnotes/sfdc-notes-agent/internal/usecase/export"
	"github.com/salesnotes/sfdc-notes-agent/internal/usecase/notes"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

func newSummarizeCmd(logger *zap.Logger) *cobra.Command {
	var manifestPath string
	var csvPath string
	var savePath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "summarize <transcript>...",
		Short: "Summarize transcript files into structured opportunity notes",
		Long: "Summarize one or more transcript files (.txt, .vtt, .srt) into structured " +
			"opportunity notes using the configured backend. Metadata per file can be " +
			"supplied through a YAML manifest.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			manifest, err := LoadManifest(manifestPath)
			if err != nil {
				return err
			}

			transcripts := make([]entities.TranscriptInput, 0, len(args))
			for _, path := range args {
				raw, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read transcript %s: %w", path, err)
				}
				filename := filepath.Base(path)
				text := entities.DecodeTranscriptBytes(raw)
				transcripts = append(transcripts, notes.BuildTranscript(filename, text, manifest.MetadataFor(filename)))
			}

			summarizer, err := notes.NewSummarizer(cfg, logger)
			if err != nil {
				return err
			}
			if closer, ok := summarizer.(io.Closer); ok {
				defer closer.Close()
			}
			svc := notes.NewService(summarizer, nil, logger)

			run := svc.Run(cmd.Context(), transcripts)

			if savePath != "" {
				doc, err := json.MarshalIndent(run, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(savePath, doc, 0o644); err != nil {
					return fmt.Errorf("failed to save run: %w", err)
				}
			}

			if csvPath != "" {
				doc, err := export.NotesCSV(run.Notes)
				if err != nil {
					return err
				}
				if err := os.WriteFile(csvPath, doc, 0o644); err != nil {
					return fmt.Errorf("failed to write CSV: %w", err)
				}
			}

			if jsonOutput {
				data, err := json.MarshalIndent(run, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("Run %s (%s): %d note(s), %d failure(s)\n\n",
				run.RunID, run.Backend, len(run.Notes), len(run.Failures))
			PrintRunTable(run, os.Stdout)

			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest mapping transcript filenames to metadata")
	cmd.Flags().StringVarP(&csvPath, "csv", "c", "", "Write a flat CSV export to this path")
	cmd.Flags().StringVarP(&savePath, "save", "s", "", "Save the full run document as JSON to this path (usable by 'push')")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the full run document as JSON")

	return cmd
}
