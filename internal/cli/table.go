package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

var (
	updatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func styleStatus(s entities.PushStatus) string {
	switch s {
	case entities.PushStatusUpdated:
		return updatedStyle.Render(string(s))
	case entities.PushStatusSkipped:
		return skippedStyle.Render(string(s))
	default:
		return errorStyle.Render(string(s))
	}
}

// PrintRunTable prints a summary row per note plus one row per failure.
func PrintRunTable(run *entities.RunResult, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "OPPORTUNITY\tACCOUNT\tCONFIDENCE\tNEXT STEPS\tMODEL")
	for _, n := range run.Notes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			n.OpportunityName, n.AccountName, n.Confidence, len(n.NextSteps), n.ModelName)
	}
	w.Flush()

	for _, f := range run.Failures {
		fmt.Fprintf(writer, "%s %s: %s\n", errorStyle.Render("FAILED"), f.Filename, f.Message)
	}
}

// PrintOutcomesTable prints one synchronization outcome per note.
func PrintOutcomesTable(outcomes []entities.PushOutcome, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "OPPORTUNITY\tSTATUS\tDETAIL")
	for _, o := range outcomes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", o.OpportunityName, styleStatus(o.Status), o.Detail)
	}
	w.Flush()
}
