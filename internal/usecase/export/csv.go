package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

var csvHeader = []string{
	"opportunity_name",
	"account_name",
	"opportunity_id",
	"executive_summary",
	"opportunity_comments",
	"customer_pain",
	"use_cases",
	"stakeholders",
	"competitors_or_alternatives",
	"products_or_features_discussed",
	"risks_or_blockers",
	"next_steps",
	"open_questions",
	"confidence",
	"tags",
	"model_name",
}

// NotesCSV renders notes as a CSV document, one row per note, list fields
// flattened by joining elements with "; ".
func NotesCSV(ns []entities.OpportunityNotes) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for i := range ns {
		n := &ns[i]
		row := []string{
			n.OpportunityName,
			n.AccountName,
			n.OpportunityID,
			n.ExecutiveSummary,
			n.OpportunityComments,
			joinList(n.CustomerPain),
			joinList(n.UseCases),
			joinList(n.Stakeholders),
			joinList(n.CompetitorsOrAlternatives),
			joinList(n.ProductsOrFeaturesDiscussed),
			joinList(n.RisksOrBlockers),
			joinList(n.NextSteps),
			joinList(n.OpenQuestions),
			string(n.Confidence),
			joinList(n.Tags),
			n.ModelName,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func joinList(list []string) string {
	return strings.Join(list, "; ")
}

// DefaultFilename returns the timestamped CSV artifact name.
func DefaultFilename() string {
	return fmt.Sprintf("sfdc_notes_%s.csv", time.Now().UTC().Format("20060102T150405Z"))
}
