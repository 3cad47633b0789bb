package run

import (
	"time"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

// TranscriptRequest is one transcript item in a run request. Text arrives
// already decoded; the metadata fields are all optional.
type TranscriptRequest struct {
	Filename        string `json:"filename" validate:"required"`
	Text            string `json:"text" validate:"required"`
	OpportunityName string `json:"opportunity_name"`
	AccountName     string `json:"account_name"`
	OpportunityID   string `json:"opportunity_id"`
	CallDate        string `json:"call_date" validate:"omitempty,datetime=2006-01-02"`
	Source          string `json:"source"`
	Owner           string `json:"owner"`
	Stage           string `json:"stage"`
}

// CreateRunRequest is the batch summarization request body.
type CreateRunRequest struct {
	Transcripts []TranscriptRequest `json:"transcripts" validate:"required,min=1,dive"`
}

// PushRequest optionally overrides the configured merge mode for one push.
type PushRequest struct {
	AppendMode *bool `json:"append_mode"`
}

// Metadata converts the request fields into transcript metadata, guessing the
// opportunity name from the filename when absent.
func (t *TranscriptRequest) Metadata() entities.TranscriptMetadata {
	name := t.OpportunityName
	if name == "" {
		name = entities.GuessOpportunityName(t.Filename)
	}

	var callDate *time.Time
	if t.CallDate != "" {
		if d, err := time.Parse("2006-01-02", t.CallDate); err == nil {
			callDate = &d
		}
	}

	return entities.TranscriptMetadata{
		OpportunityName: name,
		AccountName:     t.AccountName,
		OpportunityID:   t.OpportunityID,
		CallDate:        callDate,
		Source:          entities.ParseSource(t.Source),
		Owner:           t.Owner,
		Stage:           t.Stage,
	}
}
