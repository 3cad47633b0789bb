package entities

// PushStatus is the terminal state of one note's CRM synchronization.
type PushStatus string

const (
	PushStatusUpdated PushStatus = "updated"
	PushStatusSkipped PushStatus = "skipped"
	PushStatusError   PushStatus = "error"
)

// PushConfig maps notes onto a concrete Salesforce org: where to log in and
// which dependent object/fields receive the opportunity comments.
type PushConfig struct {
	LoginURL      string
	Username      string
	Password      string
	SecurityToken string

	// Dependent record mapping. The object API name of the record related to
	// the Opportunity, its Opportunity lookup field, and the comments field
	// that gets written.
	AssessmentObject        string
	AssessmentLookupField   string
	AssessmentCommentsField string

	// AppendMode prepends the new comment block above the existing value
	// instead of replacing it.
	AppendMode bool
}

// PushOutcome is the per-note result of a synchronization run, produced in
// input order and never mutated afterwards.
type PushOutcome struct {
	OpportunityName string     `json:"opportunity_name"`
	AccountName     string     `json:"account_name"`
	Status          PushStatus `json:"status"`
	Detail          string     `json:"detail"`
	OpportunityID   string     `json:"opportunity_id,omitempty"`
	AssessmentID    string     `json:"assessment_id,omitempty"`
}
