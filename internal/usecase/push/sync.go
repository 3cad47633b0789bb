package push

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/salesnotes/sfdc-notes-agent/errors"
	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
	"github.com/salesnotes/sfdc-notes-agent/pkg/crm"
)

// Connector opens a CRM session for one synchronization invocation.
type Connector func(ctx context.Context, cfg entities.PushConfig) (crm.Client, error)

// Service synchronizes note records into the CRM. One session is acquired per
// Sync call and reused, read/write, across every note in that call; notes are
// processed strictly one at a time in input order.
type Service struct {
	connect Connector
	logger  *zap.Logger
}

// NewService constructs the synchronizer with the default Salesforce
// connector.
func NewService(logger *zap.Logger) *Service {
	return NewServiceWithConnector(func(ctx context.Context, cfg entities.PushConfig) (crm.Client, error) {
		return crm.Connect(ctx, cfg.LoginURL, cfg.Username, cfg.Password, cfg.SecurityToken)
	}, logger)
}

// NewServiceWithConnector constructs the synchronizer with an injected
// session factory.
func NewServiceWithConnector(connect Connector, logger *zap.Logger) *Service {
	return &Service{connect: connect, logger: logger}
}

// Sync resolves and updates the dependent record for every note, returning
// one outcome per note in input order. A failure on one note never aborts
// the remaining notes; only the login itself is fatal.
func (s *Service) Sync(ctx context.Context, ns []entities.OpportunityNotes, cfg entities.PushConfig) ([]entities.PushOutcome, error) {
	client, err := s.connect(ctx, cfg)
	if err != nil {
		return nil, apperrors.ErrCRMLoginFailed(err)
	}

	outcomes := make([]entities.PushOutcome, 0, len(ns))
	for i := range ns {
		outcome := s.syncOne(ctx, client, &ns[i], cfg)
		if s.logger != nil {
			s.logger.Info("note synchronized",
				zap.String("opportunity", ns[i].OpportunityName),
				zap.String("status", string(outcome.Status)),
				zap.String("detail", outcome.Detail),
			)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// syncOne walks the per-note state machine: identity check, parent
// resolution, dependent resolution, merge, write. Terminal states are
// updated, skipped and error; anything unexpected collapses to an error
// outcome for this note only.
func (s *Service) syncOne(ctx context.Context, client crm.Client, n *entities.OpportunityNotes, cfg entities.PushConfig) (outcome entities.PushOutcome) {
	outcome = entities.PushOutcome{
		OpportunityName: n.OpportunityName,
		AccountName:     n.AccountName,
	}

	defer func() {
		if r := recover(); r != nil {
			outcome.Status = entities.PushStatusError
			outcome.Detail = fmt.Sprintf("panic: %v", r)
		}
	}()

	if n.OpportunityName == "" && n.OpportunityID == "" {
		outcome.Status = entities.PushStatusSkipped
		outcome.Detail = "Missing opportunity_name and opportunity_id (cannot lookup Opportunity)."
		return outcome
	}

	opp, err := s.findOpportunity(ctx, client, n)
	if err != nil {
		outcome.Status = entities.PushStatusError
		outcome.Detail = err.Error()
		return outcome
	}
	if opp == nil {
		outcome.Status = entities.PushStatusSkipped
		outcome.Detail = "Opportunity not found or ambiguous (multiple matches). Provide OpportunityId for exact matching."
		return outcome
	}
	oppID := opp.StringField("Id")
	outcome.OpportunityID = oppID

	assessment, err := s.findLatestAssessment(ctx, client, cfg, oppID)
	if err != nil {
		outcome.Status = entities.PushStatusError
		outcome.Detail = err.Error()
		return outcome
	}
	if assessment == nil {
		outcome.Status = entities.PushStatusSkipped
		outcome.Detail = fmt.Sprintf("No %s record found for Opportunity.", cfg.AssessmentObject)
		return outcome
	}
	assessmentID := assessment.StringField("Id")

	existing := assessment.StringField(cfg.AssessmentCommentsField)
	merged := MergeComments(existing, n.OpportunityComments, cfg.AppendMode)

	if err := client.UpdateField(ctx, cfg.AssessmentObject, assessmentID, cfg.AssessmentCommentsField, merged); err != nil {
		outcome.Status = entities.PushStatusError
		outcome.Detail = err.Error()
		return outcome
	}

	outcome.Status = entities.PushStatusUpdated
	outcome.Detail = "Updated opportunity comments."
	outcome.AssessmentID = assessmentID
	return outcome
}

// findOpportunity resolves the parent record: by exact external ID when
// present, otherwise by exact name optionally narrowed by account name. A
// name lookup must match exactly one record; more than one is ambiguous and
// treated as not found.
func (s *Service) findOpportunity(ctx context.Context, client crm.Client, n *entities.OpportunityNotes) (crm.Record, error) {
	if id := strings.TrimSpace(n.OpportunityID); id != "" {
		soql := fmt.Sprintf(
			"SELECT Id, Name, Account.Name FROM Opportunity WHERE Id = %s LIMIT 1",
			crm.QuoteSOQL(id),
		)
		records, err := client.Query(ctx, soql)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		return records[0], nil
	}

	if n.OpportunityName == "" {
		return nil, nil
	}

	where := "Name = " + crm.QuoteSOQL(n.OpportunityName)
	if n.AccountName != "" {
		where += " AND Account.Name = " + crm.QuoteSOQL(n.AccountName)
	}
	soql := fmt.Sprintf(
		"SELECT Id, Name, Account.Name FROM Opportunity WHERE %s ORDER BY LastModifiedDate DESC LIMIT 5",
		where,
	)
	records, err := client.Query(ctx, soql)
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, nil
	}
	return records[0], nil
}

// findLatestAssessment resolves the dependent record: most recently modified
// child of the resolved opportunity.
func (s *Service) findLatestAssessment(ctx context.Context, client crm.Client, cfg entities.PushConfig, oppID string) (crm.Record, error) {
	soql := fmt.Sprintf(
		"SELECT Id, %s FROM %s WHERE %s = %s ORDER BY LastModifiedDate DESC LIMIT 1",
		cfg.AssessmentCommentsField,
		cfg.AssessmentObject,
		cfg.AssessmentLookupField,
		crm.QuoteSOQL(oppID),
	)
	records, err := client.Query(ctx, soql)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// MergeComments computes the new comments field value. A blank new block
// keeps the existing value; append mode prepends the newest entry above the
// existing value separated by one blank line; otherwise the new block
// replaces entirely.
func MergeComments(existing, newBlock string, appendMode bool) string {
	existing = strings.TrimSpace(existing)
	newBlock = strings.TrimSpace(newBlock)

	if newBlock == "" {
		return existing
	}
	if existing == "" {
		return newBlock
	}
	if !appendMode {
		return newBlock
	}
	return newBlock + "\n\n" + existing
}
