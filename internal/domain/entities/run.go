package entities

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunFailure records one transcript that could not be summarized.
type RunFailure struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

// RunResult is one batch execution: an ordered note list plus per-item
// failures. Append-only while the run executes, immutable afterwards.
type RunResult struct {
	ID        uuid.UUID          `json:"-" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RunID     string             `json:"run_id" gorm:"type:varchar(64);uniqueIndex;not null"`
	Backend   string             `json:"backend,omitempty" gorm:"type:varchar(40)"`
	Notes     []OpportunityNotes `json:"notes" gorm:"type:jsonb;serializer:json"`
	Failures  []RunFailure       `json:"failures,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time          `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (RunResult) TableName() string {
	return "runs"
}

// NewRunResult creates an empty run with a fresh run identifier.
func NewRunResult(backend string) *RunResult {
	return &RunResult{
		ID:        uuid.New(),
		RunID:     NewRunID(),
		Backend:   backend,
		Notes:     make([]OpportunityNotes, 0),
		Failures:  make([]RunFailure, 0),
		CreatedAt: time.Now().UTC(),
	}
}

// NewRunID produces a human-sortable run identifier: run_<UTC stamp>_<hex>.
func NewRunID() string {
	var b [3]byte
	_, _ = rand.Read(b[:])
	return fmt.Sprintf("run_%s_%s", time.Now().UTC().Format("20060102T150405Z"), hex.EncodeToString(b[:]))
}
