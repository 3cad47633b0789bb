package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

// RunRepository handles run persistence
type RunRepository struct {
	db *gorm.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

// CreateRun persists a completed run
func (r *RunRepository) CreateRun(ctx context.Context, run *entities.RunResult) error {
	if run == nil {
		return errors.New("run cannot be nil")
	}
	return r.db.WithContext(ctx).Create(run).Error
}

// GetRunByRunID retrieves a run by its public run identifier
func (r *RunRepository) GetRunByRunID(ctx context.Context, runID string) (*entities.RunResult, error) {
	var run entities.RunResult
	if err := r.db.WithContext(ctx).Where("run_id = ?", runID).First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// ListRecentRuns retrieves the most recent runs, newest first
func (r *RunRepository) ListRecentRuns(ctx context.Context, limit int) ([]entities.RunResult, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []entities.RunResult
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
