package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/salesnotes/sfdc-notes-agent/errors"
	rundto "github.com/salesnotes/sfdc-notes-agent/internal/adapter/dto/run"
	"github.com/salesnotes/sfdc-notes-agent/internal/adapter/repository"
	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
	"github.com/salesnotes/sfdc-notes-agent/internal/infrastructure/storage"
	"github.com/salesnotes/sfdc-notes-agent/internal/usecase/export"
	"github.com/salesnotes/sfdc-notes-agent/internal/usecase/notes"
	"github.com/salesnotes/sfdc-notes-agent/internal/usecase/push"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

// RunController handles batch summarization runs and their derived artifacts.
// repo and store may be nil when persistence or archival is not configured.
type RunController struct {
	notesSvc *notes.Service
	pushSvc  *push.Service
	repo     *repository.RunRepository
	store    *storage.ArtifactStore
	cfg      *config.Config
	logger   *zap.Logger
}

// NewRunController creates a new run controller
func NewRunController(
	notesSvc *notes.Service,
	pushSvc *push.Service,
	repo *repository.RunRepository,
	store *storage.ArtifactStore,
	cfg *config.Config,
	logger *zap.Logger,
) *RunController {
	return &RunController{
		notesSvc: notesSvc,
		pushSvc:  pushSvc,
		repo:     repo,
		store:    store,
		cfg:      cfg,
		logger:   logger,
	}
}

// CreateRun summarizes a batch of transcripts
// @Summary      Summarize transcripts
// @Description  Runs every transcript through the configured summarization backend, one at a time in submission order
// @Tags         Runs
// @Accept       json
// @Produce      json
// @Param        request  body      run.CreateRunRequest  true  "Transcripts to summarize"
// @Success      201      {object}  entities.RunResult
// @Failure      400      {object}  common.ErrorResponse
// @Router       /runs [post]
func (rc *RunController) CreateRun(c echo.Context) error {
	var req rundto.CreateRunRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(rc.logger, c, apperrors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(rc.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	transcripts := make([]entities.TranscriptInput, 0, len(req.Transcripts))
	for i := range req.Transcripts {
		t := &req.Transcripts[i]
		transcripts = append(transcripts, notes.BuildTranscript(t.Filename, t.Text, t.Metadata()))
	}

	run := rc.notesSvc.Run(c.Request().Context(), transcripts)

	if rc.repo != nil {
		if err := rc.repo.CreateRun(c.Request().Context(), run); err != nil {
			return HandleError(rc.logger, c, apperrors.ErrDBQueryFailed(err))
		}
	}
	rc.archiveRun(c, run)

	return HandleSuccess(rc.logger, c, http.StatusCreated, run)
}

// GetRun retrieves a stored run by its run identifier
// @Summary      Get run
// @Tags         Runs
// @Produce      json
// @Param        id   path      string  true  "Run ID"
// @Success      200  {object}  entities.RunResult
// @Failure      404  {object}  common.ErrorResponse
// @Router       /runs/{id} [get]
func (rc *RunController) GetRun(c echo.Context) error {
	run, err := rc.loadRun(c)
	if err != nil {
		return HandleError(rc.logger, c, err)
	}
	return HandleSuccess(rc.logger, c, http.StatusOK, run)
}

// ExportCSV renders a stored run as a flat CSV document
// @Summary      Export run as CSV
// @Tags         Runs
// @Produce      text/csv
// @Param        id   path      string  true  "Run ID"
// @Success      200  {string}  string  "CSV document"
// @Failure      404  {object}  common.ErrorResponse
// @Router       /runs/{id}/export.csv [get]
func (rc *RunController) ExportCSV(c echo.Context) error {
	run, err := rc.loadRun(c)
	if err != nil {
		return HandleError(rc.logger, c, err)
	}

	doc, err := export.NotesCSV(run.Notes)
	if err != nil {
		return HandleError(rc.logger, c, apperrors.ErrInternal(err))
	}

	filename := export.DefaultFilename()
	if rc.store != nil {
		if err := rc.store.PutCSV(c.Request().Context(), filename, doc); err != nil && rc.logger != nil {
			rc.logger.Warn("csv archive failed", zap.String("run_id", run.RunID), zap.Error(err))
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv", doc)
}

// PushRun synchronizes a stored run's notes into the CRM
// @Summary      Push run to Salesforce
// @Tags         Runs
// @Accept       json
// @Produce      json
// @Param        id       path      string           true   "Run ID"
// @Param        request  body      run.PushRequest  false  "Push options"
// @Success      200      {object}  []entities.PushOutcome
// @Failure      404      {object}  common.ErrorResponse
// @Failure      502      {object}  common.ErrorResponse
// @Router       /runs/{id}/push [post]
func (rc *RunController) PushRun(c echo.Context) error {
	run, err := rc.loadRun(c)
	if err != nil {
		return HandleError(rc.logger, c, err)
	}

	if !rc.cfg.PushConfigured() {
		return HandleError(rc.logger, c, apperrors.ErrConfigInvalid(
			"Salesforce push is not configured; set SALESFORCE_USERNAME, SALESFORCE_PASSWORD and the assessment field mapping"))
	}

	var req rundto.PushRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return HandleError(rc.logger, c, apperrors.ErrInvalidArgument("invalid request body"))
		}
	}

	pushCfg := rc.pushConfig()
	if req.AppendMode != nil {
		pushCfg.AppendMode = *req.AppendMode
	}

	outcomes, err := rc.pushSvc.Sync(c.Request().Context(), run.Notes, pushCfg)
	if err != nil {
		return HandleError(rc.logger, c, err)
	}
	return HandleSuccess(rc.logger, c, http.StatusOK, outcomes)
}

func (rc *RunController) loadRun(c echo.Context) (*entities.RunResult, error) {
	if rc.repo == nil {
		return nil, apperrors.ErrConfigInvalid("run persistence is not configured")
	}
	runID := c.Param("id")
	run, err := rc.repo.GetRunByRunID(c.Request().Context(), runID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if run == nil {
		return nil, apperrors.ErrNotFound("run")
	}
	return run, nil
}

// archiveRun stores the serialized run in the artifact bucket, best effort.
func (rc *RunController) archiveRun(c echo.Context, run *entities.RunResult) {
	if rc.store == nil {
		return
	}
	doc, err := json.Marshal(run)
	if err == nil {
		err = rc.store.PutRunJSON(c.Request().Context(), run.RunID, doc)
	}
	if err != nil && rc.logger != nil {
		rc.logger.Warn("run archive failed", zap.String("run_id", run.RunID), zap.Error(err))
	}
}

func (rc *RunController) pushConfig() entities.PushConfig {
	sf := rc.cfg.Salesforce
	return entities.PushConfig{
		LoginURL:                sf.LoginURL,
		Username:                sf.Username,
		Password:                sf.Password,
		SecurityToken:           sf.SecurityToken,
		AssessmentObject:        sf.AssessmentObject,
		AssessmentLookupField:   sf.AssessmentLookupField,
		AssessmentCommentsField: sf.AssessmentCommentsField,
		AppendMode:              sf.AppendMode,
	}
}
