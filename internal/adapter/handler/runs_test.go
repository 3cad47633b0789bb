package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
	"github.com/salesnotes/sfdc-notes-agent/internal/usecase/notes"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
	pkgvalidator "github.com/salesnotes/sfdc-notes-agent/pkg/validator"
)

func testServer() (*echo.Echo, *RunController) {
	e := echo.New()
	e.Validator = pkgvalidator.New()

	svc := notes.NewService(notes.NewMockSummarizer("SE"), nil, nil)
	rc := NewRunController(svc, nil, nil, nil, &config.Config{}, nil)
	return e, rc
}

func TestCreateRun(t *testing.T) {
	e, rc := testServer()

	body := `{"transcripts": [{"filename": "acme_call.txt", "text": "We agreed on next steps: send pricing."}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/runs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := rc.CreateRun(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}

	var run entities.RunResult
	if err := json.Unmarshal(rec.Body.Bytes(), &run); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if !strings.HasPrefix(run.RunID, "run_") {
		t.Fatalf("got run id %q", run.RunID)
	}
	if len(run.Notes) != 1 || len(run.Failures) != 0 {
		t.Fatalf("got %d notes, %d failures", len(run.Notes), len(run.Failures))
	}
	// Metadata fallback: opportunity name guessed from the filename.
	if run.Notes[0].OpportunityName != "acme call" {
		t.Fatalf("got opportunity %q", run.Notes[0].OpportunityName)
	}
}

func TestCreateRunRejectsEmptyBatch(t *testing.T) {
	e, rc := testServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/runs", strings.NewReader(`{"transcripts": []}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := rc.CreateRun(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateRunRejectsMissingText(t *testing.T) {
	e, rc := testServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/runs", strings.NewReader(`{"transcripts": [{"filename": "a.txt"}]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := rc.CreateRun(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetRunWithoutPersistence(t *testing.T) {
	e, rc := testServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/runs/run_x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("run_x")

	if err := rc.GetRun(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
}
