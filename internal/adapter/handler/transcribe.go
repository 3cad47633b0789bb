package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/salesnotes/sfdc-notes-agent/errors"
	"github.com/salesnotes/sfdc-notes-agent/internal/usecase/transcribe"
)

// maxAudioBytes caps uploaded recordings at 200 MiB.
const maxAudioBytes = 200 << 20

// TranscribeController handles audio-to-text uploads
type TranscribeController struct {
	transcriber transcribe.Transcriber
	logger      *zap.Logger
}

// NewTranscribeController creates a new transcribe controller
func NewTranscribeController(transcriber transcribe.Transcriber, logger *zap.Logger) *TranscribeController {
	return &TranscribeController{transcriber: transcriber, logger: logger}
}

// Transcribe converts an uploaded recording into plain transcript text
// @Summary      Transcribe audio
// @Description  Uploads a call recording and returns the recognized transcript text
// @Tags         Transcription
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio     formData  file    true   "Audio recording"
// @Param        language  formData  string  false  "Language hint (ISO code)"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  common.ErrorResponse
// @Failure      502       {object}  common.ErrorResponse
// @Router       /transcribe [post]
func (tc *TranscribeController) Transcribe(c echo.Context) error {
	fh, err := c.FormFile("audio")
	if err != nil {
		return HandleError(tc.logger, c, apperrors.ErrInvalidArgument("audio file is required"))
	}
	if fh.Size > maxAudioBytes {
		return HandleError(tc.logger, c, apperrors.ErrInvalidArgument("audio file too large"))
	}

	f, err := fh.Open()
	if err != nil {
		return HandleError(tc.logger, c, apperrors.ErrInternal(err))
	}
	defer f.Close()

	audio, err := io.ReadAll(io.LimitReader(f, maxAudioBytes))
	if err != nil {
		return HandleError(tc.logger, c, apperrors.ErrInternal(err))
	}

	language := c.FormValue("language")

	text, err := tc.transcriber.Transcribe(c.Request().Context(), audio, fh.Filename, language)
	if err != nil {
		return HandleError(tc.logger, c, err)
	}

	return HandleSuccess(tc.logger, c, http.StatusOK, map[string]interface{}{
		"backend":  tc.transcriber.Name(),
		"filename": fh.Filename,
		"text":     text,
	})
}
