package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                  *config.Config
	runController        *RunController
	transcribeController *TranscribeController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, runController *RunController, transcribeController *TranscribeController) *Router {
	return &Router{
		cfg:                  cfg,
		runController:        runController,
		transcribeController: transcribeController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/healthz", rt.healthCheck)

	v1 := e.Group("/v1")

	rt.setupRunRoutes(v1)
	rt.setupTranscribeRoutes(v1)
}

func (rt *Router) setupRunRoutes(g *echo.Group) {
	runGroup := g.Group("/runs")

	runGroup.POST("", rt.runController.CreateRun)
	runGroup.GET("/:id", rt.runController.GetRun)
	runGroup.GET("/:id/export.csv", rt.runController.ExportCSV)
	runGroup.POST("/:id/push", rt.runController.PushRun)
}

func (rt *Router) setupTranscribeRoutes(g *echo.Group) {
	g.POST("/transcribe", rt.transcribeController.Transcribe)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
