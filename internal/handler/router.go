package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartbox-gateway/internal/handler/api"
	"smartbox-gateway/internal/handler/middleware"
	"smartbox-gateway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, attemptHandler *api.AttemptHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, attemptHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, attemptHandler *api.AttemptHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api/v1")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		attempts := apiGroup.Group("/attempts")
		{
			addRoutes(attempts, []route{
				{Method: http.MethodPost, Path: "", Handler: attemptHandler.Start},
				{Method: http.MethodGet, Path: "/current", Handler: attemptHandler.Current},
				{Method: http.MethodPost, Path: "/confirm", Handler: attemptHandler.Confirm},
				{Method: http.MethodPost, Path: "/notes", Handler: attemptHandler.SubmitNotes},
				{Method: http.MethodPost, Path: "/cancel", Handler: attemptHandler.Cancel},
				{Method: http.MethodPost, Path: "/reset", Handler: attemptHandler.Reset},
			})
		}

		boxes := apiGroup.Group("/boxes")
		{
			addRoutes(boxes, []route{
				{Method: http.MethodGet, Path: "/:id/attempts", Handler: attemptHandler.History},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
