package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barberflow/internal/domain/staff"
	"barberflow/internal/handler/api"
	"barberflow/internal/handler/middleware"
	"barberflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	gatherer prometheus.Gatherer,
	wizardHandler *api.WizardHandler,
	calendarHandler *api.CalendarHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, gatherer, wizardHandler, calendarHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	gatherer prometheus.Gatherer,
	wizardHandler *api.WizardHandler,
	calendarHandler *api.CalendarHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		wizard := apiGroup.Group("/wizard")
		{
			addRoutes(wizard, []route{
				{Method: http.MethodPost, Path: "", Handler: wizardHandler.Start},
				{Method: http.MethodGet, Path: "", Handler: wizardHandler.Resume},
				{Method: http.MethodGet, Path: "/:id", Handler: wizardHandler.Get},
				{Method: http.MethodPost, Path: "/:id/service", Handler: wizardHandler.SelectService},
				{Method: http.MethodPost, Path: "/:id/barber", Handler: wizardHandler.SelectBarber},
				{Method: http.MethodPost, Path: "/:id/month", Handler: wizardHandler.ChangeMonth},
				{Method: http.MethodPost, Path: "/:id/date", Handler: wizardHandler.SelectDate},
				{Method: http.MethodPost, Path: "/:id/time", Handler: wizardHandler.SelectTime},
				{Method: http.MethodPost, Path: "/:id/step", Handler: wizardHandler.GoToStep},
				{Method: http.MethodPost, Path: "/:id/next", Handler: wizardHandler.Next},
				{Method: http.MethodPost, Path: "/:id/lookup", Handler: wizardHandler.LookupClient},
				{Method: http.MethodPost, Path: "/:id/contact", Handler: wizardHandler.ConfirmContact},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: wizardHandler.Submit},
			})
		}

		calendar := apiGroup.Group("/admin/calendar")
		calendar.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(staff.RoleBarber))
		{
			desk := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleReception)}
			addRoutes(calendar, []route{
				{Method: http.MethodPost, Path: "", Handler: calendarHandler.Open},
				{Method: http.MethodGet, Path: "/:id", Handler: calendarHandler.Get},
				{Method: http.MethodPut, Path: "/:id/range", Handler: calendarHandler.SetRange},
				{Method: http.MethodPut, Path: "/:id/filter", Handler: calendarHandler.SetFilter},
				{Method: http.MethodPut, Path: "/:id/viewport", Handler: calendarHandler.SetViewport},
				{Method: http.MethodPost, Path: "/:id/date-click", Handler: calendarHandler.DateClick},
				{Method: http.MethodGet, Path: "/:id/events/:eventId", Handler: calendarHandler.EventDetails},
				{Method: http.MethodPatch, Path: "/:id/events/:eventId/move", Handler: calendarHandler.Move, Mw: desk},
				{Method: http.MethodPatch, Path: "/:id/events/:eventId/resize", Handler: calendarHandler.Resize, Mw: desk},
				{Method: http.MethodPost, Path: "/:id/events/:eventId/status", Handler: calendarHandler.ChangeStatus, Mw: desk},
				{Method: http.MethodPut, Path: "/:id/events/:eventId", Handler: calendarHandler.EditBooking, Mw: desk},
				{Method: http.MethodDelete, Path: "/:id/events/:eventId", Handler: calendarHandler.Delete, Mw: desk},
				{Method: http.MethodPost, Path: "/:id/bookings", Handler: calendarHandler.CreateBooking, Mw: desk},
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
