package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"classbook/internal/handler/api"
	"classbook/internal/handler/middleware"
	"classbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Session      *api.SessionHandler
	Booking      *api.BookingHandler
	ClassRequest *api.ClassRequestHandler
	Admin        *api.AdminHandler
	Cron         *api.CronHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Session discovery is public; booking requires an account.
		sessions := apiGroup.Group("/sessions")
		{
			addRoutes(sessions, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Session.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Session.Get},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/attend", Handler: h.Booking.ConfirmAttendance},
			})
		}

		classRequests := apiGroup.Group("/class-requests")
		classRequests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(classRequests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.ClassRequest.Submit},
				{Method: http.MethodGet, Path: "", Handler: h.ClassRequest.ListMine},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/class-requests", Handler: h.ClassRequest.List},
				{Method: http.MethodGet, Path: "/class-requests/:id", Handler: h.ClassRequest.Get},
				{Method: http.MethodPost, Path: "/class-requests/:id/approve", Handler: h.ClassRequest.Approve},
				{Method: http.MethodPost, Path: "/class-requests/:id/reject", Handler: h.ClassRequest.Reject},
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodPut, Path: "/users/:id", Handler: h.Admin.UpdateProfile},
				{Method: http.MethodPut, Path: "/users/:id/role", Handler: h.Admin.SetRole},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: h.Admin.DeleteUser},
			})
		}

		// Guarded by the cron secret instead of user auth. Platform schedulers
		// issue GET; POST stays registered for manual triggering.
		apiGroup.GET("/cron/reminders", h.Cron.DispatchReminders)
		apiGroup.POST("/cron/reminders", h.Cron.DispatchReminders)
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
