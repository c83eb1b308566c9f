package http

import (
	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Auth    *service.AuthService
	Tasks   *service.TaskService
	DB      handlers.Pinger
	Config  *config.Config
	Version string
}

// NewRouter builds the gin engine with the global middleware chain.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics(), middleware.CORS(d.Config.CORSOrigins))
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	h := handlers.NewHandler(d.Auth, d.Tasks, d.Config.Production())
	healthHandler := handlers.NewHealthHandler(d.DB, d.Version)

	// Health checks and metrics (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// served at the root and under /api; limiter state is shared between the two
	apiRL := middleware.RedisRateLimit("api", d.Config.APIRateLimit, d.Config.APIRateWindow)
	authRL := middleware.RedisRateLimit("auth", d.Config.AuthRateLimit, d.Config.AuthRateWindow)
	taskRL := middleware.UserRateLimit(d.Config.TaskRateLimit, d.Config.TaskRateWindow)

	for _, prefix := range []string{"", "/api"} {
		g := r.Group(prefix)
		g.Use(apiRL)
		registerAPIRoutes(g, h, d.Auth, authRL, taskRL)
	}
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, verifier middleware.IdentityVerifier, authRL, taskRL gin.HandlerFunc) {
	identity := middleware.Identity(verifier)

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", authRL, h.Register)
		auth.POST("/login", authRL, h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", identity, h.Me)
	}

	api.GET("/categories", h.Categories)

	// Tasks
	tasks := api.Group("/tasks")
	tasks.Use(identity)
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", taskRL, h.CreateTask)
		tasks.GET("/:id", h.GetTask)
		tasks.PATCH("/:id", taskRL, h.UpdateTask)
		tasks.DELETE("/:id", taskRL, h.DeleteTask)
	}
}
