package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"aaru/internal/handler"
	"aaru/internal/snapshot"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	trackerHandler *handler.TrackerHandler,
	wisdomHandler *handler.WisdomHandler,
	snapshots snapshot.Store,
	jwtSecret string,
	logger *zap.Logger,
) *Router {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(TraceMiddleware())
	r.Use(RequestLogMiddleware(logger))

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/readyz", func(c *gin.Context) {
		// A snapshot probe covers whichever backend is configured.
		if _, err := snapshots.Get(c.Request.Context(), snapshot.Settings); err != nil && err != snapshot.ErrNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "storage_not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/login", authHandler.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.GET("/pillars", trackerHandler.ListPillars)
		auth.POST("/pillars", trackerHandler.CreatePillar)
		auth.GET("/pillars/:id", trackerHandler.GetPillar)
		auth.DELETE("/pillars/:id", trackerHandler.DeletePillar)

		auth.GET("/goals", trackerHandler.ListGoals)
		auth.POST("/goals", trackerHandler.CreateGoal)
		auth.DELETE("/goals/:id", trackerHandler.DeleteGoal)
		auth.GET("/goals/:id/growth", trackerHandler.GetGrowth)

		auth.GET("/habits", trackerHandler.ListHabits)
		auth.POST("/habits", trackerHandler.CreateHabit)
		auth.DELETE("/habits/:id", trackerHandler.DeleteHabit)
		auth.POST("/habits/:id/toggle", trackerHandler.ToggleHabit)

		auth.GET("/settings", trackerHandler.GetSettings)
		auth.PUT("/settings", trackerHandler.UpdateSettings)

		auth.GET("/calendar", trackerHandler.GetCalendar)
		auth.GET("/wisdom", wisdomHandler.GetDaily)

		auth.POST("/reset", trackerHandler.Reset)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
