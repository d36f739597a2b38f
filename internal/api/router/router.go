package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/L4U04/salvaluno/config"
	"github.com/L4U04/salvaluno/internal/api/handler"
	"github.com/L4U04/salvaluno/internal/api/middleware"
	"github.com/L4U04/salvaluno/pkg/jwt"
	"github.com/L4U04/salvaluno/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB; .ics uploads stay well under this

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// public routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Register)
			auth.POST("/login", middleware.RateLimit(rdb, 20, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}
		v1.GET("/universities", h.University.List)

		// authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			users := authorized.Group("/users")
			{
				users.GET("/me", h.User.GetProfile)
				users.PUT("/me", h.User.UpdateProfile)
			}

			classes := authorized.Group("/classes")
			{
				classes.GET("", h.Class.List)
				classes.POST("", h.Class.Create)
				classes.GET("/grid", h.Class.GetGrid)
				classes.GET("/next", h.Class.GetNextClass)
				classes.POST("/import", h.Class.Import)
				classes.GET("/export", h.Class.Export)
				classes.PUT("/:id", h.Class.Update)
				classes.DELETE("/:id", h.Class.Delete)
			}

			bus := authorized.Group("/bus")
			{
				bus.GET("/next", h.Bus.GetNextBus)
				bus.GET("/routes", h.Bus.GetRoutes)
			}

			reminders := authorized.Group("/reminders")
			{
				reminders.GET("", h.Reminder.List)
				reminders.POST("", h.Reminder.Create)
				reminders.PUT("/:id", h.Reminder.Update)
				reminders.DELETE("/:id", h.Reminder.Delete)
			}

			feedback := authorized.Group("/feedback")
			{
				feedback.GET("", h.Feedback.ListMine)
				feedback.POST("", h.Feedback.Create)
			}
		}
	}

	return r
}
