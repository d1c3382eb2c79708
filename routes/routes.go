package routes

import (
	"net/http"
	"strings"
	"time"

	"bandhan/config"
	"bandhan/handlers"
	"bandhan/middleware"
	"bandhan/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup assembles the full router: CORS, rate limiting, the public auth
// routes, the protected API and the websocket endpoint.
func Setup(h *handlers.Handler, hub *ws.Hub, limiter *middleware.ClientLimiter, cfg config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded profile photos are served straight from disk.
	router.Static("/uploads", cfg.UploadDir)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
			"ws":     "WebSocket available at /ws",
		})
	})

	router.GET("/ws", func(c *gin.Context) {
		ws.Handler(hub, h.Tokens)(c.Writer, c.Request)
	})

	api := router.Group("/api")
	api.Use(middleware.RateLimit(limiter))

	// Public routes
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(h.Tokens))

	protected.GET("/user/profile", h.GetProfile)
	protected.PUT("/user/profile", h.UpdateProfile)
	protected.POST("/user/preferences", h.UpdatePreferences)
	protected.POST("/user/upload-photo", h.UploadPhoto)

	protected.GET("/match/find", h.FindMatches)

	protected.POST("/chat/send", h.SendMessage)
	protected.GET("/chat/history/:receiverId", h.GetHistory)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
