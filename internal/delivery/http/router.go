package http

import (
	"log/slog"
	"net/http"

	"github.com/gdugdh24/profiles-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/profiles-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	profileHandler *handler.ProfileHandler
	logger         *slog.Logger
	maxUploadBytes int64
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	logger *slog.Logger,
	maxUploadBytes int64,
) *Router {
	return &Router{
		profileHandler: profileHandler,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logging(r.logger),
	)
	if r.maxUploadBytes > 0 {
		router.MaxMultipartMemory = r.maxUploadBytes
	}

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	v1.Use(middleware.BodyLimit(r.maxUploadBytes))
	{
		profiles := v1.Group("/profiles")
		{
			profiles.POST("", r.profileHandler.CreateProfile)
			profiles.PUT("", r.profileHandler.UpdateProfile)
			profiles.GET("/:account_id", r.profileHandler.GetProfile)
			profiles.DELETE("/:account_id", r.profileHandler.DeleteProfile)
			profiles.POST("/:account_id/photos", r.profileHandler.SetPhotos)
			profiles.GET("/:account_id/photos/:index", r.profileHandler.GetPhoto)
		}
	}

	return router
}
