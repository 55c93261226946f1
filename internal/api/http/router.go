package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter собирает gin-роутер со всеми маршрутами
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))

	r.GET("/health", h.Health)
	r.GET("/version", h.Version)

	v1 := r.Group("/v1")
	{
		v1.GET("/segment", h.Ping)
		v1.POST("/segment", h.Segment)
	}

	return r
}
