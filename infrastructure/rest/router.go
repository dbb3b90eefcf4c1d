package rest

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

func NewRouter(log *slog.Logger, handler *MessageHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.POST("/", handler.Submit)
	r.GET("/", handler.List)
	r.GET("/health", handler.Health)
	return r
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
