package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Config holds application configuration
type Config struct {
	Port        string
	MaxFileSize int64
	TempDir     string
}

func SetupRoutes(r *gin.Engine, config *Config) {
	apiGroup := r.Group("/api/pdf")
	{
		apiGroup.POST("/upload", func(c *gin.Context) { HandleUpload(c, config) })
		apiGroup.POST("/cat", func(c *gin.Context) { HandleCat(c, config) })
		apiGroup.POST("/rotate", func(c *gin.Context) { HandleRotate(c, config) })
		apiGroup.POST("/shuffle", func(c *gin.Context) { HandleShuffle(c, config) })
		apiGroup.POST("/burst", func(c *gin.Context) { HandleBurst(c, config) })
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "pdf_toolkit",
		})
	})
}
