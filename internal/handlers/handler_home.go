package handlers

import (
	"github.com/gin-gonic/gin"
)

func registerHomeRoutes(r *gin.Engine) {
	r.GET("/health", healthCheck)
}

func healthCheck(c *gin.Context) {
	respondOK(c, gin.H{"status": "ok"})
}
