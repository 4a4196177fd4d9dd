package api

import (
	"github.com/gin-gonic/gin"
)

// Configures all API routes
func (s *Server) setupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")

	// Health stays open even when access is restricted
	v1.GET("/health", s.handleHealth)

	attrs := v1.Group("/attributes")
	if !s.attrs.Unrestricted() {
		attrs.Use(s.authMiddleware())
	}
	{
		attrs.GET("", s.handleTree)
		attrs.GET("/scalaris", s.handleAttributes)
		attrs.POST("/validate", s.handleValidate)
	}
}
