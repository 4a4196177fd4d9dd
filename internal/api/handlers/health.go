package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse reports liveness and which node the server publishes for.
// It never includes the user list.
type HealthResponse struct {
	Status     string    `json:"status"`
	Node       string    `json:"node"`
	Restricted bool      `json:"restricted"`
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Uptime     string    `json:"uptime"`
}

// HandleHealth answers without authentication so liveness checks work
// against servers that restrict the attribute routes.
func HandleHealth(version string, startTime time.Time, node string, restricted bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:     "healthy",
			Node:       node,
			Restricted: restricted,
			Timestamp:  time.Now(),
			Version:    version,
			Uptime:     time.Since(startTime).Round(time.Second).String(),
		})
	}
}
