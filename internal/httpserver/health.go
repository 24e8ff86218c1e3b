package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"calendar-event-backend/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Calendar event backend is running"
	HomeMessage   = "Hello from Google Calendar MCP backend!"
	HealthVersion = "1.0.0"
	ServiceName   = "calendar-event-backend"
)

// home handles the root route
// @Summary Welcome
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (srv HTTPServer) home(c *gin.Context) {
	response.OK(c, gin.H{"message": HomeMessage})
}

// statusCheck handles the liveness route used by clients. It never calls the calendar provider.
// @Summary Status
// @Description Fixed liveness message; no dependency checks are performed.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is running"
// @Router /status [get]
// @Router /api/health [get]
func (srv HTTPServer) statusCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":    "ok",
		"message":   HealthMessage,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
