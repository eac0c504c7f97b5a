package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hosuracademy/academy-api/internal/app/models/dto"
	"github.com/hosuracademy/academy-api/internal/docstore"
	"github.com/hosuracademy/academy-api/internal/pkg/logger"
)

const healthCheckTimeout = 3 * time.Second

// SystemController serves the welcome and health endpoints.
type SystemController struct {
	store  docstore.Store
	driver string
}

// NewSystemController creates a new SystemController
func NewSystemController(store docstore.Store, driver string) *SystemController {
	return &SystemController{store: store, driver: driver}
}

// Welcome is the root endpoint
// @Summary Welcome message
// @Tags system
// @Produce json
// @Success 200 {object} dto.WelcomeResponse
// @Router / [get]
func (c *SystemController) Welcome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.WelcomeResponse{Message: "Welcome to the Hosur Academy API"})
}

// Health pings the document store
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.StructuredResponse{data=dto.HealthData}
// @Failure 503 {object} dto.StructuredResponse "Store unreachable"
// @Router /health [get]
func (c *SystemController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := c.store.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Str("store", c.driver).Msg("Health check failed")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Document store unreachable")
		ctx.JSON(http.StatusServiceUnavailable, dto.NewStructuredErrorResponse(detail, "unhealthy"))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(dto.HealthData{Status: "ok", Store: c.driver}, "healthy"))
}
