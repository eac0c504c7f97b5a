package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosuracademy/academy-api/internal/app/models/dto"
	"github.com/hosuracademy/academy-api/internal/app/services"
	"github.com/hosuracademy/academy-api/internal/middleware"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
)

// ResultController handles exam result operations
type ResultController struct {
	resultService services.ResultService
}

// NewResultController creates a new ResultController
func NewResultController(resultService services.ResultService) *ResultController {
	return &ResultController{resultService: resultService}
}

// PublishResult stores a result sheet
// @Summary Publish a result sheet
// @Description Entries in results are free form. An entry is matched to a student through its rollNumber, roll_no or roll_number field.
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ResultRequest true "Result sheet"
// @Success 200 {object} models.Result
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Router /results [post]
func (c *ResultController) PublishResult(ctx *gin.Context) {
	var req dto.ResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	result, err := c.resultService.PublishResult(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetAllResults lists result sheets
// @Summary List result sheets
// @Tags results
// @Produce json
// @Success 200 {array} models.Result
// @Router /results [get]
func (c *ResultController) GetAllResults(ctx *gin.Context) {
	results, err := c.resultService.GetAllResults(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetResultByID retrieves a result sheet
// @Summary Get a result sheet
// @Tags results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} models.Result
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /results/{id} [get]
func (c *ResultController) GetResultByID(ctx *gin.Context) {
	result, err := c.resultService.GetResultByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetMyResults returns the caller's entries across all result sheets
// @Summary Get my results
// @Tags results
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.StudentResult
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /results/me [get]
func (c *ResultController) GetMyResults(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	rollNumber := ""
	if user.RollNumber != nil {
		rollNumber = *user.RollNumber
	}
	results, err := c.resultService.GetResultsForRollNumber(ctx.Request.Context(), rollNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}
