package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosuracademy/academy-api/internal/app/models/dto"
	"github.com/hosuracademy/academy-api/internal/app/services"
	"github.com/hosuracademy/academy-api/internal/middleware"
)

// InquiryController handles the public inquiry form
type InquiryController struct {
	inquiryService services.InquiryService
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiryService services.InquiryService) *InquiryController {
	return &InquiryController{inquiryService: inquiryService}
}

// SubmitInquiry stores an inquiry
// @Summary Submit an inquiry
// @Description Stores the inquiry as pending and emails the academy in the background.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body dto.InquiryRequest true "Inquiry"
// @Success 200 {object} models.Inquiry
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /inquiries [post]
func (c *InquiryController) SubmitInquiry(ctx *gin.Context) {
	var req dto.InquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	inquiry, err := c.inquiryService.SubmitInquiry(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, inquiry)
}

// GetAllInquiries lists inquiries
// @Summary List inquiries
// @Tags inquiries
// @Produce json
// @Success 200 {array} models.Inquiry
// @Router /inquiries [get]
func (c *InquiryController) GetAllInquiries(ctx *gin.Context) {
	inquiries, err := c.inquiryService.GetAllInquiries(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, inquiries)
}
