package dto

import "github.com/hosuracademy/academy-api/internal/app/models"

// InquiryRequest is the body of an inquiry submission.
type InquiryRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Course  string `json:"course" binding:"required"`
	Grade   string `json:"grade"`
	Message string `json:"message"`
}

// ToModel converts the request to an inquiry document.
func (r *InquiryRequest) ToModel() *models.Inquiry {
	return &models.Inquiry{
		ID:      r.ID,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Course:  r.Course,
		Grade:   r.Grade,
		Message: r.Message,
	}
}
