package dto

import "github.com/hosuracademy/academy-api/internal/app/models"

// StudentRequest is the body of student create and update calls. The id is
// optional; a blank id is replaced by a generated one on create and by the
// path id on update.
type StudentRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	RollNo      string `json:"roll_no" binding:"required"`
	Course      string `json:"course" binding:"required"`
	Batch       string `json:"batch" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
}

// ToModel converts the request to a student document.
func (r *StudentRequest) ToModel() *models.Student {
	return &models.Student{
		ID:          r.ID,
		Name:        r.Name,
		RollNo:      r.RollNo,
		Course:      r.Course,
		Batch:       r.Batch,
		Email:       r.Email,
		Phone:       r.Phone,
		DateOfBirth: r.DateOfBirth,
	}
}
