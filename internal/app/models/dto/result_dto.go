package dto

import "github.com/hosuracademy/academy-api/internal/app/models"

// ResultRequest is the body of a result publish call.
type ResultRequest struct {
	ID       string                   `json:"id"`
	ExamName string                   `json:"exam_name" binding:"required"`
	ExamDate string                   `json:"exam_date" binding:"required"`
	Course   string                   `json:"course" binding:"required"`
	Batch    string                   `json:"batch" binding:"required"`
	Results  []map[string]interface{} `json:"results"`
}

// ToModel converts the request to a result document.
func (r *ResultRequest) ToModel() *models.Result {
	results := r.Results
	if results == nil {
		results = []map[string]interface{}{}
	}
	return &models.Result{
		ID:       r.ID,
		ExamName: r.ExamName,
		ExamDate: r.ExamDate,
		Course:   r.Course,
		Batch:    r.Batch,
		Results:  results,
	}
}
