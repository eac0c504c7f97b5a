package models

import "time"

// Result is a published exam result sheet. Entries in Results are free form;
// the roll number of an entry is read from rollNumber, roll_no or roll_number.
type Result struct {
	ID          string                   `json:"id"`
	ExamName    string                   `json:"exam_name" example:"Unit Test 3"`
	ExamDate    string                   `json:"exam_date" example:"2024-08-15"`
	Course      string                   `json:"course" example:"NEET Preparation"`
	Batch       string                   `json:"batch" example:"2024-B"`
	Results     []map[string]interface{} `json:"results"`
	PublishedAt *time.Time               `json:"published_at,omitempty"`
}

func (r *Result) GetID() string   { return r.ID }
func (r *Result) SetID(id string) { r.ID = id }

// StudentResult is one student's entry in a published result sheet.
type StudentResult struct {
	ResultID string                 `json:"result_id"`
	ExamName string                 `json:"exam_name"`
	ExamDate string                 `json:"exam_date"`
	Course   string                 `json:"course"`
	Batch    string                 `json:"batch"`
	Entry    map[string]interface{} `json:"entry"`
}
