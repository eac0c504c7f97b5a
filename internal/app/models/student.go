package models

// Student is the canonical record in the students collection. Email is the
// login key and DateOfBirth (YYYY-MM-DD) is the student's password.
type Student struct {
	ID          string `json:"id" example:"7d0c1f6e-2a4b-4c1e-9f59-2b1b8f0e3a11"`
	Name        string `json:"name" example:"Asha Raman"`
	RollNo      string `json:"roll_no" example:"HA2024001"`
	Course      string `json:"course" example:"JEE Main & Advanced"`
	Batch       string `json:"batch" example:"2024-A"`
	Email       string `json:"email" example:"asha@example.com"`
	Phone       string `json:"phone" example:"+91 98765 43210"`
	DateOfBirth string `json:"date_of_birth,omitempty" example:"2008-05-01"`
}

func (s *Student) GetID() string   { return s.ID }
func (s *Student) SetID(id string) { s.ID = id }
