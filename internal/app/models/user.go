package models

// RoleType defines the caller's role.
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleStudent RoleType = "student"
)

// UserRecord is the login projection kept in the users collection. Records
// mirrored from students share the student's id and set StudentID.
type UserRecord struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Role        RoleType `json:"role"`
	RollNumber  string   `json:"roll_number,omitempty"`
	Name        string   `json:"name,omitempty"`
	DateOfBirth string   `json:"date_of_birth,omitempty"`
	StudentID   string   `json:"student_id,omitempty"`
}

func (u *UserRecord) GetID() string   { return u.ID }
func (u *UserRecord) SetID(id string) { u.ID = id }

// UserRecordFromStudent builds the users projection of a student.
func UserRecordFromStudent(s *Student) *UserRecord {
	return &UserRecord{
		ID:          s.ID,
		Email:       s.Email,
		Role:        RoleStudent,
		RollNumber:  s.RollNo,
		Name:        s.Name,
		DateOfBirth: s.DateOfBirth,
		StudentID:   s.ID,
	}
}

// User is the identity resolved from a bearer token. It is never stored.
type User struct {
	ID         string   `json:"-"`
	Source     string   `json:"-"`
	Email      string   `json:"email" example:"asha@example.com"`
	Role       RoleType `json:"role" example:"student"`
	RollNumber *string  `json:"roll_number" example:"HA2024001"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
