package models

import "time"

// InquiryStatusPending is the status of every newly submitted inquiry.
const InquiryStatusPending = "pending"

// Inquiry is an admission enquiry submitted from the public site.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" example:"Ravi Kumar"`
	Email     string    `json:"email" example:"ravi@example.com"`
	Phone     string    `json:"phone" example:"+91 90000 00000"`
	Course    string    `json:"course" example:"Foundation Course"`
	Grade     string    `json:"grade" example:"9th"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status" example:"pending"`
}

func (i *Inquiry) GetID() string   { return i.ID }
func (i *Inquiry) SetID(id string) { i.ID = id }
