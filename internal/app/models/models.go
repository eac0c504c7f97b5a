// Package models holds the documents stored by the academy API.
package models

// Collection names in the document store.
const (
	CollectionStudents  = "students"
	CollectionUsers     = "users"
	CollectionCourses   = "courses"
	CollectionResults   = "results"
	CollectionInquiries = "inquiries"
	CollectionGallery   = "gallery"
	CollectionToppers   = "toppers"
)

// Entity is implemented by every stored document type.
type Entity interface {
	GetID() string
	SetID(id string)
}
