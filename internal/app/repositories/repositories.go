package repositories

import (
	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/docstore"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
)

// Course, result, inquiry and catalog repositories need nothing beyond the
// generic document operations.
type (
	CourseRepository  = DocumentRepository[models.Course, *models.Course]
	ResultRepository  = DocumentRepository[models.Result, *models.Result]
	InquiryRepository = DocumentRepository[models.Inquiry, *models.Inquiry]
	GalleryRepository = DocumentRepository[models.GalleryItem, *models.GalleryItem]
	TopperRepository  = DocumentRepository[models.Topper, *models.Topper]
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	UserRepository    *UserRepository
	CourseRepository  *CourseRepository
	ResultRepository  *ResultRepository
	InquiryRepository *InquiryRepository
	GalleryRepository *GalleryRepository
	TopperRepository  *TopperRepository
}

// NewRepositories initializes all repositories over one document store.
func NewRepositories(store docstore.Store, maxList int) *Repositories {
	users := NewUserRepository(store, maxList)
	return &Repositories{
		StudentRepository: NewStudentRepository(store, maxList, users),
		UserRepository:    users,
		CourseRepository: NewDocumentRepository[models.Course, *models.Course](
			store, models.CollectionCourses, maxList, apperrors.ErrCourseNotFound),
		ResultRepository: NewDocumentRepository[models.Result, *models.Result](
			store, models.CollectionResults, maxList, apperrors.ErrResultNotFound),
		InquiryRepository: NewDocumentRepository[models.Inquiry, *models.Inquiry](
			store, models.CollectionInquiries, maxList, apperrors.ErrInquiryNotFound),
		GalleryRepository: NewDocumentRepository[models.GalleryItem, *models.GalleryItem](
			store, models.CollectionGallery, maxList, apperrors.ErrGalleryNotFound),
		TopperRepository: NewDocumentRepository[models.Topper, *models.Topper](
			store, models.CollectionToppers, maxList, apperrors.ErrTopperNotFound),
	}
}
