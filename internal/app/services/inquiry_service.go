package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/app/repositories"
	"github.com/hosuracademy/academy-api/internal/pkg/email"
	"github.com/hosuracademy/academy-api/internal/pkg/helpers"
)

// notificationTimeout bounds the background emails sent for one inquiry.
const notificationTimeout = 30 * time.Second

// InquiryService defines the interface for inquiry operations
type InquiryService interface {
	SubmitInquiry(ctx context.Context, inquiry *models.Inquiry) (*models.Inquiry, error)
	GetAllInquiries(ctx context.Context) ([]*models.Inquiry, error)
}

type inquiryServiceImpl struct {
	inquiryRepo *repositories.InquiryRepository
	mailer      email.EmailService
	logger      zerolog.Logger
}

// NewInquiryService creates a new inquiry service instance. mailer may be nil.
func NewInquiryService(inquiryRepo *repositories.InquiryRepository, mailer email.EmailService, logger zerolog.Logger) InquiryService {
	return &inquiryServiceImpl{
		inquiryRepo: inquiryRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

// SubmitInquiry stores an inquiry as pending and notifies the academy in
// the background. Email failures never fail the submission.
func (s *inquiryServiceImpl) SubmitInquiry(ctx context.Context, inquiry *models.Inquiry) (*models.Inquiry, error) {
	inquiry.ID = strings.TrimSpace(inquiry.ID)
	inquiry.Timestamp = helpers.NowUTC()
	inquiry.Status = models.InquiryStatusPending

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("error creating inquiry: %w", err)
	}

	if s.mailer != nil {
		sent := *inquiry
		go s.notify(&sent)
	}
	return inquiry, nil
}

func (s *inquiryServiceImpl) GetAllInquiries(ctx context.Context) ([]*models.Inquiry, error) {
	inquiries, err := s.inquiryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing inquiries: %w", err)
	}
	return inquiries, nil
}

func (s *inquiryServiceImpl) notify(inquiry *models.Inquiry) {
	ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
	defer cancel()

	if err := s.mailer.SendInquiryNotification(ctx, inquiry); err != nil {
		s.logger.Warn().Err(err).Str("inquiryID", inquiry.ID).Msg("Inquiry notification email failed")
	}
	if err := s.mailer.SendInquiryAcknowledgement(ctx, inquiry); err != nil {
		s.logger.Warn().Err(err).Str("inquiryID", inquiry.ID).Msg("Inquiry acknowledgement email failed")
	}
}
