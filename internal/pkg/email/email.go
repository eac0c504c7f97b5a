package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hosuracademy/academy-api/internal/app/models"
)

const (
	// implicitTLSPort is the SMTPS port; other ports use plain SMTP with
	// STARTTLS when the server offers it.
	implicitTLSPort = 465
	dialTimeout     = 10 * time.Second
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendInquiryNotification(ctx context.Context, inquiry *models.Inquiry) error
	SendInquiryAcknowledgement(ctx context.Context, inquiry *models.Inquiry) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// NotifyTo is the academy inbox that receives new inquiries.
	NotifyTo string
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
	send   func(ctx context.Context, to []string, msg []byte) error
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) *EmailServiceImpl {
	s := &EmailServiceImpl{
		config: config,
		logger: logger,
	}
	s.send = s.sendSMTP
	return s
}

// Configured reports whether SMTP credentials are present.
func (s *EmailServiceImpl) Configured() bool {
	return s.config.Host != "" && s.config.Username != "" && s.config.Password != ""
}

// SendInquiryNotification emails a new inquiry to the academy inbox with
// Reply-To set to the person who asked.
func (s *EmailServiceImpl) SendInquiryNotification(ctx context.Context, inquiry *models.Inquiry) error {
	if s.config.NotifyTo == "" || !s.Configured() {
		s.logger.Warn().
			Str("inquiryID", inquiry.ID).
			Str("fromEmail", inquiry.Email).
			Msg("SMTP not configured - inquiry notification not sent.")
		return nil
	}

	subject := fmt.Sprintf("New inquiry from %s", inquiry.Name)
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">New Website Inquiry</h2>
				<p><strong>Name:</strong> %s</p>
				<p><strong>Email:</strong> %s</p>
				<p><strong>Phone:</strong> %s</p>
				<p><strong>Course:</strong> %s</p>
				<p><strong>Grade:</strong> %s</p>
				<p><strong>Message:</strong> %s</p>
				<p><strong>Received:</strong> %s</p>
				<p><strong>Source:</strong> Website Inquiry Form</p>
			</div>
		</body>
		</html>
	`,
		html.EscapeString(inquiry.Name),
		html.EscapeString(inquiry.Email),
		html.EscapeString(inquiry.Phone),
		html.EscapeString(orDefault(inquiry.Course, "Not specified")),
		html.EscapeString(orDefault(inquiry.Grade, "Not specified")),
		html.EscapeString(orDefault(inquiry.Message, "No additional message")),
		inquiry.Timestamp.Format(time.RFC1123),
	)

	return s.sendHTMLEmail(ctx, s.config.NotifyTo, inquiry.Email, subject, body)
}

// SendInquiryAcknowledgement sends the automatic reply to the person who
// submitted an inquiry.
func (s *EmailServiceImpl) SendInquiryAcknowledgement(ctx context.Context, inquiry *models.Inquiry) error {
	if !s.Configured() {
		s.logger.Warn().
			Str("inquiryID", inquiry.ID).
			Str("toEmail", inquiry.Email).
			Msg("SMTP not configured - inquiry acknowledgement not sent.")
		return nil
	}

	subject := "We received your inquiry - Hosur Toppers Academy"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<p>Hello %s,</p>
				<p>Thank you for your interest in <strong>%s</strong>. Our team will get back to you shortly.</p>
				<p>Best regards,<br>Hosur Toppers Academy</p>
			</div>
		</body>
		</html>
	`,
		html.EscapeString(inquiry.Name),
		html.EscapeString(orDefault(inquiry.Course, "General Inquiry")),
	)

	return s.sendHTMLEmail(ctx, inquiry.Email, s.config.NotifyTo, subject, body)
}

// sendHTMLEmail sends an HTML email
func (s *EmailServiceImpl) sendHTMLEmail(ctx context.Context, toEmail, replyTo, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	headers := [][2]string{
		{"From", s.config.From},
		{"To", toEmail},
		{"Subject", subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
	}
	if replyTo != "" {
		headers = append(headers, [2]string{"Reply-To", replyTo})
	}

	var message strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&message, "%s: %s\r\n", h[0], sanitizeHeader(h[1]))
	}
	message.WriteString("\r\n")
	message.WriteString(htmlBody)

	if err := s.send(ctx, []string{toEmail}, []byte(message.String())); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return err
	}
	return nil
}

// sendSMTP delivers one message. The context deadline bounds the whole
// exchange and cancelling the context closes the connection.
func (s *EmailServiceImpl) sendSMTP(ctx context.Context, to []string, msg []byte) error {
	serverAddress := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	tlsConfig := &tls.Config{ServerName: s.config.Host}
	dialer := &net.Dialer{Timeout: dialTimeout}

	var conn net.Conn
	var err error
	if s.config.Port == implicitTLSPort {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsConfig}).DialContext(ctx, "tcp", serverAddress)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", serverAddress)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("failed to set SMTP deadline: %w", err)
		}
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if s.config.Port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err = client.StartTLS(tlsConfig); err != nil {
				return fmt.Errorf("SMTP STARTTLS failed: %w", err)
			}
		}
	}
	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}
	if err = client.Mail(s.config.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return client.Quit()
}

func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(v)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
