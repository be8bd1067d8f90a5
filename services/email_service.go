package services

import (
	"fmt"

	"blogspace-api/config"

	"gopkg.in/gomail.v2"
)

// EmailService sends comment notifications to post authors. With no SMTP
// host configured it becomes a no-op, which is how the tests run.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{config: cfg}
	if cfg.SMTPHost != "" {
		service.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return service
}

func (es *EmailService) Enabled() bool {
	return es.dialer != nil
}

// SendCommentNotification tells an author someone commented on their post.
// Failures are returned for logging only; they never fail the request.
func (es *EmailService) SendCommentNotification(authorEmail, authorName, postTitle, commenter string) error {
	if es.dialer == nil {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", authorEmail)
	m.SetHeader("Subject", fmt.Sprintf("New comment on \"%s\"", postTitle))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\n%s left a new comment on your post \"%s\".\n\n— %s",
		authorName, commenter, postTitle, es.config.FromName,
	))

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send comment notification: %w", err)
	}
	return nil
}
