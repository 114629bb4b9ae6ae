package services

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"clientdesk/internal/models"
)

type EmailService interface {
	SendTaskReminder(email string, task models.Task) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendTaskReminder(email string, task models.Task) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Reminder: %s", task.Title))

	due := "no due date"
	if task.DueDate != nil {
		due = task.DueDate.Format(time.RFC1123)
	}
	body := fmt.Sprintf(`
		<h3>Task reminder</h3>
		<p><strong>%s</strong></p>
		<p>%s</p>
		<p>Priority: %s &middot; Due: %s</p>
	`, task.Title, task.Description, task.Priority, due)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send task reminder: %w", err)
	}
	return nil
}
