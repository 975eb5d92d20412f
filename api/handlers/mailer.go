package handlers

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	templates "github.com/teckion/dealership-api/templates/html"
)

// Mailer sends transactional email. Delivery is always best effort; callers
// log and move on when a send fails.
type Mailer interface {
	Send(toName, toEmail, subject, body string) error
}

// SendgridMailer sends branded email through sendgrid
type SendgridMailer struct {
	SenderName  string
	SenderEmail string
}

// NewSendgridMailer returns a mailer using the configured sender identity
func NewSendgridMailer(senderEmail string) *SendgridMailer {
	if senderEmail == "" {
		senderEmail = "no-reply@teckion-motors.com"
	}
	return &SendgridMailer{SenderName: "Teckion Motors", SenderEmail: senderEmail}
}

// Send wraps the body in the generic branded template and dispatches it
func (s *SendgridMailer) Send(toName, toEmail, subject, body string) error {
	if toEmail == "" {
		return fmt.Errorf("missing recipient email")
	}

	from := mail.NewEmail(s.SenderName, s.SenderEmail)
	to := mail.NewEmail(toName, toEmail)
	htmlContent := templates.RenderGenericEmail(subject, body)
	message := mail.NewSingleEmail(from, subject, to, body, htmlContent)

	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
		return fmt.Errorf("sendgrid status %d", response.StatusCode)
	}
	return nil
}
