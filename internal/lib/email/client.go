// Package email sends transactional email through Resend.
//
// Bodies are rendered from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/deppfellow/employee-service/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// DefaultSender is used when notifications.sender is empty.
const DefaultSender = "Employee Service <onboarding@resend.dev>"

// sender is the part of the Resend API the client needs.
type sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Client struct {
	emails sender
	from   string
	logger *zerolog.Logger
}

// NewClient creates a Resend-backed client from the notifications config.
func NewClient(cfg config.NotificationsConfig, logger *zerolog.Logger) *Client {
	return newClient(resend.NewClient(cfg.ResendAPIKey).Emails, cfg.Sender, logger)
}

func newClient(emails sender, from string, logger *zerolog.Logger) *Client {
	if from == "" {
		from = DefaultSender
	}
	return &Client{emails: emails, from: from, logger: logger}
}

// Render executes the named template with data.
func Render(templateName Template, data map[string]string) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, string(templateName)+".html", data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}

// SendEmail renders templateName with data and sends it to a single recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	resp, err := c.emails.Send(&resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if resp != nil {
		c.logger.Debug().Str("email_id", resp.Id).Str("template", string(templateName)).Msg("email sent")
	}
	return nil
}
