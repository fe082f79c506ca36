package infrastructure

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Konete326/elitedev/internal/domain"
)

// ContactNotifier forwards contact-form submissions by email. It stays
// disabled unless both an API key and a recipient are configured; the stored
// message is the source of truth either way.
type ContactNotifier struct {
	apiKey    string
	recipient string
}

func NewContactNotifier(apiKey, recipient string) *ContactNotifier {
	return &ContactNotifier{
		apiKey:    apiKey,
		recipient: recipient,
	}
}

func (n *ContactNotifier) Enabled() bool {
	return n.apiKey != "" && n.recipient != ""
}

func (n *ContactNotifier) Notify(_ context.Context, msg *domain.ContactMessage) error {
	if !n.Enabled() {
		return nil
	}

	from := mail.NewEmail("Portfolio contact form", n.recipient)
	to := mail.NewEmail("", n.recipient)
	plainText := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	htmlContent := fmt.Sprintf("<p>From: %s &lt;%s&gt;</p><p>%s</p>", msg.Name, msg.Email, msg.Message)

	m := mail.NewSingleEmail(from, msg.Subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(m)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: unexpected status %d", response.StatusCode)
	}
	return nil
}
