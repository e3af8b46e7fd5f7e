package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
)

const _maxSendAttempts = 3

var _ NotificationClient = (*MailerSendClient)(nil)

// MailerSendClient implements NotificationClient using MailerSend API
type MailerSendClient struct {
	client    *mailersend.Mailersend
	fromEmail string
	fromName  string
	backoff   time.Duration
}

type MailerSendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

func NewMailerSendClient(config MailerSendConfig) *MailerSendClient {
	return &MailerSendClient{
		client:    mailersend.NewMailersend(config.APIKey),
		fromEmail: config.FromEmail,
		fromName:  config.FromName,
		backoff:   time.Second,
	}
}

func (c *MailerSendClient) SendEmail(ctx context.Context, request EmailRequest) error {
	if request.To == "" {
		return &NotificationError{Message: "email recipient is required"}
	}

	message := c.client.Email.NewMessage()

	message.SetFrom(mailersend.From{
		Email: c.fromEmail,
		Name:  c.fromName,
	})
	message.SetRecipients([]mailersend.Recipient{
		{
			Email: request.To,
		},
	})
	message.SetSubject(request.Subject)
	message.SetText(request.Body)
	if request.HTML != "" {
		message.SetHTML(request.HTML)
	}

	return c.sendWithRetry(ctx, message)
}

// sendWithRetry waits attempt*backoff between tries and gives up early when
// ctx is done.
func (c *MailerSendClient) sendWithRetry(ctx context.Context, message *mailersend.Message) error {
	var lastErr error

	for attempt := 1; attempt <= _maxSendAttempts; attempt++ {
		_, err := c.client.Email.Send(ctx, message)
		if err == nil {
			return nil
		}

		lastErr = &NotificationError{
			Message: fmt.Sprintf("MailerSend API error (attempt %d/%d)", attempt, _maxSendAttempts),
			Err:     err,
		}

		if attempt == _maxSendAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return &NotificationError{Message: "sending email cancelled", Err: ctx.Err()}
		case <-time.After(time.Duration(attempt) * c.backoff):
		}
	}

	return lastErr
}
