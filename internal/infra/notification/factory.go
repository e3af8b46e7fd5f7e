package notification

import "log/slog"

// NewClient picks MailerSend when an API key is configured and falls back to
// LogClient otherwise.
func NewClient(config MailerSendConfig) NotificationClient {
	if config.APIKey == "" {
		slog.Warn("mailersend api key not configured, notifications will only be logged")
		return NewLogClient()
	}
	return NewMailerSendClient(config)
}
