package notification

import (
	"context"
	"log/slog"
)

var _ NotificationClient = (*LogClient)(nil)

// LogClient writes notifications to the log instead of delivering them. It is
// used when no mail provider is configured.
type LogClient struct{}

func NewLogClient() *LogClient {
	return &LogClient{}
}

func (c *LogClient) SendEmail(ctx context.Context, request EmailRequest) error {
	slog.InfoContext(ctx, "email notification",
		slog.String("to", request.To),
		slog.String("subject", request.Subject),
		slog.Int("body_length", len(request.Body)),
	)
	return nil
}
