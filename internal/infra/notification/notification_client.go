package notification

import (
	"context"
)

//go:generate mockgen -source=notification_client.go -destination=../../../test/unit/doubles/infra/notification/notification_client_mock.go -package=notification -mock_names=NotificationClient=MockNotificationClient

// NotificationClient delivers messages to item owners.
type NotificationClient interface {
	SendEmail(ctx context.Context, request EmailRequest) error
}

type EmailRequest struct {
	To      string
	Subject string
	Body    string
	HTML    string
}

// NotificationError represents an error that occurred during notification sending
type NotificationError struct {
	Message string
	Err     error
}

func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
