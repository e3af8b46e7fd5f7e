package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"tagback-server/cmd/config"
	checklistUsecases "tagback-server/internal/checklist/usecases"
	"tagback-server/internal/infra/async"
	"tagback-server/internal/infra/notification"
	tagsUsecases "tagback-server/internal/tags/usecases"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	_metricKeyNotifications = "notifications"

	_statusSent    = "sent"
	_statusFailed  = "failed"
	_statusSkipped = "skipped"
)

func NewNotificationWorker(
	cfg config.PublicConfig,
	notificationClient notification.NotificationClient,
	broker async.InternalBroker,
) *NotificationWorker {
	return &NotificationWorker{
		baseURL:            cfg.BaseURL,
		notificationClient: notificationClient,
		broker:             broker,
		metricCounters:     make(map[string]metric.Float64Counter),
	}
}

var _ async.Worker = &NotificationWorker{}

// NotificationWorker emails owners about scans and checklist submissions
// queued by Notifier.
type NotificationWorker struct {
	baseURL            string
	notificationClient notification.NotificationClient
	broker             async.InternalBroker
	metricCounters     map[string]metric.Float64Counter
}

func (w *NotificationWorker) Run(ctx context.Context, done func()) {
	slog.Debug("notification worker run with context initialized")
	defer done()

	if err := w.initializeMetrics(); err != nil {
		slog.Error("initializing metrics", slog.String("error", err.Error()))
		return
	}

	subscription, err := w.broker.Subscribe(NotificationsTopic)
	if err != nil {
		slog.Error("subscribing to notifications topic", slog.String("error", err.Error()))
		return
	}
	defer w.broker.Unsubscribe(NotificationsTopic, subscription)

	w.processMessages(ctx, subscription)
}

func (w *NotificationWorker) Shutdown() {
	slog.Debug("notification worker shutdown")
}

func (w *NotificationWorker) processMessages(ctx context.Context, subscription async.Subscription) {
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			slog.Debug("notification worker context done, waiting for pending emails")
			wg.Wait()
			return
		case <-subscription.Done:
			wg.Wait()
			return
		case msg := <-subscription.Receiver:
			wg.Add(1)
			go w.processMessage(ctx, msg, wg.Done)
		}
	}
}

func (w *NotificationWorker) processMessage(ctx context.Context, message async.BrokerMessage, done func()) {
	ctx, span := otel.Tracer("notification-worker").Start(ctx, "process-owner-notification")
	defer span.End()
	defer done()

	span.SetAttributes(attribute.String("notification.event", message.Event))

	var request notification.EmailRequest
	switch notice := message.Value.(type) {
	case tagsUsecases.ScanNotice:
		request = scanEmail(notice, w.baseURL)
		span.SetAttributes(attribute.String("item.id", notice.Item.ID.String()))
	case checklistUsecases.SubmissionNotice:
		request = submissionEmail(notice, w.baseURL)
		span.SetAttributes(attribute.String("item.id", notice.Item.ID.String()))
	default:
		slog.Warn("ignoring unknown notification", slog.String("event", message.Event))
		return
	}

	if request.To == "" {
		slog.Debug("item has no contact email, skipping notification", slog.String("event", message.Event))
		span.SetAttributes(attribute.Bool("notification.skipped", true))
		w.recordNotification(ctx, message.Event, _statusSkipped)
		return
	}

	if err := w.notificationClient.SendEmail(ctx, request); err != nil {
		slog.Error("failed to send owner notification",
			slog.String("event", message.Event),
			slog.String("error", err.Error()))
		span.RecordError(err)
		w.recordNotification(ctx, message.Event, _statusFailed)
		return
	}

	span.SetAttributes(attribute.Bool("notification.sent", true))
	w.recordNotification(ctx, message.Event, _statusSent)
	slog.Info("owner notification sent", slog.String("event", message.Event))
}

func (w *NotificationWorker) initializeMetrics() error {
	meter := otel.Meter("notification-worker")

	notificationCounter, err := meter.Float64Counter(
		"tagback_server_notifications_total",
		metric.WithDescription("Total number of owner notifications by outcome"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating notification counter: %w", err)
	}

	w.metricCounters[_metricKeyNotifications] = notificationCounter
	return nil
}

func (w *NotificationWorker) recordNotification(ctx context.Context, event, status string) {
	if counter, exists := w.metricCounters[_metricKeyNotifications]; exists {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("event", event),
			attribute.String("status", status),
			semconv.ServiceNameKey.String("tagback-server"),
		))
	}
}
