//go:build wireinject
// +build wireinject

package wire

import (
	"tagback-server/internal/infra/async"
	notificationsUsecases "tagback-server/internal/notifications/usecases"

	"github.com/google/wire"
)

func InitializeNotificationWorker(broker async.InternalBroker) (*notificationsUsecases.NotificationWorker, error) {
	wire.Build(
		provideAppConfig,
		providePublicConfig,
		provideNotificationClient,
		notificationsUsecases.NewNotificationWorker,
	)
	return nil, nil
}
