//go:build wireinject
// +build wireinject

package wire

import (
	"tagback-server/internal/infra/pubsub"

	"github.com/google/wire"
)

func InitializeConsumerFactory() (pubsub.ConsumerFactory, error) {
	wire.Build(
		provideAppConfig,
		providePubSubFactory,
		provideConsumerFactory,
	)
	return nil, nil
}
