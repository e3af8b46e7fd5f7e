//go:build wireinject
// +build wireinject

package wire

import (
	"tagback-server/internal/infra/httpserver"

	"github.com/google/wire"
)

func InitializeReadinessController() (*httpserver.ReadinessController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		provideReadinessChecks,
		httpserver.NewReadinessController,
	)
	return nil, nil
}
