//go:build wireinject
// +build wireinject

package wire

import (
	"tagback-server/internal/infra/async"
	tagsHTTPAPI "tagback-server/internal/tags/httpapi"
	tagsUsecases "tagback-server/internal/tags/usecases"

	"github.com/google/wire"
)

var IssuerSet = wire.NewSet(
	provideIssuerConfig,
	tagsUsecases.NewIssuer,
	wire.Bind(new(tagsUsecases.Issuer), new(*tagsUsecases.SimpleIssuer)),
)

func InitializeIssuer() (*tagsUsecases.SimpleIssuer, error) {
	wire.Build(
		InfraSet,
		TagRepositorySet,
		IssuerSet,
	)
	return nil, nil
}

func InitializeTagController(broker async.InternalBroker) (*tagsHTTPAPI.TagController, error) {
	wire.Build(
		InfraSet,
		ScanServiceSet,
		tagsUsecases.NewTagService,
		wire.Bind(new(tagsUsecases.TagService), new(*tagsUsecases.SimpleTagService)),
		IssuerSet,
		tagsHTTPAPI.NewTagController,
	)
	return nil, nil
}

func InitializePublicTagController(broker async.InternalBroker) (*tagsHTTPAPI.PublicTagController, error) {
	wire.Build(
		InfraSet,
		ScanServiceSet,
		tagsHTTPAPI.NewPublicTagController,
	)
	return nil, nil
}

func InitializeScanFeedController(broker async.InternalBroker) (*tagsHTTPAPI.ScanFeedController, error) {
	wire.Build(
		InfraSet,
		ScanServiceSet,
		tagsHTTPAPI.NewScanFeedController,
	)
	return nil, nil
}

func InitializeScanReconcileWorker() (*tagsUsecases.ScanReconcileWorker, error) {
	wire.Build(
		InfraSet,
		TagRepositorySet,
		provideTicker,
		provideScansConfig,
		tagsUsecases.NewScanReconcileWorker,
	)
	return nil, nil
}
