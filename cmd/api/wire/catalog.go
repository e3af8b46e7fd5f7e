//go:build wireinject
// +build wireinject

package wire

import (
	catalogHTTPAPI "tagback-server/internal/catalog/httpapi"
	catalogPersistence "tagback-server/internal/catalog/persistence"
	catalogUsecases "tagback-server/internal/catalog/usecases"

	"github.com/google/wire"
)

func InitializeTagTypeService() (*catalogUsecases.SimpleTagTypeService, error) {
	wire.Build(
		InfraSet,
		ItemRepositorySet,
		TagTypeServiceSet,
	)
	return nil, nil
}

func InitializeTagTypeController() (*catalogHTTPAPI.TagTypeController, error) {
	wire.Build(
		InfraSet,
		ItemRepositorySet,
		TagTypeServiceSet,
		catalogHTTPAPI.NewTagTypeController,
	)
	return nil, nil
}

func InitializeChecklistTemplateController() (*catalogHTTPAPI.ChecklistTemplateController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		catalogPersistence.NewChecklistTemplateRepository,
		wire.Bind(new(catalogUsecases.ChecklistTemplateRepository), new(*catalogPersistence.SimpleChecklistTemplateRepository)),
		catalogUsecases.NewChecklistTemplateService,
		wire.Bind(new(catalogUsecases.ChecklistTemplateService), new(*catalogUsecases.SimpleChecklistTemplateService)),
		catalogHTTPAPI.NewChecklistTemplateController,
	)
	return nil, nil
}
