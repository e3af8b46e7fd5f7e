//go:build wireinject
// +build wireinject

package wire

import (
	checklistHTTPAPI "tagback-server/internal/checklist/httpapi"
	checklistPersistence "tagback-server/internal/checklist/persistence"
	checklistUsecases "tagback-server/internal/checklist/usecases"
	"tagback-server/internal/infra/async"
	itemsUsecases "tagback-server/internal/items/usecases"
	notificationsUsecases "tagback-server/internal/notifications/usecases"
	tagsPersistence "tagback-server/internal/tags/persistence"
	tagsUsecases "tagback-server/internal/tags/usecases"

	"github.com/google/wire"
)

func InitializeSubmissionController(broker async.InternalBroker) (*checklistHTTPAPI.SubmissionController, error) {
	wire.Build(
		InfraSet,
		ScanServiceSet,
		wire.Bind(new(checklistPersistence.ScanWriter), new(*tagsPersistence.SimpleScanRepository)),
		checklistPersistence.NewSubmissionRepository,
		wire.Bind(new(checklistUsecases.SubmissionRepository), new(*checklistPersistence.SimpleSubmissionRepository)),
		wire.Bind(new(checklistUsecases.TagResolver), new(*tagsUsecases.SimpleScanService)),
		wire.Bind(new(checklistUsecases.ItemAuthorizer), new(*itemsUsecases.SimpleItemService)),
		wire.Bind(new(checklistUsecases.SubmissionNotifier), new(*notificationsUsecases.Notifier)),
		checklistUsecases.NewSubmissionService,
		wire.Bind(new(checklistUsecases.SubmissionService), new(*checklistUsecases.SimpleSubmissionService)),
		checklistHTTPAPI.NewSubmissionController,
	)
	return nil, nil
}
