package wire

import (
	catalogPersistence "tagback-server/internal/catalog/persistence"
	catalogUsecases "tagback-server/internal/catalog/usecases"
	itemsPersistence "tagback-server/internal/items/persistence"
	itemsUsecases "tagback-server/internal/items/usecases"
	notificationsUsecases "tagback-server/internal/notifications/usecases"
	tagsPersistence "tagback-server/internal/tags/persistence"
	tagsUsecases "tagback-server/internal/tags/usecases"

	"github.com/google/wire"
)

var InfraSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory,
)

var TagTypeServiceSet = wire.NewSet(
	provideCache,
	catalogPersistence.NewTagTypeRepository,
	provideCachedTagTypeRepository,
	wire.Bind(new(catalogUsecases.TagTypeRepository), new(*catalogPersistence.CachedTagTypeRepository)),
	catalogUsecases.NewTagTypeService,
	wire.Bind(new(catalogUsecases.TagTypeService), new(*catalogUsecases.SimpleTagTypeService)),
)

var ItemRepositorySet = wire.NewSet(
	itemsPersistence.NewItemRepository,
	wire.Bind(new(itemsUsecases.ItemRepository), new(*itemsPersistence.SimpleItemRepository)),
	wire.Bind(new(catalogUsecases.TagTypeUsage), new(*itemsPersistence.SimpleItemRepository)),
)

var TagRepositorySet = wire.NewSet(
	tagsPersistence.NewTagRepository,
	wire.Bind(new(tagsUsecases.TagRepository), new(*tagsPersistence.SimpleTagRepository)),
)

var ItemServiceSet = wire.NewSet(
	TagTypeServiceSet,
	ItemRepositorySet,
	TagRepositorySet,
	wire.Bind(new(itemsUsecases.TagTypeReader), new(*catalogUsecases.SimpleTagTypeService)),
	tagsUsecases.NewItemTagReleaser,
	wire.Bind(new(itemsUsecases.TagReleaser), new(*tagsUsecases.ItemTagReleaser)),
	itemsUsecases.NewItemService,
	wire.Bind(new(itemsUsecases.ItemService), new(*itemsUsecases.SimpleItemService)),
	wire.Bind(new(tagsUsecases.ItemResolver), new(*itemsUsecases.SimpleItemService)),
)

var ScanServiceSet = wire.NewSet(
	ItemServiceSet,
	tagsPersistence.NewScanRepository,
	wire.Bind(new(tagsUsecases.ScanRepository), new(*tagsPersistence.SimpleScanRepository)),
	notificationsUsecases.NewNotifier,
	wire.Bind(new(tagsUsecases.OwnerNotifier), new(*notificationsUsecases.Notifier)),
	tagsUsecases.NewScanService,
	wire.Bind(new(tagsUsecases.ScanService), new(*tagsUsecases.SimpleScanService)),
)
