//go:build wireinject
// +build wireinject

package wire

import (
	itemsHTTPAPI "tagback-server/internal/items/httpapi"

	"github.com/google/wire"
)

func InitializeItemController() (*itemsHTTPAPI.ItemController, error) {
	wire.Build(
		InfraSet,
		ItemServiceSet,
		itemsHTTPAPI.NewItemController,
	)
	return nil, nil
}
