package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	catalogUsecases "tagback-server/internal/catalog/usecases"
	"tagback-server/internal/infra/httpserver"
	itemsDomain "tagback-server/internal/items/domain"
	"tagback-server/internal/items/httpapi/internal"
	"tagback-server/internal/items/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

const (
	createItemErrMessage  = "failed to create item"
	getItemErrMessage     = "failed to get item"
	listItemsErrMessage   = "failed to list items"
	updateItemErrMessage  = "failed to update item"
	deleteItemErrMessage  = "failed to delete item"
	itemNotFoundMessage   = "item not found"
	forbiddenMessage      = "item belongs to another owner"
	tagTypeMissingMessage = "tag type not found"
	tagTypeClosedMessage  = "tag type is not accepting new items"
)

func NewItemController(service usecases.ItemService) *ItemController {
	return &ItemController{
		service: service,
	}
}

var _ httpserver.Controller = &ItemController{}

type ItemController struct {
	service usecases.ItemService
}

func (c *ItemController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/items", httpserver.RequireUser(c.listItems))
	router.Handle("POST /v1/items", httpserver.RequireUser(c.createItem))
	router.Handle("GET /v1/items/{id}", httpserver.RequireUser(c.getItem))
	router.Handle("PUT /v1/items/{id}", httpserver.RequireUser(c.updateItem))
	router.Handle("DELETE /v1/items/{id}", httpserver.RequireUser(c.deleteItem))
	router.Handle("GET /v1/items/{id}/preview", httpserver.RequireUser(c.previewItem))
}

func (c *ItemController) listItems(w http.ResponseWriter, r *http.Request, userID string) {
	params := httpserver.ExtractPaginationParams(r)
	items, total, err := c.service.ListItems(r.Context(), shareddomain.ID(userID), usecases.Pagination{
		Limit:  params.Limit,
		Offset: params.Offset(),
	})
	if err != nil {
		http.Error(w, listItemsErrMessage, http.StatusInternalServerError)
		return
	}

	data := make([]internal.ItemResponse, len(items))
	for i, item := range items {
		data[i] = internal.ToItemResponse(item)
	}

	httpserver.ReplyWithPaginatedData(w, http.StatusOK, data, total, params)
}

func (c *ItemController) createItem(w http.ResponseWriter, r *http.Request, userID string) {
	var body internal.ItemCreateRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		http.Error(w, createItemErrMessage, http.StatusBadRequest)
		return
	}

	item, err := itemsDomain.NewItemBuilder().
		WithOwnerID(shareddomain.ID(userID)).
		WithTagTypeID(shareddomain.ID(body.TagTypeID)).
		WithName(body.Name).
		WithData(body.Data).
		WithContacts(body.Contacts.ToDomain()).
		WithVisibility(body.Visibility).
		WithReward(itemsDomain.Reward{Offered: body.Reward.Offered, Details: body.Reward.Details}).
		WithPrimaryPhoto(body.PrimaryPhoto).
		WithPhotos(body.Photos).
		Build()
	if err != nil {
		httpserver.ReplyWithValidationError(w, err)
		return
	}

	created, err := c.service.CreateItem(r.Context(), item)
	if err != nil {
		c.replyError(w, err, createItemErrMessage)
		return
	}

	httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToItemResponse(created))
}

func (c *ItemController) getItem(w http.ResponseWriter, r *http.Request, userID string) {
	item, err := c.service.GetItem(r.Context(), shareddomain.ID(userID), shareddomain.ID(r.PathValue("id")))
	if err != nil {
		c.replyError(w, err, getItemErrMessage)
		return
	}

	httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToItemResponse(item))
}

func (c *ItemController) updateItem(w http.ResponseWriter, r *http.Request, userID string) {
	var body internal.ItemUpdateRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		http.Error(w, updateItemErrMessage, http.StatusBadRequest)
		return
	}

	item, err := c.service.UpdateItem(r.Context(), shareddomain.ID(userID), shareddomain.ID(r.PathValue("id")), body.ToDomain())
	if err != nil {
		c.replyError(w, err, updateItemErrMessage)
		return
	}

	httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToItemResponse(item))
}

func (c *ItemController) deleteItem(w http.ResponseWriter, r *http.Request, userID string) {
	err := c.service.DeleteItem(r.Context(), shareddomain.ID(userID), shareddomain.ID(r.PathValue("id")))
	if err != nil {
		c.replyError(w, err, deleteItemErrMessage)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// previewItem shows owners what a stranger scanning the tag would see.
func (c *ItemController) previewItem(w http.ResponseWriter, r *http.Request, userID string) {
	id := shareddomain.ID(r.PathValue("id"))
	if _, err := c.service.GetItem(r.Context(), shareddomain.ID(userID), id); err != nil {
		c.replyError(w, err, getItemErrMessage)
		return
	}

	resolved, err := c.service.ResolveItem(r.Context(), id)
	if err != nil {
		c.replyError(w, err, getItemErrMessage)
		return
	}

	httpserver.ReplyJSONResponse(w, http.StatusOK, ToPublicViewResponse(resolved.View))
}

func (c *ItemController) replyError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecases.ErrItemNotFound):
		http.Error(w, itemNotFoundMessage, http.StatusNotFound)
	case errors.Is(err, usecases.ErrForbidden):
		http.Error(w, forbiddenMessage, http.StatusForbidden)
	case errors.Is(err, catalogUsecases.ErrTagTypeNotFound):
		http.Error(w, tagTypeMissingMessage, http.StatusNotFound)
	case errors.Is(err, catalogUsecases.ErrTagTypeInactive):
		http.Error(w, tagTypeClosedMessage, http.StatusConflict)
	case errors.Is(err, shareddomain.ErrValidationFailed), errors.Is(err, shareddomain.ErrRequiredFieldMissing):
		httpserver.ReplyWithValidationError(w, err)
	default:
		slog.Error(fallback, slog.String("error", err.Error()))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
