package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	catalogDomain "tagback-server/internal/catalog/domain"
	"tagback-server/internal/catalog/httpapi/internal"
	"tagback-server/internal/catalog/usecases"
	"tagback-server/internal/infra/httpserver"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

const (
	createTagTypeErrMessage = "failed to create tag type"
	getTagTypeErrMessage    = "failed to get tag type"
	listTagTypesErrMessage  = "failed to list tag types"
	updateTagTypeErrMessage = "failed to update tag type"
	deleteTagTypeErrMessage = "failed to delete tag type"
	tagTypeNotFoundMessage  = "tag type not found"
	duplicateSlugMessage    = "a tag type with this slug already exists"
)

func NewTagTypeController(service usecases.TagTypeService) *TagTypeController {
	return &TagTypeController{
		service: service,
	}
}

var _ httpserver.Controller = &TagTypeController{}

type TagTypeController struct {
	service usecases.TagTypeService
}

func (c *TagTypeController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/tag-types", c.listActiveTagTypes())
	router.Handle("GET /v1/tag-types/{slug}", c.getTagTypeBySlug())

	router.Handle("GET /v1/admin/tag-types", httpserver.RequireOperator(c.listAllTagTypes()))
	router.Handle("POST /v1/admin/tag-types", httpserver.RequireOperator(c.createTagType()))
	router.Handle("GET /v1/admin/tag-types/{id}", httpserver.RequireOperator(c.getTagType()))
	router.Handle("PUT /v1/admin/tag-types/{id}", httpserver.RequireOperator(c.updateTagType()))
	router.Handle("DELETE /v1/admin/tag-types/{id}", httpserver.RequireOperator(c.deleteTagType()))
	router.Handle("POST /v1/admin/tag-types/{id}/activate", httpserver.RequireOperator(c.activateTagType()))
	router.Handle("POST /v1/admin/tag-types/{id}/deactivate", httpserver.RequireOperator(c.deactivateTagType()))
}

func (c *TagTypeController) listActiveTagTypes() http.HandlerFunc {
	return c.listTagTypes(true)
}

func (c *TagTypeController) listAllTagTypes() http.HandlerFunc {
	return c.listTagTypes(false)
}

func (c *TagTypeController) listTagTypes(activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagTypes, err := c.service.ListTagTypes(r.Context(), activeOnly)
		if err != nil {
			slog.Error("listing tag types", slog.String("error", err.Error()))
			http.Error(w, listTagTypesErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.TagTypeListResponse{Data: make([]internal.TagTypeResponse, len(tagTypes))}
		for i, tagType := range tagTypes {
			response.Data[i] = internal.ToTagTypeResponse(tagType)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *TagTypeController) getTagTypeBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagType, err := c.service.GetTagTypeBySlug(r.Context(), shareddomain.Slug(r.PathValue("slug")))
		if err == nil && !tagType.IsActive {
			err = usecases.ErrTagTypeNotFound
		}
		if err != nil {
			c.replyError(w, err, getTagTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTagTypeResponse(tagType))
	}
}

func (c *TagTypeController) getTagType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagType, err := c.service.GetTagType(r.Context(), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			c.replyError(w, err, getTagTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTagTypeResponse(tagType))
	}
}

func (c *TagTypeController) createTagType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TagTypeCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, createTagTypeErrMessage, http.StatusBadRequest)
			return
		}

		builder := catalogDomain.NewTagTypeBuilder().
			WithSlug(body.Slug).
			WithName(body.Name).
			WithDescription(body.Description).
			WithIcon(body.Icon).
			WithColor(body.Color).
			WithFieldGroups(internal.ToFieldGroups(body.FieldGroups)).
			WithDefaultVisibility(body.DefaultVisibility).
			WithSortOrder(body.SortOrder)
		if body.IsActive != nil {
			builder = builder.WithIsActive(*body.IsActive)
		}

		tagType, err := builder.Build()
		if err != nil {
			httpserver.ReplyWithValidationError(w, err)
			return
		}

		if err := c.service.CreateTagType(r.Context(), tagType); err != nil {
			c.replyError(w, err, createTagTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToTagTypeResponse(tagType))
	}
}

func (c *TagTypeController) updateTagType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TagTypeUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, updateTagTypeErrMessage, http.StatusBadRequest)
			return
		}

		tagType, err := c.service.UpdateTagType(r.Context(), shareddomain.ID(r.PathValue("id")), body.ToDomain())
		if err != nil {
			c.replyError(w, err, updateTagTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTagTypeResponse(tagType))
	}
}

// deleteTagType answers with the branch taken: deleted, or deactivated when
// items still reference the tag type.
func (c *TagTypeController) deleteTagType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome, err := c.service.DeleteTagType(r.Context(), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			c.replyError(w, err, deleteTagTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DeleteTagTypeResponse{Outcome: string(outcome)})
	}
}

func (c *TagTypeController) activateTagType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.ActivateTagType(r.Context(), shareddomain.ID(r.PathValue("id"))); err != nil {
			c.replyError(w, err, updateTagTypeErrMessage)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *TagTypeController) deactivateTagType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.DeactivateTagType(r.Context(), shareddomain.ID(r.PathValue("id"))); err != nil {
			c.replyError(w, err, updateTagTypeErrMessage)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *TagTypeController) replyError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecases.ErrTagTypeNotFound):
		http.Error(w, tagTypeNotFoundMessage, http.StatusNotFound)
	case errors.Is(err, usecases.ErrDuplicateSlug):
		http.Error(w, duplicateSlugMessage, http.StatusConflict)
	case errors.Is(err, shareddomain.ErrValidationFailed), errors.Is(err, shareddomain.ErrRequiredFieldMissing):
		httpserver.ReplyWithValidationError(w, err)
	default:
		slog.Error(fallback, slog.String("error", err.Error()))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
