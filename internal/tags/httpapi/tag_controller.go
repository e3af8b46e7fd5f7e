package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"tagback-server/internal/infra/httpserver"
	itemsUsecases "tagback-server/internal/items/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	"tagback-server/internal/tags/httpapi/internal"
	"tagback-server/internal/tags/usecases"
)

const (
	claimTagErrMessage    = "failed to claim tag"
	releaseTagErrMessage  = "failed to release tag"
	listTagsErrMessage    = "failed to list tags"
	listScansErrMessage   = "failed to list scans"
	issueCodesErrMessage  = "failed to issue codes"
	tagNotFoundMessage    = "tag not found"
	tagLinkedMessage      = "tag is already linked to an item"
	tagNotLinkedMessage   = "tag is not linked to this item"
	itemNotFoundMessage   = "item not found"
	forbiddenMessage      = "item belongs to another owner"
	issuanceFailedMessage = "could not issue unique codes, try again"
)

func NewTagController(
	tags usecases.TagService,
	scans usecases.ScanService,
	issuer usecases.Issuer,
) *TagController {
	return &TagController{
		tags:   tags,
		scans:  scans,
		issuer: issuer,
	}
}

var _ httpserver.Controller = &TagController{}

type TagController struct {
	tags   usecases.TagService
	scans  usecases.ScanService
	issuer usecases.Issuer
}

func (c *TagController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/items/{id}/tags", httpserver.RequireUser(c.listTags))
	router.Handle("POST /v1/items/{id}/tags", httpserver.RequireUser(c.claimTag))
	router.Handle("DELETE /v1/items/{id}/tags/{code}", httpserver.RequireUser(c.releaseTag))
	router.Handle("GET /v1/items/{id}/scans", httpserver.RequireUser(c.listScans))
	router.Handle("POST /v1/admin/codes", httpserver.RequireOperator(c.issueCodes))
}

func (c *TagController) listTags(w http.ResponseWriter, r *http.Request, userID string) {
	tags, err := c.tags.ListItemTags(r.Context(), shareddomain.ID(userID), shareddomain.ID(r.PathValue("id")))
	if err != nil {
		replyOwnerError(w, err, listTagsErrMessage)
		return
	}

	response := make([]internal.TagResponse, len(tags))
	for i, tag := range tags {
		response[i] = internal.ToTagResponse(tag)
	}

	httpserver.ReplyJSONResponse(w, http.StatusOK, response)
}

func (c *TagController) claimTag(w http.ResponseWriter, r *http.Request, userID string) {
	var body internal.ClaimTagRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		http.Error(w, claimTagErrMessage, http.StatusBadRequest)
		return
	}
	if body.Code == "" {
		httpserver.ReplyWithValidationError(w, shareddomain.Required("code"))
		return
	}

	tag, err := c.tags.ClaimTag(r.Context(), shareddomain.ID(userID), shareddomain.ID(r.PathValue("id")), body.Code)
	if err != nil {
		replyOwnerError(w, err, claimTagErrMessage)
		return
	}

	httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToTagResponse(tag))
}

func (c *TagController) releaseTag(w http.ResponseWriter, r *http.Request, userID string) {
	err := c.tags.ReleaseTag(r.Context(), shareddomain.ID(userID), shareddomain.ID(r.PathValue("id")), r.PathValue("code"))
	if err != nil {
		replyOwnerError(w, err, releaseTagErrMessage)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *TagController) listScans(w http.ResponseWriter, r *http.Request, userID string) {
	params := httpserver.ExtractPaginationParams(r)
	scans, total, err := c.scans.ListItemScans(r.Context(), shareddomain.ID(userID), shareddomain.ID(r.PathValue("id")), usecases.Pagination{
		Limit:  params.Limit,
		Offset: params.Offset(),
	})
	if err != nil {
		replyOwnerError(w, err, listScansErrMessage)
		return
	}

	data := make([]internal.ScanResponse, len(scans))
	for i, scan := range scans {
		data[i] = internal.ToScanResponse(scan)
	}

	httpserver.ReplyWithPaginatedData(w, http.StatusOK, data, total, params)
}

func (c *TagController) issueCodes(w http.ResponseWriter, r *http.Request) {
	var body internal.IssueCodesRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		http.Error(w, issueCodesErrMessage, http.StatusBadRequest)
		return
	}

	tags, err := c.issuer.IssueBatch(r.Context(), body.Count, body.Batch)
	if errors.Is(err, usecases.ErrInvalidBatchSize) {
		httpserver.ReplyWithValidationError(w, shareddomain.Invalid("count", err.Error()))
		return
	}
	if err != nil {
		replyOwnerError(w, err, issueCodesErrMessage)
		return
	}

	response := internal.IssueCodesResponse{Batch: body.Batch, Codes: make([]string, len(tags))}
	for i, tag := range tags {
		response.Codes[i] = tag.Code.String()
	}

	httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
}

func replyOwnerError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecases.ErrTagNotFound):
		http.Error(w, tagNotFoundMessage, http.StatusNotFound)
	case errors.Is(err, tagsDomain.ErrTagAlreadyLinked):
		http.Error(w, tagLinkedMessage, http.StatusConflict)
	case errors.Is(err, tagsDomain.ErrTagNotLinked):
		http.Error(w, tagNotLinkedMessage, http.StatusConflict)
	case errors.Is(err, itemsUsecases.ErrItemNotFound):
		http.Error(w, itemNotFoundMessage, http.StatusNotFound)
	case errors.Is(err, itemsUsecases.ErrForbidden):
		http.Error(w, forbiddenMessage, http.StatusForbidden)
	case errors.Is(err, usecases.ErrIssuanceExhausted):
		http.Error(w, issuanceFailedMessage, http.StatusServiceUnavailable)
	default:
		slog.Error(fallback, slog.String("error", err.Error()))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
