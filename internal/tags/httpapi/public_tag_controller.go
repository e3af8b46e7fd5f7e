package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"tagback-server/internal/infra/httpserver"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	"tagback-server/internal/tags/httpapi/internal"
	"tagback-server/internal/tags/usecases"
)

const (
	scanTagErrMessage       = "failed to resolve tag"
	shareLocationErrMessage = "failed to share location"
	tagInactiveMessage      = "tag is not linked to an item yet"
)

// PublicTagController serves whoever scans a printed code. It needs no
// identity headers.
func NewPublicTagController(service usecases.ScanService) *PublicTagController {
	return &PublicTagController{
		service: service,
	}
}

var _ httpserver.Controller = &PublicTagController{}

type PublicTagController struct {
	service usecases.ScanService
}

func (c *PublicTagController) AddRoutes(router *http.ServeMux) {
	router.HandleFunc("GET /v1/public/tags/{code}", c.scanTag)
	router.HandleFunc("POST /v1/public/tags/{code}/location", c.shareLocation)
}

func (c *PublicTagController) scanTag(w http.ResponseWriter, r *http.Request) {
	view, err := c.service.ScanTag(r.Context(), r.PathValue("code"), httpserver.ClientInfo(r))
	if err != nil {
		c.replyError(w, err, scanTagErrMessage)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPublicTagResponse(view))
}

func (c *PublicTagController) shareLocation(w http.ResponseWriter, r *http.Request) {
	var body internal.ShareLocationRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		http.Error(w, shareLocationErrMessage, http.StatusBadRequest)
		return
	}

	err := c.service.ShareLocation(r.Context(), r.PathValue("code"), body.ToDomain(httpserver.ClientInfo(r)))
	if err != nil {
		c.replyError(w, err, shareLocationErrMessage)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *PublicTagController) replyError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecases.ErrTagNotFound):
		http.Error(w, tagNotFoundMessage, http.StatusNotFound)
	case errors.Is(err, tagsDomain.ErrTagNotLinked):
		http.Error(w, tagInactiveMessage, http.StatusNotFound)
	case errors.Is(err, shareddomain.ErrValidationFailed), errors.Is(err, shareddomain.ErrRequiredFieldMissing):
		httpserver.ReplyWithValidationError(w, err)
	default:
		slog.Error(fallback, slog.String("error", err.Error()))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
