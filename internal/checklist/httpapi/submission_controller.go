package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	checklistDomain "tagback-server/internal/checklist/domain"
	"tagback-server/internal/checklist/httpapi/internal"
	"tagback-server/internal/checklist/usecases"
	"tagback-server/internal/infra/httpserver"
	itemsUsecases "tagback-server/internal/items/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	tagsUsecases "tagback-server/internal/tags/usecases"
)

const (
	submitErrMessage    = "failed to submit checklist"
	listErrMessage      = "failed to list checklist submissions"
	tagNotFoundMessage  = "tag not found"
	tagInactiveMessage  = "tag is not linked to an item yet"
	notChecklistMessage = "this tag does not take checklist submissions"
	itemNotFoundMessage = "item not found"
	forbiddenMessage    = "item belongs to another owner"
)

func NewSubmissionController(service usecases.SubmissionService) *SubmissionController {
	return &SubmissionController{
		service: service,
	}
}

var _ httpserver.Controller = &SubmissionController{}

type SubmissionController struct {
	service usecases.SubmissionService
}

func (c *SubmissionController) AddRoutes(router *http.ServeMux) {
	router.HandleFunc("POST /v1/public/tags/{code}/checklist", c.submit)
	router.Handle("GET /v1/items/{id}/checklist-submissions", httpserver.RequireUser(c.list))
}

func (c *SubmissionController) submit(w http.ResponseWriter, r *http.Request) {
	var body internal.SubmitChecklistRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		http.Error(w, submitErrMessage, http.StatusBadRequest)
		return
	}

	submission, err := c.service.Submit(r.Context(), r.PathValue("code"), body.ToDomain(httpserver.ClientInfo(r)))
	if err != nil {
		c.replyError(w, err, submitErrMessage)
		return
	}

	httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.SubmissionReceipt{
		ID:        submission.ID.String(),
		CreatedAt: submission.CreatedAt,
	})
}

func (c *SubmissionController) list(w http.ResponseWriter, r *http.Request, userID string) {
	params := httpserver.ExtractPaginationParams(r)
	submissions, total, err := c.service.ListSubmissions(r.Context(), shareddomain.ID(userID), shareddomain.ID(r.PathValue("id")), usecases.Pagination{
		Limit:  params.Limit,
		Offset: params.Offset(),
	})
	if err != nil {
		c.replyError(w, err, listErrMessage)
		return
	}

	data := make([]internal.SubmissionResponse, len(submissions))
	for i, submission := range submissions {
		data[i] = internal.ToSubmissionResponse(submission)
	}

	httpserver.ReplyWithPaginatedData(w, http.StatusOK, data, total, params)
}

func (c *SubmissionController) replyError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, tagsUsecases.ErrTagNotFound):
		http.Error(w, tagNotFoundMessage, http.StatusNotFound)
	case errors.Is(err, tagsDomain.ErrTagNotLinked):
		http.Error(w, tagInactiveMessage, http.StatusNotFound)
	case errors.Is(err, usecases.ErrNotChecklist):
		http.Error(w, notChecklistMessage, http.StatusConflict)
	case errors.Is(err, itemsUsecases.ErrItemNotFound):
		http.Error(w, itemNotFoundMessage, http.StatusNotFound)
	case errors.Is(err, itemsUsecases.ErrForbidden):
		http.Error(w, forbiddenMessage, http.StatusForbidden)
	case errors.Is(err, shareddomain.ErrValidationFailed),
		errors.Is(err, shareddomain.ErrRequiredFieldMissing),
		errors.Is(err, checklistDomain.ErrChecklistRequiredItemUnmet):
		httpserver.ReplyWithValidationError(w, err)
	default:
		slog.Error(fallback, slog.String("error", err.Error()))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
