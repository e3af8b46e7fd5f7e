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
	createTemplateErrMessage = "failed to create checklist template"
	listTemplatesErrMessage  = "failed to list checklist templates"
	deleteTemplateErrMessage = "failed to delete checklist template"
	applyTemplateErrMessage  = "failed to apply checklist template"
	templateNotFoundMessage  = "checklist template not found"
)

func NewChecklistTemplateController(service usecases.ChecklistTemplateService) *ChecklistTemplateController {
	return &ChecklistTemplateController{
		service: service,
	}
}

var _ httpserver.Controller = &ChecklistTemplateController{}

type ChecklistTemplateController struct {
	service usecases.ChecklistTemplateService
}

func (c *ChecklistTemplateController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/checklist-templates", c.listTemplates())
	router.Handle("POST /v1/checklist-templates/{id}/apply", c.applyTemplate())

	router.Handle("GET /v1/admin/checklist-templates", httpserver.RequireOperator(c.listTemplates()))
	router.Handle("POST /v1/admin/checklist-templates", httpserver.RequireOperator(c.createTemplate()))
	router.Handle("DELETE /v1/admin/checklist-templates/{id}", httpserver.RequireOperator(c.deleteTemplate()))
}

func (c *ChecklistTemplateController) listTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := c.service.ListTemplates(r.Context())
		if err != nil {
			slog.Error("listing checklist templates", slog.String("error", err.Error()))
			http.Error(w, listTemplatesErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ChecklistTemplateListResponse{Data: make([]internal.ChecklistTemplateResponse, len(templates))}
		for i, template := range templates {
			response.Data[i] = internal.ToChecklistTemplateResponse(template)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *ChecklistTemplateController) createTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ChecklistTemplateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, createTemplateErrMessage, http.StatusBadRequest)
			return
		}

		template, err := catalogDomain.NewChecklistTemplateBuilder().
			WithName(body.Name).
			WithDescription(body.Description).
			WithItems(internal.ToChecklistItemDefinitions(body.Items)).
			Build()
		if err != nil {
			httpserver.ReplyWithValidationError(w, err)
			return
		}

		if err := c.service.CreateTemplate(r.Context(), template); err != nil {
			slog.Error("creating checklist template", slog.String("error", err.Error()))
			http.Error(w, createTemplateErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToChecklistTemplateResponse(template))
	}
}

func (c *ChecklistTemplateController) deleteTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := c.service.DeleteTemplate(r.Context(), shareddomain.ID(r.PathValue("id")))
		if errors.Is(err, usecases.ErrTemplateNotFound) {
			http.Error(w, templateNotFoundMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deleting checklist template", slog.String("error", err.Error()))
			http.Error(w, deleteTemplateErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *ChecklistTemplateController) applyTemplate() http.HandlerFunc {
	return httpserver.RequireUser(func(w http.ResponseWriter, r *http.Request, _ string) {
		items, err := c.service.ApplyTemplate(r.Context(), shareddomain.ID(r.PathValue("id")))
		if errors.Is(err, usecases.ErrTemplateNotFound) {
			http.Error(w, templateNotFoundMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("applying checklist template", slog.String("error", err.Error()))
			http.Error(w, applyTemplateErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.AppliedTemplateResponse{
			ChecklistItems: internal.ToChecklistItems(items),
		})
	})
}
