package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	catalogDomain "tagback-server/internal/catalog/domain"
	catalog_httpapi "tagback-server/internal/catalog/httpapi"
	catalog_httpapi_internal "tagback-server/internal/catalog/httpapi/internal"
	catalog_usecases "tagback-server/internal/catalog/usecases"
	"tagback-server/internal/infra/httpserver"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	mockusecases "tagback-server/test/unit/doubles/catalog/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ChecklistTemplateController", func() {
	var ctrl *gomock.Controller
	var mockService *mockusecases.MockChecklistTemplateService
	var router *http.ServeMux
	var recorder *httptest.ResponseRecorder

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockChecklistTemplateService(ctrl)
		router = http.NewServeMux()
		catalog_httpapi.NewChecklistTemplateController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should create a template from an operator request", func() {
		body, _ := json.Marshal(catalog_httpapi_internal.ChecklistTemplateRequest{
			Name: "Pre-flight",
			Items: []catalog_httpapi_internal.ChecklistItem{
				{Label: "Fuel checked", Type: "checkbox", Required: true},
				{Label: "Oil level", Type: "number"},
			},
		})
		mockService.EXPECT().CreateTemplate(gomock.Any(), gomock.Any()).Return(nil)

		router.ServeHTTP(recorder, operatorRequest(http.MethodPost, "/v1/admin/checklist-templates", body))

		Expect(recorder.Code).To(Equal(http.StatusCreated))
		var response catalog_httpapi_internal.ChecklistTemplateResponse
		Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response.Items).To(HaveLen(2))
		Expect(response.Items[0].ID).NotTo(BeEmpty())
	})

	It("should reject templates with unknown item types", func() {
		body := []byte(`{"name":"Broken","items":[{"label":"Photo","type":"image"}]}`)

		router.ServeHTTP(recorder, operatorRequest(http.MethodPost, "/v1/admin/checklist-templates", body))

		Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
		Expect(recorder.Body.String()).To(ContainSubstring("items[0].type"))
	})

	It("should answer 404 when deleting an unknown template", func() {
		mockService.EXPECT().DeleteTemplate(gomock.Any(), shareddomain.ID("missing")).Return(catalog_usecases.ErrTemplateNotFound)

		router.ServeHTTP(recorder, operatorRequest(http.MethodDelete, "/v1/admin/checklist-templates/missing", nil))

		Expect(recorder.Code).To(Equal(http.StatusNotFound))
	})

	It("should let any authenticated owner apply a template", func() {
		items := []catalogDomain.ChecklistItemDefinition{
			{ID: "fresh-1", Label: "Fuel checked", Type: catalogDomain.ChecklistItemCheckbox, Required: true},
		}
		mockService.EXPECT().ApplyTemplate(gomock.Any(), shareddomain.ID("tpl-1")).Return(items, nil)

		request := httptest.NewRequest(http.MethodPost, "/v1/checklist-templates/tpl-1/apply", nil)
		request.Header.Set(httpserver.UserIDHeader, "owner-1")
		router.ServeHTTP(recorder, request)

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var response catalog_httpapi_internal.AppliedTemplateResponse
		Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response.ChecklistItems).To(HaveLen(1))
		Expect(response.ChecklistItems[0].ID).To(Equal("fresh-1"))
	})

	It("should require a user to apply a template", func() {
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/checklist-templates/tpl-1/apply", nil))

		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
	})
})
