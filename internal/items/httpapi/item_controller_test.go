package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	catalogDomain "tagback-server/internal/catalog/domain"
	catalogUsecases "tagback-server/internal/catalog/usecases"
	"tagback-server/internal/infra/httpserver"
	itemsDomain "tagback-server/internal/items/domain"
	items_httpapi "tagback-server/internal/items/httpapi"
	items_usecases "tagback-server/internal/items/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	mockusecases "tagback-server/test/unit/doubles/items/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

func ownerRequest(method, target string, body []byte) *http.Request {
	request := httptest.NewRequest(method, target, bytes.NewReader(body))
	request.Header.Set(httpserver.UserIDHeader, "owner-1")
	return request
}

var _ = Describe("ItemController", func() {
	var ctrl *gomock.Controller
	var mockService *mockusecases.MockItemService
	var router *http.ServeMux
	var recorder *httptest.ResponseRecorder

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockItemService(ctrl)
		router = http.NewServeMux()
		items_httpapi.NewItemController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should reject anonymous callers", func() {
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/items", nil))

		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
	})

	It("should page the caller's items", func() {
		item, _ := itemsDomain.NewItemBuilder().WithOwnerID("owner-1").WithTagTypeID("tt-1").WithName("Rex").Build()
		mockService.EXPECT().
			ListItems(gomock.Any(), shareddomain.ID("owner-1"), items_usecases.Pagination{Limit: 5, Offset: 5}).
			Return([]itemsDomain.Item{item}, 6, nil)

		router.ServeHTTP(recorder, ownerRequest(http.MethodGet, "/v1/items?page=2&limit=5", nil))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var response httpserver.PaginatedResponse
		Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response.Pagination.Total).To(Equal(6))
		Expect(response.Pagination.TotalPages).To(Equal(2))
	})

	Context("createItem", func() {
		It("should create the item for the caller", func() {
			body := []byte(`{"tagTypeId":"tt-1","name":"Rex","data":{"species":"dog"},"visibility":{"ownerPhone":false}}`)
			mockService.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, item itemsDomain.Item) (itemsDomain.Item, error) {
					Expect(item.OwnerID).To(Equal(shareddomain.ID("owner-1")))
					Expect(item.Data).To(HaveKeyWithValue("species", "dog"))
					return item, nil
				})

			router.ServeHTTP(recorder, ownerRequest(http.MethodPost, "/v1/items", body))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(recorder.Body.String()).To(ContainSubstring(`"ownerPhone":false`))
		})

		It("should answer 422 listing every invalid field", func() {
			body := []byte(`{"tagTypeId":"tt-1","name":"Rex","data":{}}`)
			verr := &shareddomain.ValidationError{}
			verr.Add(shareddomain.Required("species"), shareddomain.Invalid("age", "must be a number"))
			mockService.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(itemsDomain.Item{}, verr)

			router.ServeHTTP(recorder, ownerRequest(http.MethodPost, "/v1/items", body))

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			var response httpserver.ErrorResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Errors).To(Equal([]httpserver.FieldIssue{
				{Field: "species", Reason: "is required"},
				{Field: "age", Reason: "must be a number"},
			}))
		})

		It("should answer 422 when the name is missing", func() {
			router.ServeHTTP(recorder, ownerRequest(http.MethodPost, "/v1/items", []byte(`{"tagTypeId":"tt-1"}`)))

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(recorder.Body.String()).To(ContainSubstring(`"name"`))
		})

		It("should answer 409 for an inactive tag type", func() {
			mockService.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(itemsDomain.Item{}, catalogUsecases.ErrTagTypeInactive)

			router.ServeHTTP(recorder, ownerRequest(http.MethodPost, "/v1/items", []byte(`{"tagTypeId":"tt-1","name":"Rex"}`)))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	It("should answer 403 for items of another owner", func() {
		mockService.EXPECT().GetItem(gomock.Any(), shareddomain.ID("owner-1"), shareddomain.ID("item-9")).
			Return(itemsDomain.Item{}, items_usecases.ErrForbidden)

		router.ServeHTTP(recorder, ownerRequest(http.MethodGet, "/v1/items/item-9", nil))

		Expect(recorder.Code).To(Equal(http.StatusForbidden))
	})

	It("should pass partial updates", func() {
		mockService.EXPECT().UpdateItem(gomock.Any(), shareddomain.ID("owner-1"), shareddomain.ID("item-1"), gomock.Any()).
			DoAndReturn(func(_ any, _, _ shareddomain.ID, update itemsDomain.ItemUpdate) (itemsDomain.Item, error) {
				Expect(update.Name).To(BeNil())
				Expect(*update.Visibility).To(HaveKeyWithValue("breed", true))
				Expect(update.Reward.Offered).To(BeTrue())
				return itemsDomain.Item{ID: "item-1"}, nil
			})

		router.ServeHTTP(recorder, ownerRequest(http.MethodPut, "/v1/items/item-1",
			[]byte(`{"visibility":{"breed":true},"reward":{"offered":true,"details":"Pizza"}}`)))

		Expect(recorder.Code).To(Equal(http.StatusOK))
	})

	It("should delete the item", func() {
		mockService.EXPECT().DeleteItem(gomock.Any(), shareddomain.ID("owner-1"), shareddomain.ID("item-1")).Return(nil)

		router.ServeHTTP(recorder, ownerRequest(http.MethodDelete, "/v1/items/item-1", nil))

		Expect(recorder.Code).To(Equal(http.StatusNoContent))
	})

	It("should preview the public view", func() {
		tagType, _ := catalogDomain.NewPredefinedTagType(catalogDomain.TagTypePet)
		item := itemsDomain.Item{
			ID:         "item-1",
			OwnerID:    "owner-1",
			Name:       "Rex",
			Data:       map[string]any{"species": "dog", "vetPhone": "555"},
			Visibility: map[string]bool{},
		}
		mockService.EXPECT().GetItem(gomock.Any(), shareddomain.ID("owner-1"), shareddomain.ID("item-1")).Return(item, nil)
		mockService.EXPECT().ResolveItem(gomock.Any(), shareddomain.ID("item-1")).Return(items_usecases.ResolvedItem{
			Item:    item,
			TagType: tagType,
			View:    itemsDomain.ResolvePublicView(tagType, item),
		}, nil)

		router.ServeHTTP(recorder, ownerRequest(http.MethodGet, "/v1/items/item-1/preview", nil))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var response items_httpapi.PublicViewResponse
		Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response.Groups).To(HaveLen(1))
		Expect(response.Groups[0].Fields[0].Key).To(Equal("species"))
		Expect(response.TagType.Slug).To(Equal("pet"))
	})
})
