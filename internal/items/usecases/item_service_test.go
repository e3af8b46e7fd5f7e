package usecases_test

import (
	"context"
	"errors"
	catalogDomain "tagback-server/internal/catalog/domain"
	catalogUsecases "tagback-server/internal/catalog/usecases"
	itemsDomain "tagback-server/internal/items/domain"
	itemsUsecases "tagback-server/internal/items/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ItemService", func() {
	var (
		ctx        context.Context
		repository *fakeItemRepository
		tagTypes   *fakeTagTypeReader
		releaser   *fakeTagReleaser
		service    itemsUsecases.ItemService
		pet        catalogDomain.TagType
		checklist  catalogDomain.TagType
	)

	newItem := func(tagTypeID shareddomain.ID, data map[string]any) itemsDomain.Item {
		item, err := itemsDomain.NewItemBuilder().
			WithOwnerID("owner-1").
			WithTagTypeID(tagTypeID).
			WithName("Rex").
			WithData(data).
			Build()
		Expect(err).NotTo(HaveOccurred())
		return item
	}

	BeforeEach(func() {
		ctx = context.Background()
		repository = newFakeItemRepository()
		releaser = &fakeTagReleaser{}
		pet, _ = catalogDomain.NewPredefinedTagType(catalogDomain.TagTypePet)
		checklist, _ = catalogDomain.NewPredefinedTagType(catalogDomain.TagTypeChecklist)
		tagTypes = &fakeTagTypeReader{tagTypes: map[string]catalogDomain.TagType{
			pet.ID.String():       pet,
			checklist.ID.String(): checklist,
		}}
		service = itemsUsecases.NewItemService(repository, tagTypes, releaser)
	})

	Context("CreateItem", func() {
		It("should store an item whose data is valid", func() {
			created, err := service.CreateItem(ctx, newItem(pet.ID, map[string]any{"species": "dog", "extra": "kept"}))

			Expect(err).NotTo(HaveOccurred())
			Expect(repository.items).To(HaveKey(created.ID.String()))
			Expect(created.Data).To(HaveKeyWithValue("extra", "kept"))
		})

		It("should not store anything when a required field is missing", func() {
			_, err := service.CreateItem(ctx, newItem(pet.ID, map[string]any{"breed": "beagle"}))

			Expect(errors.Is(err, shareddomain.ErrRequiredFieldMissing)).To(BeTrue())
			Expect(repository.createCalled).To(BeFalse())
		})

		It("should refuse inactive tag types", func() {
			pet.Deactivate()
			tagTypes.tagTypes[pet.ID.String()] = pet

			_, err := service.CreateItem(ctx, newItem(pet.ID, map[string]any{"species": "dog"}))

			Expect(err).To(MatchError(catalogUsecases.ErrTagTypeInactive))
		})

		It("should report unknown tag types", func() {
			_, err := service.CreateItem(ctx, newItem("missing", nil))

			Expect(errors.Is(err, catalogUsecases.ErrTagTypeNotFound)).To(BeTrue())
		})
	})

	Context("GetItem", func() {
		It("should hide items of other owners", func() {
			item := newItem(pet.ID, map[string]any{"species": "dog"})
			repository.items[item.ID.String()] = item

			_, err := service.GetItem(ctx, "owner-2", item.ID)

			Expect(err).To(MatchError(itemsUsecases.ErrForbidden))
		})

		It("should report missing items", func() {
			_, err := service.GetItem(ctx, "owner-1", "nope")

			Expect(err).To(MatchError(itemsUsecases.ErrItemNotFound))
		})
	})

	Context("UpdateItem", func() {
		var item itemsDomain.Item

		BeforeEach(func() {
			item = newItem(pet.ID, map[string]any{"species": "dog"})
			repository.items[item.ID.String()] = item
		})

		It("should keep the stored item when the new data is invalid", func() {
			data := map[string]any{"species": "dog", "age": "old"}

			_, err := service.UpdateItem(ctx, "owner-1", item.ID, itemsDomain.ItemUpdate{Data: &data})

			Expect(errors.Is(err, shareddomain.ErrValidationFailed)).To(BeTrue())
			Expect(repository.updateCalled).To(BeFalse())
			Expect(repository.items[item.ID.String()].Data).To(Equal(map[string]any{"species": "dog"}))
		})

		It("should still accept writes when the tag type was deactivated", func() {
			pet.Deactivate()
			tagTypes.tagTypes[pet.ID.String()] = pet
			visibility := map[string]bool{"species": false}

			updated, err := service.UpdateItem(ctx, "owner-1", item.ID, itemsDomain.ItemUpdate{Visibility: &visibility})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Visibility).To(HaveKeyWithValue("species", false))
		})

		It("should enforce fields added to the tag type since the last write", func() {
			pet.FieldGroups[0].Fields = append(pet.FieldGroups[0].Fields,
				catalogDomain.FieldDefinition{Key: "chip", Type: catalogDomain.FieldTypeText, Required: true})
			tagTypes.tagTypes[pet.ID.String()] = pet
			name := "Max"

			_, err := service.UpdateItem(ctx, "owner-1", item.ID, itemsDomain.ItemUpdate{Name: &name})

			Expect(shareddomain.FieldErrors(err)[0].Field).To(Equal("chip"))
		})
	})

	Context("DeleteItem", func() {
		It("should release the item tags before deleting", func() {
			item := newItem(pet.ID, map[string]any{"species": "dog"})
			repository.items[item.ID.String()] = item

			Expect(service.DeleteItem(ctx, "owner-1", item.ID)).To(Succeed())

			Expect(releaser.released).To(Equal([]shareddomain.ID{item.ID}))
			Expect(repository.items).To(BeEmpty())
		})

		It("should keep the item when tags cannot be released", func() {
			item := newItem(pet.ID, map[string]any{"species": "dog"})
			repository.items[item.ID.String()] = item
			releaser.err = errors.New("boom")

			Expect(service.DeleteItem(ctx, "owner-1", item.ID)).NotTo(Succeed())
			Expect(repository.deleteCalled).To(BeFalse())
		})
	})

	Context("ResolveItem", func() {
		It("should resolve the public view of a regular item", func() {
			item := newItem(pet.ID, map[string]any{"species": "dog", "vetPhone": "555"})
			repository.items[item.ID.String()] = item

			resolved, err := service.ResolveItem(ctx, item.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(resolved.IsChecklist()).To(BeFalse())
			_, vetVisible := resolved.View.Field("vetPhone")
			Expect(vetVisible).To(BeFalse())
		})

		It("should use the checklist view for checklist items", func() {
			item := newItem(checklist.ID, map[string]any{})
			item.Visibility = map[string]bool{catalogDomain.ChecklistItemsKey: false}
			repository.items[item.ID.String()] = item

			resolved, err := service.ResolveItem(ctx, item.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(resolved.IsChecklist()).To(BeTrue())
			_, ok := resolved.View.Field(catalogDomain.ChecklistItemsKey)
			Expect(ok).To(BeTrue())
		})
	})
})
