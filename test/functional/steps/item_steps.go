package steps

import "net/http"

func (fc *FeatureContext) thePredefinedTagTypesAreSeeded() error {
	for _, slug := range []string{"pet", "checklist"} {
		if _, ok := fc.tagTypeIDs[slug]; ok {
			continue
		}

		response, err := fc.apiDriver.GetTagTypeBySlug("owner-1", slug)
		fc.expectStatus(response, err, http.StatusOK)

		var data map[string]any
		fc.require.NoError(fc.decodeBody(response.Body, &data))
		fc.require.NotEmpty(data["id"])
		fc.tagTypeIDs[slug] = data["id"].(string)
	}
	return nil
}

func (fc *FeatureContext) ownerHasAPetItem(ownerID, name, medicalNotes, vetPhone string) error {
	data := map[string]any{"species": "dog"}
	if medicalNotes != "" {
		data["medicalNotes"] = medicalNotes
	}
	if vetPhone != "" {
		data["vetPhone"] = vetPhone
	}

	return fc.createItem(ownerID, map[string]any{
		"tagTypeId":  fc.tagTypeIDs["pet"],
		"name":       name,
		"data":       data,
		"visibility": map[string]bool{"vetPhone": false},
	})
}

func (fc *FeatureContext) ownerHasAChecklistItem(ownerID, name, itemKey, label string) error {
	return fc.createItem(ownerID, map[string]any{
		"tagTypeId": fc.tagTypeIDs["checklist"],
		"name":      name,
		"data": map[string]any{
			"checklistItems": []map[string]any{
				{"id": itemKey, "label": label, "type": "checkbox", "required": true},
			},
		},
	})
}

func (fc *FeatureContext) createItem(ownerID string, body map[string]any) error {
	response, err := fc.apiDriver.CreateItem(ownerID, body)
	fc.expectStatus(response, err, http.StatusCreated)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(response.Body, &data))
	fc.require.NotEmpty(data["id"])

	fc.ownerID = ownerID
	fc.itemID = data["id"].(string)
	return nil
}
