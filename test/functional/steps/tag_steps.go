package steps

import "net/http"

func (fc *FeatureContext) theItemHasAFreshlyIssuedTag() error {
	response, err := fc.apiDriver.IssueCodes(1, "functional")
	fc.expectStatus(response, err, http.StatusCreated)

	var issued struct {
		Codes []string `json:"codes"`
	}
	fc.require.NoError(fc.decodeBody(response.Body, &issued))
	fc.require.Len(issued.Codes, 1)
	fc.code = issued.Codes[0]

	response, err = fc.apiDriver.ClaimTag(fc.ownerID, fc.itemID, fc.code)
	fc.expectStatus(response, err, http.StatusCreated)
	return response.Body.Close()
}

func (fc *FeatureContext) theOwnerReleasesTheTag() error {
	response, err := fc.apiDriver.ReleaseTag(fc.ownerID, fc.itemID, fc.code)
	fc.expectStatus(response, err, http.StatusNoContent)
	return response.Body.Close()
}

func (fc *FeatureContext) aFinderScansTheTag() error {
	return fc.aFinderScansCode(fc.code)
}

func (fc *FeatureContext) aFinderScansCode(code string) error {
	response, err := fc.apiDriver.ScanTag(code)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) publicFields() map[string]any {
	var view struct {
		Item struct {
			Groups []struct {
				Fields []struct {
					Key   string `json:"key"`
					Value any    `json:"value"`
				} `json:"fields"`
			} `json:"groups"`
		} `json:"item"`
	}
	fc.require.NoError(fc.decodeBody(fc.response.Body, &view))

	fields := make(map[string]any)
	for _, group := range view.Item.Groups {
		for _, field := range group.Fields {
			fields[field.Key] = field.Value
		}
	}
	return fields
}

func (fc *FeatureContext) thePublicViewShouldShowField(key, value string) error {
	if fc.responseData == nil {
		fc.responseData = fc.publicFields()
	}
	fc.require.Equal(value, fc.responseData[key])
	return nil
}

func (fc *FeatureContext) thePublicViewShouldNotShowField(key string) error {
	if fc.responseData == nil {
		fc.responseData = fc.publicFields()
	}
	fc.require.NotContains(fc.responseData, key)
	return nil
}

func (fc *FeatureContext) theOwnerListsTheScans() error {
	response, err := fc.apiDriver.ListScans(fc.ownerID, fc.itemID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theOwnerShouldSeeScansOfKind(count int, kind string) error {
	scans, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)
	fc.require.Len(scans, count)
	for _, scan := range scans {
		fc.require.Equal(kind, scan["kind"])
	}
	return nil
}
