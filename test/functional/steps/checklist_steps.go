package steps

func (fc *FeatureContext) aFinderSubmitsTheChecklist(submitter, itemKey, value string) error {
	response, err := fc.apiDriver.SubmitChecklist(fc.code, map[string]any{
		"submitterName": submitter,
		"results": []map[string]any{
			{"id": itemKey, "value": value == "true"},
		},
	})
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theOwnerListsTheChecklistSubmissions() error {
	response, err := fc.apiDriver.ListSubmissions(fc.ownerID, fc.itemID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theOwnerShouldSeeSubmissionsFrom(count int, submitter string) error {
	submissions, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)
	fc.require.Len(submissions, count)
	for _, submission := range submissions {
		fc.require.Equal(submitter, submission["submitterName"])
	}
	return nil
}
