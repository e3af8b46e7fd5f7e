package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"tagback-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseData map[string]any
	tagTypeIDs   map[string]string
	ownerID      string
	itemID       string
	code         string
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver:  driver.NewAPIDriver("http://localhost:3000"),
		tagTypeIDs: make(map[string]string),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the error should mention "([^"]*)"$`, fc.theErrorShouldMention)

	// Catalog and item steps
	ctx.Given(`^the predefined tag types are seeded$`, fc.thePredefinedTagTypesAreSeeded)
	ctx.Given(`^owner "([^"]*)" has a pet item "([^"]*)" with medical notes "([^"]*)" and vet phone "([^"]*)"$`, fc.ownerHasAPetItem)
	ctx.Given(`^owner "([^"]*)" has a checklist item "([^"]*)" with a required checkbox "([^"]*)" labelled "([^"]*)"$`, fc.ownerHasAChecklistItem)

	// Tag steps
	ctx.Given(`^the item has a freshly issued tag$`, fc.theItemHasAFreshlyIssuedTag)
	ctx.When(`^the owner releases the tag$`, fc.theOwnerReleasesTheTag)
	ctx.When(`^a finder scans the tag$`, fc.aFinderScansTheTag)
	ctx.When(`^a finder scans code "([^"]*)"$`, fc.aFinderScansCode)
	ctx.Then(`^the public view should show field "([^"]*)" with value "([^"]*)"$`, fc.thePublicViewShouldShowField)
	ctx.Then(`^the public view should not show field "([^"]*)"$`, fc.thePublicViewShouldNotShowField)
	ctx.When(`^the owner lists the scans$`, fc.theOwnerListsTheScans)
	ctx.Then(`^the owner should see (\d+) scans? of kind "([^"]*)"$`, fc.theOwnerShouldSeeScansOfKind)

	// Checklist steps
	ctx.When(`^a finder submits the checklist as "([^"]*)" with "([^"]*)" set to "(true|false)"$`, fc.aFinderSubmitsTheChecklist)
	ctx.When(`^the owner lists the checklist submissions$`, fc.theOwnerListsTheChecklistSubmissions)
	ctx.Then(`^the owner should see (\d+) submissions? from "([^"]*)"$`, fc.theOwnerShouldSeeSubmissionsFrom)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.ownerID = ""
	fc.itemID = ""
	fc.code = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodePaginatedResponse(response *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(response.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}
