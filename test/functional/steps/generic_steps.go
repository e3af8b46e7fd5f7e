package steps

import (
	"net/http"
	"strings"
	"time"
)

func (fc *FeatureContext) waitForDuration(duration string) error {
	d, err := time.ParseDuration(strings.TrimSpace(duration))
	if err != nil {
		return err
	}

	time.Sleep(d)
	return nil
}

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	response, err := fc.apiDriver.GetHealthz()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

func (fc *FeatureContext) theErrorShouldMention(field string) error {
	var data struct {
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))

	for _, issue := range data.Errors {
		if issue.Field == field {
			return nil
		}
	}
	fc.require.Failf("missing field error", "no error for %q in %+v", field, data.Errors)
	return nil
}

func (fc *FeatureContext) expectStatus(response *http.Response, err error, status int) {
	fc.require.NoError(err)
	fc.require.Equal(status, response.StatusCode, "Unexpected status code")
}
