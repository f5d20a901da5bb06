package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/go-cmp/cmp"

	"github.com/rhq-project/rhq-in-go/pkg/model"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	authToken    string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{tc: tc}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^an RHQ server is running$`, s.anRHQServerIsRunning)
	sc.Step(`^the managed file contains:$`, s.theManagedFileContains)

	// Authentication steps
	sc.Step(`^I authenticate as "([^"]*)" with password "([^"]*)"$`, s.iAuthenticateAs)
	sc.Step(`^I am authenticated as "([^"]*)" with password "([^"]*)"$`, s.iAmAuthenticatedAs)
	sc.Step(`^I should receive a bearer token$`, s.iShouldReceiveABearerToken)
	sc.Step(`^I request "([^"]*)"$`, s.iRequest)
	sc.Step(`^I request "([^"]*)" without a token$`, s.iRequestWithoutAToken)

	// Configuration steps
	sc.Step(`^I request the latest configuration of the managed resource$`, s.iRequestTheLatestConfiguration)
	sc.Step(`^I set property "([^"]*)" of the managed resource to "([^"]*)"$`, s.iSetProperty)
	sc.Step(`^the managed file should eventually contain "([^"]*)"$`, s.theManagedFileShouldEventuallyContain)
	sc.Step(`^the latest update of the managed resource should eventually be "([^"]*)"$`, s.theLatestUpdateShouldEventuallyBe)
	sc.Step(`^the configuration should have properties:$`, s.theConfigurationShouldHaveProperties)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should contain "([^"]*)"$`, s.theResponseShouldContain)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, s.theResponseFieldShouldBe)
}

func (s *StepsContext) anRHQServerIsRunning() error {
	return nil
}

func (s *StepsContext) theManagedFileContains(doc *godog.DocString) error {
	return os.WriteFile(s.tc.ManagedFile, []byte(doc.Content+"\n"), 0o644)
}

// Authentication steps

func (s *StepsContext) iAuthenticateAs(username, password string) error {
	req, err := http.NewRequest(http.MethodPost, s.tc.ServerURL+"/authenticate", nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(username, password)
	if err := s.send(req); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		var token struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(s.responseBody, &token); err != nil {
			return err
		}
		s.authToken = token.Token
	}
	return nil
}

func (s *StepsContext) iAmAuthenticatedAs(username, password string) error {
	if err := s.iAuthenticateAs(username, password); err != nil {
		return err
	}
	if s.authToken == "" {
		return fmt.Errorf("authentication as %s failed with %d: %s", username, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) iShouldReceiveABearerToken() error {
	if strings.Count(s.authToken, ".") != 2 {
		return fmt.Errorf("expected a JWT, got %q", s.authToken)
	}
	return nil
}

func (s *StepsContext) iRequest(path string) error {
	return s.do(http.MethodGet, path, nil, true)
}

func (s *StepsContext) iRequestWithoutAToken(path string) error {
	return s.do(http.MethodGet, path, nil, false)
}

// Configuration steps

func (s *StepsContext) configurationPath() string {
	return fmt.Sprintf("/resources/%d/configuration", s.tc.ManagedResourceID)
}

func (s *StepsContext) iRequestTheLatestConfiguration() error {
	return s.do(http.MethodGet, s.configurationPath(), nil, true)
}

func (s *StepsContext) iSetProperty(name, value string) error {
	if err := s.do(http.MethodPost, s.configurationPath()+"/live", nil, true); err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusOK {
		return fmt.Errorf("loading live configuration failed with %d: %s", s.response.StatusCode, s.responseBody)
	}
	var c model.Configuration
	if err := json.Unmarshal(s.responseBody, &c); err != nil {
		return err
	}
	c.Put(name, value)

	body, err := json.Marshal(map[string]interface{}{"properties": c.Properties})
	if err != nil {
		return err
	}
	return s.do(http.MethodPut, s.configurationPath()+"?from=structured", body, true)
}

func (s *StepsContext) theManagedFileShouldEventuallyContain(text string) error {
	return eventually(func() error {
		data, err := os.ReadFile(s.tc.ManagedFile)
		if err != nil {
			return err
		}
		if !strings.Contains(string(data), text) {
			return fmt.Errorf("%s does not contain %q:\n%s", s.tc.ManagedFile, text, data)
		}
		return nil
	})
}

func (s *StepsContext) theLatestUpdateShouldEventuallyBe(status string) error {
	return eventually(func() error {
		if err := s.do(http.MethodGet, s.configurationPath()+"/updates?sort=ctime:desc&pageSize=1", nil, true); err != nil {
			return err
		}
		var page struct {
			Items []model.ResourceConfigurationUpdate `json:"items"`
		}
		if err := json.Unmarshal(s.responseBody, &page); err != nil {
			return err
		}
		if len(page.Items) == 0 {
			return fmt.Errorf("no configuration updates recorded")
		}
		if got := page.Items[0].Status.String(); got != status {
			return fmt.Errorf("latest update is %s (%s), expected %s", got, page.Items[0].ErrorMessage, status)
		}
		return nil
	})
}

func (s *StepsContext) theConfigurationShouldHaveProperties(table *godog.Table) error {
	var c model.Configuration
	if err := json.Unmarshal(s.responseBody, &c); err != nil {
		return err
	}
	want := model.Properties{}
	for _, row := range table.Rows[1:] {
		want[row.Cells[0].Value] = row.Cells[1].Value
	}
	got := model.Properties{}
	for name := range want {
		got[name] = c.Properties[name]
	}
	if diff := cmp.Diff(want, got); diff != "" {
		return fmt.Errorf("configuration properties mismatch (-want +got):\n%s", diff)
	}
	return nil
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expected int) error {
	if s.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theResponseShouldContain(text string) error {
	if !bytes.Contains(s.responseBody, []byte(text)) {
		return fmt.Errorf("response does not contain %q: %s", text, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldBe(field, expected string) error {
	var body map[string]interface{}
	if err := json.Unmarshal(s.responseBody, &body); err != nil {
		return err
	}
	if got := fmt.Sprint(body[field]); got != expected {
		return fmt.Errorf("expected %s to be %q, got %q", field, expected, got)
	}
	return nil
}

// helpers

func (s *StepsContext) do(method, path string, body []byte, authenticated bool) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated && s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}
	return s.send(req)
}

func (s *StepsContext) send(req *http.Request) error {
	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return err
}

// eventually retries check for up to ten seconds.
func eventually(check func() error) error {
	deadline := time.Now().Add(10 * time.Second)
	for {
		err := check()
		if err == nil || time.Now().After(deadline) {
			return err
		}
		time.Sleep(200 * time.Millisecond)
	}
}
