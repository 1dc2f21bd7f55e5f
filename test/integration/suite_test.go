//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	stack        *stack
	client       *http.Client
	response     *http.Response
	responseBody []byte
}

// newTestContext creates a new test context with sensible defaults.
func newTestContext() *testContext {
	return &testContext{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// reset stops the running stack and clears response state.
func (tc *testContext) reset() {
	if tc.stack != nil {
		tc.stack.Close()
	}

	tc.stack = nil
	tc.response = nil
	tc.responseBody = nil
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := newTestContext()

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the gateway is running$`, tc.theGatewayIsRunning)
	ctx.Step(`^the "([^"]*)" upstream answers "([^"]*)" with status (\d+):$`, tc.theUpstreamAnswers)
	ctx.Step(`^the "([^"]*)" upstream is down$`, tc.theUpstreamIsDown)
	ctx.Step(`^I request GET "([^"]*)"$`, tc.iRequestGET)
	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
	ctx.Step(`^the response should be:$`, tc.theResponseShouldBe)
	ctx.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, tc.theJSONFieldShouldBe)
	ctx.Step(`^the "([^"]*)" upstream should have received (\d+) requests?$`, tc.theUpstreamShouldHaveReceived)
	ctx.Step(`^the last "([^"]*)" request should have query "([^"]*)" set to "([^"]*)"$`, tc.theLastRequestShouldHaveQuery)
}

// theGatewayIsRunning starts the gateway and its stub upstreams.
func (tc *testContext) theGatewayIsRunning() error {
	s, err := startStack()
	if err != nil {
		return err
	}

	tc.stack = s

	return nil
}

func (tc *testContext) theUpstreamAnswers(name, path string, status int, body *godog.DocString) error {
	u, err := tc.stack.upstream(name)
	if err != nil {
		return err
	}

	u.answer(path, status, body.Content)

	return nil
}

func (tc *testContext) theUpstreamIsDown(name string) error {
	u, err := tc.stack.upstream(name)
	if err != nil {
		return err
	}

	u.down()

	return nil
}

// iRequestGET makes a GET request to the gateway.
func (tc *testContext) iRequestGET(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.stack.gateway.URL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp

	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// theResponseStatusShouldBe asserts the response status code.
func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return errors.New("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

// theResponseShouldContain asserts the response body contains the given text.
func (tc *testContext) theResponseShouldContain(text string) error {
	if tc.responseBody == nil {
		return errors.New("no response body")
	}

	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

// theResponseShouldBe compares the body with the expected JSON, ignoring layout.
func (tc *testContext) theResponseShouldBe(expected *godog.DocString) error {
	var want, got any

	err := json.Unmarshal([]byte(expected.Content), &want)
	if err != nil {
		return fmt.Errorf("expected body is not JSON: %w", err)
	}

	err = json.Unmarshal(tc.responseBody, &got)
	if err != nil {
		return fmt.Errorf("response body is not JSON: %w\nBody: %s", err, tc.responseBody)
	}

	wantJSON, _ := json.Marshal(want)
	gotJSON, _ := json.Marshal(got)

	if string(wantJSON) != string(gotJSON) {
		return fmt.Errorf("expected body %s, got %s", wantJSON, gotJSON)
	}

	return nil
}

// theJSONFieldShouldBe looks up a dotted path such as "error.code" or
// "playlist.0.name" and compares its string form.
func (tc *testContext) theJSONFieldShouldBe(path, expected string) error {
	var doc any

	err := json.Unmarshal(tc.responseBody, &doc)
	if err != nil {
		return fmt.Errorf("response body is not JSON: %w", err)
	}

	value, err := lookup(doc, path)
	if err != nil {
		return err
	}

	actual := fmt.Sprint(value)
	if value == nil {
		actual = "null"
	}

	if actual != expected {
		return fmt.Errorf("field %q: expected %q, got %q.\nBody: %s", path, expected, actual, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theUpstreamShouldHaveReceived(name string, count int) error {
	u, err := tc.stack.upstream(name)
	if err != nil {
		return err
	}

	if hits := u.hits(); hits != count {
		return fmt.Errorf("upstream %q received %d requests, expected %d", name, hits, count)
	}

	return nil
}

func (tc *testContext) theLastRequestShouldHaveQuery(name, key, expected string) error {
	u, err := tc.stack.upstream(name)
	if err != nil {
		return err
	}

	last := u.last()
	if last == nil {
		return fmt.Errorf("upstream %q received no requests", name)
	}

	if actual := last.Query().Get(key); actual != expected {
		return fmt.Errorf("upstream %q query %q: expected %q, got %q", name, key, expected, actual)
	}

	return nil
}

func lookup(doc any, path string) (any, error) {
	current := doc

	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			current = node[part]
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index %q out of range in %q", part, path)
			}

			current = node[i]
		default:
			return nil, fmt.Errorf("cannot descend into %q of %q", part, path)
		}
	}

	return current, nil
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
