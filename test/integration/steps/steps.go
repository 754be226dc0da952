//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

func (tc *TestContext) doRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	return err
}

// lookupField resolves a dot-separated path in the JSON response body.
// Numeric segments index into arrays.
func (tc *TestContext) lookupField(path string) (any, error) {
	var document any
	if err := json.Unmarshal(tc.responseBody, &document); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	current := document
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in path %q", segment, path)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at %q", path, segment)
		}
	}
	return current, nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	tc := GetTestContext(ctx)
	return tc.doRequest(method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	return tc.doRequest(method, path, []byte(body.Content))
}

func iSetHeaderTo(ctx context.Context, key, value string) error {
	tc := GetTestContext(ctx)
	tc.requestHeaders[key] = value
	return nil
}

// iAmRegisteredAs registers a fresh user through the API and keeps the
// returned access token for subsequent requests.
func iAmRegisteredAs(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)

	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"name":     "测试用户",
		"password": "s3cret-password",
	})
	if err != nil {
		return err
	}

	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", payload); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	token, err := tc.lookupField("access_token")
	if err != nil {
		return err
	}
	tokenStr, ok := token.(string)
	if !ok || tokenStr == "" {
		return fmt.Errorf("registration returned no access token")
	}
	tc.accessToken = tokenStr
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, substring string) error {
	tc := GetTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), substring) {
		return fmt.Errorf("response does not contain %q: %s", substring, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	value, err := tc.lookupField(path)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	_, err := tc.lookupField(path)
	return err
}

func theResponseListShouldHaveItems(ctx context.Context, path string, expected int) error {
	tc := GetTestContext(ctx)
	value, err := tc.lookupField(path)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list", path)
	}
	if len(list) != expected {
		return fmt.Errorf("expected %d items in %q, got %d", expected, path, len(list))
	}
	return nil
}
