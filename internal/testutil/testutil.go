// Package testutil provides HTTP and fixture helpers shared by handler and
// command tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/withme-travel/withme/internal/ideas"
	"github.com/withme-travel/withme/internal/models"
)

// AssertStatusCode checks if the response has the expected status code.
func AssertStatusCode(t *testing.T, rr *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if rr.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, rr.Code, rr.Body.String())
	}
}

// AssertJSONContains checks if the JSON response contains expected key-value pairs.
func AssertJSONContains(t *testing.T, body []byte, key string, expected interface{}) {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if result[key] != expected {
		t.Errorf("expected %s to be %v, got %v", key, expected, result[key])
	}
}

// NewTestRequest creates a new HTTP request for testing.
func NewTestRequest(method, path string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewTestRequestWithJSON creates a new HTTP request with JSON body.
func NewTestRequestWithJSON(t *testing.T, method, path string, data interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return NewTestRequest(method, path, strings.NewReader(string(body)))
}

// ParseJSONResponse parses a JSON response body into a map.
func ParseJSONResponse(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v", err)
	}
	return result
}

// DecodeIdeas reads the "ideas" array out of a generation response.
func DecodeIdeas(t *testing.T, body []byte) []ideas.Idea {
	t.Helper()
	var result struct {
		Ideas []ideas.Idea `json:"ideas"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to parse ideas response: %v", err)
	}
	return result.Ideas
}

// NewDestination returns a destination fixture with a fresh id and a slug
// derived from name.
func NewDestination(name, description string) *models.Destination {
	return &models.Destination{
		ID:          uuid.New(),
		Name:        name,
		Slug:        strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-"),
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// SeededGenerator returns a generator whose output is fixed by seed.
func SeededGenerator(seed int64) *ideas.Generator {
	return ideas.NewGenerator(ideas.NewSeededSource(seed))
}
