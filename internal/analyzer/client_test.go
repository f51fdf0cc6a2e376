package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// capturedRequest records the headers and body of the last request a stub
// client saw.
type capturedRequest struct {
	header http.Header
	body   []byte
}

func stubClient(t *testing.T, status int, body string, capture *capturedRequest) *Client {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	c, err := NewClient("gemini-2.5-pro", 1024, 100)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	c.HTTPClient = &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if capture != nil {
				capture.header = req.Header.Clone()
				capture.body, _ = io.ReadAll(req.Body)
				req.Body.Close()
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(bytes.NewReader([]byte(body))),
				Header:     http.Header{"Content-Type": []string{"application/json"}},
			}, nil
		}),
	}
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := NewClient("gemini-2.5-pro", 1024, 1); err == nil {
		t.Fatal("expected error when GEMINI_API_KEY is unset")
	}
}

func TestGenerateSuccess(t *testing.T) {
	respBody := `{
		"candidates": [{"content": {"parts": [{"text": "{\"rocks\""}, {"text": ":[]}"}]}, "finishReason": "STOP"}],
		"usageMetadata": {"promptTokenCount": 120, "candidatesTokenCount": 45}
	}`

	var captured capturedRequest
	c := stubClient(t, 200, respBody, &captured)

	text, usage, err := c.Generate(context.Background(), testImage(), "describe the rocks",
		map[string]any{"type": "OBJECT"}, 32000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `{"rocks":[]}` {
		t.Errorf("expected concatenated parts, got %q", text)
	}
	if usage.InputTokens != 120 || usage.OutputTokens != 45 {
		t.Errorf("usage mismatch: %+v", usage)
	}

	if got := captured.header.Get("x-goog-api-key"); got != "test-key" {
		t.Errorf("expected api key header, got %q", got)
	}

	var req map[string]any
	if err := json.Unmarshal(captured.body, &req); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}

	genCfg, _ := req["generationConfig"].(map[string]any)
	if genCfg["responseMimeType"] != "application/json" {
		t.Errorf("expected JSON response mime type, got %v", genCfg["responseMimeType"])
	}
	thinking, _ := genCfg["thinkingConfig"].(map[string]any)
	if thinking["thinkingBudget"] != float64(32000) {
		t.Errorf("expected thinking budget passed through, got %v", thinking["thinkingBudget"])
	}

	contents := req["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	if len(parts) != 2 {
		t.Fatalf("expected image part and text part, got %d parts", len(parts))
	}
	if _, ok := parts[0].(map[string]any)["inline_data"]; !ok {
		t.Error("expected first part to carry inline image data")
	}
}

func TestGenerateAPIError(t *testing.T) {
	c := stubClient(t, 400, `{"error": {"code": 400, "status": "INVALID_ARGUMENT", "message": "bad schema"}}`, nil)

	_, _, err := c.Generate(context.Background(), nil, "prompt", nil, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "bad schema"; !bytes.Contains([]byte(err.Error()), []byte(want)) {
		t.Errorf("expected error to carry the API message, got %v", err)
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	c := stubClient(t, 200, `{"candidates": []}`, nil)

	_, _, err := c.Generate(context.Background(), nil, "prompt", nil, 0)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestGenerateTextOnlyOmitsInlineData(t *testing.T) {
	var captured capturedRequest
	c := stubClient(t, 200, `{"candidates": [{"content": {"parts": [{"text": "{}"}]}}]}`, &captured)

	if _, _, err := c.Generate(context.Background(), nil, "compare these", nil, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var req map[string]any
	if err := json.Unmarshal(captured.body, &req); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	parts := req["contents"].([]any)[0].(map[string]any)["parts"].([]any)
	if len(parts) != 1 {
		t.Fatalf("expected a single text part, got %d", len(parts))
	}
}
