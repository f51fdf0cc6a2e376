package analyzer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/time/rate"

	"github.com/bryancraven/rock-photo/internal/imagefile"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// Usage reports token consumption for one model call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Generator is the external model capability: image plus prompt plus
// response schema in, raw text out. The thinking budget is an opaque tuning
// knob passed through to the model, not interpreted locally.
type Generator interface {
	Generate(ctx context.Context, img *imagefile.Image, prompt string, responseSchema map[string]any, thinkingBudget int) (string, Usage, error)
}

// Client calls the Gemini generateContent API.
type Client struct {
	APIKey          string
	Model           string
	MaxOutputTokens int
	HTTPClient      *http.Client

	limiter *rate.Limiter
}

// NewClient creates a Client using the GEMINI_API_KEY env var. A missing key
// is a configuration error surfaced before any network call. rps caps
// request starts per second across all calls through this client.
func NewClient(model string, maxOutputTokens int, rps float64) (*Client, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set (put it in .env or the environment)")
	}
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		APIKey:          key,
		Model:           model,
		MaxOutputTokens: maxOutputTokens,
		HTTPClient:      &http.Client{},
		limiter:         rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

type apiRequest struct {
	Contents         []apiContent        `json:"contents"`
	GenerationConfig apiGenerationConfig `json:"generationConfig"`
}

type apiContent struct {
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text       string         `json:"text,omitempty"`
	InlineData *apiInlineData `json:"inline_data,omitempty"`
}

type apiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type apiGenerationConfig struct {
	ResponseMIMEType string             `json:"responseMimeType"`
	ResponseSchema   map[string]any     `json:"responseSchema,omitempty"`
	MaxOutputTokens  int                `json:"maxOutputTokens,omitempty"`
	ThinkingConfig   *apiThinkingConfig `json:"thinkingConfig,omitempty"`
}

type apiThinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type apiResponse struct {
	Candidates    []apiCandidate   `json:"candidates"`
	UsageMetadata apiUsageMetadata `json:"usageMetadata"`
	Error         *apiError        `json:"error,omitempty"`
}

type apiCandidate struct {
	Content      apiContent `json:"content"`
	FinishReason string     `json:"finishReason"`
}

type apiUsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
}

type apiError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Generate submits one request and returns the raw response text. img may be
// nil for text-only calls (the comparison request). No retries: any failure
// is terminal for this call.
func (c *Client) Generate(ctx context.Context, img *imagefile.Image, prompt string, responseSchema map[string]any, thinkingBudget int) (string, Usage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", Usage{}, err
	}

	var parts []apiPart
	if img != nil {
		parts = append(parts, apiPart{InlineData: &apiInlineData{
			MimeType: img.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(img.Data),
		}})
	}
	parts = append(parts, apiPart{Text: prompt})

	reqBody := apiRequest{
		Contents: []apiContent{{Parts: parts}},
		GenerationConfig: apiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema,
			MaxOutputTokens:  c.MaxOutputTokens,
		},
	}
	if thinkingBudget > 0 {
		reqBody.GenerationConfig.ThinkingConfig = &apiThinkingConfig{ThinkingBudget: thinkingBudget}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", Usage{}, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf(geminiEndpoint, c.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", Usage{}, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", Usage{}, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", Usage{}, fmt.Errorf("reading response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", Usage{}, fmt.Errorf("parsing response: %w", err)
	}

	if apiResp.Error != nil {
		return "", Usage{}, fmt.Errorf("API error (%s): %s", apiResp.Error.Status, apiResp.Error.Message)
	}

	if resp.StatusCode != 200 {
		return "", Usage{}, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", Usage{}, fmt.Errorf("empty response from API")
	}

	usage := Usage{
		InputTokens:  apiResp.UsageMetadata.PromptTokenCount,
		OutputTokens: apiResp.UsageMetadata.CandidatesTokenCount,
	}

	var text strings.Builder
	for _, p := range apiResp.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return text.String(), usage, nil
}
