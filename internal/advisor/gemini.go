package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient generates advisories using the Gemini generateContent REST
// endpoint. The request carries a strict JSON response schema so the model
// replies with exactly {summary, advice}; anything else is a parse failure.
type GeminiClient struct {
	baseURL    string // overridable for tests
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiClient creates a Gemini-backed advisory generator.
func NewGeminiClient(apiKey, model string, httpClient *http.Client) *GeminiClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GeminiClient{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

// generateRequest mirrors the generateContent request body, limited to the
// fields this client uses.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string       `json:"responseMimeType"`
	ResponseSchema   schemaObject `json:"responseSchema"`
}

type schemaObject struct {
	Type       string                  `json:"type"`
	Properties map[string]schemaObject `json:"properties,omitempty"`
	Items      *schemaObject           `json:"items,omitempty"`
	Required   []string                `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// advisorySchema constrains the model output to the Advisory contract.
var advisorySchema = schemaObject{
	Type: "OBJECT",
	Properties: map[string]schemaObject{
		"summary": {Type: "STRING"},
		"advice":  {Type: "ARRAY", Items: &schemaObject{Type: "STRING"}},
	},
	Required: []string{"summary", "advice"},
}

// Generate submits the prompt and parses the structured advisory reply.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (*Advisory, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, fmt.Errorf("gemini: api key not configured")
	}

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   advisorySchema,
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling generate request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(c.baseURL, "/"), c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gemini: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calling gemini: unexpected status %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding gemini response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: empty response")
	}

	var advisory Advisory
	if err := json.Unmarshal([]byte(result.Candidates[0].Content.Parts[0].Text), &advisory); err != nil {
		return nil, fmt.Errorf("parsing advisory payload: %w", err)
	}
	if advisory.Summary == "" {
		return nil, fmt.Errorf("gemini: advisory missing summary")
	}
	return &advisory, nil
}
