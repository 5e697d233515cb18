package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const interpretPrompt = `Eres un normalizador de ubicaciones en España. Dado un lugar escrito por un usuario, devuelve JSON estricto:
{"city":"<ciudad o capital de CCAA>"}
Reglas:
- Si es una Comunidad Autónoma, devuelve su capital (ej: "Navarra" -> "Pamplona", "País Vasco" -> "Vitoria-Gasteiz").
- Si es una ciudad conocida, devuélvela tal cual (respetando acentos).
- No añadas aeropuertos ni países ni provincias, solo el nombre de la ciudad.
- No escribas comentarios, solo JSON.

lugar="%s"`

// LLMClient asks an OpenAI-compatible chat completions endpoint to normalize
// a location name. It is only consulted after the local tables miss.
type LLMClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewLLMClient builds a client for api.openai.com. model defaults to
// gpt-4o-mini when empty.
func NewLLMClient(apiKey, model string) *LLMClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &LLMClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    "https://api.openai.com",
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// NewLLMClientWithBaseURL is used by tests to point at a stub server.
func NewLLMClientWithBaseURL(apiKey, model, baseURL string) *LLMClient {
	c := NewLLMClient(apiKey, model)
	c.baseURL = baseURL
	return c
}

// Configured reports whether an API key is present.
func (c *LLMClient) Configured() bool {
	return c.apiKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NormalizeLocation returns the canonical city name for the input, or an
// error when the model is unavailable or answers with something that is not
// the expected strict JSON.
func (c *LLMClient) NormalizeLocation(ctx context.Context, input string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("interpret API key not configured")
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(interpretPrompt, input)},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("interpret API error (%d): %s", resp.StatusCode, string(body))
	}

	var decoded chatResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("failed to parse interpret response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("empty interpret response")
	}

	var answer struct {
		City string `json:"city"`
	}
	if err := json.Unmarshal([]byte(decoded.Choices[0].Message.Content), &answer); err != nil {
		return "", fmt.Errorf("interpret answer is not strict JSON: %w", err)
	}
	if answer.City == "" {
		return "", fmt.Errorf("interpret answer has no city")
	}
	return answer.City, nil
}
