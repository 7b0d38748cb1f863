package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"mashup/internal/domain/entity"
	"mashup/internal/domain/repository"
	"mashup/internal/infrastructure/metrics"
)

// CredentialEnvVars is the lookup chain for the API key, first match wins.
var CredentialEnvVars = []string{"OPENAI_KEY", "OPENAI_API_KEY", "OPENAI_TOKEN"}

// CredentialFromEnv returns the first non-empty credential from the
// recognized environment variable names.
func CredentialFromEnv() string {
	for _, name := range CredentialEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

type OpenAIGenerator struct {
	apiKey      string
	baseURL     string
	model       string
	client      *http.Client
	temperature float64
	maxTokens   int
}

// NewOpenAIGenerator builds a chat-completions client. An empty apiKey is
// allowed: the generator stays permanently unready and every call fails fast
// with a configuration error instead of hitting the network.
func NewOpenAIGenerator(apiKey, baseURL, model string, temperature float64, maxTokens int) repository.ConceptGenerator {
	return &OpenAIGenerator{
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		client:      &http.Client{Timeout: 2 * time.Minute},
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (g *OpenAIGenerator) Ready() bool {
	return g.apiKey != ""
}

func (g *OpenAIGenerator) GenerateConcept(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !g.Ready() {
		metrics.IncError("llm", "no_credential")
		return "", entity.NewConfigurationError("OpenAI client is not initialized. Please check your API key and environment variables.")
	}

	metrics.IncLLMRequest(g.model)

	request := map[string]interface{}{
		"model": g.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": systemPrompt,
			},
			{
				"role":    "user",
				"content": userPrompt,
			},
		},
		"temperature": g.temperature,
		"max_tokens":  g.maxTokens,
	}

	response, err := g.makeRequest(ctx, request)
	if err != nil {
		metrics.IncError("llm", "make_request")
		return "", entity.NewUpstreamError(fmt.Errorf("failed to make OpenAI request: %w", err))
	}

	concept, err := g.parseResponse(response)
	if err != nil {
		metrics.IncError("llm", "parse_response")
		return "", entity.NewUpstreamError(fmt.Errorf("failed to parse OpenAI response: %w", err))
	}

	return concept, nil
}

func (g *OpenAIGenerator) makeRequest(ctx context.Context, request map[string]interface{}) (map[string]interface{}, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		err := resp.Body.Close()
		if err != nil {
			log.Printf("close body err: %s", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai api error: %d - %s", resp.StatusCode, string(body))
	}

	var response map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return response, nil
}

func (g *OpenAIGenerator) parseResponse(response map[string]interface{}) (string, error) {
	choices, ok := response["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", fmt.Errorf("invalid response format: no choices")
	}

	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid response format: invalid choice")
	}

	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid response format: no message")
	}

	content, ok := message["content"].(string)
	if !ok {
		return "", fmt.Errorf("invalid response format: no content")
	}

	return content, nil
}
