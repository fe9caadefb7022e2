package models

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"ProjectAdminAI/app/restclient"
)

const (
	endpoint          = "/v1/chat/completions"
	embeddingEndpoint = "/v1/embeddings"
)

var _ Interface = &LLMClient{}

type LLMClient struct {
	restClient      restclient.Interface
	model           string
	embeddingsModel string
}

func NewLLMClient(model, embModel string) *LLMClient {
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:1234"
	}
	return &LLMClient{
		restClient:      restclient.NewRestClient(baseURL, nil),
		model:           model,
		embeddingsModel: embModel,
	}
}

func NewLLMClientWithRest(rest restclient.Interface, model, embModel string) *LLMClient {
	return &LLMClient{restClient: rest, model: model, embeddingsModel: embModel}
}

func (mc *LLMClient) Respond(ctx context.Context, messages []Message) (string, error) {
	payload := requestPayload{
		Model:       mc.model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   -1,
	}

	body, status, err := mc.restClient.Post(ctx, endpoint, payload, nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("llm returned status %d", status)
	}

	var response ResponseLLM
	if err = json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode llm response: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}
	return response.Choices[0].Message.Content, nil
}

func (mc *LLMClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	payload := embeddingRequestPayload{
		Model: mc.embeddingsModel,
		Input: text,
	}

	body, status, err := mc.restClient.Post(ctx, embeddingEndpoint, payload, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("embeddings returned status %d", status)
	}

	var response embeddingResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	if len(response.Data) == 0 {
		return nil, fmt.Errorf("embeddings returned no data")
	}
	return response.Data[0].Embedding, nil
}
