package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quantum5ocial/server/internal/metrics"
)

const (
	geminiBaseURL             = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultGeminiModel        = "gemini-embedding-001"
	geminiEmbeddingDimensions = 768
	geminiEmbeddingTaskType   = "SEMANTIC_SIMILARITY"
)

// shared HTTP client for Gemini API calls
var geminiHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type geminiContentPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiContentPart `json:"parts"`
}

type geminiEmbedRequest struct {
	Model                string        `json:"model"`
	Content              geminiContent `json:"content"`
	TaskType             string        `json:"taskType,omitempty"`
	OutputDimensionality int           `json:"outputDimensionality,omitempty"`
}

type geminiBatchEmbedRequest struct {
	Requests []geminiEmbedRequest `json:"requests"`
}

type geminiEmbedding struct {
	Values []float32 `json:"values"`
}

type geminiBatchEmbedResponse struct {
	Embeddings []geminiEmbedding `json:"embeddings"`
}

type GeminiConfig struct {
	APIKey string
	Model  string // e.g., "gemini-embedding-001"
}

type GeminiEmbedder struct {
	config     GeminiConfig
	httpClient *http.Client
}

func NewGeminiEmbedder(config GeminiConfig) *GeminiEmbedder {
	if config.Model == "" {
		config.Model = defaultGeminiModel
	}

	return &GeminiEmbedder{
		config:     config,
		httpClient: geminiHTTPClient,
	}
}

func (e *GeminiEmbedder) Provider() Provider {
	return ProviderGemini
}

func (e *GeminiEmbedder) Dimensions() int {
	return geminiEmbeddingDimensions
}

func (e *GeminiEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := e.GenerateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	return embeddings[0], nil
}

func (e *GeminiEmbedder) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	start := time.Now()

	embeddings, err := e.generateEmbeddings(ctx, texts)

	status := "ok"
	if err != nil {
		status = "error"
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(string(ProviderGemini), e.config.Model, status).Inc()
	metrics.EmbeddingRequestDuration.WithLabelValues(string(ProviderGemini), e.config.Model).Observe(time.Since(start).Seconds())

	return embeddings, err
}

func (e *GeminiEmbedder) generateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	requests := make([]geminiEmbedRequest, len(texts))
	for i, text := range texts {
		requests[i] = geminiEmbedRequest{
			Model:                fmt.Sprintf("models/%s", e.config.Model),
			Content:              geminiContent{Parts: []geminiContentPart{{Text: text}}},
			TaskType:             geminiEmbeddingTaskType,
			OutputDimensionality: geminiEmbeddingDimensions,
		}
	}

	jsonData, err := json.Marshal(geminiBatchEmbedRequest{Requests: requests})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:batchEmbedContents", geminiBaseURL, e.config.Model)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", e.config.APIKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var embResp geminiBatchEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(embResp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(embResp.Embeddings))
	}

	embeddings := make([][]float32, len(embResp.Embeddings))
	for i, emb := range embResp.Embeddings {
		embeddings[i] = emb.Values
	}

	return embeddings, nil
}
