package qa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default values for the HuggingFace provider.
const (
	defaultHuggingFaceBaseURL    = "https://api-inference.huggingface.co"
	defaultHuggingFaceModel      = "timpal0l/mdeberta-v3-base-squad2"
	defaultHuggingFaceRetryDelay = 2 * time.Second
)

// qaRequest represents the Inference API request body for question answering.
type qaRequest struct {
	Inputs qaInputs `json:"inputs"`
}

// qaInputs holds the question and context passage for one inference call.
type qaInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// qaResponse represents the Inference API response body for question answering.
type qaResponse struct {
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Answer string  `json:"answer"`
}

// hfErrorResponse represents an error response from the Inference API. The
// estimated_time field is populated on cold-start 503 responses while the
// model is loading.
type hfErrorResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// HuggingFaceProvider implements Answerer using the HuggingFace Inference API.
type HuggingFaceProvider struct {
	httpClient *http.Client
	apiToken   string
	model      string
	baseURL    string
	maxRetries int
	retryDelay time.Duration
}

// Compile-time interface check.
var _ Answerer = (*HuggingFaceProvider)(nil)

// HuggingFaceConfig holds the parameters needed to create a HuggingFace
// provider. This is defined in the qa package to avoid importing the config
// package.
type HuggingFaceConfig struct {
	// APIToken is the HuggingFace API token. Empty is allowed; the public
	// Inference API accepts anonymous calls at a lower rate limit.
	APIToken string
	// Model is the model identifier (e.g., "timpal0l/mdeberta-v3-base-squad2").
	Model string
	// BaseURL is the API base URL (empty means default).
	BaseURL string
}

// NewHuggingFaceProvider creates a new HuggingFace question-answering
// provider.
//
// The provider posts question/context pairs to the hosted inference endpoint
// for the configured model and handles retry logic for transient API errors,
// including the 503 returned while the model is still loading.
func NewHuggingFaceProvider(cfg HuggingFaceConfig, timeout time.Duration, maxRetries int) *HuggingFaceProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultHuggingFaceBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultHuggingFaceModel
	}

	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	if maxRetries < 0 {
		maxRetries = 0
	}

	return &HuggingFaceProvider{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		apiToken:   cfg.APIToken,
		model:      model,
		baseURL:    baseURL,
		maxRetries: maxRetries,
		retryDelay: defaultHuggingFaceRetryDelay,
	}
}

// Answer extracts the answer to question from the context passage using the
// hosted model. Transient errors (5xx and 429) are retried up to maxRetries
// times with increasing backoff.
func (p *HuggingFaceProvider) Answer(ctx context.Context, question, passage string) (Answer, error) {
	req := qaRequest{
		Inputs: qaInputs{
			Question: question,
			Context:  passage,
		},
	}

	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			delay := p.retryDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return Answer{}, fmt.Errorf("huggingface: context cancelled during retry wait: %w", ctx.Err())
			case <-time.After(delay):
			}
		}

		answer, err := p.doRequest(ctx, req)
		if err == nil {
			return answer, nil
		}

		// Only retry on transient errors (5xx, 429).
		if !isTransientError(err) {
			return Answer{}, err
		}
		lastErr = err
	}

	return Answer{}, fmt.Errorf("huggingface: exhausted %d retries: %w", p.maxRetries, lastErr)
}

// Provider returns the name of the inference provider.
func (p *HuggingFaceProvider) Provider() string {
	return "huggingface"
}

// Model returns the model identifier being used.
func (p *HuggingFaceProvider) Model() string {
	return p.model
}

// doRequest performs a single API request to the hosted inference endpoint.
func (p *HuggingFaceProvider) doRequest(ctx context.Context, req qaRequest) (Answer, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Answer{}, fmt.Errorf("huggingface: failed to marshal request: %w", err)
	}

	endpoint := p.baseURL + "/models/" + p.model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Answer{}, fmt.Errorf("huggingface: failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiToken)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return Answer{}, fmt.Errorf("huggingface: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return Answer{}, fmt.Errorf("huggingface: failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Answer{}, parseHuggingFaceAPIError(resp.StatusCode, respBody)
	}

	var qaResp qaResponse
	if err := json.Unmarshal(respBody, &qaResp); err != nil {
		return Answer{}, fmt.Errorf("huggingface: failed to unmarshal response: %w", err)
	}

	return Answer{
		Text:  qaResp.Answer,
		Score: qaResp.Score,
		Start: qaResp.Start,
		End:   qaResp.End,
	}, nil
}

// parseHuggingFaceAPIError parses an Inference API error from the response
// status code and body.
func parseHuggingFaceAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Provider:   "huggingface",
		StatusCode: statusCode,
		Message:    string(body),
	}

	var errResp hfErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		apiErr.Message = errResp.Error
		if errResp.EstimatedTime > 0 {
			apiErr.EstimatedTime = time.Duration(errResp.EstimatedTime * float64(time.Second))
		}
	}

	return apiErr
}
