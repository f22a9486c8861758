// Package gemini provides a client for the Google Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amondal/halchat/domain"
)

// Default generation parameters sent on every request.
const (
	defaultTemperature     = 0.7
	defaultTopP            = 0.9
	defaultMaxOutputTokens = 2048
)

// FinishReasonSafety is the finish reason reported when the upstream withholds
// content due to its safety filters.
const FinishReasonSafety = "SAFETY"

// Client is the Gemini API client.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Gemini client for a specific model.
func NewClient(baseURL, model, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Part is a single text fragment of a content block.
type Part struct {
	Text string `json:"text"`
}

// Content is one role-tagged message in the conversation.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// SystemInstruction is the behavioral preamble sent alongside the transcript.
type SystemInstruction struct {
	Parts []Part `json:"parts"`
}

// GenerationConfig holds the sampling parameters for a request.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// DefaultGenerationConfig returns the fixed sampling parameters used for every
// completion.
func DefaultGenerationConfig() *GenerationConfig {
	return &GenerationConfig{
		Temperature:     defaultTemperature,
		TopP:            defaultTopP,
		MaxOutputTokens: defaultMaxOutputTokens,
	}
}

// GenerateContentRequest represents the generateContent request body.
type GenerateContentRequest struct {
	Contents          []Content          `json:"contents"`
	SystemInstruction *SystemInstruction `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig  `json:"generationConfig,omitempty"`
}

// Candidate is one generated completion candidate.
type Candidate struct {
	Content      *Content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// GenerateContentResponse represents the generateContent response body.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// APIError represents the error details.
type APIError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// GenerateContent sends a single synchronous completion request. A failure to
// reach the upstream is returned as *domain.TransportError; a non-200 status
// as *domain.UpstreamError. There are no retries.
func (c *Client) GenerateContent(ctx context.Context, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamErrorMessage(resp.StatusCode, respBody),
		}
	}

	var result GenerateContentResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}

// endpoint builds the generateContent URL with the API key as a query
// parameter, which is how the Gemini REST API authenticates.
func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))
}

// upstreamErrorMessage extracts the error message from a non-200 body, falling
// back to a generic status string when the body is not a recognizable error.
func upstreamErrorMessage(statusCode int, body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return fmt.Sprintf("API Error %d", statusCode)
}
