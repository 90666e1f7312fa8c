// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud implements the chat-completions client.
//
// The client speaks the OpenAI-compatible chat-completions protocol used by
// OpenRouter and similar gateways: one HTTPS POST per completion, bearer
// credential in the Authorization header, JSON request and response bodies.
// There are no retries and no streaming; a reply is awaited as one unit.
package cloud

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Configuration constants for the completions API.
const (
	// DefaultBaseURL is the default API base URL.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "openai/gpt-4o-mini"

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit

	// userAgent identifies this client on the wire.
	userAgent = "parley/0.1.0"
)

// sharedHTTPClient is used for all completion requests. Connection pooling
// across requests; no client-level timeout, the transport's defaults apply
// and a hung request is abandoned only when its context is canceled.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNotConfigured indicates the API key is not set. It is returned
	// before any network activity takes place.
	ErrNotConfigured = errors.New("API key not configured")

	// ErrNoChoices indicates a success response carried no completion
	// choices, so there is no reply to extract.
	ErrNoChoices = errors.New("no completion choices returned")
)

// APIError represents a non-success response from the completions API.
// Error() returns the bare message so callers can surface it to the user
// verbatim; status and code are available for programmatic handling.
type APIError struct {
	Status  int
	Code    string
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatMessage represents a single message in a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // The message content
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) ChatMessage {
	return ChatMessage{Role: "user", Content: content}
}

// NewAssistantMessage creates a new assistant message.
func NewAssistantMessage(content string) ChatMessage {
	return ChatMessage{Role: "assistant", Content: content}
}

// ChatRequest represents a request to the chat completions endpoint.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse represents a response from the chat completions endpoint.
type ChatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// GetContent returns the content of the first choice, or empty string if none.
func (r *ChatResponse) GetContent() string {
	if len(r.Choices) > 0 {
		return r.Choices[0].Message.Content
	}
	return ""
}

// apiErrorResponse represents an error response body from the API.
// Code is declared loosely because gateways disagree on its type: OpenAI
// sends a string, OpenRouter an integer.
type apiErrorResponse struct {
	Error struct {
		Code    any    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is a client for an OpenAI-compatible chat completions API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a new completions client with the given API key.
//
// If the API key is empty the client is still created, but completion
// requests fail with ErrNotConfigured before any network attempt.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		httpClient: sharedHTTPClient,
	}
}

// WithBaseURL sets a custom base URL for the API.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = strings.TrimSuffix(url, "/")
	return c
}

// WithModel sets the model used when no per-call override is given.
func (c *Client) WithModel(model string) *Client {
	if model != "" {
		c.model = model
	}
	return c
}

// WithHTTPClient sets a custom HTTP client. Tests use this to inject a
// stub transport.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

// SetModel sets the model to use for chat requests.
func (c *Client) SetModel(model string) {
	if model != "" {
		c.model = model
	}
}

// GetModel returns the current model.
func (c *Client) GetModel() string {
	return c.model
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsConfigured returns true if the client has an API key configured.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// APIKeyMasked returns a masked version of the API key for display.
// Never exposes key fragments; shows length and a hash fingerprint.
func (c *Client) APIKeyMasked() string {
	if c.apiKey == "" {
		return "[not set]"
	}
	return fmt.Sprintf("[REDACTED, length=%d, fingerprint=%s]", len(c.apiKey), c.keyFingerprint())
}

// keyFingerprint returns a short hash of the API key for display.
func (c *Client) keyFingerprint() string {
	if c.apiKey == "" {
		return "none"
	}
	h := sha256.Sum256([]byte(c.apiKey))
	return hex.EncodeToString(h[:4])
}

// =============================================================================
// COMPLETION OPERATIONS
// =============================================================================

// Chat performs a chat completion request with the given messages.
//
// The call is a single POST with no retries; a failed request is reported
// once. The returned error's message is suitable for showing to the user
// as the failure description.
func (c *Client) Chat(ctx context.Context, messages []ChatMessage) (*ChatResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	url := c.baseURL + "/chat/completions"

	reqBody := ChatRequest{
		Model:    c.model,
		Messages: messages,
	}

	return c.doRequest(ctx, url, reqBody)
}

// ChatWithModel performs a chat completion with a specific model, overriding
// the default. The original client's model field is not modified, so the
// method is safe to call from multiple goroutines.
func (c *Client) ChatWithModel(ctx context.Context, model string, messages []ChatMessage) (*ChatResponse, error) {
	clientCopy := *c
	clientCopy.SetModel(model)
	return clientCopy.Chat(ctx, messages)
}

// Complete performs a single-turn completion: exactly one user message
// containing the prompt. Returns the reply text of the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.Chat(ctx, []ChatMessage{NewUserMessage(prompt)})
	if err != nil {
		return "", err
	}
	return extractReply(resp)
}

// CompleteConversation performs a completion over re-sent history with a
// per-call model. Returns the reply text of the first choice.
func (c *Client) CompleteConversation(ctx context.Context, model string, messages []ChatMessage) (string, error) {
	resp, err := c.ChatWithModel(ctx, model, messages)
	if err != nil {
		return "", err
	}
	return extractReply(resp)
}

// extractReply pulls the first choice's content out of a success response.
// An empty choices list is reported as ErrNoChoices rather than returned
// as an empty reply.
func extractReply(resp *ChatResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// =============================================================================
// TRANSPORT
// =============================================================================

// setHeaders sets the required headers for completions API requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
}

// doRequest performs a single HTTP request to the chat completions endpoint.
func (c *Client) doRequest(ctx context.Context, requestURL string, reqBody ChatRequest) (*ChatResponse, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Strip the client's method-and-URL wrapper so the error carries
		// only the underlying transport failure.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, urlErr.Err
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, handleErrorResponse(resp.StatusCode, body)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &chatResp, nil
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}

	return body, nil
}

// handleErrorResponse converts a non-success response into an APIError.
// The body is checked for the structured {"error":{"message":...}} shape
// first; when absent the HTTP status text stands in as the message.
func handleErrorResponse(statusCode int, body []byte) error {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return &APIError{
			Status:  statusCode,
			Code:    formatErrorCode(apiErr.Error.Code),
			Message: apiErr.Error.Message,
		}
	}

	message := http.StatusText(statusCode)
	if message == "" {
		message = fmt.Sprintf("HTTP %d", statusCode)
	}
	return &APIError{
		Status:  statusCode,
		Message: message,
	}
}

// formatErrorCode renders the API's error code, whatever type it arrived as.
func formatErrorCode(code any) string {
	switch v := code.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%d", int(v))
	default:
		return fmt.Sprint(v)
	}
}

// =============================================================================
// KEY VALIDATION
// =============================================================================

// ValidateAPIKey checks if the API key format appears plausible.
// This does not verify the key with the service, just the shape: keys are
// reasonably long single tokens with some character variety.
func ValidateAPIKey(apiKey string) bool {
	apiKey = strings.TrimSpace(apiKey)

	if len(apiKey) < 16 {
		return false
	}
	if strings.ContainsAny(apiKey, " \t\n") {
		return false
	}

	// Reject obvious test keys like "aaaaaaaaaaaaaaaa".
	uniqueChars := make(map[rune]bool)
	for _, char := range apiKey {
		uniqueChars[char] = true
	}
	return len(uniqueChars) >= 8
}
