// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// CLIENT CONFIGURATION TESTS
// =============================================================================

// TestNewClient verifies client initialization.
func TestNewClient(t *testing.T) {
	apiKey := "sk-or-test-abcdefghijklmnopqrstuvwxyz0123456789"
	client := NewClient(apiKey)

	if !client.IsConfigured() {
		t.Error("Client should be configured with valid API key")
	}

	if client.GetModel() != DefaultModel {
		t.Errorf("Default model should be %q, got %s", DefaultModel, client.GetModel())
	}

	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("Default base URL should be %q, got %s", DefaultBaseURL, client.BaseURL())
	}

	// Empty API key
	emptyClient := NewClient("")
	if emptyClient.IsConfigured() {
		t.Error("Client with empty API key should not be configured")
	}

	// Whitespace-only key counts as unset
	blankClient := NewClient("   ")
	if blankClient.IsConfigured() {
		t.Error("Client with whitespace API key should not be configured")
	}
}

// TestClientMethodChaining verifies the fluent API for client configuration.
func TestClientMethodChaining(t *testing.T) {
	client := NewClient("sk-or-test-abcdefghijklmnopqrstuvwxyz0123456789").
		WithBaseURL("https://custom.api.com/").
		WithModel("acme/model-x").
		WithHTTPClient(&http.Client{})

	if client == nil {
		t.Fatal("Method chaining should return non-nil client")
	}
	if client.BaseURL() != "https://custom.api.com" {
		t.Errorf("WithBaseURL should strip trailing slash, got %s", client.BaseURL())
	}
	if client.GetModel() != "acme/model-x" {
		t.Errorf("WithModel not applied, got %s", client.GetModel())
	}
}

// =============================================================================
// MISSING CREDENTIAL TESTS
// =============================================================================

// TestChat_NotConfigured verifies an unconfigured client fails before any
// network activity.
func TestChat_NotConfigured(t *testing.T) {
	var requestCount atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient("").WithBaseURL(server.URL)

	_, err := client.Chat(context.Background(), []ChatMessage{NewUserMessage("hello")})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Chat() error = %v, want ErrNotConfigured", err)
	}
	if err.Error() != "API key not configured" {
		t.Errorf("error message = %q, want %q", err.Error(), "API key not configured")
	}
	if requestCount.Load() != 0 {
		t.Errorf("network calls = %d, want 0", requestCount.Load())
	}
}

// =============================================================================
// SUCCESS PATH TESTS
// =============================================================================

// TestChat_Success verifies the request shape on the wire and the reply
// extraction from the first choice.
func TestChat_Success(t *testing.T) {
	var gotReq ChatRequest
	var gotAuth, gotContentType, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "test-id",
			"model": "test-model",
			"choices": [{
				"message": {"role": "assistant", "content": "Hi there"},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30}
		}`))
	}))
	defer server.Close()

	client := NewClient("sk-test-key-abcdefgh").WithBaseURL(server.URL).WithModel("acme/test")

	resp, err := client.Chat(context.Background(), []ChatMessage{NewUserMessage("hello")})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	if resp.GetContent() != "Hi there" {
		t.Errorf("GetContent() = %q, want %q", resp.GetContent(), "Hi there")
	}

	if gotPath != "/chat/completions" {
		t.Errorf("request path = %q, want /chat/completions", gotPath)
	}
	if gotAuth != "Bearer sk-test-key-abcdefgh" {
		t.Errorf("Authorization = %q, want bearer credential", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotReq.Model != "acme/test" {
		t.Errorf("request model = %q, want acme/test", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" || gotReq.Messages[0].Content != "hello" {
		t.Errorf("request messages = %+v, want single user message %q", gotReq.Messages, "hello")
	}
}

// TestComplete_FirstChoiceWins verifies extraction takes the first choice
// when several are returned.
func TestComplete_FirstChoiceWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"choices": [
				{"message": {"role": "assistant", "content": "first"}, "finish_reason": "stop"},
				{"message": {"role": "assistant", "content": "second"}, "finish_reason": "stop"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient("sk-test-key-abcdefgh").WithBaseURL(server.URL)

	reply, err := client.Complete(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "first" {
		t.Errorf("Complete() = %q, want %q", reply, "first")
	}
}

// TestComplete_EmptyChoices verifies the fallback when a success response
// has no choices to extract.
func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient("sk-test-key-abcdefgh").WithBaseURL(server.URL)

	_, err := client.Complete(context.Background(), "hello")
	if !errors.Is(err, ErrNoChoices) {
		t.Fatalf("Complete() error = %v, want ErrNoChoices", err)
	}
	if err.Error() != "no completion choices returned" {
		t.Errorf("error message = %q, want %q", err.Error(), "no completion choices returned")
	}
}

// =============================================================================
// ERROR HANDLING TESTS
// =============================================================================

// TestComplete_APIErrorMessage verifies the structured error message is
// surfaced verbatim on a remote rejection.
func TestComplete_APIErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid key", "code": "invalid_api_key"}}`))
	}))
	defer server.Close()

	client := NewClient("sk-test-key-abcdefgh").WithBaseURL(server.URL)

	_, err := client.Complete(context.Background(), "hi")
	if err == nil {
		t.Fatal("Complete() expected error, got nil")
	}
	if err.Error() != "invalid key" {
		t.Errorf("error message = %q, want %q", err.Error(), "invalid key")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("APIError.Status = %d, want 401", apiErr.Status)
	}
	if apiErr.Code != "invalid_api_key" {
		t.Errorf("APIError.Code = %q, want invalid_api_key", apiErr.Code)
	}
}

// TestComplete_StatusTextFallback verifies the HTTP status text stands in
// when the error body has no structured message.
func TestComplete_StatusTextFallback(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "empty JSON object", status: 500, body: `{}`, wantMsg: "Internal Server Error"},
		{name: "non-JSON body", status: 502, body: "upstream exploded", wantMsg: "Bad Gateway"},
		{name: "service unavailable", status: 503, body: `{"error":{}}`, wantMsg: "Service Unavailable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient("sk-test-key-abcdefgh").WithBaseURL(server.URL)

			_, err := client.Complete(context.Background(), "hi")
			if err == nil {
				t.Fatal("Complete() expected error, got nil")
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("error message = %q, want %q", err.Error(), tc.wantMsg)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error type = %T, want *APIError", err)
			}
			if apiErr.Status != tc.status {
				t.Errorf("APIError.Status = %d, want %d", apiErr.Status, tc.status)
			}
		})
	}
}

// TestComplete_NumericErrorCode verifies gateways that send an integer code
// still get their message surfaced.
func TestComplete_NumericErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"message": "insufficient credits", "code": 402}}`))
	}))
	defer server.Close()

	client := NewClient("sk-test-key-abcdefgh").WithBaseURL(server.URL)

	_, err := client.Complete(context.Background(), "hi")
	if err == nil || err.Error() != "insufficient credits" {
		t.Fatalf("error = %v, want message 'insufficient credits'", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != "402" {
		t.Errorf("APIError.Code = %v, want %q", err, "402")
	}
}

// errorRoundTripper fails every request with a fixed error.
type errorRoundTripper struct {
	err error
}

func (rt errorRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, rt.err
}

// TestComplete_TransportError verifies a transport failure surfaces the
// underlying error's message, without the HTTP client's URL wrapper.
func TestComplete_TransportError(t *testing.T) {
	client := NewClient("sk-test-key-abcdefgh").WithHTTPClient(&http.Client{
		Transport: errorRoundTripper{err: errors.New("timeout")},
	})

	_, err := client.Complete(context.Background(), "hi")
	if err == nil {
		t.Fatal("Complete() expected error, got nil")
	}
	if err.Error() != "timeout" {
		t.Errorf("error message = %q, want %q", err.Error(), "timeout")
	}
}

// TestAPIError verifies the error renders as its bare message.
func TestAPIError(t *testing.T) {
	apiErr := &APIError{Status: 401, Code: "invalid_api_key", Message: "invalid key"}
	if apiErr.Error() != "invalid key" {
		t.Errorf("Error() = %q, want %q", apiErr.Error(), "invalid key")
	}
}

// =============================================================================
// MODEL OVERRIDE TESTS
// =============================================================================

// TestChatWithModel_DoesNotMutateClient verifies the per-call model override
// copies the client instead of modifying it. Regression test for a data race
// on the shared model field.
func TestChatWithModel_DoesNotMutateClient(t *testing.T) {
	var modelsSeen sync.Map
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		modelsSeen.Store(req.Model, true)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "ok"}, "finish_reason": "stop"}]}`))
	}))
	defer server.Close()

	client := NewClient("sk-or-test-abcdefghijklmnopqrstuvwxyz0123456789").WithBaseURL(server.URL)
	client.SetModel("initial-model")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			client.ChatWithModel(ctx, fmt.Sprintf("model-%d", n), []ChatMessage{NewUserMessage("test")})
		}(i)
	}
	wg.Wait()

	if client.GetModel() != "initial-model" {
		t.Errorf("client model was modified by concurrent calls: got %s", client.GetModel())
	}

	count := 0
	modelsSeen.Range(func(key, value any) bool {
		count++
		return true
	})
	if count != 20 {
		t.Errorf("unique models on the wire = %d, want 20", count)
	}
}

// TestCompleteConversation verifies history goes out on the wire in order
// with the per-call model applied.
func TestCompleteConversation(t *testing.T) {
	var gotReq ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "and to you"}, "finish_reason": "stop"}]}`))
	}))
	defer server.Close()

	client := NewClient("sk-test-key-abcdefgh").WithBaseURL(server.URL)

	history := []ChatMessage{
		NewUserMessage("hello"),
		NewAssistantMessage("hi"),
		NewUserMessage("good day"),
	}

	reply, err := client.CompleteConversation(context.Background(), "acme/turbo", history)
	if err != nil {
		t.Fatalf("CompleteConversation() error = %v", err)
	}
	if reply != "and to you" {
		t.Errorf("reply = %q, want %q", reply, "and to you")
	}
	if gotReq.Model != "acme/turbo" {
		t.Errorf("request model = %q, want acme/turbo", gotReq.Model)
	}
	if len(gotReq.Messages) != 3 {
		t.Fatalf("request messages length = %d, want 3", len(gotReq.Messages))
	}
	if gotReq.Messages[1].Role != "assistant" || gotReq.Messages[1].Content != "hi" {
		t.Errorf("messages[1] = %+v, want assistant %q", gotReq.Messages[1], "hi")
	}
}

// =============================================================================
// MESSAGE HELPER TESTS
// =============================================================================

// TestChatMessageHelpers verifies message creation helpers.
func TestChatMessageHelpers(t *testing.T) {
	userMsg := NewUserMessage("user content")
	if userMsg.Role != "user" || userMsg.Content != "user content" {
		t.Errorf("NewUserMessage incorrect: got role=%s, content=%s", userMsg.Role, userMsg.Content)
	}

	assistantMsg := NewAssistantMessage("assistant content")
	if assistantMsg.Role != "assistant" || assistantMsg.Content != "assistant content" {
		t.Errorf("NewAssistantMessage incorrect: got role=%s, content=%s", assistantMsg.Role, assistantMsg.Content)
	}
}

// TestChatResponseGetContent verifies response content extraction.
func TestChatResponseGetContent(t *testing.T) {
	resp := &ChatResponse{}
	if err := json.Unmarshal([]byte(`{"choices":[{"message":{"role":"assistant","content":"test content"}}]}`), resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.GetContent() != "test content" {
		t.Errorf("GetContent() = %q, expected 'test content'", resp.GetContent())
	}

	emptyResp := &ChatResponse{}
	if emptyResp.GetContent() != "" {
		t.Errorf("GetContent() on empty response = %q, expected empty string", emptyResp.GetContent())
	}
}

// =============================================================================
// KEY MASKING AND VALIDATION TESTS
// =============================================================================

// TestAPIKeyMasked verifies API key masking never exposes key material.
func TestAPIKeyMasked(t *testing.T) {
	tests := []struct {
		name           string
		apiKey         string
		expectedPrefix string
	}{
		{name: "empty key", apiKey: "", expectedPrefix: "[not set]"},
		{name: "short key", apiKey: "abc", expectedPrefix: "[REDACTED, length=3, fingerprint="},
		{name: "normal key", apiKey: "sk-or-test-abc123", expectedPrefix: "[REDACTED, length=17, fingerprint="},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := NewClient(tc.apiKey)
			masked := client.APIKeyMasked()

			if !strings.HasPrefix(masked, tc.expectedPrefix) {
				t.Errorf("masked key = %q, want prefix %q", masked, tc.expectedPrefix)
			}
			if tc.apiKey != "" && strings.Contains(masked, tc.apiKey) {
				t.Errorf("masked key %q contains the original key", masked)
			}
		})
	}
}

// TestValidateAPIKey verifies API key format validation.
func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		valid  bool
	}{
		{name: "valid openrouter key", apiKey: "sk-or-v1-abcdefghijklmnopqrstuvwxyz0123456789", valid: true},
		{name: "valid generic key", apiKey: "sk-abcdef0123456789abcdef", valid: true},
		{name: "too short", apiKey: "sk-or-short", valid: false},
		{name: "contains whitespace", apiKey: "sk-or-abc def0123456789", valid: false},
		{name: "low entropy", apiKey: "aaaaaaaaaaaaaaaaaaaaaaaaaaaa", valid: false},
		{name: "empty", apiKey: "", valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateAPIKey(tc.apiKey)
			if result != tc.valid {
				t.Errorf("ValidateAPIKey(%q) = %v, expected %v", tc.apiKey, result, tc.valid)
			}
		})
	}
}
