// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud implements the chat-completions client.
//
// The client speaks the OpenAI-compatible chat-completions protocol used
// by OpenRouter and similar gateways. Each completion is one HTTPS POST;
// there are no retries, no streaming and no client-side timeout, so a
// turn runs until the transport settles or the context is canceled.
//
// # Key Types
//
//   - Client: HTTP client for the completions API
//   - ChatMessage: chat message in the API's wire format
//   - ChatRequest / ChatResponse: request and response bodies
//   - APIError: typed remote rejection carrying status, code and message
//
// # Usage
//
// Create a client and request a completion:
//
//	client := cloud.NewClient(apiKey).WithModel("openai/gpt-4o-mini")
//	reply, err := client.Complete(ctx, "Hello")
//
// # Error surface
//
// Every failure is reported as an error whose message is the user-facing
// failure description: the structured API error message when present, the
// HTTP status text otherwise, or the underlying transport error. API keys
// are never logged; all requests use TLS 1.2+.
package cloud
