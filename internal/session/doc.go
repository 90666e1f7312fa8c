// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session coordinates the conversation transcript and the
// completion turns that grow it.
//
// The controller owns a single append-only conversation. Submitting input
// appends the user message synchronously, then resolves the completion on
// a background worker, one turn at a time, in submission order. Replies
// land as bot messages; failures land as bot messages too, prefixed with
// "Error: ", so the transcript always records what happened.
//
// # Key Types
//
//   - Controller: transcript owner and turn dispatcher
//   - CompletionClient: the slice of the cloud client the worker needs
//   - Status: point-in-time snapshot for status lines
//
// # Usage
//
// Create a controller around a configured client:
//
//	ctrl := session.NewController(client, session.DefaultConfig())
//	defer ctrl.Close()
//
// Submit input and wait for the reply:
//
//	if ctrl.Submit("hello") {
//	    ctrl.Wait()
//	}
//
// Event-driven surfaces subscribe instead of waiting:
//
//	ctrl.Subscribe(func() {
//	    // a message was appended; refresh the view
//	})
package session
