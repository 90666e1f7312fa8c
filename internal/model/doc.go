// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types used throughout the application
// for representing the chat transcript and model information.
//
// # Key Types
//
//   - Conversation: Append-only container for a chat session
//   - Message: Single immutable message with role, content and timestamp
//   - ModelInfo: Information about an LLM model (ID, provider, cost)
//   - Role: Message role enumeration (user, bot)
//
// # Usage
//
// Create a new conversation and append to it:
//
//	conv := model.NewConversation()
//	conv.AddUserMessage("Hello!")
//
// Resolve a model alias for the wire:
//
//	id := model.ResolveModel("haiku")
package model
