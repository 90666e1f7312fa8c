// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// MODEL INFO TYPE
// =============================================================================

// ModelInfo contains detailed information about a model.
// This is used for model selection and display in the UI.
type ModelInfo struct {
	// ID is the model identifier used in API calls
	ID string `json:"id"`

	// Name is the human-readable display name
	Name string `json:"name"`

	// Provider identifies who serves the model
	Provider string `json:"provider"`

	// Tier categorizes the model's capability level
	Tier string `json:"tier"`

	// CostPer1K is the cost per 1000 tokens in dollars
	CostPer1K float64 `json:"cost_per_1k"`

	// MaxTokens is the maximum context window size
	MaxTokens int `json:"max_tokens"`

	// Description is a brief explanation of the model's strengths
	Description string `json:"description"`
}

// =============================================================================
// MODEL REGISTRY
// =============================================================================

// Models is the registry of known models with their metadata. Short names
// on the left are what users type; IDs are what goes on the wire. Names
// outside the registry pass through to the API untouched.
var Models = map[string]ModelInfo{
	"gpt-4o-mini": {
		ID:          "openai/gpt-4o-mini",
		Name:        "GPT-4o Mini",
		Provider:    "OpenAI",
		Tier:        "Fast",
		CostPer1K:   0.00015,
		MaxTokens:   128000,
		Description: "Cost-effective for simple tasks",
	},
	"gpt-4o": {
		ID:          "openai/gpt-4o",
		Name:        "GPT-4o",
		Provider:    "OpenAI",
		Tier:        "Balanced",
		CostPer1K:   0.0025,
		MaxTokens:   128000,
		Description: "Fast multimodal model with vision",
	},
	"haiku": {
		ID:          "anthropic/claude-3.5-haiku",
		Name:        "Claude 3.5 Haiku",
		Provider:    "Anthropic",
		Tier:        "Fast",
		CostPer1K:   0.0008,
		MaxTokens:   200000,
		Description: "Fast and efficient for simple tasks",
	},
	"sonnet": {
		ID:          "anthropic/claude-3.5-sonnet",
		Name:        "Claude 3.5 Sonnet",
		Provider:    "Anthropic",
		Tier:        "Balanced",
		CostPer1K:   0.003,
		MaxTokens:   200000,
		Description: "Best balance of speed and capability",
	},
	"opus": {
		ID:          "anthropic/claude-3-opus",
		Name:        "Claude 3 Opus",
		Provider:    "Anthropic",
		Tier:        "Powerful",
		CostPer1K:   0.015,
		MaxTokens:   200000,
		Description: "Most capable for complex reasoning",
	},
	"llama": {
		ID:          "meta-llama/llama-3.1-70b-instruct",
		Name:        "Llama 3.1 70B",
		Provider:    "Meta",
		Tier:        "Balanced",
		CostPer1K:   0.0004,
		MaxTokens:   128000,
		Description: "Open-weights workhorse",
	},
	"mistral": {
		ID:          "mistralai/mistral-small",
		Name:        "Mistral Small",
		Provider:    "Mistral",
		Tier:        "Fast",
		CostPer1K:   0.0002,
		MaxTokens:   32768,
		Description: "Fast and efficient general purpose",
	},
	"deepseek": {
		ID:          "deepseek/deepseek-chat",
		Name:        "DeepSeek Chat",
		Provider:    "DeepSeek",
		Tier:        "Balanced",
		CostPer1K:   0.00027,
		MaxTokens:   64000,
		Description: "Strong reasoning at low cost",
	},
	"gemini-flash": {
		ID:          "google/gemini-flash-1.5",
		Name:        "Gemini Flash 1.5",
		Provider:    "Google",
		Tier:        "Fast",
		CostPer1K:   0.00008,
		MaxTokens:   1000000,
		Description: "Very long context at low latency",
	},
}

// =============================================================================
// MODEL INFO METHODS
// =============================================================================

// CostString returns a formatted cost string.
func (m ModelInfo) CostString() string {
	if m.CostPer1K == 0 {
		return "Free"
	}
	if m.CostPer1K < 0.001 {
		return fmt.Sprintf("$%.5f/1K", m.CostPer1K)
	}
	return fmt.Sprintf("$%.4f/1K", m.CostPer1K)
}

// ContextString returns a formatted context window string.
func (m ModelInfo) ContextString() string {
	if m.MaxTokens >= 1000000 {
		return fmt.Sprintf("%.1fM tokens", float64(m.MaxTokens)/1000000)
	}
	if m.MaxTokens >= 1000 {
		return fmt.Sprintf("%dK tokens", m.MaxTokens/1000)
	}
	return fmt.Sprintf("%d tokens", m.MaxTokens)
}

// =============================================================================
// MODEL LOOKUP FUNCTIONS
// =============================================================================

// GetModelInfo looks up a model by short name or ID.
// Returns the ModelInfo and true if found, otherwise empty ModelInfo and false.
func GetModelInfo(nameOrID string) (ModelInfo, bool) {
	// Try direct lookup by short name
	if info, ok := Models[nameOrID]; ok {
		return info, true
	}

	// Try lookup by ID
	for _, info := range Models {
		if info.ID == nameOrID {
			return info, true
		}
	}

	// Try partial match on name or ID
	lowerName := strings.ToLower(nameOrID)
	for _, info := range Models {
		if strings.Contains(strings.ToLower(info.Name), lowerName) {
			return info, true
		}
		if strings.Contains(strings.ToLower(info.ID), lowerName) {
			return info, true
		}
	}

	return ModelInfo{}, false
}

// ResolveModel maps a short name or alias to the wire identifier.
// Unknown names pass through unchanged so users can address models the
// registry has never heard of.
func ResolveModel(nameOrID string) string {
	if info, ok := Models[nameOrID]; ok {
		return info.ID
	}
	return nameOrID
}

// ListModels returns all registered models ordered by short name.
func ListModels() []ModelInfo {
	names := ModelShortNames()
	result := make([]ModelInfo, 0, len(names))
	for _, name := range names {
		result = append(result, Models[name])
	}
	return result
}

// ModelShortNames returns a sorted slice of all model short names.
func ModelShortNames() []string {
	names := make([]string, 0, len(Models))
	for name := range Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
