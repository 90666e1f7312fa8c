// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jeranaias/parley/internal/config"
	"github.com/jeranaias/parley/internal/model"
)

// =============================================================================
// MODELS COMMAND
// =============================================================================

// HandleModels runs the models command and exits on failure.
func HandleModels(args *Args) {
	exitOnError(HandleModelsCommand(args))
}

// HandleModelsCommand lists the model registry: the short names users can
// type anywhere a model is expected, with provider, cost, and context
// window for choosing between them.
func HandleModelsCommand(args *Args) error {
	if args.JSON {
		encoded, err := json.MarshalIndent(model.ListModels(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode models: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	current := model.ResolveModel(config.Global().DefaultModel)

	fmt.Println(TitleStyle.Render("Known models"))
	fmt.Printf("  %-14s %-36s %-10s %-9s %-12s %s\n", "NAME", "MODEL ID", "PROVIDER", "TIER", "COST", "CONTEXT")
	fmt.Println(RenderSeparator())

	for _, name := range model.ModelShortNames() {
		info := model.Models[name]
		marker := " "
		if info.ID == current {
			marker = HighlightStyle.Render("*")
		}
		fmt.Printf("%s %-14s %-36s %-10s %-9s %-12s %s\n",
			marker, name, info.ID, info.Provider, info.Tier, info.CostString(), info.ContextString())
	}

	fmt.Println()
	fmt.Println(DimStyle.Render("* default model (change with 'parley config set default_model <name>')"))
	fmt.Println(DimStyle.Render("Names outside this list are sent to the API unchanged."))
	return nil
}
