// Package solver dispatches solve requests to a vision-capable LLM provider.
package solver

import (
	"context"
	"errors"

	"math-prodigy/internal/solver/types"
)

type Engine interface {
	Name() string
	GetModel() string
	Solve(ctx context.Context, in types.SolveRequest) (types.SolveResponse, error)
}

type Engines struct {
	OpenAI Engine
	Gemini Engine
}

// GetEngine resolves the provider by name; the empty string selects the
// default (OpenAI, matching the original tool).
func (e *Engines) GetEngine(llmName string) (Engine, error) {
	switch llmName {
	case "", "gpt", "openai":
		return e.OpenAI, nil
	case "gemini":
		return e.Gemini, nil
	default:
		return nil, errors.New("unknown llm_name; use 'gpt' or 'gemini'")
	}
}
