package gemini

import (
	"context"
	"testing"

	"math-prodigy/internal/solver/types"

	"github.com/stretchr/testify/assert"
)

func TestSolveMissingCredential(t *testing.T) {
	e := New("", "gemini-2.5-flash")
	_, err := e.Solve(context.Background(), types.SolveRequest{
		Image:       []byte{0xFF, 0xD8, 0xFF},
		Preferences: types.Preferences{Depth: types.DepthBrief},
	})
	assert.ErrorIs(t, err, types.ErrMissingCredential)
}

func TestSolveMissingImage(t *testing.T) {
	e := New("key", "gemini-2.5-flash")
	_, err := e.Solve(context.Background(), types.SolveRequest{
		APIKey:      "key",
		Preferences: types.Preferences{Depth: types.DepthBrief},
	})
	assert.ErrorIs(t, err, types.ErrMissingInput)
}
