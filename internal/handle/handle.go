// Package handle exposes the HTTP operations of the math solver.
package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"math-prodigy/internal/solver"
	"math-prodigy/internal/solver/types"
)

type Handle struct {
	engs *solver.Engines
}

func New(engs *solver.Engines) *Handle {
	return &Handle{
		engs: engs,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the solver error taxonomy onto HTTP statuses. Every
// failure surfaces as a single human-readable message; nothing is retried.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	var ue *types.UpstreamError
	switch {
	case errors.Is(err, types.ErrMissingCredential):
		code = http.StatusUnauthorized
	case errors.Is(err, types.ErrMissingInput):
		code = http.StatusBadRequest
	case errors.As(err, &ue):
		code = http.StatusBadGateway
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
