// Package httpserver assembles the mux and runs the HTTP server.
package httpserver

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"math-prodigy/internal/handle"
	"math-prodigy/internal/middleware"
	"math-prodigy/internal/web"
)

func NewMux(h *handle.Handle) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/solve", h.Solve)
	mux.HandleFunc("/", web.Index)

	return middleware.RequestID(middleware.Logging(mux))
}

func StartHTTP(addr string, h *handle.Handle) error {
	log.Infof("math-prodigy listening on %s", addr)
	return http.ListenAndServe(addr, NewMux(h))
}
