// Package web serves the embedded single-page UI.
package web

import (
	"embed"
	"net/http"
)

//go:embed index.html
var content embed.FS

// Index serves the tool page on "/" and 404s everything else.
func Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page, err := content.ReadFile("index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
