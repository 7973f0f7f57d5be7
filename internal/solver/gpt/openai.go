// Package gpt implements the solve engine backed by the OpenAI Responses API.
package gpt

import (
	"net"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openai.com"

type Engine struct {
	// APIKey is the configured fallback; the per-request credential wins.
	APIKey  string
	Model   string
	BaseURL string
	httpc   *http.Client
}

func New(key, model string) *Engine {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second, // TCP connect
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		// Solving can take a while before the first byte arrives.
		ResponseHeaderTimeout: 120 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   100,
	}

	return &Engine{
		APIKey:  key,
		Model:   model,
		BaseURL: defaultBaseURL,
		// Timeout=0 so long reads of the response body are not cut off.
		httpc: &http.Client{
			Timeout:   0,
			Transport: tr,
		},
	}
}

// WithHTTPClient overrides the internal HTTP client (e.g., for custom timeouts or tracing).
func (e *Engine) WithHTTPClient(c *http.Client) *Engine {
	if c != nil {
		e.httpc = c
	}
	return e
}

// WithBaseURL points the engine at a different API host (used by tests).
func (e *Engine) WithBaseURL(u string) *Engine {
	if u != "" {
		e.BaseURL = u
	}
	return e
}

func (e *Engine) Name() string     { return "gpt" }
func (e *Engine) GetModel() string { return e.Model }
