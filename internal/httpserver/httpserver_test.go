package httpserver

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"math-prodigy/internal/handle"
	"math-prodigy/internal/solver"
	"math-prodigy/internal/solver/gemini"
	"math-prodigy/internal/solver/gpt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMux() *httptest.Server {
	h := handle.New(&solver.Engines{
		OpenAI: gpt.New("", "gpt-4.1-mini"),
		Gemini: gemini.New("", "gemini-2.5-flash"),
	})
	return httptest.NewServer(NewMux(h))
}

func TestHealthz(t *testing.T) {
	srv := newMux()
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestIndexPage(t *testing.T) {
	srv := newMux()
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestUnknownPath(t *testing.T) {
	srv := newMux()
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 404, resp.StatusCode)
}

func TestSolveWithoutCredential(t *testing.T) {
	srv := newMux()
	defer srv.Close()

	resp, err := srv.Client().Post(srv.URL+"/v1/solve", "application/json",
		jsonBody(`{"image":"/9j/4AAQSkZJRg==","depth":"brief"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 401, resp.StatusCode)
}

func jsonBody(s string) io.Reader { return strings.NewReader(s) }
