package handle

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"math-prodigy/internal/notation"
	"math-prodigy/internal/solver/types"
)

// Uploaded screenshots are small; 16 MiB leaves plenty of headroom.
const maxUploadBytes = 16 << 20

const downloadFilename = "math_solution.md"

// solveReq — input contract of POST /v1/solve (JSON body). Multipart forms
// carry the same fields, with the image as a file part.
type solveReq struct {
	LLMName  string `json:"llm_name"`
	APIKey   string `json:"api_key"`
	Image    string `json:"image"` // base64 or data: URL
	MIME     string `json:"mime"`
	Depth    string `json:"depth"`
	Practice bool   `json:"practice"`
}

type solveResp struct {
	RequestID string `json:"request_id,omitempty"`
	Model     string `json:"model"`
	Solution  string `json:"solution"`
}

// Solve runs the single user-triggered action: validate inputs, dispatch one
// request to the chosen provider, rewrite the returned math notation, and
// hand the document back for rendering or download.
func (h *Handle) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	req, in, err := decodeSolve(r)
	if err != nil {
		writeError(w, err)
		return
	}

	depth, ok := types.ParseDepth(req.Depth)
	if !ok {
		writeError(w, fmt.Errorf("%w: explanation depth %q", types.ErrMissingInput, req.Depth))
		return
	}
	in.Preferences = types.Preferences{
		Depth:       depth,
		PracticeSet: req.Practice,
	}

	engine, err := h.engs.GetEngine(req.LLMName)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %s", types.ErrMissingInput, err))
		return
	}

	start := time.Now()
	out, err := engine.Solve(r.Context(), in)
	if err != nil {
		log.WithFields(log.Fields{
			"provider":   engine.Name(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": w.Header().Get("X-Request-ID"),
		}).WithError(err).Warn("solve failed")
		writeError(w, err)
		return
	}
	log.WithFields(log.Fields{
		"provider":   engine.Name(),
		"model":      out.Model,
		"latency_ms": time.Since(start).Milliseconds(),
		"request_id": w.Header().Get("X-Request-ID"),
	}).Info("solve completed")

	solution := notation.ConvertLaTeXDelimiters(out.Solution)

	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+downloadFilename+`"`)
		_, _ = io.WriteString(w, solution)
		return
	}

	writeJSON(w, http.StatusOK, solveResp{
		RequestID: w.Header().Get("X-Request-ID"),
		Model:     out.Model,
		Solution:  solution,
	})
}

// decodeSolve reads either a JSON body or a multipart form into the request
// contract plus the engine-level SolveRequest.
func decodeSolve(r *http.Request) (solveReq, types.SolveRequest, error) {
	var req solveReq
	var in types.SolveRequest

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&req); err != nil {
			return req, in, fmt.Errorf("%w: bad json: %s", types.ErrMissingInput, err)
		}
		if strings.TrimSpace(req.Image) == "" {
			return req, in, fmt.Errorf("%w: problem image", types.ErrMissingInput)
		}
		in.APIKey = req.APIKey
		in.ImageBase64 = req.Image
		in.MIME = req.MIME
		return req, in, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return req, in, fmt.Errorf("%w: bad form: %s", types.ErrMissingInput, err)
	}
	req.LLMName = r.FormValue("llm_name")
	req.APIKey = r.FormValue("api_key")
	req.Depth = r.FormValue("depth")
	req.Practice = parseBool(r.FormValue("practice"))

	file, hdr, err := r.FormFile("image")
	if err != nil {
		return req, in, fmt.Errorf("%w: problem image", types.ErrMissingInput)
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil || len(data) == 0 {
		return req, in, fmt.Errorf("%w: problem image", types.ErrMissingInput)
	}

	in.APIKey = req.APIKey
	in.Image = data
	// Generic part types carry no information; let the engine sniff instead.
	if mime := hdr.Header.Get("Content-Type"); mime != "application/octet-stream" {
		in.MIME = mime
	}
	return req, in, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
