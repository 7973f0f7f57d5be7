package gpt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"math-prodigy/internal/prompt"
	"math-prodigy/internal/solver/types"
	"math-prodigy/internal/util"
)

func (e *Engine) Solve(ctx context.Context, in types.SolveRequest) (types.SolveResponse, error) {
	key := strings.TrimSpace(in.APIKey)
	if key == "" {
		key = strings.TrimSpace(e.APIKey)
	}
	if key == "" {
		return types.SolveResponse{}, types.ErrMissingCredential
	}

	if _, ok := types.ParseDepth(string(in.Preferences.Depth)); !ok {
		return types.SolveResponse{}, fmt.Errorf("%w: explanation depth", types.ErrMissingInput)
	}

	imgBytes := in.Image
	var mimeHint string
	if len(imgBytes) == 0 && in.ImageBase64 != "" {
		var err error
		imgBytes, mimeHint, err = util.DecodeBase64MaybeDataURL(in.ImageBase64)
		if err != nil {
			return types.SolveResponse{}, fmt.Errorf("%w: invalid image base64", types.ErrMissingInput)
		}
	}
	if len(imgBytes) == 0 {
		return types.SolveResponse{}, fmt.Errorf("%w: problem image", types.ErrMissingInput)
	}
	mime := util.PickMIME(in.MIME, mimeHint, imgBytes)
	if !util.IsSupportedImageMIME(mime) {
		return types.SolveResponse{}, fmt.Errorf("%w: unsupported image type %s (need image/jpeg|png|webp)", types.ErrMissingInput, mime)
	}
	dataURL := util.MakeDataURL(mime, imgBytes)

	model := e.GetModel()
	body := map[string]any{
		"model": model,
		"input": []any{
			map[string]any{
				"role": "system",
				"content": []any{
					map[string]any{"type": "input_text", "text": prompt.SystemPrompt()},
				},
			},
			map[string]any{
				"type": "message",
				"role": "user",
				"content": []any{
					map[string]any{"type": "input_text", "text": prompt.BuildInstruction(in.Preferences)},
					map[string]any{"type": "input_image", "image_url": dataURL},
				},
			},
		},
		"temperature": 0,
	}
	if strings.Contains(model, "gpt-5") {
		body["temperature"] = 1
	}

	payload, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, "POST", e.BaseURL+"/v1/responses", bytes.NewReader(payload))
	if err != nil {
		return types.SolveResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return types.SolveResponse{}, &types.UpstreamError{Provider: "openai", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return types.SolveResponse{}, &types.UpstreamError{
			Provider: "openai",
			Status:   resp.StatusCode,
			Body:     strings.TrimSpace(util.TruncateBytes(x, 512)),
		}
	}

	raw, _ := io.ReadAll(resp.Body)
	out := util.StripCodeFences(strings.TrimSpace(util.ExtractResponsesText(raw)))
	if out == "" {
		return types.SolveResponse{}, &types.UpstreamError{
			Provider: "openai",
			Status:   resp.StatusCode,
			Body:     "empty output; body=" + util.TruncateBytes(raw, 512),
		}
	}
	return types.SolveResponse{Model: model, Solution: out}, nil
}
