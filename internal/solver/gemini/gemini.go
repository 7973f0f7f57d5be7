// Package gemini implements the solve engine backed by Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"math-prodigy/internal/prompt"
	"math-prodigy/internal/solver/types"
	"math-prodigy/internal/util"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Engine struct {
	// APIKey is the configured fallback; the per-request credential wins.
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Solve(ctx context.Context, in types.SolveRequest) (types.SolveResponse, error) {
	key := strings.TrimSpace(in.APIKey)
	if key == "" {
		key = e.APIKey
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

	cl, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return types.SolveResponse{}, &types.UpstreamError{Provider: "gemini", Err: err}
	}
	defer cl.Close()

	model := e.Model
	m := cl.GenerativeModel(model)
	if m == nil {
		return types.SolveResponse{}, &types.UpstreamError{Provider: "gemini", Err: fmt.Errorf("model is nil")}
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt.SystemPrompt())},
	}

	parts := []genai.Part{
		genai.Text(prompt.BuildInstruction(in.Preferences)),
		&genai.Blob{MIMEType: mime, Data: imgBytes},
	}

	// One attempt per user action; failures surface as a single message.
	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return types.SolveResponse{}, &types.UpstreamError{Provider: "gemini", Err: err}
	}
	out := util.StripCodeFences(strings.TrimSpace(firstText(resp)))
	if out == "" {
		return types.SolveResponse{}, &types.UpstreamError{Provider: "gemini", Body: "empty response"}
	}
	return types.SolveResponse{Model: model, Solution: out}, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
