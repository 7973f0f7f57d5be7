// Package types holds the request/response contracts shared by the solve
// engines and the HTTP layer.
package types

import "strings"

// Depth — how detailed the returned explanation should be.
type Depth string

const (
	DepthBrief    Depth = "brief"
	DepthStandard Depth = "standard"
	DepthInDepth  Depth = "in-depth"
)

// ParseDepth accepts the short form plus the long labels the upload form
// historically used.
func ParseDepth(s string) (Depth, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brief", "brief overview":
		return DepthBrief, true
	case "standard", "standard step-by-step":
		return DepthStandard, true
	case "in-depth", "indepth", "in-depth explanation with reasoning":
		return DepthInDepth, true
	}
	return "", false
}

// Preferences — the two user-selected solve options.
type Preferences struct {
	Depth       Depth `json:"depth"`
	PracticeSet bool  `json:"practice_set"`
}

// SolveRequest — one solve invocation. APIKey is the user-supplied
// credential; engines may fall back to a configured default when it is
// empty. Image carries the raw upload bytes; JSON clients send Base64
// (plain base64 or a data: URL) instead.
type SolveRequest struct {
	APIKey      string      `json:"api_key"`
	Image       []byte      `json:"-"`
	ImageBase64 string      `json:"image"`
	MIME        string      `json:"mime"`
	Preferences Preferences `json:"preferences"`
}

// SolveResponse — the raw solution text as returned by the provider,
// before notation rewriting.
type SolveResponse struct {
	Model    string `json:"model"`
	Solution string `json:"solution"`
}
