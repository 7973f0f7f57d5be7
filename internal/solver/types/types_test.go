package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDepth(t *testing.T) {
	cases := []struct {
		in   string
		want Depth
		ok   bool
	}{
		{"brief", DepthBrief, true},
		{"Brief overview", DepthBrief, true},
		{"standard", DepthStandard, true},
		{"Standard step-by-step", DepthStandard, true},
		{"in-depth", DepthInDepth, true},
		{"In-depth explanation with reasoning", DepthInDepth, true},
		{"  IN-DEPTH  ", DepthInDepth, true},
		{"", "", false},
		{"extreme", "", false},
	}
	for _, c := range cases {
		got, ok := ParseDepth(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestUpstreamErrorMessages(t *testing.T) {
	byStatus := &UpstreamError{Provider: "openai", Status: 503, Body: "overloaded"}
	assert.Equal(t, "openai upstream 503: overloaded", byStatus.Error())

	wrapped := &UpstreamError{Provider: "gemini", Err: errors.New("dial tcp: timeout")}
	assert.Contains(t, wrapped.Error(), "gemini upstream")
	assert.ErrorContains(t, wrapped, "timeout")
}

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("%w: problem image", ErrMissingInput)
	assert.ErrorIs(t, err, ErrMissingInput)
	assert.NotErrorIs(t, err, ErrMissingCredential)
}
