// Package notation rewrites LaTeX math delimiters into the dollar-sign
// convention that Markdown/KaTeX renderers understand.
package notation

import "regexp"

var (
	// (?s) so block math can span newlines; non-greedy so adjacent spans
	// don't merge.
	blockRe  = regexp.MustCompile(`(?s)\\\[(.*?)\\\]`)
	inlineRe = regexp.MustCompile(`\\\((.*?)\\\)`)
)

// ConvertLaTeXDelimiters converts \[...\] spans to $$...$$ and \(...\) spans
// to $...$. Block spans are converted first. Unmatched opening delimiters are
// left as-is; text without math passes through unchanged.
func ConvertLaTeXDelimiters(text string) string {
	if text == "" {
		return ""
	}
	// In a replacement template $$ is a literal dollar sign.
	text = blockRe.ReplaceAllString(text, `$$$$${1}$$$$`)
	text = inlineRe.ReplaceAllString(text, "$$${1}$$")
	return text
}
