package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertInline(t *testing.T) {
	assert.Equal(t, "Solve $x+1=2$", ConvertLaTeXDelimiters(`Solve \(x+1=2\)`))
}

func TestConvertBlock(t *testing.T) {
	assert.Equal(t, "$$x^2 = 4$$", ConvertLaTeXDelimiters(`\[x^2 = 4\]`))
}

func TestConvertMixed(t *testing.T) {
	in := "Step 1: \\[a+b=c\\]\nStep 2: \\(a=c-b\\)"
	want := "Step 1: $$a+b=c$$\nStep 2: $a=c-b$"
	assert.Equal(t, want, ConvertLaTeXDelimiters(in))
}

func TestConvertMultipleSpans(t *testing.T) {
	in := `\(a\) and \(b\), then \[c\] and \[d\]`
	want := `$a$ and $b$, then $$c$$ and $$d$$`
	assert.Equal(t, want, ConvertLaTeXDelimiters(in))
}

func TestBlockSpansNewlines(t *testing.T) {
	in := "\\[\nx = 1\ny = 2\n\\]"
	want := "$$\nx = 1\ny = 2\n$$"
	assert.Equal(t, want, ConvertLaTeXDelimiters(in))
}

func TestUnmatchedOpeningDelimiterLeftAlone(t *testing.T) {
	assert.Equal(t, `before \(x+1 after`, ConvertLaTeXDelimiters(`before \(x+1 after`))
	assert.Equal(t, `before \[x+1 after`, ConvertLaTeXDelimiters(`before \[x+1 after`))
}

func TestUnmatchedTailAfterWellFormedSpan(t *testing.T) {
	in := `ok \(x\) then broken \(y`
	want := `ok $x$ then broken \(y`
	assert.Equal(t, want, ConvertLaTeXDelimiters(in))
}

func TestEmptyInput(t *testing.T) {
	assert.Equal(t, "", ConvertLaTeXDelimiters(""))
}

func TestPlainTextUntouched(t *testing.T) {
	in := "No math here, just prose with (parens) and [brackets]."
	assert.Equal(t, in, ConvertLaTeXDelimiters(in))
}

func TestAlreadyConvertedTextUnchanged(t *testing.T) {
	in := "Inline $x+1$ and block $$y^2$$ stay put."
	assert.Equal(t, in, ConvertLaTeXDelimiters(in))
}

func TestConversionOrderBlockBeforeInline(t *testing.T) {
	// A block span containing parentheses must not be misread as inline math.
	in := `\[f(x) = (x+1)(x-1)\]`
	want := `$$f(x) = (x+1)(x-1)$$`
	assert.Equal(t, want, ConvertLaTeXDelimiters(in))
}

func TestEmptySpans(t *testing.T) {
	assert.Equal(t, "$$", ConvertLaTeXDelimiters(`\(\)`))
	assert.Equal(t, "$$$$", ConvertLaTeXDelimiters(`\[\]`))
}
