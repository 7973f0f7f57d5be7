// Package prompt builds the instruction sent to the vision model alongside
// the uploaded problem image.
package prompt

import (
	"strings"

	"math-prodigy/internal/solver/types"
)

const system = `You are a helpful and accurate math tutor. Your task is to interpret the math problem shown in the uploaded image, solve it step-by-step, and explain it according to the chosen explanation detail. If requested, provide similar practice problems as well.

Rules:
- Carefully read and understand the math problem from the uploaded image.
- Solve the problem methodically, building up to the final answer without revealing it at the beginning.
- Adapt the explanation style to the requested detail level:
  - brief: focus on key steps only, no detailed reasoning.
  - standard: show all steps clearly with brief justifications.
  - in-depth: include detailed reasoning and concept-level insights for each step.
- Follow this structured response format:

### Step-by-Step Breakdown
<break the problem down progressively>

### Solution
<conclude with reasoning and the final boxed answer>

### Practice Problems (if requested)
<include the requested practice problems, each with its own solution>

- Only use what is visible in the image. Avoid assuming or fabricating any information.
- Format all math expressions clearly using Markdown and LaTeX.`

// SystemPrompt returns the fixed tutor role sent as the system message.
func SystemPrompt() string { return system }

var depthInstruction = map[types.Depth]string{
	types.DepthBrief:    "a brief overview: key steps only, no detailed reasoning",
	types.DepthStandard: "a standard step-by-step walkthrough: all steps shown with brief justifications",
	types.DepthInDepth:  "an in-depth explanation: full derivation with detailed reasoning and concept-level insights for each step",
}

// BuildInstruction encodes the user's preferences into the user-turn
// instruction. Same preferences always produce the same string.
func BuildInstruction(prefs types.Preferences) string {
	var b strings.Builder
	b.WriteString("A user has uploaded a screenshot of a math problem.\n\n")
	b.WriteString("Please solve it and provide ")
	b.WriteString(depthInstruction[prefs.Depth])
	b.WriteString(".\n\n")
	if prefs.PracticeSet {
		b.WriteString("The user has also requested practice: append 3-5 similar problems, each with its own solution.\n\n")
	} else {
		b.WriteString("The user has requested only the solution, no practice problems.\n\n")
	}
	b.WriteString("Structure your response clearly and format all math using Markdown and LaTeX.")
	return b.String()
}
