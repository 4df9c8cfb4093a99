// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/pdiddy/notescript/pkg/types"
)

// generationPromptTmpl is the instruction block sent to the model ahead of
// the meeting notes. The guidelines pin the output to bare Python with a
// shebang so the response processor has as little to clean up as possible.
var generationPromptTmpl = template.Must(template.New("generation").Parse(`You are an expert Python developer. Your task is to create a complete,
functional Python script based on the provided requirements. Follow these guidelines:

1. Generate ONLY the Python code - no explanations, markdown, or additional text
2. Start with '#!/usr/bin/env python3' shebang
3. Include all necessary imports at the top
4. Implement the functionality described in the meeting notes
5. Add clear docstrings and comments
6. Include proper error handling with try/except blocks
7. Follow PEP 8 style guide strictly
8. Make sure the code is self-contained and can run independently
9. Add type hints for function parameters and return values
10. Include example usage in docstrings
11. Add input validation where appropriate
{{.Flavor}}

Here are the meeting notes to base the script on:

{{.Notes}}`))

// flavorInstructions maps each script type to its extra prompt guideline.
var flavorInstructions = map[types.ScriptType]string{
	types.TypeScript: `12. Structure the code as a standalone script with an 'if __name__ == "__main__":' block`,
	types.TypeModule: `12. Structure the code as an importable module of functions with no top-level side effects`,
	types.TypeClass:  `12. Structure the code around a single class that encapsulates the functionality`,
}

// BuildPrompt joins the versioned instruction block with the notes text.
// No escaping or truncation is applied; an oversized prompt is the
// backend's failure to surface.
func BuildPrompt(notesText string, st types.ScriptType) (string, error) {
	if st == "" {
		st = types.TypeScript
	}
	flavor, ok := flavorInstructions[st]
	if !ok {
		return "", fmt.Errorf("invalid script type %q: must be script, module, or class", st)
	}

	var buf bytes.Buffer
	err := generationPromptTmpl.Execute(&buf, struct {
		Flavor string
		Notes  string
	}{Flavor: flavor, Notes: notesText})
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return buf.String(), nil
}
