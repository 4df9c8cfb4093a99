// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package script turns raw model replies into validated Python script files:
// fence extraction, shebang and provenance headers, a best-effort
// indentation repair, and an all-or-nothing save.
package script

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/notescript/pkg/types"
)

// Shebang is the interpreter directive prepended to scripts that lack one.
const Shebang = "#!/usr/bin/env python3"

// warningBanner precedes code that still fails to parse after repair.
const warningBanner = "# WARNING: Generated code contains syntax errors\n" +
	"# Please review and fix the following code:"

// ProvenanceMeta holds the facts recorded in the provenance header.
type ProvenanceMeta struct {
	Model       string
	GeneratedAt time.Time
}

// EnsureShebang prepends the standard interpreter directive, followed by a
// blank line, when code does not already start with one.
func EnsureShebang(code string) string {
	if strings.HasPrefix(code, "#!") {
		return code
	}
	return Shebang + "\n\n" + code
}

// Process converts a raw model reply into the final script text.
//
// The reply's code block is extracted, given a shebang if missing, and
// syntax-checked. Code that fails the check gets one indentation-repair
// attempt; if the repaired text parses it is accepted, otherwise the output
// falls back to a shebang, the warning banner, and the original extracted
// text verbatim. A provenance header goes ahead of the result either way.
func Process(reply string, meta ProvenanceMeta) types.GeneratedScript {
	extracted := ExtractCode(reply)
	body := EnsureShebang(extracted)

	result := types.GeneratedScript{
		Model:       meta.Model,
		GeneratedAt: meta.GeneratedAt,
		SyntaxOK:    true,
	}

	if CheckSyntax(body) != nil {
		repaired := RepairIndentation(body)
		if CheckSyntax(repaired) == nil {
			body = repaired
			result.Repaired = true
		} else {
			body = fmt.Sprintf("%s\n%s\n\n%s\n", Shebang, warningBanner, extracted)
			result.SyntaxOK = false
		}
	}

	result.Content = provenanceHeader(meta) + body
	return result
}

// provenanceHeader renders the comment block recording when and by what
// model the script was generated, followed by a blank line.
func provenanceHeader(meta ProvenanceMeta) string {
	return fmt.Sprintf("# Generated on: %s\n# Model: %s\n# Source: Meeting notes\n\n",
		meta.GeneratedAt.Format("2006-01-02 15:04:05"), meta.Model)
}
