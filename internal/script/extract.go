// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package script

import "strings"

const (
	genericFence = "```"
	pythonFence  = "```python"
)

// ExtractCode pulls the code body out of a raw model reply.
//
// Precedence: the first ```python fence wins; otherwise the first pair of
// generic ``` fences; otherwise the whole reply, trimmed. Only the first
// matching fence pair delimits the result; later blocks are discarded. An
// opening fence with no closing fence extracts everything through the end
// of the reply, so a truncated model answer still yields its partial code.
func ExtractCode(reply string) string {
	if body, ok := fencedBlock(reply, pythonFence); ok {
		return body
	}
	if body, ok := fencedBlock(reply, genericFence); ok {
		return body
	}
	return strings.TrimSpace(reply)
}

// fencedBlock returns the trimmed text between the first occurrence of open
// and the next generic closing fence, or to end-of-string when unterminated.
func fencedBlock(reply, open string) (string, bool) {
	start := strings.Index(reply, open)
	if start < 0 {
		return "", false
	}
	body := reply[start+len(open):]
	if end := strings.Index(body, genericFence); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body), true
}
