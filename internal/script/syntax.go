// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package script

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrSyntax indicates the candidate code does not parse as a complete
// Python program.
var ErrSyntax = errors.New("generated code contains syntax errors")

// CheckSyntax reports ErrSyntax when code does not parse as a complete
// Python program: the Tree-sitter Python grammar finds error or missing
// nodes, or the indentation is inconsistent. The grammar alone is too
// permissive here; it accepts dedents to levels that were never opened and
// ambiguous tab/space mixes, the exact damage RepairIndentation exists to
// fix, so those are checked separately the way the CPython tokenizer does.
func CheckSyntax(code string) error {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, []byte(code))
	if err != nil {
		return fmt.Errorf("parsing generated code: %w", err)
	}
	defer tree.Close()

	if tree.RootNode().HasError() {
		return ErrSyntax
	}
	return checkIndentation(code)
}

// indentWidth is one indentation level measured under two tab widths.
// Comparing both columns mirrors the CPython tokenizer: an indentation
// change must order the same way whether a tab counts as one column or
// advances to the next multiple of eight, otherwise the mix is ambiguous.
type indentWidth struct {
	col1, col8 int
}

func measureIndent(ws string) indentWidth {
	var w indentWidth
	for _, c := range ws {
		w.col1++
		if c == '\t' {
			w.col8 = w.col8/8*8 + 8
		} else {
			w.col8++
		}
	}
	return w
}

// checkIndentation walks the logical lines of code keeping a stack of open
// indentation levels. A dedent must return to a level already on the stack
// and every comparison must agree under both tab widths; anything else is
// ErrSyntax. Blank lines, comment lines, bracketed continuations and
// triple-quoted string bodies carry no indentation of their own.
func checkIndentation(code string) error {
	stack := []indentWidth{{}}

	depth := 0         // open ([{ brackets
	strDelim := ""     // closing delimiter of an open triple-quoted string
	continuation := false

	for _, line := range strings.Split(code, "\n") {
		logicalStart := strDelim == "" && depth == 0 && !continuation

		i := 0
		for i < len(line) {
			if strDelim != "" {
				switch {
				case strings.HasPrefix(line[i:], strDelim):
					i += len(strDelim)
					strDelim = ""
				case line[i] == '\\':
					i += 2
				default:
					i++
				}
				continue
			}
			switch c := line[i]; c {
			case '#':
				i = len(line)
			case '\'', '"':
				delim := strings.Repeat(string(c), 3)
				if strings.HasPrefix(line[i:], delim) {
					strDelim = delim
					i += 3
					break
				}
				i++
				for i < len(line) && line[i] != c {
					if line[i] == '\\' {
						i++
					}
					i++
				}
				i++
			case '(', '[', '{':
				depth++
				i++
			case ')', ']', '}':
				if depth > 0 {
					depth--
				}
				i++
			default:
				i++
			}
		}
		continuation = strDelim == "" && strings.HasSuffix(line, "\\")

		if !logicalStart {
			continue
		}
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		w := measureIndent(line[:len(line)-len(trimmed)])
		top := stack[len(stack)-1]
		switch {
		case w.col1 == top.col1 && w.col8 == top.col8:
			// same level
		case w.col1 > top.col1 && w.col8 > top.col8:
			stack = append(stack, w)
		case w.col1 < top.col1 && w.col8 < top.col8:
			for len(stack) > 1 && w.col1 < stack[len(stack)-1].col1 {
				stack = stack[:len(stack)-1]
			}
			top = stack[len(stack)-1]
			if w.col1 != top.col1 || w.col8 != top.col8 {
				return ErrSyntax
			}
		default:
			// tabs and spaces mixed so the ordering is ambiguous
			return ErrSyntax
		}
	}
	return nil
}

// RepairIndentation rewrites each line's leading whitespace to the nearest
// lower multiple of four spaces, the most common cause of model-generated
// code failing to parse. Tabs count as single whitespace characters.
func RepairIndentation(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		lead := len(line) - len(trimmed)
		if lead == 0 {
			continue
		}
		lines[i] = strings.Repeat(" ", lead/4*4) + trimmed
	}
	return strings.Join(lines, "\n")
}
