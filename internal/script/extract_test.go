// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{
			name:  "python-tagged fence",
			reply: "Here is your script:\n```python\nprint(\"hi\")\n```\nEnjoy!",
			want:  "print(\"hi\")",
		},
		{
			name:  "python fence wins over earlier generic fence",
			reply: "```\nnot this\n```\n```python\nprint(\"this\")\n```",
			want:  "print(\"this\")",
		},
		{
			name:  "generic fence pair",
			reply: "Some prose.\n```\nx = 1\n```\nMore prose.",
			want:  "x = 1",
		},
		{
			name:  "only first python block is taken",
			reply: "```python\nfirst = 1\n```\ntext\n```python\nsecond = 2\n```",
			want:  "first = 1",
		},
		{
			name:  "no fences returns trimmed reply",
			reply: "  \nprint(\"raw\")\n  ",
			want:  "print(\"raw\")",
		},
		{
			name:  "unterminated python fence runs to end of reply",
			reply: "```python\nprint(\"truncated\")\nx = 2",
			want:  "print(\"truncated\")\nx = 2",
		},
		{
			name:  "unterminated generic fence runs to end of reply",
			reply: "prose\n```\ny = 3",
			want:  "y = 3",
		},
		{
			name:  "empty reply yields empty code",
			reply: "",
			want:  "",
		},
		{
			name:  "fence with empty body",
			reply: "```python\n```",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCode(tt.reply))
		})
	}
}

// Extraction is idempotent on fence-free text: running it over its own
// output changes nothing.
func TestExtractCodeIdempotent(t *testing.T) {
	once := ExtractCode("no fences here\njust text")
	assert.Equal(t, once, ExtractCode(once))
}

func TestRepairIndentation(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "rounds leading spaces down to multiple of four",
			code: "def f():\n      print(1)\n   print(2)",
			want: "def f():\n    print(1)\nprint(2)",
		},
		{
			name: "tabs count as single whitespace characters",
			code: "def f():\n\t\t\t\tprint(1)",
			want: "def f():\n    print(1)",
		},
		{
			name: "already aligned code is unchanged",
			code: "def f():\n    print(1)\n        print(2)",
			want: "def f():\n    print(1)\n        print(2)",
		},
		{
			name: "under four leading spaces are stripped",
			code: "  print(1)",
			want: "print(1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepairIndentation(tt.code))
		})
	}
}
