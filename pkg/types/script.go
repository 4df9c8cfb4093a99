// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration structs and domain records shared
// across the notescript pipeline.
package types

import "time"

// ScriptType selects the flavor of Python code the model is asked to produce.
type ScriptType string

const (
	// TypeScript is a standalone executable script with a main guard.
	TypeScript ScriptType = "script"

	// TypeModule is an importable module of functions.
	TypeModule ScriptType = "module"

	// TypeClass is a class-based implementation.
	TypeClass ScriptType = "class"
)

// GeneratedScript is the final artifact of one pipeline run: the text that
// was (or will be) written to disk, plus the facts recorded in its
// provenance header.
type GeneratedScript struct {
	// Content is the full script text: provenance header, shebang, body.
	Content string `json:"content" yaml:"content"`

	// Path is the resolved output path the script was written to.
	Path string `json:"path" yaml:"path"`

	// Model is the model identifier recorded in the provenance header.
	Model string `json:"model" yaml:"model"`

	// GeneratedAt is the timestamp recorded in the provenance header.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// SyntaxOK reports whether the body parsed as a complete Python
	// program, either as extracted or after indentation repair.
	SyntaxOK bool `json:"syntax_ok" yaml:"syntax_ok"`

	// Repaired reports whether the accepted body is the output of the
	// indentation-repair pass rather than the extracted text.
	Repaired bool `json:"repaired" yaml:"repaired"`
}

// GenerationRecord is one row in the generation history ledger.
type GenerationRecord struct {
	// ID is a random UUID assigned when the run is recorded.
	ID string `json:"id" yaml:"id"`

	// CreatedAt is when the run completed.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// NotesPath is the meeting-notes input file.
	NotesPath string `json:"notes_path" yaml:"notes_path"`

	// OutputPath is where the generated script was written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Backend is the AI backend that served the run.
	Backend BackendKind `json:"backend" yaml:"backend"`

	// Model is the model identifier reported by the backend.
	Model string `json:"model" yaml:"model"`

	// ScriptType is the requested code flavor.
	ScriptType ScriptType `json:"script_type" yaml:"script_type"`

	// SyntaxOK and Repaired mirror the GeneratedScript fields.
	SyntaxOK bool `json:"syntax_ok" yaml:"syntax_ok"`
	Repaired bool `json:"repaired" yaml:"repaired"`
}
