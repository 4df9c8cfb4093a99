// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs the notes-to-script pipeline: read the meeting
// notes, build the prompt, call the AI backend once, process the reply into
// a validated script, and save it.
package generate

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/notescript/internal/history"
	"github.com/pdiddy/notescript/internal/notes"
	"github.com/pdiddy/notescript/internal/script"
	"github.com/pdiddy/notescript/pkg/types"
)

// DefaultOutputDir receives generated scripts when neither the caller nor
// the config names a destination.
const DefaultOutputDir = "output_scripts"

// Pipeline wires the collaborators for generation runs. History is
// optional; a nil store disables the ledger. Now is injectable so tests
// can pin the provenance timestamp.
type Pipeline struct {
	Backend Backend
	Config  types.GenerationConfig
	History *history.Store
	Now     func() time.Time
}

// Run executes one generation: notesPath in, a script file out. An empty
// outputPath is synthesized from the run timestamp under the configured
// output directory. Progress lines go to w. Data flows strictly one way
// and nothing is written until the reply has been processed, so a failed
// run leaves no partial output behind.
func (p *Pipeline) Run(ctx context.Context, notesPath, outputPath string, w io.Writer) (*types.GeneratedScript, error) {
	now := p.Now
	if now == nil {
		now = time.Now
	}

	fmt.Fprintf(w, "Reading meeting notes from: %s\n", notesPath)
	notesText, err := notes.Read(notesPath)
	if err != nil {
		return nil, err
	}

	prompt, err := BuildPrompt(notesText, p.Config.ScriptType)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(w, "Generating script... (this may take a moment)")
	reply, err := p.Backend.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("script generation failed: %w", err)
	}

	generated := script.Process(reply, script.ProvenanceMeta{
		Model:       p.Backend.ModelName(),
		GeneratedAt: now(),
	})

	if outputPath == "" {
		dir := p.Config.OutputDir
		if dir == "" {
			dir = DefaultOutputDir
		}
		outputPath = script.DefaultOutputPath(dir, generated.GeneratedAt)
	}

	if err := script.Save(outputPath, generated.Content); err != nil {
		return nil, err
	}
	generated.Path = outputPath

	fmt.Fprintf(w, "Script successfully saved to: %s\n", outputPath)
	if !generated.SyntaxOK {
		fmt.Fprintln(w, "Warning: the generated code has syntax errors; review it before running.")
	}

	p.record(ctx, notesPath, &generated, w)
	return &generated, nil
}

// record appends the run to the history ledger. Ledger faults are warnings;
// the script is already on disk and the run has succeeded.
func (p *Pipeline) record(ctx context.Context, notesPath string, generated *types.GeneratedScript, w io.Writer) {
	if p.History == nil {
		return
	}

	scriptType := p.Config.ScriptType
	if scriptType == "" {
		scriptType = types.TypeScript
	}
	backend := p.Config.Backend
	if backend == "" {
		backend = types.BackendAnthropic
	}

	rec := types.GenerationRecord{
		ID:         uuid.NewString(),
		CreatedAt:  generated.GeneratedAt,
		NotesPath:  notesPath,
		OutputPath: generated.Path,
		Backend:    backend,
		Model:      generated.Model,
		ScriptType: scriptType,
		SyntaxOK:   generated.SyntaxOK,
		Repaired:   generated.Repaired,
	}
	if err := p.History.Record(ctx, rec); err != nil {
		fmt.Fprintf(w, "warning: could not record run in history: %v\n", err)
	}
}
