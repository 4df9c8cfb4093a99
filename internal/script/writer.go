// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package script

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Save writes content to path, creating any missing parent directories and
// overwriting an existing file. The content goes through a temp file in the
// destination directory and a rename, so a failed write never leaves a
// partial script at path.
func Save(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".notescript-*")
	if err != nil {
		return fmt.Errorf("saving script: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("saving script: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving script: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving script: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving script to %s: %w", path, err)
	}
	return nil
}

// DefaultOutputPath synthesizes generated_script_<timestamp>.py under dir.
func DefaultOutputPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("generated_script_%s.py", now.Format("20060102_150405")))
}
