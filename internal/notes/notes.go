// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notes reads meeting-notes input files.
package notes

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotFound indicates the notes file does not exist at the given path.
var ErrNotFound = errors.New("meeting notes file not found")

// Read returns the full UTF-8 content of the notes file at path.
// A missing file yields ErrNotFound; any other I/O fault is wrapped
// as a generic read failure.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("reading meeting notes %s: %w", path, err)
	}
	return string(data), nil
}
