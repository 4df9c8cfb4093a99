// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text
// key files. The filename is the key name and the trimmed file contents
// are the value.
//
// Supported key files: anthropic-api-key, openai-api-key.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load reads every key file in dir into a map of filename to value.
// A missing directory yields an empty map, not an error; the credential
// may come from the environment instead. Dotfiles and subdirectories are
// ignored, as are files holding only whitespace. A file that cannot be
// read produces a warning on w and is skipped.
func Load(dir string, w io.Writer) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	keys := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		value, err := readKeyFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(w, "warning: skipping secret %s: %v\n", name, err)
			continue
		}
		if value != "" {
			keys[name] = value
		}
	}
	return keys, nil
}

func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
