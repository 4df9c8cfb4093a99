// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes the filtered run ledger to path as YAML.
func (s *Store) ExportYAML(ctx context.Context, path string, opts ListOptions) error {
	records, err := s.List(ctx, opts)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the filtered run ledger to path as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, path string, opts ListOptions) error {
	records, err := s.List(ctx, opts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
