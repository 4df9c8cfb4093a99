// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		want    string
		wantErr error
	}{
		{
			name: "returns exact file content",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "notes.txt")
				require.NoError(t, os.WriteFile(path, []byte("Build a CLI that prints hello world"), 0o644))
				return path
			},
			want: "Build a CLI that prints hello world",
		},
		{
			name: "preserves whitespace and unicode byte-for-byte",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "notes.txt")
				require.NoError(t, os.WriteFile(path, []byte("  déjà vu\n\n\ttabs\n"), 0o644))
				return path
			},
			want: "  déjà vu\n\n\ttabs\n",
		},
		{
			name: "empty file yields empty string",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "empty.txt")
				require.NoError(t, os.WriteFile(path, nil, 0o644))
				return path
			},
			want: "",
		},
		{
			name: "missing file yields ErrNotFound",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.txt")
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(tt.setup(t))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadDirectoryIsGenericFailure(t *testing.T) {
	_, err := Read(t.TempDir())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
