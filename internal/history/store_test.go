// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/notescript/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.HistoryConfig{
		HistoryDir: filepath.Join(t.TempDir(), ".notescript"),
		MaxResults: 20,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecord(id string, createdAt time.Time, backend types.BackendKind) types.GenerationRecord {
	return types.GenerationRecord{
		ID:         id,
		CreatedAt:  createdAt,
		NotesPath:  "notes/standup.txt",
		OutputPath: "output_scripts/generated_script_20260314_092653.py",
		Backend:    backend,
		Model:      "test-model",
		ScriptType: types.TypeScript,
		SyntaxOK:   true,
	}
}

func TestStoreRecordAndList(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, sampleRecord("run-1", base, types.BackendAnthropic)))
	require.NoError(t, store.Record(ctx, sampleRecord("run-2", base.Add(time.Hour), types.BackendOpenAI)))
	require.NoError(t, store.Record(ctx, sampleRecord("run-3", base.Add(2*time.Hour), types.BackendAnthropic)))

	t.Run("newest first", func(t *testing.T) {
		records, err := store.List(ctx, ListOptions{})
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "run-3", records[0].ID)
		assert.Equal(t, "run-2", records[1].ID)
		assert.Equal(t, "run-1", records[2].ID)
	})

	t.Run("round-trips fields", func(t *testing.T) {
		records, err := store.List(ctx, ListOptions{Limit: 1})
		require.NoError(t, err)
		require.Len(t, records, 1)

		rec := records[0]
		assert.Equal(t, base.Add(2*time.Hour), rec.CreatedAt)
		assert.Equal(t, "notes/standup.txt", rec.NotesPath)
		assert.Equal(t, types.BackendAnthropic, rec.Backend)
		assert.Equal(t, types.TypeScript, rec.ScriptType)
		assert.True(t, rec.SyntaxOK)
		assert.False(t, rec.Repaired)
	})

	t.Run("backend filter", func(t *testing.T) {
		records, err := store.List(ctx, ListOptions{Backend: types.BackendOpenAI})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "run-2", records[0].ID)
	})

	t.Run("limit caps results", func(t *testing.T) {
		records, err := store.List(ctx, ListOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestStoreDuplicateIDRejected(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	rec := sampleRecord("dup", time.Now(), types.BackendAnthropic)
	require.NoError(t, store.Record(ctx, rec))
	assert.Error(t, store.Record(ctx, rec))
}

func TestExport(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, sampleRecord("run-1", base, types.BackendAnthropic)))
	require.NoError(t, store.Record(ctx, sampleRecord("run-2", base.Add(time.Hour), types.BackendOpenAI)))

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export.yaml")
		require.NoError(t, store.ExportYAML(ctx, path, ListOptions{}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var records []types.GenerationRecord
		require.NoError(t, yaml.Unmarshal(data, &records))
		require.Len(t, records, 2)
		assert.Equal(t, "run-2", records[0].ID)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export.json")
		require.NoError(t, store.ExportJSON(ctx, path, ListOptions{}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var records []types.GenerationRecord
		require.NoError(t, json.Unmarshal(data, &records))
		require.Len(t, records, 2)
		assert.Equal(t, "test-model", records[0].Model)
	})
}
