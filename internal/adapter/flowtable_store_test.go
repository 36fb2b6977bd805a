package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/rhessysweb/patchflow/internal/model"
)

const storeTable = "       2" +
	"\n    100      1      1   10.0   10.0    5.0 100.000000 1    1 0.500000    1" +
	"\n             200      1      1 0.50000000  " +
	"\n    200      1      1   20.0   20.0    6.0 200.000000 2    1 1.000000    0"

func TestLocalFlowTableStore_LoadSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "flow.txt")
	require.NoError(t, os.WriteFile(src, []byte(storeTable), 0o640))

	store := NewLocalFlowTableStore()

	table, err := store.Load(m.Path(src), true)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	rec, ok := table.Record(m.FQPatchID{PatchID: 100, ZoneID: 1, HillID: 1})
	require.True(t, ok)
	rec.Receivers[0].Gamma = 0.25

	require.NoError(t, store.Save(m.Path(src), table))

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Contains(t, string(data), "0.25000000")

	info, err := os.Stat(src)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestLocalFlowTableStore_SaveFailureKeepsOriginal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "flow.txt")
	require.NoError(t, os.WriteFile(src, []byte(storeTable), 0o600))

	store := NewLocalFlowTableStore()

	table, err := store.Load(m.Path(src), false)
	require.NoError(t, err)

	rec, _ := table.Record(m.FQPatchID{PatchID: 100, ZoneID: 1, HillID: 1})
	rec.Receivers = nil

	require.Error(t, store.Save(m.Path(src), table))

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, storeTable, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalFlowTableStore_LoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalFlowTableStore()

	_, err := store.Load(m.Path(filepath.Join(dir, "absent.txt")), false)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("5\n 1 2"), 0o600))

	_, err = store.Load(m.Path(bad), false)
	require.ErrorIs(t, err, m.ErrMalformedTable)

	_, err = store.Load(m.Path(filepath.Join(dir, "bad.txt")), true)
	require.ErrorIs(t, err, m.ErrMalformedTable)
}
