package flowtableio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/rhessysweb/patchflow/internal/model"
)

func TestEntryForKey(t *testing.T) {
	t.Parallel()

	table, err := readString(t, canonical)
	require.NoError(t, err)

	entry, err := EntryForKey(table, id(200, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, m.LandTypeRoad, entry.LandType)
	assert.InDelta(t, 0.8, entry.TotalGamma, 1e-9)

	_, err = EntryForKey(table, id(200, 1, 2))
	require.ErrorIs(t, err, m.ErrKeyNotFound)
}

func TestReceiversForKey_SharedPointers(t *testing.T) {
	t.Parallel()

	table, err := readString(t, canonical)
	require.NoError(t, err)

	recvs, err := ReceiversForKey(table, id(100, 1, 1))
	require.NoError(t, err)
	require.Len(t, recvs, 2)
	assert.Equal(t, id(200, 1, 1), recvs[0].ID)
	assert.Equal(t, id(300, 2, 1), recvs[1].ID)

	recvs[1].Gamma = 0.9

	again, err := ReceiversForKey(table, id(100, 1, 1))
	require.NoError(t, err)
	assert.InDelta(t, 0.9, again[1].Gamma, 1e-12)

	none, err := ReceiversForKey(table, id(300, 2, 1))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = ReceiversForKey(table, id(999, 1, 1))
	var nf *m.KeyNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, id(999, 1, 1), nf.ID)
}

func TestRebalance(t *testing.T) {
	t.Parallel()

	table, err := readString(t, canonical)
	require.NoError(t, err)

	require.NoError(t, Rebalance(table, id(100, 1, 1)))

	recvs, _ := ReceiversForKey(table, id(100, 1, 1))
	for _, r := range recvs {
		assert.InDelta(t, 0.5, r.Gamma, 1e-12)
	}

	require.Error(t, Rebalance(table, id(300, 2, 1)))
	require.ErrorIs(t, Rebalance(table, id(1, 1, 1)), m.ErrKeyNotFound)
}
