package flowtableio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/rhessysweb/patchflow/internal/model"
)

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	table, err := readString(t, canonical)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))

	assert.Equal(t, canonical, buf.String())
}

func TestWrite_PreservesOrder(t *testing.T) {
	t.Parallel()

	table, err := readString(t, canonical)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))

	again, err := readString(t, buf.String())
	require.NoError(t, err)
	assert.Equal(t, table.Keys(), again.Keys())
}

func TestWrite_NormalizesParsedInput(t *testing.T) {
	t.Parallel()

	in := "2\n 100 1 1 10.0 10.0 5.0 100.000000 1 1 0.500000 1\n 200 1 1 0.5\n 200 1 1 20.0 20.0 6.0 200.000000 2 1 1.000000 0\n"

	table, err := readString(t, in)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))

	want := "       2" +
		"\n    100      1      1   10.0   10.0    5.0 100.000000 1    1 0.500000    1" +
		"\n             200      1      1 0.50000000  " +
		"\n    200      1      1   20.0   20.0    6.0 200.000000 2    1 1.000000    0"
	assert.Equal(t, want, buf.String())
}

func TestWrite_EditedGammaIsWritten(t *testing.T) {
	t.Parallel()

	table, err := readString(t, canonical)
	require.NoError(t, err)

	recvs, err := ReceiversForKey(table, id(100, 1, 1))
	require.NoError(t, err)
	recvs[0].Gamma = 0.25

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))
	assert.Contains(t, buf.String(), "\n             200      1      1 0.25000000  ")
}

func TestWrite_InconsistentRecordWritesNothing(t *testing.T) {
	t.Parallel()

	table, err := readString(t, canonical)
	require.NoError(t, err)

	rec, _ := table.Record(id(200, 1, 1))
	rec.Road = nil

	var buf bytes.Buffer
	err = Write(&buf, table)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	t.Parallel()

	table := m.NewFlowTable()
	require.ErrorContains(t, Write(failingWriter{}, table), "disk full")
}
