package flowtableio

import (
	"bytes"
	"fmt"
	"io"

	m "github.com/rhessysweb/patchflow/internal/model"
)

// Line layouts. Every record line starts with a newline and the file has no
// trailing newline, so Write(Read(x)) reproduces x byte for byte.
const (
	headerFormat   = "%8d"
	entryFormat    = "\n %6d %6d %6d %6.1f %6.1f %6.1f %10f %d %4d %f %4d"
	receiverFormat = "\n%16d %6d %6d %8.8f  "
	roadFormat     = "\n%16d %6d %6d %f"
)

// Write serializes t. The header is the current number of patches. Output is
// buffered, so nothing reaches w when a record is inconsistent.
func Write(w io.Writer, t *m.FlowTable) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, headerFormat, t.Len())

	err := t.Each(func(id m.FQPatchID, rec *m.Record) error {
		return writeRecord(&buf, id, rec)
	})
	if err != nil {
		return err
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write flow table: %w", err)
	}

	return nil
}

func writeRecord(buf *bytes.Buffer, id m.FQPatchID, rec *m.Record) error {
	e := rec.Entry

	if e.NumAdjacent != len(rec.Receivers) {
		return fmt.Errorf("patch %s declares %d receivers but holds %d", id, e.NumAdjacent, len(rec.Receivers))
	}

	if e.IsRoad() != (rec.Road != nil) {
		return fmt.Errorf("patch %s: land type %d does not match road record", id, e.LandType)
	}

	fmt.Fprintf(buf, entryFormat,
		e.PatchID, e.ZoneID, e.HillID,
		e.X, e.Y, e.Z,
		e.AccumArea, e.Area, e.LandType,
		e.TotalGamma, e.NumAdjacent)

	for _, recv := range rec.Receivers {
		fmt.Fprintf(buf, receiverFormat, recv.ID.PatchID, recv.ID.ZoneID, recv.ID.HillID, recv.Gamma)
	}

	if rec.Road != nil {
		r := rec.Road
		fmt.Fprintf(buf, roadFormat, r.Stream.PatchID, r.Stream.ZoneID, r.Stream.HillID, r.RoadWidth)
	}

	return nil
}
