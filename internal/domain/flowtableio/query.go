package flowtableio

import (
	m "github.com/rhessysweb/patchflow/internal/model"
)

// EntryForKey returns the entry of the patch id.
func EntryForKey(t *m.FlowTable, id m.FQPatchID) (m.Entry, error) {
	rec, ok := t.Record(id)
	if !ok {
		return m.Entry{}, &m.KeyNotFoundError{ID: id}
	}

	if rec == nil || rec.Entry.ID() != id {
		return m.Entry{}, malformed(0, "record for patch "+id.String()+" has no entry", nil)
	}

	return rec.Entry, nil
}

// ReceiversForKey returns the receivers of id in file order. The pointers are
// shared with the table, so gamma edits through them stick.
func ReceiversForKey(t *m.FlowTable, id m.FQPatchID) ([]*m.Receiver, error) {
	rec, ok := t.Record(id)
	if !ok {
		return nil, &m.KeyNotFoundError{ID: id}
	}

	return rec.Receivers, nil
}
