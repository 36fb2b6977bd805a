package flowtableio

import (
	"fmt"
	"math"

	m "github.com/rhessysweb/patchflow/internal/model"
)

// DefaultGammaTolerance is the allowed gap between TotalGamma and the sum of
// receiver gammas.
const DefaultGammaTolerance = 1e-4

// CheckOptions tunes Check.
type CheckOptions struct {
	// StrictHeader turns a header count mismatch into an error.
	StrictHeader   bool
	GammaTolerance float64
}

// Check runs a diagnostic pass over t without modifying it. Findings come in
// table order, header first.
func Check(t *m.FlowTable, opts CheckOptions) []m.Finding {
	tol := opts.GammaTolerance
	if tol <= 0 {
		tol = DefaultGammaTolerance
	}

	var findings []m.Finding

	if t.DeclaredCount != t.Len() {
		sev := m.SeverityWarning
		if opts.StrictHeader {
			sev = m.SeverityError
		}

		findings = append(findings, m.Finding{
			Severity: sev,
			Message:  fmt.Sprintf("header declares %d patches, table has %d", t.DeclaredCount, t.Len()),
		})
	}

	_ = t.Each(func(id m.FQPatchID, rec *m.Record) error {
		findings = append(findings, checkRecord(t, id, rec, tol)...)
		return nil
	})

	return findings
}

func checkRecord(t *m.FlowTable, id m.FQPatchID, rec *m.Record, tol float64) []m.Finding {
	var out []m.Finding

	add := func(sev m.Severity, format string, args ...any) {
		out = append(out, m.Finding{Severity: sev, ID: id, Message: fmt.Sprintf(format, args...)})
	}

	if rec.Entry.NumAdjacent != len(rec.Receivers) {
		add(m.SeverityError, "declares %d receivers, holds %d", rec.Entry.NumAdjacent, len(rec.Receivers))
	}

	for _, recv := range rec.Receivers {
		if recv.Gamma < 0 {
			add(m.SeverityError, "receiver %s has negative gamma %f", recv.ID, recv.Gamma)
		}

		if _, ok := t.Record(recv.ID); !ok {
			add(m.SeverityError, "receiver %s is not in the table", recv.ID)
		}
	}

	if rec.Road != nil {
		if _, ok := t.Record(rec.Road.Stream); !ok {
			add(m.SeverityError, "road stream %s is not in the table", rec.Road.Stream)
		}
	}

	if len(rec.Receivers) == 0 {
		return out
	}

	sum := rec.ReceiverGammaSum()
	gap := rec.Entry.TotalGamma - sum

	// Roads divert part of the flow, so receivers may sum to less than the total.
	if math.Abs(gap) > tol && !(rec.Entry.IsRoad() && gap > 0) {
		add(m.SeverityWarning, "receiver gammas sum to %f, total gamma is %f", sum, rec.Entry.TotalGamma)
	}

	return out
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []m.Finding) bool {
	for _, f := range findings {
		if f.Severity == m.SeverityError {
			return true
		}
	}

	return false
}
