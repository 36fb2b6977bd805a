// Package flowtableio reads and writes RHESSys flow tables.
//
// A flow table file starts with a patch count line, followed by one record per
// patch: an 11-field entry line, one 4-field line per receiver and, for road
// patches, a final 4-field road line.
package flowtableio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rhessysweb/patchflow/internal/logging"
	m "github.com/rhessysweb/patchflow/internal/model"
)

const (
	entryFields = 11
	itemFields  = 4

	maxLineBytes = 1 << 20
)

type readOptions struct {
	strictHeader bool
	logger       *zerolog.Logger
}

// ReadOption configures Read.
type ReadOption func(*readOptions)

// WithStrictHeader makes Read fail when the header count differs from the
// number of patches in the file.
func WithStrictHeader() ReadOption {
	return func(o *readOptions) { o.strictHeader = true }
}

// WithLogger sets the logger used for parse summaries.
func WithLogger(l zerolog.Logger) ReadOption {
	return func(o *readOptions) { o.logger = &l }
}

type parseState int

const (
	awaitingEntry parseState = iota
	readingReceivers
	readingRoad
	entryClosed
)

func (s parseState) String() string {
	switch s {
	case awaitingEntry:
		return "awaiting entry"
	case readingReceivers:
		return "reading receivers"
	case readingRoad:
		return "reading road"
	case entryClosed:
		return "entry closed"
	default:
		return "unknown"
	}
}

// parser holds the state machine. cur is the open record; expected and read
// count its receivers.
type parser struct {
	table    *m.FlowTable
	state    parseState
	cur      *m.Record
	curLine  int
	expected int
	read     int
}

// Read parses a flow table. Any structural problem stops parsing with a
// *m.MalformedTableError carrying the 1-based line number.
func Read(r io.Reader, opts ...ReadOption) (*m.FlowTable, error) {
	o := readOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.Component("flowtableio")
	if o.logger != nil {
		logger = *o.logger
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	p := &parser{table: m.NewFlowTable(), state: awaitingEntry}
	line := 0

	for sc.Scan() {
		line++

		fields := strings.Fields(sc.Text())

		if line == 1 {
			count, err := parseHeader(fields)
			if err != nil {
				return nil, malformed(1, err.Error(), nil)
			}

			p.table.DeclaredCount = count

			continue
		}

		if len(fields) == 0 {
			continue
		}

		if err := p.feed(line, fields); err != nil {
			return nil, err
		}
	}

	if err := sc.Err(); err != nil {
		return nil, malformed(line+1, "read failed", err)
	}

	if line == 0 {
		return nil, malformed(1, "missing header", nil)
	}

	if err := p.finish(); err != nil {
		return nil, err
	}

	if o.strictHeader && p.table.DeclaredCount != p.table.Len() {
		return nil, malformed(1, fmt.Sprintf("header declares %d patches, file has %d",
			p.table.DeclaredCount, p.table.Len()), nil)
	}

	logger.Debug().
		Int("patches", p.table.Len()).
		Int("declared", p.table.DeclaredCount).
		Int("lines", line).
		Msg("flow table parsed")

	return p.table, nil
}

func parseHeader(fields []string) (int, error) {
	if len(fields) != 1 {
		return 0, fmt.Errorf("header must hold one patch count, got %d fields", len(fields))
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("bad header %q", fields[0])
	}

	return n, nil
}

func (p *parser) feed(line int, fields []string) error {
	switch len(fields) {
	case entryFields:
		return p.onEntry(line, fields)
	case itemFields:
		return p.onItem(line, fields)
	default:
		return malformed(line, fmt.Sprintf("expected %d or %d fields, got %d", entryFields, itemFields, len(fields)), nil)
	}
}

func (p *parser) onEntry(line int, fields []string) error {
	switch p.state {
	case readingReceivers:
		return malformed(line, fmt.Sprintf("patch %s declared %d receivers but has %d",
			p.cur.Entry.ID(), p.expected, p.read), nil)
	case readingRoad:
		return malformed(line, fmt.Sprintf("road patch %s has no road record", p.cur.Entry.ID()), nil)
	case awaitingEntry, entryClosed:
	}

	entry, err := parseEntry(fields)
	if err != nil {
		return malformed(line, "bad entry", err)
	}

	rec := &m.Record{Entry: entry}
	if err := p.table.Append(rec); err != nil {
		return malformed(line, err.Error(), nil)
	}

	p.cur = rec
	p.curLine = line
	p.expected = entry.NumAdjacent
	p.read = 0
	p.advance()

	return nil
}

func (p *parser) onItem(line int, fields []string) error {
	switch p.state {
	case awaitingEntry:
		return malformed(line, "receiver line before any entry", nil)
	case entryClosed:
		return malformed(line, fmt.Sprintf("patch %s has more than %d receivers",
			p.cur.Entry.ID(), p.expected), nil)
	case readingRoad:
		road, err := parseRoad(fields)
		if err != nil {
			return malformed(line, "bad road", err)
		}

		p.cur.Road = road
		p.state = entryClosed

		return nil
	case readingReceivers:
	}

	recv, err := parseReceiver(fields)
	if err != nil {
		return malformed(line, "bad receiver", err)
	}

	p.cur.Receivers = append(p.cur.Receivers, recv)
	p.read++
	p.advance()

	return nil
}

// advance leaves readingReceivers once the declared count is reached.
func (p *parser) advance() {
	if p.read < p.expected {
		p.state = readingReceivers
		return
	}

	if p.cur.Entry.IsRoad() {
		p.state = readingRoad
		return
	}

	p.state = entryClosed
}

// finish reports a record left open at end of file against its entry line.
func (p *parser) finish() error {
	switch p.state {
	case readingReceivers:
		return malformed(p.curLine, fmt.Sprintf("unexpected end of file: patch %s declared %d receivers but has %d",
			p.cur.Entry.ID(), p.expected, p.read), nil)
	case readingRoad:
		return malformed(p.curLine, fmt.Sprintf("unexpected end of file: road patch %s has no road record",
			p.cur.Entry.ID()), nil)
	case awaitingEntry, entryClosed:
	}

	return nil
}

func parseEntry(f []string) (m.Entry, error) {
	var (
		e   m.Entry
		err error
	)

	if e.PatchID, e.ZoneID, e.HillID, err = parseTriple(f[0:3]); err != nil {
		return e, err
	}

	floats := []*float64{&e.X, &e.Y, &e.Z, &e.AccumArea}
	for i, dst := range floats {
		if *dst, err = parseFloat(f[3+i]); err != nil {
			return e, err
		}
	}

	if e.Area, err = parseInt(f[7]); err != nil {
		return e, err
	}

	landType, err := strconv.ParseInt(f[8], 10, 32)
	if err != nil {
		return e, fmt.Errorf("land type %q: %w", f[8], err)
	}

	e.LandType = m.LandType(landType)

	if e.TotalGamma, err = parseFloat(f[9]); err != nil {
		return e, err
	}

	numAdjacent, err := strconv.ParseInt(f[10], 10, 32)
	if err != nil {
		return e, fmt.Errorf("receiver count %q: %w", f[10], err)
	}

	e.NumAdjacent = int(numAdjacent)

	if e.NumAdjacent < 0 {
		return e, fmt.Errorf("negative receiver count %d", e.NumAdjacent)
	}

	return e, nil
}

func parseReceiver(f []string) (*m.Receiver, error) {
	id, err := parseID(f[0:3])
	if err != nil {
		return nil, err
	}

	gamma, err := parseFloat(f[3])
	if err != nil {
		return nil, err
	}

	return &m.Receiver{ID: id, Gamma: gamma}, nil
}

func parseRoad(f []string) (*m.Road, error) {
	id, err := parseID(f[0:3])
	if err != nil {
		return nil, err
	}

	width, err := parseFloat(f[3])
	if err != nil {
		return nil, err
	}

	return &m.Road{Stream: id, RoadWidth: width}, nil
}

func parseID(f []string) (m.FQPatchID, error) {
	p, z, h, err := parseTriple(f)
	return m.FQPatchID{PatchID: p, ZoneID: z, HillID: h}, err
}

func parseTriple(f []string) (p, z, h int32, err error) {
	vals := [3]int32{}

	for i := range vals {
		v, err := strconv.ParseInt(f[i], 10, 32)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("id %q: %w", f[i], err)
		}

		vals[i] = int32(v)
	}

	return vals[0], vals[1], vals[2], nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("integer %q: %w", s, err)
	}

	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", s, err)
	}

	return v, nil
}

func malformed(line int, reason string, err error) *m.MalformedTableError {
	return &m.MalformedTableError{Line: line, Reason: reason, Err: err}
}
