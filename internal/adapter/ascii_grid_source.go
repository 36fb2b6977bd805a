package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rhessysweb/patchflow/internal/logging"
	m "github.com/rhessysweb/patchflow/internal/model"
)

// GridFormat names a supported text raster layout.
type GridFormat string

const (
	// FormatGRASSASCII is the output of GRASS r.out.ascii.
	FormatGRASSASCII GridFormat = "grass-ascii"
	// FormatESRIASCII is the ESRI/GDAL AAIGrid layout.
	FormatESRIASCII GridFormat = "esri-ascii"
)

var (
	grassKeys = map[string]bool{
		"north": true, "south": true, "east": true, "west": true,
		"rows": true, "cols": true, "null": true, "type": true, "multiplier": true,
	}
	esriKeys = map[string]bool{
		"ncols": true, "nrows": true, "xllcorner": true, "yllcorner": true,
		"xllcenter": true, "yllcenter": true, "cellsize": true, "nodata_value": true,
	}
)

// ASCIIGridSource serves layers exported as text rasters, one file per layer
// named <dir>/<layer><ext>. All layers must share the reference window.
type ASCIIGridSource struct {
	dir    string
	ext    string
	format GridFormat
	window m.Window
	logger zerolog.Logger
}

// NewASCIIGridSource reads the header of the reference layer to fix the window.
func NewASCIIGridSource(dir, ext string, format GridFormat, reference string) (*ASCIIGridSource, error) {
	if format != FormatGRASSASCII && format != FormatESRIASCII {
		return nil, fmt.Errorf("unsupported raster format %q", format)
	}

	src := &ASCIIGridSource{
		dir:    dir,
		ext:    ext,
		format: format,
		logger: logging.Component("raster"),
	}

	layer, err := src.open(reference)
	if err != nil {
		return nil, err
	}
	defer layer.Close()

	src.window = layer.header.window

	src.logger.Debug().
		Str("layer", reference).
		Int("rows", src.window.Rows).
		Int("cols", src.window.Cols).
		Msg("raster window loaded")

	return src, nil
}

// Window implements RasterSource.
func (s *ASCIIGridSource) Window() m.Window {
	return s.window
}

// OpenLayer implements RasterSource. A layer whose window differs from the
// reference window is rejected.
func (s *ASCIIGridSource) OpenLayer(name string) (RasterLayer, error) {
	layer, err := s.open(name)
	if err != nil {
		return nil, err
	}

	tol := math.Min(s.window.NSRes(), s.window.EWRes()) * 1e-3
	if !layer.header.window.SameGrid(s.window, tol) {
		layer.Close()

		return nil, &m.ResourceError{
			Layer: name,
			Op:    "open",
			Err:   fmt.Errorf("window %+v does not match %+v", layer.header.window, s.window),
		}
	}

	return layer, nil
}

// LayerPath returns the file backing name.
func (s *ASCIIGridSource) LayerPath(name string) string {
	return filepath.Join(s.dir, name+s.ext)
}

func (s *ASCIIGridSource) open(name string) (*asciiGridLayer, error) {
	layer := &asciiGridLayer{name: name, path: s.LayerPath(name), format: s.format}
	if err := layer.rewind(); err != nil {
		return nil, err
	}

	return layer, nil
}

type gridHeader struct {
	window     m.Window
	nullToken  string
	nodata     float64
	hasNodata  bool
	multiplier float64
}

type asciiGridLayer struct {
	name   string
	path   string
	format GridFormat
	header gridHeader

	file *os.File
	tok  *tokenReader
	next int
}

func (l *asciiGridLayer) Name() string { return l.name }

func (l *asciiGridLayer) ReadRow(row int, dst []float64) error {
	if l.file == nil {
		return &m.ResourceError{Layer: l.name, Op: "read", Err: errLayerClosed}
	}

	w := l.header.window
	if row < 0 || row >= w.Rows {
		return &m.ResourceError{Layer: l.name, Op: "read", Err: fmt.Errorf("row %d out of range", row)}
	}

	if len(dst) < w.Cols {
		return &m.ResourceError{Layer: l.name, Op: "read", Err: fmt.Errorf("buffer holds %d of %d cols", len(dst), w.Cols)}
	}

	if row < l.next {
		if err := l.rewind(); err != nil {
			return err
		}
	}

	for l.next < row {
		if err := l.readInto(dst); err != nil {
			return err
		}
	}

	return l.readInto(dst)
}

func (l *asciiGridLayer) Close() error {
	if l.file == nil {
		return nil
	}

	err := l.file.Close()
	l.file = nil
	l.tok = nil

	return err
}

func (l *asciiGridLayer) rewind() error {
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}

	f, err := os.Open(l.path)
	if err != nil {
		return &m.ResourceError{Layer: l.name, Op: "open", Err: err}
	}

	tok := newTokenReader(f)

	header, err := readGridHeader(tok, l.format)
	if err != nil {
		_ = f.Close()
		return &m.ResourceError{Layer: l.name, Op: "header", Err: err}
	}

	l.file = f
	l.tok = tok
	l.header = header
	l.next = 0

	return nil
}

func (l *asciiGridLayer) readInto(dst []float64) error {
	for col := 0; col < l.header.window.Cols; col++ {
		t, err := l.tok.next()
		if err != nil {
			return &m.ResourceError{Layer: l.name, Op: "read", Err: fmt.Errorf("row %d col %d: %w", l.next, col, err)}
		}

		v, err := l.header.value(t)
		if err != nil {
			return &m.ResourceError{Layer: l.name, Op: "read", Err: fmt.Errorf("row %d col %d: %w", l.next, col, err)}
		}

		dst[col] = v
	}

	l.next++

	return nil
}

func (h gridHeader) value(t string) (float64, error) {
	if t == h.nullToken {
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("bad cell value %q", t)
	}

	if h.hasNodata && v == h.nodata {
		return math.NaN(), nil
	}

	return v * h.multiplier, nil
}

func readGridHeader(tok *tokenReader, format GridFormat) (gridHeader, error) {
	keys := grassKeys
	if format == FormatESRIASCII {
		keys = esriKeys
	}

	vals := make(map[string]string)

	for {
		t, err := tok.next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return gridHeader{}, err
		}

		key := strings.ToLower(strings.TrimSuffix(t, ":"))
		if !keys[key] {
			tok.unread(t)
			break
		}

		val, err := tok.next()
		if err != nil {
			return gridHeader{}, fmt.Errorf("header key %q has no value: %w", key, err)
		}

		vals[key] = val
	}

	var (
		h   gridHeader
		err error
	)

	if format == FormatESRIASCII {
		h, err = esriHeader(vals)
	} else {
		h, err = grassHeader(vals)
	}

	if err != nil {
		return gridHeader{}, err
	}

	return h, h.window.Validate()
}

func grassHeader(vals map[string]string) (gridHeader, error) {
	h := gridHeader{nullToken: "*", multiplier: 1}

	var err error

	fields := []struct {
		key string
		dst *float64
	}{
		{"north", &h.window.North},
		{"south", &h.window.South},
		{"east", &h.window.East},
		{"west", &h.window.West},
	}
	for _, f := range fields {
		if *f.dst, err = headerFloat(vals, f.key); err != nil {
			return h, err
		}
	}

	if h.window.Rows, err = headerInt(vals, "rows"); err != nil {
		return h, err
	}

	if h.window.Cols, err = headerInt(vals, "cols"); err != nil {
		return h, err
	}

	if null, ok := vals["null"]; ok {
		h.nullToken = null
		if v, err := strconv.ParseFloat(null, 64); err == nil {
			h.nodata, h.hasNodata = v, true
		}
	}

	if _, ok := vals["multiplier"]; ok {
		if h.multiplier, err = headerFloat(vals, "multiplier"); err != nil {
			return h, err
		}
	}

	return h, nil
}

func esriHeader(vals map[string]string) (gridHeader, error) {
	h := gridHeader{nullToken: "", nodata: -9999, hasNodata: true, multiplier: 1}

	var err error

	if h.window.Cols, err = headerInt(vals, "ncols"); err != nil {
		return h, err
	}

	if h.window.Rows, err = headerInt(vals, "nrows"); err != nil {
		return h, err
	}

	cell, err := headerFloat(vals, "cellsize")
	if err != nil {
		return h, err
	}

	west, err := esriOrigin(vals, "xllcorner", "xllcenter", cell)
	if err != nil {
		return h, err
	}

	south, err := esriOrigin(vals, "yllcorner", "yllcenter", cell)
	if err != nil {
		return h, err
	}

	h.window.West = west
	h.window.South = south
	h.window.East = west + float64(h.window.Cols)*cell
	h.window.North = south + float64(h.window.Rows)*cell

	if _, ok := vals["nodata_value"]; ok {
		if h.nodata, err = headerFloat(vals, "nodata_value"); err != nil {
			return h, err
		}
	}

	return h, nil
}

func esriOrigin(vals map[string]string, corner, center string, cell float64) (float64, error) {
	if _, ok := vals[corner]; ok {
		return headerFloat(vals, corner)
	}

	v, err := headerFloat(vals, center)
	if err != nil {
		return 0, fmt.Errorf("header needs %s or %s", corner, center)
	}

	return v - cell/2, nil
}

func headerFloat(vals map[string]string, key string) (float64, error) {
	s, ok := vals[key]
	if !ok {
		return 0, fmt.Errorf("header missing %q", key)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("header %q: %w", key, err)
	}

	return v, nil
}

func headerInt(vals map[string]string, key string) (int, error) {
	s, ok := vals[key]
	if !ok {
		return 0, fmt.Errorf("header missing %q", key)
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("header %q: %w", key, err)
	}

	return v, nil
}

// tokenReader yields whitespace-separated tokens with one token of pushback.
type tokenReader struct {
	sc      *bufio.Scanner
	pending string
	hasPend bool
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

func (t *tokenReader) next() (string, error) {
	if t.hasPend {
		t.hasPend = false
		return t.pending, nil
	}

	if t.sc.Scan() {
		return t.sc.Text(), nil
	}

	if err := t.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func (t *tokenReader) unread(s string) {
	t.pending = s
	t.hasPend = true
}
