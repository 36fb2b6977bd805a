package adapter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	m "github.com/rhessysweb/patchflow/internal/model"
)

// Point is one input row of a coordinate file. Its meaning (lat/lon or
// easting/northing) is decided by the caller.
type Point struct {
	Line int
	A, B float64
}

// PointReader reads coordinate lists.
type PointReader interface {
	ReadPoints(path m.Path) ([]Point, error)
}

// CSVPointReader reads comma separated coordinate files. The first line is a
// header and is skipped; extra columns are ignored.
type CSVPointReader struct{}

// NewCSVPointReader constructs a CSVPointReader.
func NewCSVPointReader() *CSVPointReader {
	return &CSVPointReader{}
}

// ReadPoints implements PointReader.
func (CSVPointReader) ReadPoints(path m.Path) ([]Point, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open coordinates: %w", err)
	}
	defer f.Close()

	return readPoints(f)
}

func readPoints(r io.Reader) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var points []Point

	for n := 0; ; n++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("coordinates: %w", err)
		}

		if n == 0 {
			continue
		}

		line, _ := cr.FieldPos(0)

		if len(rec) < 2 {
			return nil, fmt.Errorf("coordinates line %d: want 2 columns, got %d", line, len(rec))
		}

		a, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinates line %d: %w", line, err)
		}

		b, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinates line %d: %w", line, err)
		}

		points = append(points, Point{Line: line, A: a, B: b})
	}

	return points, nil
}
