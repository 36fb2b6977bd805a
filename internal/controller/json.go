package controller

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/rhessysweb/patchflow/internal/adapter"
	m "github.com/rhessysweb/patchflow/internal/model"
)

// JSONUI writes machine-readable JSON. In GeoJSON mode coordinate results
// become feature collections; when a projector is set their points are
// converted to WGS84 longitude/latitude.
type JSONUI struct {
	out       io.Writer
	geoJSON   bool
	projector adapter.Projector
}

// NewJSONUI creates a new JSONUI. projector may be nil.
func NewJSONUI(out io.Writer, geoJSON bool, projector adapter.Projector) *JSONUI {
	return &JSONUI{out: out, geoJSON: geoJSON, projector: projector}
}

type idJSON struct {
	PatchID int32 `json:"patchID"`
	ZoneID  int32 `json:"zoneID"`
	HillID  int32 `json:"hillID"`
}

type entryJSON struct {
	idJSON

	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	AccumArea   float64 `json:"accumArea"`
	Area        int     `json:"area"`
	LandType    int32   `json:"landType"`
	TotalGamma  float64 `json:"totalGamma"`
	NumAdjacent int     `json:"numAdjacent"`
}

type receiverJSON struct {
	idJSON

	Gamma float64 `json:"gamma"`
}

type roadJSON struct {
	Stream    idJSON  `json:"stream"`
	RoadWidth float64 `json:"roadWidth"`
}

type recordJSON struct {
	Entry     entryJSON      `json:"entry"`
	Receivers []receiverJSON `json:"receivers"`
	Road      *roadJSON      `json:"road,omitempty"`
}

type tableJSON struct {
	DeclaredCount int          `json:"declaredCount"`
	Patches       []recordJSON `json:"patches"`
}

type findingJSON struct {
	Severity string  `json:"severity"`
	Patch    *idJSON `json:"patch,omitempty"`
	Message  string  `json:"message"`
}

type coordJSON struct {
	Easting  float64 `json:"easting"`
	Northing float64 `json:"northing"`
}

type patchCoordsJSON struct {
	idJSON

	Cells    []coordJSON `json:"cells,omitempty"`
	Centroid *coordJSON  `json:"centroid,omitempty"`
	Count    int         `json:"count"`
}

type locationJSON struct {
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	Easting  float64  `json:"easting"`
	Northing float64  `json:"northing"`
	Patch    *idJSON  `json:"patch,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func toIDJSON(id m.FQPatchID) idJSON {
	return idJSON{PatchID: id.PatchID, ZoneID: id.ZoneID, HillID: id.HillID}
}

func toRecordJSON(rec *m.Record) recordJSON {
	e := rec.Entry
	out := recordJSON{
		Entry: entryJSON{
			idJSON: toIDJSON(e.ID()),
			X:      e.X, Y: e.Y, Z: e.Z,
			AccumArea: e.AccumArea, Area: e.Area,
			LandType:   int32(e.LandType),
			TotalGamma: e.TotalGamma, NumAdjacent: e.NumAdjacent,
		},
		Receivers: make([]receiverJSON, 0, len(rec.Receivers)),
	}

	for _, r := range rec.Receivers {
		out.Receivers = append(out.Receivers, receiverJSON{idJSON: toIDJSON(r.ID), Gamma: r.Gamma})
	}

	if rec.Road != nil {
		out.Road = &roadJSON{Stream: toIDJSON(rec.Road.Stream), RoadWidth: rec.Road.RoadWidth}
	}

	return out
}

// DisplayTable implements UI.
func (j *JSONUI) DisplayTable(table *m.FlowTable) error {
	doc := tableJSON{DeclaredCount: table.DeclaredCount, Patches: make([]recordJSON, 0, table.Len())}

	_ = table.Each(func(_ m.FQPatchID, rec *m.Record) error {
		doc.Patches = append(doc.Patches, toRecordJSON(rec))
		return nil
	})

	return j.encode(doc)
}

// DisplayRecord implements UI.
func (j *JSONUI) DisplayRecord(_ m.FQPatchID, rec *m.Record) error {
	return j.encode(toRecordJSON(rec))
}

// DisplayFindings implements UI.
func (j *JSONUI) DisplayFindings(findings []m.Finding) error {
	out := make([]findingJSON, 0, len(findings))

	for _, f := range findings {
		fj := findingJSON{Severity: string(f.Severity), Message: f.Message}
		if f.ID != (m.FQPatchID{}) {
			id := toIDJSON(f.ID)
			fj.Patch = &id
		}

		out = append(out, fj)
	}

	return j.encode(out)
}

// DisplayPatchCoordinates implements UI.
func (j *JSONUI) DisplayPatchCoordinates(pc *m.PatchCoordinates, centroids bool) error {
	if j.geoJSON {
		return j.patchFeatures(pc, centroids)
	}

	cents := pc.Centroids()
	out := make([]patchCoordsJSON, 0, len(pc.IDs))

	for _, id := range pc.IDs {
		coords := pc.Get(id)
		p := patchCoordsJSON{idJSON: toIDJSON(id), Count: len(coords)}

		if centroids {
			if c, ok := cents[id]; ok {
				p.Centroid = &coordJSON{Easting: c.Easting, Northing: c.Northing}
			}
		} else {
			p.Cells = make([]coordJSON, 0, len(coords))
			for _, c := range coords {
				p.Cells = append(p.Cells, coordJSON{Easting: c.Easting, Northing: c.Northing})
			}
		}

		out = append(out, p)
	}

	return j.encode(out)
}

// DisplayLocations implements UI.
func (j *JSONUI) DisplayLocations(locs []m.Location) error {
	if j.geoJSON {
		return j.locationFeatures(locs)
	}

	out := make([]locationJSON, 0, len(locs))

	for _, l := range locs {
		lj := locationJSON{Easting: l.Coordinate.Easting, Northing: l.Coordinate.Northing}

		if l.Geographic {
			lat, lon := l.Lat, l.Lon
			lj.Lat, lj.Lon = &lat, &lon
		}

		if l.Err != nil {
			lj.Error = l.Err.Error()
		} else {
			id := toIDJSON(l.ID)
			lj.Patch = &id
		}

		out = append(out, lj)
	}

	return j.encode(out)
}

// DisplayNotice is silent so that stdout stays valid JSON.
func (j *JSONUI) DisplayNotice(_ string) {}

func (j *JSONUI) patchFeatures(pc *m.PatchCoordinates, centroids bool) error {
	fc := geojson.NewFeatureCollection()
	cents := pc.Centroids()

	for _, id := range pc.IDs {
		var geom orb.Geometry

		if centroids {
			c, ok := cents[id]
			if !ok {
				continue
			}

			p, err := j.point(c)
			if err != nil {
				return err
			}

			geom = p
		} else {
			coords := pc.Get(id)
			if len(coords) == 0 {
				continue
			}

			mp := make(orb.MultiPoint, 0, len(coords))

			for _, c := range coords {
				p, err := j.point(c)
				if err != nil {
					return err
				}

				mp = append(mp, p)
			}

			geom = mp
		}

		f := geojson.NewFeature(geom)
		setIDProperties(f, id)
		f.Properties["cells"] = len(pc.Get(id))
		fc.Append(f)
	}

	return j.encodeGeoJSON(fc)
}

func (j *JSONUI) locationFeatures(locs []m.Location) error {
	fc := geojson.NewFeatureCollection()

	for _, l := range locs {
		var p orb.Point

		if l.Geographic {
			p = orb.Point{l.Lon, l.Lat}
		} else {
			var err error
			if p, err = j.point(l.Coordinate); err != nil {
				return err
			}
		}

		f := geojson.NewFeature(p)
		f.Properties["easting"] = l.Coordinate.Easting
		f.Properties["northing"] = l.Coordinate.Northing

		if l.Err != nil {
			f.Properties["error"] = l.Err.Error()
		} else {
			setIDProperties(f, l.ID)
		}

		fc.Append(f)
	}

	return j.encodeGeoJSON(fc)
}

// point returns c as a GeoJSON position, in lon/lat when a projector is set.
func (j *JSONUI) point(c m.CoordinatePair) (orb.Point, error) {
	if j.projector == nil {
		return orb.Point{c.Easting, c.Northing}, nil
	}

	lat, lon, err := j.projector.ToGeographic(c)
	if err != nil {
		return orb.Point{}, err
	}

	return orb.Point{lon, lat}, nil
}

func setIDProperties(f *geojson.Feature, id m.FQPatchID) {
	f.Properties["patchID"] = id.PatchID
	f.Properties["zoneID"] = id.ZoneID
	f.Properties["hillID"] = id.HillID
}

func (j *JSONUI) encodeGeoJSON(fc *geojson.FeatureCollection) error {
	raw, err := fc.MarshalJSON()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}

	buf.WriteByte('\n')

	_, err = buf.WriteTo(j.out)

	return err
}

func (j *JSONUI) encode(v any) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
