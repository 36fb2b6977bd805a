// Package domain implements the patchflow workflows: flow table inspection
// and editing, and raster patch lookups.
package domain

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rhessysweb/patchflow/internal/adapter"
	"github.com/rhessysweb/patchflow/internal/controller"
	"github.com/rhessysweb/patchflow/internal/domain/flowtableio"
	"github.com/rhessysweb/patchflow/internal/domain/patchlookup"
	m "github.com/rhessysweb/patchflow/internal/model"
)

// ErrCheckFailed is returned by Check when the table has error findings.
var ErrCheckFailed = errors.New("flow table check failed")

// ErrNoProjector is returned when geographic input is used without a projection.
var ErrNoProjector = errors.New("no projection configured for geographic coordinates")

// TableArgs names a flow table file.
type TableArgs struct {
	Path         m.Path
	StrictHeader bool
}

// ShowArgs holds the arguments for Show.
type ShowArgs struct {
	TableArgs
}

// ReceiversArgs holds the arguments for Receivers.
type ReceiversArgs struct {
	TableArgs

	ID m.FQPatchID
}

// CheckArgs holds the arguments for Check. StrictHeader makes a header
// mismatch an error finding instead of a parse failure.
type CheckArgs struct {
	TableArgs

	GammaTolerance float64
}

// FormatArgs holds the arguments for Format. An empty Out rewrites the input.
type FormatArgs struct {
	TableArgs

	Out m.Path
}

// RebalanceArgs holds the arguments for Rebalance.
type RebalanceArgs struct {
	TableArgs

	IDs []m.FQPatchID
	Out m.Path
}

// EditArgs holds the arguments for Edit.
type EditArgs struct {
	TableArgs

	Out m.Path
}

// CoordinatesArgs holds the arguments for Coordinates. When ReceiversOf is
// set the patch and its receivers, read from Table, are looked up as well.
type CoordinatesArgs struct {
	IDs         []m.FQPatchID
	ReceiversOf *m.FQPatchID
	Table       TableArgs
	Centroid    bool
}

// AtArgs holds the arguments for At. With Geographic set, X is latitude and
// Y is longitude; otherwise they are easting and northing.
type AtArgs struct {
	X, Y       float64
	Geographic bool
}

// LocateArgs holds the arguments for Locate.
type LocateArgs struct {
	Input      m.Path
	Geographic bool
}

// Workflow defines the patchflow operations behind the CLI commands.
type Workflow interface {
	Show(args ShowArgs) error
	Receivers(args ReceiversArgs) error
	Check(args CheckArgs) error
	Format(args FormatArgs) error
	Rebalance(args RebalanceArgs) error
	Edit(args EditArgs) error
	Coordinates(args CoordinatesArgs) error
	At(args AtArgs) error
	Locate(args LocateArgs) error
}

// RasterSourceFactory opens the raster source on first use.
type RasterSourceFactory func() (adapter.RasterSource, error)

// Deps are the collaborators of a Workflow. Projector may be nil.
type Deps struct {
	Store     adapter.FlowTableStore
	Points    adapter.PointReader
	Rasters   RasterSourceFactory
	Projector adapter.Projector
	Layers    m.LayerSet
	UI        controller.UI
	Editor    controller.Editor
	Logger    zerolog.Logger
}

type workflow struct {
	Deps
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(deps Deps) Workflow {
	return &workflow{Deps: deps}
}

// Show displays every record of a table.
func (w *workflow) Show(args ShowArgs) error {
	table, err := w.Store.Load(args.Path, args.StrictHeader)
	if err != nil {
		return err
	}

	return w.UI.DisplayTable(table)
}

// Receivers displays the record of one patch.
func (w *workflow) Receivers(args ReceiversArgs) error {
	table, err := w.Store.Load(args.Path, args.StrictHeader)
	if err != nil {
		return err
	}

	if _, err := flowtableio.EntryForKey(table, args.ID); err != nil {
		return err
	}

	rec, _ := table.Record(args.ID)

	return w.UI.DisplayRecord(args.ID, rec)
}

// Check displays the findings of a diagnostic pass over the table.
func (w *workflow) Check(args CheckArgs) error {
	table, err := w.Store.Load(args.Path, false)
	if err != nil {
		return err
	}

	findings := flowtableio.Check(table, flowtableio.CheckOptions{
		StrictHeader:   args.StrictHeader,
		GammaTolerance: args.GammaTolerance,
	})

	w.Logger.Info().
		Str("path", string(args.Path)).
		Int("patches", table.Len()).
		Int("findings", len(findings)).
		Msg("flow table checked")

	if err := w.UI.DisplayFindings(findings); err != nil {
		return err
	}

	if flowtableio.HasErrors(findings) {
		return ErrCheckFailed
	}

	return nil
}

// Format rewrites a table in canonical layout.
func (w *workflow) Format(args FormatArgs) error {
	table, err := w.Store.Load(args.Path, args.StrictHeader)
	if err != nil {
		return err
	}

	return w.save(outPath(args.TableArgs, args.Out), table)
}

// Rebalance spreads total gamma evenly over the receivers of each patch.
func (w *workflow) Rebalance(args RebalanceArgs) error {
	if len(args.IDs) == 0 {
		return errors.New("no patches to rebalance")
	}

	table, err := w.Store.Load(args.Path, args.StrictHeader)
	if err != nil {
		return err
	}

	for _, id := range args.IDs {
		if err := flowtableio.Rebalance(table, id); err != nil {
			return err
		}

		w.Logger.Debug().Str("patch", id.String()).Msg("rebalanced")
	}

	return w.save(outPath(args.TableArgs, args.Out), table)
}

// Edit runs the interactive editor; saves go to Out.
func (w *workflow) Edit(args EditArgs) error {
	table, err := w.Store.Load(args.Path, args.StrictHeader)
	if err != nil {
		return err
	}

	out := outPath(args.TableArgs, args.Out)

	return w.Editor.Edit(table, func(t *m.FlowTable) error {
		return w.Store.Save(out, t)
	})
}

// Coordinates displays the cell centres of the requested patches.
func (w *workflow) Coordinates(args CoordinatesArgs) error {
	ids := append([]m.FQPatchID(nil), args.IDs...)

	if args.ReceiversOf != nil {
		related, err := w.receiversOf(args.Table, *args.ReceiversOf)
		if err != nil {
			return err
		}

		ids = append(ids, related...)
	}

	if len(ids) == 0 {
		return errors.New("no patches requested")
	}

	locator, err := w.locator()
	if err != nil {
		return err
	}

	pc, err := locator.CoordinatesForPatchIDs(ids)
	if err != nil {
		return err
	}

	return w.UI.DisplayPatchCoordinates(pc, args.Centroid)
}

// At displays the patch under a single point.
func (w *workflow) At(args AtArgs) error {
	loc := m.Location{Coordinate: m.CoordinatePair{Easting: args.X, Northing: args.Y}}

	if args.Geographic {
		if w.Projector == nil {
			return ErrNoProjector
		}

		c, err := w.Projector.ToProjected(args.X, args.Y)
		if err != nil {
			return err
		}

		loc = m.Location{Lat: args.X, Lon: args.Y, Geographic: true, Coordinate: c}
	}

	locator, err := w.locator()
	if err != nil {
		return err
	}

	id, err := locator.PatchIDForCoordinate(loc.Coordinate)
	if err != nil {
		return err
	}

	loc.ID = id

	return w.UI.DisplayLocations([]m.Location{loc})
}

// Locate resolves every point of a coordinate file. Points that fail are
// reported in place and do not stop the batch.
func (w *workflow) Locate(args LocateArgs) error {
	if args.Geographic && w.Projector == nil {
		return ErrNoProjector
	}

	points, err := w.Points.ReadPoints(args.Input)
	if err != nil {
		return err
	}

	locs := make([]m.Location, len(points))
	coords := make([]m.CoordinatePair, 0, len(points))
	idx := make([]int, 0, len(points))

	for i, p := range points {
		loc, err := w.toLocation(p, args.Geographic)
		locs[i] = loc

		if err != nil {
			locs[i].Err = err
			continue
		}

		coords = append(coords, loc.Coordinate)
		idx = append(idx, i)
	}

	if len(coords) > 0 {
		locator, err := w.locator()
		if err != nil {
			return err
		}

		found, err := locator.PatchIDsForCoordinates(coords)
		if err != nil {
			return err
		}

		for j, f := range found {
			locs[idx[j]].ID = f.ID
			locs[idx[j]].Err = f.Err
		}
	}

	failed := 0

	for i, l := range locs {
		if l.Err != nil {
			failed++

			w.Logger.Warn().Err(l.Err).Int("line", points[i].Line).Msg("point not resolved")
		}
	}

	w.Logger.Info().Int("points", len(locs)).Int("failed", failed).Msg("locate complete")

	return w.UI.DisplayLocations(locs)
}

// toLocation projects p. Projected input gets lat/lon filled in when a
// projector is available.
func (w *workflow) toLocation(p adapter.Point, geographic bool) (m.Location, error) {
	if geographic {
		loc := m.Location{Lat: p.A, Lon: p.B, Geographic: true}

		c, err := w.Projector.ToProjected(p.A, p.B)
		if err != nil {
			return loc, err
		}

		loc.Coordinate = c

		return loc, nil
	}

	loc := m.Location{Coordinate: m.CoordinatePair{Easting: p.A, Northing: p.B}}

	if w.Projector != nil {
		if lat, lon, err := w.Projector.ToGeographic(loc.Coordinate); err == nil {
			loc.Lat, loc.Lon, loc.Geographic = lat, lon, true
		}
	}

	return loc, nil
}

func (w *workflow) receiversOf(args TableArgs, id m.FQPatchID) ([]m.FQPatchID, error) {
	if args.Path == "" {
		return nil, errors.New("a flow table is required to look up receivers")
	}

	table, err := w.Store.Load(args.Path, args.StrictHeader)
	if err != nil {
		return nil, err
	}

	receivers, err := flowtableio.ReceiversForKey(table, id)
	if err != nil {
		return nil, err
	}

	ids := make([]m.FQPatchID, 0, len(receivers)+1)
	ids = append(ids, id)

	for _, r := range receivers {
		ids = append(ids, r.ID)
	}

	return ids, nil
}

func (w *workflow) locator() (*patchlookup.Locator, error) {
	if w.Rasters == nil {
		return nil, errors.New("no raster source configured")
	}

	src, err := w.Rasters()
	if err != nil {
		return nil, fmt.Errorf("open rasters: %w", err)
	}

	return patchlookup.NewLocator(src, w.Layers, w.Logger), nil
}

func (w *workflow) save(path m.Path, table *m.FlowTable) error {
	if err := w.Store.Save(path, table); err != nil {
		return err
	}

	w.UI.DisplayNotice(fmt.Sprintf("wrote %d patches to %s", table.Len(), path))

	return nil
}

func outPath(in TableArgs, out m.Path) m.Path {
	if out == "" {
		return in.Path
	}

	return out
}
