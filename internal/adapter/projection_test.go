package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTMProjector_RoundTrip(t *testing.T) {
	t.Parallel()

	p := NewUTMProjector(17, true)

	c, err := p.ToProjected(35.9132, -79.0558)
	require.NoError(t, err)
	assert.InDelta(t, 676000, c.Easting, 5000)
	assert.InDelta(t, 3976000, c.Northing, 5000)

	lat, lon, err := p.ToGeographic(c)
	require.NoError(t, err)
	assert.InDelta(t, 35.9132, lat, 1e-4)
	assert.InDelta(t, -79.0558, lon, 1e-4)
}

func TestUTMProjector_RejectsOtherZone(t *testing.T) {
	t.Parallel()

	p := NewUTMProjector(17, true)

	_, err := p.ToProjected(39.25, -76.7)
	require.ErrorContains(t, err, "zone 18")
}
