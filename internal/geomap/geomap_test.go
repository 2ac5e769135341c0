package geomap

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bostonhouse/internal/models"
)

func testNeighborhoods() []models.Neighborhood {
	return []models.Neighborhood{
		{Name: "Back Bay", Lat: 42.3505, Lng: -71.0763, Properties: 78},
		{Name: "Beacon Hill", Lat: 42.3588, Lng: -71.0707, Properties: 23},
		{Name: "Hyde Park", Lat: 42.2553, Lng: -71.1256, Properties: 67},
		{Name: "East Boston", Lat: 42.3706, Lng: -71.037, Properties: 78},
	}
}

func newTestMap() *Map {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(testNeighborhoods(), logger)
}

func TestByName(t *testing.T) {
	m := newTestMap()

	n := m.ByName("Back Bay")
	require.NotNil(t, n)
	assert.Equal(t, 78, n.Properties)

	assert.Nil(t, m.ByName("Cambridge"))
	assert.Nil(t, m.ByName(""))
}

func TestBound(t *testing.T) {
	m := newTestMap()
	bound := m.Bound()

	assert.InDelta(t, -71.1256, bound.Min[0], 1e-9)
	assert.InDelta(t, -71.037, bound.Max[0], 1e-9)
	assert.InDelta(t, 42.2553, bound.Min[1], 1e-9)
	assert.InDelta(t, 42.3706, bound.Max[1], 1e-9)
}

func TestCenter(t *testing.T) {
	m := newTestMap()
	center := m.Center()

	assert.InDelta(t, (-71.0763-71.0707-71.1256-71.037)/4, center[0], 1e-9)
	assert.InDelta(t, (42.3505+42.3588+42.2553+42.3706)/4, center[1], 1e-9)
}

func TestDistance(t *testing.T) {
	m := newTestMap()

	d, err := m.Distance("Back Bay", "Beacon Hill")
	require.NoError(t, err)
	// Roughly a kilometer between the two centers.
	assert.Greater(t, d, 500.0)
	assert.Less(t, d, 2000.0)

	back, err := m.Distance("Beacon Hill", "Back Bay")
	require.NoError(t, err)
	assert.InDelta(t, d, back, 1e-9)

	same, err := m.Distance("Back Bay", "Back Bay")
	require.NoError(t, err)
	assert.Zero(t, same)

	_, err = m.Distance("Back Bay", "Nowhere")
	assert.Error(t, err)
}

func TestNearest(t *testing.T) {
	m := newTestMap()

	n := m.Nearest(42.3505, -71.0763)
	require.NotNil(t, n)
	assert.Equal(t, "Back Bay", n.Name)

	// A point far to the south resolves to Hyde Park.
	n = m.Nearest(42.20, -71.13)
	require.NotNil(t, n)
	assert.Equal(t, "Hyde Park", n.Name)

	empty := New(nil, nil)
	assert.Nil(t, empty.Nearest(42.35, -71.07))
}

func TestRenderGrid(t *testing.T) {
	m := newTestMap()

	grid := m.RenderGrid(8, 24)
	lines := strings.Split(strings.TrimRight(grid, "\n"), "\n")
	require.Len(t, lines, 8)
	for _, line := range lines {
		assert.Len(t, line, 24)
	}

	// Every neighborhood leaves its initial somewhere on the grid.
	assert.Contains(t, grid, "B")
	assert.Contains(t, grid, "H")
	assert.Contains(t, grid, "E")

	assert.Empty(t, m.RenderGrid(0, 10))
	assert.Empty(t, New(nil, nil).RenderGrid(8, 24))
}
