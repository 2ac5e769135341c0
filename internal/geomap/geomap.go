package geomap

import (
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/sirupsen/logrus"

	"bostonhouse/internal/models"
)

// Map answers geographic questions over the neighborhood reference data
// and draws the text grid the map view uses in place of a real map widget.
type Map struct {
	neighborhoods []models.Neighborhood
	points        []orb.Point
	logger        *logrus.Logger
}

func New(neighborhoods []models.Neighborhood, logger *logrus.Logger) *Map {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	points := make([]orb.Point, len(neighborhoods))
	for i, n := range neighborhoods {
		points[i] = orb.Point{n.Lng, n.Lat}
	}
	return &Map{neighborhoods: neighborhoods, points: points, logger: logger}
}

// Neighborhoods returns the reference data backing the map.
func (m *Map) Neighborhoods() []models.Neighborhood {
	ns := make([]models.Neighborhood, len(m.neighborhoods))
	copy(ns, m.neighborhoods)
	return ns
}

// ByName returns the named neighborhood, or nil.
func (m *Map) ByName(name string) *models.Neighborhood {
	for i := range m.neighborhoods {
		if m.neighborhoods[i].Name == name {
			n := m.neighborhoods[i]
			return &n
		}
	}
	return nil
}

// Bound returns the bounding box enclosing every neighborhood center.
func (m *Map) Bound() orb.Bound {
	return orb.MultiPoint(m.points).Bound()
}

// Center returns the mean of the neighborhood centers.
func (m *Map) Center() orb.Point {
	if len(m.points) == 0 {
		return orb.Point{}
	}
	var lng, lat float64
	for _, p := range m.points {
		lng += p[0]
		lat += p[1]
	}
	n := float64(len(m.points))
	return orb.Point{lng / n, lat / n}
}

// Distance returns the distance in meters between two named neighborhoods.
func (m *Map) Distance(a, b string) (float64, error) {
	na := m.ByName(a)
	nb := m.ByName(b)
	if na == nil || nb == nil {
		return 0, fmt.Errorf("unknown neighborhood in pair (%q, %q)", a, b)
	}
	return geo.Distance(orb.Point{na.Lng, na.Lat}, orb.Point{nb.Lng, nb.Lat}), nil
}

// Nearest returns the neighborhood whose center is closest to the given
// coordinate, or nil when no neighborhoods are loaded.
func (m *Map) Nearest(lat, lng float64) *models.Neighborhood {
	if len(m.neighborhoods) == 0 {
		return nil
	}

	target := orb.Point{lng, lat}
	best := 0
	bestDist := geo.Distance(target, m.points[0])
	for i := 1; i < len(m.points); i++ {
		if d := geo.Distance(target, m.points[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	n := m.neighborhoods[best]
	return &n
}

// RenderGrid projects the neighborhood markers onto a rows x cols character
// grid. Each marker is the first letter of the neighborhood name; empty
// cells are dots. This is the terminal stand-in for the interactive map.
func (m *Map) RenderGrid(rows, cols int) string {
	if rows < 1 || cols < 1 || len(m.points) == 0 {
		return ""
	}

	bound := m.Bound()
	width := bound.Max[0] - bound.Min[0]
	height := bound.Max[1] - bound.Min[1]

	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(".", cols))
	}

	for i, p := range m.points {
		col, row := 0, 0
		if width > 0 {
			col = int((p[0] - bound.Min[0]) / width * float64(cols-1))
		}
		if height > 0 {
			// Latitude grows north, rows grow down.
			row = (rows - 1) - int((p[1]-bound.Min[1])/height*float64(rows-1))
		}
		grid[row][col] = m.neighborhoods[i].Name[0]
	}

	var b strings.Builder
	for _, line := range grid {
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}
