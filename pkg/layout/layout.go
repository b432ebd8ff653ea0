// Package layout computes the marker declutter layout: sampling locations
// whose coordinates coincide within tolerance are spread on a circle so
// their markers stay visually distinguishable at any zoom level.
//
// Everything here is a pure function of its inputs. The layout recomputes
// on every zoom or pan event, so it must not accumulate state.
package layout

import (
	"math"

	"github.com/gnames/ednamap/pkg/config"
	"github.com/gnames/ednamap/pkg/record"
)

const (
	// ReferenceZoom is the zoom level at which the offset radius equals
	// the configured base radius exactly.
	ReferenceZoom = 12

	// MinZoomScale and MaxZoomScale clamp the zoom-dependent radius
	// multiplier.
	MinZoomScale = 0.5
	MaxZoomScale = 8.0

	// clusterSizeFactor shrinks markers that belong to a multi-member
	// cluster so grouping is visible at a glance.
	clusterSizeFactor = 0.75

	// metersPerDegree approximates one degree of latitude.
	metersPerDegree = 111000
)

// Placement is the display position and size computed for one location.
// Placements are index-aligned with the input LocationRecord slice.
type Placement struct {
	Position  record.Coordinate `json:"position"`
	Size      float64           `json:"size"`
	Clustered bool              `json:"clustered"`
}

// ZoomScale converts a map zoom level into a radius multiplier. Zooming
// out grows the meter offset so the separation stays visible on screen.
func ZoomScale(zoom float64) float64 {
	s := math.Pow(2, (ReferenceZoom-zoom)/2.5)
	return math.Min(math.Max(s, MinZoomScale), MaxZoomScale)
}

// Layout computes display placements for all locations at the given zoom.
// Coincident locations spread evenly on a circle around the cluster's
// first member; singletons keep their true coordinates and full size.
func Layout(
	locs []record.LocationRecord,
	zoom, baseRadiusMeters, baseSize float64,
) []Placement {
	res := make([]Placement, len(locs))
	radius := baseRadiusMeters * ZoomScale(zoom)

	for _, cluster := range clusterIndices(locs) {
		if len(cluster) == 1 {
			i := cluster[0]
			res[i] = Placement{
				Position: locs[i].Coordinates,
				Size:     baseSize,
			}
			continue
		}

		center := locs[cluster[0]].Coordinates
		step := 2 * math.Pi / float64(len(cluster))
		for n, i := range cluster {
			angle := step * float64(n)
			res[i] = Placement{
				Position:  offsetCoordinate(center, radius, angle),
				Size:      baseSize * clusterSizeFactor,
				Clustered: true,
			}
		}
	}
	return res
}

// clusterIndices partitions location indices into clusters. A location
// joins the first cluster whose FIRST member lies within tolerance on
// both axes. The test deliberately ignores the other members, so a chain
// of locations each close to its neighbor but not to the chain's head
// splits into several clusters.
func clusterIndices(locs []record.LocationRecord) [][]int {
	var clusters [][]int
	for i, loc := range locs {
		placed := false
		for ci, cluster := range clusters {
			head := locs[cluster[0]].Coordinates
			if withinTolerance(head, loc.Coordinates) {
				clusters[ci] = append(cluster, i)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, []int{i})
		}
	}
	return clusters
}

func withinTolerance(a, b record.Coordinate) bool {
	return math.Abs(a.Lat-b.Lat) < config.CoordTolerance &&
		math.Abs(a.Lon-b.Lon) < config.CoordTolerance
}

// offsetCoordinate moves a coordinate by the given distance in meters at
// the given angle. Longitude meters shrink with latitude, hence the
// cosine correction.
func offsetCoordinate(
	c record.Coordinate,
	meters, angle float64,
) record.Coordinate {
	dLat := meters * math.Cos(angle) / metersPerDegree
	dLon := meters * math.Sin(angle) /
		(metersPerDegree * math.Cos(c.Lat*math.Pi/180))
	return record.Coordinate{Lat: c.Lat + dLat, Lon: c.Lon + dLon}
}
