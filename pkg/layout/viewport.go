package layout

import "github.com/gnames/ednamap/pkg/record"

// Viewport is the externally reported visible map area in decimal
// degrees. West may exceed East when the view crosses the antimeridian.
type Viewport struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Contains reports whether a coordinate lies inside the viewport.
func (v Viewport) Contains(c record.Coordinate) bool {
	if c.Lat < v.South || c.Lat > v.North {
		return false
	}
	if v.West <= v.East {
		return c.Lon >= v.West && c.Lon <= v.East
	}
	return c.Lon >= v.West || c.Lon <= v.East
}

// VisibleIndices filters location indices to those whose true coordinates
// fall inside the viewport. Pure function of its inputs; it runs on every
// viewport event.
func VisibleIndices(locs []record.LocationRecord, v Viewport) []int {
	res := make([]int, 0, len(locs))
	for i, loc := range locs {
		if v.Contains(loc.Coordinates) {
			res = append(res, i)
		}
	}
	return res
}
