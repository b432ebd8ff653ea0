package ioweb

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gnames/ednamap/pkg/layout"
	"github.com/gnames/ednamap/pkg/record"
	"github.com/gnames/ednamap/pkg/viewstate"
)

// markers returns render-ready marker descriptors for the given zoom
// level, optionally filtered by a viewport. Descriptors keep their
// location indices, so a filtered response still maps back to the full
// record set.
func (s *Server) markers(c *gin.Context) {
	zoom, err := s.zoomParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	descriptors := viewstate.BuildMarkers(
		s.locs, zoom,
		s.cfg.Map.BaseRadiusMeters,
		s.cfg.Map.MarkerBaseSize,
	)

	vp, ok, err := viewportParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if ok {
		visible := layout.VisibleIndices(s.locs, vp)
		filtered := make([]record.MarkerDescriptor, 0, len(visible))
		for _, idx := range visible {
			filtered = append(filtered, descriptors[idx])
		}
		descriptors = filtered
	}

	c.JSON(http.StatusOK, descriptors)
}

// view computes the detail-panel projection for a selection. The
// selected parameter holds comma-separated location indices; date is a
// DateRecord index, -1 for the cross-date aggregate.
func (s *Server) view(c *gin.Context) {
	selected, err := indicesParam(c.Query("selected"), len(s.locs))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dateIdx := viewstate.AggregateDateIndex
	if raw := c.Query("date"); raw != "" {
		dateIdx, err = strconv.Atoi(raw)
		if err != nil || dateIdx < viewstate.AggregateDateIndex {
			c.JSON(http.StatusBadRequest,
				gin.H{"error": "invalid date index"})
			return
		}
	}

	c.JSON(http.StatusOK, viewstate.BuildView(s.locs, selected, dateIdx))
}

func (s *Server) icon(c *gin.Context) {
	data := s.icons.IconOrDefault(c.Param("key"))
	c.Data(http.StatusOK, "image/svg+xml", data)
}

func (s *Server) zoomParam(c *gin.Context) (float64, error) {
	raw := c.Query("zoom")
	if raw == "" {
		return s.cfg.Map.Zoom, nil
	}
	zoom, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errBadParam("zoom", raw)
	}
	return zoom, nil
}

// viewportParams reads the optional north/south/east/west bounds. Either
// all four are present or the viewport is ignored.
func viewportParams(c *gin.Context) (layout.Viewport, bool, error) {
	var vp layout.Viewport
	keys := []string{"north", "south", "east", "west"}
	vals := make([]float64, len(keys))

	var present int
	for i, key := range keys {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return vp, false, errBadParam(key, raw)
		}
		vals[i] = f
		present++
	}

	if present == 0 {
		return vp, false, nil
	}
	if present < len(keys) {
		return vp, false, errBadParam("viewport",
			"all of north, south, east, west are required")
	}

	vp = layout.Viewport{
		North: vals[0], South: vals[1], East: vals[2], West: vals[3],
	}
	return vp, true, nil
}

// indicesParam parses a comma-separated list of location indices.
func indicesParam(raw string, max int) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	res := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 || idx >= max {
			return nil, errBadParam("selected", part)
		}
		res = append(res, idx)
	}
	return res, nil
}
