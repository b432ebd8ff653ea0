package viewstate

import "github.com/gnames/ednamap/pkg/record"

// MarkerRenderer is the external map widget. It draws markers and calls
// back with clicks and viewport changes.
type MarkerRenderer interface {
	RenderMarkers(markers []record.MarkerDescriptor) error
}

// ChartRenderer draws the proportion breakdown for the current view.
type ChartRenderer interface {
	RenderBreakdown(view View) error
}

// IconLoader resolves an icon key to image bytes. Loading may complete
// out of order or not at all; callers fall back to a default icon and
// never block interaction on it.
type IconLoader interface {
	Icon(key string) ([]byte, bool)
}

// Session wires a controller to the rendering collaborators and pushes
// updates after every event. Render errors are returned to the event
// source; the state transition itself has already happened.
type Session struct {
	ctrl    *Controller
	markers MarkerRenderer
	chart   ChartRenderer

	zoom       float64
	baseRadius float64
	baseSize   float64
}

// NewSession creates a session over an ingested location set.
func NewSession(
	locs []record.LocationRecord,
	markers MarkerRenderer,
	chart ChartRenderer,
	zoom, baseRadiusMeters, baseSize float64,
) *Session {
	return &Session{
		ctrl:       NewController(locs),
		markers:    markers,
		chart:      chart,
		zoom:       zoom,
		baseRadius: baseRadiusMeters,
		baseSize:   baseSize,
	}
}

// Controller exposes the underlying state machine, mainly for tests and
// stateless callers.
func (s *Session) Controller() *Controller {
	return s.ctrl
}

// HandleMapClick processes a click on empty map area.
func (s *Session) HandleMapClick() error {
	s.ctrl.ClickMap()
	return s.render()
}

// HandleMarkerClick processes a click on the marker at idx.
func (s *Session) HandleMarkerClick(idx int) error {
	s.ctrl.ClickMarker(idx)
	return s.render()
}

// HandleDateTab processes a date tab click.
func (s *Session) HandleDateTab(idx int) error {
	s.ctrl.ClickDateTab(idx)
	return s.render()
}

// HandleSwipe processes a horizontal swipe on the detail panel. Negative
// direction means left.
func (s *Session) HandleSwipe(direction int) error {
	if direction < 0 {
		s.ctrl.SwipeLeft()
	} else {
		s.ctrl.SwipeRight()
	}
	return s.render()
}

// HandleZoom re-runs the declutter layout for a new zoom level.
func (s *Session) HandleZoom(zoom float64) error {
	s.zoom = zoom
	return s.render()
}

func (s *Session) render() error {
	mks := BuildMarkers(s.ctrl.Locations(), s.zoom, s.baseRadius, s.baseSize)
	if err := s.markers.RenderMarkers(mks); err != nil {
		return err
	}
	return s.chart.RenderBreakdown(s.ctrl.CurrentView())
}
