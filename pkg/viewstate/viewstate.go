// Package viewstate tracks which locations are selected and which date
// tab is active, and derives the observation set the detail view shows.
//
// The controller is a deterministic state machine. All mutation happens
// through its transition methods; external events are assumed to arrive
// serialized, so no locking is done here.
package viewstate

import (
	"slices"

	"github.com/gnames/ednamap/pkg/record"
)

// AggregateDateIndex selects the merged all-dates view.
const AggregateDateIndex = -1

// Controller owns the selection state for one ingested location set.
type Controller struct {
	locs     []record.LocationRecord
	selected []int
	dateIdx  int
}

// NewController starts with an empty selection and the aggregate view.
func NewController(locs []record.LocationRecord) *Controller {
	return &Controller{locs: locs, dateIdx: AggregateDateIndex}
}

// Locations exposes the full record set the controller operates on.
func (c *Controller) Locations() []record.LocationRecord {
	return c.locs
}

// Selected returns the selected location indices in selection order.
func (c *Controller) Selected() []int {
	return slices.Clone(c.selected)
}

// IsSelected reports whether the location index is in the selection.
func (c *Controller) IsSelected(idx int) bool {
	return slices.Contains(c.selected, idx)
}

// ActiveDateIndex returns the active date tab, AggregateDateIndex for
// the all-dates view.
func (c *Controller) ActiveDateIndex() int {
	return c.dateIdx
}

// ClickMap handles a click on empty map area: selection clears and the
// view returns to aggregate.
func (c *Controller) ClickMap() {
	c.selected = nil
	c.dateIdx = AggregateDateIndex
}

// ClickMarker toggles a location's membership in the selection. Every
// toggle resets the date tab, so switching locations always lands on the
// aggregate view. Out-of-range indices are ignored.
func (c *Controller) ClickMarker(idx int) {
	if idx < 0 || idx >= len(c.locs) {
		return
	}
	if pos := slices.Index(c.selected, idx); pos >= 0 {
		c.selected = slices.Delete(c.selected, pos, pos+1)
	} else {
		c.selected = append(c.selected, idx)
	}
	c.dateIdx = AggregateDateIndex
}

// ClickDateTab activates a date tab without touching the selection.
// A no-op when nothing is selected or the index is out of range.
func (c *Controller) ClickDateTab(idx int) {
	if len(c.selected) == 0 {
		return
	}
	if idx < AggregateDateIndex || idx >= c.DateTabCount() {
		return
	}
	c.dateIdx = idx
}

// SwipeLeft advances to the next date tab, clamped at the last one.
func (c *Controller) SwipeLeft() {
	if len(c.selected) == 0 {
		return
	}
	if c.dateIdx < c.DateTabCount()-1 {
		c.dateIdx++
	}
}

// SwipeRight steps back one date tab, clamped at the aggregate view.
func (c *Controller) SwipeRight() {
	if len(c.selected) == 0 {
		return
	}
	if c.dateIdx > AggregateDateIndex {
		c.dateIdx--
	}
}

// DateTabCount is the number of single-date tabs offered for the current
// selection: the largest DateRecord count among selected locations.
// Locations with fewer dates are skipped when such a tab is active.
func (c *Controller) DateTabCount() int {
	var max int
	for _, idx := range c.selected {
		if n := len(c.locs[idx].DateRecords); n > max {
			max = n
		}
	}
	return max
}
