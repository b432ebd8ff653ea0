package viewstate

import (
	"github.com/gnames/ednamap/pkg/aggregate"
	"github.com/gnames/ednamap/pkg/record"
)

// View is the derived dataset behind the detail panel and the breakdown
// chart. It is a pure projection of the location set and the selection
// state and carries no state of its own.
type View struct {
	SelectedIndices []int                `json:"selectedIndices"`
	ActiveDateIndex int                  `json:"activeDateIndex"`
	DateTabCount    int                  `json:"dateTabCount"`
	Observations    []record.Observation `json:"observations"`
	Breakdown       aggregate.Breakdown  `json:"breakdown"`
	Summary         string               `json:"summary"`
}

// MergedObservations merges the observation sets of the selected
// locations. With dateIdx == AggregateDateIndex each location contributes
// its full cross-date merge; otherwise each contributes the observations
// of its DateRecord at that index, and locations without one are skipped.
func MergedObservations(
	locs []record.LocationRecord,
	selected []int,
	dateIdx int,
) []record.Observation {
	lists := make([][]record.Observation, 0, len(selected))
	for _, idx := range selected {
		if idx < 0 || idx >= len(locs) {
			continue
		}
		loc := locs[idx]
		if dateIdx == AggregateDateIndex {
			lists = append(lists, loc.MergedObservations)
			continue
		}
		if dateIdx < len(loc.DateRecords) {
			lists = append(lists, loc.DateRecords[dateIdx].Observations)
		}
	}
	return aggregate.Merge(lists...)
}

// BuildView assembles the derived view for a selection. Both the
// aggregate and the single-date paths run through the same merge and
// top-N pipeline.
func BuildView(
	locs []record.LocationRecord,
	selected []int,
	dateIdx int,
) View {
	merged := MergedObservations(locs, selected, dateIdx)

	var taxon string
	if len(selected) == 1 && selected[0] >= 0 && selected[0] < len(locs) {
		taxon = locs[selected[0]].DominantTaxon
	}

	return View{
		SelectedIndices: selected,
		ActiveDateIndex: dateIdx,
		DateTabCount:    maxDateCount(locs, selected),
		Observations:    merged,
		Breakdown:       aggregate.TopBreakdown(merged),
		Summary:         aggregate.Summary(merged, taxon),
	}
}

// CurrentView builds the view for the controller's present state.
func (c *Controller) CurrentView() View {
	return BuildView(c.locs, c.Selected(), c.dateIdx)
}

func maxDateCount(locs []record.LocationRecord, selected []int) int {
	var max int
	for _, idx := range selected {
		if idx < 0 || idx >= len(locs) {
			continue
		}
		if n := len(locs[idx].DateRecords); n > max {
			max = n
		}
	}
	return max
}
