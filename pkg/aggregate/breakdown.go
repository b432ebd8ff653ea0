package aggregate

import (
	"github.com/gnames/ednamap/pkg/record"
)

// TopSpeciesCount is how many species get their own slice in a breakdown
// before the remainder collapses into "Others".
const TopSpeciesCount = 5

// OthersLabel names the synthetic entry that absorbs everything below the
// top-N cut.
const OthersLabel = "Others"

// Entry is one slice of a proportional species breakdown.
type Entry struct {
	// Label is the common name, or OthersLabel for the synthetic rest
	// entry.
	Label string `json:"label"`

	// Secondary is the scientific name; empty for the Others entry.
	Secondary string `json:"secondary,omitempty"`

	// Value is the summed read count of the entry.
	Value int `json:"value"`

	// Percent is Value relative to the total reads of the FULL
	// observation set, not the displayed subset. Percentages add up to
	// 100 only when the Others entry is present.
	Percent float64 `json:"percent"`
}

// Breakdown is the display-ready proportion data for a chart renderer.
type Breakdown struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// TopBreakdown builds the top-N + Others breakdown from a merged
// observation list. The input must already be merged (unique species keys);
// it is not re-sorted beyond what Merge guarantees. The Others entry is
// included only when its summed reads are greater than zero.
func TopBreakdown(obs []record.Observation) Breakdown {
	total := TotalReads(obs)

	top := obs
	if len(top) > TopSpeciesCount {
		top = top[:TopSpeciesCount]
	}

	entries := make([]Entry, 0, len(top)+1)
	for _, o := range top {
		entries = append(entries, Entry{
			Label:     o.CommonName,
			Secondary: o.ScientificName,
			Value:     o.ReadsCount,
			Percent:   percent(o.ReadsCount, total),
		})
	}

	var othersTotal int
	for _, o := range obs[len(top):] {
		othersTotal += o.ReadsCount
	}
	if othersTotal > 0 {
		entries = append(entries, Entry{
			Label:   OthersLabel,
			Value:   othersTotal,
			Percent: percent(othersTotal, total),
		})
	}

	return Breakdown{Entries: entries, Total: total}
}

func percent(value, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(value) / float64(total) * 100
}
