// Package aggregate merges species observations and derives display
// statistics: top-N breakdowns, dominant taxa, environmental averages and
// summary texts.
//
// This is a pure package - every function is deterministic in its inputs
// and free of side effects, so callers may re-run them on every view
// transition without a memoization contract.
package aggregate

import (
	"sort"

	"github.com/gnames/ednamap/pkg/record"
)

// Merge combines any number of observation lists into one, summing
// ReadsCount for matching (scientific name, common name) keys. The result
// is sorted descending by reads with the species key as an ascending
// tie-break, so the output does not depend on input list order.
//
// Taxon and Canonical are taken from the first occurrence of a key in a
// left-to-right scan of the inputs.
func Merge(lists ...[]record.Observation) []record.Observation {
	merged := make(map[string]record.Observation)
	for _, list := range lists {
		for _, obs := range list {
			key := obs.Key()
			if prev, ok := merged[key]; ok {
				prev.ReadsCount += obs.ReadsCount
				merged[key] = prev
				continue
			}
			merged[key] = obs
		}
	}

	res := make([]record.Observation, 0, len(merged))
	for _, obs := range merged {
		res = append(res, obs)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].ReadsCount != res[j].ReadsCount {
			return res[i].ReadsCount > res[j].ReadsCount
		}
		return res[i].Key() < res[j].Key()
	})
	return res
}

// TotalReads sums ReadsCount over the given observations.
func TotalReads(obs []record.Observation) int {
	var total int
	for _, o := range obs {
		total += o.ReadsCount
	}
	return total
}

// DominantTaxon returns the taxon label with the strictly highest summed
// read count over the observations. Observations without a taxon label do
// not participate. Ties resolve to the taxon encountered first in a single
// left-to-right scan. When no observation carries a taxon, fallback is
// returned.
func DominantTaxon(obs []record.Observation, fallback string) string {
	sums := make(map[string]int)
	var order []string
	for _, o := range obs {
		if o.Taxon == "" {
			continue
		}
		if _, ok := sums[o.Taxon]; !ok {
			order = append(order, o.Taxon)
		}
		sums[o.Taxon] += o.ReadsCount
	}
	if len(order) == 0 {
		return fallback
	}

	best := order[0]
	for _, taxon := range order[1:] {
		if sums[taxon] > sums[best] {
			best = taxon
		}
	}
	return best
}
