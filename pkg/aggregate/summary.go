package aggregate

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/ednamap/pkg/record"
)

// topSummarySpecies is how many species the text summary lists.
const topSummarySpecies = 3

// NoDataMessage is shown when a location has no usable observations,
// including locations whose dataset failed to ingest.
const NoDataMessage = "data unavailable"

// Summary renders a short human-readable description of a merged
// observation list: species count, total reads and the top species. The
// input must already be merged and sorted (output of Merge). The taxon
// label, when present, is mentioned on the first line.
func Summary(obs []record.Observation, taxon string) string {
	if len(obs) == 0 {
		return NoDataMessage
	}

	var b strings.Builder
	if taxon != "" {
		fmt.Fprintf(&b, "taxon: %s\n", taxon)
	}
	fmt.Fprintf(&b, "%d species detected, total reads: %s\n\n",
		len(obs), humanize.Comma(int64(TotalReads(obs))))
	b.WriteString("top species:\n")

	top := obs
	if len(top) > topSummarySpecies {
		top = top[:topSummarySpecies]
	}
	for i, o := range top {
		fmt.Fprintf(&b, "%d. %s (%s)\n   reads: %s\n",
			i+1, o.CommonName, o.ScientificName,
			humanize.Comma(int64(o.ReadsCount)))
	}

	return b.String()
}
