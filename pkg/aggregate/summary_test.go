package aggregate_test

import (
	"testing"

	"github.com/gnames/ednamap/pkg/aggregate"
	"github.com/gnames/ednamap/pkg/record"
	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	merged := aggregate.Merge([]record.Observation{
		obs("Gadus morhua", "Cod", 120),
		obs("Gadus morhua", "Cod", 30),
		obs("Clupea", "Herring", 50),
	})

	s := aggregate.Summary(merged, "")

	assert.Contains(t, s, "2 species")
	assert.Contains(t, s, "total reads: 200")
	assert.Contains(t, s, "1. Cod (Gadus morhua)")
	assert.Contains(t, s, "2. Herring (Clupea)")
}

func TestSummaryWithTaxon(t *testing.T) {
	merged := []record.Observation{obs("Gadus morhua", "Cod", 10)}
	s := aggregate.Summary(merged, "Actinopterygii")
	assert.Contains(t, s, "taxon: Actinopterygii")
}

func TestSummaryLimitsTopSpecies(t *testing.T) {
	merged := aggregate.Merge([]record.Observation{
		obs("Sp one", "One", 50),
		obs("Sp two", "Two", 40),
		obs("Sp three", "Three", 30),
		obs("Sp four", "Four", 20),
	})

	s := aggregate.Summary(merged, "")

	assert.Contains(t, s, "3. Three")
	assert.NotContains(t, s, "4. Four")
}

func TestSummaryFormatsLargeCounts(t *testing.T) {
	merged := []record.Observation{obs("Gadus morhua", "Cod", 1234567)}
	s := aggregate.Summary(merged, "")
	assert.Contains(t, s, "1,234,567")
}

func TestSummaryEmpty(t *testing.T) {
	assert.Equal(t, aggregate.NoDataMessage, aggregate.Summary(nil, "fish"))
}
