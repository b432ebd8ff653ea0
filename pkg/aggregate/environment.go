package aggregate

import (
	"github.com/gnames/ednamap/pkg/record"
)

// EnvAverages computes the arithmetic mean per environmental field over
// the date records where that field is defined. Missing values are
// excluded from the mean, not treated as zero. A field with no defined
// values anywhere stays nil in the result.
func EnvAverages(drs []record.DateRecord) record.EnvReadings {
	var res record.EnvReadings
	res.DissolvedOxygen = meanOf(drs, func(e record.EnvReadings) *float64 {
		return e.DissolvedOxygen
	})
	res.SpecificConductance = meanOf(drs, func(e record.EnvReadings) *float64 {
		return e.SpecificConductance
	})
	res.PH = meanOf(drs, func(e record.EnvReadings) *float64 {
		return e.PH
	})
	return res
}

func meanOf(
	drs []record.DateRecord,
	field func(record.EnvReadings) *float64,
) *float64 {
	var sum float64
	var n int
	for _, dr := range drs {
		if v := field(dr.Env); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}
