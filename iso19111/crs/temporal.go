package crs

import (
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/datum"
)

// TemporalCRS owns a TemporalDatum and a 1D TemporalCS whose subtype
// (DateTime/Count/Measure) drives the WKT2:2018 TIMECRS keyword variant
// (§4.7).
type TemporalCRS struct {
	Base
	Datum *datum.TemporalDatum
}

// NewTemporalCRS builds a TemporalCRS.
func NewTemporalCRS(name string, d *datum.TemporalDatum, coordSys *cs.CS) *TemporalCRS {
	t := &TemporalCRS{Datum: d}
	t.Name = name
	t.CS = coordSys
	return t
}

// Kind implements CRS.
func (t *TemporalCRS) Kind() Kind { return KindTemporal }

// ShallowClone implements CRS.
func (t *TemporalCRS) ShallowClone() CRS {
	clone := *t
	clone.canonicalBoundCRS = nil
	return &clone
}
