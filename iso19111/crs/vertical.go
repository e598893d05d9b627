package crs

import (
	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/datum"
)

// VerticalCRS owns a 1D VerticalCS plus a vertical datum or ensemble.
type VerticalCRS struct {
	Base
	Datum    *datum.VerticalReferenceFrame
	Ensemble *datum.Ensemble
}

// NewVerticalCRS validates the "exactly one of (datum, ensemble)"
// invariant and builds a VerticalCRS.
func NewVerticalCRS(name string, d *datum.VerticalReferenceFrame, ensemble *datum.Ensemble, coordSys *cs.CS) (*VerticalCRS, error) {
	if (d == nil) == (ensemble == nil) {
		return nil, crserr.New(crserr.InvariantViolation, "VerticalCRS requires exactly one of datum or datum ensemble")
	}
	v := &VerticalCRS{Datum: d, Ensemble: ensemble}
	v.Name = name
	v.CS = coordSys
	return v, nil
}

// Kind implements CRS.
func (v *VerticalCRS) Kind() Kind { return KindVertical }

// ShallowClone implements CRS.
func (v *VerticalCRS) ShallowClone() CRS {
	clone := *v
	clone.canonicalBoundCRS = nil
	return &clone
}
