package crs

import "github.com/flywave/go-crs/crserr"

// CompoundCRS is an ordered list of component CRSes: a horizontal CRS may
// combine with at most one vertical and one temporal component (§3).
type CompoundCRS struct {
	Base
	Components []CRS
}

// NewCompoundCRS validates component compatibility and builds a
// CompoundCRS.
func NewCompoundCRS(name string, components []CRS) (*CompoundCRS, error) {
	if len(components) < 2 {
		return nil, crserr.New(crserr.InvariantViolation, "CompoundCRS requires at least two components")
	}
	verticalCount, temporalCount := 0, 0
	for _, c := range components {
		switch c.Kind() {
		case KindVertical, KindDerivedVertical:
			verticalCount++
		case KindTemporal, KindDerivedTemporal:
			temporalCount++
		}
	}
	if verticalCount > 1 {
		return nil, crserr.New(crserr.InvariantViolation, "CompoundCRS may combine at most one vertical component")
	}
	if temporalCount > 1 {
		return nil, crserr.New(crserr.InvariantViolation, "CompoundCRS may combine at most one temporal component")
	}
	cc := &CompoundCRS{Components: components}
	cc.Name = name
	return cc, nil
}

// Kind implements CRS.
func (c *CompoundCRS) Kind() Kind { return KindCompound }

// CoordinateSystem returns nil: a CompoundCRS has no single coordinate
// system (Base.CS is left unset), only its components' coordinate
// systems.

// ShallowClone implements CRS.
func (c *CompoundCRS) ShallowClone() CRS {
	comps := make([]CRS, len(c.Components))
	copy(comps, c.Components)
	clone := &CompoundCRS{Base: c.Base, Components: comps}
	clone.canonicalBoundCRS = nil
	return clone
}
