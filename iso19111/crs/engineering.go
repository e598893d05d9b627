package crs

import (
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/datum"
)

// EngineeringCRS owns an EngineeringDatum and an arbitrary coordinate
// system (typically Cartesian).
type EngineeringCRS struct {
	Base
	Datum *datum.EngineeringDatum
}

// NewEngineeringCRS builds an EngineeringCRS.
func NewEngineeringCRS(name string, d *datum.EngineeringDatum, coordSys *cs.CS) *EngineeringCRS {
	e := &EngineeringCRS{Datum: d}
	e.Name = name
	e.CS = coordSys
	return e
}

// Kind implements CRS.
func (e *EngineeringCRS) Kind() Kind { return KindEngineering }

// ShallowClone implements CRS.
func (e *EngineeringCRS) ShallowClone() CRS {
	clone := *e
	clone.canonicalBoundCRS = nil
	return &clone
}

// ParametricCRS owns a ParametricDatum and a 1D ParametricCS.
type ParametricCRS struct {
	Base
	Datum *datum.ParametricDatum
}

// NewParametricCRS builds a ParametricCRS.
func NewParametricCRS(name string, d *datum.ParametricDatum, coordSys *cs.CS) *ParametricCRS {
	p := &ParametricCRS{Datum: d}
	p.Name = name
	p.CS = coordSys
	return p
}

// Kind implements CRS.
func (p *ParametricCRS) Kind() Kind { return KindParametric }

// ShallowClone implements CRS.
func (p *ParametricCRS) ShallowClone() CRS {
	clone := *p
	clone.canonicalBoundCRS = nil
	return &clone
}
