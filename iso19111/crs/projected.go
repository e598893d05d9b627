package crs

import (
	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/operation"
)

// ProjectedCRS owns a base GeographicCRS and a deriving Conversion, with a
// Cartesian coordinate system. Per spec §3/§9 the deriving conversion's
// TargetCRS is the ProjectedCRS itself; this self-reference is realized
// with the operation.CRSRef weak-reference interface (see
// iso19111/operation/method.go) rather than a strong Go pointer cycle: the
// conversion stored on the CRS (derivingConversion) is the one that is
// self-referencing, and DerivingConversion() returns a clone so the
// public API never leaks that aliasing (§9).
type ProjectedCRS struct {
	Base
	BaseCRS           *GeodeticCRS
	derivingConversion *operation.Conversion
}

// NewProjectedCRS requires a geographic base CRS, sets the conversion's
// source to it, and installs the self-reference from the conversion back
// to the new CRS.
func NewProjectedCRS(name string, base *GeodeticCRS, conv *operation.Conversion, coordSys *cs.CS) (*ProjectedCRS, error) {
	if base == nil {
		return nil, crserr.New(crserr.InvariantViolation, "ProjectedCRS requires a base geographic CRS")
	}
	if !base.IsGeographic() {
		return nil, crserr.New(crserr.InvariantViolation, "ProjectedCRS base CRS must be geographic")
	}
	if conv == nil {
		return nil, crserr.New(crserr.InvariantViolation, "ProjectedCRS requires a deriving conversion")
	}
	p := &ProjectedCRS{BaseCRS: base, derivingConversion: conv}
	p.Name = name
	p.CS = coordSys
	conv.SourceCRS = base
	conv.TargetCRS = p // self-reference, weak by interface indirection
	return p, nil
}

// Kind implements CRS.
func (p *ProjectedCRS) Kind() Kind { return KindProjected }

// DerivingConversion returns a clone of the internal conversion so callers
// never observe the self-referencing TargetCRS aliasing (§9).
func (p *ProjectedCRS) DerivingConversion() *operation.Conversion {
	clone := *p.derivingConversion
	return &clone
}

// InternalConversion returns the actual (aliased) conversion; the WKT and
// PROJ-string emitters in this module use it where they need
// SourceCRS/TargetCRS identity.
func (p *ProjectedCRS) InternalConversion() *operation.Conversion { return p.derivingConversion }

// ShallowClone implements CRS. Per §9 "a shallow clone contract on
// ProjectedCRS that clones the conversion and rebinds its weak target to
// the clone."
func (p *ProjectedCRS) ShallowClone() CRS {
	convClone := *p.derivingConversion
	clone := &ProjectedCRS{Base: p.Base, BaseCRS: p.BaseCRS, derivingConversion: &convClone}
	clone.canonicalBoundCRS = nil
	convClone.TargetCRS = clone
	return clone
}
