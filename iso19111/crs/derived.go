package crs

import (
	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/operation"
)

// DerivedCRS covers the Derived* analogues of §3 (DerivedGeodetic,
// DerivedGeographic, DerivedProjected, DerivedVertical, DerivedEngineering,
// DerivedTemporal, DerivedParametric): each carries a base CRS of matching
// kind and a deriving Conversion, generalized here into one struct tagged
// by BaseKind since the four attributes (base CRS reference, deriving
// conversion, coordinate system, identity) are identical across all seven
// variants and only the permitted BaseCRS.Kind() differs.
type DerivedCRS struct {
	Base
	BaseCRS    CRS
	Conversion *operation.Conversion
	BaseKind   Kind // one of KindGeodetic/KindGeographic/KindProjected/KindVertical/KindEngineering/KindTemporal/KindParametric
}

var derivedKindOf = map[Kind]Kind{
	KindGeodetic:    KindDerivedGeodetic,
	KindGeographic:  KindDerivedGeographic,
	KindProjected:   KindDerivedProjected,
	KindVertical:    KindDerivedVertical,
	KindEngineering: KindDerivedEngineering,
	KindTemporal:    KindDerivedTemporal,
	KindParametric:  KindDerivedParametric,
}

// NewDerivedCRS validates that BaseCRS.Kind() is one of the seven base
// kinds, sets the deriving conversion's source to that base CRS, then
// installs the conversion's self-reference back to the new CRS (mirroring
// ProjectedCRS).
func NewDerivedCRS(name string, base CRS, conv *operation.Conversion, coordSys *cs.CS) (*DerivedCRS, error) {
	if base == nil || conv == nil {
		return nil, crserr.New(crserr.InvariantViolation, "DerivedCRS requires a base CRS and a deriving conversion")
	}
	dk, ok := derivedKindOf[base.Kind()]
	if !ok {
		return nil, crserr.Newf(crserr.InvariantViolation, "CRS kind %d cannot be a DerivedCRS base", base.Kind())
	}
	d := &DerivedCRS{BaseCRS: base, Conversion: conv, BaseKind: base.Kind()}
	d.Name = name
	d.CS = coordSys
	conv.SourceCRS = base
	conv.TargetCRS = d
	_ = dk
	return d, nil
}

// Kind implements CRS.
func (d *DerivedCRS) Kind() Kind { return derivedKindOf[d.BaseKind] }

// DerivingConversion returns a clone of the internal conversion, mirroring
// ProjectedCRS.DerivingConversion (§9).
func (d *DerivedCRS) DerivingConversion() *operation.Conversion {
	clone := *d.Conversion
	return &clone
}

// ShallowClone implements CRS.
func (d *DerivedCRS) ShallowClone() CRS {
	convClone := *d.Conversion
	clone := &DerivedCRS{Base: d.Base, BaseCRS: d.BaseCRS, Conversion: &convClone, BaseKind: d.BaseKind}
	clone.canonicalBoundCRS = nil
	convClone.TargetCRS = clone
	return clone
}
