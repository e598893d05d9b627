package crs

import (
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/operation"
)

// Criterion is the comparison strictness used by IsEquivalentTo (§4.7).
type Criterion int

const (
	// Strict adds a name comparison to the Equivalent checks for
	// GeodeticCRS and ProjectedCRS (CompoundCRS compares its components
	// only); for the other variants it compares names only. Identifiers
	// are not compared.
	Strict Criterion = iota
	// Equivalent ignores names, comparing value equality up to the unit
	// registry and the equivalent-parameter-name table.
	Equivalent
)

// IsEquivalentTo compares kind first, then datum (or ensemble) and
// coordinate system; ProjectedCRS additionally compares the deriving
// conversion; CompoundCRS compares component lists in order (§4.7).
func (g *GeodeticCRS) IsEquivalentTo(o *GeodeticCRS, crit Criterion) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Kind() != o.Kind() {
		return false
	}
	if crit == Strict && g.Name != o.Name {
		return false
	}
	if !g.EffectiveDatum().IsEquivalentTo(o.EffectiveDatum()) {
		return false
	}
	return csEquivalent(g.CS, o.CS)
}

// IsEquivalentTo for ProjectedCRS.
func (p *ProjectedCRS) IsEquivalentTo(o *ProjectedCRS, crit Criterion) bool {
	if p == nil || o == nil {
		return p == o
	}
	if crit == Strict && p.Name != o.Name {
		return false
	}
	if !p.BaseCRS.IsEquivalentTo(o.BaseCRS, crit) {
		return false
	}
	if !conversionEquivalent(p.derivingConversion, o.derivingConversion, crit) {
		return false
	}
	return csEquivalent(p.CS, o.CS)
}

// IsEquivalentTo for CompoundCRS: component lists compared in order.
func (c *CompoundCRS) IsEquivalentTo(o *CompoundCRS, crit Criterion) bool {
	if c == nil || o == nil {
		return c == o
	}
	if len(c.Components) != len(o.Components) {
		return false
	}
	for i := range c.Components {
		if !GenericEquivalent(c.Components[i], o.Components[i], crit) {
			return false
		}
	}
	return true
}

// GenericEquivalent dispatches IsEquivalentTo over the closed set of CRS
// variants (the "exhaustive matching" free function of §9).
func GenericEquivalent(a, b CRS, crit Criterion) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *GeodeticCRS:
		bv, ok := b.(*GeodeticCRS)
		return ok && av.IsEquivalentTo(bv, crit)
	case *ProjectedCRS:
		bv, ok := b.(*ProjectedCRS)
		return ok && av.IsEquivalentTo(bv, crit)
	case *CompoundCRS:
		bv, ok := b.(*CompoundCRS)
		return ok && av.IsEquivalentTo(bv, crit)
	default:
		if crit == Strict {
			return a.CRSName() == b.CRSName()
		}
		return csEquivalent(a.CoordinateSystem(), b.CoordinateSystem())
	}
}

// csEquivalent compares the CS kind, the axis count, and each axis's
// direction and unit in order; axis names and abbreviations are not
// compared.
func csEquivalent(a, b *cs.CS) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || len(a.Axes) != len(b.Axes) {
		return false
	}
	for i := range a.Axes {
		if a.Axes[i].Direction != b.Axes[i].Direction {
			return false
		}
		if !a.Axes[i].Unit.Equal(b.Axes[i].Unit) {
			return false
		}
	}
	return true
}

// conversionEquivalent compares method identity only: the EPSG method
// codes when both methods carry one, otherwise the method names.
// Parameter values are not compared, and crit does not change the result.
func conversionEquivalent(a, b *operation.Conversion, crit Criterion) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Method == nil || b.Method == nil {
		return a.Method == b.Method
	}
	aID, aOK := a.Method.IdentifierInCodeSpace("EPSG")
	bID, bOK := b.Method.IdentifierInCodeSpace("EPSG")
	if aOK && bOK {
		return aID.Code == bID.Code
	}
	return a.Method.Name == b.Method.Name
}
