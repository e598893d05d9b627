// Package crs implements the C5 CRS model: the closed sum of CRS variants
// (geodetic, geographic, projected, vertical, compound, bound,
// engineering, parametric, temporal, and their derived analogues) with
// the cross-component invariants of spec §3.
//
// Per §9 "Closed sum of CRS variants", the open virtual-base polymorphism
// of the original C++ model is replaced here with a Go interface (the
// tagged union) plus a shared Base struct embedded by every variant;
// capability methods that need exhaustive matching over the variant set
// (ExtractGeographicCRS, StripVerticalComponent, GenericEquivalent, ...) are
// free functions in capabilities.go and equivalence.go rather than
// interface methods, so the variant tag stays effectively closed.
package crs

import (
	"github.com/flywave/go-crs/iso19111/common"
	"github.com/flywave/go-crs/iso19111/cs"
)

// Kind is the closed tag of CRS variants.
type Kind int

const (
	KindGeodetic Kind = iota
	KindGeographic
	KindProjected
	KindVertical
	KindCompound
	KindBound
	KindEngineering
	KindTemporal
	KindParametric
	KindDerivedGeodetic
	KindDerivedGeographic
	KindDerivedProjected
	KindDerivedVertical
	KindDerivedEngineering
	KindDerivedTemporal
	KindDerivedParametric
)

// CRS is the capability set every variant exposes uniformly, per §4.4.
type CRS interface {
	CRSName() string
	CRSIdentifiers() []common.Identifier
	Kind() Kind
	CoordinateSystem() *cs.CS
	ShallowClone() CRS
}

// Base is the common state embedded by every CRS variant: identity,
// scope/usage, coordinate system, and the canonical-BoundCRS cache of §5
// ("CRS objects may cache a canonical BoundCRS pointer").
type Base struct {
	common.ObjectUsage
	CS *cs.CS

	canonicalBoundCRS CRS // installed at most once, per §5 idempotence
}

// CRSName implements the CRS capability.
func (b *Base) CRSName() string { return b.Name }

// CRSIdentifiers implements the CRS capability.
func (b *Base) CRSIdentifiers() []common.Identifier { return b.Identifiers }

// CoordinateSystem implements the CRS capability.
func (b *Base) CoordinateSystem() *cs.CS { return b.CS }

// CanonicalBoundCRS returns the cached canonical BoundCRS, if one was
// installed by BaseCRSWithCanonicalBoundCRS.
func (b *Base) CanonicalBoundCRS() (CRS, bool) {
	return b.canonicalBoundCRS, b.canonicalBoundCRS != nil
}

// BaseCRSWithCanonicalBoundCRS installs the canonical BoundCRS pointer.
// Idempotent: a second call with a different value is a no-op, matching
// §5 "this cache is installed once ... and is idempotent."
func (b *Base) BaseCRSWithCanonicalBoundCRS(bound CRS) {
	if b.canonicalBoundCRS == nil {
		b.canonicalBoundCRS = bound
	}
}
