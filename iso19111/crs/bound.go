package crs

import (
	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/operation"
)

// BoundCRS owns a base CRS, refers to a hub CRS, and owns a
// Transformation whose source is the base and target is the hub (§3).
type BoundCRS struct {
	Base
	BaseCRS        CRS
	HubCRS         CRS
	Transformation *operation.Transformation
}

// NewBoundCRS builds a BoundCRS, setting the transformation's source to
// base and its target to hub.
func NewBoundCRS(base, hub CRS, transform *operation.Transformation) (*BoundCRS, error) {
	if base == nil || hub == nil || transform == nil {
		return nil, crserr.New(crserr.InvariantViolation, "BoundCRS requires a base CRS, hub CRS, and transformation")
	}
	transform.SourceCRS = base
	transform.TargetCRS = hub
	b := &BoundCRS{BaseCRS: base, HubCRS: hub, Transformation: transform}
	b.Name = base.CRSName()
	return b, nil
}

// Kind implements CRS.
func (b *BoundCRS) Kind() Kind { return KindBound }

// CoordinateSystem delegates to the base CRS, matching PROJ's convention
// that a BoundCRS is emitted "as the base CRS" (§4.7).
func (b *BoundCRS) CoordinateSystem() *cs.CS {
	if b.BaseCRS == nil {
		return nil
	}
	return b.BaseCRS.CoordinateSystem()
}

// ShallowClone implements CRS.
func (b *BoundCRS) ShallowClone() CRS {
	clone := *b
	clone.canonicalBoundCRS = nil
	return &clone
}
