package crs

import (
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/operation"
)

// AuthorityFactory is the narrow capability interface of §9 "Grid/database
// collaborators": resolve_alias, create_crs, create_operations. A nil
// AuthorityFactory disables database-dependent behavior everywhere it is
// threaded through (§4.4, §4.7).
type AuthorityFactory interface {
	ResolveAlias(name, kind, targetAuthority string) (string, bool)
	CreateCRS(authority, code string) (CRS, error)
	CreateOperations(source, target CRS) ([]*operation.Transformation, error)
}

// ExtractGeographicCRS walks the CRS graph per §4.4: GeographicCRS -> self;
// ProjectedCRS -> base; CompoundCRS -> first child yielding a
// GeographicCRS; BoundCRS -> base (recursively).
func ExtractGeographicCRS(c CRS) *GeodeticCRS {
	switch v := c.(type) {
	case *GeodeticCRS:
		if v.IsGeographic() {
			return v
		}
		return nil
	case *ProjectedCRS:
		return ExtractGeographicCRS(v.BaseCRS)
	case *CompoundCRS:
		for _, comp := range v.Components {
			if g := ExtractGeographicCRS(comp); g != nil {
				return g
			}
		}
		return nil
	case *BoundCRS:
		return ExtractGeographicCRS(v.BaseCRS)
	case *DerivedCRS:
		return ExtractGeographicCRS(v.BaseCRS)
	default:
		return nil
	}
}

// ExtractVerticalCRS is the analogue of ExtractGeographicCRS for
// VerticalCRS.
func ExtractVerticalCRS(c CRS) *VerticalCRS {
	switch v := c.(type) {
	case *VerticalCRS:
		return v
	case *CompoundCRS:
		for _, comp := range v.Components {
			if vc := ExtractVerticalCRS(comp); vc != nil {
				return vc
			}
		}
		return nil
	case *BoundCRS:
		return ExtractVerticalCRS(v.BaseCRS)
	default:
		return nil
	}
}

// StripVerticalComponent returns a new CRS with any ellipsoidal-height
// axis removed from a 3D geographic CRS (keeping axes 1,2), or a 3D
// projected CRS; otherwise returns c unchanged (§4.4).
func StripVerticalComponent(c CRS) CRS {
	switch v := c.(type) {
	case *GeodeticCRS:
		if v.IsGeographic() && v.CS != nil && len(v.CS.Axes) == 3 {
			clone := v.ShallowClone().(*GeodeticCRS)
			cs2, err := cs.New(cs.Ellipsoidal, v.CS.Axes[:2])
			if err == nil {
				clone.CS = cs2
			}
			return clone
		}
		return c
	case *ProjectedCRS:
		if v.CS != nil && len(v.CS.Axes) == 3 {
			clone := v.ShallowClone().(*ProjectedCRS)
			cs2, err := cs.New(cs.Cartesian, v.CS.Axes[:2])
			if err == nil {
				clone.CS = cs2
			}
			return clone
		}
		return c
	default:
		return c
	}
}

// CreateBoundCRSToWGS84IfPossible implements §4.4: return c unchanged when
// it already carries a canonical BoundCRS to EPSG:4326, or its extracted
// geographic CRS is already equivalent to EPSG:4326; otherwise query the
// authority for candidate operations to EPSG:4326 (or EPSG:4978 when c is
// geodetic-but-not-geographic), and wrap in a BoundCRS with the first
// candidate renderable as a 7-tuple Helmert. A nil authority, or one that
// fails to answer, makes this return c unchanged (failure is not fatal,
// §4.4).
func CreateBoundCRSToWGS84IfPossible(c CRS, authority AuthorityFactory) CRS {
	if withBase, ok := canonicalBoundCRSOf(c); ok {
		if b, ok2 := withBase.(*BoundCRS); ok2 && isWGS84(b.HubCRS) {
			return c
		}
	}
	geo := ExtractGeographicCRS(c)
	if geo != nil && geo.IsEquivalentTo(EPSG4326, Equivalent) {
		return c
	}
	if authority == nil {
		return c
	}
	target := CRS(EPSG4326)
	if g, ok := c.(*GeodeticCRS); ok && !g.IsGeographic() {
		target = EPSG4978
	}
	ops, err := authority.CreateOperations(c, target)
	if err != nil || len(ops) == 0 {
		return c
	}
	for _, candidate := range ops {
		if _, err := candidate.GetTOWGS84Parameters(); err == nil {
			bound, err := NewBoundCRS(c, target, candidate)
			if err != nil {
				continue
			}
			return bound
		}
	}
	return c
}

func canonicalBoundCRSOf(c CRS) (CRS, bool) {
	switch v := c.(type) {
	case *GeodeticCRS:
		return v.CanonicalBoundCRS()
	case *ProjectedCRS:
		return v.CanonicalBoundCRS()
	case *VerticalCRS:
		return v.CanonicalBoundCRS()
	default:
		return nil, false
	}
}

func isWGS84(c CRS) bool {
	g, ok := c.(*GeodeticCRS)
	if !ok {
		return false
	}
	return g.IsEquivalentTo(EPSG4326, Equivalent)
}
