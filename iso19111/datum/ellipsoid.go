// Package datum implements the C4 datum model: ellipsoids (three parameter
// forms), prime meridians, geodetic/vertical/temporal/engineering/
// parametric reference frames, and datum ensembles.
//
// The ellipsoid registry and its constant table are grounded on
// spatialmodel-inmap's ellipsoidDef map
// (_examples/other_examples/spatialmodel-inmap__EllipsoidDef.go), which
// keys a flat struct{a,b,rf,name} table by the PROJ ellipsoid keyword; the
// EPSG-numbered singletons mirror the same table shape keyed by EPSG code
// instead.
package datum

import (
	"math"

	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/iso19111/common"
	"github.com/flywave/go-crs/unit"
)

// Ellipsoid holds exactly one of the three parameter forms described in
// spec §3: sphere radius only; semi-major + inverse flattening;
// semi-major + semi-minor. Derived accessors compute whichever of
// (semi-minor, inverse flattening) was not supplied directly.
type Ellipsoid struct {
	common.IdentifiedObject
	SemiMajorAxis     float64 // metres
	semiMinorAxis     float64 // 0 when not directly supplied
	inverseFlattening float64 // 0 when not directly supplied (sphere: also 0)
	isSphere          bool
}

const flatteningTolerance = 1e-9

// NewSphere builds a sphere ellipsoid from its radius.
func NewSphere(name string, radius float64) (*Ellipsoid, error) {
	if radius <= 0 {
		return nil, crserr.New(crserr.InvariantViolation, "ellipsoid semi-major axis must be > 0")
	}
	return &Ellipsoid{
		IdentifiedObject: common.IdentifiedObject{Name: name},
		SemiMajorAxis:    radius,
		semiMinorAxis:    radius,
		isSphere:         true,
	}, nil
}

// NewFlattened builds an ellipsoid from semi-major axis and inverse
// flattening (0 means a sphere).
func NewFlattened(name string, semiMajor, invFlattening float64) (*Ellipsoid, error) {
	if semiMajor <= 0 {
		return nil, crserr.New(crserr.InvariantViolation, "ellipsoid semi-major axis must be > 0")
	}
	if invFlattening < 0 {
		return nil, crserr.New(crserr.InvariantViolation, "ellipsoid inverse flattening must be >= 0")
	}
	e := &Ellipsoid{
		IdentifiedObject:  common.IdentifiedObject{Name: name},
		SemiMajorAxis:     semiMajor,
		inverseFlattening: invFlattening,
	}
	if invFlattening == 0 {
		e.isSphere = true
		e.semiMinorAxis = semiMajor
	}
	return e, nil
}

// NewTwoAxis builds an ellipsoid from semi-major and semi-minor axes.
func NewTwoAxis(name string, semiMajor, semiMinor float64) (*Ellipsoid, error) {
	if semiMajor <= 0 {
		return nil, crserr.New(crserr.InvariantViolation, "ellipsoid semi-major axis must be > 0")
	}
	if semiMinor > semiMajor {
		return nil, crserr.New(crserr.InvariantViolation, "ellipsoid semi-minor axis must be <= semi-major axis")
	}
	e := &Ellipsoid{
		IdentifiedObject: common.IdentifiedObject{Name: name},
		SemiMajorAxis:    semiMajor,
		semiMinorAxis:    semiMinor,
	}
	if semiMinor == semiMajor {
		e.isSphere = true
	}
	return e, nil
}

// IsSphere reports whether flattening is zero or the two axes are equal.
func (e *Ellipsoid) IsSphere() bool { return e.isSphere }

// InverseFlattening returns the inverse flattening, computing it from the
// semi-minor axis when the ellipsoid was constructed with two axes.
func (e *Ellipsoid) InverseFlattening() float64 {
	if e.isSphere {
		return 0
	}
	if e.inverseFlattening != 0 {
		return e.inverseFlattening
	}
	f := (e.SemiMajorAxis - e.semiMinorAxis) / e.SemiMajorAxis
	if f == 0 {
		return 0
	}
	return 1.0 / f
}

// SemiMinorAxis returns the semi-minor axis, computing it from inverse
// flattening when the ellipsoid was constructed that way.
func (e *Ellipsoid) SemiMinorAxis() float64 {
	if e.semiMinorAxis != 0 {
		return e.semiMinorAxis
	}
	f := 1.0 / e.inverseFlattening
	return e.SemiMajorAxis * (1 - f)
}

// ComputeSemiMinorAxisFromInverseFlattening is the testable-property
// helper of spec §8: compute_semi_minor_axis(compute_inverse_flattening(E))
// should reproduce E.semi_minor within 1e-9 metre.
func ComputeSemiMinorAxisFromInverseFlattening(semiMajor, invFlattening float64) float64 {
	if invFlattening == 0 {
		return semiMajor
	}
	return semiMajor * (1 - 1.0/invFlattening)
}

// IsEquivalentTo implements the §4.3 equivalence rule: semi-major axis
// equality in SI, and either matching flattening or matching semi-minor
// axis within 1e-8 relative tolerance; a sphere is equivalent to any
// ellipsoid with zero flattening of the same radius.
func (e *Ellipsoid) IsEquivalentTo(o *Ellipsoid) bool {
	if e == nil || o == nil {
		return e == o
	}
	if math.Abs(e.SemiMajorAxis-o.SemiMajorAxis) > e.SemiMajorAxis*flatteningTolerance {
		return false
	}
	if e.IsSphere() && o.IsSphere() {
		return true
	}
	if math.Abs(e.InverseFlattening()-o.InverseFlattening()) <= 1e-8*math.Max(1, e.InverseFlattening()) {
		return true
	}
	return math.Abs(e.SemiMinorAxis()-o.SemiMinorAxis()) <= e.SemiMajorAxis*1e-8
}

// Predefined singletons.
var (
	WGS84 = mustFlattened("WGS 84", 6378137.0, 298.257223563, "7030")
	GRS80 = mustFlattened("GRS 1980", 6378137.0, 298.257222101, "7019")
	Clarke1866 = mustTwoAxis("Clarke 1866", 6378206.4, 6356583.8, "7008")
	Intl1924 = mustFlattened("International 1924", 6378388.0, 297.0, "7022")
	Bessel1841 = mustFlattened("Bessel 1841", 6377397.155, 299.1528128, "7004")
	Airy1830 = mustTwoAxis("Airy 1830", 6377563.396, 6356256.910, "7001")
	Krassowsky1940 = mustFlattened("Krassowsky 1940", 6378245.0, 298.3, "7024")
)

func mustFlattened(name string, a, rf float64, epsgCode string) *Ellipsoid {
	e, err := NewFlattened(name, a, rf)
	if err != nil {
		panic(err)
	}
	e.Identifiers = []common.Identifier{{CodeSpace: "EPSG", Code: epsgCode}}
	return e
}

func mustTwoAxis(name string, a, b float64, epsgCode string) *Ellipsoid {
	e, err := NewTwoAxis(name, a, b)
	if err != nil {
		panic(err)
	}
	e.Identifiers = []common.Identifier{{CodeSpace: "EPSG", Code: epsgCode}}
	return e
}

// wgs84AngleUnit is a package-level copy of unit.Degree; prime meridian
// construction uses unit.Degree directly and does not refer to it.
var wgs84AngleUnit = unit.Degree
