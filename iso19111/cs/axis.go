// Package cs implements the C3 coordinate system model: axis direction,
// CoordinateSystemAxis, and the closed set of CoordinateSystem container
// variants (ellipsoidal, Cartesian, spherical, vertical, temporal,
// parametric) with their arity invariants.
package cs

import (
	"strings"

	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/unit"
)

// AxisDirection is the closed, package-level enum of axis directions.
// Represented as a static const table per §9 "Unit and axis registries as
// static tables" rather than an open string type.
type AxisDirection int

const (
	DirUnspecified AxisDirection = iota
	DirNorth
	DirSouth
	DirEast
	DirWest
	DirUp
	DirDown
	DirGeocentricX
	DirGeocentricY
	DirGeocentricZ
	DirFuture
	DirPast
	DirOther
)

// String renders the WKT2 lower-case token for the direction, e.g.
// "east", "north", "up", "geocentricX".
func (d AxisDirection) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirGeocentricX:
		return "geocentricX"
	case DirGeocentricY:
		return "geocentricY"
	case DirGeocentricZ:
		return "geocentricZ"
	case DirFuture:
		return "future"
	case DirPast:
		return "past"
	case DirOther:
		return "other"
	default:
		return "unspecified"
	}
}

// WKT1Token renders the restricted WKT1 direction token set: only
// EAST/NORTH/UP/DOWN/OTHER are legal per §4.2; WEST and SOUTH have no WKT1
// token of their own and fold into OTHER, as does geocentricZ.
func (d AxisDirection) WKT1Token() string {
	switch d {
	case DirEast:
		return "EAST"
	case DirNorth:
		return "NORTH"
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	default:
		return "OTHER"
	}
}

// ParseDirection resolves a WKT2 or WKT1 direction token to an
// AxisDirection, case-insensitively.
func ParseDirection(tok string) (AxisDirection, bool) {
	switch strings.ToLower(tok) {
	case "north":
		return DirNorth, true
	case "south":
		return DirSouth, true
	case "east":
		return DirEast, true
	case "west":
		return DirWest, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "geocentricx":
		return DirGeocentricX, true
	case "geocentricy":
		return DirGeocentricY, true
	case "geocentricz":
		return DirGeocentricZ, true
	case "future":
		return DirFuture, true
	case "past":
		return DirPast, true
	case "other":
		return DirOther, true
	case "unspecified", "":
		return DirUnspecified, true
	default:
		return DirUnspecified, false
	}
}

// Axis is a CoordinateSystemAxis: name, abbreviation, direction, unit, and
// optional range/meridian for polar systems.
type Axis struct {
	Name         string
	Abbreviation string
	Direction    AxisDirection
	Unit         unit.Unit
	Minimum      *float64
	Maximum      *float64
	Meridian     *float64 // longitude of the meridian, in Unit, for polar axes
}

// NormalizeWKT1Name upper-cases the first letter of the axis name, as WKT1
// import does per §4.2 ("longitude" -> "Longitude").
func NormalizeWKT1Name(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - ('a' - 'A')
	}
	return string(r)
}

// Kind is the closed set of coordinate system variants.
type Kind int

const (
	Ellipsoidal Kind = iota
	Cartesian
	Spherical
	Vertical
	Temporal
	Parametric
)

// TemporalSubtype distinguishes the three WKT2:2018 TIMECRS flavors.
type TemporalSubtype int

const (
	TemporalDateTime TemporalSubtype = iota
	TemporalCount
	TemporalMeasure
)

// CS is a coordinate system: a Kind-tagged, fixed-arity list of axes.
type CS struct {
	Kind            Kind
	Axes            []Axis
	TemporalSubtype TemporalSubtype // meaningful only when Kind == Temporal
}

func arity(k Kind) (min, max int) {
	switch k {
	case Ellipsoidal:
		return 2, 3
	case Cartesian:
		return 2, 3
	case Spherical:
		return 3, 3
	case Vertical:
		return 1, 1
	case Temporal:
		return 1, 1
	case Parametric:
		return 1, 1
	default:
		return 0, 0
	}
}

// New validates axis count against Kind and returns the CS.
func New(k Kind, axes []Axis) (*CS, error) {
	min, max := arity(k)
	if len(axes) < min || len(axes) > max {
		return nil, crserr.Newf(crserr.InvariantViolation, "coordinate system of kind %d requires %d..%d axes, got %d", k, min, max, len(axes))
	}
	return &CS{Kind: k, Axes: axes}, nil
}

// CreateLatitudeLongitude builds the canonical 2D EllipsoidalCS
// (latitude NORTH, longitude EAST) in the given angular unit.
func CreateLatitudeLongitude(u unit.Unit) (*CS, error) {
	return New(Ellipsoidal, []Axis{
		{Name: "latitude", Direction: DirNorth, Unit: u},
		{Name: "longitude", Direction: DirEast, Unit: u},
	})
}

// CreateLatitudeLongitudeHeight builds the 3D EllipsoidalCS variant with
// an added ellipsoidal height axis.
func CreateLatitudeLongitudeHeight(angularUnit, linearUnit unit.Unit) (*CS, error) {
	return New(Ellipsoidal, []Axis{
		{Name: "latitude", Direction: DirNorth, Unit: angularUnit},
		{Name: "longitude", Direction: DirEast, Unit: angularUnit},
		{Name: "ellipsoidal height", Abbreviation: "h", Direction: DirUp, Unit: linearUnit},
	})
}

// CreateEastNorth builds the canonical 2D CartesianCS (easting EAST,
// northing NORTH) used by projected CRSes.
func CreateEastNorth(u unit.Unit) (*CS, error) {
	return New(Cartesian, []Axis{
		{Name: "Easting", Abbreviation: "E", Direction: DirEast, Unit: u},
		{Name: "Northing", Abbreviation: "N", Direction: DirNorth, Unit: u},
	})
}

// CreateGeocentric builds the 3D CartesianCS (X,Y,Z geocentric) used by
// geocentric GeodeticCRSes.
func CreateGeocentric(u unit.Unit) (*CS, error) {
	return New(Cartesian, []Axis{
		{Name: "Geocentric X", Abbreviation: "X", Direction: DirGeocentricX, Unit: u},
		{Name: "Geocentric Y", Abbreviation: "Y", Direction: DirGeocentricY, Unit: u},
		{Name: "Geocentric Z", Abbreviation: "Z", Direction: DirGeocentricZ, Unit: u},
	})
}

// CreateGravityRelatedHeight builds the 1D VerticalCS used by gravity
// related height VerticalCRSes.
func CreateGravityRelatedHeight(u unit.Unit) (*CS, error) {
	return New(Vertical, []Axis{
		{Name: "Gravity-related height", Abbreviation: "H", Direction: DirUp, Unit: u},
	})
}

// CreateWithAxes is the generic constructor: it validates arity for the
// given Kind and otherwise accepts the axes verbatim.
func CreateWithAxes(k Kind, axes []Axis) (*CS, error) {
	return New(k, axes)
}

// IsEastNorthOrder reports whether a 2D CS's first two axes are (east,
// north) in that order — the "axis order not (east, north)" test used by
// the PROJ-string emitter.
func (c *CS) IsEastNorthOrder() bool {
	if len(c.Axes) < 2 {
		return true
	}
	return c.Axes[0].Direction == DirEast && c.Axes[1].Direction == DirNorth
}

// SameDirectionPolar reports whether both axes point the same way
// (north/north or south/south), the UPS polar-CS special case in §4.8.
func (c *CS) SameDirectionPolar() (dir AxisDirection, ok bool) {
	if len(c.Axes) < 2 {
		return DirUnspecified, false
	}
	a, b := c.Axes[0].Direction, c.Axes[1].Direction
	if a == b && (a == DirNorth || a == DirSouth) {
		return a, true
	}
	return DirUnspecified, false
}
