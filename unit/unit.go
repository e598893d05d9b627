// Package unit implements the C1 unit registry and measure algebra: value
// types for length/angle/scale/measure, interned by canonical name, with
// SI conversion factors and the PROJ/WKT names used by the codecs.
//
// Grounded on the flat map-of-struct registry shape used by
// spatialmodel-inmap's ellipsoidDef/datumDef tables in
// _examples/other_examples/spatialmodel-inmap__EllipsoidDef.go: a package
// level map of immutable value structs, looked up by name, initialized
// once and never mutated.
package unit

import "github.com/flywave/go-crs/crserr"

// Kind is the closed set of unit kinds recognized by the registry.
type Kind int

const (
	Linear Kind = iota
	Angular
	ScaleKind
	Time
	Parametric
	NoneKind
	Unknown
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Angular:
		return "angular"
	case ScaleKind:
		return "scale"
	case Time:
		return "time"
	case Parametric:
		return "parametric"
	case NoneKind:
		return "none"
	default:
		return "unknown"
	}
}

// Unit is an interned value; equality is by canonical Name.
type Unit struct {
	Name        string
	ConvFactor  float64 // multiplicative factor to SI base unit
	Kind        Kind
	AuthCode    string // empty when the unit carries no authority code
	AuthCodeSpace string
	ProjName    string // name recognized by +units=/+to_meter= etc, "" if none
}

// Equal reports whether two units are the same interned unit.
func (u Unit) Equal(o Unit) bool { return u.Name == o.Name }

// ToSI converts a value expressed in u to the SI base unit for its kind.
func (u Unit) ToSI(v float64) float64 { return v * u.ConvFactor }

// Convert converts a value from unit `from` to unit `to`. Both units must
// share a Kind.
func Convert(v float64, from, to Unit) (float64, error) {
	if from.Kind != to.Kind {
		return 0, crserr.Newf(crserr.InvalidUnitKind, "cannot convert %q (%s) to %q (%s)", from.Name, from.Kind, to.Name, to.Kind)
	}
	if to.ConvFactor == 0 {
		return 0, crserr.Newf(crserr.InvalidUnit, "unit %q has no conversion factor", to.Name)
	}
	return v * (from.ConvFactor / to.ConvFactor), nil
}

// Predefined singletons.
var (
	Metre = Unit{Name: "metre", ConvFactor: 1.0, Kind: Linear, AuthCode: "9001", AuthCodeSpace: "EPSG", ProjName: "m"}
	Foot  = Unit{Name: "foot", ConvFactor: 0.3048, Kind: Linear, AuthCode: "9002", AuthCodeSpace: "EPSG", ProjName: "ft"}
	USSurveyFoot = Unit{Name: "US survey foot", ConvFactor: 0.304800609601219, Kind: Linear, AuthCode: "9003", AuthCodeSpace: "EPSG", ProjName: "us-ft"}

	Degree     = Unit{Name: "degree", ConvFactor: 0.0174532925199433, Kind: Angular, AuthCode: "9122", AuthCodeSpace: "EPSG"}
	Grad       = Unit{Name: "grad", ConvFactor: 0.015707963267949, Kind: Angular, AuthCode: "9105", AuthCodeSpace: "EPSG"}
	Radian     = Unit{Name: "radian", ConvFactor: 1.0, Kind: Angular, AuthCode: "9101", AuthCodeSpace: "EPSG"}
	ArcSecond  = Unit{Name: "arc-second", ConvFactor: 0.0174532925199433 / 3600.0, Kind: Angular, AuthCode: "9104", AuthCodeSpace: "EPSG"}

	Unity           = Unit{Name: "unity", ConvFactor: 1.0, Kind: ScaleKind, AuthCode: "9201", AuthCodeSpace: "EPSG"}
	PartsPerMillion = Unit{Name: "parts per million", ConvFactor: 1e-6, Kind: ScaleKind, AuthCode: "9202", AuthCodeSpace: "EPSG"}

	None = Unit{Name: "none", ConvFactor: 0, Kind: NoneKind}
)

// byName is the name-keyed registry used for WKT/PROJ name resolution.
var byName = map[string]Unit{}

// byProjName is the PROJ +units=/+to_meter= keyword-keyed registry.
var byProjName = map[string]Unit{}

func register(u Unit) Unit {
	byName[u.Name] = u
	if u.ProjName != "" {
		byProjName[u.ProjName] = u
	}
	return u
}

func init() {
	register(Metre)
	register(Foot)
	register(USSurveyFoot)
	register(Degree)
	register(Grad)
	register(Radian)
	register(ArcSecond)
	register(Unity)
	register(PartsPerMillion)
	register(None)
	byName["meter"] = Metre
	byName["Meter"] = Metre
	byName["metre"] = Metre
	byName["Foot_US"] = USSurveyFoot
}

// ByName resolves a unit by its WKT name, tolerating the common
// "metre"/"meter" spelling variance and case seen in ESRI/GDAL exports.
func ByName(name string) (Unit, bool) {
	u, ok := byName[name]
	return u, ok
}

// ByProjName resolves a unit by its PROJ +units= keyword.
func ByProjName(name string) (Unit, bool) {
	u, ok := byProjName[name]
	return u, ok
}

// FromFactor builds an ad-hoc unit from a bare SI conversion factor, for
// WKT UNIT[...] nodes whose name is not one of the well-known ones. The
// parser tolerates either a known name or a bare decimal factor per §6.
func FromFactor(name string, factor float64, kind Kind) Unit {
	if u, ok := byName[name]; ok {
		return u
	}
	return Unit{Name: name, ConvFactor: factor, Kind: kind}
}
