package operation

import (
	"strings"

	"github.com/flywave/go-crs/unit"
)

// ParamRow is one row of a method's ordered parameter list: EPSG name,
// EPSG code, WKT1 name, unit kind, and PROJ keyword.
type ParamRow struct {
	EPSGName string
	EPSGCode string
	WKT1Name string
	UnitKind unit.Kind
	ProjKey  string
}

// MethodRow is one row of the C12 registry: EPSG method name/code
// (empty for WKT2-only methods), WKT1 method name, ESRI name, PROJ
// projection keyword (empty for methods without one), and its ordered
// parameter rows.
type MethodRow struct {
	EPSGName    string
	EPSGCode    string
	WKT1Name    string
	ESRIName    string
	ProjKeyword string
	Params      []ParamRow
}

// Descriptor returns the ParameterDescriptor for a param row.
func (p ParamRow) Descriptor() *ParameterDescriptor {
	return &ParameterDescriptor{Name: p.EPSGName, EPSGCode: p.EPSGCode}
}

// Common parameter rows, reused across many method rows the way EPSG
// itself reuses parameter codes across methods.
var (
	paramLatOrigin      = ParamRow{"Latitude of natural origin", "8801", "latitude_of_origin", unit.Angular, "lat_0"}
	paramLonOrigin      = ParamRow{"Longitude of natural origin", "8802", "central_meridian", unit.Angular, "lon_0"}
	paramScaleFactor    = ParamRow{"Scale factor at natural origin", "8805", "scale_factor", unit.ScaleKind, "k_0"}
	paramFalseEasting   = ParamRow{"False easting", "8806", "false_easting", unit.Linear, "x_0"}
	paramFalseNorthing  = ParamRow{"False northing", "8807", "false_northing", unit.Linear, "y_0"}
	paramLatFalseOrigin = ParamRow{"Latitude of false origin", "8821", "latitude_of_origin", unit.Angular, "lat_0"}
	paramLonFalseOrigin = ParamRow{"Longitude of false origin", "8822", "central_meridian", unit.Angular, "lon_0"}
	paramStdParallel1   = ParamRow{"Latitude of 1st standard parallel", "8823", "standard_parallel_1", unit.Angular, "lat_1"}
	paramStdParallel2   = ParamRow{"Latitude of 2nd standard parallel", "8824", "standard_parallel_2", unit.Angular, "lat_2"}
	paramEastFalseOrig  = ParamRow{"Easting at false origin", "8826", "false_easting", unit.Linear, "x_0"}
	paramNorthFalseOrig = ParamRow{"Northing at false origin", "8827", "false_northing", unit.Linear, "y_0"}
	paramLatCentre      = ParamRow{"Latitude of projection centre", "8811", "latitude_of_center", unit.Angular, "lat_0"}
	paramLonCentre      = ParamRow{"Longitude of projection centre", "8812", "longitude_of_center", unit.Angular, "lon_0"}
	paramAzimuth        = ParamRow{"Azimuth of initial line", "8813", "azimuth", unit.Angular, "alpha"}
	paramRectSkewAngle  = ParamRow{"Angle from Rectified to Skew Grid", "8814", "rectified_grid_angle", unit.Angular, "gamma"}
	paramScaleCentre    = ParamRow{"Scale factor on initial line", "8815", "scale_factor", unit.ScaleKind, "k"}
	paramEastCentre     = ParamRow{"Easting at projection centre", "8816", "false_easting", unit.Linear, "x_0"}
	paramNorthCentre    = ParamRow{"Northing at projection centre", "8817", "false_northing", unit.Linear, "y_0"}
	paramLatPseudoOrig  = ParamRow{"Latitude of pseudo standard parallel", "8818", "latitude_of_origin", unit.Angular, "lat_0"}
	paramScalePseudo    = ParamRow{"Scale factor on pseudo standard parallel", "8819", "scale_factor", unit.ScaleKind, "k_0"}
	paramStdParallel    = ParamRow{"Standard parallel", "8832", "standard_parallel_1", unit.Angular, "lat_ts"}
)

// Registry is the closed table of MethodRow entries, keyed for lookup by
// EPSG code, EPSG name, WKT1 name and PROJ keyword.
var Registry = []MethodRow{
	{
		EPSGName: "Transverse Mercator", EPSGCode: "9807", WKT1Name: "Transverse_Mercator", ESRIName: "Transverse_Mercator", ProjKeyword: "tmerc",
		Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramScaleFactor, paramFalseEasting, paramFalseNorthing},
	},
	{
		EPSGName: "Mercator (variant A)", EPSGCode: "9804", WKT1Name: "Mercator_1SP", ESRIName: "Mercator", ProjKeyword: "merc",
		Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramScaleFactor, paramFalseEasting, paramFalseNorthing},
	},
	{
		EPSGName: "Mercator (variant B)", EPSGCode: "9805", WKT1Name: "Mercator_2SP", ESRIName: "Mercator", ProjKeyword: "merc",
		Params: []ParamRow{paramStdParallel, paramLonOrigin, paramFalseEasting, paramFalseNorthing},
	},
	{
		EPSGName: "Popular Visualisation Pseudo Mercator", EPSGCode: "1024", WKT1Name: "Popular_Visualisation_Pseudo_Mercator", ESRIName: "Mercator", ProjKeyword: "webmerc",
		Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramFalseEasting, paramFalseNorthing},
	},
	{
		EPSGName: "Lambert Conic Conformal (1SP)", EPSGCode: "9801", WKT1Name: "Lambert_Conformal_Conic_1SP", ESRIName: "Lambert_Conformal_Conic", ProjKeyword: "lcc",
		Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramScaleFactor, paramFalseEasting, paramFalseNorthing},
	},
	{
		EPSGName: "Lambert Conic Conformal (2SP)", EPSGCode: "9802", WKT1Name: "Lambert_Conformal_Conic_2SP", ESRIName: "Lambert_Conformal_Conic", ProjKeyword: "lcc",
		Params: []ParamRow{paramLatFalseOrigin, paramLonFalseOrigin, paramStdParallel1, paramStdParallel2, paramEastFalseOrig, paramNorthFalseOrig},
	},
	{
		// §9 Open Question (i): Belgium variant shares the generic 2SP
		// path verbatim, preserved under its own method name/code.
		EPSGName: "Lambert Conic Conformal (2SP Belgium)", EPSGCode: "9803", WKT1Name: "Lambert_Conformal_Conic_2SP_Belgium", ESRIName: "Lambert_Conformal_Conic", ProjKeyword: "lcc",
		Params: []ParamRow{paramLatFalseOrigin, paramLonFalseOrigin, paramStdParallel1, paramStdParallel2, paramEastFalseOrig, paramNorthFalseOrig},
	},
	{
		EPSGName: "Oblique Stereographic", EPSGCode: "9809", WKT1Name: "Oblique_Stereographic", ESRIName: "Double_Stereographic", ProjKeyword: "sterea",
		Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramScaleFactor, paramFalseEasting, paramFalseNorthing},
	},
	{
		EPSGName: "Polar Stereographic (variant A)", EPSGCode: "9810", WKT1Name: "Polar_Stereographic", ESRIName: "Stereographic_North_Pole", ProjKeyword: "stere",
		Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramScaleFactor, paramFalseEasting, paramFalseNorthing},
	},
	{
		EPSGName: "Polar Stereographic (variant B)", EPSGCode: "9829", WKT1Name: "Polar_Stereographic", ESRIName: "Stereographic_North_Pole", ProjKeyword: "stere",
		Params: []ParamRow{paramStdParallel, paramLonOrigin, paramFalseEasting, paramFalseNorthing},
	},
	{
		EPSGName: "Hotine Oblique Mercator (variant A)", EPSGCode: "9812", WKT1Name: "Hotine_Oblique_Mercator", ESRIName: "Hotine_Oblique_Mercator_Azimuth_Natural_Origin", ProjKeyword: "omerc",
		Params: []ParamRow{paramLatCentre, paramLonCentre, paramAzimuth, paramRectSkewAngle, paramScaleCentre, paramEastCentre, paramNorthCentre},
	},
	{
		EPSGName: "Hotine Oblique Mercator (variant B)", EPSGCode: "9815", WKT1Name: "Hotine_Oblique_Mercator_Azimuth_Center", ESRIName: "Hotine_Oblique_Mercator_Azimuth_Center", ProjKeyword: "omerc",
		Params: []ParamRow{paramLatCentre, paramLonCentre, paramAzimuth, paramRectSkewAngle, paramScaleCentre, paramEastCentre, paramNorthCentre},
	},
	{
		EPSGName: "Krovak", EPSGCode: "9819", WKT1Name: "Krovak", ESRIName: "Krovak", ProjKeyword: "krovak",
		Params: []ParamRow{paramLatCentre, paramLonCentre, paramAzimuth, paramLatPseudoOrig, paramScalePseudo, paramEastCentre, paramNorthCentre},
	},
	{
		EPSGName: "Krovak (North Orientated)", EPSGCode: "1041", WKT1Name: "Krovak", ESRIName: "Krovak", ProjKeyword: "krovak",
		Params: []ParamRow{paramLatCentre, paramLonCentre, paramAzimuth, paramLatPseudoOrig, paramScalePseudo, paramEastCentre, paramNorthCentre},
	},
	{
		EPSGName: "Albers Equal Area", EPSGCode: "9822", WKT1Name: "Albers_Conic_Equal_Area", ESRIName: "Albers", ProjKeyword: "aea",
		Params: []ParamRow{paramLatFalseOrigin, paramLonFalseOrigin, paramStdParallel1, paramStdParallel2, paramEastFalseOrig, paramNorthFalseOrig},
	},
	{
		EPSGName: "Lambert Azimuthal Equal Area", EPSGCode: "9820", WKT1Name: "Lambert_Azimuthal_Equal_Area", ESRIName: "Lambert_Azimuthal_Equal_Area", ProjKeyword: "laea",
		Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramFalseEasting, paramFalseNorthing},
	},
	{
		EPSGName: "Equidistant Cylindrical", EPSGCode: "1028", WKT1Name: "Equirectangular", ESRIName: "Equidistant_Cylindrical", ProjKeyword: "eqc",
		Params: []ParamRow{paramStdParallel, paramLonOrigin, paramFalseEasting, paramFalseNorthing},
	},
	{
		EPSGName: "Cassini-Soldner", EPSGCode: "9806", WKT1Name: "Cassini_Soldner", ESRIName: "Cassini", ProjKeyword: "cass",
		Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramFalseEasting, paramFalseNorthing},
	},
	{
		EPSGName: "New Zealand Map Grid", EPSGCode: "9811", WKT1Name: "New_Zealand_Map_Grid", ESRIName: "New_Zealand_Map_Grid", ProjKeyword: "nzmg",
		Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramFalseEasting, paramFalseNorthing},
	},
	// WKT2-only methods: no EPSG code, but a PROJ keyword.
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "eck1", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "eck2", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "eck3", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "eck4", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "eck5", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "eck6", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "robin", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "moll", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "sinu", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "vandg", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "wag1", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "wag2", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "wag3", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "wag4", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "wag5", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "wag6", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "wag7", Params: []ParamRow{paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "qsc", Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{EPSGName: "", WKT1Name: "", ESRIName: "", ProjKeyword: "sch", Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramAzimuth}},
	// Method without a PROJ keyword.
	{EPSGName: "Tunisia Mapping Grid", EPSGCode: "9816", WKT1Name: "Tunisia_Mapping_Grid", ESRIName: "Tunisia_Mapping_Grid", ProjKeyword: "",
		Params: []ParamRow{paramLatOrigin, paramLonOrigin, paramFalseEasting, paramFalseNorthing}},
	{
		EPSGName: "Longitude rotation", EPSGCode: "9601", WKT1Name: "", ESRIName: "", ProjKeyword: "",
		Params: []ParamRow{{"Longitude offset", "8602", "", unit.Angular, ""}},
	},
}

// ByEPSGCode looks up a method row by its EPSG code.
func ByEPSGCode(code string) (MethodRow, bool) {
	for _, m := range Registry {
		if m.EPSGCode != "" && m.EPSGCode == code {
			return m, true
		}
	}
	return MethodRow{}, false
}

// ParamRowByEPSGCode looks up a parameter row by its EPSG code across
// every method row's parameter list.
func ParamRowByEPSGCode(code string) (ParamRow, bool) {
	for _, m := range Registry {
		for _, p := range m.Params {
			if p.EPSGCode != "" && p.EPSGCode == code {
				return p, true
			}
		}
	}
	return ParamRow{}, false
}

// ByEPSGName looks up a method row by its EPSG name (case-sensitive, the
// names are canonical).
func ByEPSGName(name string) (MethodRow, bool) {
	for _, m := range Registry {
		if m.EPSGName != "" && m.EPSGName == name {
			return m, true
		}
	}
	return MethodRow{}, false
}

// ByWKT1Name looks up a method row by its WKT1 PROJECTION[...] name.
func ByWKT1Name(name string) (MethodRow, bool) {
	for _, m := range Registry {
		if m.WKT1Name != "" && m.WKT1Name == name {
			return m, true
		}
	}
	return MethodRow{}, false
}

// ByESRIName looks up a method row by its ESRI PROJECTION[...] name.
func ByESRIName(name string) (MethodRow, bool) {
	for _, m := range Registry {
		if m.ESRIName != "" && m.ESRIName == name {
			return m, true
		}
	}
	return MethodRow{}, false
}

// ByProjKeyword looks up a method row by its PROJ +proj= keyword.
func ByProjKeyword(keyword string) (MethodRow, bool) {
	for _, m := range Registry {
		if m.ProjKeyword != "" && m.ProjKeyword == keyword {
			return m, true
		}
	}
	return MethodRow{}, false
}

// ResolveAny looks a method up trying, in order, EPSG code, EPSG name,
// WKT1 name, and ESRI name — the "matching by WKT1 name, ESRI name, EPSG
// name or EPSG code" rule of §4.6.
func ResolveAny(name, epsgCode string) (MethodRow, bool) {
	if epsgCode != "" {
		if m, ok := ByEPSGCode(epsgCode); ok {
			return m, true
		}
	}
	if m, ok := ByEPSGName(name); ok {
		return m, true
	}
	if m, ok := ByWKT1Name(name); ok {
		return m, true
	}
	if m, ok := ByESRIName(name); ok {
		return m, true
	}
	return MethodRow{}, false
}

// paramNameEquivalenceGroups lists groups of parameter names that must
// compare equal under the EQUIVALENT criterion (§4.10).
var paramNameEquivalenceGroups = [][]string{
	{"False easting", "Easting at false origin", "Easting at projection centre"},
	{"False northing", "Northing at false origin", "Northing at projection centre"},
	{"Latitude of natural origin", "Latitude of false origin", "Latitude of projection centre"},
	{"Longitude of natural origin", "Longitude of false origin", "Longitude of projection centre", "Longitude of origin"},
}

func equivalentParamNames(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if strings.EqualFold(a, b) {
		return true
	}
	for _, group := range paramNameEquivalenceGroups {
		inA, inB := false, false
		for _, n := range group {
			if strings.EqualFold(n, a) {
				inA = true
			}
			if strings.EqualFold(n, b) {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}
