package wkt

import "strings"

// esriNameAliases maps a canonical (EPSG/WKT1) GEOGCS/DATUM/SPHEROID name
// to the name ESRI's morphToESRI convention uses on export, per §4.7's
// "ESRI name-morphism table". Only the handful of names distinct enough to
// matter for round-tripping are listed; anything absent from the table
// falls back to the generic space-to-underscore morphism.
var esriNameAliases = map[string]string{
	"WGS 84":                     "GCS_WGS_1984",
	"World Geodetic System 1984": "D_WGS_1984",
	"North American Datum 1927":  "D_North_American_1927",
	"North American Datum 1983":  "D_North_American_1983",
	"NAD27":                      "GCS_North_American_1927",
	"NAD83":                      "GCS_North_American_1983",
}

var esriParamAliases = map[string]string{
	"latitude_of_origin":  "Latitude_Of_Origin",
	"central_meridian":    "Central_Meridian",
	"scale_factor":        "Scale_Factor",
	"false_easting":       "False_Easting",
	"false_northing":      "False_Northing",
	"standard_parallel_1": "Standard_Parallel_1",
	"standard_parallel_2": "Standard_Parallel_2",
	"latitude_of_center":  "Latitude_Of_Center",
	"longitude_of_center": "Longitude_Of_Center",
	"azimuth":             "Azimuth",
}

// ESRIMorphName applies the ESRI name-morphism rule (§4.7): a table
// lookup first, then the generic fallback (genericMorph): each space- or
// underscore-separated word gets an upper-case first letter and the
// words are joined with underscores; no other characters are removed.
func ESRIMorphName(name string) string {
	if alias, ok := esriNameAliases[name]; ok {
		return alias
	}
	return genericMorph(name)
}

// ESRIUnmorphName reverses ESRIMorphName for the subset of names carried
// in the alias table; names absent from the reverse table have their
// underscores replaced by spaces (round-trip is lossy only for the generic fallback, matching
// PROJ's own behavior since ESRI's grammar is not fully invertible).
func ESRIUnmorphName(name string) string {
	for canonical, alias := range esriNameAliases {
		if alias == name {
			return canonical
		}
	}
	return strings.ReplaceAll(name, "_", " ")
}

// ESRIMorphParamName applies the ESRI parameter name-morphism rule: a
// small alias table, falling back to the WKT1 name capitalized per-word.
func ESRIMorphParamName(wkt1Name string) string {
	if alias, ok := esriParamAliases[wkt1Name]; ok {
		return alias
	}
	return genericMorph(wkt1Name)
}

// esriMorphNameWithAuthority applies the ESRI name-morphism rule (§4.7/
// §4.12): a database alias lookup first when an authority is wired,
// falling back to ESRIMorphName's table-then-generic rule otherwise.
func esriMorphNameWithAuthority(f *Formatter, name, kind string) string {
	if f.Authority != nil {
		if alias, ok := f.Authority.ResolveAlias(name, kind, "ESRI"); ok {
			return alias
		}
	}
	return ESRIMorphName(name)
}

// esriMorphParamNameWithAuthority is esriMorphNameWithAuthority's
// parameter-name counterpart: the alias lookup is keyed on the
// parameter's EPSG name, the deterministic fallback on its WKT1 name.
func esriMorphParamNameWithAuthority(f *Formatter, epsgName, wkt1Name string) string {
	if f.Authority != nil {
		if alias, ok := f.Authority.ResolveAlias(epsgName, "parameter", "ESRI"); ok {
			return alias
		}
	}
	return ESRIMorphParamName(wkt1Name)
}

// ESRIUnmorphParamName reverses ESRIMorphParamName for the subset of
// parameter names carried in esriParamAliases, returning the canonical
// lowercase/underscored WKT1 name; names absent from the table fall back
// to replacing underscores with spaces so they can still be matched
// against a registry row's EPSG name.
func ESRIUnmorphParamName(name string) string {
	for wkt1Name, alias := range esriParamAliases {
		if alias == name {
			return wkt1Name
		}
	}
	return strings.ReplaceAll(name, "_", " ")
}

// genericMorph title-cases each underscore/space-separated word, matching
// the generic half of ESRI's morphToESRI naming convention for anything
// outside the explicit alias tables.
func genericMorph(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '_' })
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "_")
}
