package wkt

// Dialect is the closed set of WKT dialects/versions the emitter and
// parser support (§4.7).
type Dialect int

const (
	WKT2_2015 Dialect = iota
	WKT2_2018
	WKT1_GDAL
	WKT1_ESRI
)

// IsWKT1 reports whether d is one of the WKT1 family.
func (d Dialect) IsWKT1() bool { return d == WKT1_GDAL || d == WKT1_ESRI }

// IsWKT2 reports whether d is one of the WKT2 family.
func (d Dialect) IsWKT2() bool { return d == WKT2_2015 || d == WKT2_2018 }
