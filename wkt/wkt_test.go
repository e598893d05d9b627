package wkt

import (
	"strings"
	"testing"

	"github.com/flywave/go-crs/iso19111/crs"
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/datum"
	"github.com/flywave/go-crs/iso19111/operation"
	"github.com/flywave/go-crs/unit"
)

func TestEmitEPSG4326WKT2Default(t *testing.T) {
	out, err := Emit(crs.EPSG4326, WKT2_2015, Options{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	want := `GEODCRS["WGS 84", DATUM["World Geodetic System 1984", ELLIPSOID["WGS 84",6378137,298.257223563, LENGTHUNIT["metre",1]]], PRIMEM["Greenwich",0, ANGLEUNIT["degree",0.0174532925199433]], CS[ellipsoidal,2], AXIS["latitude",north, ORDER[1], ANGLEUNIT["degree",0.0174532925199433]], AXIS["longitude",east, ORDER[2], ANGLEUNIT["degree",0.0174532925199433]], ID["EPSG",4326]]`
	if out != want {
		t.Errorf("Emit mismatch:\n got: %s\nwant: %s", out, want)
	}
}

func TestEmitEPSG4326RoundTrips(t *testing.T) {
	out, err := Emit(crs.EPSG4326, WKT2_2015, Options{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	c, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse round-trip: %v", err)
	}
	g, ok := c.(*crs.GeodeticCRS)
	if !ok || !g.IsGeographic() || g.Name != "WGS 84" {
		t.Fatalf("round-trip produced %+v", c)
	}
}

func TestEmitParisPrimeMeridianDegreeConversion(t *testing.T) {
	frame := datum.NewGeodeticReferenceFrame("Nouvelle Triangulation Francaise (Paris)", datum.Intl1924, datum.Paris, "")
	geog, err := cs.CreateLatitudeLongitude(unit.Grad)
	if err != nil {
		t.Fatalf("CreateLatitudeLongitude: %v", err)
	}
	g, err := crs.NewGeodeticCRS("NTF (Paris)", frame, nil, geog)
	if err != nil {
		t.Fatalf("NewGeodeticCRS: %v", err)
	}
	out, err := Emit(g, WKT1_GDAL, Options{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, `PRIMEM["Paris",2.33722917`) {
		t.Errorf("expected Paris meridian converted to degrees, got %q", out)
	}
	if !strings.Contains(out, `UNIT["grad",0.015707963267949, AUTHORITY["EPSG","9105"]]`) {
		t.Errorf("expected grad UNIT with AUTHORITY, got %q", out)
	}
}

func TestParseWKT1TOWGS84ProducesBoundCRS(t *testing.T) {
	input := `GEOGCS["X", DATUM["Y", SPHEROID["intl",6378388,297], TOWGS84[1,2,3,4,5,6,7]], PRIMEM["Greenwich",0], UNIT["degree",0.0174532925199433]]`
	c, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bound, ok := c.(*crs.BoundCRS)
	if !ok {
		t.Fatalf("expected *crs.BoundCRS, got %T", c)
	}
	if bound.HubCRS != crs.EPSG4326 {
		t.Errorf("expected hub EPSG:4326, got %v", bound.HubCRS)
	}
	params, err := bound.Transformation.GetTOWGS84Parameters()
	if err != nil {
		t.Fatalf("GetTOWGS84Parameters: %v", err)
	}
	want := [7]float64{1, 2, 3, 4, 5, 6, 7}
	if params != want {
		t.Errorf("params = %v, want %v", params, want)
	}
}

func TestParseWKT1HorizontalGridExtensionProducesBoundCRS(t *testing.T) {
	input := `GEOGCS["X", DATUM["Y", SPHEROID["intl",6378388,297], EXTENSION["PROJ4_GRIDS","ntf_r93.gsb"]], PRIMEM["Greenwich",0], UNIT["degree",0.0174532925199433]]`
	c, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bound, ok := c.(*crs.BoundCRS)
	if !ok {
		t.Fatalf("expected *crs.BoundCRS, got %T", c)
	}
	if bound.HubCRS != crs.EPSG4326 {
		t.Errorf("expected hub EPSG:4326, got %v", bound.HubCRS)
	}
	if bound.Transformation.Method.Name != "NTv2" {
		t.Errorf("expected NTv2 method, got %q", bound.Transformation.Method.Name)
	}
	if got := bound.Transformation.Params[0].Value.StringVal; got != "ntf_r93.gsb" {
		t.Errorf("expected grid file ntf_r93.gsb, got %q", got)
	}
}

func TestParseWKT1VerticalGridExtensionProducesBoundCRS(t *testing.T) {
	input := `VERT_CS["Y", VERT_DATUM["Z",2005, EXTENSION["PROJ4_GRIDS","egm96_15.gtx"]], UNIT["metre",1]]`
	c, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bound, ok := c.(*crs.BoundCRS)
	if !ok {
		t.Fatalf("expected *crs.BoundCRS, got %T", c)
	}
	if bound.HubCRS != crs.EPSG4326 {
		t.Errorf("expected hub EPSG:4326, got %v", bound.HubCRS)
	}
	if bound.Transformation.Method.Name != "GravityRelatedHeight to Geographic3D" {
		t.Errorf("expected GravityRelatedHeight to Geographic3D method, got %q", bound.Transformation.Method.Name)
	}
	if got := bound.Transformation.Params[0].Value.StringVal; got != "egm96_15.gtx" {
		t.Errorf("expected grid file egm96_15.gtx, got %q", got)
	}
	if _, ok := bound.BaseCRS.(*crs.VerticalCRS); !ok {
		t.Errorf("expected base to remain a *crs.VerticalCRS, got %T", bound.BaseCRS)
	}
}

func TestEmitUTM31NWKT1ESRIParameterNames(t *testing.T) {
	conv, err := operation.NewUTM(31, true)
	if err != nil {
		t.Fatalf("NewUTM: %v", err)
	}
	enCS, err := cs.CreateEastNorth(unit.Metre)
	if err != nil {
		t.Fatalf("CreateEastNorth: %v", err)
	}
	p, err := crs.NewProjectedCRS("WGS 84 / UTM zone 31N", crs.EPSG4326, conv, enCS)
	if err != nil {
		t.Fatalf("NewProjectedCRS: %v", err)
	}
	out, err := Emit(p, WKT1_ESRI, Options{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	for _, want := range []string{
		`PARAMETER["False_Easting",500000`,
		`PARAMETER["False_Northing",0`,
		`PARAMETER["Central_Meridian",3`,
		`PARAMETER["Scale_Factor",0.9996`,
		`PARAMETER["Latitude_Of_Origin",0`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in WKT1-ESRI output, got %q", want, out)
		}
	}
}

func TestDetectDialectUsesGCSDPrefixNotAuthority(t *testing.T) {
	input := `PROJCS["NTF (Paris) / Lambert zone II",GEOGCS["NTF (Paris)",DATUM["Nouvelle_Triangulation_Francaise_Paris",SPHEROID["Clarke 1880 (IGN)",6378249.2,293.4660212936269]],PRIMEM["Paris",2.337229166666667],UNIT["degree",0.0174532925199433]],PROJECTION["Lambert_Conformal_Conic_1SP"],PARAMETER["latitude_of_origin",52],PARAMETER["central_meridian",0],PARAMETER["scale_factor",0.99987742],PARAMETER["false_easting",600000],PARAMETER["false_northing",2200000],UNIT["metre",1]]`
	c, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, ok := c.(*crs.ProjectedCRS)
	if !ok {
		t.Fatalf("expected *crs.ProjectedCRS, got %T", c)
	}
	if p.BaseCRS.Datum.Name != "Nouvelle_Triangulation_Francaise_Paris" {
		t.Errorf("expected datum name kept verbatim as WKT1-GDAL, got %q", p.BaseCRS.Datum.Name)
	}
}

func TestDialectPredicates(t *testing.T) {
	if !WKT1_GDAL.IsWKT1() || WKT1_GDAL.IsWKT2() {
		t.Errorf("WKT1_GDAL classified wrong")
	}
	if !WKT2_2018.IsWKT2() || WKT2_2018.IsWKT1() {
		t.Errorf("WKT2_2018 classified wrong")
	}
}
