package projstring

import (
	"strings"
	"testing"

	"github.com/flywave/go-crs/iso19111/crs"
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/datum"
	"github.com/flywave/go-crs/iso19111/operation"
	"github.com/flywave/go-crs/unit"
)

func TestEmitGeographicFlat(t *testing.T) {
	out, err := Emit(crs.EPSG4326, Options{Convention: Flat})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, "+proj=longlat") || !strings.Contains(out, "+datum=WGS84") {
		t.Fatalf("unexpected flat output: %q", out)
	}
}

func TestEmitGeographicPipeline(t *testing.T) {
	out, err := Emit(crs.EPSG4326, Options{Convention: Pipeline})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	for _, want := range []string{"+proj=pipeline", "+step", "+proj=longlat", "+ellps=WGS84"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestParseFlatUTM(t *testing.T) {
	c, err := Parse("+proj=utm +zone=31 +datum=WGS84")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	proj, ok := c.(*crs.ProjectedCRS)
	if !ok {
		t.Fatalf("expected *crs.ProjectedCRS, got %T", c)
	}
	conv := proj.InternalConversion()
	if conv == nil || conv.Method == nil {
		t.Fatalf("missing deriving conversion/method")
	}
	if v, ok := conv.ParamValue("", "Longitude of natural origin"); !ok || v.MeasureVal.Value != 3 {
		t.Errorf("expected central meridian 3 for UTM zone 31, got %+v (ok=%v)", v, ok)
	}
}

func TestParseTowgs84WrapsBoundCRS(t *testing.T) {
	c, err := Parse("+proj=longlat +ellps=intl +towgs84=1,2,3,4,5,6,7")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bound, ok := c.(*crs.BoundCRS)
	if !ok {
		t.Fatalf("expected *crs.BoundCRS, got %T", c)
	}
	params, err := bound.Transformation.GetTOWGS84Parameters()
	if err != nil {
		t.Fatalf("GetTOWGS84Parameters: %v", err)
	}
	want := [7]float64{1, 2, 3, 4, 5, 6, 7}
	for i, v := range want {
		if params[i] != v {
			t.Errorf("param[%d] = %v, want %v", i, params[i], v)
		}
	}
}

func TestParseUnknownProjRoundTrips(t *testing.T) {
	c, err := Parse("+proj=made_up_projection +foo=1.5 +bar=hello")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	proj, ok := c.(*crs.ProjectedCRS)
	if !ok {
		t.Fatalf("expected *crs.ProjectedCRS, got %T", c)
	}
	conv := proj.InternalConversion()
	if conv.Method.Name != "PROJ made_up_projection" {
		t.Errorf("expected opaque method name, got %q", conv.Method.Name)
	}
	if _, ok := operation.FindByName(conv.Params, "bar"); !ok {
		t.Errorf("expected opaque param 'bar' to survive round-trip")
	}
}

func TestEmitCompoundAppendsVunits(t *testing.T) {
	proj, err := Parse("+proj=utm +zone=31 +datum=WGS84")
	if err != nil {
		t.Fatalf("Parse base projected CRS: %v", err)
	}
	vertCS, err := cs.CreateGravityRelatedHeight(unit.Metre)
	if err != nil {
		t.Fatalf("CreateGravityRelatedHeight: %v", err)
	}
	vertDatum := datum.NewVerticalReferenceFrame("Mean Sea Level", "", "")
	vert, err := crs.NewVerticalCRS("height", vertDatum, nil, vertCS)
	if err != nil {
		t.Fatalf("NewVerticalCRS: %v", err)
	}
	compound, err := crs.NewCompoundCRS("UTM 31N + height", []crs.CRS{proj, vert})
	if err != nil {
		t.Fatalf("NewCompoundCRS: %v", err)
	}
	out, err := Emit(compound, Options{Convention: Flat})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, "+proj=utm") || !strings.Contains(out, "+zone=31") {
		t.Errorf("expected UTM projection in compound emission, got %q", out)
	}
	if !strings.Contains(out, "+vunits=m") {
		t.Errorf("expected +vunits=m even for a metre vertical unit, got %q", out)
	}
}
