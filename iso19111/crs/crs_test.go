package crs

import (
	"testing"

	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/datum"
	"github.com/flywave/go-crs/iso19111/operation"
	"github.com/flywave/go-crs/unit"
)

func mustUTM31N(t *testing.T) *ProjectedCRS {
	t.Helper()
	conv, err := operation.NewUTM(31, true)
	if err != nil {
		t.Fatalf("NewUTM: %v", err)
	}
	enCS, err := cs.CreateEastNorth(unit.Metre)
	if err != nil {
		t.Fatalf("CreateEastNorth: %v", err)
	}
	p, err := NewProjectedCRS("WGS 84 / UTM zone 31N", EPSG4326, conv, enCS)
	if err != nil {
		t.Fatalf("NewProjectedCRS: %v", err)
	}
	return p
}

func TestGeodeticCRSKindDistinguishesGeographicFromGeocentric(t *testing.T) {
	if EPSG4326.Kind() != KindGeographic || !EPSG4326.IsGeographic() {
		t.Errorf("EPSG4326 should be KindGeographic")
	}
	if EPSG4978.Kind() != KindGeodetic || EPSG4978.IsGeographic() {
		t.Errorf("EPSG4978 should be KindGeodetic (geocentric)")
	}
}

func TestNewGeodeticCRSRequiresExactlyOneOfDatumOrEnsemble(t *testing.T) {
	c, _ := cs.CreateLatitudeLongitude(unit.Degree)
	if _, err := NewGeodeticCRS("both", datum.WGS84Frame, mustEnsemble(t), c); err == nil {
		t.Fatalf("expected error when both datum and ensemble are set")
	}
	if _, err := NewGeodeticCRS("neither", nil, nil, c); err == nil {
		t.Fatalf("expected error when neither datum nor ensemble is set")
	}
}

func mustEnsemble(t *testing.T) *datum.Ensemble {
	t.Helper()
	e, err := datum.NewEnsemble("WGS 84 ensemble", []*datum.GeodeticReferenceFrame{datum.WGS84Frame}, 2.0)
	if err != nil {
		t.Fatalf("NewEnsemble: %v", err)
	}
	return e
}

func TestProjectedCRSRejectsNonGeographicBase(t *testing.T) {
	conv, _ := operation.NewUTM(31, true)
	enCS, _ := cs.CreateEastNorth(unit.Metre)
	if _, err := NewProjectedCRS("bad", EPSG4978, conv, enCS); err == nil {
		t.Fatalf("expected error building ProjectedCRS on a geocentric base")
	}
}

func TestProjectedCRSDerivingConversionSelfReferenceIsHidden(t *testing.T) {
	p := mustUTM31N(t)
	clone := p.DerivingConversion()
	if clone.TargetCRS != p {
		t.Errorf("DerivingConversion clone should still point back at the owning CRS")
	}
	clone.SourceCRS = nil
	if p.InternalConversion().SourceCRS == nil {
		t.Errorf("mutating the returned clone must not affect the internal conversion")
	}
}

func TestProjectedCRSShallowCloneRebindsTarget(t *testing.T) {
	p := mustUTM31N(t)
	cloned := p.ShallowClone().(*ProjectedCRS)
	if cloned.InternalConversion().TargetCRS != cloned {
		t.Errorf("shallow clone's internal conversion should target the clone, not the original")
	}
	if p.InternalConversion().TargetCRS != p {
		t.Errorf("original's internal conversion should still target the original")
	}
}

func TestNewCompoundCRSInvariants(t *testing.T) {
	vd := datum.NewVerticalReferenceFrame("EGM2008 geoid", "", "")
	vCS, _ := cs.CreateGravityRelatedHeight(unit.Metre)
	v, err := NewVerticalCRS("height", vd, nil, vCS)
	if err != nil {
		t.Fatalf("NewVerticalCRS: %v", err)
	}
	p := mustUTM31N(t)

	if _, err := NewCompoundCRS("too few", []CRS{p}); err == nil {
		t.Fatalf("expected error with fewer than two components")
	}
	if _, err := NewCompoundCRS("two verticals", []CRS{v, v}); err == nil {
		t.Fatalf("expected error combining two vertical components")
	}
	cc, err := NewCompoundCRS("UTM31N + height", []CRS{p, v})
	if err != nil {
		t.Fatalf("NewCompoundCRS: %v", err)
	}
	if cc.Kind() != KindCompound || len(cc.Components) != 2 {
		t.Errorf("unexpected compound CRS: %+v", cc)
	}
}

func TestExtractGeographicCRSWalksProjectedAndCompound(t *testing.T) {
	p := mustUTM31N(t)
	if g := ExtractGeographicCRS(p); g != EPSG4326 {
		t.Errorf("expected ExtractGeographicCRS(projected) to return its base")
	}
	vd := datum.NewVerticalReferenceFrame("geoid", "", "")
	vCS, _ := cs.CreateGravityRelatedHeight(unit.Metre)
	v, _ := NewVerticalCRS("height", vd, nil, vCS)
	cc, err := NewCompoundCRS("compound", []CRS{p, v})
	if err != nil {
		t.Fatalf("NewCompoundCRS: %v", err)
	}
	if g := ExtractGeographicCRS(cc); g != EPSG4326 {
		t.Errorf("expected ExtractGeographicCRS(compound) to find the projected base's geographic CRS")
	}
	if vc := ExtractVerticalCRS(cc); vc == nil {
		t.Errorf("expected ExtractVerticalCRS(compound) to find the vertical component")
	}
}

func TestStripVerticalComponentDropsThirdAxis(t *testing.T) {
	c3, err := cs.CreateLatitudeLongitudeHeight(unit.Degree, unit.Metre)
	if err != nil {
		t.Fatalf("CreateLatitudeLongitudeHeight: %v", err)
	}
	g3, err := NewGeodeticCRS("WGS 84 3D", datum.WGS84Frame, nil, c3)
	if err != nil {
		t.Fatalf("NewGeodeticCRS: %v", err)
	}
	stripped := StripVerticalComponent(g3).(*GeodeticCRS)
	if len(stripped.CS.Axes) != 2 {
		t.Errorf("expected 2 axes after stripping, got %d", len(stripped.CS.Axes))
	}
	if len(g3.CS.Axes) != 3 {
		t.Errorf("stripping must not mutate the original CRS")
	}
}

func TestBoundCRSRequiresAllThreeArguments(t *testing.T) {
	if _, err := NewBoundCRS(nil, EPSG4326, operation.NewGeocentricTranslation("1", 1, 2, 3)); err == nil {
		t.Fatalf("expected error with nil base")
	}
}

func TestBoundCRSCoordinateSystemDelegatesToBase(t *testing.T) {
	transform := operation.NewGeocentricTranslation("1001", 1, 2, 3)
	bound, err := NewBoundCRS(EPSG4267, EPSG4326, transform)
	if err != nil {
		t.Fatalf("NewBoundCRS: %v", err)
	}
	if bound.CoordinateSystem() != EPSG4267.CoordinateSystem() {
		t.Errorf("BoundCRS.CoordinateSystem() should delegate to the base CRS")
	}
	if bound.Kind() != KindBound {
		t.Errorf("expected KindBound")
	}
}

func TestGeodeticCRSIsEquivalentTo(t *testing.T) {
	if !EPSG4326.IsEquivalentTo(EPSG4326, Strict) {
		t.Errorf("EPSG4326 should be strictly equivalent to itself")
	}
	if EPSG4326.IsEquivalentTo(EPSG4978, Equivalent) {
		t.Errorf("geographic and geocentric variants should not be equivalent")
	}
}

func TestCreateBoundCRSToWGS84IfPossibleNoAuthorityIsNoop(t *testing.T) {
	p := mustUTM31N(t)
	if got := CreateBoundCRSToWGS84IfPossible(p, nil); got != CRS(p) {
		t.Errorf("with a nil authority the CRS should be returned unchanged")
	}
}

func TestCreateBoundCRSToWGS84IfPossibleAlreadyWGS84IsNoop(t *testing.T) {
	if got := CreateBoundCRSToWGS84IfPossible(EPSG4326, nil); got != CRS(EPSG4326) {
		t.Errorf("EPSG4326 itself should be returned unchanged")
	}
}
