package operation

import (
	"testing"

	"github.com/flywave/go-crs/iso19111/common"
)

func TestNewUTMZoneOutOfRange(t *testing.T) {
	if _, err := NewUTM(0, true); err == nil {
		t.Fatalf("expected error for zone 0")
	}
	if _, err := NewUTM(61, true); err == nil {
		t.Fatalf("expected error for zone 61")
	}
}

func TestNewUTMSouthHemisphereFalseNorthing(t *testing.T) {
	south, err := NewUTM(31, false)
	if err != nil {
		t.Fatalf("NewUTM: %v", err)
	}
	v, ok := south.ParamValue("8807", "false_northing")
	if !ok {
		t.Fatalf("expected a false northing parameter")
	}
	if v.MeasureVal.Value != 10000000 {
		t.Errorf("south hemisphere false northing = %v, want 10000000", v.MeasureVal.Value)
	}
	north, _ := NewUTM(31, true)
	nv, _ := north.ParamValue("8807", "false_northing")
	if nv.MeasureVal.Value != 0 {
		t.Errorf("north hemisphere false northing = %v, want 0", nv.MeasureVal.Value)
	}
}

func TestGetTOWGS84ParametersRequiresHelmertMethod(t *testing.T) {
	molodensky := NewMolodensky(1, 2, 3, 4, 5)
	if _, err := molodensky.GetTOWGS84Parameters(); err == nil {
		t.Fatalf("expected error extracting TOWGS84 from a non-Helmert transformation")
	}
}

func TestGetTOWGS84ParametersSevenTuple(t *testing.T) {
	tr := NewPositionVectorTransformation("1033", 1, 2, 3, 4, 5, 6, 7)
	params, err := tr.GetTOWGS84Parameters()
	if err != nil {
		t.Fatalf("GetTOWGS84Parameters: %v", err)
	}
	want := [7]float64{1, 2, 3, 4, 5, 6, 7}
	if params != want {
		t.Errorf("params = %v, want %v", params, want)
	}
}

func TestIsThreeParameterTrueForTranslationOnly(t *testing.T) {
	tr := NewGeocentricTranslation("1031", 1, 2, 3)
	if !tr.IsThreeParameter() {
		t.Errorf("geocentric translation should report IsThreeParameter")
	}
	full := NewPositionVectorTransformation("1033", 1, 2, 3, 4, 5, 6, 7)
	if full.IsThreeParameter() {
		t.Errorf("7-parameter Helmert should not report IsThreeParameter")
	}
}

func TestParameterDescriptorEqualByEPSGCode(t *testing.T) {
	a := &ParameterDescriptor{Name: "False easting", EPSGCode: "8806"}
	b := &ParameterDescriptor{Name: "Easting at false origin", EPSGCode: "8806"}
	if !a.Equal(b) {
		t.Errorf("descriptors sharing an EPSG code should compare equal")
	}
}

func TestParameterDescriptorEqualByEquivalentName(t *testing.T) {
	a := &ParameterDescriptor{Name: "False easting"}
	b := &ParameterDescriptor{Name: "Easting at false origin"}
	if !a.Equal(b) {
		t.Errorf("equivalent parameter names should compare equal")
	}
	c := &ParameterDescriptor{Name: "Scale factor at natural origin"}
	if a.Equal(c) {
		t.Errorf("unrelated parameter names should not compare equal")
	}
}

func TestNewConcatenatedOperationValidatesAdjacency(t *testing.T) {
	step1 := &CoordinateOperation{SourceCRS: fakeCRS{"A"}, TargetCRS: fakeCRS{"B"}}
	step2 := &CoordinateOperation{SourceCRS: fakeCRS{"C"}, TargetCRS: fakeCRS{"D"}}
	if _, err := NewConcatenatedOperation("mismatched", []*CoordinateOperation{step1, step2}); err == nil {
		t.Fatalf("expected adjacency error when step1 target != step2 source")
	}
	step2ok := &CoordinateOperation{SourceCRS: fakeCRS{"B"}, TargetCRS: fakeCRS{"D"}}
	op, err := NewConcatenatedOperation("chained", []*CoordinateOperation{step1, step2ok})
	if err != nil {
		t.Fatalf("NewConcatenatedOperation: %v", err)
	}
	if op.SourceCRS.CRSName() != "A" || op.TargetCRS.CRSName() != "D" {
		t.Errorf("concatenated operation should span first source to last target, got %s -> %s", op.SourceCRS.CRSName(), op.TargetCRS.CRSName())
	}
}

type fakeCRS struct{ name string }

func (f fakeCRS) CRSName() string                        { return f.name }
func (f fakeCRS) CRSIdentifiers() []common.Identifier { return nil }
