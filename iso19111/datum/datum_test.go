package datum

import "testing"

func TestNewFlattenedInverseFlatteningAndSemiMinor(t *testing.T) {
	e, err := NewFlattened("WGS 84", 6378137.0, 298.257223563)
	if err != nil {
		t.Fatalf("NewFlattened: %v", err)
	}
	if e.IsSphere() {
		t.Errorf("flattened ellipsoid should not report as sphere")
	}
	if diff := e.SemiMinorAxis() - 6356752.314245; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("SemiMinorAxis() = %v, want ~6356752.314245", e.SemiMinorAxis())
	}
}

func TestNewFlattenedZeroIsSphere(t *testing.T) {
	e, err := NewFlattened("sphere", 6371000, 0)
	if err != nil {
		t.Fatalf("NewFlattened: %v", err)
	}
	if !e.IsSphere() {
		t.Errorf("zero inverse flattening should report as sphere")
	}
	if e.InverseFlattening() != 0 {
		t.Errorf("sphere InverseFlattening() = %v, want 0", e.InverseFlattening())
	}
}

func TestNewTwoAxisRejectsMinorGreaterThanMajor(t *testing.T) {
	if _, err := NewTwoAxis("bad", 100, 200); err == nil {
		t.Fatalf("expected error when semi-minor exceeds semi-major")
	}
}

func TestComputeSemiMinorAxisFromInverseFlatteningRoundTrips(t *testing.T) {
	got := ComputeSemiMinorAxisFromInverseFlattening(WGS84.SemiMajorAxis, WGS84.InverseFlattening())
	want := WGS84.SemiMinorAxis()
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ComputeSemiMinorAxisFromInverseFlattening = %v, want %v", got, want)
	}
}

func TestEllipsoidIsEquivalentTo(t *testing.T) {
	a, _ := NewTwoAxis("a", WGS84.SemiMajorAxis, WGS84.SemiMinorAxis())
	if !WGS84.IsEquivalentTo(a) {
		t.Errorf("two-axis reconstruction of WGS84 should be equivalent")
	}
	if WGS84.IsEquivalentTo(Clarke1866) {
		t.Errorf("WGS84 and Clarke 1866 differ well beyond tolerance and should not be equivalent")
	}
}

func TestPrimeMeridianIsGreenwich(t *testing.T) {
	if !Greenwich.IsGreenwich() {
		t.Errorf("Greenwich singleton should report IsGreenwich")
	}
	if Paris.IsGreenwich() {
		t.Errorf("Paris singleton should not report IsGreenwich")
	}
}

func TestGeodeticReferenceFrameIsEquivalentTo(t *testing.T) {
	if !WGS84Frame.IsEquivalentTo(WGS84Frame) {
		t.Errorf("frame should be equivalent to itself")
	}
	other := NewGeodeticReferenceFrame("dup", WGS84, Greenwich, "")
	if !WGS84Frame.IsEquivalentTo(other) {
		t.Errorf("frames sharing ellipsoid/meridian/anchor should be equivalent regardless of name")
	}
}

func TestDynamicFrameReportsDynamic(t *testing.T) {
	f := NewDynamicGeodeticReferenceFrame("ITRF2014", GRS80, Greenwich, "", 2010.0)
	if !f.IsDynamic() {
		t.Errorf("expected dynamic frame to report IsDynamic")
	}
	if WGS84Frame.IsDynamic() {
		t.Errorf("static WGS84Frame should not report IsDynamic")
	}
}

func TestNewEnsembleRejectsEmpty(t *testing.T) {
	if _, err := NewEnsemble("empty", nil, 2.0); err == nil {
		t.Fatalf("expected error constructing an ensemble with no members")
	}
	ens, err := NewEnsemble("WGS 84 ensemble", []*GeodeticReferenceFrame{WGS84Frame}, 2.0)
	if err != nil {
		t.Fatalf("NewEnsemble: %v", err)
	}
	if len(ens.Members) != 1 {
		t.Errorf("expected one member, got %d", len(ens.Members))
	}
}
