package crs

import (
	"testing"

	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/datum"
	"github.com/flywave/go-crs/iso19111/operation"
	"github.com/flywave/go-crs/unit"
)

func TestNewDerivedCRSRejectsUnsupportedBaseKind(t *testing.T) {
	vd := datum.NewVerticalReferenceFrame("geoid", "", "")
	vCS, _ := cs.CreateGravityRelatedHeight(unit.Metre)
	v, err := NewVerticalCRS("height", vd, nil, vCS)
	if err != nil {
		t.Fatalf("NewVerticalCRS: %v", err)
	}
	p := mustUTM31N(t)
	cc, err := NewCompoundCRS("compound", []CRS{p, v})
	if err != nil {
		t.Fatalf("NewCompoundCRS: %v", err)
	}
	conv, _ := operation.NewUTM(31, true)
	if _, err := NewDerivedCRS("bad", cc, conv, nil); err == nil {
		t.Fatalf("expected error deriving from a CompoundCRS base")
	}
}

func TestDerivedCRSKindTracksBaseKind(t *testing.T) {
	conv, err := operation.NewLongitudeRotation(5)
	if err != nil {
		t.Fatalf("NewLongitudeRotation: %v", err)
	}
	geogCS, _ := cs.CreateLatitudeLongitude(unit.Degree)
	d, err := NewDerivedCRS("rotated", EPSG4326, conv, geogCS)
	if err != nil {
		t.Fatalf("NewDerivedCRS: %v", err)
	}
	if d.Kind() != KindDerivedGeographic {
		t.Errorf("Kind() = %v, want KindDerivedGeographic", d.Kind())
	}
}

func TestDerivedCRSShallowCloneRebindsTarget(t *testing.T) {
	conv, _ := operation.NewLongitudeRotation(5)
	geogCS, _ := cs.CreateLatitudeLongitude(unit.Degree)
	d, err := NewDerivedCRS("rotated", EPSG4326, conv, geogCS)
	if err != nil {
		t.Fatalf("NewDerivedCRS: %v", err)
	}
	clone := d.ShallowClone().(*DerivedCRS)
	if clone.Conversion.TargetCRS != clone {
		t.Errorf("cloned DerivedCRS's conversion should target the clone")
	}
	if d.Conversion.TargetCRS != d {
		t.Errorf("original DerivedCRS's conversion should still target the original")
	}
}

func TestEngineeringAndParametricAndTemporalCRSKinds(t *testing.T) {
	ed := datum.NewEngineeringDatum("site local", "")
	eCS, err := cs.CreateWithAxes(cs.Cartesian, []cs.Axis{
		{Name: "X", Direction: cs.DirEast, Unit: unit.Metre},
		{Name: "Y", Direction: cs.DirNorth, Unit: unit.Metre},
	})
	if err != nil {
		t.Fatalf("CreateWithAxes: %v", err)
	}
	e := NewEngineeringCRS("site", ed, eCS)
	if e.Kind() != KindEngineering {
		t.Errorf("EngineeringCRS.Kind() = %v, want KindEngineering", e.Kind())
	}

	pd := datum.NewParametricDatum("pressure", "")
	pCS, err := cs.CreateWithAxes(cs.Parametric, []cs.Axis{{Name: "pressure", Direction: cs.DirUp, Unit: unit.Metre}})
	if err != nil {
		t.Fatalf("CreateWithAxes: %v", err)
	}
	p := NewParametricCRS("pressure levels", pd, pCS)
	if p.Kind() != KindParametric {
		t.Errorf("ParametricCRS.Kind() = %v, want KindParametric", p.Kind())
	}

	td := datum.NewTemporalDatum("calendar", "gregorian", "0000-01-01")
	tCS, err := cs.CreateWithAxes(cs.Temporal, []cs.Axis{{Name: "time", Direction: cs.DirFuture, Unit: unit.Unity}})
	if err != nil {
		t.Fatalf("CreateWithAxes: %v", err)
	}
	tc := NewTemporalCRS("time", td, tCS)
	if tc.Kind() != KindTemporal {
		t.Errorf("TemporalCRS.Kind() = %v, want KindTemporal", tc.Kind())
	}
}
