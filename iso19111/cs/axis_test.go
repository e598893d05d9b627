package cs

import (
	"testing"

	"github.com/flywave/go-crs/unit"
)

func TestNewValidatesArity(t *testing.T) {
	if _, err := New(Spherical, []Axis{{Direction: DirUp}}); err == nil {
		t.Fatalf("expected arity error for spherical CS with one axis")
	}
	if _, err := New(Vertical, []Axis{{Direction: DirUp}}); err != nil {
		t.Fatalf("New(Vertical, 1 axis): %v", err)
	}
}

func TestCreateEastNorthIsEastNorthOrder(t *testing.T) {
	c, err := CreateEastNorth(unit.Metre)
	if err != nil {
		t.Fatalf("CreateEastNorth: %v", err)
	}
	if !c.IsEastNorthOrder() {
		t.Errorf("expected (easting, northing) to satisfy IsEastNorthOrder")
	}
}

func TestCreateLatitudeLongitudeIsNotEastNorthOrder(t *testing.T) {
	c, err := CreateLatitudeLongitude(unit.Degree)
	if err != nil {
		t.Fatalf("CreateLatitudeLongitude: %v", err)
	}
	if c.IsEastNorthOrder() {
		t.Errorf("(latitude north, longitude east) axis order should not read as east/north order")
	}
}

func TestSameDirectionPolar(t *testing.T) {
	c := &CS{Kind: Cartesian, Axes: []Axis{{Direction: DirSouth}, {Direction: DirSouth}}}
	dir, ok := c.SameDirectionPolar()
	if !ok || dir != DirSouth {
		t.Errorf("SameDirectionPolar() = (%v, %v), want (DirSouth, true)", dir, ok)
	}
	c2, _ := CreateEastNorth(unit.Metre)
	if _, ok := c2.SameDirectionPolar(); ok {
		t.Errorf("east/north CS should not report a polar same-direction pair")
	}
}

func TestParseDirectionRoundTripsWKT2Token(t *testing.T) {
	for _, d := range []AxisDirection{DirNorth, DirSouth, DirEast, DirWest, DirUp, DirDown} {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = (%v, %v), want (%v, true)", d.String(), got, ok, d)
		}
	}
}
