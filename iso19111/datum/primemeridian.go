package datum

import (
	"math"

	"github.com/flywave/go-crs/iso19111/common"
	"github.com/flywave/go-crs/unit"
)

// PrimeMeridian is (name, longitude). Longitude is expressed in the
// meridian's own angular unit; conversion to degrees happens only at
// WKT1 export time (§3).
type PrimeMeridian struct {
	common.IdentifiedObject
	Longitude unit.Angle
}

// NewPrimeMeridian builds a PrimeMeridian from a longitude value and unit.
func NewPrimeMeridian(name string, lonValue float64, lonUnit unit.Unit) (*PrimeMeridian, error) {
	a, err := unit.NewAngle(lonValue, lonUnit)
	if err != nil {
		return nil, err
	}
	return &PrimeMeridian{IdentifiedObject: common.IdentifiedObject{Name: name}, Longitude: a}, nil
}

// IsEquivalentTo implements §4.3: longitude equality after SI conversion.
func (p *PrimeMeridian) IsEquivalentTo(o *PrimeMeridian) bool {
	if p == nil || o == nil {
		return p == o
	}
	return math.Abs(p.Longitude.SI()-o.Longitude.SI()) < 1e-10
}

// IsGreenwich reports whether the meridian is (equivalent to) Greenwich.
func (p *PrimeMeridian) IsGreenwich() bool {
	return p.IsEquivalentTo(Greenwich)
}

// Predefined singletons.
var (
	Greenwich = mustPrimeMeridian("Greenwich", 0, unit.Degree, "8901")
	// Paris = 2.5969213 grad, per spec §4.3.
	Paris = mustPrimeMeridian("Paris", 2.5969213, unit.Grad, "8903")
)

func mustPrimeMeridian(name string, lon float64, u unit.Unit, epsgCode string) *PrimeMeridian {
	pm, err := NewPrimeMeridian(name, lon, u)
	if err != nil {
		panic(err)
	}
	pm.Identifiers = []common.Identifier{{CodeSpace: "EPSG", Code: epsgCode}}
	return pm
}
