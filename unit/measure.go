package unit

import "github.com/flywave/go-crs/crserr"

// Measure is a (value, unit) pair. Length/Angle/Scale restrict the unit
// kind at construction time.
type Measure struct {
	Value float64
	Unit  Unit
}

// SI returns the value converted to the SI base unit.
func (m Measure) SI() float64 { return m.Unit.ToSI(m.Value) }

// Length is a Measure whose unit kind must be Linear.
type Length struct{ Measure }

// NewLength validates the unit kind and builds a Length.
func NewLength(v float64, u Unit) (Length, error) {
	if u.Kind != Linear {
		return Length{}, crserr.Newf(crserr.InvalidUnitKind, "unit %q is not a linear unit", u.Name)
	}
	return Length{Measure{v, u}}, nil
}

// Angle is a Measure whose unit kind must be Angular. It carries a
// conversion helper that preserves the unit identity across
// normalization (e.g. longitude wrapping).
type Angle struct{ Measure }

// NewAngle validates the unit kind and builds an Angle.
func NewAngle(v float64, u Unit) (Angle, error) {
	if u.Kind != Angular {
		return Angle{}, crserr.Newf(crserr.InvalidUnitKind, "unit %q is not an angular unit", u.Name)
	}
	return Angle{Measure{v, u}}, nil
}

// InUnit returns the angle re-expressed in unit `to`, keeping the same
// physical angle.
func (a Angle) InUnit(to Unit) (Angle, error) {
	v, err := Convert(a.Value, a.Unit, to)
	if err != nil {
		return Angle{}, err
	}
	return Angle{Measure{v, to}}, nil
}

// Degrees returns the angle value converted to degrees, without
// preserving the original unit — used for WKT1 prime-meridian export
// which is always expressed in degrees regardless of source unit (§4.7).
func (a Angle) Degrees() float64 {
	v, _ := Convert(a.Value, a.Unit, Degree)
	return v
}

// NormalizeLongitudeDeg wraps a longitude value (in degrees) to (-180,180].
func NormalizeLongitudeDeg(lonDeg float64) float64 {
	for lonDeg > 180 {
		lonDeg -= 360
	}
	for lonDeg <= -180 {
		lonDeg += 360
	}
	return lonDeg
}

// Scale is a Measure whose unit kind must be ScaleKind.
type Scale struct{ Measure }

// NewScale validates the unit kind and builds a Scale.
func NewScale(v float64, u Unit) (Scale, error) {
	if u.Kind != ScaleKind {
		return Scale{}, crserr.Newf(crserr.InvalidUnitKind, "unit %q is not a scale unit", u.Name)
	}
	return Scale{Measure{v, u}}, nil
}
