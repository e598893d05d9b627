package operation

import (
	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/unit"
)

// Conversion is a CoordinateOperation with no datum change (typically a
// map projection). When attached to a DerivedCRS/ProjectedCRS, its
// TargetCRS is that CRS (see the weak-reference discussion on CRSRef).
type Conversion struct {
	CoordinateOperation
}

// CreateFromMethodNameAndParams is the general Conversion factory of
// §4.5: resolve the method by name against the registry (falling back to
// an opaque method when unrecognized, so parsing stays round-trippable
// per §4.10), and attach the given parameter entries unchanged.
func CreateFromMethodNameAndParams(methodName string, params []ParameterValueEntry) (*Conversion, error) {
	row, ok := ResolveAny(methodName, "")
	var method *Method
	if ok {
		descriptors := make([]*ParameterDescriptor, len(row.Params))
		for i, p := range row.Params {
			descriptors[i] = p.Descriptor()
		}
		name := row.EPSGName
		if name == "" {
			name = methodName
		}
		method = NewMethod(name, row.EPSGCode, descriptors)
	} else {
		// Unknown method: the given name and parameter entries are kept
		// as given, units included, so round-trip stays possible; no
		// UNKNOWN unit is assigned to the parameters.
		descriptors := make([]*ParameterDescriptor, len(params))
		for i, p := range params {
			descriptors[i] = p.Descriptor
		}
		method = NewMethod(methodName, "", descriptors)
	}
	return &Conversion{CoordinateOperation{Method: method, Params: params}}, nil
}

func measureParam(row ParamRow, v float64, u unit.Unit) ParameterValueEntry {
	return ParameterValueEntry{Descriptor: row.Descriptor(), Value: MeasureValue(v, u)}
}

// IsLongitudeRotation is true when the method is "Longitude rotation"
// (EPSG:9601).
func (c *Conversion) IsLongitudeRotation() bool {
	if c.Method == nil {
		return false
	}
	if id, ok := c.Method.IdentifierInCodeSpace("EPSG"); ok {
		return id.Code == "9601"
	}
	return c.Method.Name == "Longitude rotation"
}

// --- Convenience constructors (§4.5) ---

// NewUTM builds a Transverse Mercator conversion for the given UTM zone
// (1..60) and hemisphere, rejecting a zone outside that range and choosing false
// northing/scale/latitude-of-origin/longitude-of-origin per the UTM
// convention.
func NewUTM(zone int, north bool) (*Conversion, error) {
	if zone < 1 || zone > 60 {
		return nil, crserr.Newf(crserr.InvariantViolation, "UTM zone %d out of range [1,60]", zone)
	}
	falseNorthing := 0.0
	if !north {
		falseNorthing = 10000000.0
	}
	lonOrigin := float64(zone)*6.0 - 183.0
	row, _ := ByEPSGCode("9807")
	params := []ParameterValueEntry{
		measureParam(paramLatOrigin, 0, unit.Degree),
		measureParam(paramLonOrigin, lonOrigin, unit.Degree),
		{Descriptor: paramScaleFactor.Descriptor(), Value: MeasureValue(0.9996, unit.Unity)},
		measureParam(paramFalseEasting, 500000, unit.Metre),
		measureParam(paramFalseNorthing, falseNorthing, unit.Metre),
	}
	descriptors := make([]*ParameterDescriptor, len(row.Params))
	for i, p := range row.Params {
		descriptors[i] = p.Descriptor()
	}
	method := NewMethod(row.EPSGName, row.EPSGCode, descriptors)
	hemi := "N"
	if !north {
		hemi = "S"
	}
	c := &Conversion{CoordinateOperation{Method: method, Params: params}}
	c.Name = "UTM zone " + itoa(zone) + hemi
	return c, nil
}

// NewMercator1SP builds a Mercator (variant A) conversion.
func NewMercator1SP(latOrigin, lonOrigin, scaleFactor, falseEasting, falseNorthing float64) (*Conversion, error) {
	return fromRow("9804", []ParameterValueEntry{
		measureParam(paramLatOrigin, latOrigin, unit.Degree),
		measureParam(paramLonOrigin, lonOrigin, unit.Degree),
		measureParam(paramScaleFactor, scaleFactor, unit.Unity),
		measureParam(paramFalseEasting, falseEasting, unit.Metre),
		measureParam(paramFalseNorthing, falseNorthing, unit.Metre),
	})
}

// NewMercator2SP builds a Mercator (variant B) conversion.
func NewMercator2SP(stdParallel, lonOrigin, falseEasting, falseNorthing float64) (*Conversion, error) {
	return fromRow("9805", []ParameterValueEntry{
		measureParam(paramStdParallel, stdParallel, unit.Degree),
		measureParam(paramLonOrigin, lonOrigin, unit.Degree),
		measureParam(paramFalseEasting, falseEasting, unit.Metre),
		measureParam(paramFalseNorthing, falseNorthing, unit.Metre),
	})
}

// NewLambertConformal1SP builds a Lambert Conic Conformal (1SP)
// conversion.
func NewLambertConformal1SP(latOrigin, lonOrigin, scaleFactor, falseEasting, falseNorthing float64) (*Conversion, error) {
	return fromRow("9801", []ParameterValueEntry{
		measureParam(paramLatOrigin, latOrigin, unit.Degree),
		measureParam(paramLonOrigin, lonOrigin, unit.Degree),
		measureParam(paramScaleFactor, scaleFactor, unit.Unity),
		measureParam(paramFalseEasting, falseEasting, unit.Metre),
		measureParam(paramFalseNorthing, falseNorthing, unit.Metre),
	})
}

// NewLambertConformal2SP builds a Lambert Conic Conformal (2SP)
// conversion.
func NewLambertConformal2SP(latOrigin, lonOrigin, stdParallel1, stdParallel2, falseEasting, falseNorthing float64) (*Conversion, error) {
	return fromRow("9802", []ParameterValueEntry{
		measureParam(paramLatFalseOrigin, latOrigin, unit.Degree),
		measureParam(paramLonFalseOrigin, lonOrigin, unit.Degree),
		measureParam(paramStdParallel1, stdParallel1, unit.Degree),
		measureParam(paramStdParallel2, stdParallel2, unit.Degree),
		measureParam(paramEastFalseOrig, falseEasting, unit.Metre),
		measureParam(paramNorthFalseOrig, falseNorthing, unit.Metre),
	})
}

// NewLambertConformal2SPBelgium builds the Belgium variant, sharing the
// generic 2SP parameter list verbatim per §9 Open Question (i).
func NewLambertConformal2SPBelgium(latOrigin, lonOrigin, stdParallel1, stdParallel2, falseEasting, falseNorthing float64) (*Conversion, error) {
	return fromRow("9803", []ParameterValueEntry{
		measureParam(paramLatFalseOrigin, latOrigin, unit.Degree),
		measureParam(paramLonFalseOrigin, lonOrigin, unit.Degree),
		measureParam(paramStdParallel1, stdParallel1, unit.Degree),
		measureParam(paramStdParallel2, stdParallel2, unit.Degree),
		measureParam(paramEastFalseOrig, falseEasting, unit.Metre),
		measureParam(paramNorthFalseOrig, falseNorthing, unit.Metre),
	})
}

// NewObliqueStereographic builds an Oblique Stereographic conversion.
func NewObliqueStereographic(latOrigin, lonOrigin, scaleFactor, falseEasting, falseNorthing float64) (*Conversion, error) {
	return fromRow("9809", []ParameterValueEntry{
		measureParam(paramLatOrigin, latOrigin, unit.Degree),
		measureParam(paramLonOrigin, lonOrigin, unit.Degree),
		measureParam(paramScaleFactor, scaleFactor, unit.Unity),
		measureParam(paramFalseEasting, falseEasting, unit.Metre),
		measureParam(paramFalseNorthing, falseNorthing, unit.Metre),
	})
}

// NewPolarStereographicA builds a Polar Stereographic (variant A)
// conversion.
func NewPolarStereographicA(latOrigin, lonOrigin, scaleFactor, falseEasting, falseNorthing float64) (*Conversion, error) {
	return fromRow("9810", []ParameterValueEntry{
		measureParam(paramLatOrigin, latOrigin, unit.Degree),
		measureParam(paramLonOrigin, lonOrigin, unit.Degree),
		measureParam(paramScaleFactor, scaleFactor, unit.Unity),
		measureParam(paramFalseEasting, falseEasting, unit.Metre),
		measureParam(paramFalseNorthing, falseNorthing, unit.Metre),
	})
}

// NewTransverseMercator builds a Transverse Mercator conversion.
func NewTransverseMercator(latOrigin, lonOrigin, scaleFactor, falseEasting, falseNorthing float64) (*Conversion, error) {
	return fromRow("9807", []ParameterValueEntry{
		measureParam(paramLatOrigin, latOrigin, unit.Degree),
		measureParam(paramLonOrigin, lonOrigin, unit.Degree),
		measureParam(paramScaleFactor, scaleFactor, unit.Unity),
		measureParam(paramFalseEasting, falseEasting, unit.Metre),
		measureParam(paramFalseNorthing, falseNorthing, unit.Metre),
	})
}

// NewObliqueMercatorVariantA builds a Hotine Oblique Mercator (variant A)
// conversion.
func NewObliqueMercatorVariantA(latCentre, lonCentre, azimuth, rectSkewAngle, scaleCentre, falseEasting, falseNorthing float64) (*Conversion, error) {
	return fromRow("9812", []ParameterValueEntry{
		measureParam(paramLatCentre, latCentre, unit.Degree),
		measureParam(paramLonCentre, lonCentre, unit.Degree),
		measureParam(paramAzimuth, azimuth, unit.Degree),
		measureParam(paramRectSkewAngle, rectSkewAngle, unit.Degree),
		measureParam(paramScaleCentre, scaleCentre, unit.Unity),
		measureParam(paramEastCentre, falseEasting, unit.Metre),
		measureParam(paramNorthCentre, falseNorthing, unit.Metre),
	})
}

// NewObliqueMercatorVariantB builds a Hotine Oblique Mercator (variant B)
// conversion.
func NewObliqueMercatorVariantB(latCentre, lonCentre, azimuth, rectSkewAngle, scaleCentre, eastCentre, northCentre float64) (*Conversion, error) {
	return fromRow("9815", []ParameterValueEntry{
		measureParam(paramLatCentre, latCentre, unit.Degree),
		measureParam(paramLonCentre, lonCentre, unit.Degree),
		measureParam(paramAzimuth, azimuth, unit.Degree),
		measureParam(paramRectSkewAngle, rectSkewAngle, unit.Degree),
		measureParam(paramScaleCentre, scaleCentre, unit.Unity),
		measureParam(paramEastCentre, eastCentre, unit.Metre),
		measureParam(paramNorthCentre, northCentre, unit.Metre),
	})
}

// NewKrovak builds a classical Krovak conversion.
func NewKrovak(latCentre, lonCentre, azimuth, latPseudoOrigin, scaleFactor, falseEasting, falseNorthing float64) (*Conversion, error) {
	return fromRow("9819", []ParameterValueEntry{
		measureParam(paramLatCentre, latCentre, unit.Degree),
		measureParam(paramLonCentre, lonCentre, unit.Degree),
		measureParam(paramAzimuth, azimuth, unit.Degree),
		measureParam(paramLatPseudoOrig, latPseudoOrigin, unit.Degree),
		measureParam(paramScalePseudo, scaleFactor, unit.Unity),
		measureParam(paramEastCentre, falseEasting, unit.Metre),
		measureParam(paramNorthCentre, falseNorthing, unit.Metre),
	})
}

// NewKrovakNorthOriented builds the north-oriented Krovak variant.
func NewKrovakNorthOriented(latCentre, lonCentre, azimuth, latPseudoOrigin, scaleFactor, falseEasting, falseNorthing float64) (*Conversion, error) {
	return fromRow("1041", []ParameterValueEntry{
		measureParam(paramLatCentre, latCentre, unit.Degree),
		measureParam(paramLonCentre, lonCentre, unit.Degree),
		measureParam(paramAzimuth, azimuth, unit.Degree),
		measureParam(paramLatPseudoOrig, latPseudoOrigin, unit.Degree),
		measureParam(paramScalePseudo, scaleFactor, unit.Unity),
		measureParam(paramEastCentre, falseEasting, unit.Metre),
		measureParam(paramNorthCentre, falseNorthing, unit.Metre),
	})
}

// NewLongitudeRotation builds the "Longitude rotation" conversion
// (EPSG:9601).
func NewLongitudeRotation(offsetDeg float64) (*Conversion, error) {
	row, _ := ByEPSGCode("9601")
	descriptors := []*ParameterDescriptor{row.Params[0].Descriptor()}
	method := NewMethod(row.EPSGName, row.EPSGCode, descriptors)
	params := []ParameterValueEntry{measureParam(row.Params[0], offsetDeg, unit.Degree)}
	return &Conversion{CoordinateOperation{Method: method, Params: params}}, nil
}

func fromRow(epsgCode string, params []ParameterValueEntry) (*Conversion, error) {
	row, ok := ByEPSGCode(epsgCode)
	if !ok {
		return nil, crserr.Newf(crserr.UnsupportedOperation, "method EPSG:%s not in registry", epsgCode)
	}
	descriptors := make([]*ParameterDescriptor, len(row.Params))
	for i, p := range row.Params {
		descriptors[i] = p.Descriptor()
	}
	method := NewMethod(row.EPSGName, row.EPSGCode, descriptors)
	return &Conversion{CoordinateOperation{Method: method, Params: params}}, nil
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
