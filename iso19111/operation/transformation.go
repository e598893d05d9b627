package operation

import (
	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/unit"
)

// Transformation is a CoordinateOperation between datums; it carries a
// positional accuracy list and, for Helmert-family methods, exposes a
// 7-tuple TOWGS84 accessor.
type Transformation struct {
	CoordinateOperation
	PositionalAccuracyMetres []float64
}

var helmertMethodCodes = map[string]bool{
	"1031": true, "9603": true, "1035": true, // geocentric translations
	"1033": true, "9606": true, "1037": true, // position vector
	"1032": true, "9607": true, "1038": true, // coordinate frame
	"1053": true, "1054": true, "1055": true, "1056": true, "1057": true, "1058": true, // time-dependent
}

var (
	paramXAxisTranslation = ParamRow{"X-axis translation", "8605", "", unit.Linear, "tx"}
	paramYAxisTranslation = ParamRow{"Y-axis translation", "8606", "", unit.Linear, "ty"}
	paramZAxisTranslation = ParamRow{"Z-axis translation", "8607", "", unit.Linear, "tz"}
	paramXAxisRotation    = ParamRow{"X-axis rotation", "8608", "", unit.Angular, "rx"}
	paramYAxisRotation    = ParamRow{"Y-axis rotation", "8609", "", unit.Angular, "ry"}
	paramZAxisRotation    = ParamRow{"Z-axis rotation", "8610", "", unit.Angular, "rz"}
	paramScaleDifference  = ParamRow{"Scale difference", "8611", "", unit.ScaleKind, "ds"}
)

func helmertMethod(name, code string) *Method {
	return NewMethod(name, code, []*ParameterDescriptor{
		paramXAxisTranslation.Descriptor(), paramYAxisTranslation.Descriptor(), paramZAxisTranslation.Descriptor(),
		paramXAxisRotation.Descriptor(), paramYAxisRotation.Descriptor(), paramZAxisRotation.Descriptor(),
		paramScaleDifference.Descriptor(),
	})
}

func helmertParams(tx, ty, tz, rx, ry, rz, s float64) []ParameterValueEntry {
	return []ParameterValueEntry{
		measureParam(paramXAxisTranslation, tx, unit.Metre),
		measureParam(paramYAxisTranslation, ty, unit.Metre),
		measureParam(paramZAxisTranslation, tz, unit.Metre),
		measureParam(paramXAxisRotation, rx, unit.ArcSecond),
		measureParam(paramYAxisRotation, ry, unit.ArcSecond),
		measureParam(paramZAxisRotation, rz, unit.ArcSecond),
		measureParam(paramScaleDifference, s, unit.PartsPerMillion),
	}
}

// NewGeocentricTranslation builds a Geocentric translations
// transformation (EPSG:1031/9603/1035 depending on geog2D/geog3D/geocentric
// domain; the caller picks the code).
func NewGeocentricTranslation(code string, tx, ty, tz float64) *Transformation {
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: helmertMethod("Geocentric translations", code),
		Params: helmertParams(tx, ty, tz, 0, 0, 0, 0),
	}}
}

// NewPositionVectorTransformation builds a Position Vector transformation
// (EPSG:9606 family).
func NewPositionVectorTransformation(code string, tx, ty, tz, rx, ry, rz, s float64) *Transformation {
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: helmertMethod("Position Vector transformation (geog2D domain)", code),
		Params: helmertParams(tx, ty, tz, rx, ry, rz, s),
	}}
}

// NewCoordinateFrameTransformation builds a Coordinate Frame rotation
// transformation (EPSG:9607 family).
func NewCoordinateFrameTransformation(code string, tx, ty, tz, rx, ry, rz, s float64) *Transformation {
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: helmertMethod("Coordinate Frame rotation (geog2D domain)", code),
		Params: helmertParams(tx, ty, tz, rx, ry, rz, s),
	}}
}

// NewMolodensky builds an Abridged Molodensky transformation
// (EPSG:9604).
func NewMolodensky(dx, dy, dz, da, df float64) *Transformation {
	rows := []ParamRow{
		{"X-axis translation", "8605", "", unit.Linear, "dx"},
		{"Y-axis translation", "8606", "", unit.Linear, "dy"},
		{"Z-axis translation", "8607", "", unit.Linear, "dz"},
		{"Semi-major axis length difference", "8654", "", unit.Linear, "da"},
		{"Flattening difference", "8655", "", unit.ScaleKind, "df"},
	}
	descriptors := make([]*ParameterDescriptor, len(rows))
	for i, r := range rows {
		descriptors[i] = r.Descriptor()
	}
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: NewMethod("Abridged Molodensky", "9604", descriptors),
		Params: []ParameterValueEntry{
			measureParam(rows[0], dx, unit.Metre),
			measureParam(rows[1], dy, unit.Metre),
			measureParam(rows[2], dz, unit.Metre),
			measureParam(rows[3], da, unit.Metre),
			{Descriptor: rows[4].Descriptor(), Value: MeasureValue(df, unit.Unity)},
		},
	}}
}

// NewNTv2 builds an NTv2 transformation (EPSG:9615) referencing a grid
// filename; NTv1 (EPSG:9614) shares the same shape under a different
// method name/code.
func NewNTv2(code, methodName, gridFile string) *Transformation {
	desc := &ParameterDescriptor{Name: "Latitude and longitude difference file", EPSGCode: "8656"}
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: NewMethod(methodName, code, []*ParameterDescriptor{desc}),
		Params: []ParameterValueEntry{{Descriptor: desc, Value: FilenameValue(gridFile)}},
	}}
}

// NewNADCON builds a NADCON transformation (EPSG:9613).
func NewNADCON(latDiffFile, lonDiffFile string) *Transformation {
	latDesc := &ParameterDescriptor{Name: "Latitude difference file", EPSGCode: "8657"}
	lonDesc := &ParameterDescriptor{Name: "Longitude difference file", EPSGCode: "8658"}
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: NewMethod("NADCON", "9613", []*ParameterDescriptor{latDesc, lonDesc}),
		Params: []ParameterValueEntry{
			{Descriptor: latDesc, Value: FilenameValue(latDiffFile)},
			{Descriptor: lonDesc, Value: FilenameValue(lonDiffFile)},
		},
	}}
}

// NewVERTCON builds a VERTCON transformation (EPSG:9658).
func NewVERTCON(gridFile string) *Transformation {
	desc := &ParameterDescriptor{Name: "Vertical offset file", EPSGCode: "8732"}
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: NewMethod("VERTCON", "9658", []*ParameterDescriptor{desc}),
		Params: []ParameterValueEntry{{Descriptor: desc, Value: FilenameValue(gridFile)}},
	}}
}

// NewGravityRelatedHeightToGeographic3D builds the grid-based transformation
// used to lift a vertical CRS carrying a WKT1-GDAL
// EXTENSION["PROJ4_GRIDS",...] geoid grid into a BoundCRS, distinct from
// NewVERTCON's own named method.
func NewGravityRelatedHeightToGeographic3D(gridFile string) *Transformation {
	desc := &ParameterDescriptor{Name: "Geoid (height correction) model file"}
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: NewMethod("GravityRelatedHeight to Geographic3D", "", []*ParameterDescriptor{desc}),
		Params: []ParameterValueEntry{{Descriptor: desc, Value: FilenameValue(gridFile)}},
	}}
}

// NewChangeOfVerticalUnit builds a Change of Vertical Unit transformation
// (EPSG:1069).
func NewChangeOfVerticalUnit(factor float64) *Transformation {
	desc := &ParameterDescriptor{Name: "Unit conversion scalar", EPSGCode: "1051"}
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: NewMethod("Change of Vertical Unit", "1069", []*ParameterDescriptor{desc}),
		Params: []ParameterValueEntry{{Descriptor: desc, Value: MeasureValue(factor, unit.Unity)}},
	}}
}

// NewGeographic2DOffsets builds a Geographic2D offsets transformation.
func NewGeographic2DOffsets(dLat, dLon float64) *Transformation {
	latDesc := &ParameterDescriptor{Name: "Latitude offset", EPSGCode: "8601"}
	lonDesc := &ParameterDescriptor{Name: "Longitude offset", EPSGCode: "8602"}
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: NewMethod("Geographic2D offsets", "9619", []*ParameterDescriptor{latDesc, lonDesc}),
		Params: []ParameterValueEntry{
			measureParam(ParamRow{EPSGName: "Latitude offset", EPSGCode: "8601"}, dLat, unit.Degree),
			measureParam(ParamRow{EPSGName: "Longitude offset", EPSGCode: "8602"}, dLon, unit.Degree),
		},
	}}
}

// NewGeographic3DOffsets builds a Geographic3D offsets transformation.
func NewGeographic3DOffsets(dLat, dLon, dh float64) *Transformation {
	latDesc := &ParameterDescriptor{Name: "Latitude offset", EPSGCode: "8601"}
	lonDesc := &ParameterDescriptor{Name: "Longitude offset", EPSGCode: "8602"}
	hDesc := &ParameterDescriptor{Name: "Vertical Offset", EPSGCode: "8603"}
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: NewMethod("Geographic3D offsets", "9660", []*ParameterDescriptor{latDesc, lonDesc, hDesc}),
		Params: []ParameterValueEntry{
			measureParam(ParamRow{EPSGName: "Latitude offset", EPSGCode: "8601"}, dLat, unit.Degree),
			measureParam(ParamRow{EPSGName: "Longitude offset", EPSGCode: "8602"}, dLon, unit.Degree),
			measureParam(ParamRow{EPSGName: "Vertical Offset", EPSGCode: "8603"}, dh, unit.Metre),
		},
	}}
}

// NewAffineParametricTransformation builds the generic Affine parametric
// transformation (EPSG:9624).
func NewAffineParametricTransformation(a0, a1, a2, b0, b1, b2 float64) *Transformation {
	names := []string{"A0", "A1", "A2", "B0", "B1", "B2"}
	values := []float64{a0, a1, a2, b0, b1, b2}
	descriptors := make([]*ParameterDescriptor, len(names))
	params := make([]ParameterValueEntry, len(names))
	for i, n := range names {
		descriptors[i] = &ParameterDescriptor{Name: n}
		params[i] = ParameterValueEntry{Descriptor: descriptors[i], Value: MeasureValue(values[i], unit.Unity)}
	}
	return &Transformation{CoordinateOperation: CoordinateOperation{
		Method: NewMethod("Affine parametric transformation", "9624", descriptors),
		Params: params,
	}}
}

// GetTOWGS84Parameters returns the 7-tuple (tx,ty,tz,rx,ry,rz,s) when the
// method is one of the Helmert variants, converting to metres/arc-
// seconds/ppm per §3.
func (t *Transformation) GetTOWGS84Parameters() ([7]float64, error) {
	var out [7]float64
	if t.Method == nil {
		return out, crserr.New(crserr.UnsupportedOperation, "transformation has no method")
	}
	code, _ := t.Method.IdentifierInCodeSpace("EPSG")
	if !helmertMethodCodes[code.Code] {
		return out, crserr.Newf(crserr.UnsupportedOperation, "method %q is not a Helmert-family method", t.Method.Name)
	}
	fields := []struct {
		code string
		unit unit.Unit
	}{
		{"8605", unit.Metre}, {"8606", unit.Metre}, {"8607", unit.Metre},
		{"8608", unit.ArcSecond}, {"8609", unit.ArcSecond}, {"8610", unit.ArcSecond},
		{"8611", unit.PartsPerMillion},
	}
	for i, f := range fields {
		v, ok := FindByEPSGCode(t.Params, f.code)
		if !ok {
			// rotations/scale are optional (3-parameter form).
			continue
		}
		si, err := unit.Convert(v.MeasureVal.Value, v.MeasureVal.Unit, f.unit)
		if err != nil {
			return out, err
		}
		out[i] = si
	}
	return out, nil
}

// IsThreeParameter reports whether only the translation components are
// set (a WKT1 TOWGS84[tx,ty,tz] 3-tuple).
func (t *Transformation) IsThreeParameter() bool {
	for _, code := range []string{"8608", "8609", "8610", "8611"} {
		if v, ok := FindByEPSGCode(t.Params, code); ok && v.MeasureVal.Value != 0 {
			return false
		}
	}
	return true
}
