package operation

import (
	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/unit"
)

// ParamValueKind is the closed set of value shapes a parameter value can
// take.
type ParamValueKind int

const (
	ParamMeasure ParamValueKind = iota
	ParamInteger
	ParamString
	ParamFilename
	ParamBoolean
)

// ParameterValue is a value bound to a parameter descriptor: one of
// Measure, integer, string, filename, boolean.
type ParameterValue struct {
	Kind        ParamValueKind
	MeasureVal  unit.Measure
	IntVal      int64
	StringVal   string
	BoolVal     bool
}

// MeasureValue builds a Measure-kind ParameterValue.
func MeasureValue(v float64, u unit.Unit) ParameterValue {
	return ParameterValue{Kind: ParamMeasure, MeasureVal: unit.Measure{Value: v, Unit: u}}
}

// IntValue builds an integer-kind ParameterValue.
func IntValue(v int64) ParameterValue { return ParameterValue{Kind: ParamInteger, IntVal: v} }

// StringValue builds a string-kind ParameterValue.
func StringValue(v string) ParameterValue { return ParameterValue{Kind: ParamString, StringVal: v} }

// FilenameValue builds a filename-kind ParameterValue.
func FilenameValue(v string) ParameterValue {
	return ParameterValue{Kind: ParamFilename, StringVal: v}
}

// BoolValue builds a boolean-kind ParameterValue.
func BoolValue(v bool) ParameterValue { return ParameterValue{Kind: ParamBoolean, BoolVal: v} }

// AsSI returns a Measure-kind value converted to its SI base unit; it
// fails for non-Measure values.
func (v ParameterValue) AsSI() (float64, error) {
	if v.Kind != ParamMeasure {
		return 0, crserr.New(crserr.InvalidValueType, "parameter value is not a measure")
	}
	return v.MeasureVal.SI(), nil
}

// ParameterValueEntry is an OperationParameterValue: a descriptor bound to
// a value.
type ParameterValueEntry struct {
	Descriptor *ParameterDescriptor
	Value      ParameterValue
}

// FindByEPSGCode returns the value bound to the parameter with the given
// EPSG code, if present.
func FindByEPSGCode(entries []ParameterValueEntry, epsgCode string) (ParameterValue, bool) {
	for _, e := range entries {
		if e.Descriptor.EPSGCode == epsgCode {
			return e.Value, true
		}
	}
	return ParameterValue{}, false
}

// FindByName returns the value bound to the parameter with the given
// name, tolerating the equivalence table.
func FindByName(entries []ParameterValueEntry, name string) (ParameterValue, bool) {
	for _, e := range entries {
		if e.Descriptor.Name == name || equivalentParamNames(e.Descriptor.Name, name) {
			return e.Value, true
		}
	}
	return ParameterValue{}, false
}
