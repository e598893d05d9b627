package operation

import "github.com/flywave/go-crs/iso19111/common"

// CoordinateOperation is the base shared by Conversion, Transformation,
// and ConcatenatedOperation: a named object with a source and target CRS
// reference (possibly nil for operations not yet bound to a CRS pair) and
// a method.
type CoordinateOperation struct {
	common.IdentifiedObject
	SourceCRS CRSRef
	TargetCRS CRSRef
	Method    *Method
	Params    []ParameterValueEntry
}

// CRSName implements CRSRef so a CoordinateOperation can, in principle,
// itself be threaded through code expecting a CRSRef (used by
// ConcatenatedOperation's adjacency checks).
func (o *CoordinateOperation) CRSName() string { return o.Name }

// CRSIdentifiers implements CRSRef.
func (o *CoordinateOperation) CRSIdentifiers() []common.Identifier { return o.Identifiers }

// ParamValue returns the value bound to the parameter identified by
// EPSG code (preferred) or name.
func (o *CoordinateOperation) ParamValue(epsgCode, name string) (ParameterValue, bool) {
	if epsgCode != "" {
		if v, ok := FindByEPSGCode(o.Params, epsgCode); ok {
			return v, true
		}
	}
	return FindByName(o.Params, name)
}
