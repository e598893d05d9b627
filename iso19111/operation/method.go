// Package operation implements the C6 coordinatate operation model
// (operation method + parameter-value lists; Conversion, Transformation,
// ConcatenatedOperation) and the C12 method/parameter registry that maps
// EPSG method/parameter identities to WKT1 names, WKT1-ESRI names, and
// PROJ keywords.
//
// Grounded on cockroachdb-cockroach's geoprojbase package
// (_examples/other_examples/cockroachdb-cockroach__geoprojbase.go), whose
// ProjInfo/Spheroid registry shape — a static, name/SRID-keyed table of
// plain structs consulted by lookup functions with a sentinel not-found
// error — is the direct model for the registry in registry.go.
package operation

import "github.com/flywave/go-crs/iso19111/common"

// CRSRef is the narrow capability a CoordinateOperation needs of its
// source/target CRS. It exists so this package never imports
// iso19111/crs directly: a Conversion's TargetCRS is, for a
// ProjectedCRS, the ProjectedCRS itself, and representing that as a
// concrete *crs.CRS would create an import cycle and a strong reference
// cycle both. Per spec §9 this is exactly the "weak reference" the
// source's ProjectedCRS<->Conversion self-reference is broken with.
type CRSRef interface {
	CRSName() string
	CRSIdentifiers() []common.Identifier
}

// Method is an OperationMethod: name, identifiers, ordered parameter
// descriptors.
type Method struct {
	common.IdentifiedObject
	Parameters []*ParameterDescriptor
}

// NewMethod builds a Method.
func NewMethod(name string, epsgCode string, params []*ParameterDescriptor) *Method {
	m := &Method{IdentifiedObject: common.IdentifiedObject{Name: name}, Parameters: params}
	if epsgCode != "" {
		m.Identifiers = []common.Identifier{{CodeSpace: "EPSG", Code: epsgCode}}
	}
	return m
}

// ParameterDescriptor is an OperationParameter: a name plus optional EPSG
// code.
type ParameterDescriptor struct {
	Name     string
	EPSGCode string
}

// Equal implements parameter-descriptor equivalence: by EPSG code when
// both sides carry one, otherwise by name up to the equivalence table in
// registry.go.
func (d *ParameterDescriptor) Equal(o *ParameterDescriptor) bool {
	if d.EPSGCode != "" && o.EPSGCode != "" {
		return d.EPSGCode == o.EPSGCode
	}
	if d.Name == o.Name {
		return true
	}
	return equivalentParamNames(d.Name, o.Name)
}
