// Package common implements the C2 identified-object base shared by every
// datum, coordinate system, CRS, and coordinate-operation type: name,
// identifiers, aliases, remarks, deprecation, and scope/domain-of-validity
// usage.
//
// Grounded on flywave-go-gpkg's SpatialReferenceSystem struct
// (spatial_reference_system.go), which pairs a Name with an authority
// (Organization + OrganizationCoordSysId) the same way an Identifier
// pairs a codespace with a code; the same shape recurs in
// dolthub-go-mysql-server's SpatialRef struct in
// _examples/other_examples/dolthub-go-mysql-server__spatial_reference.go.
package common

// Identifier is (codespace, code, optional authority citation, optional
// version).
type Identifier struct {
	CodeSpace string
	Code      string
	Citation  string
	Version   string
}

// String renders the identifier as "CODESPACE:CODE", matching the
// flywave-go-gpkg SpatialReferenceSystem.Code() convention.
func (id Identifier) String() string {
	if id.CodeSpace == "" || id.Code == "" {
		return ""
	}
	return id.CodeSpace + ":" + id.Code
}

// Equal compares codespace and code only, per spec §3 "Equality is by
// name" analogue for identifiers used in EPSG-code parameter matching.
func (id Identifier) Equal(o Identifier) bool {
	return id.CodeSpace == o.CodeSpace && id.Code == o.Code
}

// IdentifiedObject is the common base embedded by every named object in
// the model.
type IdentifiedObject struct {
	Name        string
	NameCodeSpace string // codespace of the primary name identifier, if any
	Identifiers []Identifier
	Aliases     []string
	Remarks     string
	Deprecated  bool
}

// PrimaryIdentifier returns the first identifier, or the zero Identifier
// when none is set.
func (o IdentifiedObject) PrimaryIdentifier() (Identifier, bool) {
	if len(o.Identifiers) == 0 {
		return Identifier{}, false
	}
	return o.Identifiers[0], true
}

// IdentifierInCodeSpace returns the first identifier whose codespace
// matches, used pervasively to look up an "EPSG" code regardless of what
// other authorities' codes an object also carries.
func (o IdentifiedObject) IdentifierInCodeSpace(codeSpace string) (Identifier, bool) {
	for _, id := range o.Identifiers {
		if id.CodeSpace == codeSpace {
			return id, true
		}
	}
	return Identifier{}, false
}

// GeographicBoundingBox is (south, west, north, east) in degrees.
type GeographicBoundingBox struct {
	South, West, North, East float64
}

// VerticalExtent is (min, max) in the given unit name.
type VerticalExtent struct {
	Min, Max float64
	UnitName string
}

// TemporalExtent is a free-form (start, stop) pair of date strings.
type TemporalExtent struct {
	Start, Stop string
}

// Extent bundles the optional description and bounding boxes/extents that
// make up a domain of validity.
type Extent struct {
	Description string
	Geographic  []GeographicBoundingBox
	Vertical    []VerticalExtent
	Temporal    []TemporalExtent
}

// ObjectUsage is IdentifiedObject plus an optional scope and domain of
// validity.
type ObjectUsage struct {
	IdentifiedObject
	Scope  string
	Domain *Extent
}
