package datum

import "github.com/flywave/go-crs/iso19111/common"

// GeodeticReferenceFrame owns an Ellipsoid, refers to a PrimeMeridian, and
// carries an optional anchor description.
type GeodeticReferenceFrame struct {
	common.IdentifiedObject
	Ellipsoid     *Ellipsoid
	PrimeMeridian *PrimeMeridian
	Anchor        string
	// FrameReferenceEpoch is set only for DynamicGeodeticReferenceFrame
	// (a nil pointer means "not dynamic").
	FrameReferenceEpoch *float64
}

// NewGeodeticReferenceFrame builds a static geodetic reference frame.
func NewGeodeticReferenceFrame(name string, ellipsoid *Ellipsoid, pm *PrimeMeridian, anchor string) *GeodeticReferenceFrame {
	return &GeodeticReferenceFrame{
		IdentifiedObject: common.IdentifiedObject{Name: name},
		Ellipsoid:        ellipsoid,
		PrimeMeridian:    pm,
		Anchor:           anchor,
	}
}

// NewDynamicGeodeticReferenceFrame builds a dynamic geodetic reference
// frame carrying a frame reference epoch.
func NewDynamicGeodeticReferenceFrame(name string, ellipsoid *Ellipsoid, pm *PrimeMeridian, anchor string, epoch float64) *GeodeticReferenceFrame {
	f := NewGeodeticReferenceFrame(name, ellipsoid, pm, anchor)
	f.FrameReferenceEpoch = &epoch
	return f
}

// IsDynamic reports whether this frame carries a frame reference epoch.
func (f *GeodeticReferenceFrame) IsDynamic() bool { return f.FrameReferenceEpoch != nil }

// IsEquivalentTo implements §4.3: (ellipsoid, prime meridian, anchor) all
// equivalent.
func (f *GeodeticReferenceFrame) IsEquivalentTo(o *GeodeticReferenceFrame) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.Ellipsoid.IsEquivalentTo(o.Ellipsoid) &&
		f.PrimeMeridian.IsEquivalentTo(o.PrimeMeridian) &&
		f.Anchor == o.Anchor
}

// VerticalReferenceFrame carries an optional anchor and realization
// method description.
type VerticalReferenceFrame struct {
	common.IdentifiedObject
	Anchor             string
	RealizationMethod  string
}

// NewVerticalReferenceFrame builds a vertical reference frame.
func NewVerticalReferenceFrame(name, anchor, realizationMethod string) *VerticalReferenceFrame {
	return &VerticalReferenceFrame{
		IdentifiedObject:  common.IdentifiedObject{Name: name},
		Anchor:            anchor,
		RealizationMethod: realizationMethod,
	}
}

// TemporalDatum carries a calendar identifier and temporal origin.
type TemporalDatum struct {
	common.IdentifiedObject
	CalendarIdentifier string
	TemporalOrigin     string
}

// NewTemporalDatum builds a temporal datum.
func NewTemporalDatum(name, calendar, origin string) *TemporalDatum {
	return &TemporalDatum{IdentifiedObject: common.IdentifiedObject{Name: name}, CalendarIdentifier: calendar, TemporalOrigin: origin}
}

// EngineeringDatum has no domain-specific attributes beyond identity.
type EngineeringDatum struct {
	common.IdentifiedObject
	Anchor string
}

// NewEngineeringDatum builds an engineering datum.
func NewEngineeringDatum(name, anchor string) *EngineeringDatum {
	return &EngineeringDatum{IdentifiedObject: common.IdentifiedObject{Name: name}, Anchor: anchor}
}

// ParametricDatum has no domain-specific attributes beyond identity.
type ParametricDatum struct {
	common.IdentifiedObject
	Anchor string
}

// NewParametricDatum builds a parametric datum.
func NewParametricDatum(name, anchor string) *ParametricDatum {
	return &ParametricDatum{IdentifiedObject: common.IdentifiedObject{Name: name}, Anchor: anchor}
}

// Ensemble is a non-empty list of same-kind datums plus positional
// accuracy, used in place of a single datum for ensemble-defined CRSes
// (e.g. the WGS 84 ensemble).
type Ensemble struct {
	common.IdentifiedObject
	Members            []*GeodeticReferenceFrame
	PositionalAccuracyMetres float64
}

// NewEnsemble validates non-emptiness and builds the ensemble.
func NewEnsemble(name string, members []*GeodeticReferenceFrame, accuracyMetres float64) (*Ensemble, error) {
	if len(members) == 0 {
		return nil, errEmptyEnsemble
	}
	return &Ensemble{IdentifiedObject: common.IdentifiedObject{Name: name}, Members: members, PositionalAccuracyMetres: accuracyMetres}, nil
}

// Predefined singletons.
var (
	WGS84Frame = mustFrame("World Geodetic System 1984", WGS84, Greenwich, "6326")
	NAD27      = mustFrame("North American Datum 1927", Clarke1866, Greenwich, "6267")
	NAD83      = mustFrame("North American Datum 1983", GRS80, Greenwich, "6269")
)

func mustFrame(name string, e *Ellipsoid, pm *PrimeMeridian, epsgCode string) *GeodeticReferenceFrame {
	f := NewGeodeticReferenceFrame(name, e, pm, "")
	f.Identifiers = []common.Identifier{{CodeSpace: "EPSG", Code: epsgCode}}
	return f
}
