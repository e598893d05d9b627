package crs

import (
	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/iso19111/common"
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/datum"
	"github.com/flywave/go-crs/unit"
)

// GeodeticCRS covers both the geocentric variant (Cartesian CS) and the
// geographic variant (ellipsoidal CS) of spec §3: "GeodeticCRS (either
// Cartesian-geocentric or ellipsoidal CS; owns datum OR datumEnsemble,
// exactly one)". Kind() reports KindGeographic when the CS is
// ellipsoidal, KindGeodetic otherwise.
type GeodeticCRS struct {
	Base
	Datum    *datum.GeodeticReferenceFrame
	Ensemble *datum.Ensemble
}

// Kind implements CRS.
func (g *GeodeticCRS) Kind() Kind {
	if g.CS != nil && g.CS.Kind == cs.Ellipsoidal {
		return KindGeographic
	}
	return KindGeodetic
}

// IsGeographic reports whether this is the geographic (ellipsoidal-CS)
// variant.
func (g *GeodeticCRS) IsGeographic() bool { return g.Kind() == KindGeographic }

// NewGeodeticCRS validates the "exactly one of (datum, ensemble)"
// invariant and builds a GeodeticCRS.
func NewGeodeticCRS(name string, d *datum.GeodeticReferenceFrame, ensemble *datum.Ensemble, coordSys *cs.CS) (*GeodeticCRS, error) {
	if (d == nil) == (ensemble == nil) {
		return nil, crserr.New(crserr.InvariantViolation, "GeodeticCRS requires exactly one of datum or datum ensemble")
	}
	g := &GeodeticCRS{Datum: d, Ensemble: ensemble}
	g.Name = name
	g.CS = coordSys
	return g, nil
}

// DatumOrEnsemble returns whichever of (Datum, Ensemble) is set.
func (g *GeodeticCRS) DatumOrEnsemble() (*datum.GeodeticReferenceFrame, *datum.Ensemble) {
	return g.Datum, g.Ensemble
}

// EffectiveDatum returns the datum to use for equivalence/parameter
// purposes: the direct datum, or the first ensemble member.
func (g *GeodeticCRS) EffectiveDatum() *datum.GeodeticReferenceFrame {
	if g.Datum != nil {
		return g.Datum
	}
	if g.Ensemble != nil && len(g.Ensemble.Members) > 0 {
		return g.Ensemble.Members[0]
	}
	return nil
}

// ShallowClone implements CRS.
func (g *GeodeticCRS) ShallowClone() CRS {
	clone := *g
	clone.canonicalBoundCRS = nil
	return &clone
}

// Predefined singletons.
var (
	// EPSG4326 is WGS 84, the geographic CRS most operations normalize
	// toward per §4.4/§4.8.
	EPSG4326 = mustGeographic4326()
	// EPSG4978 is WGS 84 geocentric.
	EPSG4978 = mustGeocentric4978()
	// EPSG4267/EPSG4269 are NAD27/NAD83 geographic, used by the PROJ flat
	// convention's `+datum=NAD27`/`+datum=NAD83` mapping (§4.8).
	EPSG4267 = mustGeographicFrame("NAD27", datum.NAD27, "4267")
	EPSG4269 = mustGeographicFrame("NAD83", datum.NAD83, "4269")
)

func mustGeographic4326() *GeodeticCRS {
	c, err := cs.CreateLatitudeLongitude(unit.Degree)
	if err != nil {
		panic(err)
	}
	g, err := NewGeodeticCRS("WGS 84", datum.WGS84Frame, nil, c)
	if err != nil {
		panic(err)
	}
	g.Identifiers = []common.Identifier{{CodeSpace: "EPSG", Code: "4326"}}
	return g
}

func mustGeocentric4978() *GeodeticCRS {
	c, err := cs.CreateGeocentric(unit.Metre)
	if err != nil {
		panic(err)
	}
	g, err := NewGeodeticCRS("WGS 84", datum.WGS84Frame, nil, c)
	if err != nil {
		panic(err)
	}
	g.Identifiers = []common.Identifier{{CodeSpace: "EPSG", Code: "4978"}}
	return g
}

func mustGeographicFrame(name string, frame *datum.GeodeticReferenceFrame, epsgCode string) *GeodeticCRS {
	c, err := cs.CreateLatitudeLongitude(unit.Degree)
	if err != nil {
		panic(err)
	}
	g, err := NewGeodeticCRS(name, frame, nil, c)
	if err != nil {
		panic(err)
	}
	g.Identifiers = []common.Identifier{{CodeSpace: "EPSG", Code: epsgCode}}
	return g
}
