// Package wkt implements the C7 tokenizer/tree, C8 emitter, and C9 parser.
package wkt

import (
	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/iso19111/common"
	"github.com/flywave/go-crs/iso19111/crs"
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/datum"
	"github.com/flywave/go-crs/iso19111/operation"
	"github.com/flywave/go-crs/unit"
)

// Options controls emission beyond the dialect itself.
type Options struct {
	Simplified  bool
	Indent      int // 0 disables pretty-printing (single line)
	NoIDs       bool
	Authority   crs.AuthorityFactory
}

// Emit serializes c as WKT text in the requested dialect (§4.7).
func Emit(c crs.CRS, dialect Dialect, opts Options) (string, error) {
	if c == nil {
		return "", crserr.New(crserr.FormattingError, "cannot emit a nil CRS")
	}
	f := NewFormatter(dialect)
	f.Simplified = opts.Simplified
	f.EmitID = !opts.NoIDs
	f.Authority = opts.Authority
	if opts.Indent > 0 {
		f.IndentWidth = opts.Indent
	}
	if err := emitCRS(f, c); err != nil {
		return "", err
	}
	return f.String(), nil
}

func emitCRS(f *Formatter, c crs.CRS) error {
	switch v := c.(type) {
	case *crs.GeodeticCRS:
		return emitGeodetic(f, v)
	case *crs.ProjectedCRS:
		return emitProjected(f, v)
	case *crs.VerticalCRS:
		return emitVertical(f, v)
	case *crs.CompoundCRS:
		return emitCompound(f, v)
	case *crs.BoundCRS:
		return emitBound(f, v)
	case *crs.DerivedCRS:
		return emitDerived(f, v)
	case *crs.EngineeringCRS:
		return emitEngineering(f, v)
	case *crs.TemporalCRS:
		return emitTemporal(f, v)
	case *crs.ParametricCRS:
		return emitParametric(f, v)
	default:
		return crserr.Newf(crserr.FormattingError, "unsupported CRS type in dialect %v", f.Dialect)
	}
}

// geodeticKeyword picks GEOGCRS for 2D geographic in WKT2:2018, GEODCRS for
// everything else geodetic in WKT2 (2015, or 2018 3D/geocentric), and the
// WKT1 GEOGCS/GEOCCS pair otherwise (§4.7 dialect keyword table).
func geodeticKeyword(f *Formatter, geographic bool) string {
	switch {
	case f.Dialect == WKT2_2018 && geographic:
		return "GEOGCRS"
	case f.Dialect.IsWKT2():
		return "GEODCRS"
	case !geographic:
		return "GEOCCS"
	default:
		return "GEOGCS"
	}
}

func emitGeodetic(f *Formatter, g *crs.GeodeticCRS) error {
	geographic := g.IsGeographic()
	f.StartNode(geodeticKeyword(f, geographic))
	f.QuotedString(g.Name)

	f.Comma()
	if err := emitDatumOrEnsemble(f, g.Datum, g.Ensemble); err != nil {
		return err
	}

	if g.CS != nil {
		if f.Dialect.IsWKT2() {
			if !f.Simplified {
				f.Comma()
				if err := emitCS(f, g.CS, true); err != nil {
					return err
				}
			}
		} else {
			// WKT1: UNIT[...] precedes the flat AXIS[...] list.
			f.Comma()
			if g.CS.Axes[0].Unit.Kind == unit.Angular {
				emitAngleUnit(f, g.CS.Axes[0].Unit)
			} else {
				emitLengthUnit(f, g.CS.Axes[0].Unit)
			}
			restore := f.PushAxisUnit(g.CS.Axes[0].Unit)
			if err := emitAxesWKT1(f, g.CS); err != nil {
				restore()
				return err
			}
			restore()
		}
	}

	f.WriteID(idOf(g.Identifiers))
	f.EndNode()
	return nil
}

func emitDatumOrEnsemble(f *Formatter, d *datum.GeodeticReferenceFrame, ens *datum.Ensemble) error {
	if d != nil {
		return emitGeodeticDatum(f, d)
	}
	return emitEnsemble(f, ens)
}

func emitGeodeticDatum(f *Formatter, d *datum.GeodeticReferenceFrame) error {
	if d.IsDynamic() && f.Dialect.IsWKT2() {
		f.StartNode("DYNAMIC")
		f.StartNode("FRAMEEPOCH")
		f.Number(*d.FrameReferenceEpoch)
		f.EndNode()
		f.EndNode()
		f.Comma()
	}
	f.StartNode("DATUM")
	f.QuotedString(d.Name)
	f.Comma()
	if err := emitEllipsoid(f, d.Ellipsoid); err != nil {
		return err
	}
	if f.Dialect.IsWKT1() {
		if params, ok := f.TOWGS84(); ok {
			f.Comma()
			f.StartNode("TOWGS84")
			for i, v := range params {
				if i > 0 {
					f.Comma()
				}
				f.Number(v)
			}
			f.EndNode()
		}
	}
	f.WriteChildID(idOf(d.Identifiers))
	f.EndNode()

	if d.PrimeMeridian != nil {
		f.Comma()
		emitPrimeMeridian(f, d.PrimeMeridian)
	}
	return nil
}

func emitEllipsoid(f *Formatter, e *datum.Ellipsoid) error {
	kw := "ELLIPSOID"
	if f.Dialect.IsWKT1() {
		kw = "SPHEROID"
	}
	f.StartNode(kw)
	f.QuotedString(e.Name)
	f.Comma()
	f.Number(e.SemiMajorAxis)
	f.Comma()
	f.Number(e.InverseFlattening())
	if f.Dialect.IsWKT2() && !f.Simplified {
		f.Comma()
		emitLengthUnit(f, unit.Metre)
	}
	f.WriteChildID(idOf(e.Identifiers))
	f.EndNode()
	return nil
}

func emitPrimeMeridian(f *Formatter, pm *datum.PrimeMeridian) {
	kw := "PRIMEM"
	f.StartNode(kw)
	f.QuotedString(pm.Name)
	f.Comma()
	if f.Dialect.IsWKT1() {
		f.Number(pm.Longitude.Degrees())
	} else {
		f.Number(pm.Longitude.Value)
		if !f.Simplified {
			f.Comma()
			emitAngleUnit(f, pm.Longitude.Unit)
		}
	}
	f.WriteChildID(idOf(pm.Identifiers))
	f.EndNode()
}

func emitEnsemble(f *Formatter, ens *datum.Ensemble) error {
	if ens == nil {
		return crserr.New(crserr.FormattingError, "geodetic CRS has neither datum nor ensemble")
	}
	f.StartNode("ENSEMBLE")
	f.QuotedString(ens.Name)
	for _, m := range ens.Members {
		f.Comma()
		f.StartNode("MEMBER")
		f.QuotedString(m.Name)
		f.WriteChildID(idOf(m.Identifiers))
		f.EndNode()
	}
	f.Comma()
	if err := emitEllipsoid(f, ens.Members[0].Ellipsoid); err != nil {
		return err
	}
	f.Comma()
	f.StartNode("ENSEMBLEACCURACY")
	f.Number(ens.PositionalAccuracyMetres)
	f.EndNode()
	f.WriteChildID(idOf(ens.Identifiers))
	f.EndNode()
	return nil
}

func emitCS(f *Formatter, c *cs.CS, wkt2 bool) error {
	if !wkt2 {
		return emitAxesWKT1(f, c)
	}
	f.StartNode("CS")
	f.Bareword(csTypeName(c.Kind))
	f.Comma()
	f.Number(float64(len(c.Axes)))
	f.EndNode()
	for i, a := range c.Axes {
		f.Comma()
		emitAxis(f, a, i+1)
	}
	return nil
}

func csTypeName(k cs.Kind) string {
	switch k {
	case cs.Ellipsoidal:
		return "ellipsoidal"
	case cs.Cartesian:
		return "Cartesian"
	case cs.Spherical:
		return "spherical"
	case cs.Vertical:
		return "vertical"
	case cs.Temporal:
		return "temporal"
	case cs.Parametric:
		return "parametric"
	default:
		return "unspecified"
	}
}

func emitAxis(f *Formatter, a cs.Axis, order int) {
	f.StartNode("AXIS")
	name := a.Name
	if a.Abbreviation != "" {
		name = a.Name + " (" + a.Abbreviation + ")"
	}
	f.QuotedString(name)
	f.Comma()
	f.Bareword(a.Direction.String())
	if !f.Simplified {
		if f.EmitAxisOrder {
			f.Comma()
			f.StartNode("ORDER")
			f.Number(float64(order))
			f.EndNode()
		}
		f.Comma()
		if a.Unit.Kind == unit.Angular {
			emitAngleUnit(f, a.Unit)
		} else {
			emitLengthUnit(f, a.Unit)
		}
	}
	f.EndNode()
}

// emitAxesWKT1 renders WKT1's flat AXIS[name,DIR] list (no CS[] wrapper,
// unit already emitted at the GEOGCS/PROJCS level).
func emitAxesWKT1(f *Formatter, c *cs.CS) error {
	for _, a := range c.Axes {
		f.Comma()
		f.StartNode("AXIS")
		f.QuotedString(a.Name)
		f.Comma()
		f.Bareword(a.Direction.WKT1Token())
		f.EndNode()
	}
	return nil
}

func emitAngleUnit(f *Formatter, u unit.Unit) {
	kw := "ANGLEUNIT"
	if f.Dialect.IsWKT1() {
		kw = "UNIT"
	}
	f.StartNode(kw)
	f.QuotedString(u.Name)
	f.Comma()
	f.Number(u.ConvFactor)
	if u.AuthCode != "" {
		f.WriteChildID(u.AuthCodeSpace, u.AuthCode)
	}
	f.EndNode()
}

func emitLengthUnit(f *Formatter, u unit.Unit) {
	kw := "LENGTHUNIT"
	if f.Dialect.IsWKT1() {
		kw = "UNIT"
	}
	f.StartNode(kw)
	f.QuotedString(u.Name)
	f.Comma()
	f.Number(u.ConvFactor)
	if u.AuthCode != "" {
		f.WriteChildID(u.AuthCodeSpace, u.AuthCode)
	}
	f.EndNode()
}

func emitScaleUnit(f *Formatter, u unit.Unit) {
	kw := "SCALEUNIT"
	if f.Dialect.IsWKT1() {
		kw = "UNIT"
	}
	f.StartNode(kw)
	f.QuotedString(u.Name)
	f.Comma()
	f.Number(u.ConvFactor)
	if u.AuthCode != "" {
		f.WriteChildID(u.AuthCodeSpace, u.AuthCode)
	}
	f.EndNode()
}

func emitProjected(f *Formatter, p *crs.ProjectedCRS) error {
	kw := "PROJCRS"
	if f.Dialect.IsWKT1() {
		kw = "PROJCS"
	}
	f.StartNode(kw)

	name := p.Name
	esriMorph := false
	if f.Dialect == WKT1_ESRI {
		name = esriMorphNameWithAuthority(f, name, "crs")
		esriMorph = true
	}
	f.QuotedString(name)
	f.Comma()

	if f.Dialect.IsWKT1() {
		if err := emitGeodeticWKT1BaseInline(f, p.BaseCRS); err != nil {
			return err
		}
	} else {
		if err := emitGeodetic(f, p.BaseCRS); err != nil {
			return err
		}
	}
	f.Comma()
	if err := emitConversion(f, p.InternalConversion(), esriMorph); err != nil {
		return err
	}

	if p.CS != nil {
		f.Comma()
		if f.Dialect.IsWKT2() {
			if err := emitCS(f, p.CS, true); err != nil {
				return err
			}
		} else {
			restore := f.PushAxisUnit(p.CS.Axes[0].Unit)
			emitLengthUnit(f, p.CS.Axes[0].Unit)
			if err := emitAxesWKT1(f, p.CS); err != nil {
				restore()
				return err
			}
			restore()
		}
	}

	f.WriteID(idOf(p.Identifiers))
	f.EndNode()
	return nil
}

// emitGeodeticWKT1BaseInline emits the WKT1 GEOGCS[...] node nested
// inside a PROJCS[...], which is otherwise identical to a top-level
// GEOGCS emission.
func emitGeodeticWKT1BaseInline(f *Formatter, g *crs.GeodeticCRS) error {
	return emitGeodetic(f, g)
}

func emitConversion(f *Formatter, conv *operation.Conversion, esriMorph bool) error {
	if f.Dialect.IsWKT2() {
		f.StartNode("CONVERSION")
		f.QuotedString(conv.Name)
		f.Comma()
	}
	methodName := conv.Method.Name
	if esriMorph {
		if row, ok := methodRowForConversion(conv); ok && row.ESRIName != "" {
			methodName = row.ESRIName
		}
	} else if f.Dialect.IsWKT1() {
		if row, ok := methodRowForConversion(conv); ok && row.WKT1Name != "" {
			methodName = row.WKT1Name
		}
	}
	methodKw := "METHOD"
	if f.Dialect.IsWKT1() {
		methodKw = "PROJECTION"
	}
	f.StartNode(methodKw)
	f.QuotedString(methodName)
	if f.Dialect.IsWKT2() {
		f.WriteID(idOf(conv.Method.Identifiers))
	}
	f.EndNode()

	for _, pv := range conv.Params {
		f.Comma()
		emitParameterValue(f, pv, esriMorph)
	}

	if f.Dialect.IsWKT2() {
		f.WriteID(idOf(conv.Identifiers))
		f.EndNode()
	}
	return nil
}

func methodRowForConversion(conv *operation.Conversion) (operation.MethodRow, bool) {
	if id, ok := conv.Method.IdentifierInCodeSpace("EPSG"); ok {
		return operation.ByEPSGCode(id.Code)
	}
	return operation.ByEPSGName(conv.Method.Name)
}

func emitParameterValue(f *Formatter, pv operation.ParameterValueEntry, esriMorph bool) {
	f.StartNode("PARAMETER")
	name := pv.Descriptor.Name
	if esriMorph {
		wkt1Name := name
		if pv.Descriptor.EPSGCode != "" {
			if pr, ok := operation.ParamRowByEPSGCode(pv.Descriptor.EPSGCode); ok {
				wkt1Name = pr.WKT1Name
			}
		}
		name = esriMorphParamNameWithAuthority(f, pv.Descriptor.Name, wkt1Name)
	}
	f.QuotedString(name)
	f.Comma()
	switch pv.Value.Kind {
	case operation.ParamMeasure:
		f.Number(pv.Value.MeasureVal.Value)
		if f.Dialect.IsWKT2() && !f.Simplified && !f.AxisUnitMatches(pv.Value.MeasureVal.Unit) {
			f.Comma()
			if pv.Value.MeasureVal.Unit.Kind == unit.Angular {
				emitAngleUnit(f, pv.Value.MeasureVal.Unit)
			} else if pv.Value.MeasureVal.Unit.Kind == unit.ScaleKind {
				emitScaleUnit(f, pv.Value.MeasureVal.Unit)
			} else {
				emitLengthUnit(f, pv.Value.MeasureVal.Unit)
			}
		}
	case operation.ParamFilename:
		f.QuotedString(pv.Value.StringVal)
	case operation.ParamString:
		f.QuotedString(pv.Value.StringVal)
	case operation.ParamInteger:
		f.Number(float64(pv.Value.IntVal))
	case operation.ParamBoolean:
		if pv.Value.BoolVal {
			f.Number(1)
		} else {
			f.Number(0)
		}
	}
	if pv.Descriptor.EPSGCode != "" {
		f.WriteID("EPSG", pv.Descriptor.EPSGCode)
	}
	f.EndNode()
}

func emitVertical(f *Formatter, v *crs.VerticalCRS) error {
	kw := "VERTCRS"
	if f.Dialect.IsWKT1() {
		kw = "VERT_CS"
	}
	f.StartNode(kw)
	f.QuotedString(v.Name)
	f.Comma()
	if err := emitVerticalDatumOrEnsemble(f, v.Datum, v.Ensemble); err != nil {
		return err
	}
	if v.CS != nil {
		f.Comma()
		if f.Dialect.IsWKT2() {
			if err := emitCS(f, v.CS, true); err != nil {
				return err
			}
		} else {
			emitLengthUnit(f, v.CS.Axes[0].Unit)
			f.Comma()
			f.StartNode("AXIS")
			f.QuotedString(v.CS.Axes[0].Name)
			f.Comma()
			f.Bareword(v.CS.Axes[0].Direction.WKT1Token())
			f.EndNode()
		}
	}
	f.WriteID(idOf(v.Identifiers))
	f.EndNode()
	return nil
}

func emitVerticalDatumOrEnsemble(f *Formatter, d *datum.VerticalReferenceFrame, ens *datum.Ensemble) error {
	kw := "VDATUM"
	if f.Dialect.IsWKT1() {
		kw = "VERT_DATUM"
	}
	if d == nil && ens == nil {
		return crserr.New(crserr.FormattingError, "vertical CRS has neither datum nor ensemble")
	}
	if d != nil {
		f.StartNode(kw)
		f.QuotedString(d.Name)
		if f.Dialect.IsWKT1() {
			f.Comma()
			f.Number(2005) // WKT1 VERT_DATUM classification code, vertical
		}
		f.WriteChildID(idOf(d.Identifiers))
		f.EndNode()
		return nil
	}
	f.StartNode("ENSEMBLE")
	f.QuotedString(ens.Name)
	f.WriteChildID(idOf(ens.Identifiers))
	f.EndNode()
	return nil
}

func emitCompound(f *Formatter, c *crs.CompoundCRS) error {
	kw := "COMPOUNDCRS"
	if f.Dialect.IsWKT1() {
		kw = "COMPD_CS"
	}
	f.StartNode(kw)
	f.QuotedString(c.Name)
	for _, comp := range c.Components {
		f.Comma()
		if err := emitCRS(f, comp); err != nil {
			return err
		}
	}
	f.WriteID(idOf(c.Identifiers))
	f.EndNode()
	return nil
}

func emitBound(f *Formatter, b *crs.BoundCRS) error {
	if f.Dialect.IsWKT1() {
		// WKT1-GDAL has no BOUNDCRS node: TOWGS84[...] is injected inline
		// into the base CRS's DATUM node instead (§4.7).
		params, err := b.Transformation.GetTOWGS84Parameters()
		if err == nil {
			restore := f.SetTOWGS84AndRestore(params[:])
			defer restore()
		}
		return emitCRS(f, b.BaseCRS)
	}
	f.StartNode("BOUNDCRS")
	f.StartNode("SOURCECRS")
	if err := emitCRS(f, b.BaseCRS); err != nil {
		return err
	}
	f.EndNode()
	f.Comma()
	f.StartNode("TARGETCRS")
	if err := emitCRS(f, b.HubCRS); err != nil {
		return err
	}
	f.EndNode()
	f.Comma()
	if err := emitAbridgedTransformation(f, b.Transformation); err != nil {
		return err
	}
	f.EndNode()
	return nil
}

func emitAbridgedTransformation(f *Formatter, t *operation.Transformation) error {
	f.StartNode("ABRIDGEDTRANSFORMATION")
	f.QuotedString(t.Name)
	f.Comma()
	f.StartNode("METHOD")
	f.QuotedString(t.Method.Name)
	f.WriteID(idOf(t.Method.Identifiers))
	f.EndNode()
	for _, pv := range t.Params {
		f.Comma()
		emitParameterValue(f, pv, false)
	}
	f.WriteID(idOf(t.Identifiers))
	f.EndNode()
	return nil
}

func emitDerived(f *Formatter, d *crs.DerivedCRS) error {
	if f.Dialect.IsWKT1() {
		return crserr.New(crserr.FormattingError, "WKT1 cannot represent a generic DerivedCRS")
	}
	f.StartNode("DERIVEDCRS")
	f.QuotedString(d.Name)
	f.Comma()
	f.StartNode("BASECRS")
	if err := emitCRS(f, d.BaseCRS); err != nil {
		return err
	}
	f.EndNode()
	f.Comma()
	if err := emitConversion(f, d.Conversion, false); err != nil {
		return err
	}
	if d.CS != nil {
		f.Comma()
		if err := emitCS(f, d.CS, true); err != nil {
			return err
		}
	}
	f.WriteID(idOf(d.Identifiers))
	f.EndNode()
	return nil
}

func emitEngineering(f *Formatter, e *crs.EngineeringCRS) error {
	if f.Dialect.IsWKT1() {
		return crserr.New(crserr.FormattingError, "WKT1-GDAL does not support EngineeringCRS export")
	}
	f.StartNode("ENGCRS")
	f.QuotedString(e.Name)
	f.Comma()
	f.StartNode("EDATUM")
	f.QuotedString(e.Datum.Name)
	f.EndNode()
	if e.CS != nil {
		f.Comma()
		if err := emitCS(f, e.CS, true); err != nil {
			return err
		}
	}
	f.WriteID(idOf(e.Identifiers))
	f.EndNode()
	return nil
}

func emitTemporal(f *Formatter, t *crs.TemporalCRS) error {
	if f.Dialect.IsWKT1() {
		return crserr.New(crserr.FormattingError, "WKT1-GDAL does not support TemporalCRS export")
	}
	f.StartNode("TIMECRS")
	f.QuotedString(t.Name)
	f.Comma()
	f.StartNode("TDATUM")
	f.QuotedString(t.Datum.Name)
	f.EndNode()
	if t.CS != nil {
		f.Comma()
		if err := emitCS(f, t.CS, true); err != nil {
			return err
		}
	}
	f.WriteID(idOf(t.Identifiers))
	f.EndNode()
	return nil
}

func emitParametric(f *Formatter, p *crs.ParametricCRS) error {
	if f.Dialect.IsWKT1() {
		return crserr.New(crserr.FormattingError, "WKT1-GDAL does not support ParametricCRS export")
	}
	f.StartNode("PARAMETRICCRS")
	f.QuotedString(p.Name)
	f.Comma()
	f.StartNode("PDATUM")
	f.QuotedString(p.Datum.Name)
	f.EndNode()
	if p.CS != nil {
		f.Comma()
		if err := emitCS(f, p.CS, true); err != nil {
			return err
		}
	}
	f.WriteID(idOf(p.Identifiers))
	f.EndNode()
	return nil
}

// idOf returns the (codespace, code) of the first identifier that has a
// codespace, if any, for use with Formatter.WriteID.
func idOf(ids []common.Identifier) (string, string) {
	for _, id := range ids {
		if id.CodeSpace != "" {
			return id.CodeSpace, id.Code
		}
	}
	return "", ""
}
