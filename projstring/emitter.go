package projstring

import (
	"strconv"
	"strings"

	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/iso19111/crs"
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/datum"
	"github.com/flywave/go-crs/iso19111/operation"
	"github.com/flywave/go-crs/unit"
)

// Options controls PROJ-string emission.
type Options struct {
	Convention Convention
}

// datumEPSGToProjDatum maps the three well-known geodetic reference frame
// EPSG codes to the PROJ `+datum=` shortcut, per §4.8 rule 1.
var datumEPSGToProjDatum = map[string]string{
	"6326": "WGS84",
	"6267": "NAD27",
	"6269": "NAD83",
}

type builder struct {
	parts []string
}

func (b *builder) add(s string) { b.parts = append(b.parts, s) }

func (b *builder) kv(key string, val string) { b.add("+" + key + "=" + val) }

func (b *builder) flag(key string) { b.add("+" + key) }

func (b *builder) num(key string, v float64) { b.kv(key, formatNum(v)) }

func formatNum(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func (b *builder) String() string { return strings.Join(b.parts, " ") }

// Emit renders c as a PROJ string under the requested convention (§4.8).
func Emit(c crs.CRS, opts Options) (string, error) {
	if c == nil {
		return "", crserr.New(crserr.FormattingError, "cannot emit a nil CRS")
	}
	b := &builder{}
	switch v := c.(type) {
	case *crs.GeodeticCRS:
		if v.IsGeographic() {
			return emitGeographic(b, v, opts)
		}
		return emitGeocentric(b, v, opts)
	case *crs.ProjectedCRS:
		return emitProjected(b, v, opts)
	case *crs.CompoundCRS:
		return emitCompound(b, v, opts)
	case *crs.BoundCRS:
		return emitBound(b, v, opts)
	default:
		return "", crserr.Newf(crserr.FormattingError, "PROJ string cannot represent CRS kind %d", c.Kind())
	}
}

func emitEllipsoidParams(b *builder, e *datum.Ellipsoid) {
	switch {
	case e == nil:
		return
	case e.IsSphere():
		b.num("R", e.SemiMajorAxis)
	default:
		b.num("a", e.SemiMajorAxis)
		b.num("rf", e.InverseFlattening())
	}
}

func emitDatumOrEllipsoid(b *builder, frame *datum.GeodeticReferenceFrame) {
	if frame == nil {
		return
	}
	if id, ok := frame.IdentifierInCodeSpace("EPSG"); ok {
		if pd, ok := datumEPSGToProjDatum[id.Code]; ok {
			b.kv("datum", pd)
			return
		}
	}
	emitEllipsoidParams(b, frame.Ellipsoid)
	if frame.PrimeMeridian != nil && !frame.PrimeMeridian.IsGreenwich() {
		emitPrimeMeridian(b, frame.PrimeMeridian)
	}
}

func emitPrimeMeridian(b *builder, pm *datum.PrimeMeridian) {
	if pm.IsEquivalentTo(datum.Paris) {
		b.kv("pm", "paris")
		return
	}
	b.kv("pm", formatNum(pm.Longitude.Degrees()))
}

func emitGeographic(b *builder, g *crs.GeodeticCRS, opts Options) (string, error) {
	frame := g.EffectiveDatum()
	if opts.Convention == Pipeline {
		b.add("+proj=pipeline")
		step := &builder{}
		step.add("+step")
		step.flag("proj=longlat")
		ellps := ""
		for name, e := range ellpsAliases {
			if frame != nil && e == frame.Ellipsoid {
				ellps = name
			}
		}
		if ellps != "" {
			step.kv("ellps", ellps)
			if frame.PrimeMeridian != nil && !frame.PrimeMeridian.IsGreenwich() {
				emitPrimeMeridian(step, frame.PrimeMeridian)
			}
		} else {
			emitDatumOrEllipsoid(step, frame)
		}
		b.parts = append(b.parts, step.parts...)
		if g.CS != nil && len(g.CS.Axes) > 0 && g.CS.Axes[0].Unit.Kind == unit.Angular && !g.CS.Axes[0].Unit.Equal(unit.Radian) {
			b.add("+step")
			b.kv("proj", "unitconvert")
			b.kv("xy_in", "rad")
			b.kv("xy_out", g.CS.Axes[0].Unit.ProjName)
		}
		if g.CS != nil && !g.CS.IsEastNorthOrder() {
			b.add("+step")
			b.kv("proj", "axisswap")
			b.kv("order", "2,1")
		}
		return b.String(), nil
	}
	b.kv("proj", "longlat")
	emitDatumOrEllipsoid(b, frame)
	return b.String(), nil
}

func emitGeocentric(b *builder, g *crs.GeodeticCRS, opts Options) (string, error) {
	frame := g.EffectiveDatum()
	if opts.Convention == Pipeline {
		b.add("+proj=pipeline")
		step := &builder{}
		step.add("+step")
		step.flag("proj=cart")
		emitEllipsoidParams(step, frame.Ellipsoid)
		b.parts = append(b.parts, step.parts...)
		if g.CS != nil && len(g.CS.Axes) > 0 && !g.CS.Axes[0].Unit.Equal(unit.Metre) {
			b.add("+step")
			b.kv("proj", "unitconvert")
			b.kv("xy_in", "m")
			b.kv("xy_out", g.CS.Axes[0].Unit.ProjName)
		}
		return b.String(), nil
	}
	b.kv("proj", "geocent")
	if g.CS != nil && len(g.CS.Axes) > 0 && !g.CS.Axes[0].Unit.Equal(unit.Metre) {
		return "", crserr.New(crserr.FormattingError, "flat PROJ convention requires a metre-unit geocentric CS")
	}
	emitEllipsoidParams(b, frame.Ellipsoid)
	return b.String(), nil
}

func emitProjected(b *builder, p *crs.ProjectedCRS, opts Options) (string, error) {
	conv := p.InternalConversion()
	row, hasRow := methodRowFor(conv)
	if !hasRow || row.ProjKeyword == "" {
		return "", crserr.Newf(crserr.FormattingError, "method %q has no PROJ keyword", conv.Method.Name)
	}
	if opts.Convention == Pipeline {
		b.add("+proj=pipeline")
		step := &builder{}
		step.add("+step")
		step.flag("proj=longlat")
		emitDatumOrEllipsoid(step, p.BaseCRS.EffectiveDatum())
		b.parts = append(b.parts, step.parts...)
		main := &builder{}
		main.add("+step")
		main.kv("proj", row.ProjKeyword)
		emitProjectionParams(main, row, conv)
		b.parts = append(b.parts, main.parts...)
		if p.CS != nil && len(p.CS.Axes) > 0 && !p.CS.Axes[0].Unit.Equal(unit.Metre) {
			b.add("+step")
			b.kv("proj", "unitconvert")
			b.kv("xy_in", "m")
			b.kv("xy_out", p.CS.Axes[0].Unit.ProjName)
		}
		if p.CS != nil && needsAxisSwap(p.CS) {
			b.add("+step")
			b.kv("proj", "axisswap")
			b.kv("order", "2,1")
		}
		return b.String(), nil
	}
	v := func(code string) float64 { pv, _ := conv.ParamValue(code, ""); return pv.MeasureVal.Value }
	if z := (v("8802") + 183) / 6; row.EPSGCode == "9807" && v("8801") == 0 && v("8805") == 0.9996 && v("8806") == 500000 && v("8807") == 0 && z == float64(int(z)) && z >= 1 && z <= 60 {
		b.kv("proj", "utm")
		b.kv("zone", strconv.Itoa(int(z)))
	} else {
		b.kv("proj", row.ProjKeyword)
		emitProjectionParams(b, row, conv)
	}
	emitDatumOrEllipsoid(b, p.BaseCRS.EffectiveDatum())
	if p.CS != nil && len(p.CS.Axes) > 0 {
		u := p.CS.Axes[0].Unit
		if !u.Equal(unit.Metre) {
			if u.ProjName != "" {
				b.kv("units", u.ProjName)
			} else {
				b.num("to_meter", u.ConvFactor)
			}
		}
	}
	return b.String(), nil
}

// needsAxisSwap reports whether a final axisswap step is emitted: a swap
// unless the CS is already (east, north), except when both axes point the
// same way (north/north or south/south, the polar UPS case), in which
// case no swap is emitted; the order of northing and easting is not
// examined.
func needsAxisSwap(c *cs.CS) bool {
	if c.IsEastNorthOrder() {
		return false
	}
	if dir, ok := c.SameDirectionPolar(); ok {
		_ = dir
		return false
	}
	return true
}

func emitProjectionParams(b *builder, row operation.MethodRow, conv *operation.Conversion) {
	for _, pv := range conv.Params {
		pr, ok := paramRowFor(row, pv.Descriptor)
		key := pv.Descriptor.Name
		if ok && pr.ProjKey != "" {
			key = pr.ProjKey
		}
		if pv.Value.Kind != operation.ParamMeasure {
			continue
		}
		target := unit.Metre
		if ok {
			switch pr.UnitKind {
			case unit.Angular:
				target = unit.Degree
			case unit.ScaleKind:
				target = unit.Unity
			}
		} else if pv.Value.MeasureVal.Unit.Kind == unit.Angular {
			target = unit.Degree
		} else if pv.Value.MeasureVal.Unit.Kind == unit.ScaleKind {
			target = unit.Unity
		}
		v, err := unit.Convert(pv.Value.MeasureVal.Value, pv.Value.MeasureVal.Unit, target)
		if err != nil {
			v = pv.Value.MeasureVal.Value
		}
		b.num(key, v)
	}
}

func methodRowFor(conv *operation.Conversion) (operation.MethodRow, bool) {
	if conv == nil || conv.Method == nil {
		return operation.MethodRow{}, false
	}
	if id, ok := conv.Method.IdentifierInCodeSpace("EPSG"); ok {
		if row, ok := operation.ByEPSGCode(id.Code); ok {
			return row, true
		}
	}
	return operation.ByEPSGName(conv.Method.Name)
}

func paramRowFor(row operation.MethodRow, desc *operation.ParameterDescriptor) (operation.ParamRow, bool) {
	for _, pr := range row.Params {
		if pr.EPSGCode != "" && pr.EPSGCode == desc.EPSGCode {
			return pr, true
		}
		if pr.EPSGName == desc.Name {
			return pr, true
		}
	}
	return operation.ParamRow{}, false
}

func emitCompound(b *builder, c *crs.CompoundCRS, opts Options) (string, error) {
	horiz := crs.ExtractGeographicCRS(c)
	var proj *crs.ProjectedCRS
	for _, comp := range c.Components {
		if p, ok := comp.(*crs.ProjectedCRS); ok {
			proj = p
		}
	}
	var out string
	var err error
	if proj != nil {
		out, err = Emit(proj, opts)
	} else if horiz != nil {
		out, err = Emit(horiz, opts)
	} else {
		return "", crserr.New(crserr.FormattingError, "CompoundCRS has no horizontal component representable in PROJ")
	}
	if err != nil {
		return "", err
	}
	vert := crs.ExtractVerticalCRS(c)
	if vert != nil && vert.CS != nil && len(vert.CS.Axes) > 0 {
		u := vert.CS.Axes[0].Unit
		if u.ProjName != "" {
			out += " +vunits=" + u.ProjName
		} else {
			out += " +vto_meter=" + formatNum(u.ConvFactor)
		}
	}
	return out, nil
}

func emitBound(b *builder, bc *crs.BoundCRS, opts Options) (string, error) {
	if opts.Convention == Pipeline {
		return "", crserr.New(crserr.FormattingError, "pipeline convention cannot represent a BoundCRS")
	}
	out, err := Emit(bc.BaseCRS, opts)
	if err != nil {
		return "", err
	}
	if params, err := bc.Transformation.GetTOWGS84Parameters(); err == nil {
		if bc.Transformation.IsThreeParameter() {
			out += " +towgs84=" + joinNums(params[:3])
		} else {
			out += " +towgs84=" + joinNums(params[:])
		}
		return out, nil
	}
	if v, ok := operation.FindByEPSGCode(bc.Transformation.Params, "8656"); ok {
		out += " +nadgrids=" + v.StringVal
		return out, nil
	}
	if v, ok := operation.FindByEPSGCode(bc.Transformation.Params, "8732"); ok {
		out += " +geoidgrids=" + v.StringVal
		return out, nil
	}
	return out, nil
}

func joinNums(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatNum(v)
	}
	return strings.Join(parts, ",")
}
