package wkt

import (
	"strconv"
	"strings"

	"github.com/flywave/go-crs/crserr"
	"github.com/flywave/go-crs/iso19111/common"
	"github.com/flywave/go-crs/iso19111/crs"
	"github.com/flywave/go-crs/iso19111/cs"
	"github.com/flywave/go-crs/iso19111/datum"
	"github.com/flywave/go-crs/iso19111/operation"
	"github.com/flywave/go-crs/unit"
)

// Parse tokenizes and interprets a WKT string, auto-detecting the dialect
// version (WKT1 vs WKT2) from the root keyword and ESRI-vs-GDAL from a
// GCS_-prefixed GEOGCS name or D_-prefixed DATUM name (see
// hasESRINamePrefix), per §4.6/§4.7.
func Parse(input string) (crs.CRS, error) {
	root, err := ParseTree(input)
	if err != nil {
		return nil, err
	}
	d := detectDialect(root)
	return parseCRSNode(root, d)
}

// ParseWithDialect parses input, trusting the caller's dialect hint rather
// than auto-detecting it (useful for WKT1-ESRI text, which is
// syntactically indistinguishable from WKT1-GDAL without side knowledge).
func ParseWithDialect(input string, d Dialect) (crs.CRS, error) {
	root, err := ParseTree(input)
	if err != nil {
		return nil, err
	}
	return parseCRSNode(root, d)
}

func detectDialect(n *Node) Dialect {
	kw := strings.ToUpper(n.Keyword)
	switch kw {
	case "GEOGCRS", "GEODCRS", "GEODETICCRS", "PROJCRS", "VERTCRS", "COMPOUNDCRS",
		"BOUNDCRS", "DERIVEDCRS", "ENGCRS", "TIMECRS", "PARAMETRICCRS":
		if kw == "GEODCRS" {
			return WKT2_2018
		}
		return WKT2_2015
	}
	if hasESRINamePrefix(n) {
		return WKT1_ESRI
	}
	return WKT1_GDAL
}

// hasESRINamePrefix reports whether n's tree contains a GEOGCS node named
// "GCS_..." or a DATUM node named "D_...", the GCS_/D_ prefix pattern
// ESRI's morphToESRI convention stamps onto exported names (§4.6),
// distinguishing WKT1-ESRI from WKT1-GDAL.
func hasESRINamePrefix(n *Node) bool {
	switch strings.ToUpper(n.Keyword) {
	case "GEOGCS":
		if name, ok := n.StringValueAt(0); ok && strings.HasPrefix(name, "GCS_") {
			return true
		}
	case "DATUM":
		if name, ok := n.StringValueAt(0); ok && strings.HasPrefix(name, "D_") {
			return true
		}
	}
	for _, c := range n.Nodes() {
		if hasESRINamePrefix(c) {
			return true
		}
	}
	return false
}

func parseCRSNode(n *Node, d Dialect) (crs.CRS, error) {
	switch strings.ToUpper(n.Keyword) {
	case "GEOGCS", "GEOGCRS", "GEODCRS", "GEODETICCRS":
		g, err := parseGeodetic(n, d)
		if err != nil {
			return nil, err
		}
		return wrapDatumExtensions(g, n)
	case "PROJCS", "PROJCRS":
		return parseProjected(n, d)
	case "VERT_CS", "VERTCRS":
		v, err := parseVertical(n, d)
		if err != nil {
			return nil, err
		}
		if file, ok := parseExtensionGrids(n); ok {
			transform := operation.NewGravityRelatedHeightToGeographic3D(file)
			return crs.NewBoundCRS(v, crs.EPSG4326, transform)
		}
		return v, nil
	case "COMPD_CS", "COMPOUNDCRS":
		return parseCompound(n, d)
	case "BOUNDCRS":
		return parseBound(n, d)
	case "DERIVEDCRS":
		return parseDerived(n, d)
	case "ENGCRS":
		return parseEngineering(n, d)
	case "TIMECRS":
		return parseTemporal(n, d)
	case "PARAMETRICCRS":
		return parseParametric(n, d)
	default:
		return nil, crserr.Newf(crserr.UnknownKeyword, "unrecognized top-level WKT keyword %q", n.Keyword).AtPos(n.Pos)
	}
}

func nodeID(n *Node) []common.Identifier {
	var out []common.Identifier
	for _, kw := range []string{"ID", "AUTHORITY"} {
		for _, c := range n.NodesWithKeyword(kw) {
			cs, _ := c.StringValueAt(0)
			code, _ := c.StringValueAt(1)
			if code == "" {
				if v, ok := c.NumberValueAt(1); ok {
					code = FormatNumber(v)
				}
			}
			out = append(out, common.Identifier{CodeSpace: cs, Code: code})
		}
	}
	return out
}

func parseUnit(n *Node, kw string, kind unit.Kind, dialect Dialect) (unit.Unit, bool) {
	un, ok := n.FirstNodeWithKeyword(kw)
	if !ok && dialect.IsWKT1() {
		un, ok = n.FirstNodeWithKeyword("UNIT")
	}
	if !ok {
		return unit.Unit{}, false
	}
	name, _ := un.StringValueAt(0)
	factor, _ := un.NumberValueAt(1)
	if known, ok := unit.ByName(name); ok {
		return known, true
	}
	return unit.FromFactor(name, factor, kind), true
}

func parseEllipsoid(n *Node) (*datum.Ellipsoid, error) {
	en, ok := n.FirstNodeWithKeyword("ELLIPSOID")
	if !ok {
		en, ok = n.FirstNodeWithKeyword("SPHEROID")
	}
	if !ok {
		return nil, crserr.New(crserr.ParsingError, "missing ELLIPSOID/SPHEROID node").AtPos(n.Pos)
	}
	name, _ := en.StringValueAt(0)
	a, _ := en.NumberValueAt(1)
	rf, _ := en.NumberValueAt(2)
	e, err := datum.NewFlattened(name, a, rf)
	if err != nil {
		return nil, err
	}
	e.Identifiers = nodeID(en)
	return e, nil
}

func parsePrimeMeridian(n *Node) (*datum.PrimeMeridian, error) {
	pn, ok := n.FirstNodeWithKeyword("PRIMEM")
	if !ok {
		return datum.Greenwich, nil
	}
	name, _ := pn.StringValueAt(0)
	lon, _ := pn.NumberValueAt(1)
	u := unit.Degree
	if pu, ok := parseUnit(pn, "ANGLEUNIT", unit.Angular, WKT2_2015); ok {
		u = pu
	}
	pm, err := datum.NewPrimeMeridian(name, lon, u)
	if err != nil {
		return nil, err
	}
	pm.Identifiers = nodeID(pn)
	return pm, nil
}

func parseGeodeticDatum(n *Node, d Dialect) (*datum.GeodeticReferenceFrame, *datum.Ensemble, error) {
	if en, ok := n.FirstNodeWithKeyword("ENSEMBLE"); ok {
		name, _ := en.StringValueAt(0)
		var members []*datum.GeodeticReferenceFrame
		for _, mn := range en.NodesWithKeyword("MEMBER") {
			mname, _ := mn.StringValueAt(0)
			members = append(members, datum.NewGeodeticReferenceFrame(mname, nil, datum.Greenwich, ""))
		}
		ell, err := parseEllipsoid(en)
		if err != nil {
			return nil, nil, err
		}
		for _, m := range members {
			m.Ellipsoid = ell
		}
		accuracy := 0.0
		if an, ok := en.FirstNodeWithKeyword("ENSEMBLEACCURACY"); ok {
			accuracy, _ = an.NumberValueAt(0)
		}
		ens, err := datum.NewEnsemble(name, members, accuracy)
		if err != nil {
			return nil, nil, err
		}
		ens.Identifiers = nodeID(en)
		return nil, ens, nil
	}
	dn, ok := n.FirstNodeWithKeyword("DATUM")
	if !ok {
		return nil, nil, crserr.New(crserr.ParsingError, "missing DATUM/ENSEMBLE node").AtPos(n.Pos)
	}
	name, _ := dn.StringValueAt(0)
	ell, err := parseEllipsoid(dn)
	if err != nil {
		return nil, nil, err
	}
	pm, err := parsePrimeMeridian(n)
	if err != nil {
		return nil, nil, err
	}
	frame := datum.NewGeodeticReferenceFrame(name, ell, pm, "")
	frame.Identifiers = nodeID(dn)
	return frame, nil, nil
}

func parseAxes(n *Node, dialect Dialect, defaultKind cs.Kind, defaultUnit unit.Unit) (*cs.CS, error) {
	if csn, ok := n.FirstNodeWithKeyword("CS"); ok {
		kindTok, _ := csn.StringValueAt(0)
		k := csKindFromToken(kindTok, defaultKind)
		var axes []cs.Axis
		for _, an := range n.NodesWithKeyword("AXIS") {
			ax, err := parseAxisNode(an, defaultUnit)
			if err != nil {
				return nil, err
			}
			axes = append(axes, ax)
		}
		return cs.New(k, axes)
	}
	var axes []cs.Axis
	for _, an := range n.NodesWithKeyword("AXIS") {
		ax, err := parseAxisWKT1Node(an, defaultUnit)
		if err != nil {
			return nil, err
		}
		axes = append(axes, ax)
	}
	if len(axes) == 0 {
		return defaultAxesForKind(defaultKind, defaultUnit)
	}
	return cs.New(defaultKind, axes)
}

func defaultAxesForKind(k cs.Kind, u unit.Unit) (*cs.CS, error) {
	switch k {
	case cs.Ellipsoidal:
		return cs.CreateLatitudeLongitude(u)
	case cs.Cartesian:
		return cs.CreateEastNorth(u)
	case cs.Vertical:
		return cs.CreateGravityRelatedHeight(u)
	default:
		return cs.New(k, nil)
	}
}

func csKindFromToken(tok string, fallback cs.Kind) cs.Kind {
	switch strings.ToLower(tok) {
	case "ellipsoidal":
		return cs.Ellipsoidal
	case "cartesian":
		return cs.Cartesian
	case "spherical":
		return cs.Spherical
	case "vertical":
		return cs.Vertical
	case "temporal":
		return cs.Temporal
	case "parametric":
		return cs.Parametric
	default:
		return fallback
	}
}

func parseAxisNode(n *Node, defaultUnit unit.Unit) (cs.Axis, error) {
	name, _ := n.StringValueAt(0)
	dirTok, _ := n.StringValueAt(1)
	dir, _ := cs.ParseDirection(dirTok)
	u := defaultUnit
	if pu, ok := parseUnit(n, "ANGLEUNIT", unit.Angular, WKT2_2015); ok {
		u = pu
	} else if pu, ok := parseUnit(n, "LENGTHUNIT", unit.Linear, WKT2_2015); ok {
		u = pu
	}
	return cs.Axis{Name: stripAbbrev(name), Abbreviation: extractAbbrev(name), Direction: dir, Unit: u}, nil
}

func parseAxisWKT1Node(n *Node, defaultUnit unit.Unit) (cs.Axis, error) {
	name, _ := n.StringValueAt(0)
	dirTok, _ := n.StringValueAt(1)
	dir, _ := cs.ParseDirection(dirTok)
	return cs.Axis{Name: cs.NormalizeWKT1Name(name), Direction: dir, Unit: defaultUnit}, nil
}

func stripAbbrev(name string) string {
	if i := strings.Index(name, " ("); i >= 0 {
		return name[:i]
	}
	return name
}

func extractAbbrev(name string) string {
	i := strings.Index(name, " (")
	if i < 0 {
		return ""
	}
	j := strings.Index(name[i:], ")")
	if j < 0 {
		return ""
	}
	return name[i+2 : i+j]
}

func parseGeodetic(n *Node, d Dialect) (*crs.GeodeticCRS, error) {
	name, _ := n.StringValueAt(0)
	frame, ensemble, err := parseGeodeticDatum(n, d)
	if err != nil {
		return nil, err
	}
	angUnit := unit.Degree
	if pu, ok := parseUnit(n, "ANGLEUNIT", unit.Angular, d); ok {
		angUnit = pu
	}
	coordSys, err := parseAxes(n, d, cs.Ellipsoidal, angUnit)
	if err != nil {
		return nil, err
	}
	g, err := crs.NewGeodeticCRS(name, frame, ensemble, coordSys)
	if err != nil {
		return nil, err
	}
	g.Identifiers = nodeID(n)
	return g, nil
}

func parseConversion(n *Node, d Dialect) (*operation.Conversion, error) {
	convNode := n
	name := "unnamed"
	if cn, ok := n.FirstNodeWithKeyword("CONVERSION"); ok {
		convNode = cn
		name, _ = cn.StringValueAt(0)
	}
	methodNode, ok := convNode.FirstNodeWithKeyword("METHOD")
	if !ok {
		methodNode, ok = convNode.FirstNodeWithKeyword("PROJECTION")
	}
	if !ok {
		return nil, crserr.New(crserr.ParsingError, "missing METHOD/PROJECTION node").AtPos(n.Pos)
	}
	methodName, _ := methodNode.StringValueAt(0)
	if d == WKT1_ESRI {
		methodName = ESRIUnmorphName(methodName)
	}

	row, hasRow := operation.ResolveAny(methodName, "")
	var params []operation.ParameterValueEntry
	for _, pn := range convNode.NodesWithKeyword("PARAMETER") {
		pname, _ := pn.StringValueAt(0)
		pval, _ := pn.NumberValueAt(1)
		canonical := pname
		if d == WKT1_ESRI {
			canonical = ESRIUnmorphParamName(pname)
		}
		u := unit.Degree
		if hasRow {
			for _, pr := range row.Params {
				if strings.EqualFold(pr.WKT1Name, canonical) || strings.EqualFold(pr.EPSGName, canonical) {
					u = angleOrLinearOrScale(pr.UnitKind)
					canonical = pr.EPSGName
					break
				}
			}
		}
		if wu, ok := parseUnit(pn, "ANGLEUNIT", unit.Angular, d); ok {
			u = wu
		} else if wu, ok := parseUnit(pn, "LENGTHUNIT", unit.Linear, d); ok {
			u = wu
		} else if wu, ok := parseUnit(pn, "SCALEUNIT", unit.ScaleKind, d); ok {
			u = wu
		}
		desc := &operation.ParameterDescriptor{Name: canonical}
		params = append(params, operation.ParameterValueEntry{Descriptor: desc, Value: operation.MeasureValue(pval, u)})
	}
	conv, err := operation.CreateFromMethodNameAndParams(methodName, params)
	if err != nil {
		return nil, err
	}
	conv.Name = name
	return conv, nil
}

func angleOrLinearOrScale(k unit.Kind) unit.Unit {
	switch k {
	case unit.Angular:
		return unit.Degree
	case unit.ScaleKind:
		return unit.Unity
	default:
		return unit.Metre
	}
}

func parseProjected(n *Node, d Dialect) (crs.CRS, error) {
	name, _ := n.StringValueAt(0)
	if d == WKT1_ESRI {
		name = ESRIUnmorphName(name)
	}
	var baseNode *Node
	for _, kw := range []string{"GEOGCS", "GEOGCRS", "GEODETICCRS", "GEODCRS", "BASEGEOGCRS"} {
		if bn, ok := n.FirstNodeWithKeyword(kw); ok {
			baseNode = bn
			break
		}
	}
	if baseNode == nil {
		return nil, crserr.New(crserr.ParsingError, "PROJCS/PROJCRS missing base geographic CRS node").AtPos(n.Pos)
	}
	base, err := parseGeodetic(baseNode, d)
	if err != nil {
		return nil, err
	}
	conv, err := parseConversion(n, d)
	if err != nil {
		return nil, err
	}
	linUnit := unit.Metre
	if pu, ok := parseUnit(n, "LENGTHUNIT", unit.Linear, d); ok {
		linUnit = pu
	}
	coordSys, err := parseAxes(n, d, cs.Cartesian, linUnit)
	if err != nil {
		return nil, err
	}
	p, err := crs.NewProjectedCRS(name, base, conv, coordSys)
	if err != nil {
		return nil, err
	}
	p.Identifiers = nodeID(n)

	if towgs, ok := parseTOWGS84(baseNode); ok {
		return synthesizeBoundCRS(p, towgs)
	}
	if file, ok := parseExtensionGrids(baseNode); ok {
		transform := operation.NewNTv2("9615", "NTv2", file)
		return crs.NewBoundCRS(p, crs.EPSG4326, transform)
	}
	return p, nil
}

// wrapDatumExtensions checks a bare geographic/geodetic CRS node for a
// nested TOWGS84 or EXTENSION["PROJ4_GRIDS",...] datum extension and, if
// present, lifts g into a BoundCRS accordingly.
func wrapDatumExtensions(g *crs.GeodeticCRS, n *Node) (crs.CRS, error) {
	if towgs, ok := parseTOWGS84(n); ok {
		return synthesizeBoundCRS(g, towgs)
	}
	if file, ok := parseExtensionGrids(n); ok {
		transform := operation.NewNTv2("9615", "NTv2", file)
		return crs.NewBoundCRS(g, crs.EPSG4326, transform)
	}
	return g, nil
}

// parseExtensionGrids looks for a WKT1-GDAL EXTENSION["PROJ4_GRIDS","<file>"]
// node nested in a horizontal DATUM or vertical VERT_DATUM child of n,
// returning its grid filename (§4.6/§6's nadgrids/geoidgrids extension).
func parseExtensionGrids(n *Node) (string, bool) {
	for _, kw := range []string{"DATUM", "VERT_DATUM"} {
		dn, ok := n.FirstNodeWithKeyword(kw)
		if !ok {
			continue
		}
		for _, en := range dn.NodesWithKeyword("EXTENSION") {
			tag, _ := en.StringValueAt(0)
			if !strings.EqualFold(tag, "PROJ4_GRIDS") {
				continue
			}
			file, ok := en.StringValueAt(1)
			if ok && file != "" {
				return file, true
			}
		}
	}
	return "", false
}

// parseTOWGS84 looks for a TOWGS84[...] node nested in the GEOGCS's DATUM
// (WKT1-GDAL extension), returning its 3- or 7-tuple.
func parseTOWGS84(geogcs *Node) ([]float64, bool) {
	dn, ok := geogcs.FirstNodeWithKeyword("DATUM")
	if !ok {
		return nil, false
	}
	tn, ok := dn.FirstNodeWithKeyword("TOWGS84")
	if !ok {
		return nil, false
	}
	vals := tn.Values()
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v.Num
	}
	return out, true
}

// synthesizeBoundCRS wraps base in a BoundCRS to WGS84 using the given
// TOWGS84 tuple, per §4.4's "synthesize a BoundCRS from an inline
// TOWGS84" rule.
func synthesizeBoundCRS(base crs.CRS, towgs []float64) (crs.CRS, error) {
	var tx, ty, tz, rx, ry, rz, s float64
	tx, ty, tz = towgs[0], towgs[1], towgs[2]
	if len(towgs) >= 7 {
		rx, ry, rz, s = towgs[3], towgs[4], towgs[5], towgs[6]
	}
	var transform *operation.Transformation
	if len(towgs) >= 7 && (rx != 0 || ry != 0 || rz != 0 || s != 0) {
		transform = operation.NewPositionVectorTransformation("9606", tx, ty, tz, rx, ry, rz, s)
	} else {
		transform = operation.NewGeocentricTranslation("9603", tx, ty, tz)
	}
	return crs.NewBoundCRS(base, crs.EPSG4326, transform)
}

func parseVertical(n *Node, d Dialect) (*crs.VerticalCRS, error) {
	name, _ := n.StringValueAt(0)
	linUnit := unit.Metre
	if pu, ok := parseUnit(n, "LENGTHUNIT", unit.Linear, d); ok {
		linUnit = pu
	}
	var frame *datum.VerticalReferenceFrame
	var ensemble *datum.Ensemble
	if dn, ok := n.FirstNodeWithKeyword("VDATUM"); ok {
		dname, _ := dn.StringValueAt(0)
		frame = datum.NewVerticalReferenceFrame(dname, "", "")
		frame.Identifiers = nodeID(dn)
	} else if dn, ok := n.FirstNodeWithKeyword("VERT_DATUM"); ok {
		dname, _ := dn.StringValueAt(0)
		frame = datum.NewVerticalReferenceFrame(dname, "", "")
		frame.Identifiers = nodeID(dn)
	} else if en, ok := n.FirstNodeWithKeyword("ENSEMBLE"); ok {
		ename, _ := en.StringValueAt(0)
		placeholder := datum.NewGeodeticReferenceFrame(ename, nil, datum.Greenwich, "")
		ensemble, _ = datum.NewEnsemble(ename, []*datum.GeodeticReferenceFrame{placeholder}, 0)
	} else {
		return nil, crserr.New(crserr.ParsingError, "VERT_CS/VERTCRS missing datum").AtPos(n.Pos)
	}
	coordSys, err := parseAxes(n, d, cs.Vertical, linUnit)
	if err != nil {
		return nil, err
	}
	v, err := crs.NewVerticalCRS(name, frame, ensemble, coordSys)
	if err != nil {
		return nil, err
	}
	v.Identifiers = nodeID(n)
	return v, nil
}

func parseCompound(n *Node, d Dialect) (*crs.CompoundCRS, error) {
	name, _ := n.StringValueAt(0)
	var components []crs.CRS
	for _, cn := range n.Nodes() {
		switch strings.ToUpper(cn.Keyword) {
		case "ID", "AUTHORITY":
			continue
		}
		comp, err := parseCRSNode(cn, d)
		if err != nil {
			return nil, err
		}
		components = append(components, comp)
	}
	c, err := crs.NewCompoundCRS(name, components)
	if err != nil {
		return nil, err
	}
	c.Identifiers = nodeID(n)
	return c, nil
}

func parseBound(n *Node, d Dialect) (*crs.BoundCRS, error) {
	srcNode, ok := n.FirstNodeWithKeyword("SOURCECRS")
	if !ok {
		return nil, crserr.New(crserr.ParsingError, "BOUNDCRS missing SOURCECRS").AtPos(n.Pos)
	}
	tgtNode, ok := n.FirstNodeWithKeyword("TARGETCRS")
	if !ok {
		return nil, crserr.New(crserr.ParsingError, "BOUNDCRS missing TARGETCRS").AtPos(n.Pos)
	}
	base, err := parseCRSNode(srcNode.Nodes()[0], d)
	if err != nil {
		return nil, err
	}
	hub, err := parseCRSNode(tgtNode.Nodes()[0], d)
	if err != nil {
		return nil, err
	}
	tn, ok := n.FirstNodeWithKeyword("ABRIDGEDTRANSFORMATION")
	if !ok {
		return nil, crserr.New(crserr.ParsingError, "BOUNDCRS missing ABRIDGEDTRANSFORMATION").AtPos(n.Pos)
	}
	transform, err := parseAbridgedTransformation(tn)
	if err != nil {
		return nil, err
	}
	b, err := crs.NewBoundCRS(base, hub, transform)
	if err != nil {
		return nil, err
	}
	b.Identifiers = nodeID(n)
	return b, nil
}

func parseAbridgedTransformation(n *Node) (*operation.Transformation, error) {
	name, _ := n.StringValueAt(0)
	methodNode, ok := n.FirstNodeWithKeyword("METHOD")
	if !ok {
		return nil, crserr.New(crserr.ParsingError, "ABRIDGEDTRANSFORMATION missing METHOD").AtPos(n.Pos)
	}
	methodName, _ := methodNode.StringValueAt(0)
	var entries []operation.ParameterValueEntry
	for _, pn := range n.NodesWithKeyword("PARAMETER") {
		pname, _ := pn.StringValueAt(0)
		pval, _ := pn.NumberValueAt(1)
		desc := &operation.ParameterDescriptor{Name: pname}
		entries = append(entries, operation.ParameterValueEntry{Descriptor: desc, Value: operation.MeasureValue(pval, unit.Metre)})
	}
	method := operation.NewMethod(methodName, "", descriptorsOf(entries))
	t := &operation.Transformation{CoordinateOperation: operation.CoordinateOperation{Method: method, Params: entries}}
	t.Name = name
	t.Identifiers = nodeID(n)
	return t, nil
}

func descriptorsOf(entries []operation.ParameterValueEntry) []*operation.ParameterDescriptor {
	out := make([]*operation.ParameterDescriptor, len(entries))
	for i, e := range entries {
		out[i] = e.Descriptor
	}
	return out
}

func parseDerived(n *Node, d Dialect) (*crs.DerivedCRS, error) {
	name, _ := n.StringValueAt(0)
	baseNode, ok := n.FirstNodeWithKeyword("BASECRS")
	if !ok {
		return nil, crserr.New(crserr.ParsingError, "DERIVEDCRS missing BASECRS").AtPos(n.Pos)
	}
	base, err := parseCRSNode(baseNode.Nodes()[0], d)
	if err != nil {
		return nil, err
	}
	conv, err := parseConversion(n, d)
	if err != nil {
		return nil, err
	}
	coordSys, err := parseAxes(n, d, cs.Cartesian, unit.Metre)
	if err != nil {
		return nil, err
	}
	dc, err := crs.NewDerivedCRS(name, base, conv, coordSys)
	if err != nil {
		return nil, err
	}
	dc.Identifiers = nodeID(n)
	return dc, nil
}

func parseEngineering(n *Node, d Dialect) (*crs.EngineeringCRS, error) {
	name, _ := n.StringValueAt(0)
	edn, ok := n.FirstNodeWithKeyword("EDATUM")
	anchor := ""
	dname := name
	if ok {
		dname, _ = edn.StringValueAt(0)
	}
	ed := datum.NewEngineeringDatum(dname, anchor)
	coordSys, err := parseAxes(n, d, cs.Cartesian, unit.Metre)
	if err != nil {
		return nil, err
	}
	e := crs.NewEngineeringCRS(name, ed, coordSys)
	e.Identifiers = nodeID(n)
	return e, nil
}

func parseTemporal(n *Node, d Dialect) (*crs.TemporalCRS, error) {
	name, _ := n.StringValueAt(0)
	tdn, ok := n.FirstNodeWithKeyword("TDATUM")
	dname := name
	if ok {
		dname, _ = tdn.StringValueAt(0)
	}
	td := datum.NewTemporalDatum(dname, "", "")
	coordSys, err := parseAxes(n, d, cs.Temporal, unit.None)
	if err != nil {
		return nil, err
	}
	t := crs.NewTemporalCRS(name, td, coordSys)
	t.Identifiers = nodeID(n)
	return t, nil
}

func parseParametric(n *Node, d Dialect) (*crs.ParametricCRS, error) {
	name, _ := n.StringValueAt(0)
	pdn, ok := n.FirstNodeWithKeyword("PDATUM")
	dname := name
	if ok {
		dname, _ = pdn.StringValueAt(0)
	}
	pd := datum.NewParametricDatum(dname, "")
	coordSys, err := parseAxes(n, d, cs.Parametric, unit.None)
	if err != nil {
		return nil, err
	}
	p := crs.NewParametricCRS(name, pd, coordSys)
	p.Identifiers = nodeID(n)
	return p, nil
}

// parseFloatToken tolerates a Value that the tokenizer read as a bare
// string (e.g. a signed integer without a decimal point in a context
// where isNumberStart heuristics missed it).
func parseFloatToken(v Value) (float64, bool) {
	if v.Kind == ValueNumber {
		return v.Num, true
	}
	f, err := strconv.ParseFloat(v.Str, 64)
	return f, err == nil
}
