package wkt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flywave/go-crs/iso19111/crs"
	"github.com/flywave/go-crs/unit"
)

// Formatter is the depth-first tree-walker state described in §4.7:
// dialect/version, indentation width, whether to emit ID nodes, whether
// axis order is emitted, the currently pushed axis unit (for omission
// when a parameter/axis unit matches it), the currently applicable
// TOWGS84 parameters, and horizontal/vertical datum grid extension
// filenames.
type Formatter struct {
	Dialect      Dialect
	Simplified   bool
	IndentWidth  int
	EmitID       bool
	EmitAxisOrder bool

	// Authority is the optional database collaborator consulted for
	// WKT1-ESRI name aliasing (§4.7/§4.12) before falling back to the
	// deterministic ESRIMorphName/ESRIMorphParamName rules.
	Authority crs.AuthorityFactory

	pushedAxisUnit *unit.Unit
	towgs84        []float64
	nadgrids       string
	geoidgrids     string

	buf   strings.Builder
	depth int
}

// NewFormatter builds a Formatter with the conventional defaults for the
// given dialect: WKT1 never emits axis order or simplifies; WKT2 defaults
// to non-simplified with IDs and axis order on.
func NewFormatter(d Dialect) *Formatter {
	f := &Formatter{Dialect: d, IndentWidth: 0, EmitID: true, EmitAxisOrder: d.IsWKT2()}
	return f
}

// PushAxisUnit records the current CS-level axis unit so nested
// PRIMEM/PARAMETER unit nodes can be omitted when they match (§4.7).
func (f *Formatter) PushAxisUnit(u unit.Unit) (restore func()) {
	prev := f.pushedAxisUnit
	cp := u
	f.pushedAxisUnit = &cp
	return func() { f.pushedAxisUnit = prev }
}

// AxisUnitMatches reports whether u equals the currently pushed axis
// unit.
func (f *Formatter) AxisUnitMatches(u unit.Unit) bool {
	return f.pushedAxisUnit != nil && f.pushedAxisUnit.Equal(u)
}

// SetTOWGS84 records the 3- or 7-element TOWGS84 parameter set currently
// applicable for BoundCRS injection into WKT1-GDAL DATUM nodes.
func (f *Formatter) SetTOWGS84(params []float64) { f.towgs84 = params }

// SetTOWGS84AndRestore is SetTOWGS84 paired with a restore closure, for
// scoping the TOWGS84 injection to a single nested emission (BoundCRS's
// base CRS, per §4.7).
func (f *Formatter) SetTOWGS84AndRestore(params []float64) (restore func()) {
	prev := f.towgs84
	f.towgs84 = params
	return func() { f.towgs84 = prev }
}

// TOWGS84 returns the currently applicable TOWGS84 parameters, if any.
func (f *Formatter) TOWGS84() ([]float64, bool) { return f.towgs84, f.towgs84 != nil }

// SetGridExtensions records the nadgrids/geoidgrids filenames currently
// applicable for WKT1 EXTENSION injection.
func (f *Formatter) SetGridExtensions(nadgrids, geoidgrids string) {
	f.nadgrids, f.geoidgrids = nadgrids, geoidgrids
}

// --- low-level node writing ---

func (f *Formatter) indent() string {
	if f.IndentWidth <= 0 {
		return ""
	}
	return strings.Repeat(" ", f.depth*f.IndentWidth)
}

// newlineIndent separates a nested node from what precedes it: a newline
// plus indent when pretty-printing, a single space in the default compact
// single-line form.
func (f *Formatter) newlineIndent() {
	if f.IndentWidth > 0 {
		f.buf.WriteByte('\n')
		f.buf.WriteString(f.indent())
	} else {
		f.buf.WriteByte(' ')
	}
}

// keyword renders the dialect-canonical case: upper for both WKT1 and
// WKT2 (§6 "emitted in the canonical case of each dialect (upper for
// WKT1, upper for WKT2)").
func keyword(kw string) string { return strings.ToUpper(kw) }

// StartNode begins writing `KEYWORD[`.
func (f *Formatter) StartNode(kw string) {
	if f.buf.Len() > 0 {
		f.newlineIndent()
	}
	f.buf.WriteString(keyword(kw))
	f.buf.WriteByte('[')
	f.depth++
}

// EndNode closes the current node with `]`.
func (f *Formatter) EndNode() {
	f.depth--
	f.buf.WriteByte(']')
}

// separator writes a "," between children; call before every child after
// the first.
func (f *Formatter) Comma() { f.buf.WriteByte(',') }

// QuotedString writes a WKT2-escaped quoted string leaf.
func (f *Formatter) QuotedString(s string) {
	f.buf.WriteByte('"')
	f.buf.WriteString(strings.ReplaceAll(s, `"`, `""`))
	f.buf.WriteByte('"')
}

// Number writes a bare decimal number leaf using '.' as the decimal
// separator and no thousands separator (§6), trimming trailing zeros the
// way EPSG-derived WKT text conventionally does.
func (f *Formatter) Number(v float64) {
	f.buf.WriteString(FormatNumber(v))
}

// FormatNumber renders a float64 the way the emitter does: shortest
// round-trippable decimal representation, '.' separator, no exponent for
// the ranges WKT commonly carries.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return s
}

// Bareword writes an unquoted token, used for enum-like values such as
// axis directions ("north") and the CS type keyword ("ellipsoidal").
func (f *Formatter) Bareword(s string) { f.buf.WriteString(s) }

// String returns the accumulated output.
func (f *Formatter) String() string { return f.buf.String() }

// WriteChildID writes an ID/AUTHORITY node for a sub-object nested under
// the CRS being emitted (ellipsoid, datum, prime meridian, unit). WKT1
// conventionally carries these on every object; WKT2's default (non-
// simplified) form omits them in favor of the single ID on the
// containing CRS.
func (f *Formatter) WriteChildID(codeSpace, code string) {
	if f.Dialect.IsWKT2() {
		return
	}
	f.WriteID(codeSpace, code)
}

// WriteID writes an `ID["codespace","code"]` (WKT2) or
// `AUTHORITY["codespace","code"]` (WKT1) node, honoring EmitID.
func (f *Formatter) WriteID(codeSpace, code string) {
	if !f.EmitID || codeSpace == "" || code == "" {
		return
	}
	f.Comma()
	kw := "ID"
	if f.Dialect.IsWKT1() {
		kw = "AUTHORITY"
	}
	f.StartNode(kw)
	f.QuotedString(codeSpace)
	f.Comma()
	if f.Dialect.IsWKT2() && isNumeric(code) {
		f.Bareword(code)
	} else {
		f.QuotedString(code)
	}
	f.EndNode()
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Errorf is a convenience wrapper around fmt.Errorf for errors raised
// mid-emission; it does not build a crserr FormattingError.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
