// Package projstring implements the C10 PROJ-string emitter and C11
// parser: the classic `+proj=<kw> +param=value ...` flat convention and
// the `+proj=pipeline +step ...` convention, both consulting the same
// method/parameter registry the wkt package uses for WKT1/ESRI names.
//
// Grounded on the tokenizer shape of wkt/tokenizer.go (a byte-cursor
// lexer with no generated grammar) applied to PROJ's `+key[=value]`
// token syntax instead of bracketed WKT nodes.
package projstring

// Convention selects between the two PROJ-string shapes described in the
// component design: Pipeline is the modern `+proj=pipeline +step ...`
// form, Flat is the legacy `+proj=<projection> +param=value ...` form.
type Convention int

const (
	Flat Convention = iota
	Pipeline
)
