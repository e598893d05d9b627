// Package wkt implements the C7 tokenizer/tree, C8 emitter, and C9 parser:
// a whitespace/comment-tolerant lexer producing a Node tree, a
// dialect-aware indented serializer, and a keyword-dispatch parser
// covering the WKT1-GDAL, WKT1-ESRI, WKT2:2015, and WKT2:2018 dialects.
//
// The tokenizer loop shape is grounded on the small hand-rolled WKT
// geometry tokenizer in
// _examples/other_examples/weaviate-weaviate__wkt.go: a byte-index cursor
// scanning quoted strings, bare tokens, and bracket/comma structural
// characters without a table-driven lexer generator.
package wkt

import (
	"strconv"
	"strings"

	"github.com/flywave/go-crs/crserr"
)

// ValueKind distinguishes a Node child that is a nested Node from one
// that is a bare Value (number or quoted string).
type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueString
)

// Value is a bare number or quoted string leaf.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
}

// Child is either a nested *Node or a Value; exactly one of Node/Val is
// set.
type Child struct {
	Node *Node
	Val  *Value
}

// Node is `KEYWORD [ "[" child ("," child)* "]" ]`.
type Node struct {
	Keyword  string
	Children []Child
	Pos      int
}

// Values returns the Value children only, in order.
func (n *Node) Values() []Value {
	var out []Value
	for _, c := range n.Children {
		if c.Val != nil {
			out = append(out, *c.Val)
		}
	}
	return out
}

// Nodes returns the Node children only, in order.
func (n *Node) Nodes() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Node != nil {
			out = append(out, c.Node)
		}
	}
	return out
}

// NodesWithKeyword returns Node children whose Keyword matches (case
// insensitive), in order.
func (n *Node) NodesWithKeyword(keyword string) []*Node {
	var out []*Node
	for _, c := range n.Nodes() {
		if strings.EqualFold(c.Keyword, keyword) {
			out = append(out, c)
		}
	}
	return out
}

// FirstNodeWithKeyword returns the first matching Node child, if any.
func (n *Node) FirstNodeWithKeyword(keyword string) (*Node, bool) {
	ns := n.NodesWithKeyword(keyword)
	if len(ns) == 0 {
		return nil, false
	}
	return ns[0], true
}

// StringValueAt returns the string value of the i-th Value child.
func (n *Node) StringValueAt(i int) (string, bool) {
	vs := n.Values()
	if i < 0 || i >= len(vs) {
		return "", false
	}
	return vs[i].Str, true
}

// NumberValueAt returns the numeric value of the i-th Value child.
func (n *Node) NumberValueAt(i int) (float64, bool) {
	vs := n.Values()
	if i < 0 || i >= len(vs) {
		return 0, false
	}
	if vs[i].Kind != ValueNumber {
		return 0, false
	}
	return vs[i].Num, true
}

// tokenizer is a byte-index cursor over the input, tolerant of whitespace
// and line breaks outside quoted strings.
type tokenizer struct {
	src []byte
	pos int
}

func newTokenizer(s string) *tokenizer { return &tokenizer{src: []byte(s)} }

func (t *tokenizer) skipSpace() {
	for t.pos < len(t.src) {
		switch t.src[t.pos] {
		case ' ', '\t', '\n', '\r':
			t.pos++
		default:
			return
		}
	}
}

func (t *tokenizer) eof() bool { return t.pos >= len(t.src) }

func (t *tokenizer) peek() byte {
	if t.eof() {
		return 0
	}
	return t.src[t.pos]
}

// ParseTree tokenizes the whole input into a single root Node.
func ParseTree(input string) (*Node, error) {
	t := newTokenizer(input)
	t.skipSpace()
	n, err := t.parseNode()
	if err != nil {
		return nil, err
	}
	t.skipSpace()
	return n, nil
}

func (t *tokenizer) parseNode() (*Node, error) {
	t.skipSpace()
	kw := t.readKeyword()
	if kw == "" {
		return nil, crserr.New(crserr.ParsingError, "expected keyword").AtPos(t.pos)
	}
	return t.parseNodeFromKeyword(kw)
}

func (t *tokenizer) parseChild() (Child, error) {
	t.skipSpace()
	if t.eof() {
		return Child{}, crserr.New(crserr.ParsingError, "unexpected end of input").AtPos(t.pos)
	}
	switch t.peek() {
	case '"':
		s, err := t.readQuotedString()
		if err != nil {
			return Child{}, err
		}
		return Child{Val: &Value{Kind: ValueString, Str: s}}, nil
	default:
		if isNumberStart(t.peek()) {
			// Could still be a bare keyword (e.g. AXIS direction tokens
			// like NORTH are handled by the caller, but a numeric-looking
			// bareword like a keyword starting with a digit never
			// happens in WKT keywords, so this heuristic is safe).
			save := t.pos
			if v, ok := t.tryReadNumber(); ok {
				return Child{Val: &Value{Kind: ValueNumber, Num: v}}, nil
			}
			t.pos = save
		}
		// Either a nested node (KEYWORD[...]) or a bareword token (e.g.
		// axis direction NORTH, or an unquoted enum like "ellipsoidal").
		word := t.readKeyword()
		if word == "" {
			return Child{}, crserr.New(crserr.ParsingError, "unexpected character").AtPos(t.pos)
		}
		save := t.pos
		t.skipSpace()
		if !t.eof() && (t.peek() == '[' || t.peek() == '(') {
			t.pos = save
			n, err := t.parseNodeFromKeyword(word)
			if err != nil {
				return Child{}, err
			}
			return Child{Node: n}, nil
		}
		t.pos = save
		return Child{Val: &Value{Kind: ValueString, Str: word}}, nil
	}
}

func (t *tokenizer) parseNodeFromKeyword(kw string) (*Node, error) {
	start := t.pos
	n := &Node{Keyword: kw, Pos: start}
	t.skipSpace()
	if t.eof() || (t.peek() != '[' && t.peek() != '(') {
		return n, nil // bare keyword, no children (rare, but tolerated)
	}
	closing := byte(']')
	if t.peek() == '(' {
		closing = ')'
	}
	t.pos++
	for {
		t.skipSpace()
		if t.eof() {
			return nil, crserr.New(crserr.ParsingError, "unterminated node, missing closing bracket").AtPos(t.pos)
		}
		if t.peek() == closing {
			t.pos++
			break
		}
		child, err := t.parseChild()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
		t.skipSpace()
		if !t.eof() && t.peek() == ',' {
			t.pos++
			continue
		}
		if !t.eof() && t.peek() == closing {
			t.pos++
			break
		}
	}
	return n, nil
}

func (t *tokenizer) readKeyword() string {
	start := t.pos
	for t.pos < len(t.src) {
		c := t.src[t.pos]
		if c == '[' || c == ']' || c == '(' || c == ')' || c == ',' || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			break
		}
		t.pos++
	}
	return string(t.src[start:t.pos])
}

func (t *tokenizer) readQuotedString() (string, error) {
	if t.peek() != '"' {
		return "", crserr.New(crserr.ParsingError, "expected opening quote").AtPos(t.pos)
	}
	t.pos++
	var b strings.Builder
	for {
		if t.eof() {
			return "", crserr.New(crserr.ParsingError, "unterminated quoted string").AtPos(t.pos)
		}
		c := t.src[t.pos]
		if c == '"' {
			// Doubled double-quote is the WKT2 escape for a literal quote.
			if t.pos+1 < len(t.src) && t.src[t.pos+1] == '"' {
				b.WriteByte('"')
				t.pos += 2
				continue
			}
			t.pos++
			break
		}
		b.WriteByte(c)
		t.pos++
	}
	return b.String(), nil
}

func isNumberStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

func (t *tokenizer) tryReadNumber() (float64, bool) {
	start := t.pos
	if t.peek() == '+' || t.peek() == '-' {
		t.pos++
	}
	sawDigit := false
	for t.pos < len(t.src) && t.src[t.pos] >= '0' && t.src[t.pos] <= '9' {
		t.pos++
		sawDigit = true
	}
	if t.pos < len(t.src) && t.src[t.pos] == '.' {
		t.pos++
		for t.pos < len(t.src) && t.src[t.pos] >= '0' && t.src[t.pos] <= '9' {
			t.pos++
			sawDigit = true
		}
	}
	if !sawDigit {
		t.pos = start
		return 0, false
	}
	if t.pos < len(t.src) && (t.src[t.pos] == 'e' || t.src[t.pos] == 'E') {
		save := t.pos
		t.pos++
		if t.pos < len(t.src) && (t.src[t.pos] == '+' || t.src[t.pos] == '-') {
			t.pos++
		}
		expDigit := false
		for t.pos < len(t.src) && t.src[t.pos] >= '0' && t.src[t.pos] <= '9' {
			t.pos++
			expDigit = true
		}
		if !expDigit {
			t.pos = save
		}
	}
	// Reject tokens that continue into identifier characters (so a
	// bareword like "3857North" is never mis-tokenized as a number).
	if t.pos < len(t.src) {
		c := t.src[t.pos]
		if !(c == '[' || c == ']' || c == '(' || c == ')' || c == ',' || c == ' ' || c == '\t' || c == '\n' || c == '\r') {
			t.pos = start
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(string(t.src[start:t.pos]), 64)
	if err != nil {
		t.pos = start
		return 0, false
	}
	return v, true
}
