package common

import "testing"

func TestIdentifierString(t *testing.T) {
	id := Identifier{CodeSpace: "EPSG", Code: "4326"}
	if id.String() != "EPSG:4326" {
		t.Errorf("String() = %q, want EPSG:4326", id.String())
	}
	if (Identifier{}).String() != "" {
		t.Errorf("zero Identifier should render empty")
	}
}

func TestIdentifierEqualIgnoresCitationAndVersion(t *testing.T) {
	a := Identifier{CodeSpace: "EPSG", Code: "4326", Citation: "x", Version: "1"}
	b := Identifier{CodeSpace: "EPSG", Code: "4326", Citation: "y", Version: "2"}
	if !a.Equal(b) {
		t.Errorf("identifiers matching by codespace/code should be equal regardless of citation/version")
	}
	c := Identifier{CodeSpace: "ESRI", Code: "4326"}
	if a.Equal(c) {
		t.Errorf("identifiers with different codespaces should not be equal")
	}
}

func TestPrimaryIdentifier(t *testing.T) {
	var o IdentifiedObject
	if _, ok := o.PrimaryIdentifier(); ok {
		t.Errorf("object with no identifiers should report ok=false")
	}
	o.Identifiers = []Identifier{{CodeSpace: "EPSG", Code: "4326"}, {CodeSpace: "ESRI", Code: "104326"}}
	id, ok := o.PrimaryIdentifier()
	if !ok || id.CodeSpace != "EPSG" {
		t.Errorf("PrimaryIdentifier() = (%v, %v), want the first identifier", id, ok)
	}
}

func TestIdentifierInCodeSpace(t *testing.T) {
	o := IdentifiedObject{Identifiers: []Identifier{{CodeSpace: "EPSG", Code: "4326"}, {CodeSpace: "ESRI", Code: "104326"}}}
	id, ok := o.IdentifierInCodeSpace("ESRI")
	if !ok || id.Code != "104326" {
		t.Errorf("IdentifierInCodeSpace(ESRI) = (%v, %v), want 104326", id, ok)
	}
	if _, ok := o.IdentifierInCodeSpace("IGNF"); ok {
		t.Errorf("expected miss for codespace not present")
	}
}
