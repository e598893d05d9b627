package unit

import "testing"

func TestConvertDegreeToGrad(t *testing.T) {
	v, err := Convert(1, Degree, Grad)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := 0.0174532925199433 / 0.015707963267949
	if diff := v - want; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("Convert(1 degree) = %v, want %v", v, want)
	}
}

func TestConvertRejectsMismatchedKind(t *testing.T) {
	if _, err := Convert(1, Degree, Metre); err == nil {
		t.Fatalf("expected InvalidUnitKind error mixing angular and linear")
	}
}

func TestByNameToleratesMeterSpelling(t *testing.T) {
	for _, name := range []string{"metre", "meter", "Meter"} {
		u, ok := ByName(name)
		if !ok || !u.Equal(Metre) {
			t.Errorf("ByName(%q) = (%v, %v), want Metre", name, u, ok)
		}
	}
}

func TestByProjName(t *testing.T) {
	u, ok := ByProjName("us-ft")
	if !ok || !u.Equal(USSurveyFoot) {
		t.Errorf("ByProjName(us-ft) = (%v, %v), want USSurveyFoot", u, ok)
	}
	if _, ok := ByProjName("does-not-exist"); ok {
		t.Errorf("expected miss for unknown PROJ unit name")
	}
}

func TestFromFactorReusesKnownUnit(t *testing.T) {
	u := FromFactor("degree", 999, Angular)
	if !u.Equal(Degree) || u.ConvFactor != Degree.ConvFactor {
		t.Errorf("FromFactor should return the interned Degree unit, got %+v", u)
	}
}

func TestFromFactorBuildsAdHocUnit(t *testing.T) {
	u := FromFactor("weird-angle", 0.5, Angular)
	if u.Name != "weird-angle" || u.ConvFactor != 0.5 || u.Kind != Angular {
		t.Errorf("unexpected ad-hoc unit: %+v", u)
	}
}
