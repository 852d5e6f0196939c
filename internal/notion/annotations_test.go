package notion

import "testing"

func TestAnnotationSettersReportChange(t *testing.T) {
	var a Annotations

	if !a.SetBold(true) {
		t.Error("SetBold(true) on default should report a change")
	}
	if a.SetBold(true) {
		t.Error("SetBold(true) twice should not report a change")
	}
	if !a.SetBold(false) {
		t.Error("SetBold(false) after true should report a change")
	}
	if a.SetColor(ColorDefault) {
		t.Error("SetColor(default) on zero value should not report a change")
	}
	if !a.SetColor(ColorRed) {
		t.Error("SetColor(red) should report a change")
	}
	if a.Color() != ColorRed {
		t.Errorf("Color() = %s, want red", a.Color())
	}
}

func TestAnnotationCopyRoundTrip(t *testing.T) {
	var a Annotations
	a.SetBold(true)
	a.SetUnderline(true)
	a.SetColor(ColorBlueBackground)

	c := a.Copy()
	if c.ToWire() != a.ToWire() {
		t.Errorf("Copy().ToWire() = %+v, want %+v", c.ToWire(), a.ToWire())
	}

	c.SetItalic(true)
	if a.Italic() {
		t.Error("changing a copy must not change the original")
	}
}

func TestAnnotationEqual(t *testing.T) {
	var unset, explicit Annotations
	explicit.SetColor(ColorDefault)
	if !unset.Equal(explicit) {
		t.Error("unset color should equal explicit default color")
	}
	if !unset.IsDefault() || !explicit.IsDefault() {
		t.Error("IsDefault() should be true for both")
	}

	var eq Annotations
	eq.SetEquation(true)
	if eq.Equal(unset) || eq.IsDefault() {
		t.Error("the equation flag takes part in equality")
	}
}

func TestAnnotationWireOmitsEquation(t *testing.T) {
	var a Annotations
	a.SetEquation(true)
	a.SetCode(true)
	w := a.ToWire()
	want := WireAnnotations{Code: true, Color: ColorDefault}
	if w != want {
		t.Errorf("ToWire() = %+v, want %+v", w, want)
	}
}

func TestColorValid(t *testing.T) {
	for _, c := range []Color{ColorDefault, ColorGray, ColorRedBackground} {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if Color("chartreuse").Valid() {
		t.Error("chartreuse should not be valid")
	}
}
