package core

import "testing"

func TestAttrHas(t *testing.T) {
	a := AttrBold | AttrReverse

	if !a.Has(AttrBold) || !a.Has(AttrReverse) {
		t.Errorf("expected bold and reverse, got %b", a)
	}
	if !a.Has(AttrBold | AttrReverse) {
		t.Error("expected combined attributes to match")
	}
	if a.Has(AttrUnderline) || a.Has(AttrBold|AttrUnderline) {
		t.Error("did not expect underline")
	}
}

func TestColorString(t *testing.T) {
	if s := ColorDefault.String(); s != "default" {
		t.Errorf("expected default, got %q", s)
	}
	if s := Color(7).String(); s != "palette(7)" {
		t.Errorf("expected palette(7), got %q", s)
	}
}

func TestStyle(t *testing.T) {
	s := DefaultStyle().Reverse()
	if !s.Attrs.Has(AttrReverse) {
		t.Error("expected reverse attribute")
	}
	if s == DefaultStyle() {
		t.Error("reverse style should differ from default")
	}

	c := DefaultStyle().Colors(1, 2).Bold()
	if c.Fg != 1 || c.Bg != 2 || !c.Attrs.Has(AttrBold) {
		t.Errorf("unexpected style %+v", c)
	}
}

func TestCell(t *testing.T) {
	if EmptyCell() != NewCell(' ') {
		t.Error("empty cell should equal a default space cell")
	}
	if NewCell('a') == NewStyledCell('a', DefaultStyle().Reverse()) {
		t.Error("cells with different styles should differ")
	}
}
