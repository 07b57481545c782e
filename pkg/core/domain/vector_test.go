package domain

import (
	"errors"
	"testing"
)

func TestVectorDimension(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want Dimension
		ok   bool
	}{
		{"base", BaseVector(Mass, "kg"), Mass, true},
		{"empty", Vector{}, 0, false},
		{"square", Vector{Length: {Exp: 2, Unit: "m"}}, 0, false},
		{"inverse", Vector{Time: {Exp: -1, Unit: "s"}}, 0, false},
		{"two dimensions", Vector{Length: {Exp: 1, Unit: "m"}, Time: {Exp: 1, Unit: "s"}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Dimension()
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Dimension() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestVectorString(t *testing.T) {
	v := Vector{Length: {Exp: 1, Unit: "km"}, Time: {Exp: -1, Unit: "s"}}
	if got := v.String(); got != "length[km]^1·time[s]^-1" {
		t.Errorf("unexpected string %q", got)
	}
	if got := (Vector{}).String(); got != "1" {
		t.Errorf("unexpected string %q", got)
	}
}

func TestNewPattern(t *testing.T) {
	p := NewPattern(map[Dimension]int{Mass: 1, Length: 2, Time: -2})
	if p[Mass] != 1 || p[Length] != 2 || p[Time] != -2 || p[Angle] != 0 {
		t.Errorf("unexpected pattern %v", p)
	}
	if !p.Valid() {
		t.Errorf("pattern should be valid")
	}
	if NewPattern(map[Dimension]int{Length: 6}).Valid() {
		t.Errorf("out of range pattern should be invalid")
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		want Dimension
	}{
		{"length", Length},
		{" Luminous Intensity ", LuminousIntensity},
		{"digital-information", DigitalInformation},
		{"SOLID_ANGLE", SolidAngle},
	}
	for _, tt := range tests {
		got, err := ParseDimension(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseDimension(%q) = %v, %v", tt.in, got, err)
		}
	}

	if _, err := ParseDimension("voltage"); !errors.Is(err, ErrUnknownDimension) {
		t.Errorf("expected ErrUnknownDimension, got %v", err)
	}
	if Dimension(42).Valid() || Dimension(42).String() != "Dimension(42)" {
		t.Errorf("unexpected handling of out of range dimension")
	}
}

func TestUnitDescriptorConversion(t *testing.T) {
	km := LinearUnit(Length, "km", "km", 1000)
	if km.ConvertToBase(2) != 2000 || km.ConvertFromBase(500) != 0.5 {
		t.Errorf("linear conversion wrong")
	}
	if km.IsBase() || km.IsAffine() {
		t.Errorf("km is neither base nor affine")
	}
	if !LinearUnit(Length, "m", "m", 1).IsBase() {
		t.Errorf("m should be base")
	}

	c := AffineUnit(Temperature, "c", "°C", 1, 273.15)
	if !c.IsAffine() || c.IsBase() {
		t.Errorf("celsius should be affine and not base")
	}
	if got := c.ConvertToBase(0); got != 273.15 {
		t.Errorf("0°C -> %v K", got)
	}
	if got := c.ConvertFromBase(273.15); got != 0 {
		t.Errorf("273.15 K -> %v °C", got)
	}
}
