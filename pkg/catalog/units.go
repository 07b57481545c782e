// Package catalog holds the built-in unit catalog and named kinds.
// It is a static data table; the registry validates it at load time.
package catalog

import (
	"math"

	"github.com/renjie/prism-units/pkg/core/domain"
)

// Length
const (
	Picometer        domain.UnitID = "picometer"
	Nanometer        domain.UnitID = "nanometer"
	Micrometer       domain.UnitID = "micrometer"
	Millimeter       domain.UnitID = "millimeter"
	Centimeter       domain.UnitID = "centimeter"
	Decimeter        domain.UnitID = "decimeter"
	Meter            domain.UnitID = "meter"
	Kilometer        domain.UnitID = "kilometer"
	AstronomicalUnit domain.UnitID = "astronomical_unit"
	Lightyear        domain.UnitID = "lightyear"
	Parsec           domain.UnitID = "parsec"
	Inch             domain.UnitID = "inch"
	Foot             domain.UnitID = "foot"
	Yard             domain.UnitID = "yard"
	Mile             domain.UnitID = "mile"
)

// Time
const (
	Picosecond    domain.UnitID = "picosecond"
	Nanosecond    domain.UnitID = "nanosecond"
	Microsecond   domain.UnitID = "microsecond"
	Millisecond   domain.UnitID = "millisecond"
	Second        domain.UnitID = "second"
	Minute        domain.UnitID = "minute"
	Hour          domain.UnitID = "hour"
	Day           domain.UnitID = "day"
	Month         domain.UnitID = "month"
	Year          domain.UnitID = "year"
	AgeOfUniverse domain.UnitID = "age_of_universe"
)

// Temperature
const (
	Kelvin     domain.UnitID = "kelvin"
	Celsius    domain.UnitID = "celsius"
	Fahrenheit domain.UnitID = "fahrenheit"
)

// Mass
const (
	Picogram  domain.UnitID = "picogram"
	Nanogram  domain.UnitID = "nanogram"
	Microgram domain.UnitID = "microgram"
	Milligram domain.UnitID = "milligram"
	Gram      domain.UnitID = "gram"
	Kilogram  domain.UnitID = "kilogram"
	Tonne     domain.UnitID = "tonne"
	Ounce     domain.UnitID = "ounce"
	Pound     domain.UnitID = "pound"
	ShortTon  domain.UnitID = "short_ton"
	LongTon   domain.UnitID = "long_ton"
)

// Current
const (
	Nanoampere  domain.UnitID = "nanoampere"
	Microampere domain.UnitID = "microampere"
	Milliampere domain.UnitID = "milliampere"
	Ampere      domain.UnitID = "ampere"
	Kiloampere  domain.UnitID = "kiloampere"
)

// Luminous intensity
const (
	Candela     domain.UnitID = "candela"
	Candlepower domain.UnitID = "candlepower"
	Hefnerkerze domain.UnitID = "hefnerkerze"
)

// Substance quantity
const (
	Single domain.UnitID = "single"
	Mole   domain.UnitID = "mole"
)

// Angle
const (
	Arcsecond   domain.UnitID = "arcsecond"
	Arcminute   domain.UnitID = "arcminute"
	Degree      domain.UnitID = "degree"
	Milliradian domain.UnitID = "milliradian"
	Radian      domain.UnitID = "radian"
	Gradian     domain.UnitID = "gradian"
)

// Solid angle
const (
	SquareArcsecond domain.UnitID = "square_arcsecond"
	SquareArcminute domain.UnitID = "square_arcminute"
	SquareDegree    domain.UnitID = "square_degree"
	Steradian       domain.UnitID = "steradian"
)

// Digital information
const (
	Bit      domain.UnitID = "bit"
	Byte     domain.UnitID = "byte"
	Kilobit  domain.UnitID = "kilobit"
	Kibibit  domain.UnitID = "kibibit"
	Kilobyte domain.UnitID = "kilobyte"
	Kibibyte domain.UnitID = "kibibyte"
	Megabit  domain.UnitID = "megabit"
	Mebibit  domain.UnitID = "mebibit"
	Megabyte domain.UnitID = "megabyte"
	Mebibyte domain.UnitID = "mebibyte"
	Gigabit  domain.UnitID = "gigabit"
	Gibibit  domain.UnitID = "gibibit"
	Gigabyte domain.UnitID = "gigabyte"
	Gibibyte domain.UnitID = "gibibyte"
	Terabit  domain.UnitID = "terabit"
	Tebibit  domain.UnitID = "tebibit"
	Terabyte domain.UnitID = "terabyte"
	Tebibyte domain.UnitID = "tebibyte"
	Petabit  domain.UnitID = "petabit"
	Pebibit  domain.UnitID = "pebibit"
	Petabyte domain.UnitID = "petabyte"
	Pebibyte domain.UnitID = "pebibyte"
	Exabit   domain.UnitID = "exabit"
	Exbibit  domain.UnitID = "exbibit"
	Exabyte  domain.UnitID = "exabyte"
	Exbibyte domain.UnitID = "exbibyte"
)

// SI and binary prefixes used by the tables below.
const (
	kilo = 1e3
	kibi = 1024.0
)

func linear(dim domain.Dimension) func(domain.UnitID, string, float64) domain.UnitDescriptor {
	return func(id domain.UnitID, symbol string, multiplier float64) domain.UnitDescriptor {
		return domain.LinearUnit(dim, id, symbol, multiplier)
	}
}

// Builtin returns the built-in catalog, ordered by dimension and then by size.
// Each call returns a fresh slice.
func Builtin() []domain.UnitDescriptor {
	var out []domain.UnitDescriptor

	l := linear(domain.Length)
	out = append(out,
		l(Picometer, "pm", 1e-12),
		l(Nanometer, "nm", 1e-9),
		l(Micrometer, "μm", 1e-6),
		l(Millimeter, "mm", 1e-3),
		l(Centimeter, "cm", 0.01),
		l(Decimeter, "dm", 0.1),
		l(Meter, "m", 1),
		l(Kilometer, "km", 1000),
		l(AstronomicalUnit, "au", 1.495978707e11),
		l(Lightyear, "ly", 9.4607304725808e15),
		l(Parsec, "pc", 3.085677581e16),
		l(Inch, "in", 0.0254),
		l(Foot, "ft", 0.3048),
		l(Yard, "yd", 0.9144),
		l(Mile, "mi", 1609.34),
	)

	t := linear(domain.Time)
	out = append(out,
		t(Picosecond, "ps", 1e-12),
		t(Nanosecond, "ns", 1e-9),
		t(Microsecond, "μs", 1e-6),
		t(Millisecond, "ms", 1e-3),
		t(Second, "s", 1),
		t(Minute, "min", 60),
		t(Hour, "hr", 3600),
		t(Day, "day", 86400),
		t(Month, "month", 2629800), // 365.25 / 12 days
		t(Year, "yr", 31557600),
		t(AgeOfUniverse, "AgeOfUniverse", 4.348e17),
	)

	out = append(out,
		domain.LinearUnit(domain.Temperature, Kelvin, "K", 1),
		domain.UnitDescriptor{
			Dimension:  domain.Temperature,
			ID:         Celsius,
			Symbol:     "°C",
			Multiplier: 1,
			ToBase:     func(v float64) float64 { return v + 273.15 },
			FromBase:   func(v float64) float64 { return v - 273.15 },
		},
		domain.UnitDescriptor{
			Dimension:  domain.Temperature,
			ID:         Fahrenheit,
			Symbol:     "°F",
			Multiplier: 5.0 / 9.0,
			ToBase:     func(v float64) float64 { return (v-32)*(5.0/9.0) + 273.15 },
			FromBase:   func(v float64) float64 { return (v-273.15)*(9.0/5.0) + 32 },
		},
	)

	m := linear(domain.Mass)
	out = append(out,
		m(Picogram, "pg", 1e-15),
		m(Nanogram, "ng", 1e-12),
		m(Microgram, "μg", 1e-9),
		m(Milligram, "mg", 1e-6),
		m(Gram, "g", 1e-3),
		m(Kilogram, "kg", 1),
		m(Tonne, "t", 1000),
		m(Ounce, "oz", 0.0283495),
		m(Pound, "lb", 0.453592),
		m(ShortTon, "shortton", 907.185),
		m(LongTon, "longton", 1016.05),
	)

	c := linear(domain.Current)
	out = append(out,
		c(Nanoampere, "nA", 1e-9),
		c(Microampere, "μA", 1e-6),
		c(Milliampere, "mA", 1e-3),
		c(Ampere, "A", 1),
		c(Kiloampere, "kA", 1e3),
	)

	li := linear(domain.LuminousIntensity)
	out = append(out,
		li(Candela, "cd", 1),
		li(Candlepower, "cp", 0.981),
		li(Hefnerkerze, "HK", 0.920),
	)

	sq := linear(domain.SubstanceQuantity)
	out = append(out,
		sq(Single, "", 1),
		sq(Mole, "mol", 6.022e23),
	)

	a := linear(domain.Angle)
	out = append(out,
		a(Arcsecond, "″", math.Pi/180/60/60),
		a(Arcminute, "′", math.Pi/180/60),
		a(Degree, "°", math.Pi/180),
		a(Milliradian, "mrad", 1e-3),
		a(Radian, "rad", 1),
		a(Gradian, "grad", math.Pi/200),
	)

	sa := linear(domain.SolidAngle)
	out = append(out,
		sa(SquareArcsecond, "arcsec²", math.Pow(math.Pi/(60*60*180), 2)),
		sa(SquareArcminute, "arcmin²", math.Pow(math.Pi/(60*180), 2)),
		sa(SquareDegree, "deg²", math.Pow(math.Pi/180, 2)),
		sa(Steradian, "sr", 1),
	)

	d := linear(domain.DigitalInformation)
	out = append(out,
		d(Bit, "bit", 1),
		d(Byte, "B", 8),
		d(Kilobit, "Kb", kilo),
		d(Kibibit, "Kib", kibi),
		d(Kilobyte, "KB", 8*kilo),
		d(Kibibyte, "KiB", 8*kibi),
		d(Megabit, "Mb", math.Pow(kilo, 2)),
		d(Mebibit, "Mib", math.Pow(kibi, 2)),
		d(Megabyte, "MB", 8*math.Pow(kilo, 2)),
		d(Mebibyte, "MiB", 8*math.Pow(kibi, 2)),
		d(Gigabit, "Gb", math.Pow(kilo, 3)),
		d(Gibibit, "Gib", math.Pow(kibi, 3)),
		d(Gigabyte, "GB", 8*math.Pow(kilo, 3)),
		d(Gibibyte, "GiB", 8*math.Pow(kibi, 3)),
		d(Terabit, "Tb", math.Pow(kilo, 4)),
		d(Tebibit, "Tib", math.Pow(kibi, 4)),
		d(Terabyte, "TB", 8*math.Pow(kilo, 4)),
		d(Tebibyte, "TiB", 8*math.Pow(kibi, 4)),
		d(Petabit, "Pb", math.Pow(kilo, 5)),
		d(Pebibit, "Pib", math.Pow(kibi, 5)),
		d(Petabyte, "PB", 8*math.Pow(kilo, 5)),
		d(Pebibyte, "PiB", 8*math.Pow(kibi, 5)),
		d(Exabit, "Eb", math.Pow(kilo, 6)),
		d(Exbibit, "Eib", math.Pow(kibi, 6)),
		d(Exabyte, "EB", 8*math.Pow(kilo, 6)),
		d(Exbibyte, "EiB", 8*math.Pow(kibi, 6)),
	)

	return out
}
