package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renjie/prism-units/pkg/catalog"
	"github.com/renjie/prism-units/pkg/core/domain"
)

func TestBuiltinCoversEveryDimension(t *testing.T) {
	perDim := make(map[domain.Dimension]int)
	bases := make(map[domain.Dimension][]domain.UnitID)
	for _, u := range catalog.Builtin() {
		require.True(t, u.Dimension.Valid(), u.ID)
		perDim[u.Dimension]++
		if u.IsBase() {
			bases[u.Dimension] = append(bases[u.Dimension], u.ID)
		}
	}

	want := map[domain.Dimension]domain.UnitID{
		domain.Length:             catalog.Meter,
		domain.Time:               catalog.Second,
		domain.Temperature:        catalog.Kelvin,
		domain.Mass:               catalog.Kilogram,
		domain.Current:            catalog.Ampere,
		domain.LuminousIntensity:  catalog.Candela,
		domain.SubstanceQuantity:  catalog.Single,
		domain.Angle:              catalog.Radian,
		domain.SolidAngle:         catalog.Steradian,
		domain.DigitalInformation: catalog.Bit,
	}
	for d, base := range want {
		assert.Positive(t, perDim[d], d.String())
		assert.Equal(t, []domain.UnitID{base}, bases[d], d.String())
	}
}

func TestBuiltinReturnsFreshSlice(t *testing.T) {
	a := catalog.Builtin()
	a[0].Symbol = "changed"
	assert.NotEqual(t, "changed", catalog.Builtin()[0].Symbol)
}

func TestBuiltinTemperatureUnits(t *testing.T) {
	units := make(map[domain.UnitID]domain.UnitDescriptor)
	for _, u := range catalog.Builtin() {
		if u.Dimension == domain.Temperature {
			units[u.ID] = u
		}
	}
	require.Len(t, units, 3)

	assert.False(t, units[catalog.Kelvin].IsAffine())
	assert.True(t, units[catalog.Celsius].IsAffine())
	assert.True(t, units[catalog.Fahrenheit].IsAffine())

	assert.Equal(t, 273.15, units[catalog.Celsius].ConvertToBase(0))
	assert.Equal(t, 273.15, units[catalog.Fahrenheit].ConvertToBase(32))
	assert.InDelta(t, -40, units[catalog.Fahrenheit].ConvertFromBase(units[catalog.Celsius].ConvertToBase(-40)), 1e-9)
}

func TestKindsAreUnique(t *testing.T) {
	names := make(map[domain.Kind]bool)
	patterns := make(map[domain.Pattern]domain.Kind)
	for _, def := range catalog.Kinds() {
		assert.False(t, names[def.Kind], "duplicate kind %s", def.Kind)
		names[def.Kind] = true

		other, dup := patterns[def.Pattern]
		assert.False(t, dup, "%s shares its pattern with %s", def.Kind, other)
		patterns[def.Pattern] = def.Kind

		assert.True(t, def.Pattern.Valid(), def.Kind)
	}
	assert.True(t, names[domain.KindDimensionless])
	assert.False(t, names[domain.KindDerived])
}
