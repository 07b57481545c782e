package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renjie/prism-units/pkg/catalog"
	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/services"
)

func TestCompositeSymbol(t *testing.T) {
	registry, err := services.NewUnitRegistry(catalog.Builtin(), services.WithRegistryLogger(quietLogger()))
	require.NoError(t, err)

	tests := []struct {
		name string
		v    domain.Vector
		want string
	}{
		{"dimensionless", domain.Vector{}, ""},
		{"base", domain.BaseVector(domain.Length, catalog.Meter), "m"},
		{"volume", domain.Vector{domain.Length: {Exp: 3, Unit: catalog.Centimeter}}, "cm³"},
		{"acceleration", domain.Vector{
			domain.Length: {Exp: 1, Unit: catalog.Meter},
			domain.Time:   {Exp: -2, Unit: catalog.Second},
		}, "m/s²"},
		{"data rate", domain.Vector{
			domain.Time:               {Exp: -1, Unit: catalog.Second},
			domain.DigitalInformation: {Exp: 1, Unit: catalog.Megabyte},
		}, "MB/s"},
		{"two denominators", domain.Vector{
			domain.Length: {Exp: -1, Unit: catalog.Meter},
			domain.Time:   {Exp: -1, Unit: catalog.Second},
		}, "1/(m·s)"},
		{"fifth power", domain.Vector{domain.Mass: {Exp: -5, Unit: catalog.Gram}}, "1/g⁵"},
		{"symbolless numerator", domain.Vector{
			domain.Length:            {Exp: -1, Unit: catalog.Meter},
			domain.SubstanceQuantity: {Exp: 1, Unit: catalog.Single},
		}, "1/m"},
		{"symbolless factor dropped", domain.Vector{
			domain.Length:            {Exp: 1, Unit: catalog.Meter},
			domain.SubstanceQuantity: {Exp: 1, Unit: catalog.Single},
		}, "m"},
		{"symbolless denominator", domain.Vector{
			domain.SubstanceQuantity: {Exp: -1, Unit: catalog.Single},
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.CompositeSymbol(registry, tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = services.CompositeSymbol(registry, domain.Vector{domain.Length: {Exp: domain.InvalidExponent, Unit: catalog.Meter}})
	assert.ErrorIs(t, err, domain.ErrExponentOverflow)

	_, err = services.CompositeSymbol(registry, domain.Vector{domain.Length: {Exp: 2, Unit: "furlong"}})
	assert.ErrorIs(t, err, domain.ErrUnregisteredUnit)
}

func TestSymbolOfCountPerLength(t *testing.T) {
	e := newTestEngine(t)
	count := mustQuantity(t, e, domain.SubstanceQuantity, catalog.Single, 6)
	span := mustQuantity(t, e, domain.Length, catalog.Meter, 2)

	q, err := e.Divide(count, span)
	require.NoError(t, err)
	assert.Equal(t, domain.KindDerived, q.Kind())
	assert.InDelta(t, 3.0, q.Magnitude(), 1e-12)

	sym, err := e.Symbol(q)
	require.NoError(t, err)
	assert.Equal(t, "1/m", sym)
}
