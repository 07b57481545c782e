package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renjie/prism-units/pkg/catalog"
	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
	"github.com/renjie/prism-units/pkg/core/services"
)

var _ ports.KindResolver = (*services.KindTable)(nil)

func TestKindTableBuiltinIsUnambiguous(t *testing.T) {
	table, err := services.NewKindTable(catalog.Kinds()...)
	require.NoError(t, err)

	defs := table.Definitions()
	assert.Len(t, defs, len(catalog.Kinds()))

	for _, d := range domain.Dimensions() {
		kind, ok := table.Lookup(domain.BaseVector(d, "u").Pattern())
		require.True(t, ok, d.String())
		assert.Equal(t, domain.BaseKind(d), kind)
	}

	kind, ok := table.Lookup(domain.Pattern{})
	require.True(t, ok)
	assert.Equal(t, domain.KindDimensionless, kind)
}

func TestKindTableRejectsBadDefinitions(t *testing.T) {
	area := domain.NewPattern(map[domain.Dimension]int{domain.Length: 2})

	tests := []struct {
		name string
		defs []domain.KindDefinition
		want error
	}{
		{
			name: "shared pattern",
			defs: []domain.KindDefinition{{Kind: "Area", Pattern: area}, {Kind: "Surface", Pattern: area}},
			want: domain.ErrAmbiguousKind,
		},
		{
			name: "duplicate name",
			defs: []domain.KindDefinition{{Kind: "Area", Pattern: area}, {Kind: "Area"}},
			want: domain.ErrAmbiguousKind,
		},
		{
			name: "reserved name",
			defs: []domain.KindDefinition{{Kind: domain.KindDerived, Pattern: area}},
			want: domain.ErrAmbiguousKind,
		},
		{
			name: "empty name",
			defs: []domain.KindDefinition{{Pattern: area}},
			want: domain.ErrAmbiguousKind,
		},
		{
			name: "overflowed pattern",
			defs: []domain.KindDefinition{{Kind: "Huge", Pattern: domain.NewPattern(map[domain.Dimension]int{domain.Length: 9})}},
			want: domain.ErrExponentOverflow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.NewKindTable(tt.defs...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestKindTableResolve(t *testing.T) {
	table, err := services.NewKindTable(catalog.Kinds()...)
	require.NoError(t, err)

	speed, err := domain.Combine(domain.BaseVector(domain.Length, "m"), domain.BaseVector(domain.Time, "s"), domain.OpDivide)
	require.NoError(t, err)
	q, err := table.Resolve(speed, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.KindSpeed, q.Kind())
	assert.Equal(t, speed, q.Vector())
	assert.Equal(t, 3.0, q.Magnitude())

	odd := domain.Vector{domain.Temperature: {Exp: 3, Unit: "K"}}
	q, err = table.Resolve(odd, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.KindDerived, q.Kind())
	assert.Equal(t, odd, q.Vector())

	overflow := domain.Vector{domain.Length: {Exp: domain.InvalidExponent, Unit: "m"}}
	_, err = table.Resolve(overflow, 1)
	assert.ErrorIs(t, err, domain.ErrExponentOverflow)
}
