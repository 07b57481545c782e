package catalog

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
)

var (
	_ ports.CatalogLoader = (*CsvLoader)(nil)
	_ ports.CatalogLoader = (*JsonLoader)(nil)
	_ ports.CatalogLoader = (*YamlLoader)(nil)
)

const csvCatalog = `# length and temperature
dimension,id,symbol,multiplier,offset
length,meter,m,1
Length,kilometer,km,1000,
temperature,kelvin,K,1
temperature,celsius,°C,1,273.15
volume,liter,l,0.001
length,furlong,fur,abc
`

func TestCsvLoader(t *testing.T) {
	units, result, err := NewCsvLoader().Load(context.Background(), strings.NewReader(csvCatalog))
	require.NoError(t, err)

	assert.Equal(t, 6, result.Total)
	assert.Equal(t, 4, result.Loaded)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "line 7: ")
	assert.Contains(t, result.Errors[0], "unknown dimension")
	assert.Contains(t, result.Errors[1], "line 8: ")
	assert.Contains(t, result.Errors[1], "invalid multiplier")

	require.Len(t, units, 4)
	assert.Equal(t, domain.Length, units[1].Dimension)
	assert.Equal(t, domain.UnitID("kilometer"), units[1].ID)
	assert.Equal(t, 1000.0, units[1].Multiplier)
	assert.False(t, units[1].IsAffine())

	celsius := units[3]
	require.True(t, celsius.IsAffine())
	assert.Equal(t, "°C", celsius.Symbol)
	assert.InDelta(t, 373.15, celsius.ConvertToBase(100), 1e-9)
	assert.InDelta(t, 0, celsius.ConvertFromBase(273.15), 1e-9)
}

func TestCsvLoaderReportsSourceLines(t *testing.T) {
	input := "dimension,id,symbol,multiplier\n" +
		"# skipped\n" +
		"length,m,m,1\n" +
		"length,\"bad\"x,b,2\n" +
		"length,km,\"k\nm\",1000\n" +
		"length,ft,ft,oops\n"

	units, result, err := NewCsvLoader().Load(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.Loaded)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "csv read error at line 4")
	assert.Contains(t, result.Errors[1], "line 7: ")

	require.Len(t, units, 2)
	assert.Equal(t, "k\nm", units[1].Symbol)
}

var errDiskGone = errors.New("disk gone")

// brokenReader 模拟读取过程中底层文件失效
type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errDiskGone }

func TestCsvLoaderStopsOnReadFailure(t *testing.T) {
	r := io.MultiReader(strings.NewReader("dimension,id,symbol,multiplier\nlength,m,m,1\n"), brokenReader{})

	units, result, err := NewCsvLoader().Load(context.Background(), r)
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskGone)
	assert.Contains(t, err.Error(), "read csv")

	require.Len(t, units, 1)
	assert.Equal(t, 1, result.Loaded)
	assert.Zero(t, result.Failed)
}

func TestCsvLoaderHeaders(t *testing.T) {
	_, _, err := NewCsvLoader().Load(context.Background(), strings.NewReader("dimension,symbol\nlength,m\n"))
	assert.ErrorContains(t, err, "missing required csv header: id")

	units, result, err := NewCsvLoader().Load(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, units)
	assert.Zero(t, result.Total)
}

func TestJsonLoader(t *testing.T) {
	input := `
	[
		{"dimension": "time", "id": "second", "symbol": "s", "multiplier": 1},
		{"dimension": "time", "id": "hour", "symbol": "hr", "multiplier": 3600},
		{"dimension": "temperature", "id": "fahrenheit", "symbol": "°F", "multiplier": 0.5555555555555556, "offset": 255.3722222222222},
		{"dimension": "time", "id": "", "symbol": "?", "multiplier": 2}
	]`

	units, result, err := NewJsonLoader().Load(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 3, result.Loaded)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Errors[0], "item 4")

	require.Len(t, units, 3)
	assert.Equal(t, 3600.0, units[1].Multiplier)
	f := units[2]
	require.True(t, f.IsAffine())
	assert.InDelta(t, 273.15, f.ConvertToBase(32), 1e-9)
}

func TestJsonLoaderSingleObject(t *testing.T) {
	units, result, err := NewJsonLoader().Load(context.Background(),
		strings.NewReader(`{"dimension": "mass", "id": "kilogram", "symbol": "kg", "multiplier": 1}`))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Loaded)
	require.Len(t, units, 1)
	assert.Equal(t, domain.Mass, units[0].Dimension)
}

func TestJsonLoaderErrors(t *testing.T) {
	_, _, err := NewJsonLoader().Load(context.Background(), strings.NewReader(`"nope"`))
	assert.ErrorContains(t, err, "unexpected JSON format")

	_, _, err = NewJsonLoader().Load(context.Background(), strings.NewReader(`[{"id": }]`))
	assert.ErrorContains(t, err, "decode error inside array")

	units, result, err := NewJsonLoader().Load(context.Background(), strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Empty(t, units)
	assert.Zero(t, result.Total)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = NewJsonLoader().Load(ctx, strings.NewReader(`[{"dimension": "mass", "id": "kilogram", "multiplier": 1}]`))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestYamlLoader(t *testing.T) {
	input := `
units:
  - dimension: digital_information
    id: bit
    symbol: bit
    multiplier: 1
  - dimension: digital information
    id: kibibyte
    symbol: KiB
    multiplier: 8192
  - dimension: temperature
    id: celsius
    symbol: "°C"
    multiplier: 1
    offset: 273.15
  - dimension: angle
    id: turn
    symbol: tr
`

	units, result, err := NewYamlLoader().Load(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 3, result.Loaded)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Errors[0], "multiplier is empty")

	require.Len(t, units, 3)
	assert.Equal(t, domain.DigitalInformation, units[1].Dimension)
	assert.Equal(t, 8192.0, units[1].Multiplier)
	assert.True(t, units[2].IsAffine())
	assert.InDelta(t, 273.15, units[2].ConvertToBase(0), 1e-12)
}

func TestYamlLoaderErrors(t *testing.T) {
	_, _, err := NewYamlLoader().Load(context.Background(), strings.NewReader("units: [oops"))
	assert.ErrorContains(t, err, "failed to decode yaml catalog")

	units, result, err := NewYamlLoader().Load(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, units)
	assert.Zero(t, result.Total)
}

func TestAffineRecordNeedsMultiplier(t *testing.T) {
	_, err := toDescriptor(rawRecord{Dimension: "temperature", ID: "x", Multiplier: "0", Offset: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)
}
