package facility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSector(t *testing.T) {
	sector, err := ParseSector("steel")
	assert.NoError(t, err)
	assert.Equal(t, SectorSteel, sector)

	_, err = ParseSector("aviation")
	assert.ErrorIs(t, err, ErrUnknownSector)
}

func TestClassifyRegion(t *testing.T) {
	cases := []struct {
		name string
		lat  float64
		lon  float64
		want Region
	}{
		{"dangjin west coast", 36.89, 126.63, RegionCoastalWest},
		{"pohang east coast", 36.03, 129.37, RegionCoastalEast},
		{"yeosu south coast", 34.76, 127.66, RegionCoastalSouth},
		{"busan south coast", 35.10, 129.04, RegionCoastalSouth},
		{"ulsan east coast", 35.54, 129.31, RegionCoastalEast},
		{"danyang mountains", 37.50, 128.30, RegionMountain},
		{"daejeon inland south", 36.35, 127.38, RegionInlandSouth},
		{"cheongju inland", 36.64, 127.49, RegionInlandCentral},
		{"gumi inland south", 36.12, 128.34, RegionInlandSouth},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyRegion(tc.lat, tc.lon))
		})
	}
}

func TestRegionCoastal(t *testing.T) {
	assert.True(t, RegionCoastalSouth.Coastal())
	assert.True(t, RegionCoastalEast.Coastal())
	assert.True(t, RegionCoastalWest.Coastal())
	assert.False(t, RegionInlandCentral.Coastal())
	assert.False(t, RegionMountain.Coastal())
}

func TestSamplePortfolio(t *testing.T) {
	portfolio := SamplePortfolio()

	assert.Len(t, portfolio, 10)
	seen := map[string]bool{}
	for _, f := range portfolio {
		assert.NotEmpty(t, f.ID)
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true

		_, err := ParseSector(string(f.Sector))
		assert.NoError(t, err, "facility %s", f.ID)
		assert.Greater(t, f.Scope1+f.Scope2, 0.0, "facility %s", f.ID)
		assert.Greater(t, f.Revenue, 0.0)
		assert.Greater(t, f.AssetValue, 0.0)
	}
}
