package facility

// Region is a coarse six-way classification of a facility's coordinates into
// Korean climate-district archetypes. It selects baseline statistical
// parameters per hazard and is derived at query time, never stored.
type Region string

const (
	RegionCoastalSouth  Region = "coastal_south"
	RegionCoastalEast   Region = "coastal_east"
	RegionCoastalWest   Region = "coastal_west"
	RegionInlandCentral Region = "inland_central"
	RegionInlandSouth   Region = "inland_south"
	RegionMountain      Region = "mountain"
)

// Coastal reports whether the region touches the sea and is therefore exposed
// to sea-level rise.
func (r Region) Coastal() bool {
	switch r {
	case RegionCoastalSouth, RegionCoastalEast, RegionCoastalWest:
		return true
	}
	return false
}

// ClassifyRegion maps latitude/longitude onto a climate district. The rules
// are deliberately coarse: the mountainous Taebaek interior first, then the
// three coasts by longitude band, then the inland split at 36.5°N.
func ClassifyRegion(lat, lon float64) Region {
	// Gangwon highlands
	if lat >= 37.0 && lon >= 127.8 && lon < 129.0 {
		return RegionMountain
	}
	if lat < 35.5 && lon >= 126.5 && lon < 129.2 {
		return RegionCoastalSouth
	}
	if lon >= 129.0 {
		return RegionCoastalEast
	}
	if lon < 126.8 {
		return RegionCoastalWest
	}
	if lat < 36.5 {
		return RegionInlandSouth
	}
	return RegionInlandCentral
}
