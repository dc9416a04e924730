// Package facility defines the unit of analysis for the risk engine: an
// industrial facility with its sector, location and financial baseline.
package facility

import "errors"

// Sector is the closed set of industry categories the engine models.
type Sector string

const (
	SectorPower         Sector = "power"
	SectorSteel         Sector = "steel"
	SectorCement        Sector = "cement"
	SectorPetrochemical Sector = "petrochemical"
	SectorRefining      Sector = "refining"
	SectorShipbuilding  Sector = "shipbuilding"
	SectorAutomotive    Sector = "automotive"
	SectorElectronics   Sector = "electronics"
	SectorConstruction  Sector = "construction"
	SectorLogistics     Sector = "logistics"
)

// ErrUnknownSector is returned by ParseSector for identifiers outside the
// closed set. Internal cost/intensity lookups fall back to published default
// constants instead of failing.
var ErrUnknownSector = errors.New("unknown_sector")

// Sectors lists every modeled sector in a fixed order.
func Sectors() []Sector {
	return []Sector{
		SectorPower, SectorSteel, SectorCement, SectorPetrochemical,
		SectorRefining, SectorShipbuilding, SectorAutomotive,
		SectorElectronics, SectorConstruction, SectorLogistics,
	}
}

// ParseSector validates an externally supplied sector string.
func ParseSector(raw string) (Sector, error) {
	s := Sector(raw)
	for _, known := range Sectors() {
		if s == known {
			return s, nil
		}
	}
	return "", ErrUnknownSector
}

// Facility is a read-only value object describing one industrial site.
// Emissions are annual tCO2e; financial figures are annual USD.
type Facility struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Company    string  `json:"company"`
	Sector     Sector  `json:"sector"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Scope1     float64 `json:"scope1_emissions"`
	Scope2     float64 `json:"scope2_emissions"`
	Scope3     float64 `json:"scope3_emissions"`
	Revenue    float64 `json:"annual_revenue"`
	EBITDA     float64 `json:"ebitda"`
	AssetValue float64 `json:"asset_value"`
}
