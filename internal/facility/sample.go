package facility

// SamplePortfolio returns the built-in demonstration facility set. Callers
// that submit their own facility list bypass this entirely; the engine treats
// both sources identically.
func SamplePortfolio() []Facility {
	return []Facility{
		{
			ID: "FAC-001", Name: "Dangjin Power Complex", Company: "Hanbit Energy",
			Sector: SectorPower, Latitude: 36.98, Longitude: 126.62,
			Scope1: 18_500_000, Scope2: 120_000, Scope3: 950_000,
			Revenue: 2_400_000_000, EBITDA: 430_000_000, AssetValue: 5_200_000_000,
		},
		{
			ID: "FAC-002", Name: "Pohang Integrated Steelworks", Company: "Donghae Steel",
			Sector: SectorSteel, Latitude: 36.01, Longitude: 129.38,
			Scope1: 9_800_000, Scope2: 640_000, Scope3: 2_100_000,
			Revenue: 8_700_000_000, EBITDA: 1_050_000_000, AssetValue: 11_400_000_000,
		},
		{
			ID: "FAC-003", Name: "Danyang Cement Works", Company: "Sobaek Materials",
			Sector: SectorCement, Latitude: 36.98, Longitude: 128.37,
			Scope1: 3_200_000, Scope2: 95_000, Scope3: 310_000,
			Revenue: 640_000_000, EBITDA: 98_000_000, AssetValue: 1_150_000_000,
		},
		{
			ID: "FAC-004", Name: "Yeosu Petrochemical Plant", Company: "Namhae Chemicals",
			Sector: SectorPetrochemical, Latitude: 34.76, Longitude: 127.66,
			Scope1: 4_600_000, Scope2: 380_000, Scope3: 5_400_000,
			Revenue: 6_100_000_000, EBITDA: 720_000_000, AssetValue: 4_800_000_000,
		},
		{
			ID: "FAC-005", Name: "Ulsan Refinery", Company: "Taehwa Petroleum",
			Sector: SectorRefining, Latitude: 35.50, Longitude: 129.36,
			Scope1: 6_900_000, Scope2: 410_000, Scope3: 28_000_000,
			Revenue: 18_400_000_000, EBITDA: 1_350_000_000, AssetValue: 7_600_000_000,
		},
		{
			ID: "FAC-006", Name: "Geoje Shipyard", Company: "Okpo Heavy Industries",
			Sector: SectorShipbuilding, Latitude: 34.89, Longitude: 128.68,
			Scope1: 310_000, Scope2: 520_000, Scope3: 1_800_000,
			Revenue: 5_300_000_000, EBITDA: 290_000_000, AssetValue: 3_900_000_000,
		},
		{
			ID: "FAC-007", Name: "Hwaseong Assembly Plant", Company: "Kumkang Motors",
			Sector: SectorAutomotive, Latitude: 37.21, Longitude: 126.83,
			Scope1: 180_000, Scope2: 690_000, Scope3: 14_500_000,
			Revenue: 21_700_000_000, EBITDA: 1_900_000_000, AssetValue: 6_300_000_000,
		},
		{
			ID: "FAC-008", Name: "Cheongju Semiconductor Fab", Company: "Hanul Electronics",
			Sector: SectorElectronics, Latitude: 36.64, Longitude: 127.49,
			Scope1: 140_000, Scope2: 1_850_000, Scope3: 2_600_000,
			Revenue: 12_900_000_000, EBITDA: 3_400_000_000, AssetValue: 15_800_000_000,
		},
		{
			ID: "FAC-009", Name: "Sejong Precast Yard", Company: "Geum River Construction",
			Sector: SectorConstruction, Latitude: 36.48, Longitude: 127.29,
			Scope1: 95_000, Scope2: 60_000, Scope3: 3_900_000,
			Revenue: 2_800_000_000, EBITDA: 170_000_000, AssetValue: 940_000_000,
		},
		{
			ID: "FAC-010", Name: "Busan New Port Terminal", Company: "Haeun Logistics",
			Sector: SectorLogistics, Latitude: 35.08, Longitude: 128.83,
			Scope1: 240_000, Scope2: 110_000, Scope3: 4_200_000,
			Revenue: 1_900_000_000, EBITDA: 260_000_000, AssetValue: 2_700_000_000,
		},
	}
}
