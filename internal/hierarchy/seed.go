package hierarchy

import "github.com/shenikar/relief_coordination_system/internal/models"

type seedDistrict struct {
	id   int
	name string
}

type seedProvince struct {
	id        int
	name      string
	districts []seedDistrict
}

// Must stay in sync with migrations/000002_seed_authorities.up.sql.
var defaultProvinces = []seedProvince{
	{1, "Punjab", []seedDistrict{{1, "Lahore"}, {2, "Faisalabad"}, {3, "Multan"}, {4, "Gujranwala"}, {5, "Rawalpindi"}}},
	{2, "Sindh", []seedDistrict{{6, "Karachi"}, {7, "Hyderabad"}, {8, "Sukkur"}, {9, "Dadu"}}},
	{3, "Khyber Pakhtunkhwa", []seedDistrict{{10, "Peshawar"}, {11, "Swat"}, {12, "Nowshera"}, {13, "Charsadda"}}},
	{4, "Balochistan", []seedDistrict{{14, "Quetta"}, {15, "Jaffarabad"}, {16, "Gwadar"}}},
	{5, "Gilgit-Baltistan", []seedDistrict{{17, "Gilgit"}, {18, "Skardu"}}},
	{6, "Azad Jammu and Kashmir", []seedDistrict{{19, "Muzaffarabad"}, {20, "Neelum"}}},
}

// DefaultAuthorities returns the built-in tree used by the in-memory driver.
func DefaultAuthorities() []models.Authority {
	out := []models.Authority{{
		ID:   models.NDMAID,
		Tier: models.TierNDMA,
		Name: "National Disaster Management Authority",
	}}
	for _, p := range defaultProvinces {
		out = append(out, models.Authority{
			ID:         models.PDMAID(p.id),
			Tier:       models.TierPDMA,
			ProvinceID: p.id,
			Name:       "PDMA " + p.name,
		})
		for _, d := range p.districts {
			out = append(out, models.Authority{
				ID:         models.DistrictAuthorityID(p.id, d.id),
				Tier:       models.TierDistrict,
				ProvinceID: p.id,
				DistrictID: d.id,
				Name:       d.name,
			})
		}
	}
	return out
}

// MustDefault builds the directory from DefaultAuthorities.
func MustDefault() *Directory {
	d, err := New(DefaultAuthorities())
	if err != nil {
		panic(err)
	}
	return d
}
