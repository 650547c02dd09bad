// Package islands holds the static island allocation dataset backing
// the capital-projects map. The figures are compiled from the budget
// communication and updated with each fiscal year; they are not served
// by the upstream API.
package islands

// Project is one named capital project on an island.
type Project struct {
	Name     string  `json:"name" example:"Princess Margaret Hospital Expansion"`
	Amount   float64 `json:"amount" example:"45000000"`
	Category string  `json:"category" example:"health"`
}

// Island is one island with its population, total allocation and
// headline capital projects.
type Island struct {
	ID         string    `json:"id" example:"new-providence"`
	Name       string    `json:"name" example:"New Providence"`
	Capital    string    `json:"capital" example:"Nassau"`
	Population int       `json:"population" example:"274400"`
	Allocation float64   `json:"allocation" example:"1500000000"`
	Projects   []Project `json:"projects"`
}

// ByID returns the island with the given identifier.
func ByID(id string) (Island, bool) {
	for _, island := range All {
		if island.ID == id {
			return island, true
		}
	}
	return Island{}, false
}

// All islands, ordered by population.
var All = []Island{
	{
		ID:         "new-providence",
		Name:       "New Providence",
		Capital:    "Nassau",
		Population: 274400,
		Allocation: 1_500_000_000,
		Projects: []Project{
			{Name: "Princess Margaret Hospital Expansion", Amount: 45_000_000, Category: "health"},
			{Name: "New Government Complex", Amount: 80_000_000, Category: "infrastructure"},
			{Name: "School Renovation Program", Amount: 25_000_000, Category: "education"},
			{Name: "Police Station Upgrades", Amount: 12_000_000, Category: "security"},
		},
	},
	{
		ID:         "grand-bahama",
		Name:       "Grand Bahama",
		Capital:    "Freeport",
		Population: 51368,
		Allocation: 280_000_000,
		Projects: []Project{
			{Name: "Rand Memorial Hospital Repairs", Amount: 18_000_000, Category: "health"},
			{Name: "Hurricane Recovery Infrastructure", Amount: 35_000_000, Category: "infrastructure"},
			{Name: "Eight Mile Rock Schools", Amount: 8_000_000, Category: "education"},
		},
	},
	{
		ID:         "abaco",
		Name:       "Abaco",
		Capital:    "Marsh Harbour",
		Population: 17224,
		Allocation: 150_000_000,
		Projects: []Project{
			{Name: "Dorian Recovery Reconstruction", Amount: 65_000_000, Category: "infrastructure"},
			{Name: "Marsh Harbour Clinic", Amount: 8_000_000, Category: "health"},
			{Name: "School Rebuilding", Amount: 12_000_000, Category: "education"},
		},
	},
	{
		ID:         "eleuthera",
		Name:       "Eleuthera",
		Capital:    "Governor's Harbour",
		Population: 11165,
		Allocation: 85_000_000,
		Projects: []Project{
			{Name: "Road Rehabilitation", Amount: 15_000_000, Category: "infrastructure"},
			{Name: "Glass Window Bridge Repair", Amount: 8_000_000, Category: "infrastructure"},
			{Name: "Community Clinics", Amount: 5_000_000, Category: "health"},
		},
	},
	{
		ID:         "exuma",
		Name:       "Exuma",
		Capital:    "George Town",
		Population: 7314,
		Allocation: 65_000_000,
		Projects: []Project{
			{Name: "Airport Expansion", Amount: 25_000_000, Category: "infrastructure"},
			{Name: "New School Construction", Amount: 12_000_000, Category: "education"},
		},
	},
	{
		ID:         "andros",
		Name:       "Andros",
		Capital:    "Fresh Creek",
		Population: 7386,
		Allocation: 55_000_000,
		Projects: []Project{
			{Name: "Road Network Improvements", Amount: 18_000_000, Category: "infrastructure"},
			{Name: "AUTEC Support Facilities", Amount: 10_000_000, Category: "security"},
		},
	},
	{
		ID:         "long-island",
		Name:       "Long Island",
		Capital:    "Clarence Town",
		Population: 3094,
		Allocation: 28_000_000,
		Projects: []Project{
			{Name: "Seawall Construction", Amount: 8_000_000, Category: "infrastructure"},
			{Name: "School Improvements", Amount: 3_000_000, Category: "education"},
		},
	},
	{
		ID:         "cat-island",
		Name:       "Cat Island",
		Capital:    "Arthur's Town",
		Population: 1522,
		Allocation: 22_000_000,
		Projects: []Project{
			{Name: "Airport Upgrades", Amount: 6_000_000, Category: "infrastructure"},
			{Name: "Healthcare Clinic", Amount: 4_000_000, Category: "health"},
		},
	},
}
