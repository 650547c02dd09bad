package viewmodel

import (
	"github.com/budgetglass/backend/internal/islands"
)

// IslandProjectView is one capital project ready for display.
type IslandProjectView struct {
	Name     string `json:"name"`
	Category string `json:"category" example:"health"`
	Amount   Amount `json:"amount"`
}

// IslandView is one island with its derived per-capita figure.
type IslandView struct {
	ID         string              `json:"id" example:"new-providence"`
	Name       string              `json:"name"`
	Capital    string              `json:"capital" example:"Nassau"`
	Population int                 `json:"population" example:"274400"`
	Allocation Amount              `json:"allocation"`
	PerCapita  Amount              `json:"per_capita"`
	Projects   []IslandProjectView `json:"projects"`
}

// NewIslandView derives the per-capita allocation for one island.
func NewIslandView(island islands.Island) IslandView {
	projects := make([]IslandProjectView, 0, len(island.Projects))
	for _, project := range island.Projects {
		projects = append(projects, IslandProjectView{
			Name:     project.Name,
			Category: project.Category,
			Amount:   NewAmount(project.Amount),
		})
	}

	return IslandView{
		ID:         island.ID,
		Name:       island.Name,
		Capital:    island.Capital,
		Population: island.Population,
		Allocation: NewAmount(island.Allocation),
		PerCapita:  PerCapita(island.Allocation, island.Population),
		Projects:   projects,
	}
}
