package service

import "arboria/entities"

// TreePatch carries a partial update; only non-nil fields are applied.
type TreePatch struct {
	Position  *string             `json:"position"`
	Species   *string             `json:"species"`
	Variety   *string             `json:"variety"`
	PlantDate *string             `json:"plant_date"`
	Health    *string             `json:"health"`
	Notes     *string             `json:"notes"`
	Photo     *string             `json:"photo"`
	Photos    *[]string           `json:"photos"`
	GPSCoords *entities.GPSCoords `json:"gps_coords"`
	Synced    *bool               `json:"synced"`
	Origin    *string             `json:"origin"`
}

type SearchQuery struct {
	FarmID  string
	Query   string // free text over species/variety/position/notes
	Health  string
	Species string
}

type TreeService interface {
	Create(t *entities.Tree) (*entities.Tree, error)
	Get(id string) (*entities.Tree, error)
	List(farmID string) ([]entities.Tree, error)
	Search(q SearchQuery) ([]entities.Tree, error)
	UpdatePartial(id string, p TreePatch) (*entities.Tree, error)
	Delete(id string) error

	Duplicate(sourceID, targetPosition, targetFarmID string) (*entities.Tree, error)

	AddPhoto(id, blob string) (int, error)
	RemovePhoto(id string, index int) (int, error)
}
