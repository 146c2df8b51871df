package service

import "arboria/entities"

// FarmPatch carries a partial update; only non-nil fields are applied, so an
// omitted field is never conflated with "set to empty".
type FarmPatch struct {
	Name        *string             `json:"name"`
	GPSCoords   *entities.GPSCoords `json:"gps_coords"`
	GridRows    *int                `json:"grid_rows"`
	GridCols    *int                `json:"grid_cols"`
	Description *string             `json:"description"`
}

type FarmService interface {
	Create(f *entities.Farm) (*entities.Farm, error)
	Get(id string) (*entities.Farm, error)
	List() ([]entities.Farm, error)
	UpdatePartial(id string, p FarmPatch) (*entities.Farm, error)
	Delete(id string) error
}
