package repository

import "arboria/entities"

type FarmRepository interface {
	Create(f *entities.Farm) error
	FindByID(id string) (*entities.Farm, error)
	List() ([]entities.Farm, error)
	Save(f *entities.Farm) error
	// DeleteCascade removes the farm's interventions, then its trees, then
	// the farm row, inside one transaction.
	DeleteCascade(id string) error
}
