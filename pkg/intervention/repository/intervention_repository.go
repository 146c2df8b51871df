package repository

import "arboria/entities"

type InterventionRepository interface {
	Create(iv *entities.Intervention) error
	FindByID(id string) (*entities.Intervention, error)
	// List returns interventions, newest event first; empty treeID lists all.
	List(treeID string) ([]entities.Intervention, error)
	ListByTreeIDs(treeIDs []string) ([]entities.Intervention, error)
	Delete(id string) (int64, error)
}
