package service

import "arboria/entities"

type InterventionService interface {
	Create(iv *entities.Intervention) (*entities.Intervention, error)
	Get(id string) (*entities.Intervention, error)
	List(treeID string) ([]entities.Intervention, error)
	Delete(id string) error
}
