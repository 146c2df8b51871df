package repository

import "arboria/entities"

type SearchFilter struct {
	FarmID  string
	Health  string // "" or "all" disables the filter
	Species string // case-insensitive substring
}

type TreeRepository interface {
	Create(t *entities.Tree) error
	FindByID(id string) (*entities.Tree, error)
	// FindByPosition returns nil, nil when the slot is free.
	FindByPosition(farmID, position string) (*entities.Tree, error)
	List(farmID string) ([]entities.Tree, error)
	Search(f SearchFilter) ([]entities.Tree, error)
	Save(t *entities.Tree) error
	// UpdateFields applies a partial column set and reports how many rows matched.
	UpdateFields(id string, fields map[string]any) (int64, error)
	// DeleteCascade removes the tree's interventions, then the tree, in one transaction.
	DeleteCascade(id string) error
}
