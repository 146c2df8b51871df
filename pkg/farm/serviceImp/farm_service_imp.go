package serviceImp

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"arboria/entities"
	"arboria/pkg/apperr"
	repo "arboria/pkg/farm/repository"
	"arboria/pkg/farm/service"
)

const defaultGridSize = 20

type farmSvc struct{ r repo.FarmRepository }

func New(r repo.FarmRepository) service.FarmService { return &farmSvc{r} }

func (s *farmSvc) Create(f *entities.Farm) (*entities.Farm, error) {
	if f.Name == "" {
		return nil, apperr.New(apperr.Validation, "farm name is required")
	}
	if f.GridRows <= 0 {
		f.GridRows = defaultGridSize
	}
	if f.GridCols <= 0 {
		f.GridCols = defaultGridSize
	}
	f.ID = uuid.NewString()
	if err := s.r.Create(f); err != nil {
		return nil, apperr.Wrap(apperr.Store, "create farm", err)
	}
	return f, nil
}

func (s *farmSvc) Get(id string) (*entities.Farm, error) {
	f, err := s.r.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "farm not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "load farm", err)
	}
	return f, nil
}

func (s *farmSvc) List() ([]entities.Farm, error) {
	out, err := s.r.List()
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "list farms", err)
	}
	return out, nil
}

func (s *farmSvc) UpdatePartial(id string, p service.FarmPatch) (*entities.Farm, error) {
	cur, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.GPSCoords != nil {
		cur.GPSCoords = p.GPSCoords
	}
	if p.GridRows != nil {
		cur.GridRows = *p.GridRows
	}
	if p.GridCols != nil {
		cur.GridCols = *p.GridCols
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if err := s.r.Save(cur); err != nil {
		return nil, apperr.Wrap(apperr.Store, "update farm", err)
	}
	return cur, nil
}

func (s *farmSvc) Delete(id string) error {
	err := s.r.DeleteCascade(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "farm not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Store, "delete farm", err)
	}
	return nil
}
