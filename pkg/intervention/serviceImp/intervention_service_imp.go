package serviceImp

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"arboria/entities"
	"arboria/pkg/apperr"
	repo "arboria/pkg/intervention/repository"
	"arboria/pkg/intervention/service"
	treerepo "arboria/pkg/tree/repository"
)

var validTypes = map[string]bool{
	"watering": true, "treatment": true, "pruning": true,
	"harvest": true, "fertilization": true, "observation": true,
}

type interventionSvc struct {
	r     repo.InterventionRepository
	trees treerepo.TreeRepository
	now   func() time.Time
}

func New(r repo.InterventionRepository, trees treerepo.TreeRepository) service.InterventionService {
	return &interventionSvc{r: r, trees: trees, now: time.Now}
}

func (s *interventionSvc) Create(iv *entities.Intervention) (*entities.Intervention, error) {
	if !validTypes[iv.Type] {
		return nil, apperr.Newf(apperr.Validation, "unknown intervention type %q", iv.Type)
	}
	if _, err := s.trees.FindByID(iv.TreeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "tree not found")
		}
		return nil, apperr.Wrap(apperr.Store, "load tree", err)
	}
	iv.ID = uuid.NewString()
	if iv.Date == "" {
		iv.Date = s.now().UTC().Format(time.RFC3339)
	}
	if err := s.r.Create(iv); err != nil {
		return nil, apperr.Wrap(apperr.Store, "create intervention", err)
	}
	return iv, nil
}

func (s *interventionSvc) Get(id string) (*entities.Intervention, error) {
	iv, err := s.r.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "intervention not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "load intervention", err)
	}
	return iv, nil
}

func (s *interventionSvc) List(treeID string) ([]entities.Intervention, error) {
	out, err := s.r.List(treeID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "list interventions", err)
	}
	return out, nil
}

func (s *interventionSvc) Delete(id string) error {
	n, err := s.r.Delete(id)
	if err != nil {
		return apperr.Wrap(apperr.Store, "delete intervention", err)
	}
	if n == 0 {
		return apperr.New(apperr.NotFound, "intervention not found")
	}
	return nil
}
