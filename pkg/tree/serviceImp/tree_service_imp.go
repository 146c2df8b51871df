package serviceImp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"arboria/entities"
	"arboria/pkg/apperr"
	repo "arboria/pkg/tree/repository"
	"arboria/pkg/tree/service"
)

type treeSvc struct {
	r   repo.TreeRepository
	now func() time.Time
}

func New(r repo.TreeRepository) service.TreeService {
	return &treeSvc{r: r, now: time.Now}
}

func (s *treeSvc) Create(t *entities.Tree) (*entities.Tree, error) {
	if t.FarmID == "" || t.Position == "" {
		return nil, apperr.New(apperr.Validation, "farm_id and position are required")
	}
	// fast-fail pre-check; the unique index remains the arbiter under races
	existing, err := s.r.FindByPosition(t.FarmID, t.Position)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "check position", err)
	}
	if existing != nil {
		return nil, apperr.Newf(apperr.PositionConflict, "a tree already exists at position %s", t.Position)
	}

	t.ID = uuid.NewString()
	if t.Photos == nil {
		t.Photos = []string{}
		if t.Photo != "" {
			t.Photos = append(t.Photos, t.Photo)
		}
	}
	if err := s.r.Create(t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Newf(apperr.PositionConflict, "a tree already exists at position %s", t.Position)
		}
		return nil, apperr.Wrap(apperr.Store, "create tree", err)
	}
	return t, nil
}

func (s *treeSvc) Get(id string) (*entities.Tree, error) {
	t, err := s.r.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "tree not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "load tree", err)
	}
	return t, nil
}

func (s *treeSvc) List(farmID string) ([]entities.Tree, error) {
	out, err := s.r.List(farmID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "list trees", err)
	}
	return out, nil
}

func (s *treeSvc) Search(q service.SearchQuery) ([]entities.Tree, error) {
	trees, err := s.r.Search(repo.SearchFilter{FarmID: q.FarmID, Health: q.Health, Species: q.Species})
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "search trees", err)
	}
	if q.Query == "" {
		return trees, nil
	}
	needle := strings.ToLower(q.Query)
	var out []entities.Tree
	for _, t := range trees {
		hay := strings.ToLower(t.Species + " " + t.Variety + " " + t.Position + " " + t.Notes)
		if strings.Contains(hay, needle) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *treeSvc) UpdatePartial(id string, p service.TreePatch) (*entities.Tree, error) {
	cur, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if p.Position != nil {
		cur.Position = *p.Position
	}
	if p.Species != nil {
		cur.Species = *p.Species
	}
	if p.Variety != nil {
		cur.Variety = *p.Variety
	}
	if p.PlantDate != nil {
		cur.PlantDate = *p.PlantDate
	}
	if p.Health != nil {
		cur.Health = *p.Health
	}
	if p.Notes != nil {
		cur.Notes = *p.Notes
	}
	if p.Photo != nil {
		cur.Photo = *p.Photo
	}
	if p.Photos != nil {
		cur.Photos = *p.Photos
	}
	if p.GPSCoords != nil {
		cur.GPSCoords = p.GPSCoords
	}
	if p.Synced != nil {
		cur.Synced = *p.Synced
	}
	if p.Origin != nil {
		cur.Origin = *p.Origin
	}
	if err := s.r.Save(cur); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Newf(apperr.PositionConflict, "a tree already exists at position %s", cur.Position)
		}
		return nil, apperr.Wrap(apperr.Store, "update tree", err)
	}
	return cur, nil
}

func (s *treeSvc) Delete(id string) error {
	err := s.r.DeleteCascade(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "tree not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Store, "delete tree", err)
	}
	return nil
}

func (s *treeSvc) Duplicate(sourceID, targetPosition, targetFarmID string) (*entities.Tree, error) {
	src, err := s.r.FindByID(sourceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "source tree not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "load source tree", err)
	}
	farmID := targetFarmID
	if farmID == "" {
		farmID = src.FarmID
	}
	existing, err := s.r.FindByPosition(farmID, targetPosition)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "check position", err)
	}
	if existing != nil {
		return nil, apperr.Newf(apperr.PositionConflict, "position %s is already occupied", targetPosition)
	}

	nt := &entities.Tree{
		ID:        uuid.NewString(),
		FarmID:    farmID,
		Position:  targetPosition,
		Species:   src.Species,
		Variety:   src.Variety,
		PlantDate: s.now().UTC().Format("2006-01-02"),
		Health:    "good",
		Notes:     fmt.Sprintf("Duplicated from %s", src.Position),
		Origin:    src.Origin,
		Photos:    []string{},
		Synced:    true,
	}
	if err := s.r.Create(nt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Newf(apperr.PositionConflict, "position %s is already occupied", targetPosition)
		}
		return nil, apperr.Wrap(apperr.Store, "create duplicate", err)
	}
	return nt, nil
}

func (s *treeSvc) AddPhoto(id, blob string) (int, error) {
	t, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	t.Photos = append(t.Photos, blob)
	t.Photo = blob // last photo mirrors as primary
	if err := s.r.Save(t); err != nil {
		return 0, apperr.Wrap(apperr.Store, "add photo", err)
	}
	return len(t.Photos), nil
}

func (s *treeSvc) RemovePhoto(id string, index int) (int, error) {
	t, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(t.Photos) {
		return 0, apperr.Newf(apperr.IndexOutOfRange, "invalid photo index %d", index)
	}
	t.Photos = append(t.Photos[:index], t.Photos[index+1:]...)
	if len(t.Photos) > 0 {
		t.Photo = t.Photos[len(t.Photos)-1]
	} else {
		t.Photo = ""
	}
	if err := s.r.Save(t); err != nil {
		return 0, apperr.Wrap(apperr.Store, "remove photo", err)
	}
	return len(t.Photos), nil
}
