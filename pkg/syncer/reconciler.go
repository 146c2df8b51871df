// Package syncer merges batches of offline-originated tree records into the
// canonical store. Each record is handled on its own: one record failing
// never aborts its siblings, and synced_count + error_count always equals
// the batch length.
package syncer

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"arboria/entities"
	"arboria/pkg/apperr"
	"arboria/pkg/metrics"
	treerepo "arboria/pkg/tree/repository"
)

// Record is one client-side tree. A non-empty ID means "update the existing
// tree"; an empty ID means "insert". Pointer fields distinguish "not
// provided" from "set to zero".
type Record struct {
	ID        string              `json:"id,omitempty"`
	FarmID    *string             `json:"farm_id,omitempty"`
	Position  *string             `json:"position,omitempty"`
	Species   *string             `json:"species,omitempty"`
	Variety   *string             `json:"variety,omitempty"`
	PlantDate *string             `json:"plant_date,omitempty"`
	Health    *string             `json:"health,omitempty"`
	Notes     *string             `json:"notes,omitempty"`
	Photo     *string             `json:"photo,omitempty"`
	Photos    *[]string           `json:"photos,omitempty"`
	GPSCoords *entities.GPSCoords `json:"gps_coords,omitempty"`
	Origin    *string             `json:"origin,omitempty"`
}

type RecordError struct {
	TreeID string  `json:"tree_id,omitempty"`
	Record *Record `json:"record,omitempty"`
	Kind   string  `json:"kind"`
	Error  string  `json:"error"`
}

type Result struct {
	SyncedCount int             `json:"synced_count"`
	ErrorCount  int             `json:"error_count"`
	SyncedTrees []entities.Tree `json:"synced_trees"`
	Errors      []RecordError   `json:"errors"`
}

type Reconciler struct {
	trees treerepo.TreeRepository
}

func New(trees treerepo.TreeRepository) *Reconciler { return &Reconciler{trees: trees} }

// Reconcile processes the batch in input order. Inserts skip the in-process
// placement pre-check on purpose: the store's unique index decides, so the
// first record to claim a position wins and later claimants in the same
// batch fail individually.
func (r *Reconciler) Reconcile(batch []Record) Result {
	res := Result{SyncedTrees: []entities.Tree{}, Errors: []RecordError{}}
	for i := range batch {
		rec := &batch[i]
		var t *entities.Tree
		var err error
		if rec.ID != "" {
			t, err = r.update(rec)
		} else {
			t, err = r.insert(rec)
		}
		if err != nil {
			res.Errors = append(res.Errors, RecordError{
				TreeID: rec.ID,
				Record: recordForError(rec),
				Kind:   string(apperr.KindOf(err)),
				Error:  err.Error(),
			})
			res.ErrorCount++
			metrics.SyncRecordErrored()
			continue
		}
		res.SyncedTrees = append(res.SyncedTrees, *t)
		res.SyncedCount++
		metrics.SyncRecordSynced()
	}
	return res
}

func (r *Reconciler) update(rec *Record) (*entities.Tree, error) {
	fields := map[string]any{"synced": true}
	if rec.FarmID != nil {
		fields["farm_id"] = *rec.FarmID
	}
	if rec.Position != nil {
		fields["position"] = *rec.Position
	}
	if rec.Species != nil {
		fields["species"] = *rec.Species
	}
	if rec.Variety != nil {
		fields["variety"] = *rec.Variety
	}
	if rec.PlantDate != nil {
		fields["plant_date"] = *rec.PlantDate
	}
	if rec.Health != nil {
		fields["health"] = *rec.Health
	}
	if rec.Notes != nil {
		fields["notes"] = *rec.Notes
	}
	if rec.Photo != nil {
		fields["photo"] = *rec.Photo
	}
	if rec.Origin != nil {
		fields["origin"] = *rec.Origin
	}

	n, err := r.trees.UpdateFields(rec.ID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Newf(apperr.PositionConflict, "a tree already exists at the requested position")
		}
		return nil, apperr.Wrap(apperr.Store, "update tree", err)
	}
	if n == 0 {
		// an edit of a tree the store never had; never silently converted
		// to an insert so the client can re-queue it deliberately
		return nil, apperr.New(apperr.RecordNotFound, "tree not found")
	}

	// photos and gps coords go through the serializer, not raw columns
	if rec.Photos != nil || rec.GPSCoords != nil {
		t, err := r.trees.FindByID(rec.ID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Store, "reload tree", err)
		}
		if rec.Photos != nil {
			t.Photos = *rec.Photos
			if len(t.Photos) > 0 {
				t.Photo = t.Photos[len(t.Photos)-1]
			} else {
				t.Photo = ""
			}
		}
		if rec.GPSCoords != nil {
			t.GPSCoords = rec.GPSCoords
		}
		if err := r.trees.Save(t); err != nil {
			return nil, apperr.Wrap(apperr.Store, "update tree", err)
		}
		return t, nil
	}

	t, err := r.trees.FindByID(rec.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "reload tree", err)
	}
	return t, nil
}

func (r *Reconciler) insert(rec *Record) (*entities.Tree, error) {
	if rec.FarmID == nil || *rec.FarmID == "" || rec.Position == nil || *rec.Position == "" {
		return nil, apperr.New(apperr.Validation, "farm_id and position are required for new trees")
	}
	t := &entities.Tree{
		ID:       uuid.NewString(),
		FarmID:   *rec.FarmID,
		Position: *rec.Position,
		Health:   "good",
		Photos:   []string{},
		Synced:   true,
	}
	if rec.Species != nil {
		t.Species = *rec.Species
	}
	if rec.Variety != nil {
		t.Variety = *rec.Variety
	}
	if rec.PlantDate != nil {
		t.PlantDate = *rec.PlantDate
	}
	if rec.Health != nil {
		t.Health = *rec.Health
	}
	if rec.Notes != nil {
		t.Notes = *rec.Notes
	}
	if rec.Photos != nil {
		t.Photos = *rec.Photos
	}
	if rec.Photo != nil {
		t.Photo = *rec.Photo
	} else if len(t.Photos) > 0 {
		t.Photo = t.Photos[len(t.Photos)-1]
	}
	if rec.GPSCoords != nil {
		t.GPSCoords = rec.GPSCoords
	}
	if rec.Origin != nil {
		t.Origin = *rec.Origin
	}

	if err := r.trees.Create(t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Newf(apperr.PositionConflict, "a tree already exists at position %s", t.Position)
		}
		return nil, apperr.Wrap(apperr.Store, "create tree", err)
	}
	return t, nil
}

// recordForError keeps the payload for insert failures; update failures are
// identified by tree_id alone.
func recordForError(rec *Record) *Record {
	if rec.ID != "" {
		return nil
	}
	return rec
}
