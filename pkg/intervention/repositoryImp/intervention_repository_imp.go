package repositoryImp

import (
	"gorm.io/gorm"

	"arboria/entities"
	"arboria/pkg/intervention/repository"
)

type interventionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InterventionRepository { return &interventionRepo{db} }

func (r *interventionRepo) Create(iv *entities.Intervention) error { return r.db.Create(iv).Error }

func (r *interventionRepo) FindByID(id string) (*entities.Intervention, error) {
	var iv entities.Intervention
	if err := r.db.First(&iv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *interventionRepo) List(treeID string) ([]entities.Intervention, error) {
	q := r.db.Model(&entities.Intervention{})
	if treeID != "" {
		q = q.Where("tree_id = ?", treeID)
	}
	var out []entities.Intervention
	if err := q.Order("date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *interventionRepo) ListByTreeIDs(treeIDs []string) ([]entities.Intervention, error) {
	if len(treeIDs) == 0 {
		return nil, nil
	}
	var out []entities.Intervention
	if err := r.db.Where("tree_id IN ?", treeIDs).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *interventionRepo) Delete(id string) (int64, error) {
	res := r.db.Delete(&entities.Intervention{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
