package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"arboria/entities"
	"arboria/pkg/tree/repository"
)

type treeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TreeRepository { return &treeRepo{db} }

func (r *treeRepo) Create(t *entities.Tree) error { return r.db.Create(t).Error }

func (r *treeRepo) FindByID(id string) (*entities.Tree, error) {
	var t entities.Tree
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *treeRepo) FindByPosition(farmID, position string) (*entities.Tree, error) {
	var t entities.Tree
	err := r.db.Where("farm_id = ? AND position = ?", farmID, position).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *treeRepo) List(farmID string) ([]entities.Tree, error) {
	q := r.db.Model(&entities.Tree{})
	if farmID != "" {
		q = q.Where("farm_id = ?", farmID)
	}
	var out []entities.Tree
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *treeRepo) Search(f repository.SearchFilter) ([]entities.Tree, error) {
	q := r.db.Model(&entities.Tree{})
	if f.FarmID != "" {
		q = q.Where("farm_id = ?", f.FarmID)
	}
	if f.Health != "" && f.Health != "all" {
		q = q.Where("health = ?", f.Health)
	}
	if f.Species != "" {
		q = q.Where("species LIKE ?", "%"+f.Species+"%")
	}
	var out []entities.Tree
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *treeRepo) Save(t *entities.Tree) error { return r.db.Save(t).Error }

func (r *treeRepo) UpdateFields(id string, fields map[string]any) (int64, error) {
	res := r.db.Model(&entities.Tree{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *treeRepo) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var t entities.Tree
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("tree_id = ?", id).Delete(&entities.Intervention{}).Error; err != nil {
			return err
		}
		return tx.Delete(&t).Error
	})
}
