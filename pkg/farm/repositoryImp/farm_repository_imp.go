package repositoryImp

import (
	"gorm.io/gorm"

	"arboria/entities"
	"arboria/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(f *entities.Farm) error { return r.db.Create(f).Error }

func (r *farmRepo) FindByID(id string) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) List() ([]entities.Farm, error) {
	var out []entities.Farm
	if err := r.db.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmRepo) Save(f *entities.Farm) error { return r.db.Save(f).Error }

func (r *farmRepo) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var f entities.Farm
		if err := tx.First(&f, "id = ?", id).Error; err != nil {
			return err
		}
		var treeIDs []string
		if err := tx.Model(&entities.Tree{}).Where("farm_id = ?", id).Pluck("id", &treeIDs).Error; err != nil {
			return err
		}
		if len(treeIDs) > 0 {
			if err := tx.Where("tree_id IN ?", treeIDs).Delete(&entities.Intervention{}).Error; err != nil {
				return err
			}
		}
		// trees go before the farm row so a failed step never orphans them
		if err := tx.Where("farm_id = ?", id).Delete(&entities.Tree{}).Error; err != nil {
			return err
		}
		return tx.Delete(&f).Error
	})
}
