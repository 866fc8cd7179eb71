package repository

import (
	"context"

	"supplyconnect/internal/domain/model"
	repo "supplyconnect/internal/repository"

	"gorm.io/gorm"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) Create(ctx context.Context, p model.Profile) (model.Profile, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Profile{}, mapError(err)
	}
	return p, nil
}

func (r *ProfileGormRepository) FindByID(ctx context.Context, id string) (model.Profile, error) {
	var p model.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return model.Profile{}, mapError(err)
	}
	return p, nil
}

// roleは変更しない
func (r *ProfileGormRepository) Update(ctx context.Context, p model.Profile) error {
	res := r.db.WithContext(ctx).Model(&model.Profile{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"full_name":     p.FullName,
		"phone":         p.Phone,
		"business_name": p.BusinessName,
		"address":       p.Address,
		"city":          p.City,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
