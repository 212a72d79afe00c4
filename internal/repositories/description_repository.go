package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"restaurant_dashboard/internal/models"
)

type DescriptionRepository struct {
	db *gorm.DB
}

func NewDescriptionRepository(db *gorm.DB) *DescriptionRepository {
	return &DescriptionRepository{db: db}
}

// First returns the row with the lowest id, or nil when the table is empty.
func (r *DescriptionRepository) First(ctx context.Context) (*models.SiteDescription, error) {
	var d models.SiteDescription
	err := r.db.WithContext(ctx).Order("id").First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// Update writes all six copy fields of the row keyed by id.
func (r *DescriptionRepository) Update(ctx context.Context, id int64, d *models.SiteDescription) error {
	result := r.db.WithContext(ctx).
		Model(&models.SiteDescription{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"header_one_ar": d.HeaderOneAr,
			"header_one_en": d.HeaderOneEn,
			"header_two_ar": d.HeaderTwoAr,
			"header_two_en": d.HeaderTwoEn,
			"paragraph_ar":  d.ParagraphAr,
			"paragraph_en":  d.ParagraphEn,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
