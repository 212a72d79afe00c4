package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant_dashboard/internal/models"
)

type AdminProfileRepository struct {
	db *gorm.DB
}

func NewAdminProfileRepository(db *gorm.DB) *AdminProfileRepository {
	return &AdminProfileRepository{db: db}
}

func (r *AdminProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.AdminProfile, error) {
	var p models.AdminProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *AdminProfileRepository) Create(ctx context.Context, p *models.AdminProfile) error {
	p.Prepare()
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *AdminProfileRepository) Update(ctx context.Context, p *models.AdminProfile) error {
	p.Prepare()
	result := r.db.WithContext(ctx).
		Model(&models.AdminProfile{}).
		Where("user_id = ?", p.UserID).
		Updates(map[string]any{
			"full_name": p.FullName,
			"email":     p.Email,
			"phone":     p.Phone,
			"job_title": p.JobTitle,
			"address":   p.Address,
			"about":     p.About,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
