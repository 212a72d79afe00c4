package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"restaurant_dashboard/internal/models"
)

// The store interfaces below are satisfied by the repositories package.

type RestaurantStore interface {
	Create(ctx context.Context, r *models.Restaurant) error
	List(ctx context.Context) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	Update(ctx context.Context, r *models.Restaurant) (*models.Restaurant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type DraftStore interface {
	SaveDraft(ctx context.Context, d *models.EditDraft) error
	LoadDraft(ctx context.Context, id string) (*models.EditDraft, error)
	DeleteDraft(ctx context.Context, id string) error
}

type DescriptionStore interface {
	First(ctx context.Context) (*models.SiteDescription, error)
	Update(ctx context.Context, id int64, d *models.SiteDescription) error
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.AdminProfile, error)
	Create(ctx context.Context, p *models.AdminProfile) error
	Update(ctx context.Context, p *models.AdminProfile) error
}

type SessionStore interface {
	StoreSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error
	Blacklist(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}
