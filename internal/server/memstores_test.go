package server

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/repositories"
)

// In-memory stand-ins for the Postgres repositories.

type memRestaurants struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Restaurant
}

func (s *memRestaurants) Create(_ context.Context, r *models.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.Prepare()
	r.CreatedAt = time.Now()
	s.rows[r.ID] = *r
	return nil
}

func (s *memRestaurants) List(context.Context) ([]models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Restaurant, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b models.Restaurant) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (s *memRestaurants) GetByID(_ context.Context, id uuid.UUID) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *memRestaurants) Update(_ context.Context, r *models.Restaurant) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.rows[r.ID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	r.CreatedAt = existing.CreatedAt
	s.rows[r.ID] = *r
	out := *r
	return &out, nil
}

func (s *memRestaurants) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *memRestaurants) Count(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.rows)), nil
}

type memUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func (s *memUsers) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.Prepare()
	u.CreatedAt = time.Now()
	s.users[u.ID] = *u
	return nil
}

func (s *memUsers) FindUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memUsers) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memUsers) CountUsers(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

func (s *memUsers) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.LastLoginAt = &at
	s.users[id] = u
	return nil
}

type memProfiles struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]models.AdminProfile
}

func (s *memProfiles) GetByUserID(_ context.Context, userID uuid.UUID) (*models.AdminProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *memProfiles) Create(_ context.Context, p *models.AdminProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Prepare()
	s.profiles[p.UserID] = *p
	return nil
}

func (s *memProfiles) Update(_ context.Context, p *models.AdminProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[p.UserID]; !ok {
		return repositories.ErrNotFound
	}
	p.Prepare()
	s.profiles[p.UserID] = *p
	return nil
}

type memDescription struct {
	mu  sync.Mutex
	row models.SiteDescription
}

func (s *memDescription) First(context.Context) (*models.SiteDescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.row
	return &d, nil
}

func (s *memDescription) Update(_ context.Context, id int64, d *models.SiteDescription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.row.ID {
		return repositories.ErrNotFound
	}
	s.row = *d
	s.row.ID = id
	return nil
}
