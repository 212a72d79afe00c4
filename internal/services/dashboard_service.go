package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Summary feeds the dashboard's welcome card.
type Summary struct {
	RestaurantCount int64  `json:"restaurant_count"`
	FullName        string `json:"full_name"`
}

type DashboardService struct {
	restaurants RestaurantStore
	profiles    ProfileStore
}

func NewDashboardService(restaurants RestaurantStore, profiles ProfileStore) *DashboardService {
	return &DashboardService{restaurants: restaurants, profiles: profiles}
}

func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	n, err := s.restaurants.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count restaurants: %w", err)
	}

	out := &Summary{RestaurantCount: n}
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if p != nil {
		out.FullName = p.FullName
	}
	return out, nil
}
