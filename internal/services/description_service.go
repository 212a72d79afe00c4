package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/repositories"
)

// MinParagraphRunes is the shortest paragraph the site copy accepts.
const MinParagraphRunes = 10

type DescriptionService struct {
	descriptions DescriptionStore
}

func NewDescriptionService(descriptions DescriptionStore) *DescriptionService {
	return &DescriptionService{descriptions: descriptions}
}

// Get returns the first description row.
func (s *DescriptionService) Get(ctx context.Context) (*models.SiteDescription, error) {
	d, err := s.descriptions.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load description: %w", err)
	}
	if d == nil {
		return nil, ErrDescriptionNotFound
	}
	return d, nil
}

// Update validates d and writes it over the first description row.
func (s *DescriptionService) Update(ctx context.Context, d *models.SiteDescription) (*models.SiteDescription, error) {
	trimDescription(d)
	if err := ValidateDescription(d); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.descriptions.Update(ctx, current.ID, d); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDescriptionNotFound
		}
		return nil, fmt.Errorf("failed to update description: %w", err)
	}
	d.ID = current.ID
	return d, nil
}

// ValidateDescription requires all four headers and both paragraphs of at
// least MinParagraphRunes characters.
func ValidateDescription(d *models.SiteDescription) error {
	headers := []struct {
		field, value string
	}{
		{"header_one_ar", d.HeaderOneAr},
		{"header_one_en", d.HeaderOneEn},
		{"header_two_ar", d.HeaderTwoAr},
		{"header_two_en", d.HeaderTwoEn},
	}
	for _, h := range headers {
		if h.value == "" {
			return invalid(h.field, ErrRequired, "this header is required")
		}
	}

	paragraphs := []struct {
		field, value string
	}{
		{"paragraph_ar", d.ParagraphAr},
		{"paragraph_en", d.ParagraphEn},
	}
	for _, p := range paragraphs {
		if p.value == "" {
			return invalid(p.field, ErrRequired, "this paragraph is required")
		}
		if utf8.RuneCountInString(p.value) < MinParagraphRunes {
			return invalid(p.field, ErrTooShort, "the paragraph must be at least %d characters", MinParagraphRunes)
		}
	}
	return nil
}

func trimDescription(d *models.SiteDescription) {
	for _, f := range []*string{&d.HeaderOneAr, &d.HeaderOneEn, &d.HeaderTwoAr, &d.HeaderTwoEn, &d.ParagraphAr, &d.ParagraphEn} {
		*f = strings.TrimSpace(*f)
	}
}
