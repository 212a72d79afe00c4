package models

import (
	"time"

	"github.com/google/uuid"
)

// EditDraft is the editable copy of a restaurant between "edit" and "save".
// Images and ImageKeys are index-aligned.
type EditDraft struct {
	ID           string    `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	DescAr       string    `json:"desc_ar"`
	DescEn       string    `json:"desc_en"`
	Logo         string    `json:"logo"`
	LogoKey      string    `json:"logo_key,omitempty"`
	Images       []string  `json:"images"`
	ImageKeys    []string  `json:"image_keys"`
	StartedAt    time.Time `json:"started_at"`
}

// NewEditDraft copies r into a fresh draft.
func NewEditDraft(r *Restaurant, now time.Time) *EditDraft {
	images := append([]string{}, r.Images...)
	keys := make([]string, len(images))
	copy(keys, r.ImageKeys)
	return &EditDraft{
		ID:           uuid.NewString(),
		RestaurantID: r.ID,
		Name:         r.Name,
		DescAr:       r.DescAr,
		DescEn:       r.DescEn,
		Logo:         r.Logo,
		LogoKey:      r.LogoKey,
		Images:       images,
		ImageKeys:    keys,
		StartedAt:    now,
	}
}
