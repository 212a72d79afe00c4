package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant matches the restaurants table. Logo and Images hold public
// URLs; LogoKey and ImageKeys hold the storage keys they were uploaded under.
type Restaurant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	DescAr    string    `json:"desc_ar"`
	DescEn    string    `json:"desc_en"`
	Logo      string    `json:"logo"`
	LogoKey   string    `json:"logo_key,omitempty"`
	Images    []string  `json:"images"`
	ImageKeys []string  `json:"image_keys,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Restaurant) Prepare() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Images == nil {
		r.Images = []string{}
	}
	if r.ImageKeys == nil {
		r.ImageKeys = []string{}
	}
}
