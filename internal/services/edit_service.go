package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/repositories"
	"restaurant_dashboard/internal/storage"
	"restaurant_dashboard/internal/utils"
)

// EditService keeps an editable copy of a restaurant between "edit" and
// "save". Logo and menu uploads happen immediately; removing a menu image
// only drops it from the draft and leaves the stored object alone.
type EditService struct {
	restaurants RestaurantStore
	drafts      DraftStore
	uploader    *AssetUploader
	now         func() time.Time
	log         logrus.FieldLogger
}

func NewEditService(restaurants RestaurantStore, drafts DraftStore, uploader *AssetUploader, log logrus.FieldLogger) *EditService {
	return &EditService{
		restaurants: restaurants,
		drafts:      drafts,
		uploader:    uploader,
		now:         time.Now,
		log:         log,
	}
}

func (s *EditService) Begin(ctx context.Context, restaurantID uuid.UUID) (*models.EditDraft, error) {
	r, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}
	if r == nil {
		return nil, ErrRestaurantNotFound
	}

	d := models.NewEditDraft(r, s.now())
	if err := s.drafts.SaveDraft(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return d, nil
}

func (s *EditService) Get(ctx context.Context, draftID string) (*models.EditDraft, error) {
	d, err := s.drafts.LoadDraft(ctx, draftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return d, nil
}

// DraftFields holds text edits; nil fields are left unchanged.
type DraftFields struct {
	Name   *string
	DescAr *string
	DescEn *string
}

func (s *EditService) UpdateFields(ctx context.Context, draftID string, f DraftFields) (*models.EditDraft, error) {
	d, err := s.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if f.Name != nil {
		if utils.IsBlank(*f.Name) {
			return nil, invalid("name", ErrRequired, "restaurant name is required")
		}
		d.Name = strings.TrimSpace(*f.Name)
	}
	if f.DescAr != nil {
		d.DescAr = *f.DescAr
	}
	if f.DescEn != nil {
		d.DescEn = *f.DescEn
	}
	return d, s.save(ctx, d)
}

// ReplaceLogo uploads file and swaps it in as the draft's logo at once.
func (s *EditService) ReplaceLogo(ctx context.Context, draftID string, file File) (*models.EditDraft, error) {
	d, err := s.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := ValidateImage(file); err != nil {
		return nil, err
	}

	assets, err := s.uploader.Upload(ctx, storage.LogoBucket, []File{file})
	if err != nil {
		return nil, err
	}
	d.Logo = assets[0].URL
	d.LogoKey = assets[0].Key
	return d, s.save(ctx, d)
}

// AddMenuImages uploads the valid files and appends them to the draft. The
// whole batch is refused if it would exceed MaxMenuImages.
func (s *EditService) AddMenuImages(ctx context.Context, draftID string, files []File) (*models.EditDraft, []Rejection, error) {
	d, err := s.Get(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, invalid("images", ErrRequired, "no images selected")
	}
	if len(d.Images)+len(files) > MaxMenuImages {
		return nil, nil, invalid("images", ErrMenuImageLimit, "you can upload at most %d images", MaxMenuImages)
	}

	var valid []File
	var rejected []Rejection
	for _, f := range files {
		if err := ValidateImage(f); err != nil {
			rejected = append(rejected, Rejection{Name: f.Name, Reason: err.(*ValidationError).Message})
			continue
		}
		valid = append(valid, f)
	}
	if len(valid) == 0 {
		return d, rejected, nil
	}

	assets, err := s.uploader.Upload(ctx, storage.MenuBucket, valid)
	if err != nil {
		return nil, rejected, err
	}
	for _, a := range assets {
		d.Images = append(d.Images, a.URL)
		d.ImageKeys = append(d.ImageKeys, a.Key)
	}
	return d, rejected, s.save(ctx, d)
}

// RemoveMenuImage drops the image at index from the draft only.
func (s *EditService) RemoveMenuImage(ctx context.Context, draftID string, index int) (*models.EditDraft, error) {
	d, err := s.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(d.Images) {
		return nil, invalid("images", ErrIndexRange, "no image at index %d", index)
	}

	keys := alignKeys(d.ImageKeys, len(d.Images))
	d.Images = append(d.Images[:index], d.Images[index+1:]...)
	d.ImageKeys = append(keys[:index], keys[index+1:]...)
	return d, s.save(ctx, d)
}

// Save writes the draft's current state with a single update and discards it.
func (s *EditService) Save(ctx context.Context, draftID string) (*models.Restaurant, error) {
	d, err := s.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	updated, err := updateRestaurant(ctx, s.restaurants, &models.Restaurant{
		ID:        d.RestaurantID,
		Name:      d.Name,
		DescAr:    d.DescAr,
		DescEn:    d.DescEn,
		Logo:      d.Logo,
		LogoKey:   d.LogoKey,
		Images:    d.Images,
		ImageKeys: alignKeys(d.ImageKeys, len(d.Images)),
	})
	if err != nil {
		return nil, err
	}

	if err := s.drafts.DeleteDraft(ctx, draftID); err != nil {
		s.log.WithError(err).WithField("draft_id", draftID).Warn("failed to discard saved draft")
	}
	return updated, nil
}

func (s *EditService) Discard(ctx context.Context, draftID string) error {
	if _, err := s.Get(ctx, draftID); err != nil {
		return err
	}
	return s.drafts.DeleteDraft(ctx, draftID)
}

func (s *EditService) save(ctx context.Context, d *models.EditDraft) error {
	if err := s.drafts.SaveDraft(ctx, d); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}
