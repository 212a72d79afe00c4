package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/repositories"
	"restaurant_dashboard/internal/storage"
	"restaurant_dashboard/internal/utils"
)

// Placeholder texts the description editors start with; submitting them
// unchanged counts as leaving the field empty.
const (
	PlaceholderDescAr = "اكتب وصف المطعم بالعربية..."
	PlaceholderDescEn = "Write restaurant description in English..."
)

// Stage is a step of the create workflow.
type Stage string

const (
	StageIdle           Stage = "idle"
	StageValidating     Stage = "validating"
	StageUploadingLogo  Stage = "uploading-logo"
	StageUploadingMenu  Stage = "uploading-menu-images"
	StageCreatingRecord Stage = "creating-record"
	StageDone           Stage = "done"
)

type RestaurantService struct {
	restaurants RestaurantStore
	store       storage.ObjectStore
	uploader    *AssetUploader
	log         logrus.FieldLogger
}

func NewRestaurantService(restaurants RestaurantStore, store storage.ObjectStore, uploader *AssetUploader, log logrus.FieldLogger) *RestaurantService {
	return &RestaurantService{
		restaurants: restaurants,
		store:       store,
		uploader:    uploader,
		log:         log,
	}
}

type CreateRestaurantInput struct {
	Name       string
	DescAr     string
	DescEn     string
	Logo       *File
	MenuImages []File
}

// CreateResult describes how far the create workflow got. On failure Stage
// is the step that failed and Orphaned lists assets stored before it.
type CreateResult struct {
	Restaurant *models.Restaurant `json:"restaurant,omitempty"`
	Stage      Stage              `json:"stage"`
	Rejected   []Rejection        `json:"rejected,omitempty"`
	Orphaned   []UploadedAsset    `json:"orphaned,omitempty"`
	Message    string             `json:"message"`
}

func descriptionMissing(text, placeholder string) bool {
	return utils.IsBlank(text) || text == placeholder
}

func (s *RestaurantService) validateCreate(in CreateRestaurantInput) ([]File, []Rejection, error) {
	if utils.IsBlank(in.Name) {
		return nil, nil, invalid("name", ErrRequired, "restaurant name is required")
	}
	if in.Logo == nil {
		return nil, nil, invalid("logo", ErrRequired, "a logo is required")
	}
	if len(in.MenuImages) == 0 {
		return nil, nil, invalid("images", ErrRequired, "at least one menu image is required")
	}
	if descriptionMissing(in.DescAr, PlaceholderDescAr) {
		return nil, nil, invalid("desc_ar", ErrRequired, "the Arabic description is required")
	}
	if descriptionMissing(in.DescEn, PlaceholderDescEn) {
		return nil, nil, invalid("desc_en", ErrRequired, "the English description is required")
	}
	if err := ValidateImage(*in.Logo); err != nil {
		return nil, nil, err
	}

	selection := NewMenuSelection()
	rejected, err := selection.Add(in.MenuImages...)
	if err != nil {
		return nil, nil, err
	}
	if len(rejected) > 0 {
		return nil, rejected, invalid("images", ErrNotImage, "%d menu image(s) were rejected", len(rejected))
	}
	return selection.Files(), nil, nil
}

// Create validates the input, uploads the logo and then the menu images one
// batch after the other, and inserts the record only if every upload
// succeeded. It never notifies anyone; the caller renders the result.
func (s *RestaurantService) Create(ctx context.Context, in CreateRestaurantInput) (*CreateResult, error) {
	res := &CreateResult{Stage: StageValidating}

	menuFiles, rejected, err := s.validateCreate(in)
	if err != nil {
		res.Rejected = rejected
		res.Message = err.Error()
		return res, err
	}

	res.Stage = StageUploadingLogo
	logo, err := s.uploader.Upload(ctx, storage.LogoBucket, []File{*in.Logo})
	if err != nil {
		res.Orphaned = logo
		res.Message = "an error occurred while uploading the images"
		return res, err
	}

	res.Stage = StageUploadingMenu
	menu, err := s.uploader.Upload(ctx, storage.MenuBucket, menuFiles)
	if err != nil {
		res.Orphaned = append(logo, menu...)
		res.Message = "an error occurred while uploading the images"
		return res, err
	}

	res.Stage = StageCreatingRecord
	restaurant := &models.Restaurant{
		Name:    strings.TrimSpace(in.Name),
		DescAr:  in.DescAr,
		DescEn:  in.DescEn,
		Logo:    logo[0].URL,
		LogoKey: logo[0].Key,
	}
	for _, a := range menu {
		restaurant.Images = append(restaurant.Images, a.URL)
		restaurant.ImageKeys = append(restaurant.ImageKeys, a.Key)
	}

	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		res.Orphaned = append(logo, menu...)
		res.Message = "something went wrong while creating the restaurant"
		s.log.WithError(err).WithField("orphaned", len(res.Orphaned)).Error("restaurant insert failed after uploads")
		return res, fmt.Errorf("failed to create restaurant: %w", err)
	}

	res.Stage = StageDone
	res.Restaurant = restaurant
	res.Message = "restaurant created successfully"
	return res, nil
}

type ListQuery struct {
	Search string
	Page   int
}

// List fetches every restaurant once and filters and paginates in memory.
func (s *RestaurantService) List(ctx context.Context, q ListQuery) (*Page, error) {
	all, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurants: %w", err)
	}
	page := Paginate(FilterRestaurants(all, q.Search), q.Page, PageSize)
	return &page, nil
}

func (s *RestaurantService) Get(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	r, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if r == nil {
		return nil, ErrRestaurantNotFound
	}
	return r, nil
}

// UpdateRestaurantInput is the full editable state sent by one save.
type UpdateRestaurantInput struct {
	Name      string
	DescAr    string
	DescEn    string
	Logo      string
	LogoKey   string
	Images    []string
	ImageKeys []string
}

func (s *RestaurantService) Update(ctx context.Context, id uuid.UUID, in UpdateRestaurantInput) (*models.Restaurant, error) {
	if utils.IsBlank(in.Name) {
		return nil, invalid("name", ErrRequired, "restaurant name is required")
	}
	if len(in.ImageKeys) > len(in.Images) {
		return nil, invalid("image_keys", ErrIndexRange, "more image keys than images")
	}
	return updateRestaurant(ctx, s.restaurants, &models.Restaurant{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		DescAr:    in.DescAr,
		DescEn:    in.DescEn,
		Logo:      in.Logo,
		LogoKey:   in.LogoKey,
		Images:    in.Images,
		ImageKeys: alignKeys(in.ImageKeys, len(in.Images)),
	})
}

func updateRestaurant(ctx context.Context, store RestaurantStore, r *models.Restaurant) (*models.Restaurant, error) {
	updated, err := store.Update(ctx, r)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to update restaurant: %w", err)
	}
	return updated, nil
}

// alignKeys pads keys with empty entries up to n.
func alignKeys(keys []string, n int) []string {
	out := make([]string, n)
	copy(out, keys)
	return out
}

// CleanupFailure is a storage removal that failed during delete.
type CleanupFailure struct {
	Bucket string   `json:"bucket"`
	Keys   []string `json:"keys"`
	Error  string   `json:"error"`
}

type DeleteResult struct {
	RestaurantID    uuid.UUID        `json:"restaurant_id"`
	RemovedKeys     []string         `json:"removed_keys"`
	CleanupFailures []CleanupFailure `json:"cleanup_failures,omitempty"`
}

// Delete removes the restaurant's logo and menu objects, best effort, and
// then its row. Storage failures are logged and recorded, never returned.
func (s *RestaurantService) Delete(ctx context.Context, id uuid.UUID, confirmed bool) (*DeleteResult, error) {
	if !confirmed {
		return nil, ErrConfirmationRequired
	}

	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	res := &DeleteResult{RestaurantID: id, RemovedKeys: []string{}}
	log := s.log.WithField("restaurant_id", id)

	if key := objectKey(r.LogoKey, r.Logo); key != "" {
		s.removeObjects(ctx, log, res, storage.LogoBucket, []string{key})
	}

	var menuKeys []string
	for i, img := range r.Images {
		var stored string
		if i < len(r.ImageKeys) {
			stored = r.ImageKeys[i]
		}
		if key := objectKey(stored, img); key != "" {
			menuKeys = append(menuKeys, key)
		}
	}
	if len(menuKeys) > 0 {
		s.removeObjects(ctx, log, res, storage.MenuBucket, menuKeys)
	}

	if err := s.restaurants.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to delete restaurant: %w", err)
	}
	return res, nil
}

func (s *RestaurantService) removeObjects(ctx context.Context, log logrus.FieldLogger, res *DeleteResult, bucket string, keys []string) {
	if err := s.store.Remove(ctx, bucket, keys...); err != nil {
		log.WithError(err).WithFields(logrus.Fields{"bucket": bucket, "keys": keys}).Warn("failed to delete stored assets")
		res.CleanupFailures = append(res.CleanupFailures, CleanupFailure{Bucket: bucket, Keys: keys, Error: err.Error()})
		return
	}
	res.RemovedKeys = append(res.RemovedKeys, keys...)
}

// objectKey prefers the persisted key and falls back to the URL's last segment.
func objectKey(stored, publicURL string) string {
	if stored != "" {
		return stored
	}
	return storage.KeyFromURL(publicURL)
}
