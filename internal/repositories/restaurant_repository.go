package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"restaurant_dashboard/internal/models"
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

const restaurantColumns = `id, name, desc_ar, desc_en, logo, logo_key, images, image_keys, created_at`

func scanRestaurant(row pgx.Row) (*models.Restaurant, error) {
	var r models.Restaurant
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.DescAr,
		&r.DescEn,
		&r.Logo,
		&r.LogoKey,
		&r.Images,
		&r.ImageKeys,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	restaurant.Prepare()

	query := `
		INSERT INTO restaurants (id, name, desc_ar, desc_en, logo, logo_key, images, image_keys)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	return r.pool.QueryRow(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.DescAr,
		restaurant.DescEn,
		restaurant.Logo,
		restaurant.LogoKey,
		restaurant.Images,
		restaurant.ImageKeys,
	).Scan(&restaurant.CreatedAt)
}

// List returns every restaurant, newest first.
func (r *RestaurantRepository) List(ctx context.Context) ([]models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *restaurant)
	}

	return restaurants, rows.Err()
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	restaurant, err := scanRestaurant(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return restaurant, nil
}

// Update overwrites the editable columns of the row keyed by restaurant.ID
// and returns the stored row.
func (r *RestaurantRepository) Update(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	restaurant.Prepare()

	query := `
		UPDATE restaurants SET
			name = $2, desc_ar = $3, desc_en = $4, logo = $5, logo_key = $6, images = $7, image_keys = $8
		WHERE id = $1
		RETURNING ` + restaurantColumns

	updated, err := scanRestaurant(r.pool.QueryRow(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.DescAr,
		restaurant.DescEn,
		restaurant.Logo,
		restaurant.LogoKey,
		restaurant.Images,
		restaurant.ImageKeys,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *RestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RestaurantRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&n)
	return n, err
}
