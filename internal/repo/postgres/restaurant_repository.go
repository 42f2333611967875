package postgres

import (
	"context"
	"errors"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что RestaurantRepository удовлетворяет интерфейсу ports.RestaurantRepository.
var _ ports.RestaurantRepository = (*RestaurantRepository)(nil)

const restaurantColumns = `id, name, description, cuisine_type, address, phone_number,
	rating::float8, is_active, opening_time, closing_time, created_at, updated_at`

// RestaurantRepository — рестораны в Postgres.
type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO restaurants (
			name, description, cuisine_type, address, phone_number, is_active, opening_time, closing_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, rating::float8, created_at, updated_at
	`,
		restaurant.Name, restaurant.Description, restaurant.CuisineType, restaurant.Address,
		restaurant.PhoneNumber, restaurant.IsActive, restaurant.OpeningTime, restaurant.ClosingTime,
	).Scan(&restaurant.ID, &restaurant.Rating, &restaurant.CreatedAt, &restaurant.UpdatedAt)
	if err != nil {
		return wrapErr("insert restaurant", err)
	}
	return nil
}

// GetByID — ресторан по id; (nil, nil), если не найден.
func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
	restaurant, err := scanRestaurant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("select restaurant", err)
	}
	return restaurant, nil
}

// List — страница ресторанов; фильтр по кухне регистронезависимый.
func (r *RestaurantRepository) List(ctx context.Context, filter domain.RestaurantFilter) ([]*domain.Restaurant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE ($1::text = '' OR lower(cuisine_type) = lower($1::text))
		  AND (NOT $2::boolean OR is_active)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`, filter.Cuisine, filter.ActiveOnly, filter.Limit, filter.Offset)
	if err != nil {
		return nil, wrapErr("select restaurants", err)
	}
	defer rows.Close()

	result := make([]*domain.Restaurant, 0, filter.Limit)
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, wrapErr("scan restaurant", err)
		}
		result = append(result, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("restaurants rows", err)
	}
	return result, nil
}

// Update — полная замена редактируемых полей; рейтинг не трогается.
func (r *RestaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE restaurants SET
			name = $2, description = $3, cuisine_type = $4, address = $5, phone_number = $6,
			is_active = $7, opening_time = $8, closing_time = $9, updated_at = now()
		WHERE id = $1
		RETURNING rating::float8, created_at, updated_at
	`,
		restaurant.ID, restaurant.Name, restaurant.Description, restaurant.CuisineType, restaurant.Address,
		restaurant.PhoneNumber, restaurant.IsActive, restaurant.OpeningTime, restaurant.ClosingTime,
	).Scan(&restaurant.Rating, &restaurant.CreatedAt, &restaurant.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("restaurant", restaurant.ID)
	}
	if err != nil {
		return wrapErr("update restaurant", err)
	}
	return nil
}

// Delete — удаление вместе с меню; при наличии заказов — domain.ErrConflict.
func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete restaurant", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("restaurant", id)
	}
	return nil
}

func scanRestaurant(row pgx.Row) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	err := row.Scan(
		&restaurant.ID, &restaurant.Name, &restaurant.Description, &restaurant.CuisineType,
		&restaurant.Address, &restaurant.PhoneNumber, &restaurant.Rating, &restaurant.IsActive,
		&restaurant.OpeningTime, &restaurant.ClosingTime, &restaurant.CreatedAt, &restaurant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}
