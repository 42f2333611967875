package postgres

import (
	"context"
	"errors"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что MenuRepository удовлетворяет интерфейсу ports.MenuRepository.
var _ ports.MenuRepository = (*MenuRepository)(nil)

const menuColumns = `id, restaurant_id, name, description, price, category,
	is_vegetarian, is_vegan, is_available, preparation_time, created_at, updated_at`

// MenuRepository — позиции меню в Postgres.
type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository { return &MenuRepository{pool: pool} }

func (r *MenuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO menu_items (
			restaurant_id, name, description, price, category,
			is_vegetarian, is_vegan, is_available, preparation_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, price, created_at, updated_at
	`,
		item.RestaurantID, item.Name, item.Description, numeric(item.Price), item.Category,
		item.IsVegetarian, item.IsVegan, item.IsAvailable, item.PreparationTime,
	).Scan(&item.ID, money(&item.Price), &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return wrapErr("insert menu item", err)
	}
	return nil
}

// GetByID — позиция по id; (nil, nil), если не найдена.
func (r *MenuRepository) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.pool.QueryRow(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("select menu item", err)
	}
	return item, nil
}

// GetByIDs — позиции по списку id одним запросом.
func (r *MenuRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.MenuItem, error) {
	result := make(map[int64]*domain.MenuItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = ANY($1::bigint[])`, ids)
	if err != nil {
		return nil, wrapErr("select menu items", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, wrapErr("scan menu item", err)
		}
		result[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("menu rows", err)
	}
	return result, nil
}

// ListByRestaurant — меню ресторана, сгруппированное по категории.
func (r *MenuRepository) ListByRestaurant(ctx context.Context, restaurantID int64, availableOnly bool) ([]*domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+menuColumns+`
		FROM menu_items
		WHERE restaurant_id = $1 AND (NOT $2::boolean OR is_available)
		ORDER BY category, name, id
	`, restaurantID, availableOnly)
	if err != nil {
		return nil, wrapErr("select menu", err)
	}
	defer rows.Close()

	result := make([]*domain.MenuItem, 0)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, wrapErr("scan menu item", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("menu rows", err)
	}
	return result, nil
}

func (r *MenuRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE menu_items SET
			name = $2, description = $3, price = $4, category = $5, is_vegetarian = $6,
			is_vegan = $7, is_available = $8, preparation_time = $9, updated_at = now()
		WHERE id = $1
		RETURNING restaurant_id, price, created_at, updated_at
	`,
		item.ID, item.Name, item.Description, numeric(item.Price), item.Category, item.IsVegetarian,
		item.IsVegan, item.IsAvailable, item.PreparationTime,
	).Scan(&item.RestaurantID, money(&item.Price), &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("menu item", item.ID)
	}
	if err != nil {
		return wrapErr("update menu item", err)
	}
	return nil
}

// Delete — позиции, на которые ссылаются заказы, не удаляются (domain.ErrConflict).
func (r *MenuRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("menu item", id)
	}
	return nil
}

func scanMenuItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(
		&item.ID, &item.RestaurantID, &item.Name, &item.Description, money(&item.Price), &item.Category,
		&item.IsVegetarian, &item.IsVegan, &item.IsAvailable, &item.PreparationTime,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
