package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ReviewRepository удовлетворяет интерфейсу ports.ReviewRepository.
var _ ports.ReviewRepository = (*ReviewRepository)(nil)

const reviewColumns = `id, customer_id, restaurant_id, order_id, rating, comment, created_at`

// ReviewRepository — отзывы в Postgres; одна запись на заказ (UNIQUE order_id).
type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository { return &ReviewRepository{pool: pool} }

// Create — вставка отзыва и пересчёт рейтинга ресторана в одной транзакции.
// Повторный отзыв на тот же заказ — domain.ErrConflict.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (err error) {
	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, transaction, &err)

	if err = transaction.QueryRow(ctx, `
		INSERT INTO reviews (customer_id, restaurant_id, order_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, review.CustomerID, review.RestaurantID, review.OrderID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt); err != nil {
		return wrapErr("insert review", err)
	}

	if _, err = transaction.Exec(ctx, `
		UPDATE restaurants
		SET rating = (
			SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0)
			FROM reviews WHERE restaurant_id = $1
		), updated_at = now()
		WHERE id = $1
	`, review.RestaurantID); err != nil {
		return wrapErr("update restaurant rating", err)
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByOrder — отзыв на заказ; (nil, nil), если его нет.
func (r *ReviewRepository) GetByOrder(ctx context.Context, orderID int64) (*domain.Review, error) {
	review, err := scanReview(r.pool.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE order_id = $1`, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("select review", err)
	}
	return review, nil
}

func (r *ReviewRepository) ListByRestaurant(ctx context.Context, restaurantID int64, limit, offset int) ([]*domain.Review, error) {
	return r.list(ctx, `
		SELECT `+reviewColumns+` FROM reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, restaurantID, limit, offset)
}

func (r *ReviewRepository) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Review, error) {
	return r.list(ctx, `
		SELECT `+reviewColumns+` FROM reviews
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, customerID, limit, offset)
}

func (r *ReviewRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("select reviews", err)
	}
	defer rows.Close()

	result := make([]*domain.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, wrapErr("scan review", err)
		}
		result = append(result, review)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("reviews rows", err)
	}
	return result, nil
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var review domain.Review
	if err := row.Scan(
		&review.ID, &review.CustomerID, &review.RestaurantID, &review.OrderID,
		&review.Rating, &review.Comment, &review.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &review, nil
}
