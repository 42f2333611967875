package postgres

import (
	"context"
	"errors"

	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CustomerRepository удовлетворяет интерфейсу ports.CustomerRepository.
var _ ports.CustomerRepository = (*CustomerRepository)(nil)

const customerColumns = `id, name, email, phone_number, address, created_at, updated_at`

// CustomerRepository — клиенты в Postgres. Email уникален.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO customers (name, email, phone_number, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, customer.Name, customer.Email, customer.PhoneNumber, customer.Address,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return wrapErr("insert customer", err)
	}
	return nil
}

// GetByID — клиент по id; (nil, nil), если не найден.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := scanCustomer(r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("select customer", err)
	}
	return customer, nil
}

func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, wrapErr("select customers", err)
	}
	defer rows.Close()

	result := make([]*domain.Customer, 0, limit)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, wrapErr("scan customer", err)
		}
		result = append(result, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("customers rows", err)
	}
	return result, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE customers SET
			name = $2, email = $3, phone_number = $4, address = $5, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, customer.ID, customer.Name, customer.Email, customer.PhoneNumber, customer.Address,
	).Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("customer", customer.ID)
	}
	if err != nil {
		return wrapErr("update customer", err)
	}
	return nil
}

// Delete — клиента с заказами удалить нельзя (domain.ErrConflict).
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("customer", id)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var customer domain.Customer
	if err := row.Scan(
		&customer.ID, &customer.Name, &customer.Email, &customer.PhoneNumber,
		&customer.Address, &customer.CreatedAt, &customer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}
