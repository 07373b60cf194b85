package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nibashhq/marketplace-api/internal/entity"
)

var (
	// ErrCustomerNotFound is returned when no customer matches the lookup criteria.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerEmailDuplicate is returned when registration hits the email unique key.
	ErrCustomerEmailDuplicate = errors.New("customer email already exists")
)

// CustomersRepository declares persistence operations for customer accounts.
type CustomersRepository interface {
	Create(ctx context.Context, fullName, email, passwordHash, phone string) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindByID(ctx context.Context, customerID int64) (*entity.Customer, error)
}

// PGXCustomersRepository implements CustomersRepository with pgx.
type PGXCustomersRepository struct {
	pool dbPool
}

// NewPGXCustomersRepository instantiates a customers repository.
func NewPGXCustomersRepository(pool *pgxpool.Pool) *PGXCustomersRepository {
	return &PGXCustomersRepository{pool: pool}
}

const customerColumns = `customer_id, full_name, email, password_hash, phone, created_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.CustomerID, &c.FullName, &c.Email, &c.PasswordHash, &c.Phone, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new customer row.
func (r *PGXCustomersRepository) Create(ctx context.Context, fullName, email, passwordHash, phone string) (*entity.Customer, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO customers (full_name, email, password_hash, phone)
        VALUES ($1, $2, $3, NULLIF($4, ''))
        RETURNING `+customerColumns+`
    `, fullName, email, passwordHash, phone)

	customer, err := scanCustomer(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "email") {
			return nil, fmt.Errorf("%w: %v", ErrCustomerEmailDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return customer, nil
}

// FindByEmail fetches a customer by email if present.
func (r *PGXCustomersRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("query customer by email: %w", err)
	}
	return customer, nil
}

// FindByID retrieves a customer by identifier.
func (r *PGXCustomersRepository) FindByID(ctx context.Context, customerID int64) (*entity.Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE customer_id = $1`, customerID)
	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("query customer by id: %w", err)
	}
	return customer, nil
}
