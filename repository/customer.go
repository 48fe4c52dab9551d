package repository

import (
	"context"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/models"
)

type CustomerRepository interface {
	Get(ctx context.Context, id int64) (models.Customer, error)
}

type customerRepository struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewCustomerRepository(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) CustomerRepository {
	return &customerRepository{pool: pool, getter: getter}
}

func (r *customerRepository) Get(ctx context.Context, id int64) (models.Customer, error) {
	row := r.getter.DefaultTrOrDB(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name FROM customers WHERE id = $1`, id)

	var customer models.Customer
	err := row.Scan(&customer.ID, &customer.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}
		return models.Customer{}, err
	}
	return customer, nil
}
