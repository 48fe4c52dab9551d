package repository

import (
	"context"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/models"
)

type CartRepository interface {
	Create(ctx context.Context, cart models.Cart) (models.Cart, error)
	Get(ctx context.Context, id int64) (models.Cart, error)
	UpdateStatus(ctx context.Context, id int64, status models.CartStatus) error
	AddLine(ctx context.Context, line models.ProductCart) (models.ProductCart, error)
	Lines(ctx context.Context, cartID int64) ([]models.ProductCart, error)
}

type cartRepository struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewCartRepository(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) CartRepository {
	return &cartRepository{pool: pool, getter: getter}
}

func (r *cartRepository) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.pool)
}

func (r *cartRepository) Create(ctx context.Context, cart models.Cart) (models.Cart, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO carts (date, status, customer_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, date, status, customer_id`,
		cart.Date, cart.Status, cart.CustomerID)

	return scanCart(row)
}

func scanCart(row pgx.Row) (models.Cart, error) {
	var cart models.Cart
	err := row.Scan(&cart.ID, &cart.Date, &cart.Status, &cart.CustomerID)
	if err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (r *cartRepository) Get(ctx context.Context, id int64) (models.Cart, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT id, date, status, customer_id FROM carts WHERE id = $1`, id)

	cart, err := scanCart(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Cart{}, ErrCartNotFound
		}
		return models.Cart{}, err
	}
	return cart, nil
}

func (r *cartRepository) UpdateStatus(ctx context.Context, id int64, status models.CartStatus) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE carts SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCartNotFound
	}
	return nil
}

func (r *cartRepository) AddLine(ctx context.Context, line models.ProductCart) (models.ProductCart, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO product_carts (cart_id, product_id, quantity)
		 VALUES ($1, $2, $3)
		 RETURNING id, cart_id, product_id, quantity`,
		line.CartID, line.ProductID, line.Quantity)

	var saved models.ProductCart
	err := row.Scan(&saved.ID, &saved.CartID, &saved.ProductID, &saved.Quantity)
	if err != nil {
		return models.ProductCart{}, err
	}
	return saved, nil
}

func (r *cartRepository) Lines(ctx context.Context, cartID int64) ([]models.ProductCart, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, cart_id, product_id, quantity FROM product_carts WHERE cart_id = $1 ORDER BY id`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.ProductCart
	for rows.Next() {
		var line models.ProductCart
		err := rows.Scan(&line.ID, &line.CartID, &line.ProductID, &line.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
