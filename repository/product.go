package repository

import (
	"context"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/models"
)

type ProductRepository interface {
	Get(ctx context.Context, id int64) (models.Product, error)
	GetByName(ctx context.Context, name string) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	ListByType(ctx context.Context, productType string) ([]models.Product, error)
	ListByCategoryName(ctx context.Context, categoryName string) ([]models.Product, error)
	Create(ctx context.Context, product models.Product) (models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
}

type productRepository struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewProductRepository(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) ProductRepository {
	return &productRepository{pool: pool, getter: getter}
}

func (r *productRepository) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.pool)
}

const productColumns = `id, name, type, category_name, price`

func scanProduct(row pgx.Row) (models.Product, error) {
	var (
		product models.Product
		price   pgtype.Numeric
	)
	err := row.Scan(&product.ID, &product.Name, &product.Type, &product.CategoryName, &price)
	if err != nil {
		return models.Product{}, err
	}

	product.Price, err = NumericToFloat64(price)
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func scanProducts(rows pgx.Rows) ([]models.Product, error) {
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepository) Get(ctx context.Context, id int64) (models.Product, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

func (r *productRepository) GetByName(ctx context.Context, name string) (models.Product, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE name = $1`, name)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *productRepository) ListByType(ctx context.Context, productType string) ([]models.Product, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE type = $1 ORDER BY id`, productType)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *productRepository) ListByCategoryName(ctx context.Context, categoryName string) ([]models.Product, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE category_name = $1 ORDER BY id`, categoryName)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *productRepository) Create(ctx context.Context, product models.Product) (models.Product, error) {
	price, err := Float64ToNumeric(product.Price)
	if err != nil {
		return models.Product{}, err
	}

	row := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO products (name, type, category_name, price)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+productColumns,
		product.Name, product.Type, product.CategoryName, price)

	return scanProduct(row)
}

func (r *productRepository) Update(ctx context.Context, product models.Product) (models.Product, error) {
	price, err := Float64ToNumeric(product.Price)
	if err != nil {
		return models.Product{}, err
	}

	row := r.conn(ctx).QueryRow(ctx,
		`UPDATE products
		 SET name = $2, type = $3, category_name = $4, price = $5
		 WHERE id = $1
		 RETURNING `+productColumns,
		product.ID, product.Name, product.Type, product.CategoryName, price)

	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}
	return updated, nil
}
