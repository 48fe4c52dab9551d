package repository

import (
	"context"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/models"
)

type BatchRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]models.Batch, error)
	GetByProduct(ctx context.Context, productID int64) (models.Batch, error)
	ListWarehouseStockByProduct(ctx context.Context, productID int64) ([]models.BatchWarehouse, error)
}

type batchRepository struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBatchRepository(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) BatchRepository {
	return &batchRepository{pool: pool, getter: getter}
}

func (r *batchRepository) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.pool)
}

const batchColumns = `id, product_id, current_quantity, due_date, order_entry_id`

func scanBatch(row pgx.Row) (models.Batch, error) {
	var batch models.Batch
	err := row.Scan(&batch.ID, &batch.ProductID, &batch.CurrentQuantity, &batch.DueDate, &batch.OrderEntryID)
	if err != nil {
		return models.Batch{}, err
	}
	return batch, nil
}

func (r *batchRepository) ListByProduct(ctx context.Context, productID int64) ([]models.Batch, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+batchColumns+` FROM batches WHERE product_id = $1 ORDER BY id`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []models.Batch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, rows.Err()
}

// GetByProduct returns the batch backing a product for the cart stock check.
// The check is per product against a single batch, not aggregated across
// batches.
func (r *batchRepository) GetByProduct(ctx context.Context, productID int64) (models.Batch, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+batchColumns+` FROM batches WHERE product_id = $1 ORDER BY id LIMIT 1`, productID)

	batch, err := scanBatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Batch{}, ErrBatchNotFound
		}
		return models.Batch{}, err
	}
	return batch, nil
}

// ListWarehouseStockByProduct resolves each batch's warehouse through the
// order entry and section chain.
func (r *batchRepository) ListWarehouseStockByProduct(ctx context.Context, productID int64) ([]models.BatchWarehouse, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT b.id, b.product_id, b.current_quantity, b.due_date, b.order_entry_id, w.id
		 FROM batches b
		 JOIN order_entries oe ON oe.id = b.order_entry_id
		 JOIN sections s ON s.id = oe.section_id
		 JOIN warehouses w ON w.id = s.warehouse_id
		 WHERE b.product_id = $1
		 ORDER BY b.id`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stock []models.BatchWarehouse
	for rows.Next() {
		var row models.BatchWarehouse
		err := rows.Scan(&row.ID, &row.ProductID, &row.CurrentQuantity, &row.DueDate, &row.OrderEntryID, &row.WarehouseID)
		if err != nil {
			return nil, err
		}
		stock = append(stock, row)
	}
	return stock, rows.Err()
}
