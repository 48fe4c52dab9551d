package service

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/models"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/repository"
)

// fakeTxManager runs the callback without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeProductRepo struct {
	products []models.Product
	nextID   int64
}

func newFakeProductRepo(products ...models.Product) *fakeProductRepo {
	r := &fakeProductRepo{nextID: 1}
	for _, p := range products {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.products = append(r.products, p)
	}
	return r
}

func (r *fakeProductRepo) Get(_ context.Context, id int64) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, repository.ErrProductNotFound
}

func (r *fakeProductRepo) GetByName(_ context.Context, name string) (models.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Product{}, repository.ErrProductNotFound
}

func (r *fakeProductRepo) List(_ context.Context) ([]models.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) ListByType(_ context.Context, productType string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.Type == productType {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategoryName(_ context.Context, categoryName string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.CategoryName == categoryName {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product models.Product) (models.Product, error) {
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, repository.ErrProductNotFound
}

type fakeBatchRepo struct {
	batches []models.Batch
	// warehouse per order entry, standing in for the section join
	warehouses map[int64]int64
}

func (r *fakeBatchRepo) ListByProduct(_ context.Context, productID int64) ([]models.Batch, error) {
	var out []models.Batch
	for _, b := range r.batches {
		if b.ProductID == productID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) GetByProduct(_ context.Context, productID int64) (models.Batch, error) {
	for _, b := range r.batches {
		if b.ProductID == productID {
			return b, nil
		}
	}
	return models.Batch{}, repository.ErrBatchNotFound
}

func (r *fakeBatchRepo) ListWarehouseStockByProduct(_ context.Context, productID int64) ([]models.BatchWarehouse, error) {
	var out []models.BatchWarehouse
	for _, b := range r.batches {
		if b.ProductID == productID {
			out = append(out, models.BatchWarehouse{
				Batch:       b,
				WarehouseID: r.warehouses[b.OrderEntryID],
			})
		}
	}
	return out, nil
}

type fakeCartRepo struct {
	carts      map[int64]models.Cart
	lines      []models.ProductCart
	nextCartID int64
	nextLineID int64
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[int64]models.Cart{}, nextCartID: 1, nextLineID: 1}
}

func (r *fakeCartRepo) Create(_ context.Context, cart models.Cart) (models.Cart, error) {
	cart.ID = r.nextCartID
	r.nextCartID++
	r.carts[cart.ID] = cart
	return cart, nil
}

func (r *fakeCartRepo) Get(_ context.Context, id int64) (models.Cart, error) {
	cart, ok := r.carts[id]
	if !ok {
		return models.Cart{}, repository.ErrCartNotFound
	}
	return cart, nil
}

func (r *fakeCartRepo) UpdateStatus(_ context.Context, id int64, status models.CartStatus) error {
	cart, ok := r.carts[id]
	if !ok {
		return repository.ErrCartNotFound
	}
	cart.Status = status
	r.carts[id] = cart
	return nil
}

func (r *fakeCartRepo) AddLine(_ context.Context, line models.ProductCart) (models.ProductCart, error) {
	line.ID = r.nextLineID
	r.nextLineID++
	r.lines = append(r.lines, line)
	return line, nil
}

func (r *fakeCartRepo) Lines(_ context.Context, cartID int64) ([]models.ProductCart, error) {
	var out []models.ProductCart
	for _, line := range r.lines {
		if line.CartID == cartID {
			out = append(out, line)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[int64]models.Customer
}

func (r *fakeCustomerRepo) Get(_ context.Context, id int64) (models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return models.Customer{}, repository.ErrCustomerNotFound
	}
	return customer, nil
}
