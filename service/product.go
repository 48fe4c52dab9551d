package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/models"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/repository"
)

// freshWeeksThreshold is the number of days a batch must still have until its
// due date to show up in stock listings.
const freshWeeksThreshold = 21

type ProductService interface {
	ListAllProducts(ctx context.Context) ([]models.ProductView, error)
	ListByCategory(ctx context.Context, category string) ([]models.ProductView, error)
	FindProductsByCategoryName(ctx context.Context, categoryName string) ([]models.ProductView, error)
	AggregateStockByWarehouse(ctx context.Context, productID int64) (*models.ProductWarehouseStock, error)
	GetProductWithSortedBatches(ctx context.Context, productID int64, order byte) (*models.ProductStockResponse, error)
	CreateProducts(ctx context.Context, inputs []models.NewProductInput) ([]models.ProductView, error)
	PartialUpdate(ctx context.Context, productID int64, changes map[string]any) (*models.UpdateProductResponse, error)
}

type productService struct {
	productRepo repository.ProductRepository
	batchRepo   repository.BatchRepository
	txm         trm.Manager
	now         func() time.Time
}

func NewProductService(
	productRepo repository.ProductRepository,
	batchRepo repository.BatchRepository,
	txm trm.Manager,
	now func() time.Time,
) ProductService {
	if now == nil {
		now = time.Now
	}
	return &productService{
		productRepo: productRepo,
		batchRepo:   batchRepo,
		txm:         txm,
		now:         now,
	}
}

func (s *productService) ListAllProducts(ctx context.Context) ([]models.ProductView, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if len(products) == 0 {
		return nil, NotFound("No Products Found")
	}
	return productViews(products), nil
}

// ListByCategory filters by the stored type column. The route exposes the
// parameter as category; the lookup key has always been type.
func (s *productService) ListByCategory(ctx context.Context, category string) ([]models.ProductView, error) {
	products, err := s.productRepo.ListByType(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by type: %w", err)
	}
	if len(products) == 0 {
		return nil, NotFound("No Products Found")
	}
	return productViews(products), nil
}

func (s *productService) FindProductsByCategoryName(ctx context.Context, categoryName string) ([]models.ProductView, error) {
	products, err := s.productRepo.ListByCategoryName(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category name: %w", err)
	}
	if len(products) == 0 {
		return nil, NotFound("There is not existing products for this category: %s.", categoryName)
	}
	return productViews(products), nil
}

// AggregateStockByWarehouse accumulates each batch's quantity into the total
// of its warehouse. The output keeps the first-seen order of the warehouses.
func (s *productService) AggregateStockByWarehouse(ctx context.Context, productID int64) (*models.ProductWarehouseStock, error) {
	stock, err := s.batchRepo.ListWarehouseStockByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch stock: %w", err)
	}
	if len(stock) == 0 {
		return nil, NotFound("Could not find valid batch stock for product %d", productID)
	}

	var totals []models.WarehouseTotal
	index := make(map[int64]int, len(stock))
	for _, batch := range stock {
		if i, ok := index[batch.WarehouseID]; ok {
			totals[i].TotalQuantity += batch.CurrentQuantity
			continue
		}
		index[batch.WarehouseID] = len(totals)
		totals = append(totals, models.WarehouseTotal{
			WarehouseCode: batch.WarehouseID,
			TotalQuantity: batch.CurrentQuantity,
		})
	}

	return &models.ProductWarehouseStock{
		ProductID:  productID,
		Warehouses: totals,
	}, nil
}

func (s *productService) GetProductWithSortedBatches(ctx context.Context, productID int64, order byte) (*models.ProductStockResponse, error) {
	product, err := s.productRepo.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, NotFound("Could not find valid product for id %d", productID)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	batches, err := s.batchRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	if len(batches) == 0 {
		return nil, NotFound("No available batch found for this product.")
	}

	today := s.now()
	var fresh []models.Batch
	for _, batch := range batches {
		if daysBetween(today, batch.DueDate) > freshWeeksThreshold {
			fresh = append(fresh, batch)
		}
	}
	if len(fresh) == 0 {
		return nil, NotFound("Product found, but no Batch of given product has 3 or more weeks until due date")
	}

	sortBatches(fresh, order)

	views := make([]models.BatchView, 0, len(fresh))
	for _, batch := range fresh {
		views = append(views, models.BatchView{
			BatchNumber:     batch.ID,
			CurrentQuantity: batch.CurrentQuantity,
			DueDate:         batch.DueDate.Format(time.DateOnly),
		})
	}

	return &models.ProductStockResponse{
		ProductID:    product.ID,
		Name:         product.Name,
		Type:         product.Type,
		CategoryName: product.CategoryName,
		Batches:      views,
	}, nil
}

// sortBatches orders by batch id for 'L', by current quantity for 'Q' and by
// due date for anything else, 'V' included.
func sortBatches(batches []models.Batch, order byte) {
	switch order {
	case 'L':
		sort.Slice(batches, func(i, j int) bool { return batches[i].ID < batches[j].ID })
	case 'Q':
		sort.Slice(batches, func(i, j int) bool { return batches[i].CurrentQuantity < batches[j].CurrentQuantity })
	default:
		sort.Slice(batches, func(i, j int) bool { return batches[i].DueDate.Before(batches[j].DueDate) })
	}
}

// daysBetween counts whole calendar days from now until due.
func daysBetween(now, due time.Time) int {
	now = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(now) / (24 * time.Hour))
}

// CreateProducts is all-or-nothing: any name that already exists rejects the
// whole batch and nothing is persisted.
func (s *productService) CreateProducts(ctx context.Context, inputs []models.NewProductInput) ([]models.ProductView, error) {
	var (
		duplicates []string
		staged     []models.NewProductInput
	)

	for _, input := range inputs {
		existing, err := s.productRepo.GetByName(ctx, input.Name)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				staged = append(staged, input)
				continue
			}
			return nil, fmt.Errorf("failed to check product name: %w", err)
		}
		duplicates = append(duplicates, existing.Name)
	}

	if len(duplicates) > 0 {
		return nil, Forbidden("The product %s already exists.", strings.Join(duplicates, ", "))
	}

	created := make([]models.ProductView, 0, len(staged))
	err := s.txm.Do(ctx, func(ctx context.Context) error {
		for _, input := range staged {
			product, err := s.productRepo.Create(ctx, models.Product{
				Name:         input.Name,
				Type:         input.Type,
				CategoryName: input.CategoryName,
				Price:        input.Price,
			})
			if err != nil {
				return fmt.Errorf("failed to create product %s: %w", input.Name, err)
			}
			created = append(created, product.View())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *productService) PartialUpdate(ctx context.Context, productID int64, changes map[string]any) (*models.UpdateProductResponse, error) {
	product, err := s.productRepo.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, NotFound("Not exists a product with this id: %d", productID)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	// Unrecognized keys are silently ignored.
	for key, value := range changes {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				product.Name = v
			}
		case "type":
			if v, ok := value.(string); ok {
				product.Type = v
			}
		case "categoryName":
			if v, ok := value.(string); ok {
				product.CategoryName = v
			}
		case "price":
			if v, ok := value.(float64); ok {
				product.Price = v
			}
		}
	}

	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &models.UpdateProductResponse{
		Message: fmt.Sprintf("The product %s was successfully updated!", updated.Name),
		Product: updated.View(),
	}, nil
}

func productViews(products []models.Product) []models.ProductView {
	views := make([]models.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, product.View())
	}
	return views
}
