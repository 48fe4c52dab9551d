package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/models"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/repository"
)

type CartService interface {
	CreateCart(ctx context.Context, req models.CartCreateRequest) (*models.TotalPriceResponse, error)
	GetCartByID(ctx context.Context, id int64) (*models.CartResponse, error)
	UpdateStatusCart(ctx context.Context, id int64) (*models.StatusResponse, error)
}

type cartService struct {
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	batchRepo    repository.BatchRepository
	txm          trm.Manager
}

func NewCartService(
	cartRepo repository.CartRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	batchRepo repository.BatchRepository,
	txm trm.Manager,
) CartService {
	return &cartService{
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		batchRepo:    batchRepo,
		txm:          txm,
	}
}

// CreateCart persists the cart header and its lines in one transaction and
// returns the total price, summing price times quantity over the lines. A line
// whose requested quantity exceeds the stock of its batch aborts the whole
// cart.
func (s *cartService) CreateCart(ctx context.Context, req models.CartCreateRequest) (*models.TotalPriceResponse, error) {
	var total float64

	err := s.txm.Do(ctx, func(ctx context.Context) error {
		customer, err := s.customerRepo.Get(ctx, req.BuyerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return NotFound("Could not find valid customer for id %d", req.BuyerID)
			}
			return fmt.Errorf("failed to get customer: %w", err)
		}

		status := req.Status
		if status == "" {
			status = models.CartStatusOpen
		}

		cart, err := s.cartRepo.Create(ctx, models.Cart{
			Date:       req.Date,
			Status:     status,
			CustomerID: customer.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to create cart: %w", err)
		}

		for _, item := range req.Products {
			product, err := s.productRepo.Get(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return NotFound("Could not find valid product for id %d", item.ProductID)
				}
				return fmt.Errorf("failed to get product: %w", err)
			}

			batch, err := s.batchRepo.GetByProduct(ctx, product.ID)
			if err != nil {
				if errors.Is(err, repository.ErrBatchNotFound) {
					return NotFound("Could not find valid batch stock for product %d", product.ID)
				}
				return fmt.Errorf("failed to get batch: %w", err)
			}

			if item.Quantity > batch.CurrentQuantity {
				return Forbidden("The product: %s does not have enough quantity in stock.", product.Name)
			}

			_, err = s.cartRepo.AddLine(ctx, models.ProductCart{
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
			})
			if err != nil {
				return fmt.Errorf("failed to add cart line: %w", err)
			}

			total += product.Price * float64(item.Quantity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.TotalPriceResponse{TotalPrice: total}, nil
}

func (s *cartService) GetCartByID(ctx context.Context, id int64) (*models.CartResponse, error) {
	cart, err := s.cartRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, NotFound("Could not find valid cart for id %d", id)
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	customer, err := s.customerRepo.Get(ctx, cart.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	lines, err := s.cartRepo.Lines(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}

	var total float64
	views := make([]models.CartLineView, 0, len(lines))
	for _, line := range lines {
		product, err := s.productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to get product for cart line: %w", err)
		}

		subtotal := product.Price * float64(line.Quantity)
		views = append(views, models.CartLineView{
			Name:     product.Name,
			Type:     product.Type,
			Price:    product.Price,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		total += subtotal
	}

	return &models.CartResponse{
		CustomerName: customer.Name,
		Status:       cart.Status,
		Date:         cart.Date.Format(time.DateOnly),
		Products:     views,
		Total:        total,
	}, nil
}

// UpdateStatusCart finishes an open cart. The transition is one way: a cart
// that is already finished stays finished.
func (s *cartService) UpdateStatusCart(ctx context.Context, id int64) (*models.StatusResponse, error) {
	cart, err := s.cartRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, NotFound("Cart not found with this id")
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if cart.Status == models.CartStatusFinished {
		return nil, Conflict("Cart already Finished")
	}

	if err := s.cartRepo.UpdateStatus(ctx, cart.ID, models.CartStatusFinished); err != nil {
		return nil, fmt.Errorf("failed to update cart status: %w", err)
	}

	return &models.StatusResponse{Message: "Cart Finished successfully"}, nil
}
