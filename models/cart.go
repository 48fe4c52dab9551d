package models

import "time"

type CartStatus string

const (
	CartStatusOpen     CartStatus = "OPEN"
	CartStatusFinished CartStatus = "FINISHED"
)

type Cart struct {
	ID         int64
	Date       time.Time
	Status     CartStatus
	CustomerID int64
}

// ProductCart is one line of a cart: a requested quantity of one product.
// Lines are written once at cart creation and never mutated.
type ProductCart struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int
}

type Customer struct {
	ID   int64
	Name string
}

// CartCreateRequest represents input for cart assembly
type CartCreateRequest struct {
	BuyerID  int64
	Date     time.Time
	Status   CartStatus
	Products []CartProductInput
}

type CartProductInput struct {
	ProductID int64
	Quantity  int
}

type TotalPriceResponse struct {
	TotalPrice float64 `json:"total_price"`
}

type CartLineView struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// CartResponse is the composed cart view with per-line subtotals and the
// grand total.
type CartResponse struct {
	CustomerName string         `json:"customer_name"`
	Status       CartStatus     `json:"status"`
	Date         string         `json:"date"`
	Products     []CartLineView `json:"products"`
	Total        float64        `json:"total"`
}

type StatusResponse struct {
	Message string `json:"message"`
}
