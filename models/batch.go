package models

import "time"

// Batch is a stock lot of one product. Quantity is only read here; sales
// decrement it elsewhere.
type Batch struct {
	ID              int64
	ProductID       int64
	CurrentQuantity int
	DueDate         time.Time
	OrderEntryID    int64
}

// BatchWarehouse is a batch row joined with the warehouse it sits in,
// resolved through the order entry and section chain.
type BatchWarehouse struct {
	Batch
	WarehouseID int64
}

type BatchView struct {
	BatchNumber     int64  `json:"batch_number"`
	CurrentQuantity int    `json:"current_quantity"`
	DueDate         string `json:"due_date"`
}

// ProductStockResponse is the product together with its batches, filtered and
// ordered for the stock listing.
type ProductStockResponse struct {
	ProductID    int64       `json:"product_id"`
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	CategoryName string      `json:"category_name"`
	Batches      []BatchView `json:"batches"`
}

type WarehouseTotal struct {
	WarehouseCode int64 `json:"warehouse_code"`
	TotalQuantity int   `json:"total_quantity"`
}

type ProductWarehouseStock struct {
	ProductID  int64            `json:"product_id"`
	Warehouses []WarehouseTotal `json:"warehouses"`
}
