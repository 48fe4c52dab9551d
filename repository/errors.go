package repository

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrBatchNotFound    = errors.New("batch not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrCustomerNotFound = errors.New("customer not found")
)
