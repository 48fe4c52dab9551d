package models

// Product represents the business domain model
type Product struct {
	ID           int64
	Name         string
	Type         string
	CategoryName string
	Price        float64
}

// NewProductInput represents input for product creation
type NewProductInput struct {
	Name         string
	Type         string
	CategoryName string
	Price        float64
}

// ProductView represents output for product data
type ProductView struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	CategoryName string  `json:"category_name"`
	Price        float64 `json:"price"`
}

// UpdateProductResponse carries the confirmation message together with the
// refreshed product view.
type UpdateProductResponse struct {
	Message string      `json:"message"`
	Product ProductView `json:"product"`
}

func (p Product) View() ProductView {
	return ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Type:         p.Type,
		CategoryName: p.CategoryName,
		Price:        p.Price,
	}
}
