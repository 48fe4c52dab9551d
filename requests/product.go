package requests

type NewProduct struct {
	Name         string  `json:"name" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	CategoryName string  `json:"category_name" binding:"required"`
	Price        float64 `json:"price" binding:"required,gte=1"`
}
