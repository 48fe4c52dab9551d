package requests

type CreateCart struct {
	BuyerID  int64               `json:"buyer_id" binding:"required"`
	Date     string              `json:"date" binding:"required"`
	Status   string              `json:"status" binding:"omitempty,oneof=OPEN FINISHED"`
	Products []CreateCartProduct `json:"products" binding:"required,min=1,dive"`
}

type CreateCartProduct struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}
