package dto

import "maludy/infras/paypal"

type CreateOrderRequest struct {
	// Price is the order total in whole currency units.
	Price       int    `json:"price"       validate:"required,gt=0"`
	Description string `json:"description" validate:"required,max=200"`
}

type OrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (r *OrderResponse) FromOrder(order paypal.Order) {
	r.ID = order.ID
	r.Status = order.Status
}

type CaptureOrderRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}
