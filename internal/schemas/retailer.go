package schemas

import "github.com/google/uuid"

type CreateRetailerAccount struct {
	RetailerID uuid.UUID `json:"retailerId" validate:"required"`
	Coins      int       `json:"coins" validate:"gte=0"`
}

type UpdateRetailerAccount struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Coins int       `json:"coins" validate:"gte=0"`
}

type CreateRetailerOrder struct {
	RetailerID     uuid.UUID `json:"retailerId" validate:"required"`
	PaymentDetails string    `json:"paymentDetails,omitempty"`
	OrderStatus    string    `json:"orderStatus,omitempty" validate:"omitempty,oneof=pending completed cancelled"`
}

type UpdateRetailerOrder struct {
	ID             uuid.UUID `json:"id" validate:"required"`
	OrderStatus    *string   `json:"orderStatus,omitempty" validate:"omitempty,oneof=pending completed cancelled"`
	PaymentDetails *string   `json:"paymentDetails,omitempty"`
}

type CreateRetailerOrderItem struct {
	OrderID   uuid.UUID `json:"orderId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=1"`
	Price     string    `json:"price" validate:"required,min=1"`
}

type UpdateRetailerOrderItem struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Quantity *int      `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Price    *string   `json:"price,omitempty" validate:"omitempty,min=1"`
}

type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=1"`
	Price     string    `json:"price" validate:"required,min=1"`
}

// CompleteRetailerOrder creates an order together with its items.
type CompleteRetailerOrder struct {
	RetailerID     uuid.UUID        `json:"retailerId" validate:"required"`
	PaymentDetails string           `json:"paymentDetails,omitempty"`
	Items          []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}
