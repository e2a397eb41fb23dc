package schemas

import "github.com/google/uuid"

type CreateAdminInventory struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

type UpdateAdminInventory struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Quantity int       `json:"quantity" validate:"gte=0"`
}

// Create and update share the full composite shape for retailer inventory.
type RetailerInventoryInput struct {
	RetailerID uuid.UUID `json:"retailerId" validate:"required"`
	ProductID  uuid.UUID `json:"productId" validate:"required"`
	Quantity   int       `json:"quantity" validate:"gte=0"`
}
