package schemas

import "github.com/google/uuid"

type CreateProductDetails struct {
	ShortDescription string `json:"shortDescription,omitempty"`
	LongDescription  string `json:"longDescription,omitempty"`
	Categories       string `json:"categories,omitempty"`
}

type CreateProduct struct {
	Name      string    `json:"name" validate:"required,min=1"`
	SKU       string    `json:"sku" validate:"required,min=1"`
	IsPrimary bool      `json:"isPrimary"`
	DetailsID uuid.UUID `json:"details" validate:"required"`
	Price     string    `json:"price" validate:"required,min=1"`
}

type UpdateProduct struct {
	ID        uuid.UUID  `json:"id" validate:"required"`
	Name      *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	SKU       *string    `json:"sku,omitempty" validate:"omitempty,min=1"`
	IsPrimary *bool      `json:"isPrimary,omitempty"`
	DetailsID *uuid.UUID `json:"details,omitempty"`
	Price     *string    `json:"price,omitempty" validate:"omitempty,min=1"`
}

type UpdateProductDetails struct {
	ID               uuid.UUID `json:"id" validate:"required"`
	ShortDescription *string   `json:"shortDescription,omitempty"`
	LongDescription  *string   `json:"longDescription,omitempty"`
	Categories       *string   `json:"categories,omitempty"`
}

type CreateProductColor struct {
	Name string `json:"name" validate:"required,min=1"`
	Hex  string `json:"hex" validate:"required,hexcolor"`
}

type UpdateProductColor struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Name *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Hex  *string   `json:"hex,omitempty" validate:"omitempty,hexcolor"`
}

type CreateProductSize struct {
	Name string `json:"name" validate:"required,min=1"`
}

type UpdateProductSize struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Name *string   `json:"name,omitempty" validate:"omitempty,min=1"`
}

type CreateProductCategory struct {
	Name string `json:"name" validate:"required,min=1"`
}

type UpdateProductCategory struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Name *string   `json:"name,omitempty" validate:"omitempty,min=1"`
}

type CreateProductImage struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	ImageURL  string    `json:"imageUrl" validate:"required,url"`
	IsPrimary bool      `json:"isPrimary"`
}

type UpdateProductImage struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	ImageURL  *string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
	IsPrimary *bool     `json:"isPrimary,omitempty"`
}
