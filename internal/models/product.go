package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductDetails struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	LongDescription  string    `json:"longDescription,omitempty"`
	Categories       string    `json:"categories,omitempty"`
}

func (d *ProductDetails) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	SKU       string    `json:"sku" gorm:"column:sku;not null;uniqueIndex:products_sku_idx"`
	IsPrimary bool      `json:"isPrimary" gorm:"default:false;index:products_is_primary_idx"`
	DetailsID uuid.UUID `json:"details" gorm:"column:details;type:uuid;not null;index:products_details_idx"`
	Price     string    `json:"price" gorm:"not null"` // decimal-as-text
	CreatedAt time.Time `json:"createdAt" gorm:"index:products_created_at_idx"`

	Details *ProductDetails `json:"-" gorm:"foreignKey:DetailsID;constraint:OnDelete:CASCADE"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ProductColor struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Hex       string    `json:"hex" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *ProductColor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type ProductSize struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *ProductSize) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type ProductCategory struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *ProductCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ProductCategoryProduct joins products to categories, unique per pair.
type ProductCategoryProduct struct {
	ProductID  uuid.UUID `json:"productId" gorm:"type:uuid;primaryKey;index:product_category_products_product_idx"`
	CategoryID uuid.UUID `json:"categoryId" gorm:"type:uuid;primaryKey;index:product_category_products_category_idx"`

	Product  *Product         `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Category *ProductCategory `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// ProductVariant groups a product with another product acting as its variant.
type ProductVariant struct {
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;primaryKey;index:product_variants_product_idx"`
	VariantID uuid.UUID `json:"variantId" gorm:"type:uuid;primaryKey;index:product_variants_variant_idx"`

	MainProduct    *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	VariantProduct *Product `json:"-" gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
}

type ProductImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;index:product_images_product_idx"`
	ImageURL  string    `json:"imageUrl" gorm:"not null"`
	IsPrimary bool      `json:"isPrimary" gorm:"default:false;index:product_images_is_primary_idx"`

	Product *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
