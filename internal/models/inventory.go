package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminInventory tracks central stock, one row per product.
type AdminInventory struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;uniqueIndex:admin_inventory_unique_idx"`
	Quantity  int       `json:"quantity" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (AdminInventory) TableName() string { return "admin_inventory" }

func (i *AdminInventory) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// RetailerInventory is keyed by (retailerId, productId); no surrogate id.
type RetailerInventory struct {
	RetailerID uuid.UUID `json:"retailerId" gorm:"type:uuid;primaryKey;index:retailer_inventories_retailer_idx"`
	ProductID  uuid.UUID `json:"productId" gorm:"type:uuid;primaryKey;index:retailer_inventories_product_idx"`
	Quantity   int       `json:"quantity" gorm:"not null;default:0"`

	Retailer *User    `json:"-" gorm:"foreignKey:RetailerID;constraint:OnDelete:CASCADE"`
	Product  *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
