package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RetailerOrder struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	RetailerID     uuid.UUID `json:"retailerId" gorm:"type:uuid;not null;index:retailer_orders_retailer_idx"`
	PaymentDetails string    `json:"paymentDetails,omitempty"`
	OrderStatus    string    `json:"orderStatus" gorm:"default:'pending';index:retailer_orders_status_idx"`
	CreatedAt      time.Time `json:"createdAt" gorm:"index:retailer_orders_created_at_idx"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Retailer *User               `json:"retailer,omitempty" gorm:"foreignKey:RetailerID;constraint:OnDelete:CASCADE"`
	Items    []RetailerOrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (o *RetailerOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type RetailerOrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `json:"orderId" gorm:"type:uuid;not null;index:retailer_order_items_order_idx"`
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;index:retailer_order_items_product_idx"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     string    `json:"price" gorm:"not null"` // price at time of order

	Order   *RetailerOrder `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Product *Product       `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (i *RetailerOrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
