package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RetailerAccount struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	RetailerID uuid.UUID `json:"retailerId" gorm:"type:uuid;not null;uniqueIndex:retailer_accounts_unique_idx"`
	Coins      int       `json:"coins" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"createdAt"`

	Retailer *User `json:"retailer,omitempty" gorm:"foreignKey:RetailerID;constraint:OnDelete:CASCADE"`
}

func (a *RetailerAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
