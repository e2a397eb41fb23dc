package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Password  string    `json:"password,omitempty"`
	Email     string    `json:"email,omitempty" gorm:"index:users_email_idx"`
	Mobile    string    `json:"mobile" gorm:"not null;index:users_mobile_idx"`
	Role      string    `json:"role" gorm:"not null;index:users_role_idx"` // admin, employee, retailer
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
	RoleRetailer UserRole = "retailer"
)

// Worker links a retailer user to an employee user. The pair is the key;
// there is no surrogate id.
type Worker struct {
	RetailerID uuid.UUID `json:"retailerId" gorm:"type:uuid;primaryKey;index:workers_retailer_idx"`
	EmployeeID uuid.UUID `json:"employeeId" gorm:"type:uuid;primaryKey;index:workers_employee_idx"`

	Retailer *User `json:"-" gorm:"foreignKey:RetailerID;constraint:OnDelete:CASCADE"`
	Employee *User `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}
