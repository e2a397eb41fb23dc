package schemas

import (
	"github.com/google/uuid"

	"retail_admin/internal/models"
)

// UserSummary is the shape of a user nested inside another entity's
// response (attendance rows, accounts, orders). Never includes a password.
type UserSummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Mobile string    `json:"mobile"`
	Email  string    `json:"email,omitempty"`
	Role   string    `json:"role,omitempty"`
}

func NewUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:     u.ID,
		Name:   u.Name,
		Mobile: u.Mobile,
		Email:  u.Email,
		Role:   u.Role,
	}
}

type AttendanceWithUser struct {
	models.Attendance
	User *UserSummary `json:"user,omitempty"`
}

func NewAttendanceWithUser(a models.Attendance) AttendanceWithUser {
	user := NewUserSummary(a.User)
	a.User = nil
	return AttendanceWithUser{Attendance: a, User: user}
}

type RetailerAccountWithRetailer struct {
	models.RetailerAccount
	Retailer *UserSummary `json:"retailer,omitempty"`
}

func NewRetailerAccountWithRetailer(a models.RetailerAccount) RetailerAccountWithRetailer {
	retailer := NewUserSummary(a.Retailer)
	a.Retailer = nil
	return RetailerAccountWithRetailer{RetailerAccount: a, Retailer: retailer}
}

type RetailerOrderWithRetailer struct {
	models.RetailerOrder
	Retailer *UserSummary `json:"retailer,omitempty"`
}

func NewRetailerOrderWithRetailer(o models.RetailerOrder) RetailerOrderWithRetailer {
	retailer := NewUserSummary(o.Retailer)
	o.Retailer = nil
	o.Items = nil
	return RetailerOrderWithRetailer{RetailerOrder: o, Retailer: retailer}
}

// RetailerOrderWithDetails is an order joined with its items and totals.
type RetailerOrderWithDetails struct {
	models.RetailerOrder
	Retailer    *UserSummary               `json:"retailer,omitempty"`
	Items       []models.RetailerOrderItem `json:"items"`
	TotalAmount float64                    `json:"totalAmount"`
	TotalItems  int                        `json:"totalItems"`
}

type OrderStatistics struct {
	TotalOrders     int64   `json:"totalOrders"`
	PendingOrders   int64   `json:"pendingOrders"`
	CompletedOrders int64   `json:"completedOrders"`
	CancelledOrders int64   `json:"cancelledOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	AverageOrder    float64 `json:"averageOrderValue"`
}

type AttendanceStats struct {
	Total   int64 `json:"total"`
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
	Leave   int64 `json:"leave"`
	Checkin int64 `json:"checkin"`
}

// ProductWithDetails replaces the details foreign key with the joined row.
type ProductWithDetails struct {
	models.Product
	Details *models.ProductDetails `json:"details,omitempty"`
}

func NewProductWithDetails(p models.Product) ProductWithDetails {
	details := p.Details
	p.Details = nil
	return ProductWithDetails{Product: p, Details: details}
}
