package schemas

import (
	"time"

	"github.com/google/uuid"

	"retail_admin/internal/models"
)

type CreateUser struct {
	Name     string `json:"name" validate:"required,min=1"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Mobile   string `json:"mobile" validate:"required,min=10"`
	Role     string `json:"role" validate:"required,oneof=admin employee retailer"`
}

type UpdateUser struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Name     *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Password *string   `json:"password,omitempty" validate:"omitempty,min=6"`
	Email    *string   `json:"email,omitempty" validate:"omitempty,email"`
	Mobile   *string   `json:"mobile,omitempty" validate:"omitempty,min=10"`
	Role     *string   `json:"role,omitempty" validate:"omitempty,oneof=admin employee retailer"`
}

// UserResponse is the only user shape handed to controllers; it has no
// password field at all, so a hash can never leak into a response.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Mobile    string    `json:"mobile"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *NewUserResponse(&users[i]))
	}
	return out
}

type CreateWorker struct {
	RetailerID uuid.UUID `json:"retailerId" validate:"required"`
	EmployeeID uuid.UUID `json:"employeeId" validate:"required"`
}
