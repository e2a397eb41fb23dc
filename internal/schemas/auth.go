package schemas

type Login struct {
	Mobile   string `json:"mobile" validate:"required,min=10"`
	Password string `json:"password" validate:"required,min=6"`
}

type Signup struct {
	Name     string `json:"name" validate:"required"`
	Mobile   string `json:"mobile" validate:"required,min=10"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required,oneof=admin employee retailer"`
}

type RefreshToken struct {
	Token string `json:"token" validate:"required"`
}
