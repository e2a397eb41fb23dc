package repository

import (
	"errors"

	"github.com/google/uuid"

	"retail_admin/internal/events"
	"retail_admin/internal/providers"
	"retail_admin/internal/schemas"
)

// ErrUserExists signals a signup with a mobile number already on file.
var ErrUserExists = errors.New("user already exists")

// AuthResult pairs the authenticated user with a fresh token pair.
type AuthResult struct {
	User         *schemas.UserResponse
	AccessToken  string
	RefreshToken string
}

// AuthRepository implements the login, signup and refresh flows. Login and
// Refresh return (nil, nil) for bad credentials or invalid tokens so the
// handler can map absence to a 401 without inspecting error strings.
type AuthRepository interface {
	Login(input schemas.Login) (*AuthResult, error)
	Signup(input schemas.Signup) (*AuthResult, error)
	Refresh(token string) (*AuthResult, error)
}

type authRepository struct {
	users providers.UserProvider
	auth  providers.AuthProvider
	bus   *events.Bus
}

func NewAuthRepository(users providers.UserProvider, auth providers.AuthProvider, bus *events.Bus) AuthRepository {
	return &authRepository{users: users, auth: auth, bus: bus}
}

func (r *authRepository) Login(input schemas.Login) (*AuthResult, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	user, err := r.users.ValidatePassword(input.Mobile, input.Password)
	if err != nil || user == nil {
		return nil, err
	}

	return r.issueTokens(user.ID, user.Role, schemas.NewUserResponse(user))
}

func (r *authRepository) Signup(input schemas.Signup) (*AuthResult, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	existing, err := r.users.GetByMobile(input.Mobile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user, err := r.users.Create(schemas.CreateUser{
		Name:     input.Name,
		Password: input.Password,
		Email:    input.Email,
		Mobile:   input.Mobile,
		Role:     input.Role,
	})
	if err != nil {
		return nil, err
	}

	response := schemas.NewUserResponse(user)
	r.bus.Publish(events.New(events.EntityUser, events.OpCreated, response))

	return r.issueTokens(user.ID, user.Role, response)
}

// Refresh exchanges a valid refresh token for a new token pair. The user is
// re-read so a role change takes effect on the next access token.
func (r *authRepository) Refresh(token string) (*AuthResult, error) {
	claims, err := r.auth.VerifyRefreshToken(token)
	if err != nil || claims == nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, nil
	}

	user, err := r.users.GetByID(userID)
	if err != nil || user == nil {
		return nil, err
	}

	return r.issueTokens(user.ID, user.Role, schemas.NewUserResponse(user))
}

func (r *authRepository) issueTokens(id uuid.UUID, role string, user *schemas.UserResponse) (*AuthResult, error) {
	access, err := r.auth.GenerateAccessToken(id, role)
	if err != nil {
		return nil, err
	}
	refresh, err := r.auth.GenerateRefreshToken(id, role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
