package repository

import (
	"github.com/google/uuid"

	"retail_admin/internal/events"
	"retail_admin/internal/models"
	"retail_admin/internal/providers"
	"retail_admin/internal/schemas"
)

// UserRepository wraps the user provider with input validation and event
// emission. Reads come back as UserResponse so password hashes never reach
// a handler; the raw model escapes only through the auth-facing lookups.
type UserRepository interface {
	GetAll() ([]schemas.UserResponse, error)
	GetByID(id uuid.UUID) (*schemas.UserResponse, error)
	GetByMobile(mobile string) (*models.User, error)
	GetByRole(role string) ([]schemas.UserResponse, error)
	SearchUsers(query string) ([]schemas.UserResponse, error)
	GetUsersByRetailer(retailerID uuid.UUID) ([]schemas.UserResponse, error)
	GetRetailersByEmployee(employeeID uuid.UUID) ([]schemas.UserResponse, error)
	ValidatePassword(mobile, password string) (*models.User, error)
	Create(input schemas.CreateUser) (*schemas.UserResponse, error)
	Update(input schemas.UpdateUser) (*schemas.UserResponse, error)
	Delete(id uuid.UUID) error
}

type userRepository struct {
	provider providers.UserProvider
	bus      *events.Bus
}

func NewUserRepository(provider providers.UserProvider, bus *events.Bus) UserRepository {
	return &userRepository{provider: provider, bus: bus}
}

func (r *userRepository) GetAll() ([]schemas.UserResponse, error) {
	users, err := r.provider.GetAll()
	if err != nil {
		return nil, err
	}
	return schemas.NewUserResponses(users), nil
}

func (r *userRepository) GetByID(id uuid.UUID) (*schemas.UserResponse, error) {
	user, err := r.provider.GetByID(id)
	if err != nil || user == nil {
		return nil, err
	}
	return schemas.NewUserResponse(user), nil
}

func (r *userRepository) GetByMobile(mobile string) (*models.User, error) {
	return r.provider.GetByMobile(mobile)
}

func (r *userRepository) GetByRole(role string) ([]schemas.UserResponse, error) {
	users, err := r.provider.GetByRole(role)
	if err != nil {
		return nil, err
	}
	return schemas.NewUserResponses(users), nil
}

func (r *userRepository) SearchUsers(query string) ([]schemas.UserResponse, error) {
	users, err := r.provider.SearchUsers(query)
	if err != nil {
		return nil, err
	}
	return schemas.NewUserResponses(users), nil
}

func (r *userRepository) GetUsersByRetailer(retailerID uuid.UUID) ([]schemas.UserResponse, error) {
	users, err := r.provider.GetUsersByRetailer(retailerID)
	if err != nil {
		return nil, err
	}
	return schemas.NewUserResponses(users), nil
}

func (r *userRepository) GetRetailersByEmployee(employeeID uuid.UUID) ([]schemas.UserResponse, error) {
	users, err := r.provider.GetRetailersByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return schemas.NewUserResponses(users), nil
}

func (r *userRepository) ValidatePassword(mobile, password string) (*models.User, error) {
	return r.provider.ValidatePassword(mobile, password)
}

func (r *userRepository) Create(input schemas.CreateUser) (*schemas.UserResponse, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	user, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}

	response := schemas.NewUserResponse(user)
	r.bus.Publish(events.New(events.EntityUser, events.OpCreated, response))
	return response, nil
}

func (r *userRepository) Update(input schemas.UpdateUser) (*schemas.UserResponse, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	user, err := r.provider.Update(input)
	if err != nil || user == nil {
		return nil, err
	}

	response := schemas.NewUserResponse(user)
	r.bus.Publish(events.New(events.EntityUser, events.OpUpdated, response))
	return response, nil
}

func (r *userRepository) Delete(id uuid.UUID) error {
	if err := r.provider.Delete(id); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityUser, events.OpDeleted, map[string]interface{}{"id": id}))
	return nil
}

type WorkerRepository interface {
	GetAll() ([]models.Worker, error)
	GetByID(id uuid.UUID) (*models.Worker, error)
	GetByRetailerAndEmployee(retailerID, employeeID uuid.UUID) (*models.Worker, error)
	GetByRetailer(retailerID uuid.UUID) ([]models.Worker, error)
	GetByEmployee(employeeID uuid.UUID) ([]models.Worker, error)
	Create(input schemas.CreateWorker) (*models.Worker, error)
	Delete(id uuid.UUID) error
	DeleteByRetailerAndEmployee(retailerID, employeeID uuid.UUID) error
}

type workerRepository struct {
	provider providers.WorkerProvider
	bus      *events.Bus
}

func NewWorkerRepository(provider providers.WorkerProvider, bus *events.Bus) WorkerRepository {
	return &workerRepository{provider: provider, bus: bus}
}

func (r *workerRepository) GetAll() ([]models.Worker, error) {
	return r.provider.GetAll()
}

// GetByID passes the composite-key refusal through unchanged.
func (r *workerRepository) GetByID(id uuid.UUID) (*models.Worker, error) {
	return r.provider.GetByID(id)
}

func (r *workerRepository) GetByRetailerAndEmployee(retailerID, employeeID uuid.UUID) (*models.Worker, error) {
	return r.provider.GetByRetailerAndEmployee(retailerID, employeeID)
}

func (r *workerRepository) GetByRetailer(retailerID uuid.UUID) ([]models.Worker, error) {
	return r.provider.GetByRetailer(retailerID)
}

func (r *workerRepository) GetByEmployee(employeeID uuid.UUID) ([]models.Worker, error) {
	return r.provider.GetByEmployee(employeeID)
}

func (r *workerRepository) Create(input schemas.CreateWorker) (*models.Worker, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	worker, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityWorker, events.OpCreated, worker))
	return worker, nil
}

func (r *workerRepository) Delete(id uuid.UUID) error {
	return r.provider.Delete(id)
}

func (r *workerRepository) DeleteByRetailerAndEmployee(retailerID, employeeID uuid.UUID) error {
	if err := r.provider.DeleteByRetailerAndEmployee(retailerID, employeeID); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityWorker, events.OpDeleted, map[string]interface{}{
		"retailerId": retailerID,
		"employeeId": employeeID,
	}))
	return nil
}
