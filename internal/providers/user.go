package providers

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"retail_admin/internal/models"
	"retail_admin/internal/schemas"
)

const bcryptCost = 12

type UserProvider interface {
	Crud[models.User, schemas.CreateUser, schemas.UpdateUser]
	GetByMobile(mobile string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByRole(role string) ([]models.User, error)
	SearchUsers(query string) ([]models.User, error)
	ValidatePassword(mobile, password string) (*models.User, error)
	GetUsersByRetailer(retailerID uuid.UUID) ([]models.User, error)
	GetRetailersByEmployee(employeeID uuid.UUID) ([]models.User, error)
}

type userProvider struct {
	db *gorm.DB
}

func NewUserProvider(db *gorm.DB) UserProvider {
	return &userProvider{db: db}
}

func (p *userProvider) GetAll() ([]models.User, error) {
	var users []models.User
	err := p.db.Find(&users).Error
	return users, err
}

func (p *userProvider) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := p.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (p *userProvider) GetByMobile(mobile string) (*models.User, error) {
	var user models.User
	err := p.db.First(&user, "mobile = ?", mobile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (p *userProvider) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := p.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (p *userProvider) GetByRole(role string) ([]models.User, error) {
	var users []models.User
	err := p.db.Where("role = ?", role).Find(&users).Error
	return users, err
}

func (p *userProvider) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	err := p.db.
		Where("name ILIKE ? OR mobile ILIKE ? OR email ILIKE ?", pattern, pattern, pattern).
		Find(&users).Error
	return users, err
}

func (p *userProvider) Create(input schemas.CreateUser) (*models.User, error) {
	user := models.User{
		Name:   input.Name,
		Email:  input.Email,
		Mobile: input.Mobile,
		Role:   input.Role,
	}

	// Hash password if provided
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := p.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (p *userProvider) Update(input schemas.UpdateUser) (*models.User, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Mobile != nil {
		updates["mobile"] = *input.Mobile
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}
	// Hash password if it's being updated
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}

	if len(updates) == 0 {
		return p.GetByID(input.ID)
	}

	tx := p.db.Model(&models.User{}).Where("id = ?", input.ID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *userProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.User{}, "id = ?", id).Error
}

func (p *userProvider) ValidatePassword(mobile, password string) (*models.User, error) {
	user, err := p.GetByMobile(mobile)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password == "" {
		return nil, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

func (p *userProvider) GetUsersByRetailer(retailerID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := p.db.
		Joins("INNER JOIN workers ON workers.employee_id = users.id").
		Where("workers.retailer_id = ?", retailerID).
		Find(&users).Error
	return users, err
}

func (p *userProvider) GetRetailersByEmployee(employeeID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := p.db.
		Joins("INNER JOIN workers ON workers.retailer_id = users.id").
		Where("workers.employee_id = ?", employeeID).
		Find(&users).Error
	return users, err
}

type WorkerProvider interface {
	GetAll() ([]models.Worker, error)
	GetByID(id uuid.UUID) (*models.Worker, error)
	GetByRetailerAndEmployee(retailerID, employeeID uuid.UUID) (*models.Worker, error)
	GetByRetailer(retailerID uuid.UUID) ([]models.Worker, error)
	GetByEmployee(employeeID uuid.UUID) ([]models.Worker, error)
	Create(input schemas.CreateWorker) (*models.Worker, error)
	Delete(id uuid.UUID) error
	DeleteByRetailerAndEmployee(retailerID, employeeID uuid.UUID) error
}

type workerProvider struct {
	db *gorm.DB
}

func NewWorkerProvider(db *gorm.DB) WorkerProvider {
	return &workerProvider{db: db}
}

func (p *workerProvider) GetAll() ([]models.Worker, error) {
	var workers []models.Worker
	err := p.db.Find(&workers).Error
	return workers, err
}

// GetByID fails fast: the worker key is (retailerId, employeeId).
func (p *workerProvider) GetByID(id uuid.UUID) (*models.Worker, error) {
	return nil, fmt.Errorf("%w: use GetByRetailerAndEmployee instead", ErrCompositeKey)
}

func (p *workerProvider) GetByRetailerAndEmployee(retailerID, employeeID uuid.UUID) (*models.Worker, error) {
	var worker models.Worker
	err := p.db.First(&worker, "retailer_id = ? AND employee_id = ?", retailerID, employeeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &worker, nil
}

func (p *workerProvider) GetByRetailer(retailerID uuid.UUID) ([]models.Worker, error) {
	var workers []models.Worker
	err := p.db.Where("retailer_id = ?", retailerID).Find(&workers).Error
	return workers, err
}

func (p *workerProvider) GetByEmployee(employeeID uuid.UUID) ([]models.Worker, error) {
	var workers []models.Worker
	err := p.db.Where("employee_id = ?", employeeID).Find(&workers).Error
	return workers, err
}

func (p *workerProvider) Create(input schemas.CreateWorker) (*models.Worker, error) {
	worker := models.Worker{
		RetailerID: input.RetailerID,
		EmployeeID: input.EmployeeID,
	}
	if err := p.db.Create(&worker).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

// Delete fails fast for the same reason as GetByID.
func (p *workerProvider) Delete(id uuid.UUID) error {
	return fmt.Errorf("%w: use DeleteByRetailerAndEmployee instead", ErrCompositeKey)
}

func (p *workerProvider) DeleteByRetailerAndEmployee(retailerID, employeeID uuid.UUID) error {
	return p.db.Delete(&models.Worker{}, "retailer_id = ? AND employee_id = ?", retailerID, employeeID).Error
}
