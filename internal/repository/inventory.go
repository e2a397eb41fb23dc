package repository

import (
	"github.com/google/uuid"

	"retail_admin/internal/events"
	"retail_admin/internal/models"
	"retail_admin/internal/providers"
	"retail_admin/internal/schemas"
)

type AdminInventoryRepository interface {
	GetAll() ([]models.AdminInventory, error)
	GetByID(id uuid.UUID) (*models.AdminInventory, error)
	GetByProduct(productID uuid.UUID) (*models.AdminInventory, error)
	GetLowStock(threshold int) ([]models.AdminInventory, error)
	Create(input schemas.CreateAdminInventory) (*models.AdminInventory, error)
	Update(input schemas.UpdateAdminInventory) (*models.AdminInventory, error)
	UpdateQuantity(productID uuid.UUID, quantity int) (*models.AdminInventory, error)
	Delete(id uuid.UUID) error
}

type adminInventoryRepository struct {
	provider providers.AdminInventoryProvider
	bus      *events.Bus
}

func NewAdminInventoryRepository(provider providers.AdminInventoryProvider, bus *events.Bus) AdminInventoryRepository {
	return &adminInventoryRepository{provider: provider, bus: bus}
}

func (r *adminInventoryRepository) GetAll() ([]models.AdminInventory, error) {
	return r.provider.GetAll()
}

func (r *adminInventoryRepository) GetByID(id uuid.UUID) (*models.AdminInventory, error) {
	return r.provider.GetByID(id)
}

func (r *adminInventoryRepository) GetByProduct(productID uuid.UUID) (*models.AdminInventory, error) {
	return r.provider.GetByProduct(productID)
}

func (r *adminInventoryRepository) GetLowStock(threshold int) ([]models.AdminInventory, error) {
	return r.provider.GetLowStock(threshold)
}

func (r *adminInventoryRepository) Create(input schemas.CreateAdminInventory) (*models.AdminInventory, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	row, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityAdminInventory, events.OpCreated, row))
	return row, nil
}

func (r *adminInventoryRepository) Update(input schemas.UpdateAdminInventory) (*models.AdminInventory, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	row, err := r.provider.Update(input)
	if err != nil || row == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityAdminInventory, events.OpUpdated, row))
	return row, nil
}

func (r *adminInventoryRepository) UpdateQuantity(productID uuid.UUID, quantity int) (*models.AdminInventory, error) {
	row, err := r.provider.UpdateQuantity(productID, quantity)
	if err != nil || row == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityAdminInventory, events.OpUpdated, row))
	return row, nil
}

func (r *adminInventoryRepository) Delete(id uuid.UUID) error {
	if err := r.provider.Delete(id); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityAdminInventory, events.OpDeleted, map[string]interface{}{"id": id}))
	return nil
}

type RetailerInventoryRepository interface {
	GetAll() ([]models.RetailerInventory, error)
	GetByID(id uuid.UUID) (*models.RetailerInventory, error)
	GetByRetailer(retailerID uuid.UUID) ([]models.RetailerInventory, error)
	GetByRetailerAndProduct(retailerID, productID uuid.UUID) (*models.RetailerInventory, error)
	Create(input schemas.RetailerInventoryInput) (*models.RetailerInventory, error)
	Update(input schemas.RetailerInventoryInput) (*models.RetailerInventory, error)
	Delete(id uuid.UUID) error
	DeleteByRetailerAndProduct(retailerID, productID uuid.UUID) error
}

type retailerInventoryRepository struct {
	provider providers.RetailerInventoryProvider
	bus      *events.Bus
}

func NewRetailerInventoryRepository(provider providers.RetailerInventoryProvider, bus *events.Bus) RetailerInventoryRepository {
	return &retailerInventoryRepository{provider: provider, bus: bus}
}

func (r *retailerInventoryRepository) GetAll() ([]models.RetailerInventory, error) {
	return r.provider.GetAll()
}

// GetByID passes the composite-key refusal through unchanged.
func (r *retailerInventoryRepository) GetByID(id uuid.UUID) (*models.RetailerInventory, error) {
	return r.provider.GetByID(id)
}

func (r *retailerInventoryRepository) GetByRetailer(retailerID uuid.UUID) ([]models.RetailerInventory, error) {
	return r.provider.GetByRetailer(retailerID)
}

func (r *retailerInventoryRepository) GetByRetailerAndProduct(retailerID, productID uuid.UUID) (*models.RetailerInventory, error) {
	return r.provider.GetByRetailerAndProduct(retailerID, productID)
}

func (r *retailerInventoryRepository) Create(input schemas.RetailerInventoryInput) (*models.RetailerInventory, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	row, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityRetailerInventory, events.OpCreated, row))
	return row, nil
}

func (r *retailerInventoryRepository) Update(input schemas.RetailerInventoryInput) (*models.RetailerInventory, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	row, err := r.provider.Update(input)
	if err != nil || row == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityRetailerInventory, events.OpUpdated, row))
	return row, nil
}

func (r *retailerInventoryRepository) Delete(id uuid.UUID) error {
	return r.provider.Delete(id)
}

func (r *retailerInventoryRepository) DeleteByRetailerAndProduct(retailerID, productID uuid.UUID) error {
	if err := r.provider.DeleteByRetailerAndProduct(retailerID, productID); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityRetailerInventory, events.OpDeleted, map[string]interface{}{
		"retailerId": retailerID,
		"productId":  productID,
	}))
	return nil
}
