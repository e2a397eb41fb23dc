package providers

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"retail_admin/internal/models"
	"retail_admin/internal/schemas"
)

const defaultLowStockThreshold = 10

type AdminInventoryProvider interface {
	Crud[models.AdminInventory, schemas.CreateAdminInventory, schemas.UpdateAdminInventory]
	GetByProduct(productID uuid.UUID) (*models.AdminInventory, error)
	GetLowStock(threshold int) ([]models.AdminInventory, error)
	UpdateQuantity(productID uuid.UUID, quantity int) (*models.AdminInventory, error)
}

type adminInventoryProvider struct {
	db *gorm.DB
}

func NewAdminInventoryProvider(db *gorm.DB) AdminInventoryProvider {
	return &adminInventoryProvider{db: db}
}

func (p *adminInventoryProvider) GetAll() ([]models.AdminInventory, error) {
	var rows []models.AdminInventory
	err := p.db.Preload("Product").Find(&rows).Error
	return rows, err
}

func (p *adminInventoryProvider) GetByID(id uuid.UUID) (*models.AdminInventory, error) {
	var row models.AdminInventory
	err := p.db.First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (p *adminInventoryProvider) GetByProduct(productID uuid.UUID) (*models.AdminInventory, error) {
	var row models.AdminInventory
	err := p.db.First(&row, "product_id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (p *adminInventoryProvider) GetLowStock(threshold int) ([]models.AdminInventory, error) {
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	var rows []models.AdminInventory
	err := p.db.Preload("Product").Where("quantity <= ?", threshold).Find(&rows).Error
	return rows, err
}

func (p *adminInventoryProvider) Create(input schemas.CreateAdminInventory) (*models.AdminInventory, error) {
	row := models.AdminInventory{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := p.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update always stamps a fresh updatedAt alongside the quantity.
func (p *adminInventoryProvider) Update(input schemas.UpdateAdminInventory) (*models.AdminInventory, error) {
	tx := p.db.Model(&models.AdminInventory{}).
		Where("id = ?", input.ID).
		Updates(map[string]interface{}{
			"quantity":   input.Quantity,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *adminInventoryProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.AdminInventory{}, "id = ?", id).Error
}

func (p *adminInventoryProvider) UpdateQuantity(productID uuid.UUID, quantity int) (*models.AdminInventory, error) {
	tx := p.db.Model(&models.AdminInventory{}).
		Where("product_id = ?", productID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByProduct(productID)
}

type RetailerInventoryProvider interface {
	GetAll() ([]models.RetailerInventory, error)
	GetByID(id uuid.UUID) (*models.RetailerInventory, error)
	GetByRetailer(retailerID uuid.UUID) ([]models.RetailerInventory, error)
	GetByRetailerAndProduct(retailerID, productID uuid.UUID) (*models.RetailerInventory, error)
	Create(input schemas.RetailerInventoryInput) (*models.RetailerInventory, error)
	Update(input schemas.RetailerInventoryInput) (*models.RetailerInventory, error)
	Delete(id uuid.UUID) error
	DeleteByRetailerAndProduct(retailerID, productID uuid.UUID) error
}

type retailerInventoryProvider struct {
	db *gorm.DB
}

func NewRetailerInventoryProvider(db *gorm.DB) RetailerInventoryProvider {
	return &retailerInventoryProvider{db: db}
}

func (p *retailerInventoryProvider) GetAll() ([]models.RetailerInventory, error) {
	var rows []models.RetailerInventory
	err := p.db.Preload("Product").Find(&rows).Error
	return rows, err
}

// GetByID fails fast: retailer inventory is keyed by (retailerId, productId).
func (p *retailerInventoryProvider) GetByID(id uuid.UUID) (*models.RetailerInventory, error) {
	return nil, fmt.Errorf("%w: use GetByRetailerAndProduct instead", ErrCompositeKey)
}

func (p *retailerInventoryProvider) GetByRetailer(retailerID uuid.UUID) ([]models.RetailerInventory, error) {
	var rows []models.RetailerInventory
	err := p.db.Preload("Product").Where("retailer_id = ?", retailerID).Find(&rows).Error
	return rows, err
}

func (p *retailerInventoryProvider) GetByRetailerAndProduct(retailerID, productID uuid.UUID) (*models.RetailerInventory, error) {
	var row models.RetailerInventory
	err := p.db.First(&row, "retailer_id = ? AND product_id = ?", retailerID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (p *retailerInventoryProvider) Create(input schemas.RetailerInventoryInput) (*models.RetailerInventory, error) {
	row := models.RetailerInventory{
		RetailerID: input.RetailerID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
	}
	if err := p.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (p *retailerInventoryProvider) Update(input schemas.RetailerInventoryInput) (*models.RetailerInventory, error) {
	tx := p.db.Model(&models.RetailerInventory{}).
		Where("retailer_id = ? AND product_id = ?", input.RetailerID, input.ProductID).
		Update("quantity", input.Quantity)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByRetailerAndProduct(input.RetailerID, input.ProductID)
}

// Delete fails fast for the same reason as GetByID.
func (p *retailerInventoryProvider) Delete(id uuid.UUID) error {
	return fmt.Errorf("%w: use DeleteByRetailerAndProduct instead", ErrCompositeKey)
}

func (p *retailerInventoryProvider) DeleteByRetailerAndProduct(retailerID, productID uuid.UUID) error {
	return p.db.Delete(&models.RetailerInventory{}, "retailer_id = ? AND product_id = ?", retailerID, productID).Error
}
