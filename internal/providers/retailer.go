package providers

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"retail_admin/internal/models"
	"retail_admin/internal/schemas"
)

var (
	ErrAccountNotFound   = errors.New("retailer account not found")
	ErrInsufficientCoins = errors.New("insufficient coins")
)

type RetailerAccountProvider interface {
	Crud[models.RetailerAccount, schemas.CreateRetailerAccount, schemas.UpdateRetailerAccount]
	GetByRetailer(retailerID uuid.UUID) (*models.RetailerAccount, error)
	AddCoins(retailerID uuid.UUID, coins int) (*models.RetailerAccount, error)
	DeductCoins(retailerID uuid.UUID, coins int) (*models.RetailerAccount, error)
}

type retailerAccountProvider struct {
	db *gorm.DB
}

func NewRetailerAccountProvider(db *gorm.DB) RetailerAccountProvider {
	return &retailerAccountProvider{db: db}
}

func (p *retailerAccountProvider) GetAll() ([]models.RetailerAccount, error) {
	var accounts []models.RetailerAccount
	err := p.db.Preload("Retailer").Find(&accounts).Error
	return accounts, err
}

func (p *retailerAccountProvider) GetByID(id uuid.UUID) (*models.RetailerAccount, error) {
	var account models.RetailerAccount
	err := p.db.First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (p *retailerAccountProvider) GetByRetailer(retailerID uuid.UUID) (*models.RetailerAccount, error) {
	var account models.RetailerAccount
	err := p.db.First(&account, "retailer_id = ?", retailerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (p *retailerAccountProvider) Create(input schemas.CreateRetailerAccount) (*models.RetailerAccount, error) {
	account := models.RetailerAccount{
		RetailerID: input.RetailerID,
		Coins:      input.Coins,
	}
	if err := p.db.Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (p *retailerAccountProvider) Update(input schemas.UpdateRetailerAccount) (*models.RetailerAccount, error) {
	tx := p.db.Model(&models.RetailerAccount{}).
		Where("id = ?", input.ID).
		Update("coins", input.Coins)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *retailerAccountProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.RetailerAccount{}, "id = ?", id).Error
}

// AddCoins reads the balance and writes it back. No transaction wraps the
// two statements; concurrent mutations of the same account can race.
func (p *retailerAccountProvider) AddCoins(retailerID uuid.UUID, coins int) (*models.RetailerAccount, error) {
	account, err := p.GetByRetailer(retailerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return p.Update(schemas.UpdateRetailerAccount{ID: account.ID, Coins: account.Coins + coins})
}

func (p *retailerAccountProvider) DeductCoins(retailerID uuid.UUID, coins int) (*models.RetailerAccount, error) {
	account, err := p.GetByRetailer(retailerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if account.Coins < coins {
		return nil, ErrInsufficientCoins
	}

	return p.Update(schemas.UpdateRetailerAccount{ID: account.ID, Coins: account.Coins - coins})
}

// OrderCounts is the raw aggregate read for order statistics.
type OrderCounts struct {
	Total     int64
	Pending   int64
	Completed int64
	Cancelled int64
}

type RetailerOrderProvider interface {
	Crud[models.RetailerOrder, schemas.CreateRetailerOrder, schemas.UpdateRetailerOrder]
	GetByRetailer(retailerID uuid.UUID) ([]models.RetailerOrder, error)
	GetOrderWithItems(orderID uuid.UUID) (*models.RetailerOrder, error)
	GetOrdersByStatus(status string) ([]models.RetailerOrder, error)
	GetOrderStatistics() (*OrderCounts, error)
	GetCompletedRevenue() (float64, error)
	UpdateStatus(id uuid.UUID, status string) (*models.RetailerOrder, error)
}

type retailerOrderProvider struct {
	db *gorm.DB
}

func NewRetailerOrderProvider(db *gorm.DB) RetailerOrderProvider {
	return &retailerOrderProvider{db: db}
}

func (p *retailerOrderProvider) GetAll() ([]models.RetailerOrder, error) {
	var orders []models.RetailerOrder
	err := p.db.Preload("Retailer").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (p *retailerOrderProvider) GetByID(id uuid.UUID) (*models.RetailerOrder, error) {
	var order models.RetailerOrder
	err := p.db.First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (p *retailerOrderProvider) GetByRetailer(retailerID uuid.UUID) ([]models.RetailerOrder, error) {
	var orders []models.RetailerOrder
	err := p.db.Where("retailer_id = ?", retailerID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (p *retailerOrderProvider) GetOrderWithItems(orderID uuid.UUID) (*models.RetailerOrder, error) {
	var order models.RetailerOrder
	err := p.db.
		Preload("Retailer").
		Preload("Items").
		Preload("Items.Product").
		First(&order, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (p *retailerOrderProvider) GetOrdersByStatus(status string) ([]models.RetailerOrder, error) {
	var orders []models.RetailerOrder
	err := p.db.Preload("Retailer").
		Where("order_status = ?", status).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (p *retailerOrderProvider) GetOrderStatistics() (*OrderCounts, error) {
	var counts OrderCounts
	err := p.db.Model(&models.RetailerOrder{}).
		Select(
			"count(*) as total, " +
				"count(case when order_status = 'pending' then 1 end) as pending, " +
				"count(case when order_status = 'completed' then 1 end) as completed, " +
				"count(case when order_status = 'cancelled' then 1 end) as cancelled").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

// GetCompletedRevenue sums item totals across completed orders only.
func (p *retailerOrderProvider) GetCompletedRevenue() (float64, error) {
	var revenue float64
	err := p.db.Model(&models.RetailerOrderItem{}).
		Joins("INNER JOIN retailer_orders ON retailer_orders.id = retailer_order_items.order_id").
		Where("retailer_orders.order_status = ?", string(models.OrderCompleted)).
		Select("coalesce(sum(cast(retailer_order_items.price as numeric) * retailer_order_items.quantity), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (p *retailerOrderProvider) Create(input schemas.CreateRetailerOrder) (*models.RetailerOrder, error) {
	order := models.RetailerOrder{
		RetailerID:     input.RetailerID,
		PaymentDetails: input.PaymentDetails,
		OrderStatus:    input.OrderStatus,
	}
	if order.OrderStatus == "" {
		order.OrderStatus = string(models.OrderPending)
	}
	if err := p.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (p *retailerOrderProvider) Update(input schemas.UpdateRetailerOrder) (*models.RetailerOrder, error) {
	updates := map[string]interface{}{}
	if input.OrderStatus != nil {
		updates["order_status"] = *input.OrderStatus
	}
	if input.PaymentDetails != nil {
		updates["payment_details"] = *input.PaymentDetails
	}

	if len(updates) == 0 {
		return p.GetByID(input.ID)
	}

	tx := p.db.Model(&models.RetailerOrder{}).Where("id = ?", input.ID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *retailerOrderProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.RetailerOrder{}, "id = ?", id).Error
}

func (p *retailerOrderProvider) UpdateStatus(id uuid.UUID, status string) (*models.RetailerOrder, error) {
	return p.Update(schemas.UpdateRetailerOrder{ID: id, OrderStatus: &status})
}

type RetailerOrderItemProvider interface {
	Crud[models.RetailerOrderItem, schemas.CreateRetailerOrderItem, schemas.UpdateRetailerOrderItem]
	GetByOrder(orderID uuid.UUID) ([]models.RetailerOrderItem, error)
	CreateMany(inputs []schemas.CreateRetailerOrderItem) ([]models.RetailerOrderItem, error)
	DeleteByOrder(orderID uuid.UUID) error
	GetOrderTotal(orderID uuid.UUID) (float64, error)
}

type retailerOrderItemProvider struct {
	db *gorm.DB
}

func NewRetailerOrderItemProvider(db *gorm.DB) RetailerOrderItemProvider {
	return &retailerOrderItemProvider{db: db}
}

func (p *retailerOrderItemProvider) GetAll() ([]models.RetailerOrderItem, error) {
	var items []models.RetailerOrderItem
	err := p.db.Preload("Product").Find(&items).Error
	return items, err
}

func (p *retailerOrderItemProvider) GetByID(id uuid.UUID) (*models.RetailerOrderItem, error) {
	var item models.RetailerOrderItem
	err := p.db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (p *retailerOrderItemProvider) GetByOrder(orderID uuid.UUID) ([]models.RetailerOrderItem, error) {
	var items []models.RetailerOrderItem
	err := p.db.Preload("Product").Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (p *retailerOrderItemProvider) Create(input schemas.CreateRetailerOrderItem) (*models.RetailerOrderItem, error) {
	item := models.RetailerOrderItem{
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Price:     input.Price,
	}
	if err := p.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (p *retailerOrderItemProvider) CreateMany(inputs []schemas.CreateRetailerOrderItem) ([]models.RetailerOrderItem, error) {
	items := make([]models.RetailerOrderItem, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, models.RetailerOrderItem{
			OrderID:   input.OrderID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Price:     input.Price,
		})
	}
	if err := p.db.Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (p *retailerOrderItemProvider) Update(input schemas.UpdateRetailerOrderItem) (*models.RetailerOrderItem, error) {
	updates := map[string]interface{}{}
	if input.Quantity != nil {
		updates["quantity"] = *input.Quantity
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}

	if len(updates) == 0 {
		return p.GetByID(input.ID)
	}

	tx := p.db.Model(&models.RetailerOrderItem{}).Where("id = ?", input.ID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *retailerOrderItemProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.RetailerOrderItem{}, "id = ?", id).Error
}

func (p *retailerOrderItemProvider) DeleteByOrder(orderID uuid.UUID) error {
	return p.db.Delete(&models.RetailerOrderItem{}, "order_id = ?", orderID).Error
}

func (p *retailerOrderItemProvider) GetOrderTotal(orderID uuid.UUID) (float64, error) {
	var total float64
	err := p.db.Model(&models.RetailerOrderItem{}).
		Select("coalesce(sum(cast(price as numeric) * quantity), 0)").
		Where("order_id = ?", orderID).
		Scan(&total).Error
	return total, err
}
