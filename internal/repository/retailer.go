package repository

import (
	"github.com/google/uuid"

	"retail_admin/internal/events"
	"retail_admin/internal/models"
	"retail_admin/internal/providers"
	"retail_admin/internal/schemas"
)

type RetailerAccountRepository interface {
	GetAll() ([]schemas.RetailerAccountWithRetailer, error)
	GetByID(id uuid.UUID) (*models.RetailerAccount, error)
	GetByRetailer(retailerID uuid.UUID) (*models.RetailerAccount, error)
	Create(input schemas.CreateRetailerAccount) (*models.RetailerAccount, error)
	Update(input schemas.UpdateRetailerAccount) (*models.RetailerAccount, error)
	Delete(id uuid.UUID) error
	AddCoins(retailerID uuid.UUID, coins int) (*models.RetailerAccount, error)
	DeductCoins(retailerID uuid.UUID, coins int) (*models.RetailerAccount, error)
}

type retailerAccountRepository struct {
	provider providers.RetailerAccountProvider
	bus      *events.Bus
}

func NewRetailerAccountRepository(provider providers.RetailerAccountProvider, bus *events.Bus) RetailerAccountRepository {
	return &retailerAccountRepository{provider: provider, bus: bus}
}

func (r *retailerAccountRepository) GetAll() ([]schemas.RetailerAccountWithRetailer, error) {
	accounts, err := r.provider.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]schemas.RetailerAccountWithRetailer, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, schemas.NewRetailerAccountWithRetailer(account))
	}
	return out, nil
}

func (r *retailerAccountRepository) GetByID(id uuid.UUID) (*models.RetailerAccount, error) {
	return r.provider.GetByID(id)
}

func (r *retailerAccountRepository) GetByRetailer(retailerID uuid.UUID) (*models.RetailerAccount, error) {
	return r.provider.GetByRetailer(retailerID)
}

func (r *retailerAccountRepository) Create(input schemas.CreateRetailerAccount) (*models.RetailerAccount, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	account, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityRetailerAccount, events.OpCreated, account))
	return account, nil
}

func (r *retailerAccountRepository) Update(input schemas.UpdateRetailerAccount) (*models.RetailerAccount, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	account, err := r.provider.Update(input)
	if err != nil || account == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityRetailerAccount, events.OpUpdated, account))
	return account, nil
}

func (r *retailerAccountRepository) Delete(id uuid.UUID) error {
	if err := r.provider.Delete(id); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityRetailerAccount, events.OpDeleted, map[string]interface{}{"id": id}))
	return nil
}

func (r *retailerAccountRepository) AddCoins(retailerID uuid.UUID, coins int) (*models.RetailerAccount, error) {
	account, err := r.provider.AddCoins(retailerID, coins)
	if err != nil || account == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityRetailerAccount, events.OpUpdated, account))
	return account, nil
}

func (r *retailerAccountRepository) DeductCoins(retailerID uuid.UUID, coins int) (*models.RetailerAccount, error) {
	account, err := r.provider.DeductCoins(retailerID, coins)
	if err != nil || account == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityRetailerAccount, events.OpUpdated, account))
	return account, nil
}

type RetailerOrderRepository interface {
	GetAll() ([]schemas.RetailerOrderWithRetailer, error)
	GetByID(id uuid.UUID) (*models.RetailerOrder, error)
	GetByRetailer(retailerID uuid.UUID) ([]models.RetailerOrder, error)
	GetByStatus(status string) ([]schemas.RetailerOrderWithRetailer, error)
	GetWithDetails(orderID uuid.UUID) (*schemas.RetailerOrderWithDetails, error)
	GetStatistics() (*schemas.OrderStatistics, error)
	Create(input schemas.CreateRetailerOrder) (*models.RetailerOrder, error)
	CreateWithItems(input schemas.CompleteRetailerOrder) (*schemas.RetailerOrderWithDetails, error)
	Update(input schemas.UpdateRetailerOrder) (*models.RetailerOrder, error)
	UpdateStatus(id uuid.UUID, status string) (*models.RetailerOrder, error)
	Delete(id uuid.UUID) error
}

type retailerOrderRepository struct {
	orders providers.RetailerOrderProvider
	items  providers.RetailerOrderItemProvider
	bus    *events.Bus
}

func NewRetailerOrderRepository(orders providers.RetailerOrderProvider, items providers.RetailerOrderItemProvider, bus *events.Bus) RetailerOrderRepository {
	return &retailerOrderRepository{orders: orders, items: items, bus: bus}
}

func (r *retailerOrderRepository) GetAll() ([]schemas.RetailerOrderWithRetailer, error) {
	orders, err := r.orders.GetAll()
	if err != nil {
		return nil, err
	}
	return toOrdersWithRetailer(orders), nil
}

func (r *retailerOrderRepository) GetByID(id uuid.UUID) (*models.RetailerOrder, error) {
	return r.orders.GetByID(id)
}

func (r *retailerOrderRepository) GetByRetailer(retailerID uuid.UUID) ([]models.RetailerOrder, error) {
	return r.orders.GetByRetailer(retailerID)
}

func (r *retailerOrderRepository) GetByStatus(status string) ([]schemas.RetailerOrderWithRetailer, error) {
	orders, err := r.orders.GetOrdersByStatus(status)
	if err != nil {
		return nil, err
	}
	return toOrdersWithRetailer(orders), nil
}

func (r *retailerOrderRepository) GetWithDetails(orderID uuid.UUID) (*schemas.RetailerOrderWithDetails, error) {
	order, err := r.orders.GetOrderWithItems(orderID)
	if err != nil || order == nil {
		return nil, err
	}

	total, err := r.items.GetOrderTotal(orderID)
	if err != nil {
		return nil, err
	}

	return r.toOrderWithDetails(order, total), nil
}

func (r *retailerOrderRepository) GetStatistics() (*schemas.OrderStatistics, error) {
	counts, err := r.orders.GetOrderStatistics()
	if err != nil {
		return nil, err
	}
	revenue, err := r.orders.GetCompletedRevenue()
	if err != nil {
		return nil, err
	}

	stats := &schemas.OrderStatistics{
		TotalOrders:     counts.Total,
		PendingOrders:   counts.Pending,
		CompletedOrders: counts.Completed,
		CancelledOrders: counts.Cancelled,
		TotalRevenue:    revenue,
	}
	if counts.Completed > 0 {
		stats.AverageOrder = revenue / float64(counts.Completed)
	}
	return stats, nil
}

func (r *retailerOrderRepository) Create(input schemas.CreateRetailerOrder) (*models.RetailerOrder, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	order, err := r.orders.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityRetailerOrder, events.OpCreated, order))
	return order, nil
}

// CreateWithItems writes the order row, then its items. The two writes are
// not wrapped in a transaction; a failure between them leaves an order with
// no items behind.
func (r *retailerOrderRepository) CreateWithItems(input schemas.CompleteRetailerOrder) (*schemas.RetailerOrderWithDetails, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	order, err := r.orders.Create(schemas.CreateRetailerOrder{
		RetailerID:     input.RetailerID,
		PaymentDetails: input.PaymentDetails,
	})
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityRetailerOrder, events.OpCreated, order))

	itemInputs := make([]schemas.CreateRetailerOrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		itemInputs = append(itemInputs, schemas.CreateRetailerOrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	items, err := r.items.CreateMany(itemInputs)
	if err != nil {
		return nil, err
	}
	for i := range items {
		r.bus.Publish(events.New(events.EntityRetailerOrderItem, events.OpCreated, &items[i]))
	}

	order.Items = items
	total, err := r.items.GetOrderTotal(order.ID)
	if err != nil {
		return nil, err
	}
	return r.toOrderWithDetails(order, total), nil
}

func (r *retailerOrderRepository) Update(input schemas.UpdateRetailerOrder) (*models.RetailerOrder, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	order, err := r.orders.Update(input)
	if err != nil || order == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityRetailerOrder, events.OpUpdated, order))
	return order, nil
}

func (r *retailerOrderRepository) UpdateStatus(id uuid.UUID, status string) (*models.RetailerOrder, error) {
	return r.Update(schemas.UpdateRetailerOrder{ID: id, OrderStatus: &status})
}

func (r *retailerOrderRepository) Delete(id uuid.UUID) error {
	if err := r.orders.Delete(id); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityRetailerOrder, events.OpDeleted, map[string]interface{}{"id": id}))
	return nil
}

func (r *retailerOrderRepository) toOrderWithDetails(order *models.RetailerOrder, total float64) *schemas.RetailerOrderWithDetails {
	retailer := schemas.NewUserSummary(order.Retailer)
	items := order.Items
	if items == nil {
		items = []models.RetailerOrderItem{}
	}

	totalItems := 0
	for _, item := range items {
		totalItems += item.Quantity
	}

	flat := *order
	flat.Retailer = nil
	flat.Items = nil
	return &schemas.RetailerOrderWithDetails{
		RetailerOrder: flat,
		Retailer:      retailer,
		Items:         items,
		TotalAmount:   total,
		TotalItems:    totalItems,
	}
}

func toOrdersWithRetailer(orders []models.RetailerOrder) []schemas.RetailerOrderWithRetailer {
	out := make([]schemas.RetailerOrderWithRetailer, 0, len(orders))
	for _, order := range orders {
		out = append(out, schemas.NewRetailerOrderWithRetailer(order))
	}
	return out
}

type RetailerOrderItemRepository interface {
	GetByID(id uuid.UUID) (*models.RetailerOrderItem, error)
	GetByOrder(orderID uuid.UUID) ([]models.RetailerOrderItem, error)
	GetOrderTotal(orderID uuid.UUID) (float64, error)
	Create(input schemas.CreateRetailerOrderItem) (*models.RetailerOrderItem, error)
	Update(input schemas.UpdateRetailerOrderItem) (*models.RetailerOrderItem, error)
	Delete(id uuid.UUID) error
	DeleteByOrder(orderID uuid.UUID) error
}

type retailerOrderItemRepository struct {
	provider providers.RetailerOrderItemProvider
	bus      *events.Bus
}

func NewRetailerOrderItemRepository(provider providers.RetailerOrderItemProvider, bus *events.Bus) RetailerOrderItemRepository {
	return &retailerOrderItemRepository{provider: provider, bus: bus}
}

func (r *retailerOrderItemRepository) GetByID(id uuid.UUID) (*models.RetailerOrderItem, error) {
	return r.provider.GetByID(id)
}

func (r *retailerOrderItemRepository) GetByOrder(orderID uuid.UUID) ([]models.RetailerOrderItem, error) {
	return r.provider.GetByOrder(orderID)
}

func (r *retailerOrderItemRepository) GetOrderTotal(orderID uuid.UUID) (float64, error) {
	return r.provider.GetOrderTotal(orderID)
}

func (r *retailerOrderItemRepository) Create(input schemas.CreateRetailerOrderItem) (*models.RetailerOrderItem, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	item, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityRetailerOrderItem, events.OpCreated, item))
	return item, nil
}

func (r *retailerOrderItemRepository) Update(input schemas.UpdateRetailerOrderItem) (*models.RetailerOrderItem, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	item, err := r.provider.Update(input)
	if err != nil || item == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityRetailerOrderItem, events.OpUpdated, item))
	return item, nil
}

func (r *retailerOrderItemRepository) Delete(id uuid.UUID) error {
	if err := r.provider.Delete(id); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityRetailerOrderItem, events.OpDeleted, map[string]interface{}{"id": id}))
	return nil
}

func (r *retailerOrderItemRepository) DeleteByOrder(orderID uuid.UUID) error {
	if err := r.provider.DeleteByOrder(orderID); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityRetailerOrderItem, events.OpDeleted, map[string]interface{}{"orderId": orderID}))
	return nil
}
