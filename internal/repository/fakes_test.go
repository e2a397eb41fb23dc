package repository_test

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"retail_admin/internal/events"
	"retail_admin/internal/models"
	"retail_admin/internal/providers"
	"retail_admin/internal/schemas"
)

// The fakes below satisfy the provider interfaces with in-memory maps so
// repository behavior can be exercised without a database.

type fakeUserProvider struct {
	users       map[uuid.UUID]models.User
	createCalls int
	updateCalls int
}

func newFakeUserProvider() *fakeUserProvider {
	return &fakeUserProvider{users: map[uuid.UUID]models.User{}}
}

func (f *fakeUserProvider) add(u models.User) models.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserProvider) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserProvider) GetByID(id uuid.UUID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserProvider) GetByMobile(mobile string) (*models.User, error) {
	for _, u := range f.users {
		if u.Mobile == mobile {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserProvider) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserProvider) GetByRole(role string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserProvider) SearchUsers(query string) ([]models.User, error) {
	return f.GetAll()
}

func (f *fakeUserProvider) Create(input schemas.CreateUser) (*models.User, error) {
	f.createCalls++
	u := f.add(models.User{
		Name:     input.Name,
		Password: input.Password,
		Email:    input.Email,
		Mobile:   input.Mobile,
		Role:     input.Role,
	})
	return &u, nil
}

func (f *fakeUserProvider) Update(input schemas.UpdateUser) (*models.User, error) {
	f.updateCalls++
	u, ok := f.users[input.ID]
	if !ok {
		return nil, nil
	}
	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.Mobile != nil {
		u.Mobile = *input.Mobile
	}
	f.users[input.ID] = u
	return &u, nil
}

func (f *fakeUserProvider) Delete(id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserProvider) ValidatePassword(mobile, password string) (*models.User, error) {
	u, _ := f.GetByMobile(mobile)
	if u == nil || u.Password == "" || u.Password != password {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserProvider) GetUsersByRetailer(uuid.UUID) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserProvider) GetRetailersByEmployee(uuid.UUID) ([]models.User, error) {
	return nil, nil
}

type fakeOrderProvider struct {
	orders map[uuid.UUID]models.RetailerOrder
}

func newFakeOrderProvider() *fakeOrderProvider {
	return &fakeOrderProvider{orders: map[uuid.UUID]models.RetailerOrder{}}
}

func (f *fakeOrderProvider) GetAll() ([]models.RetailerOrder, error) {
	out := make([]models.RetailerOrder, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderProvider) GetByID(id uuid.UUID) (*models.RetailerOrder, error) {
	if o, ok := f.orders[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (f *fakeOrderProvider) GetByRetailer(retailerID uuid.UUID) ([]models.RetailerOrder, error) {
	var out []models.RetailerOrder
	for _, o := range f.orders {
		if o.RetailerID == retailerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderProvider) GetOrderWithItems(orderID uuid.UUID) (*models.RetailerOrder, error) {
	return f.GetByID(orderID)
}

func (f *fakeOrderProvider) GetOrdersByStatus(status string) ([]models.RetailerOrder, error) {
	var out []models.RetailerOrder
	for _, o := range f.orders {
		if o.OrderStatus == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderProvider) GetOrderStatistics() (*providers.OrderCounts, error) {
	counts := &providers.OrderCounts{}
	for _, o := range f.orders {
		counts.Total++
		switch o.OrderStatus {
		case "pending":
			counts.Pending++
		case "completed":
			counts.Completed++
		case "cancelled":
			counts.Cancelled++
		}
	}
	return counts, nil
}

func (f *fakeOrderProvider) GetCompletedRevenue() (float64, error) {
	return 0, nil
}

func (f *fakeOrderProvider) Create(input schemas.CreateRetailerOrder) (*models.RetailerOrder, error) {
	o := models.RetailerOrder{
		ID:             uuid.New(),
		RetailerID:     input.RetailerID,
		PaymentDetails: input.PaymentDetails,
		OrderStatus:    input.OrderStatus,
		CreatedAt:      time.Now(),
	}
	if o.OrderStatus == "" {
		o.OrderStatus = "pending"
	}
	f.orders[o.ID] = o
	return &o, nil
}

func (f *fakeOrderProvider) Update(input schemas.UpdateRetailerOrder) (*models.RetailerOrder, error) {
	o, ok := f.orders[input.ID]
	if !ok {
		return nil, nil
	}
	if input.OrderStatus != nil {
		o.OrderStatus = *input.OrderStatus
	}
	if input.PaymentDetails != nil {
		o.PaymentDetails = *input.PaymentDetails
	}
	f.orders[input.ID] = o
	return &o, nil
}

func (f *fakeOrderProvider) Delete(id uuid.UUID) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderProvider) UpdateStatus(id uuid.UUID, status string) (*models.RetailerOrder, error) {
	return f.Update(schemas.UpdateRetailerOrder{ID: id, OrderStatus: &status})
}

type fakeOrderItemProvider struct {
	items map[uuid.UUID]models.RetailerOrderItem
}

func newFakeOrderItemProvider() *fakeOrderItemProvider {
	return &fakeOrderItemProvider{items: map[uuid.UUID]models.RetailerOrderItem{}}
}

func (f *fakeOrderItemProvider) GetAll() ([]models.RetailerOrderItem, error) {
	out := make([]models.RetailerOrderItem, 0, len(f.items))
	for _, i := range f.items {
		out = append(out, i)
	}
	return out, nil
}

func (f *fakeOrderItemProvider) GetByID(id uuid.UUID) (*models.RetailerOrderItem, error) {
	if i, ok := f.items[id]; ok {
		return &i, nil
	}
	return nil, nil
}

func (f *fakeOrderItemProvider) GetByOrder(orderID uuid.UUID) ([]models.RetailerOrderItem, error) {
	var out []models.RetailerOrderItem
	for _, i := range f.items {
		if i.OrderID == orderID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeOrderItemProvider) Create(input schemas.CreateRetailerOrderItem) (*models.RetailerOrderItem, error) {
	i := models.RetailerOrderItem{
		ID:        uuid.New(),
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Price:     input.Price,
	}
	f.items[i.ID] = i
	return &i, nil
}

func (f *fakeOrderItemProvider) CreateMany(inputs []schemas.CreateRetailerOrderItem) ([]models.RetailerOrderItem, error) {
	out := make([]models.RetailerOrderItem, 0, len(inputs))
	for _, input := range inputs {
		i, _ := f.Create(input)
		out = append(out, *i)
	}
	return out, nil
}

func (f *fakeOrderItemProvider) Update(input schemas.UpdateRetailerOrderItem) (*models.RetailerOrderItem, error) {
	i, ok := f.items[input.ID]
	if !ok {
		return nil, nil
	}
	if input.Quantity != nil {
		i.Quantity = *input.Quantity
	}
	if input.Price != nil {
		i.Price = *input.Price
	}
	f.items[input.ID] = i
	return &i, nil
}

func (f *fakeOrderItemProvider) Delete(id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeOrderItemProvider) DeleteByOrder(orderID uuid.UUID) error {
	for id, i := range f.items {
		if i.OrderID == orderID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeOrderItemProvider) GetOrderTotal(orderID uuid.UUID) (float64, error) {
	total := 0.0
	for _, i := range f.items {
		if i.OrderID == orderID {
			price, _ := strconv.ParseFloat(i.Price, 64)
			total += price * float64(i.Quantity)
		}
	}
	return total, nil
}

// eventRecorder collects everything published on a bus during a test.
type eventRecorder struct {
	events []events.Event
}

func recordEvents(bus *events.Bus) *eventRecorder {
	rec := &eventRecorder{}
	bus.Subscribe(func(e events.Event) { rec.events = append(rec.events, e) })
	return rec
}

func (r *eventRecorder) topics() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Topic())
	}
	return out
}
