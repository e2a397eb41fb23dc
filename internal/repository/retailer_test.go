package repository_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"

	"retail_admin/internal/events"
	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

func newOrderFixture() (*fakeOrderProvider, *fakeOrderItemProvider, repository.RetailerOrderRepository, *eventRecorder) {
	orders := newFakeOrderProvider()
	items := newFakeOrderItemProvider()
	bus := events.NewBus(events.DbChannel, nil)
	rec := recordEvents(bus)
	return orders, items, repository.NewRetailerOrderRepository(orders, items, bus), rec
}

func TestCreateWithItems(t *testing.T) {
	c := qt.New(t)

	_, items, repo, rec := newOrderFixture()

	retailerID := uuid.New()
	result, err := repo.CreateWithItems(schemas.CompleteRetailerOrder{
		RetailerID: retailerID,
		Items: []schemas.OrderItemInput{
			{ProductID: uuid.New(), Quantity: 2, Price: "10.50"},
			{ProductID: uuid.New(), Quantity: 1, Price: "5.00"},
		},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(result, qt.IsNotNil)
	c.Assert(result.RetailerID, qt.Equals, retailerID)
	c.Assert(result.OrderStatus, qt.Equals, "pending")
	c.Assert(result.Items, qt.HasLen, 2)
	c.Assert(result.TotalItems, qt.Equals, 3)
	c.Assert(result.TotalAmount, qt.Equals, 26.0)

	stored, err := items.GetByOrder(result.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(stored, qt.HasLen, 2)

	topics := rec.topics()
	c.Assert(topics[0], qt.Equals, "retailer_order.created")
	c.Assert(topics[1:], qt.DeepEquals, []string{"retailer_order_item.created", "retailer_order_item.created"})
}

func TestCreateWithItemsValidation(t *testing.T) {
	c := qt.New(t)

	orders, _, repo, rec := newOrderFixture()

	_, err := repo.CreateWithItems(schemas.CompleteRetailerOrder{RetailerID: uuid.New()})
	c.Assert(err, qt.ErrorIs, schemas.ErrInvalid)
	c.Assert(orders.orders, qt.HasLen, 0)
	c.Assert(rec.events, qt.HasLen, 0)
}

func TestUpdateStatusEmits(t *testing.T) {
	c := qt.New(t)

	orders, _, repo, rec := newOrderFixture()

	created, err := orders.Create(schemas.CreateRetailerOrder{RetailerID: uuid.New()})
	c.Assert(err, qt.IsNil)

	updated, err := repo.UpdateStatus(created.ID, "completed")
	c.Assert(err, qt.IsNil)
	c.Assert(updated, qt.IsNotNil)
	c.Assert(updated.OrderStatus, qt.Equals, "completed")
	c.Assert(rec.topics(), qt.DeepEquals, []string{"retailer_order.updated"})
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	c := qt.New(t)

	orders, _, repo, _ := newOrderFixture()

	created, err := orders.Create(schemas.CreateRetailerOrder{RetailerID: uuid.New()})
	c.Assert(err, qt.IsNil)

	_, err = repo.UpdateStatus(created.ID, "shipped")
	c.Assert(err, qt.ErrorIs, schemas.ErrInvalid)
}

func TestUpdateStatusAbsentOrder(t *testing.T) {
	c := qt.New(t)

	_, _, repo, rec := newOrderFixture()

	updated, err := repo.UpdateStatus(uuid.New(), "cancelled")
	c.Assert(err, qt.IsNil)
	c.Assert(updated, qt.IsNil)
	c.Assert(rec.events, qt.HasLen, 0)
}

func TestGetStatistics(t *testing.T) {
	c := qt.New(t)

	orders, _, repo, _ := newOrderFixture()

	pending := "pending"
	completed := "completed"
	for _, status := range []string{pending, completed, completed} {
		_, err := orders.Create(schemas.CreateRetailerOrder{RetailerID: uuid.New(), OrderStatus: status})
		c.Assert(err, qt.IsNil)
	}

	stats, err := repo.GetStatistics()
	c.Assert(err, qt.IsNil)
	c.Assert(stats.TotalOrders, qt.Equals, int64(3))
	c.Assert(stats.PendingOrders, qt.Equals, int64(1))
	c.Assert(stats.CompletedOrders, qt.Equals, int64(2))
	c.Assert(stats.CancelledOrders, qt.Equals, int64(0))
}
