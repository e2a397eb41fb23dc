package events

import "time"

// Entity discriminates which table an event refers to.
type Entity string

const (
	EntityUser                   Entity = "user"
	EntityWorker                 Entity = "worker"
	EntityRetailerAccount        Entity = "retailer_account"
	EntityRetailerInventory      Entity = "retailer_inventory"
	EntityAdminInventory         Entity = "admin_inventory"
	EntityAttendance             Entity = "attendance"
	EntityProductDetails         Entity = "product_details"
	EntityProduct                Entity = "product"
	EntityProductColor           Entity = "product_color"
	EntityProductSize            Entity = "product_size"
	EntityProductCategory        Entity = "product_category"
	EntityProductCategoryProduct Entity = "product_category_product"
	EntityProductVariant         Entity = "product_variant"
	EntityProductImage           Entity = "product_image"
	EntityRetailerOrder          Entity = "retailer_order"
	EntityRetailerOrderItem      Entity = "retailer_order_item"
)

// Op is the mutation that succeeded.
type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Event is the single notification shape published after a successful
// create/update/delete. One struct replaces a per-entity class hierarchy.
type Event struct {
	Entity    Entity      `json:"entity"`
	Op        Op          `json:"op"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

func New(entity Entity, op Op, payload interface{}) Event {
	return Event{Entity: entity, Op: op, Payload: payload, Timestamp: time.Now()}
}

// Topic is the routing key used when mirroring to an external channel,
// e.g. "user.created".
func (e Event) Topic() string {
	return string(e.Entity) + "." + string(e.Op)
}
