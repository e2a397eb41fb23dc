package schemas_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"

	"retail_admin/internal/schemas"
)

func TestValidateCreateUser(t *testing.T) {
	tests := []struct {
		name  string
		input schemas.CreateUser
		ok    bool
	}{
		{
			name:  "valid with password",
			input: schemas.CreateUser{Name: "Asha", Password: "secret1", Mobile: "9876543210", Role: "employee"},
			ok:    true,
		},
		{
			name:  "valid without password",
			input: schemas.CreateUser{Name: "Asha", Mobile: "9876543210", Role: "retailer"},
			ok:    true,
		},
		{
			name:  "missing name",
			input: schemas.CreateUser{Mobile: "9876543210", Role: "employee"},
			ok:    false,
		},
		{
			name:  "short mobile",
			input: schemas.CreateUser{Name: "Asha", Mobile: "12345", Role: "employee"},
			ok:    false,
		},
		{
			name:  "short password",
			input: schemas.CreateUser{Name: "Asha", Password: "abc", Mobile: "9876543210", Role: "employee"},
			ok:    false,
		},
		{
			name:  "unknown role",
			input: schemas.CreateUser{Name: "Asha", Mobile: "9876543210", Role: "superuser"},
			ok:    false,
		},
		{
			name:  "bad email",
			input: schemas.CreateUser{Name: "Asha", Email: "not-an-email", Mobile: "9876543210", Role: "employee"},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			err := schemas.Validate(tt.input)
			if tt.ok {
				c.Assert(err, qt.IsNil)
			} else {
				c.Assert(err, qt.ErrorIs, schemas.ErrInvalid)
			}
		})
	}
}

func TestValidateUpdateUserPartial(t *testing.T) {
	c := qt.New(t)

	// Only the id is required; every other field may be omitted.
	c.Assert(schemas.Validate(schemas.UpdateUser{ID: uuid.New()}), qt.IsNil)

	// A zero id is a validation failure, not a lookup miss.
	c.Assert(schemas.Validate(schemas.UpdateUser{}), qt.ErrorIs, schemas.ErrInvalid)

	bad := "x"
	c.Assert(schemas.Validate(schemas.UpdateUser{ID: uuid.New(), Password: &bad}), qt.ErrorIs, schemas.ErrInvalid)
}

func TestValidateCreateProduct(t *testing.T) {
	c := qt.New(t)

	valid := schemas.CreateProduct{Name: "Shirt", SKU: "SHIRT-1", DetailsID: uuid.New(), Price: "499.00"}
	c.Assert(schemas.Validate(valid), qt.IsNil)

	missingDetails := valid
	missingDetails.DetailsID = uuid.Nil
	c.Assert(schemas.Validate(missingDetails), qt.ErrorIs, schemas.ErrInvalid)

	emptyPrice := valid
	emptyPrice.Price = ""
	c.Assert(schemas.Validate(emptyPrice), qt.ErrorIs, schemas.ErrInvalid)
}

func TestValidateProductColorHex(t *testing.T) {
	c := qt.New(t)

	c.Assert(schemas.Validate(schemas.CreateProductColor{Name: "Red", Hex: "#ff0000"}), qt.IsNil)
	c.Assert(schemas.Validate(schemas.CreateProductColor{Name: "Red", Hex: "red"}), qt.ErrorIs, schemas.ErrInvalid)
}

func TestValidateRetailerInventoryInput(t *testing.T) {
	c := qt.New(t)

	valid := schemas.RetailerInventoryInput{RetailerID: uuid.New(), ProductID: uuid.New(), Quantity: 0}
	c.Assert(schemas.Validate(valid), qt.IsNil)

	negative := valid
	negative.Quantity = -1
	c.Assert(schemas.Validate(negative), qt.ErrorIs, schemas.ErrInvalid)

	noProduct := valid
	noProduct.ProductID = uuid.Nil
	c.Assert(schemas.Validate(noProduct), qt.ErrorIs, schemas.ErrInvalid)
}

func TestValidateCompleteRetailerOrder(t *testing.T) {
	c := qt.New(t)

	item := schemas.OrderItemInput{ProductID: uuid.New(), Quantity: 2, Price: "10.00"}
	valid := schemas.CompleteRetailerOrder{RetailerID: uuid.New(), Items: []schemas.OrderItemInput{item}}
	c.Assert(schemas.Validate(valid), qt.IsNil)

	empty := valid
	empty.Items = nil
	c.Assert(schemas.Validate(empty), qt.ErrorIs, schemas.ErrInvalid)

	badItem := item
	badItem.Quantity = 0
	withBad := valid
	withBad.Items = []schemas.OrderItemInput{badItem}
	c.Assert(schemas.Validate(withBad), qt.ErrorIs, schemas.ErrInvalid)
}

func TestValidateLogin(t *testing.T) {
	c := qt.New(t)

	c.Assert(schemas.Validate(schemas.Login{Mobile: "9876543210", Password: "secret1"}), qt.IsNil)
	c.Assert(schemas.Validate(schemas.Login{Mobile: "9876543210"}), qt.ErrorIs, schemas.ErrInvalid)
	c.Assert(schemas.Validate(schemas.Login{Mobile: "123", Password: "secret1"}), qt.ErrorIs, schemas.ErrInvalid)
}
