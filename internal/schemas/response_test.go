package schemas_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"

	"retail_admin/internal/models"
	"retail_admin/internal/schemas"
)

func TestUserResponseHasNoPassword(t *testing.T) {
	c := qt.New(t)

	user := &models.User{
		ID:       uuid.New(),
		Name:     "Asha",
		Password: "$2a$12$somebcrypthash",
		Mobile:   "9876543210",
		Role:     "admin",
	}

	data, err := json.Marshal(schemas.NewUserResponse(user))
	c.Assert(err, qt.IsNil)
	c.Assert(strings.Contains(string(data), "password"), qt.IsFalse)
	c.Assert(strings.Contains(string(data), "bcrypt"), qt.IsFalse)
}

func TestAttendanceWithUserHidesPassword(t *testing.T) {
	c := qt.New(t)

	record := models.Attendance{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Date:   time.Now(),
		Status: "present",
		User: &models.User{
			ID:       uuid.New(),
			Name:     "Asha",
			Password: "$2a$12$somebcrypthash",
			Mobile:   "9876543210",
			Role:     "employee",
		},
	}

	shaped := schemas.NewAttendanceWithUser(record)
	c.Assert(shaped.User, qt.IsNotNil)
	c.Assert(shaped.User.Name, qt.Equals, "Asha")

	data, err := json.Marshal(shaped)
	c.Assert(err, qt.IsNil)
	c.Assert(strings.Contains(string(data), "bcrypt"), qt.IsFalse)
}

func TestAttendanceWithUserNilUser(t *testing.T) {
	c := qt.New(t)

	shaped := schemas.NewAttendanceWithUser(models.Attendance{ID: uuid.New()})
	c.Assert(shaped.User, qt.IsNil)
}

func TestRetailerAccountWithRetailer(t *testing.T) {
	c := qt.New(t)

	account := models.RetailerAccount{
		ID:         uuid.New(),
		RetailerID: uuid.New(),
		Coins:      50,
		Retailer: &models.User{
			ID:       uuid.New(),
			Name:     "Store One",
			Password: "hash",
			Mobile:   "9876543210",
			Role:     "retailer",
		},
	}

	shaped := schemas.NewRetailerAccountWithRetailer(account)
	c.Assert(shaped.Coins, qt.Equals, 50)
	c.Assert(shaped.Retailer.Role, qt.Equals, "retailer")

	data, err := json.Marshal(shaped)
	c.Assert(err, qt.IsNil)
	c.Assert(strings.Contains(string(data), "hash"), qt.IsFalse)
}

func TestProductWithDetailsReplacesForeignKey(t *testing.T) {
	c := qt.New(t)

	detailsID := uuid.New()
	product := models.Product{
		ID:        uuid.New(),
		Name:      "Shirt",
		SKU:       "SHIRT-1",
		DetailsID: detailsID,
		Price:     "499.00",
		Details:   &models.ProductDetails{ID: detailsID, ShortDescription: "A shirt"},
	}

	shaped := schemas.NewProductWithDetails(product)
	c.Assert(shaped.Details, qt.IsNotNil)

	data, err := json.Marshal(shaped)
	c.Assert(err, qt.IsNil)

	var decoded map[string]interface{}
	c.Assert(json.Unmarshal(data, &decoded), qt.IsNil)
	details, ok := decoded["details"].(map[string]interface{})
	c.Assert(ok, qt.IsTrue)
	c.Assert(details["shortDescription"], qt.Equals, "A shirt")
}
