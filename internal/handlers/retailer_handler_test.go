package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"retail_admin/internal/handlers"
	"retail_admin/internal/models"
	"retail_admin/internal/schemas"
)

type fakeUserRepository struct {
	users map[uuid.UUID]schemas.UserResponse
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[uuid.UUID]schemas.UserResponse{}}
}

func (f *fakeUserRepository) add(role string) schemas.UserResponse {
	u := schemas.UserResponse{ID: uuid.New(), Name: "Someone", Mobile: "9876543210", Role: role}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepository) GetAll() ([]schemas.UserResponse, error) { return nil, nil }

func (f *fakeUserRepository) GetByID(id uuid.UUID) (*schemas.UserResponse, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepository) GetByMobile(string) (*models.User, error) { return nil, nil }

func (f *fakeUserRepository) GetByRole(role string) ([]schemas.UserResponse, error) {
	var out []schemas.UserResponse
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepository) SearchUsers(string) ([]schemas.UserResponse, error) { return nil, nil }

func (f *fakeUserRepository) GetUsersByRetailer(uuid.UUID) ([]schemas.UserResponse, error) {
	return nil, nil
}

func (f *fakeUserRepository) GetRetailersByEmployee(uuid.UUID) ([]schemas.UserResponse, error) {
	return nil, nil
}

func (f *fakeUserRepository) ValidatePassword(string, string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) Create(input schemas.CreateUser) (*schemas.UserResponse, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}
	u := schemas.UserResponse{ID: uuid.New(), Name: input.Name, Mobile: input.Mobile, Role: input.Role}
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserRepository) Update(input schemas.UpdateUser) (*schemas.UserResponse, error) {
	u, ok := f.users[input.ID]
	if !ok {
		return nil, nil
	}
	if input.Name != nil {
		u.Name = *input.Name
	}
	f.users[input.ID] = u
	return &u, nil
}

func (f *fakeUserRepository) Delete(id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func retailerEngine(users *fakeUserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewRetailerHandler(users, nil)
	e := gin.New()
	e.GET("/api/retailers/:id", h.Get)
	e.POST("/api/retailers", h.Create)
	e.DELETE("/api/retailers/:id", h.Delete)
	return e
}

func TestGetRetailer(t *testing.T) {
	c := qt.New(t)

	users := newFakeUserRepository()
	stored := users.add("retailer")
	e := retailerEngine(users)

	req := httptest.NewRequest(http.MethodGet, "/api/retailers/"+stored.ID.String(), nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusOK)
}

// A user that exists but is not a retailer is absent as far as this route
// is concerned.
func TestGetRetailerRoleMismatchIs404(t *testing.T) {
	c := qt.New(t)

	users := newFakeUserRepository()
	stored := users.add("employee")
	e := retailerEngine(users)

	req := httptest.NewRequest(http.MethodGet, "/api/retailers/"+stored.ID.String(), nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusNotFound)

	var body map[string]string
	c.Assert(json.Unmarshal(w.Body.Bytes(), &body), qt.IsNil)
	c.Assert(body["message"], qt.Equals, "Retailer not found")
}

func TestGetRetailerBadID(t *testing.T) {
	c := qt.New(t)

	e := retailerEngine(newFakeUserRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/retailers/not-a-uuid", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusBadRequest)
}

func TestCreateRetailerForcesRole(t *testing.T) {
	c := qt.New(t)

	users := newFakeUserRepository()
	e := retailerEngine(users)

	w := post(e, "/api/retailers", `{"name":"Store","mobile":"9876543210"}`)
	c.Assert(w.Code, qt.Equals, http.StatusCreated)

	var body schemas.UserResponse
	c.Assert(json.Unmarshal(w.Body.Bytes(), &body), qt.IsNil)
	c.Assert(body.Role, qt.Equals, "retailer")
}

func TestCreateRetailerRejectsOtherRole(t *testing.T) {
	c := qt.New(t)

	e := retailerEngine(newFakeUserRepository())

	w := post(e, "/api/retailers", `{"name":"Store","mobile":"9876543210","role":"employee"}`)
	c.Assert(w.Code, qt.Equals, http.StatusBadRequest)
}

func TestDeleteRetailerRoleMismatchIs404(t *testing.T) {
	c := qt.New(t)

	users := newFakeUserRepository()
	stored := users.add("admin")
	e := retailerEngine(users)

	req := httptest.NewRequest(http.MethodDelete, "/api/retailers/"+stored.ID.String(), nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusNotFound)
	c.Assert(users.users, qt.HasLen, 1)
}
