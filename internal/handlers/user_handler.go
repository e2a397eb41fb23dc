package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

type UserHandler struct {
	users   repository.UserRepository
	workers repository.WorkerRepository
}

func NewUserHandler(users repository.UserRepository, workers repository.WorkerRepository) *UserHandler {
	return &UserHandler{users: users, workers: workers}
}

// List supports ?role= and ?search= filters; without either it returns
// every user.
func (h *UserHandler) List(c *gin.Context) {
	if query := c.Query("search"); query != "" {
		users, err := h.users.SearchUsers(query)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
		return
	}

	if role := c.Query("role"); role != "" {
		users, err := h.users.GetByRole(role)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
		return
	}

	users, err := h.users.GetAll()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if user == nil {
		notFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req schemas.CreateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	user, err := h.users.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = id

	user, err := h.users.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if user == nil {
		notFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if user == nil {
		notFound(c, "User not found")
		return
	}

	if err := h.users.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// Workers returns the employees linked to a retailer user.
func (h *UserHandler) Workers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	users, err := h.users.GetUsersByRetailer(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Employers returns the retailers an employee works for.
func (h *UserHandler) Employers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	users, err := h.users.GetRetailersByEmployee(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateWorker(c *gin.Context) {
	var req schemas.CreateWorker
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workers.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, worker)
}

func (h *UserHandler) DeleteWorker(c *gin.Context) {
	retailerID, ok := parseID(c, "retailerId")
	if !ok {
		return
	}
	employeeID, ok := parseID(c, "employeeId")
	if !ok {
		return
	}

	worker, err := h.workers.GetByRetailerAndEmployee(retailerID, employeeID)
	if err != nil {
		handleError(c, err)
		return
	}
	if worker == nil {
		notFound(c, "Worker not found")
		return
	}

	if err := h.workers.DeleteByRetailerAndEmployee(retailerID, employeeID); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Worker deleted"})
}
