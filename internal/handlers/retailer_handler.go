package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"retail_admin/internal/models"
	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

type RetailerHandler struct {
	users    repository.UserRepository
	accounts repository.RetailerAccountRepository
}

func NewRetailerHandler(users repository.UserRepository, accounts repository.RetailerAccountRepository) *RetailerHandler {
	return &RetailerHandler{users: users, accounts: accounts}
}

func (h *RetailerHandler) List(c *gin.Context) {
	retailers, err := h.users.GetByRole(string(models.RoleRetailer))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, retailers)
}

// Get treats a user of any other role as absent: the route is scoped to
// retailers, so an employee id here is a 404, not a different entity.
func (h *RetailerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if user == nil || user.Role != string(models.RoleRetailer) {
		notFound(c, "Retailer not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *RetailerHandler) Create(c *gin.Context) {
	var req schemas.CreateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.Role != "" && req.Role != string(models.RoleRetailer) {
		badRequest(c, "Role must be retailer")
		return
	}
	req.Role = string(models.RoleRetailer)

	user, err := h.users.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *RetailerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.Role != nil && *req.Role != string(models.RoleRetailer) {
		badRequest(c, "Role must be retailer")
		return
	}
	req.ID = id

	existing, err := h.users.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if existing == nil || existing.Role != string(models.RoleRetailer) {
		notFound(c, "Retailer not found")
		return
	}

	user, err := h.users.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if user == nil {
		notFound(c, "Retailer not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *RetailerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	existing, err := h.users.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if existing == nil || existing.Role != string(models.RoleRetailer) {
		notFound(c, "Retailer not found")
		return
	}

	if err := h.users.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Retailer deleted"})
}

func (h *RetailerHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accounts.GetAll()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *RetailerHandler) GetAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	account, err := h.accounts.GetByRetailer(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if account == nil {
		notFound(c, "Retailer account not found")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *RetailerHandler) CreateAccount(c *gin.Context) {
	var req schemas.CreateRetailerAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	account, err := h.accounts.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

type coinsRequest struct {
	Coins int `json:"coins"`
}

func (h *RetailerHandler) AddCoins(c *gin.Context) {
	h.mutateCoins(c, h.accounts.AddCoins)
}

func (h *RetailerHandler) DeductCoins(c *gin.Context) {
	h.mutateCoins(c, h.accounts.DeductCoins)
}

func (h *RetailerHandler) mutateCoins(c *gin.Context, op func(retailerID uuid.UUID, coins int) (*models.RetailerAccount, error)) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req coinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.Coins <= 0 {
		badRequest(c, "Coins must be positive")
		return
	}

	account, err := op(id, req.Coins)
	if err != nil {
		handleError(c, err)
		return
	}
	if account == nil {
		notFound(c, "Retailer account not found")
		return
	}
	c.JSON(http.StatusOK, account)
}
