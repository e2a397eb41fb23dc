package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

type InventoryHandler struct {
	admin    repository.AdminInventoryRepository
	retailer repository.RetailerInventoryRepository
}

func NewInventoryHandler(admin repository.AdminInventoryRepository, retailer repository.RetailerInventoryRepository) *InventoryHandler {
	return &InventoryHandler{admin: admin, retailer: retailer}
}

func (h *InventoryHandler) List(c *gin.Context) {
	rows, err := h.admin.GetAll()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	row, err := h.admin.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if row == nil {
		notFound(c, "Inventory not found")
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	threshold, _ := strconv.Atoi(c.Query("threshold"))

	rows, err := h.admin.GetLowStock(threshold)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req schemas.CreateAdminInventory
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	row, err := h.admin.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateAdminInventory
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = id

	row, err := h.admin.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if row == nil {
		notFound(c, "Inventory not found")
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	row, err := h.admin.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if row == nil {
		notFound(c, "Inventory not found")
		return
	}

	if err := h.admin.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory deleted"})
}

// Retailer inventory is keyed by (retailerId, productId); every route below
// carries both ids.

func (h *InventoryHandler) ListRetailerInventory(c *gin.Context) {
	retailerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	rows, err := h.retailer.GetByRetailer(retailerID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) GetRetailerInventory(c *gin.Context) {
	retailerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	row, err := h.retailer.GetByRetailerAndProduct(retailerID, productID)
	if err != nil {
		handleError(c, err)
		return
	}
	if row == nil {
		notFound(c, "Inventory not found")
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *InventoryHandler) CreateRetailerInventory(c *gin.Context) {
	retailerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.RetailerInventoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.RetailerID = retailerID

	row, err := h.retailer.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *InventoryHandler) UpdateRetailerInventory(c *gin.Context) {
	retailerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	var req schemas.RetailerInventoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.RetailerID = retailerID
	req.ProductID = productID

	row, err := h.retailer.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if row == nil {
		notFound(c, "Inventory not found")
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *InventoryHandler) DeleteRetailerInventory(c *gin.Context) {
	retailerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	row, err := h.retailer.GetByRetailerAndProduct(retailerID, productID)
	if err != nil {
		handleError(c, err)
		return
	}
	if row == nil {
		notFound(c, "Inventory not found")
		return
	}

	if err := h.retailer.DeleteByRetailerAndProduct(retailerID, productID); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory deleted"})
}
