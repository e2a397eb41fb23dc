package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

type OrderHandler struct {
	orders repository.RetailerOrderRepository
	items  repository.RetailerOrderItemRepository
}

func NewOrderHandler(orders repository.RetailerOrderRepository, items repository.RetailerOrderItemRepository) *OrderHandler {
	return &OrderHandler{orders: orders, items: items}
}

func (h *OrderHandler) List(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		orders, err := h.orders.GetByStatus(status)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}

	orders, err := h.orders.GetAll()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.GetWithDetails(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if order == nil {
		notFound(c, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Statistics(c *gin.Context) {
	stats, err := h.orders.GetStatistics()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Create accepts the order together with its items.
func (h *OrderHandler) Create(c *gin.Context) {
	var req schemas.CompleteRetailerOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	order, err := h.orders.CreateWithItems(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateRetailerOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = id

	order, err := h.orders.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if order == nil {
		notFound(c, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	order, err := h.orders.UpdateStatus(id, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	if order == nil {
		notFound(c, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if order == nil {
		notFound(c, "Order not found")
		return
	}

	if err := h.orders.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

func (h *OrderHandler) ListItems(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	items, err := h.items.GetByOrder(orderID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *OrderHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateRetailerOrderItem
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = id

	item, err := h.items.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if item == nil {
		notFound(c, "Order item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *OrderHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := h.items.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if item == nil {
		notFound(c, "Order item not found")
		return
	}

	if err := h.items.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order item deleted"})
}
