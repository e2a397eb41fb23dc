package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

// CatalogHandler covers the small lookup tables around products: categories,
// images, colors and sizes.
type CatalogHandler struct {
	categories repository.ProductCategoryRepository
	images     repository.ProductImageRepository
	colors     repository.ProductColorRepository
	sizes      repository.ProductSizeRepository
}

func NewCatalogHandler(
	categories repository.ProductCategoryRepository,
	images repository.ProductImageRepository,
	colors repository.ProductColorRepository,
	sizes repository.ProductSizeRepository,
) *CatalogHandler {
	return &CatalogHandler{categories: categories, images: images, colors: colors, sizes: sizes}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.GetAll()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req schemas.CreateProductCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	category, err := h.categories.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateProductCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = id

	category, err := h.categories.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if category == nil {
		notFound(c, "Category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.categories.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if category == nil {
		notFound(c, "Category not found")
		return
	}

	if err := h.categories.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

func (h *CatalogHandler) ListProductImages(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	images, err := h.images.GetByProduct(productID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *CatalogHandler) CreateImage(c *gin.Context) {
	var req schemas.CreateProductImage
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	image, err := h.images.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *CatalogHandler) UpdateImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateProductImage
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = id

	image, err := h.images.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if image == nil {
		notFound(c, "Image not found")
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *CatalogHandler) DeleteImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	image, err := h.images.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if image == nil {
		notFound(c, "Image not found")
		return
	}

	if err := h.images.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

func (h *CatalogHandler) ListColors(c *gin.Context) {
	colors, err := h.colors.GetAll()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, colors)
}

func (h *CatalogHandler) CreateColor(c *gin.Context) {
	var req schemas.CreateProductColor
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	color, err := h.colors.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, color)
}

func (h *CatalogHandler) UpdateColor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateProductColor
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = id

	color, err := h.colors.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if color == nil {
		notFound(c, "Color not found")
		return
	}
	c.JSON(http.StatusOK, color)
}

func (h *CatalogHandler) DeleteColor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	color, err := h.colors.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if color == nil {
		notFound(c, "Color not found")
		return
	}

	if err := h.colors.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Color deleted"})
}

func (h *CatalogHandler) ListSizes(c *gin.Context) {
	sizes, err := h.sizes.GetAll()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, sizes)
}

func (h *CatalogHandler) CreateSize(c *gin.Context) {
	var req schemas.CreateProductSize
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	size, err := h.sizes.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, size)
}

func (h *CatalogHandler) UpdateSize(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateProductSize
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = id

	size, err := h.sizes.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if size == nil {
		notFound(c, "Size not found")
		return
	}
	c.JSON(http.StatusOK, size)
}

func (h *CatalogHandler) DeleteSize(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	size, err := h.sizes.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if size == nil {
		notFound(c, "Size not found")
		return
	}

	if err := h.sizes.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Size deleted"})
}
