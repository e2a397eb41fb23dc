package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"retail_admin/internal/models"
	"retail_admin/internal/redis"
	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

const productListCacheKey = "products"

type ProductHandler struct {
	products repository.ProductRepository
	details  repository.ProductDetailsRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewProductHandler(products repository.ProductRepository, details repository.ProductDetailsRepository, cache *redis.Client, cacheTTL time.Duration) *ProductHandler {
	return &ProductHandler{
		products: products,
		details:  details,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// List serves the unfiltered catalog from cache when possible. Filtered
// reads (?search=, ?category=, ?sku=) always hit the database.
func (h *ProductHandler) List(c *gin.Context) {
	if query := c.Query("search"); query != "" {
		products, err := h.products.SearchProducts(query)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	if sku := c.Query("sku"); sku != "" {
		product, err := h.products.GetBySku(sku)
		if err != nil {
			handleError(c, err)
			return
		}
		if product == nil {
			notFound(c, "Product not found")
			return
		}
		c.JSON(http.StatusOK, product)
		return
	}

	if category := c.Query("category"); category != "" {
		categoryID, err := uuid.Parse(category)
		if err != nil {
			badRequest(c, "Invalid category id")
			return
		}
		products, err := h.products.GetByCategory(categoryID)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	if h.cache != nil {
		var cached []models.Product
		if err := h.cache.GetCached(productListCacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	products, err := h.products.GetAll()
	if err != nil {
		handleError(c, err)
		return
	}

	if h.cache != nil {
		h.cache.SetCached(productListCacheKey, products, h.cacheTTL)
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	cacheKey := "products:" + id.String()
	if h.cache != nil {
		var cached schemas.ProductWithDetails
		if err := h.cache.GetCached(cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	product, err := h.products.GetWithDetails(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if product == nil {
		notFound(c, "Product not found")
		return
	}

	if h.cache != nil {
		h.cache.SetCached(cacheKey, product, h.cacheTTL)
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req schemas.CreateProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	product, err := h.products.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}

	h.invalidate(product.ID.String())
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = id

	product, err := h.products.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if product == nil {
		notFound(c, "Product not found")
		return
	}

	h.invalidate(id.String())
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.products.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if product == nil {
		notFound(c, "Product not found")
		return
	}

	if err := h.products.Delete(id); err != nil {
		handleError(c, err)
		return
	}

	h.invalidate(id.String())
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (h *ProductHandler) invalidate(id string) {
	if h.cache == nil {
		return
	}
	h.cache.DeleteCached(productListCacheKey, "products:"+id)
}

// Details CRUD lives beside the product routes; a details row is created
// first and referenced by the product that follows.

func (h *ProductHandler) CreateDetails(c *gin.Context) {
	var req schemas.CreateProductDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	details, err := h.details.Create(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, details)
}

func (h *ProductHandler) GetDetails(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	details, err := h.details.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if details == nil {
		notFound(c, "Product details not found")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *ProductHandler) UpdateDetails(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req schemas.UpdateProductDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	req.ID = id

	details, err := h.details.Update(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if details == nil {
		notFound(c, "Product details not found")
		return
	}
	c.JSON(http.StatusOK, details)
}
