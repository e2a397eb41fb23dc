package repository

import (
	"github.com/google/uuid"

	"retail_admin/internal/events"
	"retail_admin/internal/models"
	"retail_admin/internal/providers"
	"retail_admin/internal/schemas"
)

type ProductDetailsRepository interface {
	GetAll() ([]models.ProductDetails, error)
	GetByID(id uuid.UUID) (*models.ProductDetails, error)
	Create(input schemas.CreateProductDetails) (*models.ProductDetails, error)
	Update(input schemas.UpdateProductDetails) (*models.ProductDetails, error)
	Delete(id uuid.UUID) error
}

type productDetailsRepository struct {
	provider providers.ProductDetailsProvider
	bus      *events.Bus
}

func NewProductDetailsRepository(provider providers.ProductDetailsProvider, bus *events.Bus) ProductDetailsRepository {
	return &productDetailsRepository{provider: provider, bus: bus}
}

func (r *productDetailsRepository) GetAll() ([]models.ProductDetails, error) {
	return r.provider.GetAll()
}

func (r *productDetailsRepository) GetByID(id uuid.UUID) (*models.ProductDetails, error) {
	return r.provider.GetByID(id)
}

func (r *productDetailsRepository) Create(input schemas.CreateProductDetails) (*models.ProductDetails, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	details, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProductDetails, events.OpCreated, details))
	return details, nil
}

func (r *productDetailsRepository) Update(input schemas.UpdateProductDetails) (*models.ProductDetails, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	details, err := r.provider.Update(input)
	if err != nil || details == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProductDetails, events.OpUpdated, details))
	return details, nil
}

func (r *productDetailsRepository) Delete(id uuid.UUID) error {
	if err := r.provider.Delete(id); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityProductDetails, events.OpDeleted, map[string]interface{}{"id": id}))
	return nil
}

type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uuid.UUID) (*models.Product, error)
	GetBySku(sku string) (*models.Product, error)
	GetWithDetails(id uuid.UUID) (*schemas.ProductWithDetails, error)
	SearchProducts(query string) ([]models.Product, error)
	GetByCategory(categoryID uuid.UUID) ([]models.Product, error)
	Create(input schemas.CreateProduct) (*models.Product, error)
	Update(input schemas.UpdateProduct) (*models.Product, error)
	Delete(id uuid.UUID) error
}

type productRepository struct {
	products providers.ProductProvider
	details  providers.ProductDetailsProvider
	bus      *events.Bus
}

func NewProductRepository(products providers.ProductProvider, details providers.ProductDetailsProvider, bus *events.Bus) ProductRepository {
	return &productRepository{products: products, details: details, bus: bus}
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	return r.products.GetAll()
}

func (r *productRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	return r.products.GetByID(id)
}

func (r *productRepository) GetBySku(sku string) (*models.Product, error) {
	return r.products.GetBySku(sku)
}

func (r *productRepository) GetWithDetails(id uuid.UUID) (*schemas.ProductWithDetails, error) {
	product, err := r.products.GetWithDetails(id)
	if err != nil || product == nil {
		return nil, err
	}
	response := schemas.NewProductWithDetails(*product)
	return &response, nil
}

func (r *productRepository) SearchProducts(query string) ([]models.Product, error) {
	return r.products.SearchProducts(query)
}

func (r *productRepository) GetByCategory(categoryID uuid.UUID) ([]models.Product, error) {
	return r.products.GetByCategory(categoryID)
}

func (r *productRepository) Create(input schemas.CreateProduct) (*models.Product, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	product, err := r.products.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProduct, events.OpCreated, product))
	return product, nil
}

func (r *productRepository) Update(input schemas.UpdateProduct) (*models.Product, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	product, err := r.products.Update(input)
	if err != nil || product == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProduct, events.OpUpdated, product))
	return product, nil
}

// Delete removes the product and then its details row. The foreign key
// points from products to product_details, so the database cascade does
// not clean the details up on its own.
func (r *productRepository) Delete(id uuid.UUID) error {
	product, err := r.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return nil
	}

	if err := r.products.Delete(id); err != nil {
		return err
	}
	if err := r.details.Delete(product.DetailsID); err != nil {
		return err
	}

	r.bus.Publish(events.New(events.EntityProduct, events.OpDeleted, map[string]interface{}{"id": id}))
	r.bus.Publish(events.New(events.EntityProductDetails, events.OpDeleted, map[string]interface{}{"id": product.DetailsID}))
	return nil
}

type ProductCategoryRepository interface {
	GetAll() ([]models.ProductCategory, error)
	GetByID(id uuid.UUID) (*models.ProductCategory, error)
	Create(input schemas.CreateProductCategory) (*models.ProductCategory, error)
	Update(input schemas.UpdateProductCategory) (*models.ProductCategory, error)
	Delete(id uuid.UUID) error
}

type productCategoryRepository struct {
	provider providers.ProductCategoryProvider
	bus      *events.Bus
}

func NewProductCategoryRepository(provider providers.ProductCategoryProvider, bus *events.Bus) ProductCategoryRepository {
	return &productCategoryRepository{provider: provider, bus: bus}
}

func (r *productCategoryRepository) GetAll() ([]models.ProductCategory, error) {
	return r.provider.GetAll()
}

func (r *productCategoryRepository) GetByID(id uuid.UUID) (*models.ProductCategory, error) {
	return r.provider.GetByID(id)
}

func (r *productCategoryRepository) Create(input schemas.CreateProductCategory) (*models.ProductCategory, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	category, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProductCategory, events.OpCreated, category))
	return category, nil
}

func (r *productCategoryRepository) Update(input schemas.UpdateProductCategory) (*models.ProductCategory, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	category, err := r.provider.Update(input)
	if err != nil || category == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProductCategory, events.OpUpdated, category))
	return category, nil
}

func (r *productCategoryRepository) Delete(id uuid.UUID) error {
	if err := r.provider.Delete(id); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityProductCategory, events.OpDeleted, map[string]interface{}{"id": id}))
	return nil
}

type ProductImageRepository interface {
	GetAll() ([]models.ProductImage, error)
	GetByID(id uuid.UUID) (*models.ProductImage, error)
	GetByProduct(productID uuid.UUID) ([]models.ProductImage, error)
	Create(input schemas.CreateProductImage) (*models.ProductImage, error)
	Update(input schemas.UpdateProductImage) (*models.ProductImage, error)
	Delete(id uuid.UUID) error
}

type productImageRepository struct {
	provider providers.ProductImageProvider
	bus      *events.Bus
}

func NewProductImageRepository(provider providers.ProductImageProvider, bus *events.Bus) ProductImageRepository {
	return &productImageRepository{provider: provider, bus: bus}
}

func (r *productImageRepository) GetAll() ([]models.ProductImage, error) {
	return r.provider.GetAll()
}

func (r *productImageRepository) GetByID(id uuid.UUID) (*models.ProductImage, error) {
	return r.provider.GetByID(id)
}

func (r *productImageRepository) GetByProduct(productID uuid.UUID) ([]models.ProductImage, error) {
	return r.provider.GetByProduct(productID)
}

func (r *productImageRepository) Create(input schemas.CreateProductImage) (*models.ProductImage, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	image, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProductImage, events.OpCreated, image))
	return image, nil
}

func (r *productImageRepository) Update(input schemas.UpdateProductImage) (*models.ProductImage, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	image, err := r.provider.Update(input)
	if err != nil || image == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProductImage, events.OpUpdated, image))
	return image, nil
}

func (r *productImageRepository) Delete(id uuid.UUID) error {
	if err := r.provider.Delete(id); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityProductImage, events.OpDeleted, map[string]interface{}{"id": id}))
	return nil
}

type ProductColorRepository interface {
	GetAll() ([]models.ProductColor, error)
	GetByID(id uuid.UUID) (*models.ProductColor, error)
	Create(input schemas.CreateProductColor) (*models.ProductColor, error)
	Update(input schemas.UpdateProductColor) (*models.ProductColor, error)
	Delete(id uuid.UUID) error
}

type productColorRepository struct {
	provider providers.ProductColorProvider
	bus      *events.Bus
}

func NewProductColorRepository(provider providers.ProductColorProvider, bus *events.Bus) ProductColorRepository {
	return &productColorRepository{provider: provider, bus: bus}
}

func (r *productColorRepository) GetAll() ([]models.ProductColor, error) {
	return r.provider.GetAll()
}

func (r *productColorRepository) GetByID(id uuid.UUID) (*models.ProductColor, error) {
	return r.provider.GetByID(id)
}

func (r *productColorRepository) Create(input schemas.CreateProductColor) (*models.ProductColor, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	color, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProductColor, events.OpCreated, color))
	return color, nil
}

func (r *productColorRepository) Update(input schemas.UpdateProductColor) (*models.ProductColor, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	color, err := r.provider.Update(input)
	if err != nil || color == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProductColor, events.OpUpdated, color))
	return color, nil
}

func (r *productColorRepository) Delete(id uuid.UUID) error {
	if err := r.provider.Delete(id); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityProductColor, events.OpDeleted, map[string]interface{}{"id": id}))
	return nil
}

type ProductSizeRepository interface {
	GetAll() ([]models.ProductSize, error)
	GetByID(id uuid.UUID) (*models.ProductSize, error)
	Create(input schemas.CreateProductSize) (*models.ProductSize, error)
	Update(input schemas.UpdateProductSize) (*models.ProductSize, error)
	Delete(id uuid.UUID) error
}

type productSizeRepository struct {
	provider providers.ProductSizeProvider
	bus      *events.Bus
}

func NewProductSizeRepository(provider providers.ProductSizeProvider, bus *events.Bus) ProductSizeRepository {
	return &productSizeRepository{provider: provider, bus: bus}
}

func (r *productSizeRepository) GetAll() ([]models.ProductSize, error) {
	return r.provider.GetAll()
}

func (r *productSizeRepository) GetByID(id uuid.UUID) (*models.ProductSize, error) {
	return r.provider.GetByID(id)
}

func (r *productSizeRepository) Create(input schemas.CreateProductSize) (*models.ProductSize, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	size, err := r.provider.Create(input)
	if err != nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProductSize, events.OpCreated, size))
	return size, nil
}

func (r *productSizeRepository) Update(input schemas.UpdateProductSize) (*models.ProductSize, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	size, err := r.provider.Update(input)
	if err != nil || size == nil {
		return nil, err
	}
	r.bus.Publish(events.New(events.EntityProductSize, events.OpUpdated, size))
	return size, nil
}

func (r *productSizeRepository) Delete(id uuid.UUID) error {
	if err := r.provider.Delete(id); err != nil {
		return err
	}
	r.bus.Publish(events.New(events.EntityProductSize, events.OpDeleted, map[string]interface{}{"id": id}))
	return nil
}
