package providers

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"retail_admin/internal/models"
	"retail_admin/internal/schemas"
)

type ProductDetailsProvider interface {
	Crud[models.ProductDetails, schemas.CreateProductDetails, schemas.UpdateProductDetails]
}

type productDetailsProvider struct {
	db *gorm.DB
}

func NewProductDetailsProvider(db *gorm.DB) ProductDetailsProvider {
	return &productDetailsProvider{db: db}
}

func (p *productDetailsProvider) GetAll() ([]models.ProductDetails, error) {
	var details []models.ProductDetails
	err := p.db.Find(&details).Error
	return details, err
}

func (p *productDetailsProvider) GetByID(id uuid.UUID) (*models.ProductDetails, error) {
	var details models.ProductDetails
	err := p.db.First(&details, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &details, nil
}

func (p *productDetailsProvider) Create(input schemas.CreateProductDetails) (*models.ProductDetails, error) {
	details := models.ProductDetails{
		ShortDescription: input.ShortDescription,
		LongDescription:  input.LongDescription,
		Categories:       input.Categories,
	}
	if err := p.db.Create(&details).Error; err != nil {
		return nil, err
	}
	return &details, nil
}

func (p *productDetailsProvider) Update(input schemas.UpdateProductDetails) (*models.ProductDetails, error) {
	updates := map[string]interface{}{}
	if input.ShortDescription != nil {
		updates["short_description"] = *input.ShortDescription
	}
	if input.LongDescription != nil {
		updates["long_description"] = *input.LongDescription
	}
	if input.Categories != nil {
		updates["categories"] = *input.Categories
	}

	if len(updates) == 0 {
		return p.GetByID(input.ID)
	}

	tx := p.db.Model(&models.ProductDetails{}).Where("id = ?", input.ID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *productDetailsProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.ProductDetails{}, "id = ?", id).Error
}

type ProductProvider interface {
	Crud[models.Product, schemas.CreateProduct, schemas.UpdateProduct]
	GetBySku(sku string) (*models.Product, error)
	GetWithDetails(id uuid.UUID) (*models.Product, error)
	SearchProducts(query string) ([]models.Product, error)
	GetByCategory(categoryID uuid.UUID) ([]models.Product, error)
}

type productProvider struct {
	db *gorm.DB
}

func NewProductProvider(db *gorm.DB) ProductProvider {
	return &productProvider{db: db}
}

func (p *productProvider) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := p.db.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (p *productProvider) GetByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := p.db.First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productProvider) GetBySku(sku string) (*models.Product, error) {
	var product models.Product
	err := p.db.First(&product, "sku = ?", sku).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productProvider) GetWithDetails(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := p.db.Preload("Details").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productProvider) SearchProducts(query string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.
		Where("name ILIKE ?", "%"+query+"%").
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productProvider) GetByCategory(categoryID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := p.db.
		Joins("INNER JOIN product_category_products ON product_category_products.product_id = products.id").
		Where("product_category_products.category_id = ?", categoryID).
		Order("products.created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productProvider) Create(input schemas.CreateProduct) (*models.Product, error) {
	product := models.Product{
		Name:      input.Name,
		SKU:       input.SKU,
		IsPrimary: input.IsPrimary,
		DetailsID: input.DetailsID,
		Price:     input.Price,
	}
	if err := p.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productProvider) Update(input schemas.UpdateProduct) (*models.Product, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.SKU != nil {
		updates["sku"] = *input.SKU
	}
	if input.IsPrimary != nil {
		updates["is_primary"] = *input.IsPrimary
	}
	if input.DetailsID != nil {
		updates["details"] = *input.DetailsID
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}

	if len(updates) == 0 {
		return p.GetByID(input.ID)
	}

	tx := p.db.Model(&models.Product{}).Where("id = ?", input.ID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *productProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.Product{}, "id = ?", id).Error
}

type ProductCategoryProvider interface {
	Crud[models.ProductCategory, schemas.CreateProductCategory, schemas.UpdateProductCategory]
}

type productCategoryProvider struct {
	db *gorm.DB
}

func NewProductCategoryProvider(db *gorm.DB) ProductCategoryProvider {
	return &productCategoryProvider{db: db}
}

func (p *productCategoryProvider) GetAll() ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	err := p.db.Find(&categories).Error
	return categories, err
}

func (p *productCategoryProvider) GetByID(id uuid.UUID) (*models.ProductCategory, error) {
	var category models.ProductCategory
	err := p.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (p *productCategoryProvider) Create(input schemas.CreateProductCategory) (*models.ProductCategory, error) {
	category := models.ProductCategory{Name: input.Name}
	if err := p.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (p *productCategoryProvider) Update(input schemas.UpdateProductCategory) (*models.ProductCategory, error) {
	if input.Name == nil {
		return p.GetByID(input.ID)
	}

	tx := p.db.Model(&models.ProductCategory{}).Where("id = ?", input.ID).Update("name", *input.Name)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *productCategoryProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.ProductCategory{}, "id = ?", id).Error
}

type ProductImageProvider interface {
	Crud[models.ProductImage, schemas.CreateProductImage, schemas.UpdateProductImage]
	GetByProduct(productID uuid.UUID) ([]models.ProductImage, error)
}

type productImageProvider struct {
	db *gorm.DB
}

func NewProductImageProvider(db *gorm.DB) ProductImageProvider {
	return &productImageProvider{db: db}
}

func (p *productImageProvider) GetAll() ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := p.db.Find(&images).Error
	return images, err
}

func (p *productImageProvider) GetByID(id uuid.UUID) (*models.ProductImage, error) {
	var image models.ProductImage
	err := p.db.First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (p *productImageProvider) GetByProduct(productID uuid.UUID) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := p.db.Where("product_id = ?", productID).Find(&images).Error
	return images, err
}

func (p *productImageProvider) Create(input schemas.CreateProductImage) (*models.ProductImage, error) {
	image := models.ProductImage{
		ProductID: input.ProductID,
		ImageURL:  input.ImageURL,
		IsPrimary: input.IsPrimary,
	}
	if err := p.db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (p *productImageProvider) Update(input schemas.UpdateProductImage) (*models.ProductImage, error) {
	updates := map[string]interface{}{}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.IsPrimary != nil {
		updates["is_primary"] = *input.IsPrimary
	}

	if len(updates) == 0 {
		return p.GetByID(input.ID)
	}

	tx := p.db.Model(&models.ProductImage{}).Where("id = ?", input.ID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *productImageProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.ProductImage{}, "id = ?", id).Error
}

type ProductColorProvider interface {
	Crud[models.ProductColor, schemas.CreateProductColor, schemas.UpdateProductColor]
}

type productColorProvider struct {
	db *gorm.DB
}

func NewProductColorProvider(db *gorm.DB) ProductColorProvider {
	return &productColorProvider{db: db}
}

func (p *productColorProvider) GetAll() ([]models.ProductColor, error) {
	var colors []models.ProductColor
	err := p.db.Find(&colors).Error
	return colors, err
}

func (p *productColorProvider) GetByID(id uuid.UUID) (*models.ProductColor, error) {
	var color models.ProductColor
	err := p.db.First(&color, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &color, nil
}

func (p *productColorProvider) Create(input schemas.CreateProductColor) (*models.ProductColor, error) {
	color := models.ProductColor{Name: input.Name, Hex: input.Hex}
	if err := p.db.Create(&color).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (p *productColorProvider) Update(input schemas.UpdateProductColor) (*models.ProductColor, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Hex != nil {
		updates["hex"] = *input.Hex
	}

	if len(updates) == 0 {
		return p.GetByID(input.ID)
	}

	tx := p.db.Model(&models.ProductColor{}).Where("id = ?", input.ID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *productColorProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.ProductColor{}, "id = ?", id).Error
}

type ProductSizeProvider interface {
	Crud[models.ProductSize, schemas.CreateProductSize, schemas.UpdateProductSize]
}

type productSizeProvider struct {
	db *gorm.DB
}

func NewProductSizeProvider(db *gorm.DB) ProductSizeProvider {
	return &productSizeProvider{db: db}
}

func (p *productSizeProvider) GetAll() ([]models.ProductSize, error) {
	var sizes []models.ProductSize
	err := p.db.Find(&sizes).Error
	return sizes, err
}

func (p *productSizeProvider) GetByID(id uuid.UUID) (*models.ProductSize, error) {
	var size models.ProductSize
	err := p.db.First(&size, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &size, nil
}

func (p *productSizeProvider) Create(input schemas.CreateProductSize) (*models.ProductSize, error) {
	size := models.ProductSize{Name: input.Name}
	if err := p.db.Create(&size).Error; err != nil {
		return nil, err
	}
	return &size, nil
}

func (p *productSizeProvider) Update(input schemas.UpdateProductSize) (*models.ProductSize, error) {
	if input.Name == nil {
		return p.GetByID(input.ID)
	}

	tx := p.db.Model(&models.ProductSize{}).Where("id = ?", input.ID).Update("name", *input.Name)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p.GetByID(input.ID)
}

func (p *productSizeProvider) Delete(id uuid.UUID) error {
	return p.db.Delete(&models.ProductSize{}, "id = ?", id).Error
}
