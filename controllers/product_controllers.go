package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kitchpad/kitchpad/models"
	"github.com/kitchpad/kitchpad/utils"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// GetProducts -> full catalog; active filtering happens client-side.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products := make([]models.Product, 0)
	if err := pc.DB.Order("id").Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct -> new catalog entry; name and category are required,
// products are active unless told otherwise.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	type reqBody struct {
		Name        string                 `json:"name"`
		ImageURL    string                 `json:"image_url"`
		Price       *float64               `json:"price"`
		IsActive    *bool                  `json:"is_active"`
		Category    models.ProductCategory `json:"category"`
		Description string                 `json:"description"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}
	if body.Category == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category is required"))
		return
	}
	if !body.Category.Valid() {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid category %q", body.Category))
		return
	}

	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}

	product := models.Product{
		Name:        body.Name,
		ImageURL:    body.ImageURL,
		Price:       body.Price,
		IsActive:    active,
		Category:    body.Category,
		Description: body.Description,
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct -> partial update; nil fields stay untouched.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := pc.DB.First(&product, c.Param("product_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	type updateReq struct {
		Name        *string                 `json:"name"`
		ImageURL    *string                 `json:"image_url"`
		Price       *float64                `json:"price"`
		IsActive    *bool                   `json:"is_active"`
		Category    *models.ProductCategory `json:"category"`
		Description *string                 `json:"description"`
	}
	var body updateReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		if *body.Name == "" {
			utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
			return
		}
		product.Name = *body.Name
	}
	if body.Category != nil {
		if !body.Category.Valid() {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid category %q", *body.Category))
			return
		}
		product.Category = *body.Category
	}
	if body.ImageURL != nil {
		product.ImageURL = *body.ImageURL
	}
	if body.Price != nil {
		product.Price = body.Price
	}
	if body.IsActive != nil {
		product.IsActive = *body.IsActive
	}
	if body.Description != nil {
		product.Description = *body.Description
	}

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct -> hard delete; the normal flow soft-disables via
// is_active instead.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.DB.Delete(&models.Product{}, c.Param("product_id")).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
