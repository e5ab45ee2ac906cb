package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/kitchpad/kitchpad/controllers"
	"github.com/kitchpad/kitchpad/models"
)

func setupProductRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := controllers.NewProductController(db)
	r.GET("/api/products", ctrl.GetProducts)
	r.POST("/api/products", ctrl.CreateProduct)
	r.PUT("/api/products/:product_id", ctrl.UpdateProduct)
	r.DELETE("/api/products/:product_id", ctrl.DeleteProduct)
	return r
}

func TestProductRoundTrip(t *testing.T) {
	r := setupProductRouter(setupTestDB(t))

	w := doJSON(t, r, "POST", "/api/products", map[string]interface{}{
		"name":        "ハンバーガー",
		"category":    "food",
		"price":       500,
		"description": "定番",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var created models.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive)

	w = doJSON(t, r, "GET", "/api/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)

	got := products[0]
	assert.Equal(t, "ハンバーガー", got.Name)
	assert.Equal(t, models.CategoryFood, got.Category)
	if assert.NotNil(t, got.Price) {
		assert.Equal(t, 500.0, *got.Price)
	}
	assert.Equal(t, "定番", got.Description)
}

func TestCreateProductValidation(t *testing.T) {
	r := setupProductRouter(setupTestDB(t))

	w := doJSON(t, r, "POST", "/api/products", map[string]interface{}{"category": "food"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "name is required", resp["error"])

	w = doJSON(t, r, "POST", "/api/products", map[string]interface{}{"name": "お茶"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "category is required", resp["error"])

	w = doJSON(t, r, "POST", "/api/products", map[string]interface{}{"name": "お茶", "category": "dessert"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductPartial(t *testing.T) {
	r := setupProductRouter(setupTestDB(t))

	w := doJSON(t, r, "POST", "/api/products", map[string]interface{}{
		"name": "コーヒー", "category": "drink", "price": 300,
	})
	var product models.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))

	// soft-disable only; everything else must survive
	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/products/%d", product.ID),
		map[string]interface{}{"is_active": false})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.False(t, product.IsActive)
	assert.Equal(t, "コーヒー", product.Name)
	if assert.NotNil(t, product.Price) {
		assert.Equal(t, 300.0, *product.Price)
	}

	w = doJSON(t, r, "PUT", "/api/products/999", map[string]interface{}{"is_active": false})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	db := setupTestDB(t)
	r := setupProductRouter(db)

	w := doJSON(t, r, "POST", "/api/products", map[string]interface{}{
		"name": "コーヒー", "category": "drink",
	})
	var product models.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/products/%d", product.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
