package pos

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kitchpad/kitchpad/models"
)

func TestFilterByCategoryExcludesInactive(t *testing.T) {
	catalog := []models.Product{
		{ID: 1, Name: "コーラ", Category: models.CategoryDrink, IsActive: true},
		{ID: 2, Name: "お茶", Category: models.CategoryDrink, IsActive: true},
		{ID: 3, Name: "ラムネ", Category: models.CategoryDrink, IsActive: false},
		{ID: 4, Name: "カレー", Category: models.CategoryFood, IsActive: true},
		{ID: 5, Name: "うどん", Category: models.CategoryFood, IsActive: true},
		{ID: 6, Name: "そば", Category: models.CategoryFood, IsActive: true},
	}

	drinks := FilterProducts(catalog, models.CategoryDrink)
	assert.Len(t, drinks, 2)
	for _, p := range drinks {
		assert.Equal(t, models.CategoryDrink, p.Category)
		assert.True(t, p.IsActive)
	}
}

func TestFilterAllKeepsEveryActiveProduct(t *testing.T) {
	catalog := []models.Product{
		{ID: 1, Category: models.CategoryDrink, IsActive: true},
		{ID: 2, Category: models.CategoryFood, IsActive: false},
		{ID: 3, Category: models.CategorySet, IsActive: true},
	}

	all := FilterProducts(catalog, CategoryAll)
	assert.Len(t, all, 2)

	// empty category behaves like "all"
	assert.Equal(t, all, FilterProducts(catalog, ""))
}

func TestAllProductsKeepsInactiveEntries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Product{
			{ID: 1, Name: "カレー", Category: models.CategoryFood, IsActive: true},
			{ID: 2, Name: "ラムネ", Category: models.CategoryDrink, IsActive: false},
		})
	})

	app, _ := newTestApp(t, mux)

	// the management list keeps the soft-disabled product visible
	all, err := app.AllProducts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	// the ordering menu does not
	menu, err := app.Products(context.Background(), CategoryAll)
	assert.NoError(t, err)
	assert.Len(t, menu, 1)
	assert.Equal(t, uint(1), menu[0].ID)
}
