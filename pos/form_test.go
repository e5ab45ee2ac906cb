package pos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kitchpad/kitchpad/client"
	"github.com/kitchpad/kitchpad/models"
)

func TestSetPriceCoercion(t *testing.T) {
	form := NewProductForm(nil)

	form.SetPrice("500")
	if assert.NotNil(t, form.Price) {
		assert.Equal(t, 500.0, *form.Price)
	}

	form.SetPrice("abc")
	assert.Nil(t, form.Price)

	form.SetPrice("-5")
	assert.Nil(t, form.Price)
}

func TestValidateRequiredFields(t *testing.T) {
	form := NewProductForm(nil)
	form.Category = ""
	assert.Error(t, form.Validate())

	form.Name = "ハンバーガー"
	assert.Error(t, form.Validate())

	form.Category = "dessert"
	assert.Error(t, form.Validate())

	form.Category = models.CategoryFood
	assert.NoError(t, form.Validate())
}

func TestNewFormDefaultsAndEditPrefill(t *testing.T) {
	blank := NewProductForm(nil)
	assert.False(t, blank.Editing())
	assert.True(t, blank.IsActive)
	assert.Equal(t, models.CategoryFood, blank.Category)

	existing := product(7, "お茶", price(200))
	existing.Category = models.CategoryDrink
	existing.Description = "温かい"
	form := NewProductForm(&existing)
	assert.True(t, form.Editing())
	assert.Equal(t, "お茶", form.Name)
	assert.Equal(t, models.CategoryDrink, form.Category)
	assert.Equal(t, "温かい", form.Description)
}

func TestSubmitCreatesProduct(t *testing.T) {
	var got client.CreateProductRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /products", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Product{ID: 1, Name: got.Name, Category: got.Category, Price: got.Price, IsActive: true})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	form := NewProductForm(nil)
	form.Name = "カレー"
	form.SetPrice("700")

	created, err := form.Submit(context.Background(), client.New(srv.URL, nil))
	assert.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "カレー", got.Name)
	assert.Equal(t, models.CategoryFood, got.Category)
	if assert.NotNil(t, got.IsActive) {
		assert.True(t, *got.IsActive)
	}
}

func TestAttachImageKeepsReturnedURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload", func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("file")
		assert.NoError(t, err)
		assert.Equal(t, "menu.png", header.Filename)
		json.NewEncoder(w).Encode(map[string]string{"file_url": "http://localhost:8080/uploads/abc_menu.png"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	form := NewProductForm(nil)
	err := form.AttachImage(context.Background(), client.New(srv.URL, nil), "menu.png", strings.NewReader("png-bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/abc_menu.png", form.ImageURL)

	form.RemoveImage()
	assert.Equal(t, "", form.ImageURL)
}
