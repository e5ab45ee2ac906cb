package pos

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/kitchpad/kitchpad/client"
	"github.com/kitchpad/kitchpad/models"
)

// ProductForm is the draft state behind the create/edit product screen.
// The same form serves both: blank for create, pre-populated for edit.
type ProductForm struct {
	editing *models.Product

	Name        string
	ImageURL    string
	Price       *float64
	IsActive    bool
	Category    models.ProductCategory
	Description string
}

func NewProductForm(p *models.Product) *ProductForm {
	if p == nil {
		return &ProductForm{IsActive: true, Category: models.CategoryFood}
	}
	return &ProductForm{
		editing:     p,
		Name:        p.Name,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		IsActive:    p.IsActive,
		Category:    p.Category,
		Description: p.Description,
	}
}

func (f *ProductForm) Editing() bool {
	return f.editing != nil
}

// SetPrice parses raw input. Non-numeric or negative input coerces the
// price to absent rather than failing the form.
func (f *ProductForm) SetPrice(raw string) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		f.Price = nil
		return
	}
	f.Price = &price
}

// AttachImage uploads the file and keeps the returned URL in the draft.
func (f *ProductForm) AttachImage(ctx context.Context, api *client.Client, filename string, r io.Reader) error {
	url, err := api.Upload(ctx, filename, r)
	if err != nil {
		return err
	}
	f.ImageURL = url
	return nil
}

func (f *ProductForm) RemoveImage() {
	f.ImageURL = ""
}

func (f *ProductForm) Validate() error {
	if f.Name == "" {
		return errors.New("name is required")
	}
	if f.Category == "" {
		return errors.New("category is required")
	}
	if !f.Category.Valid() {
		return errors.New("unknown category: " + string(f.Category))
	}
	return nil
}

// Submit validates the draft and either creates a new product or
// updates the one being edited.
func (f *ProductForm) Submit(ctx context.Context, api *client.Client) (models.Product, error) {
	if err := f.Validate(); err != nil {
		return models.Product{}, err
	}

	if f.editing == nil {
		return api.CreateProduct(ctx, client.CreateProductRequest{
			Name:        f.Name,
			ImageURL:    f.ImageURL,
			Price:       f.Price,
			IsActive:    &f.IsActive,
			Category:    f.Category,
			Description: f.Description,
		})
	}

	return api.UpdateProduct(ctx, f.editing.ID, client.ProductUpdate{
		Name:        &f.Name,
		ImageURL:    &f.ImageURL,
		Price:       f.Price,
		IsActive:    &f.IsActive,
		Category:    &f.Category,
		Description: &f.Description,
	})
}
