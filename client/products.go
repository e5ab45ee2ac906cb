package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/kitchpad/kitchpad/models"
)

type CreateProductRequest struct {
	Name        string                 `json:"name"`
	ImageURL    string                 `json:"image_url,omitempty"`
	Price       *float64               `json:"price,omitempty"`
	IsActive    *bool                  `json:"is_active,omitempty"`
	Category    models.ProductCategory `json:"category"`
	Description string                 `json:"description,omitempty"`
}

// ProductUpdate is a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string                 `json:"name,omitempty"`
	ImageURL    *string                 `json:"image_url,omitempty"`
	Price       *float64                `json:"price,omitempty"`
	IsActive    *bool                   `json:"is_active,omitempty"`
	Category    *models.ProductCategory `json:"category,omitempty"`
	Description *string                 `json:"description,omitempty"`
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodPost, "/products", req, &product)
	return product, err
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, update ProductUpdate) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), update, &product)
	return product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// Upload sends one file as multipart form data and returns the public
// URL the backend stored it under.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	var out struct {
		FileURL string `json:"file_url"`
	}
	if err := decode(resp, &out); err != nil {
		return "", err
	}
	return out.FileURL, nil
}
