package pos

import "github.com/kitchpad/kitchpad/models"

// CategoryAll shows every active product regardless of category.
const CategoryAll models.ProductCategory = "all"

// FilterProducts narrows the catalog to active products of one category.
// CategoryAll (or an empty category) keeps all active products.
func FilterProducts(products []models.Product, category models.ProductCategory) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
