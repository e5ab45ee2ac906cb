package pos

import "github.com/kitchpad/kitchpad/models"

// Cart holds the not-yet-submitted order. At most one entry per product,
// every entry has quantity >= 1, insertion order is preserved. It lives
// only in memory and is dropped on submission.
type Cart struct {
	items []models.OrderItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add increments the quantity when the product is already in the cart,
// otherwise inserts a new entry with quantity 1, copying name, image and
// price from the product as they are right now.
func (c *Cart) Add(p models.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.OrderItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		ImageURL:    p.ImageURL,
		Quantity:    1,
		Price:       p.Price,
	})
}

// UpdateQuantity applies delta to the entry's quantity. A result of zero
// or less removes the entry. Unknown product IDs are a no-op.
func (c *Cart) UpdateQuantity(productID uint, delta int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += delta
			if c.items[i].Quantity <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			}
			return
		}
	}
}

func (c *Cart) Remove(productID uint) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the entries, in insertion order.
func (c *Cart) Items() models.OrderItems {
	out := make(models.OrderItems, len(c.items))
	copy(out, c.items)
	return out
}

// Quantity returns the quantity for a product, zero when absent.
func (c *Cart) Quantity(productID uint) int {
	for _, item := range c.items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// TotalAmount sums price x quantity over the entries, with unset prices
// counting as zero. Recomputed fresh on every call.
func (c *Cart) TotalAmount() float64 {
	var total float64
	for _, item := range c.items {
		total += item.UnitPrice() * float64(item.Quantity)
	}
	return total
}

func (c *Cart) TotalItems() int {
	var n int
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}
