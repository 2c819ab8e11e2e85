package storefront

import "jeansfactory/internal/models"

// CartItem is a product the shopper selected plus a quantity of at least 1.
type CartItem struct {
	Product  models.Product
	Quantity int
}

// Cart is the ephemeral, client-held list of selected products. It is never
// persisted; checkout sends a snapshot of it to the API.
type Cart struct {
	items []CartItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts a product in the cart. Adding a product that is already present
// increments its quantity instead of creating a second entry.
func (c *Cart) Add(p models.Product) {
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// Remove drops a product from the cart entirely, whatever its quantity.
func (c *Cart) Remove(productID int64) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cart contents.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Count returns the total number of units across all entries.
func (c *Cart) Count() int {
	var n int
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Total returns the sum of price times quantity over all entries.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Snapshot freezes the cart into order items for checkout.
func (c *Cart) Snapshot() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, models.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		})
	}
	return items
}

// Wishlist is a client-held set of product IDs the shopper starred.
type Wishlist struct {
	ids map[int64]struct{}
}

// NewWishlist creates an empty wishlist.
func NewWishlist() *Wishlist {
	return &Wishlist{ids: make(map[int64]struct{})}
}

// Toggle adds the product if absent and removes it if present, returning
// whether it is on the list afterwards.
func (w *Wishlist) Toggle(productID int64) bool {
	if _, ok := w.ids[productID]; ok {
		delete(w.ids, productID)
		return false
	}
	w.ids[productID] = struct{}{}
	return true
}

// Contains reports whether the product is on the wishlist.
func (w *Wishlist) Contains(productID int64) bool {
	_, ok := w.ids[productID]
	return ok
}

// Len returns the number of wished products.
func (w *Wishlist) Len() int {
	return len(w.ids)
}
