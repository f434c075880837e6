// Package cart holds the quantity-keyed collection of products picked for
// purchase.
package cart

// Line is one cart row: a product plus how many of it were added. A cart
// holds at most one line per product ID.
type Line struct {
	ID       int
	Name     string
	Price    float64
	Image    string
	Quantity int
}

// Item is what gets added to the cart; the quantity is managed by the cart
// itself.
type Item struct {
	ID    int
	Name  string
	Price float64
	Image string
}

// Cart is the in-memory cart state. Like the other state holders it is owned
// by a single caller and mutated only on that caller's goroutine. Every
// operation is total: removing an absent line is a no-op, not an error.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts an item in the cart. Adding an ID that is already present
// increments that line's quantity instead of creating a duplicate line.
func (c *Cart) Add(item Item) {
	for i := range c.lines {
		if c.lines[i].ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: 1,
	})
}

// Remove deletes the whole line for the given ID, regardless of quantity.
func (c *Cart) Remove(id int) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart rows in insertion order.
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// TotalQuantity returns the sum of all line quantities, 0 when empty.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the cart total: sum of unit price times quantity.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
