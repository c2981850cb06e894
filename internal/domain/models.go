package domain

// Language selects which translation dictionary drives user-facing text
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageTamil   Language = "ta"
)

// DefaultLanguage is the startup locale
const DefaultLanguage = LanguageEnglish

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageTamil
}

// Category is the fixed catalog grouping; CategoryAll is the no-filter selector
type Category string

const (
	CategoryAll        Category = "All"
	CategoryFruits     Category = "Fruits"
	CategoryVegetables Category = "Vegetables"
	CategoryDairy      Category = "Dairy"
	CategoryBakery     Category = "Bakery"
	CategoryPantry     Category = "Pantry"
	CategoryMeat       Category = "Meat"
)

// Categories lists every selectable category in display order
var Categories = []Category{
	CategoryAll,
	CategoryFruits,
	CategoryVegetables,
	CategoryDairy,
	CategoryBakery,
	CategoryPantry,
	CategoryMeat,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Unit is the display unit a product is sold in
type Unit string

const (
	UnitKg     Unit = "kg"
	UnitBunch  Unit = "bunch"
	UnitLitre  Unit = "L"
	UnitPacket Unit = "pkt"
	UnitPiece  Unit = "pc"
	UnitBottle Unit = "btl"
	UnitCup    Unit = "cup"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitKg, UnitBunch, UnitLitre, UnitPacket, UnitPiece, UnitBottle, UnitCup:
		return true
	}
	return false
}

// Product is immutable catalog reference data. Price is a whole-rupee amount.
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       int64    `json:"price" yaml:"price"`
	Category    Category `json:"category" yaml:"category"`
	Image       string   `json:"image" yaml:"image"`
	Description string   `json:"description" yaml:"description"`
	Unit        Unit     `json:"unit" yaml:"unit"`
}

// CartItem is one product's entry in the cart. Quantity is always >= 1;
// an item whose quantity would drop to 0 is removed from the cart instead.
type CartItem struct {
	Product  `yaml:",inline"`
	Quantity int64 `json:"quantity" yaml:"quantity"`
}

// Subtotal is the exact line amount, price times quantity
func (i CartItem) Subtotal() int64 {
	return i.Price * i.Quantity
}

// Cart is an insertion-ordered collection of items, unique by product id.
// It is treated as a value: mutating operations return a fresh cart and
// never touch the receiver's backing array.
type Cart []CartItem

// Find returns the item for a product id, if present
func (c Cart) Find(id string) (CartItem, bool) {
	for _, it := range c {
		if it.ID == id {
			return it, true
		}
	}
	return CartItem{}, false
}

// WithQuantity is the pure cart transition. Quantity 0 removes the item
// (no-op when absent); a positive quantity replaces an existing item's
// quantity in place or appends a new item at the end.
func (c Cart) WithQuantity(p Product, quantity int64) Cart {
	if quantity <= 0 {
		return c.Without(p.ID)
	}
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].ID == p.ID {
			out[i].Quantity = quantity
			return out
		}
	}
	return append(out, CartItem{Product: p, Quantity: quantity})
}

// Without removes the item with the given product id, preserving the
// relative order of the remaining items
func (c Cart) Without(id string) Cart {
	out := make(Cart, 0, len(c))
	for _, it := range c {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Total is the exact integer sum of line subtotals; 0 for an empty cart
func (c Cart) Total() int64 {
	var sum int64
	for _, it := range c {
		sum += it.Subtotal()
	}
	return sum
}

// Location is a captured device coordinate pair
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CustomerDetails is the delivery contact information collected at checkout.
// Mobile and Address must be non-empty before an order can be compiled.
type CustomerDetails struct {
	Mobile   string    `json:"mobile"`
	Email    string    `json:"email"`
	Address  string    `json:"address"`
	Location *Location `json:"location,omitempty"`
}
