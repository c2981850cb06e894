package repository

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Nisand-KB/FRESH-MART/internal/domain"
)

// MemoryCatalog is the in-memory, read-only product catalog. The backing
// slice keeps the load order so filtered listings preserve the catalog's
// original relative order; the id index serves point lookups. Nothing
// mutates the catalog after construction, so reads need no locking.
type MemoryCatalog struct {
	products []domain.Product
	byID     map[string]domain.Product
}

var _ CatalogRepository = (*MemoryCatalog)(nil)

// NewMemoryCatalog validates the product list and builds the catalog.
// IDs must be unique and non-empty, prices positive, categories and units
// drawn from the known sets.
func NewMemoryCatalog(products []domain.Product) (*MemoryCatalog, error) {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("catalog: product %q missing id or name", p.ID)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("catalog: product %q has non-positive price %d", p.ID, p.Price)
		}
		if !p.Category.Valid() || p.Category == domain.CategoryAll {
			return nil, fmt.Errorf("catalog: product %q has unknown category %q", p.ID, p.Category)
		}
		if !p.Unit.Valid() {
			return nil, fmt.Errorf("catalog: product %q has unknown unit %q", p.ID, p.Unit)
		}
		byID[p.ID] = p
	}
	out := make([]domain.Product, len(products))
	copy(out, products)
	return &MemoryCatalog{products: out, byID: byID}, nil
}

// LoadCatalog reads and validates a YAML catalog file. Called once at
// startup; the result is read-only for the life of the process.
func LoadCatalog(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var doc struct {
		Products []domain.Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return NewMemoryCatalog(doc.Products)
}

// List returns the products matching f, in catalog order. A product matches
// when the category selector is All (or unset) or equals its category, and
// the search text is empty or a case-insensitive substring of its name.
func (m *MemoryCatalog) List(_ context.Context, f Filter) ([]domain.Product, error) {
	out := make([]domain.Product, 0)
	for _, p := range m.products {
		if f.Category != "" && f.Category != domain.CategoryAll && p.Category != f.Category {
			continue
		}
		if !containsIgnoreCase(p.Name, f.NameSubstring) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MemoryCatalog) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := p
	return &cp, nil
}
