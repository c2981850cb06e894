package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Nisand-KB/FRESH-MART/internal/domain"
)

// ErrNotFound is returned when a product id is not in the catalog
var ErrNotFound = errors.New("not found")

// Filter narrows the catalog for display. The zero value matches everything:
// an empty NameSubstring and CategoryAll (or empty Category) apply no filter,
// so an empty result always means "nothing matched", never "no filter applied".
type Filter struct {
	NameSubstring string
	Category      domain.Category
}

// CatalogRepository reads the immutable product catalog
type CatalogRepository interface {
	List(ctx context.Context, f Filter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
