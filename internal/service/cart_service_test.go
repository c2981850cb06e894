package service

import (
	"context"
	"testing"

	"github.com/Nisand-KB/FRESH-MART/internal/domain"
	"github.com/Nisand-KB/FRESH-MART/internal/repository"
)

func testCatalog(t *testing.T) *repository.MemoryCatalog {
	t.Helper()
	cat, err := repository.NewMemoryCatalog([]domain.Product{
		{ID: "1", Name: "Organic Red Apples", Price: 180, Category: domain.CategoryFruits, Unit: domain.UnitKg},
		{ID: "3", Name: "Amul Taaza Milk", Price: 66, Category: domain.CategoryDairy, Unit: domain.UnitLitre},
		{ID: "7", Name: "Fortune Olive Oil", Price: 850, Category: domain.CategoryPantry, Unit: domain.UnitBottle},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func setupCart(t *testing.T) *CartService {
	t.Helper()
	return NewCartService(testCatalog(t))
}

func TestCart_SetThenZero_RoundTripToEmpty(t *testing.T) {
	ctx := context.Background()
	cs := setupCart(t)

	cart, err := cs.SetQuantity(ctx, "1", 3)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if len(cart) != 1 || cart[0].ID != "1" || cart[0].Quantity != 3 {
		t.Fatalf("unexpected cart: %+v", cart)
	}

	cart, err = cs.SetQuantity(ctx, "1", 0)
	if err != nil {
		t.Fatalf("set zero: %v", err)
	}
	if len(cart) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestCart_SetQuantity_Idempotent(t *testing.T) {
	ctx := context.Background()
	cs := setupCart(t)

	first, _ := cs.SetQuantity(ctx, "3", 2)
	second, _ := cs.SetQuantity(ctx, "3", 2)
	if len(first) != len(second) || first[0].Quantity != second[0].Quantity {
		t.Fatalf("second application changed the cart: %+v vs %+v", first, second)
	}
	if cs.Total() != 132 {
		t.Fatalf("total = %d, want 132", cs.Total())
	}
}

func TestCart_Total(t *testing.T) {
	ctx := context.Background()
	cs := setupCart(t)
	if cs.Total() != 0 {
		t.Fatalf("empty cart total = %d", cs.Total())
	}
	_, _ = cs.SetQuantity(ctx, "3", 2) // 132
	_, _ = cs.SetQuantity(ctx, "1", 1) // 180
	if got := cs.Total(); got != 312 {
		t.Fatalf("total = %d, want 312", got)
	}
	cart := cs.Cart()
	var sum int64
	for _, it := range cart {
		sum += it.Price * it.Quantity
	}
	if sum != cs.Total() {
		t.Fatalf("total %d does not match item sum %d", cs.Total(), sum)
	}
}

func TestCart_UpdateKeepsPosition_RemoveKeepsOrder(t *testing.T) {
	ctx := context.Background()
	cs := setupCart(t)
	_, _ = cs.SetQuantity(ctx, "1", 1)
	_, _ = cs.SetQuantity(ctx, "3", 1)
	_, _ = cs.SetQuantity(ctx, "7", 1)

	// in-place update must not move the item
	cart, _ := cs.SetQuantity(ctx, "1", 5)
	if cart[0].ID != "1" || cart[0].Quantity != 5 {
		t.Fatalf("update moved item: %+v", cart)
	}

	// removal keeps the relative order of the rest
	cart = cs.Remove("3")
	if len(cart) != 2 || cart[0].ID != "1" || cart[1].ID != "7" {
		t.Fatalf("order broken after remove: %+v", cart)
	}
}

func TestCart_EdgeInputs(t *testing.T) {
	ctx := context.Background()
	cs := setupCart(t)

	// zero quantity on an absent product is a no-op
	cart, err := cs.SetQuantity(ctx, "1", 0)
	if err != nil || len(cart) != 0 {
		t.Fatalf("expected no-op, got %+v %v", cart, err)
	}

	// negative quantity clamps to 0
	_, _ = cs.SetQuantity(ctx, "1", 2)
	cart, err = cs.SetQuantity(ctx, "1", -4)
	if err != nil || len(cart) != 0 {
		t.Fatalf("expected clamp to removal, got %+v %v", cart, err)
	}

	// unknown product id
	if _, err := cs.SetQuantity(ctx, "999", 1); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// removing an absent id is a no-op
	if cart := cs.Remove("999"); len(cart) != 0 {
		t.Fatalf("unexpected cart: %+v", cart)
	}
}

func TestCart_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	cs := setupCart(t)
	cart, _ := cs.SetQuantity(ctx, "1", 2)

	// mutating a returned snapshot must not leak into the store
	cart[0].Quantity = 99
	if got := cs.Cart()[0].Quantity; got != 2 {
		t.Fatalf("snapshot aliasing: quantity = %d", got)
	}
}
