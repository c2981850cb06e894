package domain

import "testing"

func TestCart_WithQuantity_PureValue(t *testing.T) {
	apples := Product{ID: "1", Name: "Organic Red Apples", Price: 180}
	milk := Product{ID: "3", Name: "Amul Taaza Milk", Price: 66}

	var empty Cart
	c1 := empty.WithQuantity(apples, 3)
	c2 := c1.WithQuantity(milk, 2)
	c3 := c2.WithQuantity(apples, 1)

	// earlier values are untouched by later transitions
	if len(empty) != 0 || len(c1) != 1 || c1[0].Quantity != 3 {
		t.Fatalf("earlier cart values mutated: %+v %+v", empty, c1)
	}
	// in-place update keeps position
	if c3[0].ID != "1" || c3[0].Quantity != 1 || c3[1].ID != "3" {
		t.Fatalf("unexpected cart: %+v", c3)
	}
	if c2.Total() != 3*180+2*66 {
		t.Fatalf("total = %d", c2.Total())
	}
}

func TestCart_WithQuantity_ZeroRemoves(t *testing.T) {
	apples := Product{ID: "1", Price: 180}
	var c Cart
	if got := c.WithQuantity(apples, 0); len(got) != 0 {
		t.Fatalf("zero on absent product should be a no-op: %+v", got)
	}
	c = c.WithQuantity(apples, 2)
	if got := c.WithQuantity(apples, 0); len(got) != 0 {
		t.Fatalf("zero quantity should remove: %+v", got)
	}
}

func TestCart_Without_PreservesOrder(t *testing.T) {
	var c Cart
	for _, p := range []Product{{ID: "a", Price: 1}, {ID: "b", Price: 1}, {ID: "c", Price: 1}} {
		c = c.WithQuantity(p, 1)
	}
	c = c.Without("b")
	if len(c) != 2 || c[0].ID != "a" || c[1].ID != "c" {
		t.Fatalf("order broken: %+v", c)
	}
	if got := c.Without("zzz"); len(got) != 2 {
		t.Fatalf("no-op removal changed cart: %+v", got)
	}
}
