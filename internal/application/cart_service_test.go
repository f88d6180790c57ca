package application

import (
	"context"
	"errors"
	"testing"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
)

func newCartFixture() (*CartService, *fakeProductRepo) {
	products := newFakeProductRepo(
		&entity.Product{ID: fakeID(101), Title: "Banarasi Silk Saree", DesignNumber: "KC-1001", TotalStock: 12},
		&entity.Product{ID: fakeID(102), Title: "Chanderi Cotton Saree", DesignNumber: "KC-1002", TotalStock: 30},
	)
	carts := newFakeCartRepo(products)
	return NewCartService(carts, products, nil), products
}

func TestCartAddAccumulates(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()
	user := fakeID(1)

	cart, err := svc.AddItem(ctx, user, fakeID(101), 2)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("after first add: %+v", cart.Items)
	}

	// adding the same product again increments, not replaces
	cart, err = svc.AddItem(ctx, user, fakeID(101), 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 5 {
		t.Fatalf("after second add: %+v", cart.Items)
	}
}

func TestCartAddValidation(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()
	user := fakeID(1)

	if _, err := svc.AddItem(ctx, user, fakeID(101), 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero quantity: %v, want ErrInvalidQuantity", err)
	}
	if _, err := svc.AddItem(ctx, user, fakeID(101), -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("negative quantity: %v, want ErrInvalidQuantity", err)
	}
	if _, err := svc.AddItem(ctx, user, fakeID(999), 1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("unknown product: %v, want ErrProductNotFound", err)
	}
}

func TestCartSetQuantity(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()
	user := fakeID(1)

	if _, err := svc.SetQuantity(ctx, user, fakeID(101), 4); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("set on absent item: %v, want ErrItemNotFound", err)
	}

	if _, err := svc.AddItem(ctx, user, fakeID(101), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.SetQuantity(ctx, user, fakeID(101), 7)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if cart.Items[0].Quantity != 7 {
		t.Errorf("quantity = %d, want 7 (overwrite, not add)", cart.Items[0].Quantity)
	}

	if _, err := svc.SetQuantity(ctx, user, fakeID(101), 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero quantity: %v, want ErrInvalidQuantity", err)
	}
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()
	user := fakeID(1)

	if _, err := svc.AddItem(ctx, user, fakeID(101), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.RemoveItem(ctx, user, fakeID(101))
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("cart not empty: %+v", cart.Items)
	}
	// removing again is a no-op, not an error
	if _, err := svc.RemoveItem(ctx, user, fakeID(101)); err != nil {
		t.Errorf("second remove: %v", err)
	}
}

func TestCartListPrunesDeadProducts(t *testing.T) {
	svc, products := newCartFixture()
	ctx := context.Background()
	user := fakeID(1)

	if _, err := svc.AddItem(ctx, user, fakeID(101), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddItem(ctx, user, fakeID(102), 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	products.delete(fakeID(101))

	cart, err := svc.List(ctx, user)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != fakeID(102) {
		t.Fatalf("dead reference not pruned: %+v", cart.Items)
	}
}

func TestCartClear(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()
	user := fakeID(1)

	if _, err := svc.AddItem(ctx, user, fakeID(101), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.Clear(ctx, user)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("cart not empty after clear: %+v", cart.Items)
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, fakeID(1), fakeID(101), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	other, err := svc.List(ctx, fakeID(2))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(other.Items) != 0 {
		t.Fatalf("user 2 sees user 1's items: %+v", other.Items)
	}
}
