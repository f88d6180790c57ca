package application

import (
	"context"
	"errors"
	"testing"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
)

func newWishlistFixture() (*WishlistService, *fakeProductRepo) {
	products := newFakeProductRepo(
		&entity.Product{ID: fakeID(101), Title: "Banarasi Silk Saree", TotalStock: 12},
		&entity.Product{ID: fakeID(102), Title: "Chanderi Cotton Saree", TotalStock: 30},
	)
	wishlists := newFakeWishlistRepo(products)
	return NewWishlistService(wishlists, products, nil), products
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	svc, _ := newWishlistFixture()
	ctx := context.Background()
	user := fakeID(1)

	for i := 0; i < 2; i++ {
		wl, err := svc.Add(ctx, user, fakeID(101))
		if err != nil {
			t.Fatalf("add #%d: %v", i+1, err)
		}
		if len(wl.Items) != 1 {
			t.Fatalf("add #%d: items = %+v, want exactly one", i+1, wl.Items)
		}
	}
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	svc, _ := newWishlistFixture()
	if _, err := svc.Add(context.Background(), fakeID(1), fakeID(999)); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("add = %v, want ErrProductNotFound", err)
	}
}

func TestWishlistRemoveIsIdempotent(t *testing.T) {
	svc, _ := newWishlistFixture()
	ctx := context.Background()
	user := fakeID(1)

	if _, err := svc.Add(ctx, user, fakeID(101)); err != nil {
		t.Fatalf("add: %v", err)
	}
	wl, err := svc.Remove(ctx, user, fakeID(101))
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(wl.Items) != 0 {
		t.Fatalf("wishlist not empty: %+v", wl.Items)
	}
	if _, err := svc.Remove(ctx, user, fakeID(101)); err != nil {
		t.Errorf("second remove: %v", err)
	}
}

func TestWishlistListPrunesDeadProducts(t *testing.T) {
	svc, products := newWishlistFixture()
	ctx := context.Background()
	user := fakeID(1)

	if _, err := svc.Add(ctx, user, fakeID(101)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, user, fakeID(102)); err != nil {
		t.Fatalf("add: %v", err)
	}

	products.delete(fakeID(102))

	wl, err := svc.List(ctx, user)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(wl.Items) != 1 || wl.Items[0].ProductID != fakeID(101) {
		t.Fatalf("dead reference not pruned: %+v", wl.Items)
	}
}
