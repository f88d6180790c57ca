package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
)

var (
	errDuplicate    = errors.New("duplicate key")
	errNotFoundFake = errors.New("row not found")
)

func fakeID(n int) string {
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
}

// In-memory fakes backing the service tests. They mirror the Postgres
// repositories' semantics: accumulating cart adds, idempotent removes,
// prune-on-read for dead product references.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*entity.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return errDuplicate
		}
	}
	r.seq++
	u.ID = fakeID(r.seq)
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByPhone(phone string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if phone == "" {
		return nil, nil
	}
	for _, u := range r.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errNotFoundFake
	}
	u.Password = hash
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Exists(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.products[id]
	return ok, nil
}

func (r *fakeProductRepo) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
}

type cartRow struct {
	productID string
	quantity  int
}

type fakeCartRepo struct {
	mu       sync.Mutex
	rows     map[string][]cartRow // by user, insertion order
	products *fakeProductRepo
}

func newFakeCartRepo(products *fakeProductRepo) *fakeCartRepo {
	return &fakeCartRepo{rows: map[string][]cartRow{}, products: products}
}

func (r *fakeCartRepo) AddItem(userID, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows[userID] {
		if row.productID == productID {
			r.rows[userID][i].quantity += quantity
			return nil
		}
	}
	r.rows[userID] = append(r.rows[userID], cartRow{productID, quantity})
	return nil
}

func (r *fakeCartRepo) SetQuantity(userID, productID string, quantity int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows[userID] {
		if row.productID == productID {
			r.rows[userID][i].quantity = quantity
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCartRepo) RemoveItem(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.rows[userID]
	for i, row := range rows {
		if row.productID == productID {
			r.rows[userID] = append(rows[:i:i], rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCartRepo) List(userID string) ([]entity.CartEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[userID][:0]
	out := []entity.CartEntry{}
	for _, row := range r.rows[userID] {
		p, _ := r.products.GetByID(row.productID)
		if p == nil {
			continue // pruned
		}
		kept = append(kept, row)
		out = append(out, entity.CartEntry{
			ProductID:    p.ID,
			Title:        p.Title,
			DesignNumber: p.DesignNumber,
			Media:        p.Media,
			TotalStock:   p.TotalStock,
			Quantity:     row.quantity,
		})
	}
	r.rows[userID] = kept
	return out, nil
}

func (r *fakeCartRepo) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, userID)
	return nil
}

type fakeWishlistRepo struct {
	mu       sync.Mutex
	rows     map[string][]string // by user, insertion order
	products *fakeProductRepo
}

func newFakeWishlistRepo(products *fakeProductRepo) *fakeWishlistRepo {
	return &fakeWishlistRepo{rows: map[string][]string{}, products: products}
}

func (r *fakeWishlistRepo) Add(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.rows[userID] {
		if id == productID {
			return nil
		}
	}
	r.rows[userID] = append(r.rows[userID], productID)
	return nil
}

func (r *fakeWishlistRepo) Remove(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.rows[userID]
	for i, id := range rows {
		if id == productID {
			r.rows[userID] = append(rows[:i:i], rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeWishlistRepo) List(userID string) ([]entity.WishlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[userID][:0]
	out := []entity.WishlistEntry{}
	for _, id := range r.rows[userID] {
		p, _ := r.products.GetByID(id)
		if p == nil {
			continue
		}
		kept = append(kept, id)
		out = append(out, entity.WishlistEntry{
			ProductID:    p.ID,
			Title:        p.Title,
			DesignNumber: p.DesignNumber,
			Media:        p.Media,
			TotalStock:   p.TotalStock,
		})
	}
	r.rows[userID] = kept
	return out, nil
}

type fakeCodeStore struct {
	mu    sync.Mutex
	codes map[string]*entity.ResetCode
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{codes: map[string]*entity.ResetCode{}}
}

func (s *fakeCodeStore) Save(_ context.Context, rec *entity.ResetCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *rec
	s.codes[rec.Phone] = &cp
	return nil
}

func (s *fakeCodeStore) Get(_ context.Context, phone string) (*entity.ResetCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.codes[phone]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *fakeCodeStore) Delete(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, phone)
	return nil
}

type fakeSMS struct {
	mu   sync.Mutex
	sent []string // codes in dispatch order
	err  error
}

func (f *fakeSMS) SendOTP(_ context.Context, phone, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, code)
	return nil
}

func (f *fakeSMS) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return ""
	}
	return f.sent[len(f.sent)-1]
}
