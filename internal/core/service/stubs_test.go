package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/onlineshop/shop-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubCustomerRepo struct {
	byID      map[uint]*domain.Customer
	nextID    uint
	createErr error
	saveErr   error
	deleteErr error
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{byID: make(map[uint]*domain.Customer), nextID: 1}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.byID {
		if existing.Username == c.Username {
			return domain.ErrUsernameTaken
		}
	}
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uint) (*domain.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) FindByUsername(_ context.Context, username string) (*domain.Customer, error) {
	for _, c := range r.byID {
		if c.Username == username {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, c := range r.byID {
		if c.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	ids := make([]uint, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.Customer, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.byID[id])
	}
	return out, nil
}

func (r *stubCustomerRepo) Save(_ context.Context, c *domain.Customer) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, c *domain.Customer) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.byID, c.ID)
	return nil
}

func (r *stubCustomerRepo) seed(username, address string, role domain.Role) *domain.Customer {
	c := &domain.Customer{
		Username: username,
		Address:  address,
		Phone:    "555-0100",
		Role:     role,
	}
	_ = r.Create(context.Background(), c)
	return c
}

type stubProductRepo struct {
	byID      map[uint]*domain.Product
	nextID    uint
	createErr error
	saveErr   error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[uint]*domain.Product), nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	p.ID = r.nextID
	r.nextID++
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, p := range r.byID {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	ids := make([]uint, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.byID[id])
	}
	return out, nil
}

func (r *stubProductRepo) Save(_ context.Context, p *domain.Product) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, p *domain.Product) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, p.ID)
	return nil
}

type stubOrderRepo struct {
	byID      map[uint]*domain.Order
	nextID    uint
	createErr error
	// updateErrByID injects a per-row failure into UpdateStatus.
	updateErrByID map[uint]error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		byID:          make(map[uint]*domain.Order),
		nextID:        1,
		updateErrByID: make(map[uint]error),
	}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	o.ID = r.nextID
	r.nextID++
	clone := *o
	r.byID[o.ID] = &clone
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uint) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	ids := make([]uint, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.byID[id])
	}
	return out, nil
}

func (r *stubOrderRepo) Delete(_ context.Context, o *domain.Order) error {
	if _, ok := r.byID[o.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.byID, o.ID)
	return nil
}

// FindByStatusAndDateBefore mirrors the real query: status match plus a
// strictly-before date comparison.
func (r *stubOrderRepo) FindByStatusAndDateBefore(_ context.Context, status domain.OrderStatus, cutoff time.Time) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.byID {
		if o.Status == status && o.Date.Before(cutoff) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id uint, status domain.OrderStatus) error {
	if err := r.updateErrByID[id]; err != nil {
		return err
	}
	o, ok := r.byID[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (r *stubOrderRepo) seed(status domain.OrderStatus, date time.Time, customerID, productID uint) *domain.Order {
	o := &domain.Order{
		Date:       date,
		City:       fmt.Sprintf("city-%d", r.nextID),
		Status:     status,
		CustomerID: customerID,
		ProductID:  productID,
	}
	_ = r.Create(context.Background(), o)
	return r.byID[o.ID]
}

type stubAuditRepo struct {
	events    []domain.OrderEvent
	insertErr error
}

func (r *stubAuditRepo) InsertOrderEvent(_ context.Context, e *domain.OrderEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.events = append(r.events, *e)
	return nil
}
