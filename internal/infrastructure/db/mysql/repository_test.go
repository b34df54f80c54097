package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/onlineshop/shop-system/internal/core/domain"
)

// newTestDB opens an in-memory SQLite database with the same GORM settings
// as the production MySQL connection, so error translation behaves the same.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, username string) *domain.Customer {
	t.Helper()
	c := &domain.Customer{
		Username:     username,
		Address:      "Berlin",
		Phone:        "555-0100",
		PasswordHash: "x",
		Role:         domain.RoleCustomer,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func seedProductRow(t *testing.T, db *gorm.DB, name string) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Name:     name,
		Supplier: "Acme",
		Price:    decimal.RequireFromString("49.99"),
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func seedOrderRow(t *testing.T, db *gorm.DB, customerID, productID uint, status domain.OrderStatus, date time.Time) *domain.Order {
	t.Helper()
	o := &domain.Order{
		Date:       date,
		City:       "Berlin",
		Status:     status,
		CustomerID: customerID,
		ProductID:  productID,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

// ---------------------------------------------------------------------------
// CustomerRepository
// ---------------------------------------------------------------------------

func TestCustomerRepository_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	seedCustomer(t, db, "alice")

	err := repo.Create(context.Background(), &domain.Customer{
		Username: "alice", Address: "x", Phone: "x", PasswordHash: "x", Role: domain.RoleCustomer,
	})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestCustomerRepository_FindByID_NotFound(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerRepository_ExistsByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	seedCustomer(t, db, "alice")

	exists, err := repo.ExistsByUsername(context.Background(), "alice")
	if err != nil || !exists {
		t.Errorf("expected alice to exist, got (%v, %v)", exists, err)
	}
	exists, err = repo.ExistsByUsername(context.Background(), "bob")
	if err != nil || exists {
		t.Errorf("expected bob to be absent, got (%v, %v)", exists, err)
	}
}

func TestCustomerRepository_DeleteCascadesToOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	alice := seedCustomer(t, db, "alice")
	bob := seedCustomer(t, db, "bob")
	product := seedProductRow(t, db, "Keyboard")
	seedOrderRow(t, db, alice.ID, product.ID, domain.StatusShipped, time.Now().UTC())
	seedOrderRow(t, db, alice.ID, product.ID, domain.StatusDelivered, time.Now().UTC())
	kept := seedOrderRow(t, db, bob.ID, product.ID, domain.StatusShipped, time.Now().UTC())

	if err := repo.Delete(context.Background(), alice); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	db.Model(&domain.Order{}).Where("customer_id = ?", alice.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected alice's orders removed, %d remain", count)
	}
	db.Model(&domain.Order{}).Where("id = ?", kept.ID).Count(&count)
	if count != 1 {
		t.Error("bob's order must survive alice's deletion")
	}
}

// ---------------------------------------------------------------------------
// ProductRepository
// ---------------------------------------------------------------------------

func TestProductRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	seedProductRow(t, db, "Keyboard")

	err := repo.Create(context.Background(), &domain.Product{
		Name: "Keyboard", Price: decimal.RequireFromString("1.00"),
	})
	if !errors.Is(err, domain.ErrProductNameTaken) {
		t.Errorf("expected ErrProductNameTaken, got %v", err)
	}
}

func TestProductRepository_DeleteCascadesToOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	alice := seedCustomer(t, db, "alice")
	keyboard := seedProductRow(t, db, "Keyboard")
	mouse := seedProductRow(t, db, "Mouse")
	seedOrderRow(t, db, alice.ID, keyboard.ID, domain.StatusShipped, time.Now().UTC())
	kept := seedOrderRow(t, db, alice.ID, mouse.ID, domain.StatusShipped, time.Now().UTC())

	if err := repo.Delete(context.Background(), keyboard); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	db.Model(&domain.Order{}).Where("product_id = ?", keyboard.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected keyboard orders removed, %d remain", count)
	}
	db.Model(&domain.Order{}).Where("id = ?", kept.ID).Count(&count)
	if count != 1 {
		t.Error("mouse order must survive keyboard deletion")
	}
}

func TestProductRepository_PriceRoundTrips(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	p := seedProductRow(t, db, "Keyboard")

	loaded, err := repo.FindByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !loaded.Price.Equal(decimal.RequireFromString("49.99")) {
		t.Errorf("price changed through storage: %s", loaded.Price)
	}
}

// ---------------------------------------------------------------------------
// OrderRepository
// ---------------------------------------------------------------------------

func TestOrderRepository_FindByID_LoadsAssociations(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	alice := seedCustomer(t, db, "alice")
	product := seedProductRow(t, db, "Keyboard")
	order := seedOrderRow(t, db, alice.ID, product.ID, domain.StatusShipped, time.Now().UTC())

	loaded, err := repo.FindByID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if loaded.Customer.Username != "alice" {
		t.Errorf("customer association not loaded: %+v", loaded.Customer)
	}
	if loaded.Product.Name != "Keyboard" {
		t.Errorf("product association not loaded: %+v", loaded.Product)
	}
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_StaleQuery_CutoffIsStrictlyBefore(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	alice := seedCustomer(t, db, "alice")
	product := seedProductRow(t, db, "Keyboard")

	cutoff := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	before := seedOrderRow(t, db, alice.ID, product.ID, domain.StatusShipped, cutoff.Add(-time.Second))
	seedOrderRow(t, db, alice.ID, product.ID, domain.StatusShipped, cutoff)
	seedOrderRow(t, db, alice.ID, product.ID, domain.StatusShipped, cutoff.Add(time.Second))
	seedOrderRow(t, db, alice.ID, product.ID, domain.StatusDelivered, cutoff.Add(-time.Hour))

	stale, err := repo.FindByStatusAndDateBefore(context.Background(), domain.StatusShipped, cutoff)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(stale) != 1 {
		t.Fatalf("expected exactly 1 stale order, got %d", len(stale))
	}
	if stale[0].ID != before.ID {
		t.Errorf("expected order %d, got %d", before.ID, stale[0].ID)
	}
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	alice := seedCustomer(t, db, "alice")
	product := seedProductRow(t, db, "Keyboard")
	order := seedOrderRow(t, db, alice.ID, product.ID, domain.StatusShipped, time.Now().UTC())

	if err := repo.UpdateStatus(context.Background(), order.ID, domain.StatusDelivered); err != nil {
		t.Fatalf("update: %v", err)
	}

	loaded, _ := repo.FindByID(context.Background(), order.ID)
	if loaded.Status != domain.StatusDelivered {
		t.Errorf("status not persisted: %q", loaded.Status)
	}
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusDelivered)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}
