package repository

import (
	"database/sql"
	"io"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/database"
	"taskflow/internal/domain"
	"taskflow/pkg/logger"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	// :memory: veritabanı bağlantıya özeldir; havuz tek bağlantıya sabitlenir.
	db.SetMaxOpenConns(1)

	t.Cleanup(func() { db.Close() })

	log := logger.New(logger.ErrorLevel, io.Discard)
	require.NoError(t, database.NewMigrationService(db, log).RunMigrations())

	return db
}

func testLogger() logger.Logger {
	return logger.New(logger.ErrorLevel, io.Discard)
}

func TestUserRepository_RoundTrip(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), testLogger())

	user := &domain.User{
		ID:        1,
		FirstName: "İlkay",
		LastName:  "Şahin",
		Age:       29,
		Email:     "ilkay@example.com",
		Role:      "customer",
		Phone:     "+90 555 000 00 00",
	}

	require.NoError(t, repo.Create(user))

	got, err := repo.FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, got)
}

func TestUserRepository_FindByIDAbsent(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), testLogger())

	got, err := repo.FindByID(404)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_DuplicateIDConflict(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), testLogger())

	user := &domain.User{ID: 1, FirstName: "A", LastName: "B", Age: 20, Email: "a@b", Role: "r", Phone: "5"}
	require.NoError(t, repo.Create(user))

	other := &domain.User{ID: 1, FirstName: "C", LastName: "D", Age: 30, Email: "c@d", Role: "r", Phone: "6"}
	err := repo.Create(other)

	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(1), conflictErr.ID)

	// Çakışma mevcut kaydı değiştirmemeli.
	got, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "A", got.FirstName)
}

func TestUserRepository_ListAfterCreates(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), testLogger())

	ids := []int64{3, 1, 2}
	for _, id := range ids {
		user := &domain.User{ID: id, FirstName: "A", LastName: "B", Age: 20, Email: "a@b", Role: "r", Phone: "5"}
		require.NoError(t, repo.Create(user))
	}

	users, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, users, 3)

	gotIDs := make([]int64, 0, len(users))
	for _, u := range users {
		gotIDs = append(gotIDs, u.ID)
	}
	assert.ElementsMatch(t, ids, gotIDs)
}

func TestUserRepository_DeleteThenFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), testLogger())

	user := &domain.User{ID: 1, FirstName: "A", LastName: "B", Age: 20, Email: "a@b", Role: "r", Phone: "5"}
	require.NoError(t, repo.Create(user))
	require.NoError(t, repo.Delete(1))

	got, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), testLogger())

	user := &domain.User{ID: 1, FirstName: "A", LastName: "B", Age: 20, Email: "a@b", Role: "r", Phone: "5"}
	require.NoError(t, repo.Create(user))

	user.Email = "yeni@example.com"
	user.Age = 21
	require.NoError(t, repo.Update(user))

	got, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "yeni@example.com", got.Email)
	assert.Equal(t, 21, got.Age)
}

func TestOrderRepository_RoundTripDates(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t), testLogger())

	order := &domain.Order{
		ID:          1,
		Name:        "A",
		Description: "d",
		StartDate:   domain.NewDate(2024, time.June, 1),
		EndDate:     domain.NewDate(2024, time.June, 10),
		Address:     "x",
		Price:       100,
		CustomerID:  5,
		ExecutorID:  nil,
	}

	require.NoError(t, repo.Create(order))

	got, err := repo.FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, got.StartDate.Equal(domain.NewDate(2024, time.June, 1)))
	assert.True(t, got.EndDate.Equal(domain.NewDate(2024, time.June, 10)))
	assert.Equal(t, 100.0, got.Price)
	assert.Nil(t, got.ExecutorID)
}

func TestOrderRepository_NullableExecutor(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t), testLogger())

	executorID := int64(7)
	order := &domain.Order{
		ID:          2,
		Name:        "B",
		Description: "d",
		StartDate:   domain.NewDate(2024, time.January, 13),
		EndDate:     domain.NewDate(2024, time.February, 1),
		Address:     "y",
		Price:       49.9,
		CustomerID:  5,
		ExecutorID:  &executorID,
	}

	require.NoError(t, repo.Create(order))

	got, err := repo.FindByID(2)
	require.NoError(t, err)
	require.NotNil(t, got.ExecutorID)
	assert.Equal(t, int64(7), *got.ExecutorID)

	// Güncelleme executor'ı geri null yapabilmeli.
	got.ExecutorID = nil
	require.NoError(t, repo.Update(got))

	got, err = repo.FindByID(2)
	require.NoError(t, err)
	assert.Nil(t, got.ExecutorID)
}

func TestOfferRepository_CRUD(t *testing.T) {
	repo := NewOfferRepository(newTestDB(t), testLogger())

	offer := &domain.Offer{ID: 1, OrderID: 10, ExecutorID: 7}
	require.NoError(t, repo.Create(offer))

	got, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, offer, got)

	offer.ExecutorID = 8
	require.NoError(t, repo.Update(offer))

	got, err = repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ExecutorID)

	require.NoError(t, repo.Delete(1))

	got, err = repo.FindByID(1)
	require.NoError(t, err)
	assert.Nil(t, got)

	var conflictErr *domain.ConflictError
	require.NoError(t, repo.Create(&domain.Offer{ID: 2, OrderID: 10, ExecutorID: 7}))
	require.ErrorAs(t, repo.Create(&domain.Offer{ID: 2, OrderID: 11, ExecutorID: 9}), &conflictErr)
}

// Sipariş silinince teklifler bilerek yerinde kalır; sarkan referanslar olağandır.
func TestOfferSurvivesOrderDelete(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderRepository(db, testLogger())
	offers := NewOfferRepository(db, testLogger())

	order := &domain.Order{
		ID:          1,
		Name:        "A",
		Description: "d",
		StartDate:   domain.NewDate(2024, time.June, 1),
		EndDate:     domain.NewDate(2024, time.June, 10),
		Address:     "x",
		Price:       100,
		CustomerID:  5,
	}
	require.NoError(t, orders.Create(order))
	require.NoError(t, offers.Create(&domain.Offer{ID: 1, OrderID: 1, ExecutorID: 7}))

	require.NoError(t, orders.Delete(1))

	got, err := offers.FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.OrderID)
}
