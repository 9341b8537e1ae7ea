package repository

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"luxestore/internal/domain/model"
	domainrepo "luxestore/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB接続文字列を環境変数から読む。未設定ならこの層のテストはスキップ。
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Product{}, &model.CartItem{}); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

// 同じ(user, product)への同時追加がON CONFLICTで1行に積まれること
func Test_CartGorm_Upsert_ConcurrentAddsMergeToOneRow(t *testing.T) {
	db := testDB(t)
	repo := NewCartGormRepository(db)

	// 他のテスト走行と衝突しないユーザーID
	userID := time.Now().UnixNano()
	const productID = int64(101)
	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&model.CartItem{})
	})

	const n = 20
	var wantTotal int64
	for i := 1; i <= n; i++ {
		wantTotal += int64(i)
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(qty int64) {
			defer wg.Done()
			_, err := repo.Upsert(context.Background(), userID, productID, qty)
			errs <- err
		}(int64(i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	var items []model.CartItem
	assert.NoError(t, db.Where("user_id = ?", userID).Find(&items).Error)
	assert.Len(t, items, 1)
	assert.Equal(t, wantTotal, items[0].Quantity)
}

// 同時減算でも条件付きUPDATEが在庫を0未満にしないこと
func Test_ProductGorm_DecreaseQuantity_ConcurrentStaysNonNegative(t *testing.T) {
	db := testDB(t)
	repo := NewProductGormRepository(db)

	created, err := repo.Create(context.Background(), model.Product{
		Name:     "Concurrency-" + time.Now().Format("20060102-150405.000000000"),
		Price:    5000,
		Quantity: 10,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	t.Cleanup(func() {
		db.Delete(&model.Product{}, created.ID)
	})

	const n = 8
	const qty = int64(3)

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.DecreaseQuantity(context.Background(), created.ID, qty)
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int64
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, domainrepo.ErrInsufficientStock), "unexpected error: %v", err)
	}

	// 在庫10に対してqty=3はちょうど3回しか成功しない
	assert.Equal(t, int64(3), succeeded)

	after, err := repo.FindByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), after.Quantity)
	assert.GreaterOrEqual(t, after.Quantity, int64(0))
}

// 減算はupdated_atも同じUPDATE文で進めること
func Test_ProductGorm_DecreaseQuantity_BumpsUpdatedAt(t *testing.T) {
	db := testDB(t)
	repo := NewProductGormRepository(db)

	created, err := repo.Create(context.Background(), model.Product{
		Name:     "UpdatedAt-" + time.Now().Format("20060102-150405.000000000"),
		Price:    5000,
		Quantity: 5,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	t.Cleanup(func() {
		db.Delete(&model.Product{}, created.ID)
	})

	time.Sleep(50 * time.Millisecond)

	assert.NoError(t, repo.DecreaseQuantity(context.Background(), created.ID, 2))

	after, err := repo.FindByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), after.Quantity)
	assert.True(t, after.UpdatedAt.After(created.UpdatedAt),
		"updated_at not bumped: before=%v after=%v", created.UpdatedAt, after.UpdatedAt)
}
