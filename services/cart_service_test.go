package services

import (
	"gin-storefront/repositories"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddToCart(t *testing.T) {
	t.Run("first add creates a line with quantity 1", func(t *testing.T) {
		db := setupTestDB(t)
		service := NewCartService(repositories.NewCartRepository(db))
		buyer := createTestUser(t, db, "buyer@example.com")
		item := createTestItem(t, db, buyer.ID, "Mug", 900)

		cartItem, err := service.AddToCart(buyer.ID, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, cartItem.Quantity)
		assert.Equal(t, item.ID, cartItem.ItemID)
	})

	t.Run("repeat add merges instead of duplicating", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewCartRepository(db)
		service := NewCartService(repo)
		buyer := createTestUser(t, db, "buyer@example.com")
		item := createTestItem(t, db, buyer.ID, "Mug", 900)

		_, err := service.AddToCart(buyer.ID, item.ID)
		require.NoError(t, err)
		merged, err := service.AddToCart(buyer.ID, item.ID)
		require.NoError(t, err)

		// 行は1つだけで数量が2になる
		assert.Equal(t, 2, merged.Quantity)
		cartItems, err := repo.FindByUser(buyer.ID)
		require.NoError(t, err)
		require.Len(t, *cartItems, 1)
		assert.Equal(t, 2, (*cartItems)[0].Quantity)
	})

	t.Run("different items get separate lines", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewCartRepository(db)
		service := NewCartService(repo)
		buyer := createTestUser(t, db, "buyer@example.com")
		mug := createTestItem(t, db, buyer.ID, "Mug", 900)
		hat := createTestItem(t, db, buyer.ID, "Hat", 1500)

		_, err := service.AddToCart(buyer.ID, mug.ID)
		require.NoError(t, err)
		_, err = service.AddToCart(buyer.ID, hat.ID)
		require.NoError(t, err)

		cartItems, err := repo.FindByUser(buyer.ID)
		require.NoError(t, err)
		assert.Len(t, *cartItems, 2)
	})

	t.Run("no caller", func(t *testing.T) {
		db := setupTestDB(t)
		service := NewCartService(repositories.NewCartRepository(db))

		_, err := service.AddToCart(0, 1)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestCartService_RemoveFromCart(t *testing.T) {
	t.Run("owner can remove", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewCartRepository(db)
		service := NewCartService(repo)
		buyer := createTestUser(t, db, "buyer@example.com")
		item := createTestItem(t, db, buyer.ID, "Mug", 900)
		cartItem, err := service.AddToCart(buyer.ID, item.ID)
		require.NoError(t, err)

		removed, err := service.RemoveFromCart(buyer.ID, cartItem.ID)
		require.NoError(t, err)

		// 削除前のレコードが返る
		assert.Equal(t, cartItem.ID, removed.ID)

		cartItems, err := repo.FindByUser(buyer.ID)
		require.NoError(t, err)
		assert.Empty(t, *cartItems)
	})

	t.Run("another user's line is forbidden and not deleted", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewCartRepository(db)
		service := NewCartService(repo)
		buyer := createTestUser(t, db, "buyer@example.com")
		intruder := createTestUser(t, db, "intruder@example.com")
		item := createTestItem(t, db, buyer.ID, "Mug", 900)
		cartItem, err := service.AddToCart(buyer.ID, item.ID)
		require.NoError(t, err)

		_, err = service.RemoveFromCart(intruder.ID, cartItem.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		cartItems, err := repo.FindByUser(buyer.ID)
		require.NoError(t, err)
		assert.Len(t, *cartItems, 1)
	})

	t.Run("missing line", func(t *testing.T) {
		db := setupTestDB(t)
		service := NewCartService(repositories.NewCartRepository(db))
		buyer := createTestUser(t, db, "buyer@example.com")

		_, err := service.RemoveFromCart(buyer.ID, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
