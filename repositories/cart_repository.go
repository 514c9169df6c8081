package repositories

import (
	"gin-storefront/models"

	"gorm.io/gorm"
)

type ICartRepository interface {
	FindByUser(userID uint) (*[]models.CartItem, error)
	FindByUserAndItem(userID uint, itemID uint) (*models.CartItem, error)
	FindById(cartItemID uint) (*models.CartItem, error)
	Create(newCartItem models.CartItem) (*models.CartItem, error)
	Update(updatedCartItem models.CartItem) (*models.CartItem, error)
	Delete(cartItemID uint) error
	DeleteByIds(cartItemIDs []uint) error
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{db: db}
}

// FindByUser はユーザーのカート全行をItem展開付きで返す
func (r *CartRepository) FindByUser(userID uint) (*[]models.CartItem, error) {
	var cartItems []models.CartItem
	result := r.db.Preload("Item").Find(&cartItems, "user_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &cartItems, nil
}

func (r *CartRepository) FindByUserAndItem(userID uint, itemID uint) (*models.CartItem, error) {
	var cartItem models.CartItem
	result := r.db.First(&cartItem, "user_id = ? AND item_id = ?", userID, itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &cartItem, nil
}

func (r *CartRepository) FindById(cartItemID uint) (*models.CartItem, error) {
	var cartItem models.CartItem
	result := r.db.First(&cartItem, "id = ?", cartItemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &cartItem, nil
}

func (r *CartRepository) Create(newCartItem models.CartItem) (*models.CartItem, error) {
	result := r.db.Create(&newCartItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newCartItem, nil
}

func (r *CartRepository) Update(updatedCartItem models.CartItem) (*models.CartItem, error) {
	result := r.db.Save(&updatedCartItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &updatedCartItem, nil
}

func (r *CartRepository) Delete(cartItemID uint) error {
	result := r.db.Delete(&models.CartItem{}, "id = ?", cartItemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByIds は注文確定時のカート一括クリアに使う
func (r *CartRepository) DeleteByIds(cartItemIDs []uint) error {
	if len(cartItemIDs) == 0 {
		return nil
	}
	result := r.db.Delete(&models.CartItem{}, "id IN ?", cartItemIDs)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
