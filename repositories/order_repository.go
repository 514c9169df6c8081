package repositories

import (
	"gin-storefront/models"

	"gorm.io/gorm"
)

type IOrderRepository interface {
	Create(newOrder *models.Order) error
	FindById(orderID uint) (*models.Order, error)
	FindByUser(userID uint) (*[]models.Order, error)
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

// Create はOrderと紐づくOrderItem群を永続化する
// gormは関連レコード付きのCreateを1トランザクションで実行する
func (r *OrderRepository) Create(newOrder *models.Order) error {
	result := r.db.Create(newOrder)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *OrderRepository) FindById(orderID uint) (*models.Order, error) {
	var order models.Order
	result := r.db.Preload("Items").First(&order, "id = ?", orderID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &order, nil
}

func (r *OrderRepository) FindByUser(userID uint) (*[]models.Order, error) {
	var orders []models.Order
	result := r.db.Preload("Items").Order("created_at DESC").Find(&orders, "user_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &orders, nil
}
