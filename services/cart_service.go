package services

import (
	"errors"
	"fmt"
	"gin-storefront/models"
	"gin-storefront/repositories"

	"gorm.io/gorm"
)

type ICartService interface {
	FindByUser(userID uint) (*[]models.CartItem, error)
	AddToCart(userID uint, itemID uint) (*models.CartItem, error)
	RemoveFromCart(userID uint, cartItemID uint) (*models.CartItem, error)
}

type CartService struct {
	repository repositories.ICartRepository
}

func NewCartService(repository repositories.ICartRepository) ICartService {
	return &CartService{repository: repository}
}

func (s *CartService) FindByUser(userID uint) (*[]models.CartItem, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	return s.repository.FindByUser(userID)
}

// AddToCart は同じ(ユーザー, 商品)の行が既にあれば数量+1にマージし、無ければ数量1で新規作成する
// 重複行は作らない
// 注意: lookup-then-incrementは同一ペアへの同時呼び出しでレースになり得る
// ストアレベルのアトミックなupsertは使っていない既知の制限
func (s *CartService) AddToCart(userID uint, itemID uint) (*models.CartItem, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	existing, err := s.repository.FindByUserAndItem(userID, itemID)
	if err == nil {
		existing.Quantity += 1
		return s.repository.Update(*existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newCartItem := models.CartItem{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 1,
	}
	return s.repository.Create(newCartItem)
}

// RemoveFromCart は自分のカート行だけを削除できる
// 削除前のレコードを返す
func (s *CartService) RemoveFromCart(userID uint, cartItemID uint) (*models.CartItem, error) {
	targetCartItem, err := s.repository.FindById(cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no cart item found for id %d", ErrNotFound, cartItemID)
		}
		return nil, err
	}

	if targetCartItem.UserID != userID {
		return nil, fmt.Errorf("%w: this cart item isn't yours", ErrForbidden)
	}

	if err := s.repository.Delete(cartItemID); err != nil {
		return nil, err
	}
	return targetCartItem, nil
}
