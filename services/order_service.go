package services

import (
	"context"
	"errors"
	"fmt"
	"gin-storefront/constants"
	"gin-storefront/models"
	"gin-storefront/payments"
	"gin-storefront/repositories"

	"gorm.io/gorm"
)

type IOrderService interface {
	CreateOrder(ctx context.Context, userID uint, paymentToken string) (*models.Order, error)
	FindByUser(userID uint) (*[]models.Order, error)
	FindById(orderID uint, caller *models.User) (*models.Order, error)
}

type OrderService struct {
	orderRepository repositories.IOrderRepository
	cartRepository  repositories.ICartRepository
	userRepository  repositories.IUserRepository
	gateway         payments.Charger
}

func NewOrderService(
	orderRepository repositories.IOrderRepository,
	cartRepository repositories.ICartRepository,
	userRepository repositories.IUserRepository,
	gateway payments.Charger,
) IOrderService {
	return &OrderService{
		orderRepository: orderRepository,
		cartRepository:  cartRepository,
		userRepository:  userRepository,
		gateway:         gateway,
	}
}

// CreateOrder はカートを注文に変換する
// 処理順序は 課金 → 注文永続化 → カートクリア で固定
// 課金前に失敗した場合はストアへの変更は一切発生しない
// 課金成功後に注文の保存が失敗した場合はErrOrderPersistenceAfterChargeを返し、
// 運用側での突合のため課金IDをログに残す
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, paymentToken string) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	if _, err := s.userRepository.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	cartItems, err := s.cartRepository.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(*cartItems) == 0 {
		return nil, fmt.Errorf("%w: your cart is empty", ErrValidation)
	}

	// サーバー側で再計算した金額だけを信用する
	var amount int64
	for _, cartItem := range *cartItems {
		amount += cartItem.Item.Price * int64(cartItem.Quantity)
	}

	charge, err := s.gateway.Charge(ctx, amount, constants.OrderCurrency, paymentToken)
	if err != nil {
		// この時点ではストアは未変更なのでカートはそのまま残る
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	orderItems := make([]models.OrderItem, 0, len(*cartItems))
	cartItemIDs := make([]uint, 0, len(*cartItems))
	for _, cartItem := range *cartItems {
		orderItems = append(orderItems, models.OrderItem{
			Title:       cartItem.Item.Title,
			Description: cartItem.Item.Description,
			Price:       cartItem.Item.Price,
			Image:       cartItem.Item.Image,
			Quantity:    cartItem.Quantity,
		})
		cartItemIDs = append(cartItemIDs, cartItem.ID)
	}

	// 注文の合計にはゲートウェイが返した額を記録する
	newOrder := models.Order{
		UserID:   userID,
		Total:    charge.Amount,
		ChargeID: charge.ID,
		Items:    orderItems,
	}
	if err := s.orderRepository.Create(&newOrder); err != nil {
		// 課金済み・注文なしの不整合。必ず専用エラーで上げる
		return nil, fmt.Errorf("%w: charge %s: %v", ErrOrderPersistenceAfterCharge, charge.ID, err)
	}

	if err := s.cartRepository.DeleteByIds(cartItemIDs); err != nil {
		return nil, err
	}

	return &newOrder, nil
}

func (s *OrderService) FindByUser(userID uint) (*[]models.Order, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	return s.orderRepository.FindByUser(userID)
}

func (s *OrderService) FindById(orderID uint, caller *models.User) (*models.Order, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	order, err := s.orderRepository.FindById(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no order found for id %d", ErrNotFound, orderID)
		}
		return nil, err
	}

	if order.UserID != caller.ID {
		return nil, fmt.Errorf("%w: you can't see this order", ErrForbidden)
	}
	return order, nil
}
