package services

import (
	"errors"
	"fmt"
	"gin-storefront/dto"
	"gin-storefront/models"
	"gin-storefront/repositories"

	"gorm.io/gorm"
)

type IItemService interface {
	FindAll() (*[]models.Item, error)
	FindById(itemID uint) (*models.Item, error)
	Create(createItemInput dto.CreateItemInput, userID uint) (*models.Item, error)
	Update(itemID uint, updateItemInput dto.UpdateItemInput) (*models.Item, error)
	Delete(itemID uint, caller *models.User) (*models.Item, error)
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindAll() (*[]models.Item, error) {
	return s.repository.FindAll()
}

func (s *ItemService) FindById(itemID uint) (*models.Item, error) {
	item, err := s.repository.FindById(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no item found for id %d", ErrNotFound, itemID)
		}
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Create(createItemInput dto.CreateItemInput, userID uint) (*models.Item, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	newItem := models.Item{
		Title:       createItemInput.Title,
		Description: createItemInput.Description,
		Price:       createItemInput.Price,
		Image:       createItemInput.Image,
		LargeImage:  createItemInput.LargeImage,
		UserID:      userID,
	}
	return s.repository.Create(newItem)
}

// Update は所有者チェックを行わない
// 元システムの挙動をそのまま踏襲している（DESIGN.md参照）
func (s *ItemService) Update(itemID uint, updateItemInput dto.UpdateItemInput) (*models.Item, error) {
	targetItem, err := s.FindById(itemID)
	if err != nil {
		return nil, err
	}

	if updateItemInput.Title != nil {
		targetItem.Title = *updateItemInput.Title
	}
	if updateItemInput.Description != nil {
		targetItem.Description = *updateItemInput.Description
	}
	if updateItemInput.Price != nil {
		targetItem.Price = *updateItemInput.Price
	}
	if updateItemInput.Image != nil {
		targetItem.Image = *updateItemInput.Image
	}
	if updateItemInput.LargeImage != nil {
		targetItem.LargeImage = *updateItemInput.LargeImage
	}
	return s.repository.Update(*targetItem)
}

// Delete は所有者本人か、ADMINまたはITEMDELETE保持者だけが実行できる
// 削除前のレコードを返す
func (s *ItemService) Delete(itemID uint, caller *models.User) (*models.Item, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	targetItem, err := s.FindById(itemID)
	if err != nil {
		return nil, err
	}

	if targetItem.UserID != caller.ID {
		if err := RequireAnyPermission(caller, models.PermissionAdmin, models.PermissionItemDelete); err != nil {
			return nil, err
		}
	}

	if err := s.repository.Delete(itemID); err != nil {
		return nil, err
	}
	return targetItem, nil
}
