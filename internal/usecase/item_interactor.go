package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/InventoryApp/internal/core/ports"
	"github.com/GoArmGo/InventoryApp/internal/domain"
	"github.com/google/uuid"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// itemUseCase implements ItemUseCase
type itemUseCase struct {
	itemStorage ports.ItemStorage
	logger      *slog.Logger
}

// NewItemUseCase создает новый экземпляр ItemUseCase
func NewItemUseCase(itemStorage ports.ItemStorage, logger *slog.Logger) ItemUseCase {
	return &itemUseCase{itemStorage: itemStorage, logger: logger}
}

// List возвращает публичную страницу предметов по фильтру.
// Выборка не ограничена владельцем — это публичный список.
func (uc *itemUseCase) List(ctx context.Context, filter domain.ItemFilter, page, perPage int) (*ItemPage, error) {
	if page <= 0 {
		page = defaultPage
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	items, err := uc.itemStorage.ListItems(ctx, filter, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении списка предметов: %w", err)
	}

	total, err := uc.itemStorage.CountItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при подсчете предметов: %w", err)
	}

	if items == nil {
		items = []domain.Item{}
	}

	// pages = ceil(total / perPage)
	pages := (total + int64(perPage) - 1) / int64(perPage)

	uc.logger.Info("items listed",
		"count", len(items),
		"total", total,
		"page", page,
		"per_page", perPage,
	)

	return &ItemPage{
		Items: items,
		Pagination: Pagination{
			Total:       total,
			Pages:       pages,
			CurrentPage: page,
			PerPage:     perPage,
		},
	}, nil
}

// Get возвращает предмет по ID.
func (uc *itemUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, err := uc.itemStorage.GetItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении предмета по ID: %w", err)
	}
	if item == nil {
		return nil, domain.NewError(domain.KindNotFound, "Item not found")
	}
	return item, nil
}

// Create создает предмет, принудительно назначая владельцем ownerID.
func (uc *itemUseCase) Create(ctx context.Context, ownerID uuid.UUID, input CreateItemInput) (*domain.Item, error) {
	// Price может быть нулем, но обязан присутствовать
	if input.Name == "" || input.Description == "" || input.Category == "" || input.Price == nil {
		return nil, domain.NewError(domain.KindValidation, "Please provide all required fields")
	}
	if *input.Price < 0 {
		return nil, domain.NewError(domain.KindValidation, "Price cannot be negative")
	}

	quantity := 1
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, domain.NewError(domain.KindValidation, "Quantity cannot be negative")
		}
		quantity = *input.Quantity
	}

	// Явный false уважается, отсутствие поля означает true
	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	item := &domain.Item{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       *input.Price,
		Quantity:    quantity,
		IsAvailable: isAvailable,
	}

	if err := uc.itemStorage.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при создании предмета: %w", err)
	}

	uc.logger.Info("item created", "item_id", item.ID, "owner_id", ownerID)
	return item, nil
}

// Update применяет частичное обновление предмета после проверки владельца.
// Обязательные поля проверяются на итоговом (слитом) документе.
func (uc *itemUseCase) Update(ctx context.Context, actorID, id uuid.UUID, input UpdateItemInput) (*domain.Item, error) {
	item, err := uc.itemStorage.GetItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении предмета по ID: %w", err)
	}
	if item == nil {
		return nil, domain.NewError(domain.KindNotFound, "Item not found")
	}
	if item.OwnerID != actorID {
		return nil, domain.NewError(domain.KindForbidden, "Not authorized to update this item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := validateItem(item); err != nil {
		return nil, err
	}

	if err := uc.itemStorage.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при обновлении предмета: %w", err)
	}

	uc.logger.Info("item updated", "item_id", item.ID, "owner_id", item.OwnerID)
	return item, nil
}

// Remove удаляет предмет после проверки владельца.
func (uc *itemUseCase) Remove(ctx context.Context, actorID, id uuid.UUID) error {
	item, err := uc.itemStorage.GetItemByID(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase: ошибка при получении предмета по ID: %w", err)
	}
	if item == nil {
		return domain.NewError(domain.KindNotFound, "Item not found")
	}
	if item.OwnerID != actorID {
		return domain.NewError(domain.KindForbidden, "Not authorized to delete this item")
	}

	if err := uc.itemStorage.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("usecase: ошибка при удалении предмета: %w", err)
	}

	uc.logger.Info("item removed", "item_id", id, "owner_id", item.OwnerID)
	return nil
}

// validateItem проверяет инварианты итогового документа предмета.
func validateItem(item *domain.Item) error {
	if item.Name == "" || item.Description == "" || item.Category == "" {
		return domain.NewError(domain.KindValidation, "Please provide all required fields")
	}
	if item.Price < 0 {
		return domain.NewError(domain.KindValidation, "Price cannot be negative")
	}
	if item.Quantity < 0 {
		return domain.NewError(domain.KindValidation, "Quantity cannot be negative")
	}
	return nil
}
