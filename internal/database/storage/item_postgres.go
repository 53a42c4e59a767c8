package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/InventoryApp/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemStorage реализует интерфейс ports.ItemStorage с использованием GORM
type ItemStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewItemStorage создает новый экземпляр ItemStorage
func NewItemStorage(db *gorm.DB, logger *slog.Logger) *ItemStorage {
	return &ItemStorage{db: db, logger: logger}
}

// scopeFilter накладывает условия выборки на запрос.
// Условия конъюнктивны; пустые значения фильтра ничего не ограничивают.
func scopeFilter(tx *gorm.DB, filter domain.ItemFilter) *gorm.DB {
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.AvailableOnly {
		tx = tx.Where("is_available = ?", true)
	}
	return tx
}

// CreateItem сохраняет новый предмет в базе данных.
func (s *ItemStorage) CreateItem(ctx context.Context, item *domain.Item) error {
	start := time.Now()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	result := s.db.WithContext(ctx).Create(item)
	if result.Error != nil {
		s.logger.Error("failed to create item", "item_id", item.ID, "error", result.Error)
		return fmt.Errorf("ошибка при сохранении предмета: %w", result.Error)
	}

	s.logger.Info("item saved successfully",
		"item_id", item.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetItemByID получает предмет по ID.
// Возвращает (nil, nil), если запись не найдена.
func (s *ItemStorage) GetItemByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	var item domain.Item
	result := s.db.WithContext(ctx).First(&item, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to get item by id", "item_id", id, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении предмета по ID: %w", result.Error)
	}
	return &item, nil
}

// ListItems получает страницу предметов по фильтру с пагинацией,
// новые предметы первыми.
func (s *ItemStorage) ListItems(ctx context.Context, filter domain.ItemFilter, page, perPage int) ([]domain.Item, error) {
	start := time.Now()

	var items []domain.Item
	offset := (page - 1) * perPage

	result := scopeFilter(s.db.WithContext(ctx), filter).
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&items)

	if result.Error != nil {
		s.logger.Error("failed to list items", "page", page, "per_page", perPage, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении списка предметов: %w", result.Error)
	}

	s.logger.Info("listed items successfully",
		"page", page,
		"per_page", perPage,
		"count", len(items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return items, nil
}

// CountItems подсчитывает предметы, удовлетворяющие фильтру.
func (s *ItemStorage) CountItems(ctx context.Context, filter domain.ItemFilter) (int64, error) {
	var total int64
	result := scopeFilter(s.db.WithContext(ctx).Model(&domain.Item{}), filter).Count(&total)
	if result.Error != nil {
		s.logger.Error("failed to count items", "error", result.Error)
		return 0, fmt.Errorf("ошибка при подсчете предметов: %w", result.Error)
	}
	return total, nil
}

// UpdateItem сохраняет измененный предмет целиком.
// Save пишет все колонки, поэтому явный false в is_available не теряется.
func (s *ItemStorage) UpdateItem(ctx context.Context, item *domain.Item) error {
	start := time.Now()
	item.UpdatedAt = time.Now()

	result := s.db.WithContext(ctx).Save(item)
	if result.Error != nil {
		s.logger.Error("failed to update item", "item_id", item.ID, "error", result.Error)
		return fmt.Errorf("ошибка при обновлении предмета: %w", result.Error)
	}

	s.logger.Info("item updated successfully",
		"item_id", item.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// DeleteItem удаляет предмет по ID.
func (s *ItemStorage) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&domain.Item{}, "id = ?", id)
	if result.Error != nil {
		s.logger.Error("failed to delete item", "item_id", id, "error", result.Error)
		return fmt.Errorf("ошибка при удалении предмета: %w", result.Error)
	}

	s.logger.Info("item deleted successfully", "item_id", id)
	return nil
}
