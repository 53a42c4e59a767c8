package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item представляет модель предмета инвентаря,
// соответствует таблице items в бд.
// Владелец назначается при создании и никогда не берется из тела запроса.
type Item struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"column:id;primaryKey"`
	OwnerID     uuid.UUID `json:"owner" db:"owner_id" gorm:"column:owner_id"`
	Name        string    `json:"name" db:"name" gorm:"column:name"`
	Description string    `json:"description" db:"description" gorm:"column:description"`
	Category    string    `json:"category" db:"category" gorm:"column:category"`
	Price       float64   `json:"price" db:"price" gorm:"column:price"`
	Quantity    int       `json:"quantity" db:"quantity" gorm:"column:quantity"`
	IsAvailable bool      `json:"isAvailable" db:"is_available" gorm:"column:is_available"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"column:updated_at"`
}

func (Item) TableName() string {
	return "items"
}

// ItemFilter описывает условия публичной выборки предметов.
// Пустая категория и AvailableOnly=false означают отсутствие ограничения.
type ItemFilter struct {
	Category      string
	AvailableOnly bool
}
