// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing for
// efficient filtering by customer and status. The version column backs
// optimistic concurrency control on updates.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      int64     `gorm:"not null;index"`
	Status          int       `gorm:"not null;index"`
	TotalPriceCents int64     `gorm:"not null"`
	Version         int64     `gorm:"not null"`
	Items           []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order line items.
// Links to its order via foreign key; removing the order removes its items.
// Position records the item's place within the order, so reads return items
// in insertion order even when a whole batch is inserted in one statement.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	Name        string    `gorm:"type:varchar(63);not null"`
	Category    string    `gorm:"type:varchar(63);not null"`
	Description string    `gorm:"type:varchar(1023)"`
	ProductID   int64     `gorm:"not null"`
	PriceCents  int64     `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for line item entities.
// Overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// The derived total is denormalized into total_price_cents so list filters
// can run without joining items.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Raw()
	items := make([]ItemDTO, 0, len(aggregate.Items()))

	for position, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Raw(),
			OrderID:     orderID,
			Position:    position,
			Name:        item.Name(),
			Category:    item.Category(),
			Description: item.Description(),
			ProductID:   item.ProductID(),
			PriceCents:  item.Price().Cents(),
			Quantity:    item.Quantity(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		CustomerID:      aggregate.CustomerID(),
		Status:          int(aggregate.Status()),
		TotalPriceCents: aggregate.TotalPrice().Cents(),
		Version:         aggregate.Version(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its items using RestoreOrder,
// which recomputes the total from the restored items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.CustomerID, order.Status(dto.Status), items, dto.Version)
}

// itemToDomain converts a line item DTO to its domain entity.
// Uses RestoreItem to reconstruct the entity with its owning order reference.
func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPriceFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id, orderID, dto.Name, dto.Category, dto.Description, dto.ProductID, price, dto.Quantity)
}
