package orderrepo

import (
	"context"
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// initialVersion is the version assigned to a freshly inserted order.
const initialVersion = 1

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
// The tracker may be nil when the repository serves read-only handlers
// outside a unit of work.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = initialVersion
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order", aggregate.ID().String(), err)
		}
		return err
	}

	r.track(aggregate)
	return nil
}

// Update saves an existing order to the database under optimistic locking.
// The row is matched by id and the version loaded with the aggregate; a
// version mismatch means a concurrent update won and yields a conflict
// error, while a missing row yields a not-found error.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expectedVersion := dto.Version

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Updates(map[string]any{
			"customer_id":       dto.CustomerID,
			"status":            dto.Status,
			"total_price_cents": dto.TotalPriceCents,
			"version":           expectedVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyUpdateMiss(ctx, aggregate.ID())
	}

	if err := r.saveItems(ctx, dto); err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order by ID with its items in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.position")
		}).
		First(&dto, "id = ?", id.Raw()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves orders matching the filter, in creation order.
// All filter criteria combine with AND semantics; an empty filter matches
// every order.
func (r *GormOrderRepository) GetAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.position")
		}).
		Order("orders.created_at, orders.id")

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", int(*filter.Status))
	}
	if filter.MinTotal != nil {
		query = query.Where("total_price_cents >= ?", filter.MinTotal.Cents())
	}
	if filter.MaxTotal != nil {
		query = query.Where("total_price_cents <= ?", filter.MaxTotal.Cents())
	}
	if filter.ItemName != "" {
		pattern := "%" + strings.ToLower(filter.ItemName) + "%"
		query = query.Where(
			"EXISTS (SELECT 1 FROM order_items WHERE order_items.order_id = orders.id AND LOWER(order_items.name) LIKE ?)",
			pattern,
		)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Delete removes an order and its items from the database.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", id.Raw()).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Raw())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// saveItems reconciles the item rows with the aggregate's current item set:
// present items are upserted and rows for removed items are pruned.
func (r *GormOrderRepository) saveItems(ctx context.Context, dto OrderDTO) error {
	if len(dto.Items) == 0 {
		return r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"position", "name", "category", "description", "product_id", "price_cents", "quantity",
		}),
	}).Create(&dto.Items).Error
	if err != nil {
		return err
	}

	keptIDs := make([]uuid.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		keptIDs = append(keptIDs, item.ID)
	}

	return r.db.WithContext(ctx).
		Where("order_id = ? AND id NOT IN ?", dto.ID, keptIDs).
		Delete(&ItemDTO{}).Error
}

// classifyUpdateMiss distinguishes a stale-version update from a deleted
// order after a zero-row update.
func (r *GormOrderRepository) classifyUpdateMiss(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Raw()).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return errs.NewConflictError("order", id.String())
	}
	return errs.NewObjectNotFoundError("order", id.String())
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
