package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/velamart/saferoute-bridge/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) SetTrackingBySafeRouteID(ctx context.Context, safeRouteID, tracking string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("saferoute_id = ?", safeRouteID).
		Update("tracking", tracking)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repository) FindBySafeRouteID(ctx context.Context, safeRouteID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Where("saferoute_id = ?", safeRouteID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) AppendHistory(ctx context.Context, history *models.OrderHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *repository) ListStatuses(ctx context.Context, lang string) ([]models.OrderStatus, error) {
	var statuses []models.OrderStatus
	err := r.db.WithContext(ctx).
		Where("lang = ?", lang).
		Order("id ASC").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
