package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/velamart/saferoute-bridge/pkg/db/models"
)

// Repository exposes the order reads/writes the webhook ingest needs.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	SetTrackingBySafeRouteID(ctx context.Context, safeRouteID, tracking string) (int64, error)
	FindBySafeRouteID(ctx context.Context, safeRouteID string) (*models.Order, error)
	AppendHistory(ctx context.Context, history *models.OrderHistory) error
	ListStatuses(ctx context.Context, lang string) ([]models.OrderStatus, error)
}
