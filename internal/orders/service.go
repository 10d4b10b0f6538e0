package orders

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/velamart/saferoute-bridge/pkg/db/models"
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
)

// Service applies provider status callbacks to local orders and serves
// the status dictionary the provider settings endpoint returns.
type Service interface {
	ApplyStatusUpdate(ctx context.Context, input StatusUpdateInput) error
	Statuses(ctx context.Context, lang string) ([]models.OrderStatus, error)
}

// StatusUpdateInput carries one provider status callback.
type StatusUpdateInput struct {
	SafeRouteID    string
	CMSStatus      string
	TrackingNumber string
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ServiceParams groups dependencies for the orders service.
type ServiceParams struct {
	Repo           Repository
	Tx             txRunner
	NotifyOnStatus bool
}

type service struct {
	repo   Repository
	tx     txRunner
	notify bool
}

// NewService constructs the orders service.
func NewService(params ServiceParams) (*service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders repository required")
	}
	if params.Tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	return &service{
		repo:   params.Repo,
		tx:     params.Tx,
		notify: params.NotifyOnStatus,
	}, nil
}

// ApplyStatusUpdate stores the tracking number on the matching order and
// appends the new status to its history. Both writes run in one
// transaction so a failed history append never leaves a half-applied
// update behind.
func (s *service) ApplyStatusUpdate(ctx context.Context, input StatusUpdateInput) error {
	safeRouteID := strings.TrimSpace(input.SafeRouteID)
	status := strings.TrimSpace(input.CMSStatus)
	if safeRouteID == "" || status == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "delivery id and status are required")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		affected, err := repo.SetTrackingBySafeRouteID(ctx, safeRouteID, input.TrackingNumber)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update tracking")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeDependency, "no order linked to delivery id")
		}

		order, err := repo.FindBySafeRouteID(ctx, safeRouteID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order for history")
		}

		history := &models.OrderHistory{
			OrderID: order.ID,
			Status:  status,
			Comment: "",
			Notify:  s.notify,
		}
		if err := repo.AppendHistory(ctx, history); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append order history")
		}
		return nil
	})
}

// Statuses returns the order status dictionary for the given language.
func (s *service) Statuses(ctx context.Context, lang string) ([]models.OrderStatus, error) {
	statuses, err := s.repo.ListStatuses(ctx, lang)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list order statuses")
	}
	if statuses == nil {
		statuses = []models.OrderStatus{}
	}
	return statuses, nil
}
