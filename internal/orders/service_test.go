package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velamart/saferoute-bridge/pkg/db/models"
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
)

type stubRepo struct {
	trackingCalls int
	trackingSeen  string
	affected      int64
	order         *models.Order
	findErr       error
	histories     []*models.OrderHistory
	appendErr     error
	statuses      []models.OrderStatus
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRepo) SetTrackingBySafeRouteID(ctx context.Context, safeRouteID, tracking string) (int64, error) {
	s.trackingCalls++
	s.trackingSeen = tracking
	return s.affected, nil
}

func (s *stubRepo) FindBySafeRouteID(ctx context.Context, safeRouteID string) (*models.Order, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.order, nil
}

func (s *stubRepo) AppendHistory(ctx context.Context, history *models.OrderHistory) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.histories = append(s.histories, history)
	return nil
}

func (s *stubRepo) ListStatuses(ctx context.Context, lang string) ([]models.OrderStatus, error) {
	return s.statuses, nil
}

type stubTx struct {
	calls int
}

func (s *stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.calls++
	return fn(nil)
}

func newTestService(t *testing.T, repo *stubRepo, tx *stubTx, notify bool) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo, Tx: tx, NotifyOnStatus: notify})
	if err != nil {
		t.Fatalf("setup error: %v", err)
	}
	return svc
}

func TestApplyStatusUpdateWritesTrackingAndHistory(t *testing.T) {
	orderID := uuid.New()
	repo := &stubRepo{affected: 1, order: &models.Order{ID: orderID, SafeRouteID: "sr-42"}}
	tx := &stubTx{}
	svc := newTestService(t, repo, tx, true)

	err := svc.ApplyStatusUpdate(context.Background(), StatusUpdateInput{
		SafeRouteID:    "sr-42",
		CMSStatus:      "3",
		TrackingNumber: "TRK-100",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.calls != 1 {
		t.Fatalf("expected one transaction, got %d", tx.calls)
	}
	if repo.trackingSeen != "TRK-100" {
		t.Fatalf("expected tracking TRK-100, got %q", repo.trackingSeen)
	}
	if len(repo.histories) != 1 {
		t.Fatalf("expected one history row, got %d", len(repo.histories))
	}
	entry := repo.histories[0]
	if entry.OrderID != orderID || entry.Status != "3" || entry.Comment != "" || !entry.Notify {
		t.Fatalf("unexpected history row: %+v", entry)
	}
}

func TestApplyStatusUpdateHonorsNotifyFlag(t *testing.T) {
	repo := &stubRepo{affected: 1, order: &models.Order{ID: uuid.New()}}
	svc := newTestService(t, repo, &stubTx{}, false)

	err := svc.ApplyStatusUpdate(context.Background(), StatusUpdateInput{SafeRouteID: "sr-1", CMSStatus: "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.histories[0].Notify {
		t.Fatal("expected notify disabled on history row")
	}
}

func TestApplyStatusUpdateRejectsMissingFields(t *testing.T) {
	repo := &stubRepo{affected: 1}
	tx := &stubTx{}
	svc := newTestService(t, repo, tx, true)

	cases := []StatusUpdateInput{
		{SafeRouteID: "", CMSStatus: "3"},
		{SafeRouteID: "sr-1", CMSStatus: ""},
		{SafeRouteID: "  ", CMSStatus: "  "},
	}
	for _, input := range cases {
		err := svc.ApplyStatusUpdate(context.Background(), input)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for %+v, got %v", input, err)
		}
	}
	if tx.calls != 0 || repo.trackingCalls != 0 {
		t.Fatal("expected no writes for invalid input")
	}
}

func TestApplyStatusUpdateUnknownDeliveryID(t *testing.T) {
	repo := &stubRepo{affected: 0}
	svc := newTestService(t, repo, &stubTx{}, true)

	err := svc.ApplyStatusUpdate(context.Background(), StatusUpdateInput{SafeRouteID: "sr-missing", CMSStatus: "3"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if len(repo.histories) != 0 {
		t.Fatal("expected no history row for unknown delivery id")
	}
}

func TestApplyStatusUpdateHistoryFailureSurfaces(t *testing.T) {
	repo := &stubRepo{
		affected:  1,
		order:     &models.Order{ID: uuid.New()},
		appendErr: errors.New("insert failed"),
	}
	svc := newTestService(t, repo, &stubTx{}, true)

	err := svc.ApplyStatusUpdate(context.Background(), StatusUpdateInput{SafeRouteID: "sr-1", CMSStatus: "3"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestStatusesReturnsEmptySliceWhenNone(t *testing.T) {
	svc := newTestService(t, &stubRepo{affected: 1}, &stubTx{}, true)

	statuses, err := svc.Statuses(context.Background(), "ru")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if statuses == nil || len(statuses) != 0 {
		t.Fatalf("expected empty (non-nil) statuses, got %v", statuses)
	}
}
