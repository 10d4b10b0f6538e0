package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/velamart/saferoute-bridge/api/responses"
	"github.com/velamart/saferoute-bridge/api/validators"
	"github.com/velamart/saferoute-bridge/internal/orders"
	"github.com/velamart/saferoute-bridge/pkg/config"
	"github.com/velamart/saferoute-bridge/pkg/db/models"
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
	"github.com/velamart/saferoute-bridge/pkg/logger"
	"github.com/velamart/saferoute-bridge/pkg/metrics"
)

type ordersService interface {
	ApplyStatusUpdate(ctx context.Context, input orders.StatusUpdateInput) error
	Statuses(ctx context.Context, lang string) ([]models.OrderStatus, error)
}

type paymentsService interface {
	ListMethods(lang string) map[string]string
}

// statusUpdateRequest mirrors the provider callback payload. The sender
// adds fields over time, so decoding stays lenient.
type statusUpdateRequest struct {
	ID             string `json:"id"`
	StatusCMS      string `json:"statusCMS"`
	TrackingNumber string `json:"trackingNumber"`
}

type providerRoute struct {
	fragment string
	metric   string
	handler  http.HandlerFunc
}

// ProviderAPIParams groups the collaborators behind the provider entrypoint.
type ProviderAPIParams struct {
	Orders   ordersService
	Payments paymentsService
	Widget   config.WidgetConfig
	Metrics  *metrics.BridgeMetrics
	Logger   *logger.Logger
}

// ProviderAPI dispatches provider calls on the route descriptor carried in
// the query string. Matching is by substring containment against an
// ordered table; the first match wins and unmatched descriptors get a
// bare 404.
func ProviderAPI(params ProviderAPIParams) http.HandlerFunc {
	routes := []providerRoute{
		{
			fragment: "statuses.json",
			metric:   "statuses",
			handler:  providerStatuses(params),
		},
		{
			fragment: "payment-methods.json",
			metric:   "payment_methods",
			handler:  providerPaymentMethods(params),
		},
		{
			fragment: "order-status-update",
			metric:   "order_status_update",
			handler:  providerStatusUpdate(params),
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		descriptor := r.URL.Query().Get("route")
		for _, route := range routes {
			if strings.Contains(descriptor, route.fragment) {
				params.Metrics.IncDispatch(route.metric)
				route.handler(w, r)
				return
			}
		}
		params.Metrics.IncDispatch("unmatched")
		responses.WriteError(r.Context(), params.Logger, w,
			pkgerrors.New(pkgerrors.CodeNotFound, "no provider route matches descriptor"))
	}
}

func providerStatuses(params ProviderAPIParams) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		statuses, err := params.Orders.Statuses(ctx, params.Widget.DefaultLang)
		if err != nil {
			responses.WriteError(ctx, params.Logger, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, statuses)
	}
}

func providerPaymentMethods(params ProviderAPIParams) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, params.Payments.ListMethods(params.Widget.DefaultLang))
	}
}

func providerStatusUpdate(params ProviderAPIParams) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req statusUpdateRequest
		if err := validators.DecodeLenientJSONBody(r, &req); err != nil {
			params.Metrics.IncWebhook("rejected")
			responses.WriteError(ctx, params.Logger, w, err)
			return
		}

		err := params.Orders.ApplyStatusUpdate(ctx, orders.StatusUpdateInput{
			SafeRouteID:    req.ID,
			CMSStatus:      req.StatusCMS,
			TrackingNumber: req.TrackingNumber,
		})
		if err != nil {
			params.Metrics.IncWebhook("rejected")
			responses.WriteError(ctx, params.Logger, w, err)
			return
		}

		params.Metrics.IncWebhook("applied")
		w.WriteHeader(http.StatusOK)
	}
}
