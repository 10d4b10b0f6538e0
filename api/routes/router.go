package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velamart/saferoute-bridge/api/controllers"
	"github.com/velamart/saferoute-bridge/api/middleware"
	"github.com/velamart/saferoute-bridge/internal/cart"
	"github.com/velamart/saferoute-bridge/internal/orders"
	"github.com/velamart/saferoute-bridge/internal/payments"
	"github.com/velamart/saferoute-bridge/internal/provider"
	"github.com/velamart/saferoute-bridge/internal/session"
	"github.com/velamart/saferoute-bridge/pkg/config"
	"github.com/velamart/saferoute-bridge/pkg/logger"
	"github.com/velamart/saferoute-bridge/pkg/metrics"
)

// RouterParams groups everything the HTTP surface needs.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             controllers.Pinger
	Redis          controllers.Pinger
	Sessions       *session.Store
	CartService    cart.Service
	OrdersService  orders.Service
	Payments       payments.Service
	ProviderClient *provider.Client
	Metrics        *metrics.BridgeMetrics
	Registry       *prometheus.Registry
}

func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(params.Logger),
		middleware.RequestID(params.Logger),
		middleware.Logging(params.Logger),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(params.Logger, map[string]controllers.Pinger{
			"database": params.DB,
			"redis":    params.Redis,
		}))
	})

	if params.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/saferoute", func(r chi.Router) {
		r.Get("/settings", controllers.WidgetSettings(params.Sessions, params.Config.Widget, params.Logger))
		r.Get("/cart", controllers.WidgetCart(params.CartService, params.Config.Widget, params.Logger))

		r.With(middleware.ProviderToken(params.Config.SafeRoute.Token, params.Logger)).
			HandleFunc("/api", controllers.ProviderAPI(controllers.ProviderAPIParams{
				Orders:   params.OrdersService,
				Payments: params.Payments,
				Widget:   params.Config.Widget,
				Metrics:  params.Metrics,
				Logger:   params.Logger,
			}))

		r.HandleFunc("/widget-api", controllers.WidgetProxy(params.ProviderClient, params.Metrics, params.Logger))
	})

	return r
}
