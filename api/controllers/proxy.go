package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/velamart/saferoute-bridge/api/responses"
	"github.com/velamart/saferoute-bridge/api/validators"
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
	"github.com/velamart/saferoute-bridge/pkg/logger"
	"github.com/velamart/saferoute-bridge/pkg/metrics"
)

type providerForwarder interface {
	Forward(ctx context.Context, method, target string, data json.RawMessage) ([]byte, error)
}

type proxyRequest struct {
	URL  string          `json:"url" validate:"required"`
	Data json.RawMessage `json:"data"`
}

// WidgetProxy relays widget calls to the provider API with the shop's
// credentials and returns the upstream body verbatim.
func WidgetProxy(client providerForwarder, mtr *metrics.BridgeMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req proxyRequest
		if r.Method == http.MethodGet {
			req.URL = r.URL.Query().Get("url")
			if raw := r.URL.Query().Get("data"); raw != "" {
				req.Data = json.RawMessage(raw)
			}
			if req.URL == "" {
				responses.WriteError(ctx, logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "url query parameter required"))
				return
			}
		} else {
			if err := validators.DecodeJSONBody(r, &req); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}

		body, err := client.Forward(ctx, r.Method, req.URL, req.Data)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		mtr.IncProxy(r.Method)
		responses.WriteRaw(w, http.StatusOK, "application/json", body)
	}
}
