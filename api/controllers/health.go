package controllers

import (
	"context"
	"net/http"

	"github.com/velamart/saferoute-bridge/api/responses"
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
	"github.com/velamart/saferoute-bridge/pkg/logger"
)

// Pinger is the slice of a backing client the readiness probe touches.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

func HealthReady(logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				return
			}
		}
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
