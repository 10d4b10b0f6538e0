package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/velamart/saferoute-bridge/api/responses"
	"github.com/velamart/saferoute-bridge/internal/cart"
	"github.com/velamart/saferoute-bridge/internal/session"
	"github.com/velamart/saferoute-bridge/pkg/config"
	"github.com/velamart/saferoute-bridge/pkg/logger"
)

type sessionStore interface {
	Get(ctx context.Context, sessionID string) (*session.WidgetSession, error)
}

type cartSerializer interface {
	Serialize(ctx context.Context, sessionID string) (*cart.SerializedCart, error)
}

// widgetSettings is the bootstrap payload the browser widget loads first.
type widgetSettings struct {
	Lang     string `json:"lang"`
	Currency string `json:"currency"`
}

// WidgetSettings serves the widget bootstrap: the visitor's language and
// lowercased currency code, falling back to configured defaults.
func WidgetSettings(sessions sessionStore, cfg config.WidgetConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, err := sessions.Get(ctx, sessionID(r, cfg))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		lang := sess.Lang
		if lang == "" {
			lang = cfg.DefaultLang
		}
		currency := strings.ToLower(sess.Currency)
		if currency == "" {
			currency = cfg.DefaultCurrency
		}

		responses.WriteJSON(w, http.StatusOK, widgetSettings{Lang: lang, Currency: currency})
	}
}

// WidgetCart serves the serialized cart for the widget.
func WidgetCart(serializer cartSerializer, cfg config.WidgetConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		payload, err := serializer.Serialize(ctx, sessionID(r, cfg))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, payload)
	}
}

// sessionID resolves the visitor session from the storefront cookie, with
// a query fallback for widget embeds that cannot send cookies.
func sessionID(r *http.Request, cfg config.WidgetConfig) string {
	if cookie, err := r.Cookie(cfg.SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.URL.Query().Get("session")
}
