package session

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/velamart/saferoute-bridge/pkg/config"
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
	"github.com/velamart/saferoute-bridge/pkg/redis"
)

// CartLine is one cart entry held in the widget session. Product data is
// rehydrated from the catalog at serialization time.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// WidgetSession is the per-visitor state the widget endpoints read.
type WidgetSession struct {
	Lang     string     `json:"lang,omitempty"`
	Currency string     `json:"currency,omitempty"`
	Coupon   string     `json:"coupon,omitempty"`
	Cart     []CartLine `json:"cart,omitempty"`
}

type sessionKeyer interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	SessionKey(sessionID string) string
}

// Store reads and writes widget sessions in redis.
type Store struct {
	client sessionKeyer
	ttl    time.Duration
}

// NewStore constructs a session store.
func NewStore(client *redis.Client, cfg config.WidgetConfig) *Store {
	return &Store{client: client, ttl: cfg.SessionTTL}
}

// NewStoreWithClient builds a store over an arbitrary key surface. Test use.
func NewStoreWithClient(client sessionKeyer, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get loads the session for the given id. An unknown id yields a fresh
// empty session, matching a visitor with no cart yet.
func (s *Store) Get(ctx context.Context, sessionID string) (*WidgetSession, error) {
	if sessionID == "" {
		return &WidgetSession{}, nil
	}
	raw, err := s.client.Get(ctx, s.client.SessionKey(sessionID))
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return &WidgetSession{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load widget session")
	}

	var sess WidgetSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode widget session")
	}
	return &sess, nil
}

// Save persists the session under its TTL.
func (s *Store) Save(ctx context.Context, sessionID string, sess *WidgetSession) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode widget session")
	}
	if err := s.client.Set(ctx, s.client.SessionKey(sessionID), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store widget session")
	}
	return nil
}
