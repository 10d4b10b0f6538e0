package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/velamart/saferoute-bridge/pkg/config"
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
)

// Client forwards widget requests to the SafeRoute API with the shop's
// credentials attached. Responses come back verbatim so the widget sees
// exactly what the provider sent.
type Client struct {
	httpClient *http.Client
	base       string
	token      string
	shopID     string
}

// NewClient builds a provider client from the SafeRoute config section.
func NewClient(cfg config.SafeRouteConfig) (*Client, error) {
	if cfg.Token == "" || cfg.ShopID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "provider credentials required")
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		base:       strings.TrimRight(cfg.APIBase, "/"),
		token:      cfg.Token,
		shopID:     cfg.ShopID,
	}, nil
}

// Forward relays one widget call to the provider. Relative targets are
// joined to the configured API base. GET requests flatten a JSON object
// payload into query parameters; other methods send the payload as the
// request body.
func (c *Client) Forward(ctx context.Context, method, target string, data json.RawMessage) ([]byte, error) {
	fullURL, err := c.resolveTarget(target)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if method == http.MethodGet {
		fullURL, err = appendQueryParams(fullURL, data)
		if err != nil {
			return nil, err
		}
	} else if len(data) > 0 {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build provider request")
	}
	req.Header.Set("Token", c.token)
	req.Header.Set("Shop-Id", c.shopID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "call provider api")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read provider response")
	}
	return payload, nil
}

func (c *Client) resolveTarget(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "target url required")
	}
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return target, nil
	}
	return c.base + "/" + strings.TrimLeft(target, "/"), nil
}

// appendQueryParams merges a JSON object payload into the URL query.
// Scalar values are stringified; nested values keep their JSON encoding.
func appendQueryParams(rawURL string, data json.RawMessage) (string, error) {
	if len(data) == 0 {
		return rawURL, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "data must be a json object")
	}
	if len(fields) == 0 {
		return rawURL, nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid target url")
	}
	q := parsed.Query()
	for key, value := range fields {
		q.Set(key, stringifyParam(value))
	}
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

func stringifyParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v), "0"), ".")
	case bool:
		if v {
			return "1"
		}
		return "0"
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
