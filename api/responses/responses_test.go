package responses

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
)

func TestWriteJSONPlainPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSON(rec, http.StatusOK, map[string]string{"cod": "Cash on delivery"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if rec.Body.String() != "{\"cod\":\"Cash on delivery\"}\n" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestWriteRawPassesBytesThrough(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteRaw(rec, http.StatusOK, "application/json", []byte(`{"upstream":true}`))

	if rec.Body.String() != `{"upstream":true}` {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestWriteErrorStatusOnly(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{pkgerrors.New(pkgerrors.CodeValidation, "bad input"), http.StatusBadRequest},
		{pkgerrors.New(pkgerrors.CodeUnauthorized, "bad token"), http.StatusUnauthorized},
		{pkgerrors.New(pkgerrors.CodeNotFound, "no route"), http.StatusNotFound},
		{pkgerrors.New(pkgerrors.CodeDependency, "db down"), http.StatusServiceUnavailable},
		{errors.New("untyped"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteError(context.Background(), nil, rec, tc.err)
		if rec.Code != tc.want {
			t.Fatalf("error %v: expected status %d, got %d", tc.err, tc.want, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("error %v: expected empty body, got %q", tc.err, rec.Body.String())
		}
	}
}
