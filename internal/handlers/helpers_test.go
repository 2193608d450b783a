package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-hydroponics/internal/jwt"
)

// newRequest builds a request as the router would hand it over: optional
// authenticated claims and chi URL params as key/value pairs.
func newRequest(method, target, body string, claims *jwt.Claims, params ...string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)

	ctx := req.Context()
	if claims != nil {
		ctx = jwt.WithClaims(ctx, claims)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for i := 0; i+1 < len(params); i += 2 {
			rctx.URLParams.Add(params[i], params[i+1])
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func testClaims() *jwt.Claims {
	return &jwt.Claims{
		UserID:    uuid.New(),
		Username:  "alice",
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}
