package httpx

import (
	"context"

	"github.com/aussiebroadwan/carebridge/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyAddress ctxKey = "address"
	CtxKeyClaims  ctxKey = "claims"
)

// AddressFromContext returns the wallet address of the verified session, if any.
func AddressFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyAddress).(string)
	return v, ok && v != ""
}

// ClaimsFromContext returns the verified session claims, if any.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

func contextWithSession(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyAddress, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
