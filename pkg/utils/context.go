package utils

import (
	"context"
)

type contextKey string

const (
	IdempotencyKeyCtx contextKey = "idempotency_key"
	ClientIPKey       contextKey = "client_ip"
)

// SetIdempotencyKey stores the client's Idempotency-Key on the request context.
func SetIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, IdempotencyKeyCtx, key)
}

func GetIdempotencyKey(ctx context.Context) (string, bool) {
	val := ctx.Value(IdempotencyKeyCtx)
	if val == nil {
		return "", false
	}

	key, ok := val.(string)
	return key, ok && key != ""
}

func SetClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ClientIPKey, ip)
}

func GetClientIP(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(ClientIPKey).(string)
	return ip, ok
}
