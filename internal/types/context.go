package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID    ContextKey = "ctx_request_id"
	CtxPartnerToken ContextKey = "ctx_partner_token"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// SetRequestID sets the request ID used to correlate log lines of one call
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}

// GetPartnerToken returns the per-call partner token override, if any
func GetPartnerToken(ctx context.Context) string {
	if token, ok := ctx.Value(CtxPartnerToken).(string); ok {
		return token
	}
	return ""
}

// SetPartnerToken overrides the configured partner token for calls made with ctx
func SetPartnerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxPartnerToken, token)
}
