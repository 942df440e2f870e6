// Package net provides utilities for working with request contexts
package net

import (
	"context"

	"langdetect/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyClientIP ctxKey = "client_ip"

// WithRequest annotates context with the request id and caller address
// the values are mirrored into the logger context so logger.C picks them up
func WithRequest(ctx context.Context, reqID, clientIP string) context.Context {
	if reqID == "" && clientIP == "" {
		return ctx
	}
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if clientIP != "" {
		ctx = context.WithValue(ctx, keyClientIP, clientIP)
	}
	return logger.WithRequest(ctx, reqID, clientIP)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// ClientIP returns the caller address on the context if present
func ClientIP(ctx context.Context) string {
	if v, ok := ctx.Value(keyClientIP).(string); ok {
		return v
	}
	return ""
}
