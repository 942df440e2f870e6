package middleware

import (
	"net"
	"net/http"

	pnet "langdetect/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestContext copies chi's request id and the caller address onto the
// request context so logger.C and error envelopes can see them
// mount after RequestID and RealIP
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := chimw.GetReqID(r.Context())
		if reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		ctx := pnet.WithRequest(r.Context(), reqID, clientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIP strips the port from RemoteAddr (RealIP may already have replaced it)
func clientIP(r *http.Request) string {
	if ip := pnet.ClientIP(r.Context()); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
