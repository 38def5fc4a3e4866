package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"weapon_market/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID keeps the caller's trace id when it is a valid xid and issues a new
// one otherwise.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, err := xid.FromString(r.Header.Get(headerNameTraceID))
		if err != nil {
			traceID = xid.New()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID.String()))

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
