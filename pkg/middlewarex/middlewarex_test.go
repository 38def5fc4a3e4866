package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/require"

	"weapon_market/pkg/contextx"
	"weapon_market/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	valid := xid.New().String()

	testCases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "No header"},
		{name: "Valid xid", incoming: valid, keep: true},
		{name: "Garbage", incoming: "<script>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var got contextx.TraceID

			handler := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got, _ = contextx.TraceIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("X-Trace-Id", tc.incoming)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			rq.Equal(got.String(), rec.Header().Get("X-Trace-Id"))

			_, err := xid.FromString(got.String())
			rq.NoError(err)

			if tc.keep {
				rq.Equal(tc.incoming, got.String())
			} else {
				rq.NotEqual(tc.incoming, got.String())
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	handler := middlewarex.TraceID(middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Equal(http.StatusInternalServerError, rec.Code)
	rq.JSONEq(
		`{"error":"Internal Server Error","code":"InternalServerError","supportId":"`+rec.Header().Get("X-Trace-Id")+`"}`,
		rec.Body.String(),
	)
}
