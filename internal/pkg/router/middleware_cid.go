package router

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/uid"
)

const (
	// HeaderCorrelationID is the canonical header used to track requests end-to-end.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is an accepted alternative header name used by some proxies.
	HeaderRequestID = "X-Request-ID"

	maxCorrelationIDLen = 128
)

// correlationIDFrom returns the first usable incoming id. Values holding
// control characters are rejected so they never reach logs or headers.
func correlationIDFrom(h http.Header) string {
	for _, name := range [...]string{HeaderCorrelationID, HeaderRequestID} {
		v := strings.TrimSpace(h.Get(name))
		if v == "" || strings.IndexFunc(v, unicode.IsControl) >= 0 {
			continue
		}
		if len(v) > maxCorrelationIDLen {
			v = v[:maxCorrelationIDLen]
		}
		return v
	}
	return ""
}

func middlewareCorrelationID(gen uid.StringID) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := correlationIDFrom(r.Header)
			if cid == "" && gen != nil {
				cid = gen.Generate()
			}
			if cid == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(HeaderCorrelationID, cid)
			next.ServeHTTP(w, r.WithContext(instrument.SetCorrelationID(r.Context(), cid)))
		})
	}
}
