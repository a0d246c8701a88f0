package router

import (
	"net/http"

	"github.com/shandysiswandi/folio/internal/pkg/config"
)

const defaultMaxBodyBytes = 64 * 1024

func middlewareBodyLimit(cfg config.Config) Middleware {
	limit := int64(defaultMaxBodyBytes)
	if cfg != nil {
		if v := cfg.GetInt64("app.http.max_body_bytes"); v > 0 {
			limit = v
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				writeJSON(w, errorResponse{Message: "request body too large"}, http.StatusRequestEntityTooLarge)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
