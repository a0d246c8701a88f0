package router

import (
	"net/http"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/folio/internal/pkg/config"
)

// underMaintenance reports whether route is switched off. The config is read
// on every request so a reloaded file takes effect without a restart.
func underMaintenance(cfg config.Config, route string) bool {
	if cfg == nil {
		return false
	}
	if cfg.GetBool("app.maintenance.enabled") {
		return true
	}
	return lo.SomeBy(cfg.GetArray("app.maintenance.endpoints"), func(endpoint string) bool {
		endpoint = strings.TrimSpace(endpoint)
		return endpoint != "" && (endpoint == "*" || endpoint == route)
	})
}

func middlewareMaintenance(cfg config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if underMaintenance(cfg, matchedRoutePath(r)) {
				w.Header().Set("Retry-After", "120")
				writeJSON(w, errorResponse{Message: "service is under maintenance"}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
