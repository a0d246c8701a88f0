package router

import (
	"net/http"
	"net/netip"
	"strings"
)

// clientIPHeaders are consulted in order; the first valid address wins.
var clientIPHeaders = [...]string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

func middlewareIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip, ok := clientIP(r); ok {
			r.RemoteAddr = ip.String()
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) (netip.Addr, bool) {
	for _, name := range clientIPHeaders {
		v := r.Header.Get(name)
		if v == "" {
			continue
		}
		// X-Forwarded-For lists the originating client first.
		first, _, _ := strings.Cut(v, ",")
		if ip, err := netip.ParseAddr(strings.TrimSpace(first)); err == nil {
			return ip.Unmap(), true
		}
	}

	if ap, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		return ap.Addr().Unmap(), true
	}
	if ip, err := netip.ParseAddr(r.RemoteAddr); err == nil {
		return ip.Unmap(), true
	}
	return netip.Addr{}, false
}
