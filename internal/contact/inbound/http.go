package inbound

import (
	"net/http"

	"github.com/shandysiswandi/folio/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POSTRaw("/send-message", http.HandlerFunc(end.SendMessage))
}
