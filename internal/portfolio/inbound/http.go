package inbound

import "github.com/shandysiswandi/folio/internal/pkg/router"

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/portfolio/profile", end.Profile)
	r.GET("/api/v1/portfolio/projects", end.ListProjects)
	r.GET("/api/v1/portfolio/certificates", end.ListCertificates)
	r.GET("/api/v1/portfolio/tech-logos/:name", end.TechLogo)
}
