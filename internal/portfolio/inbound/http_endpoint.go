package inbound

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/folio/internal/pkg/router"
	"github.com/shandysiswandi/folio/internal/portfolio/entity"
	"github.com/shandysiswandi/folio/internal/portfolio/usecase"
)

// HTTPEndpoint serves portfolio content.
type HTTPEndpoint struct {
	uc uc
}

// Profile returns the portfolio owner's profile.
// @Summary Get profile
// @Tags Portfolio
// @Produce json
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/portfolio/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	p, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{Profile: *p}, nil
}

// ListProjects returns projects newest first, optionally filtered by technology.
// @Summary List projects
// @Tags Portfolio
// @Produce json
// @Param tech query string false "Technology filter; repeat or comma-separate for any-of"
// @Success 200 {object} router.successResponse{data=ProjectsResponse} "Projects"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/portfolio/projects [get]
func (h *HTTPEndpoint) ListProjects(r *router.Request) (any, error) {
	techs := lo.FlatMap(r.GetQueries("tech"), func(v string, _ int) []string {
		return strings.Split(v, ",")
	})

	projects, err := h.uc.ListProjects(r.Context(), usecase.ListProjectsInput{Techs: techs})
	if err != nil {
		return nil, err
	}

	return ProjectsResponse(lo.Map(projects, func(p entity.Project, _ int) ProjectResponse {
		return ProjectResponse{
			Slug:         p.Slug,
			Title:        p.Title,
			Description:  p.Description,
			Date:         p.Date,
			Technologies: entity.Techs(p.Technologies),
			Image:        p.Image,
			GitHub:       p.GitHub,
			Demo:         p.Demo,
			Highlights:   p.Highlights,
		}
	})), nil
}

// ListCertificates returns certificates newest first.
// @Summary List certificates
// @Tags Portfolio
// @Produce json
// @Success 200 {object} router.successResponse{data=CertificatesResponse} "Certificates"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/portfolio/certificates [get]
func (h *HTTPEndpoint) ListCertificates(r *router.Request) (any, error) {
	certs, err := h.uc.ListCertificates(r.Context())
	if err != nil {
		return nil, err
	}

	return CertificatesResponse(lo.Map(certs, func(c entity.Certificate, _ int) CertificateResponse {
		return CertificateResponse{
			Slug:          c.Slug,
			Title:         c.Title,
			Issuer:        c.Issuer,
			Date:          c.Date,
			Image:         c.Image,
			CredentialURL: c.CredentialURL,
			Skills:        entity.Techs(c.Skills),
		}
	})), nil
}

// TechLogo resolves the logo URL for a technology name.
// @Summary Resolve technology logo
// @Tags Portfolio
// @Produce json
// @Param name path string true "Technology name"
// @Success 200 {object} router.successResponse{data=TechLogoResponse} "Logo"
// @Router /api/v1/portfolio/tech-logos/{name} [get]
func (h *HTTPEndpoint) TechLogo(r *router.Request) (any, error) {
	tech, err := h.uc.TechLogo(r.Context(), usecase.TechLogoInput{Name: r.GetParam("name")})
	if err != nil {
		return nil, err
	}

	return TechLogoResponse(tech), nil
}
