package inbound

import "github.com/shandysiswandi/folio/internal/portfolio/entity"

type ProfileResponse struct {
	entity.Profile
}

type ProjectResponse struct {
	Slug         string        `json:"slug"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Date         string        `json:"date"`
	Technologies []entity.Tech `json:"technologies"`
	Image        string        `json:"image"`
	GitHub       string        `json:"github,omitempty"`
	Demo         string        `json:"demo,omitempty"`
	Highlights   []string      `json:"highlights,omitempty"`
}

type ProjectsResponse []ProjectResponse

func (r ProjectsResponse) Meta() map[string]any {
	return map[string]any{"total": len(r)}
}

type CertificateResponse struct {
	Slug          string        `json:"slug"`
	Title         string        `json:"title"`
	Issuer        string        `json:"issuer"`
	Date          string        `json:"date"`
	Image         string        `json:"image"`
	CredentialURL string        `json:"credential_url,omitempty"`
	Skills        []entity.Tech `json:"skills"`
}

type CertificatesResponse []CertificateResponse

func (r CertificatesResponse) Meta() map[string]any {
	return map[string]any{"total": len(r)}
}

type TechLogoResponse entity.Tech
