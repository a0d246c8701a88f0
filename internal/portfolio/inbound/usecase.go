package inbound

import (
	"context"

	"github.com/shandysiswandi/folio/internal/portfolio/entity"
	"github.com/shandysiswandi/folio/internal/portfolio/usecase"
)

type uc interface {
	Profile(ctx context.Context) (*entity.Profile, error)
	ListProjects(ctx context.Context, in usecase.ListProjectsInput) ([]entity.Project, error)
	ListCertificates(ctx context.Context) ([]entity.Certificate, error)
	TechLogo(ctx context.Context, in usecase.TechLogoInput) (entity.Tech, error)
}
