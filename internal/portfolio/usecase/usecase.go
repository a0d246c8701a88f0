package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/folio/internal/pkg/goerror"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/portfolio/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoContent interface {
	GetProfile(ctx context.Context) (entity.Profile, error)
	ListProjects(ctx context.Context) ([]entity.Project, error)
	ListCertificates(ctx context.Context) ([]entity.Certificate, error)
}

type Usecase struct {
	repo repoContent
	ins  instrument.Instrumentation
}

type Dependency struct {
	RepoContent repoContent
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{repo: dep.RepoContent, ins: dep.Instrument}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("portfolio.usecase").Start(ctx, name)
}

func (s *Usecase) Profile(ctx context.Context) (*entity.Profile, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	p, err := s.repo.GetProfile(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get profile", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &p, nil
}

// ContactEmail is the profile address contact messages go to; it is empty
// when the profile cannot be read.
func (s *Usecase) ContactEmail(ctx context.Context) string {
	p, err := s.Profile(ctx)
	if err != nil {
		return ""
	}
	return p.Email
}

type ListProjectsInput struct {
	// Techs keeps projects using any of these technologies, compared
	// case-insensitively. Empty keeps everything.
	Techs []string
}

func (s *Usecase) ListProjects(ctx context.Context, in ListProjectsInput) ([]entity.Project, error) {
	ctx, span := s.startSpan(ctx, "ListProjects")
	defer span.End()

	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list projects", "error", err)
		return nil, goerror.NewServer(err)
	}

	wanted := lo.Uniq(lo.FilterMap(in.Techs, func(t string, _ int) (string, bool) {
		t = strings.ToLower(strings.TrimSpace(t))
		return t, t != ""
	}))
	if len(wanted) == 0 {
		return projects, nil
	}

	return lo.Filter(projects, func(p entity.Project, _ int) bool {
		return lo.SomeBy(p.Technologies, func(t string) bool {
			return lo.Contains(wanted, strings.ToLower(t))
		})
	}), nil
}

func (s *Usecase) ListCertificates(ctx context.Context) ([]entity.Certificate, error) {
	ctx, span := s.startSpan(ctx, "ListCertificates")
	defer span.End()

	certs, err := s.repo.ListCertificates(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list certificates", "error", err)
		return nil, goerror.NewServer(err)
	}

	return certs, nil
}

type TechLogoInput struct {
	Name string
}

func (s *Usecase) TechLogo(ctx context.Context, in TechLogoInput) (entity.Tech, error) {
	_, span := s.startSpan(ctx, "TechLogo")
	defer span.End()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.Tech{}, goerror.NewInvalidInput(nil, "name", "name is a required field")
	}

	return entity.Tech{Name: name, Logo: entity.TechLogo(name)}, nil
}
