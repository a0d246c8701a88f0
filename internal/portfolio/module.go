package portfolio

import (
	"context"
	"errors"

	"github.com/shandysiswandi/folio/internal/pkg/config"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/router"
	"github.com/shandysiswandi/folio/internal/pkg/storage"
	"github.com/shandysiswandi/folio/internal/pkg/validator"
	"github.com/shandysiswandi/folio/internal/portfolio/inbound"
	"github.com/shandysiswandi/folio/internal/portfolio/outbound/file"
	"github.com/shandysiswandi/folio/internal/portfolio/usecase"
)

const (
	SourceDir    = "dir"
	SourceBucket = "bucket"
)

// ErrStorageRequired is returned when content is configured to come from a
// bucket but no object storage was wired.
var ErrStorageRequired = errors.New("portfolio: bucket source needs object storage")

type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Storage    storage.Storage
}

// Module exposes what other modules may use from portfolio.
type Module struct {
	uc *usecase.Usecase
}

// ContactEmail returns the profile email, the default contact recipient.
func (m *Module) ContactEmail(ctx context.Context) string {
	return m.uc.ContactEmail(ctx)
}

func New(dep Dependency) (*Module, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	content, err := newContent(dep)
	if err != nil {
		return nil, err
	}

	uc := usecase.New(usecase.Dependency{
		RepoContent: content,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return &Module{uc: uc}, nil
}

func newContent(dep Dependency) (*file.File, error) {
	if dep.Config.GetString("modules.portfolio.source") == SourceBucket {
		if dep.Storage == nil {
			return nil, ErrStorageRequired
		}
		return file.NewBucket(dep.Storage,
			dep.Config.GetString("modules.portfolio.bucket.name"),
			dep.Config.GetString("modules.portfolio.bucket.prefix"),
			dep.Instrument,
		), nil
	}

	dir := dep.Config.GetString("modules.portfolio.data_dir")
	if dir == "" {
		dir = "data"
	}
	return file.New(dir, dep.Instrument), nil
}
