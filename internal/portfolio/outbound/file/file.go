package file

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/storage"
	"github.com/shandysiswandi/folio/internal/portfolio/entity"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	profileFile     = "profile.json"
	projectsDir     = "projects"
	certificatesDir = "certificates"
)

// File reads portfolio content from JSON documents, either in a local
// directory or in an object storage bucket. Documents are read on every call
// so edits show up without a restart.
type File struct {
	src source
	ins instrument.Instrumentation
}

// New reads content from the directory dir.
func New(dir string, ins instrument.Instrumentation) *File {
	return NewFS(os.DirFS(dir), ins)
}

func NewFS(fsys fs.FS, ins instrument.Instrumentation) *File {
	return &File{src: fsSource{fsys: fsys}, ins: ins}
}

// NewBucket reads content stored under prefix in bucket, laid out like the
// local data directory.
func NewBucket(store storage.Storage, bucket, prefix string, ins instrument.Instrumentation) *File {
	return &File{
		src: bucketSource{store: store, bucket: bucket, prefix: strings.Trim(prefix, "/")},
		ins: ins,
	}
}

func (f *File) GetProfile(ctx context.Context) (entity.Profile, error) {
	ctx, span := f.ins.Tracer("portfolio.outbound.file").Start(ctx, "GetProfile")
	defer span.End()

	raw, err := f.src.ReadFile(ctx, profileFile)
	if errors.Is(err, fs.ErrNotExist) {
		slog.DebugContext(ctx, "profile file missing, using default profile")
		return entity.DefaultProfile(), nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return entity.Profile{}, err
	}

	var p entity.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return entity.Profile{}, err
	}

	return p, nil
}

func (f *File) ListProjects(ctx context.Context) ([]entity.Project, error) {
	ctx, span := f.ins.Tracer("portfolio.outbound.file").Start(ctx, "ListProjects")
	defer span.End()

	items, err := loadDir(ctx, f.src, projectsDir, func(p *entity.Project, slug string) { p.Slug = slug })
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("portfolio.items", len(items)))

	return items, nil
}

func (f *File) ListCertificates(ctx context.Context) ([]entity.Certificate, error) {
	ctx, span := f.ins.Tracer("portfolio.outbound.file").Start(ctx, "ListCertificates")
	defer span.End()

	items, err := loadDir(ctx, f.src, certificatesDir, func(c *entity.Certificate, slug string) { c.Slug = slug })
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("portfolio.items", len(items)))

	return items, nil
}

type dated interface {
	SortDate() string
}

// loadDir decodes every *.json file in dir, newest date first. A missing
// directory is empty; an undecodable file is skipped.
func loadDir[T dated](ctx context.Context, src source, dir string, setSlug func(*T, string)) ([]T, error) {
	names, err := src.ReadDir(ctx, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(names))
	for _, name := range names {
		if !strings.HasSuffix(name, ".json") {
			continue
		}

		raw, err := src.ReadFile(ctx, path.Join(dir, name))
		if err != nil {
			return nil, err
		}

		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			slog.WarnContext(ctx, "skipping undecodable portfolio file", "file", path.Join(dir, name), "error", err)
			continue
		}
		setSlug(&item, strings.TrimSuffix(name, ".json"))
		items = append(items, item)
	}

	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(b.SortDate(), a.SortDate())
	})

	return items, nil
}
