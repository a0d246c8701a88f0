package inbound

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/folio/internal/pkg/config"
	"github.com/shandysiswandi/folio/internal/pkg/goerror"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/router"
	"github.com/shandysiswandi/folio/internal/portfolio/entity"
	"github.com/shandysiswandi/folio/internal/portfolio/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUC struct {
	techs []string
	err   error
}

func (f *fakeUC) Profile(context.Context) (*entity.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := entity.Profile{Name: "Ada", Email: "ada@folio.dev"}
	return &p, nil
}

func (f *fakeUC) ListProjects(_ context.Context, in usecase.ListProjectsInput) ([]entity.Project, error) {
	f.techs = in.Techs
	return []entity.Project{{Slug: "sales", Title: "Sales", Date: "2025-06-15", Technologies: []string{"Cobol"}}}, f.err
}

func (f *fakeUC) ListCertificates(context.Context) ([]entity.Certificate, error) {
	return []entity.Certificate{}, f.err
}

func (f *fakeUC) TechLogo(_ context.Context, in usecase.TechLogoInput) (entity.Tech, error) {
	return entity.Tech{Name: in.Name, Logo: entity.TechLogo(in.Name)}, f.err
}

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func serve(t *testing.T, uc uc, target string) *httptest.ResponseRecorder {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app: {}"))
	require.NoError(t, err)

	r := router.NewRouter(router.Config{Config: cfg, UUID: fixedID("cid"), Instrument: instrument.NewNoop()})
	RegisterHTTPEndpoint(r, uc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestProfile(t *testing.T) {
	rec := serve(t, &fakeUC{}, "/api/v1/portfolio/profile")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"ada@folio.dev"`)
}

func TestListProjects_TechQuery(t *testing.T) {
	// Arrange
	uc := &fakeUC{}

	// Act
	rec := serve(t, uc, "/api/v1/portfolio/projects?tech=Python,SQL&tech=Docker")

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Python", "SQL", "Docker"}, uc.techs)
	assert.JSONEq(t, `{
		"message":"request has been successfully",
		"data":[{"slug":"sales","title":"Sales","description":"","date":"2025-06-15","image":"",
			"technologies":[{"name":"Cobol","logo":"https://cdn.jsdelivr.net/npm/simple-icons@v9/icons/code.svg"}]}],
		"meta":{"total":1}
	}`, rec.Body.String())
}

func TestTechLogo_Endpoint(t *testing.T) {
	rec := serve(t, &fakeUC{}, "/api/v1/portfolio/tech-logos/Power%20BI")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"request has been successfully","data":{"name":"Power BI","logo":"https://upload.wikimedia.org/wikipedia/commons/c/cf/New_Power_BI_Logo.svg"}}`, rec.Body.String())
}

func TestEndpoints_ServerError(t *testing.T) {
	rec := serve(t, &fakeUC{err: goerror.NewServer(errors.New("disk gone"))}, "/api/v1/portfolio/certificates")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}
