package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/folio/internal/pkg/config"
	"github.com/shandysiswandi/folio/internal/pkg/goerror"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestRouter(t *testing.T, yaml string) *Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	return NewRouter(Config{Config: cfg, UUID: fixedID("cid-test"), Instrument: instrument.NewNoop()})
}

func serve(r http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type greeting struct {
	Hello string `json:"hello"`
}

func TestRouter_Envelope(t *testing.T) {
	r := newTestRouter(t, "app: {}")
	r.GET("/api/v1/hello/:name", func(req *Request) (any, error) {
		return greeting{Hello: req.GetParam("name")}, nil
	})

	rec := serve(r, http.MethodGet, "/api/v1/hello/ada", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"request has been successfully","data":{"hello":"ada"}}`, rec.Body.String())
	assert.Equal(t, "cid-test", rec.Header().Get(HeaderCorrelationID))
}

func TestRouter_Errors(t *testing.T) {
	r := newTestRouter(t, "app: {}")
	r.POST("/validate", func(req *Request) (any, error) {
		var in struct {
			Name string `json:"name"`
		}
		if err := req.DecodeBody(&in); err != nil {
			return nil, err
		}
		return nil, goerror.NewInvalidInput(nil, "name", "name is a required field")
	})
	r.GET("/plain", func(*Request) (any, error) {
		return nil, errors.New("boom")
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := serve(r, http.MethodPost, "/validate", `{"name":"a","extra":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid request body"}`, rec.Body.String())
	})

	t.Run("validation fields", func(t *testing.T) {
		rec := serve(r, http.MethodPost, "/validate", `{"name":""}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"message":"Validation error","error":{"name":"name is a required field"}}`, rec.Body.String())
	})

	t.Run("unclassified error", func(t *testing.T) {
		rec := serve(r, http.MethodGet, "/plain", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rec := serve(r, http.MethodGet, "/missing", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_POSTRaw(t *testing.T) {
	r := newTestRouter(t, "app: {}")
	r.POSTRaw("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
	}))

	rec := serve(r, http.MethodPost, "/raw", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestRouter_Recover(t *testing.T) {
	r := newTestRouter(t, "app: {}")
	r.GETRaw("/panic", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := serve(r, http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestRouter_Maintenance(t *testing.T) {
	r := newTestRouter(t, "app:\n  maintenance:\n    endpoints: /send-message\n")
	r.POSTRaw("/send-message", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := serve(r, http.MethodPost, "/send-message", `{}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_BodyLimit(t *testing.T) {
	r := newTestRouter(t, "app:\n  http:\n    max_body_bytes: 8\n")
	r.POST("/echo", func(req *Request) (any, error) {
		var in map[string]string
		if err := req.DecodeBody(&in); err != nil {
			return nil, err
		}
		return in, nil
	})

	rec := serve(r, http.MethodPost, "/echo", `{"name":"far too long"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouter_CorrelationIDFromHeader(t *testing.T) {
	r := newTestRouter(t, "app: {}")
	var seen string
	r.GETRaw("/cid", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		seen = instrument.GetCorrelationID(req.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := serve(r, http.MethodGet, "/cid", "", HeaderRequestID, "  upstream-1 ")

	assert.Equal(t, "upstream-1", seen)
	assert.Equal(t, "upstream-1", rec.Header().Get(HeaderCorrelationID))
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("a"), nil, mw("b"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"a", "b", "handler"}, order)
}
