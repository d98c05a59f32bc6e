package unit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/internal/guard"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/pkg/auth"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/database/dbtest"
	"github.com/tair/inventory-service/pkg/metrics"
	"github.com/tair/inventory-service/pkg/middleware"
)

type envelope struct {
	Success bool                `json:"success"`
	Message *string             `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

type server struct {
	router *mux.Router
	token  string
}

func newServer(t *testing.T) server {
	t.Helper()
	db := dbtest.NewSQLite(t, &domain.Unit{})
	tokens := auth.NewManager("test-secret", "inventory-test", time.Hour)
	token, err := tokens.GenerateToken(1, "alice", "admin")
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	handler, err := InitializeHTTPHandler(db, crud.QueryTimeout(5*time.Second),
		guard.New(guard.NewTokenSessionProvider(tokens)), notify.New(nil, m), m)
	require.NoError(t, err)

	router := mux.NewRouter()
	router.Use(middleware.SessionToken())
	handler.RegisterRoutes(router)
	return server{router: router, token: token}
}

func (s server) do(t *testing.T, method, target string, form url.Values, authed bool) (int, envelope) {
	t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestUnitLifecycle(t *testing.T) {
	s := newServer(t)

	code, env := s.do(t, http.MethodPost, "/api/units", url.Values{"name": {"Tablet"}, "description": {"Single dose"}}, true)
	require.Equal(t, http.StatusCreated, code)
	require.True(t, env.Success)
	var created domain.Unit
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Tablet", created.Name)

	code, env = s.do(t, http.MethodGet, "/api/units?search=TAB", nil, false)
	require.Equal(t, http.StatusOK, code)
	var page struct {
		Items      []domain.Unit `json:"items"`
		Total      int64             `json:"total"`
		TotalPages int               `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.TotalPages)

	code, env = s.do(t, http.MethodPut, "/api/units/1", url.Values{"name": {"Capsule"}}, true)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	code, env = s.do(t, http.MethodGet, "/api/units/all", nil, false)
	require.Equal(t, http.StatusOK, code)
	var all []domain.Unit
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 1)
	assert.Equal(t, "Capsule", all[0].Name)
	assert.Nil(t, all[0].Description)

	code, env = s.do(t, http.MethodDelete, "/api/units/1", nil, true)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, isNull(env.Data))

	code, env = s.do(t, http.MethodDelete, "/api/units/1", nil, true)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.True(t, isNull(env.Data))
}

func TestUnitRoutes_Errors(t *testing.T) {
	s := newServer(t)

	code, env := s.do(t, http.MethodPost, "/api/units", url.Values{"name": {"Tablet"}}, false)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Message)
	assert.Equal(t, "Unauthorized", *env.Message)

	code, env = s.do(t, http.MethodPost, "/api/units", url.Values{}, true)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Nil(t, env.Message)
	assert.Equal(t, []string{"is required"}, env.Errors["name"])

	code, env = s.do(t, http.MethodPut, "/api/units/42", url.Values{"name": {"Ghost"}}, true)
	assert.Equal(t, http.StatusNotFound, code)
	assert.True(t, isNull(env.Data))

	code, env = s.do(t, http.MethodGet, "/api/units/abc", nil, true)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []string{"must be an integer"}, env.Errors["id"])

	code, env = s.do(t, http.MethodGet, "/api/units/9", nil, true)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.True(t, isNull(env.Data))
}
