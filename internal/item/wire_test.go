package item

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catdomain "github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/guard"
	"github.com/tair/inventory-service/internal/item/domain"
	unitdomain "github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/pkg/auth"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/database/dbtest"
	"github.com/tair/inventory-service/pkg/middleware"
)

type envelope struct {
	Success bool                `json:"success"`
	Message *string             `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func newRouter(t *testing.T) (*mux.Router, string) {
	t.Helper()
	db := dbtest.NewSQLite(t, &catdomain.Category{}, &unitdomain.Unit{}, &domain.Item{})
	require.NoError(t, db.Create(&catdomain.Category{Name: "Analgesics"}).Error)
	require.NoError(t, db.Create(&unitdomain.Unit{Name: "Tablet"}).Error)

	tokens := auth.NewManager("test-secret", "inventory-test", time.Hour)
	token, err := tokens.GenerateToken(7, "bob", "clerk")
	require.NoError(t, err)

	handler, err := InitializeHTTPHandler(db, crud.QueryTimeout(5*time.Second),
		guard.New(guard.NewTokenSessionProvider(tokens)), nil, nil)
	require.NoError(t, err)

	router := mux.NewRouter()
	router.Use(middleware.SessionToken())
	handler.RegisterRoutes(router)
	return router, token
}

func call(t *testing.T, router *mux.Router, method, target, token string, form url.Values) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func itemForm(name, price string) url.Values {
	return url.Values{
		"name":          {name},
		"price":         {price},
		"stockQuantity": {"100"},
		"categoryId":    {"1"},
		"unitId":        {"1"},
	}
}

func TestCreateItem_PriceIsString(t *testing.T) {
	router, token := newRouter(t)

	code, env := call(t, router, http.MethodPost, "/api/items", token, itemForm("Test Item", "100"))
	require.Equal(t, http.StatusCreated, code, env)

	var view map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "100.00", view["price"])
	assert.Equal(t, "Test Item", view["name"])

	code, env = call(t, router, http.MethodGet, "/api/items", "", nil)
	require.Equal(t, http.StatusOK, code)
	var page struct {
		Items []domain.ItemView `json:"items"`
		Total int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "100.00", page.Items[0].Price)
}

func TestCreateItem_Validation(t *testing.T) {
	router, token := newRouter(t)

	form := itemForm("Syrup", "1.999")
	form.Set("stockQuantity", "-3")
	form.Set("unitId", "one")
	code, env := call(t, router, http.MethodPost, "/api/items", token, form)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Nil(t, env.Message)
	assert.Equal(t, []string{"must be a non-negative amount with at most 2 decimal places"}, env.Errors["price"])
	assert.Equal(t, []string{"must be greater than or equal to 0"}, env.Errors["stockQuantity"])
	assert.Equal(t, []string{"must be an integer"}, env.Errors["unitId"])
}

func TestCreateItem_Unauthorized(t *testing.T) {
	router, _ := newRouter(t)

	code, env := call(t, router, http.MethodPost, "/api/items", "", itemForm("Test Item", "1"))
	assert.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, env.Message)
	assert.Equal(t, "Unauthorized", *env.Message)

	code, _ = call(t, router, http.MethodPost, "/api/items", "forged.token.value", itemForm("Test Item", "1"))
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestSelectItems_BeforeIDRoute(t *testing.T) {
	router, token := newRouter(t)
	for _, name := range []string{"Heart Medication", "Heartburn Relief", "Headache Relief"} {
		code, _ := call(t, router, http.MethodPost, "/api/items", token, itemForm(name, "9.99"))
		require.Equal(t, http.StatusCreated, code)
	}

	code, env := call(t, router, http.MethodGet, "/api/items/select?query=heart", "", nil)
	require.Equal(t, http.StatusOK, code)
	var views []domain.ItemView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 2)
	assert.Equal(t, "Heart Medication", views[0].Name)
	assert.Equal(t, "Heartburn Relief", views[1].Name)
	assert.Equal(t, "9.99", views[0].Price)

	code, env = call(t, router, http.MethodGet, "/api/items?search=Heart", "", nil)
	require.Equal(t, http.StatusOK, code)
	var page struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestUpdateAndDeleteItem(t *testing.T) {
	router, token := newRouter(t)
	code, _ := call(t, router, http.MethodPost, "/api/items", token, itemForm("Aspirin", "3.50"))
	require.Equal(t, http.StatusCreated, code)

	code, env := call(t, router, http.MethodPut, "/api/items/1", token, itemForm("Aspirin Forte", "4.25"))
	require.Equal(t, http.StatusOK, code)
	var view domain.ItemView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Aspirin Forte", view.Name)
	assert.Equal(t, "4.25", view.Price)

	code, env = call(t, router, http.MethodPut, "/api/items/2", token, itemForm("Ghost", "1"))
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, env.Message)
	assert.Equal(t, "item 2 not found", *env.Message)

	code, _ = call(t, router, http.MethodDelete, "/api/items/1", token, nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = call(t, router, http.MethodGet, "/api/items/1", token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.True(t, len(env.Data) == 0 || string(env.Data) == "null")
}
