package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-service/internal/item/action"
	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/internal/validation"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/metrics"
	"github.com/tair/inventory-service/pkg/pagination"
	"github.com/tair/inventory-service/pkg/response"
)

// ItemHandler handles HTTP requests for items
type ItemHandler struct {
	actions *action.ItemActions
	metrics *metrics.Metrics
}

// NewItemHandler creates a new item handler
func NewItemHandler(actions *action.ItemActions, m *metrics.Metrics) *ItemHandler {
	return &ItemHandler{actions: actions, metrics: m}
}

// ListItems handles GET /api/items
// @Summary List items
// @Description Paginated, case-insensitive name search, newest first. Prices are strings.
// @Tags Items
// @Produce json
// @Param search query string false "Name substring"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size 1..100 (default 10)"
// @Success 200 {object} ItemPageEnvelope
// @Failure 400 {object} ItemPageEnvelope
// @Failure 500 {object} ItemPageEnvelope
// @Router /api/items [get]
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	res := h.actions.List(r.Context(), response.Result[pagination.Page[domain.ItemView]]{}, validation.FormFromValues(r.URL.Query()))
	response.Write(w, res, http.StatusOK)
}

// SelectItems handles GET /api/items/select
// @Summary Item picker options
// @Description Up to 20 items whose name contains query, ordered by name
// @Tags Items
// @Produce json
// @Param query query string false "Name substring"
// @Success 200 {object} ItemListEnvelope
// @Failure 500 {object} ItemListEnvelope
// @Router /api/items/select [get]
func (h *ItemHandler) SelectItems(w http.ResponseWriter, r *http.Request) {
	res := h.actions.Select(r.Context(), response.Result[[]domain.ItemView]{}, validation.FormFromValues(r.URL.Query()))
	response.Write(w, res, http.StatusOK)
}

// GetItem handles GET /api/items/{id}
// @Summary Get an item
// @Description Returns data null when the item does not exist
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} ItemEnvelope
// @Failure 400 {object} ItemEnvelope
// @Failure 401 {object} ItemEnvelope
// @Router /api/items/{id} [get]
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	res := h.actions.Get(r.Context(), response.Result[domain.ItemView]{}, validation.Form{"id": mux.Vars(r)["id"]})
	response.Write(w, res, http.StatusOK)
}

// CreateItem handles POST /api/items
// @Summary Create or overwrite an item
// @Description Upsert keyed on name. categoryId and unitId must reference existing rows.
// @Tags Items
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param price formData string true "Price, at most 2 decimals"
// @Param stockQuantity formData int true "Stock quantity (>= 0)"
// @Param categoryId formData int true "Category ID"
// @Param unitId formData int true "Unit ID"
// @Success 201 {object} ItemEnvelope
// @Failure 400 {object} ItemEnvelope
// @Failure 401 {object} ItemEnvelope
// @Failure 500 {object} ItemEnvelope
// @Router /api/items [post]
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm(w, r)
	if !ok {
		return
	}
	res := h.actions.Create(r.Context(), response.Result[domain.ItemView]{}, form)
	response.Write(w, res, http.StatusCreated)
}

// UpdateItem handles PUT /api/items/{id}
// @Summary Update an item
// @Tags Items
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param name formData string true "Name"
// @Param price formData string true "Price, at most 2 decimals"
// @Param stockQuantity formData int true "Stock quantity (>= 0)"
// @Param categoryId formData int true "Category ID"
// @Param unitId formData int true "Unit ID"
// @Success 200 {object} ItemEnvelope
// @Failure 400 {object} ItemEnvelope
// @Failure 401 {object} ItemEnvelope
// @Failure 404 {object} ItemEnvelope
// @Failure 500 {object} ItemEnvelope
// @Router /api/items/{id} [put]
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm(w, r)
	if !ok {
		return
	}
	res := h.actions.Update(r.Context(), response.Result[domain.ItemView]{}, form.With("id", mux.Vars(r)["id"]))
	response.Write(w, res, http.StatusOK)
}

// DeleteItem handles DELETE /api/items/{id}
// @Summary Delete an item
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} ItemEnvelope
// @Failure 400 {object} ItemEnvelope
// @Failure 401 {object} ItemEnvelope
// @Failure 500 {object} ItemEnvelope
// @Router /api/items/{id} [delete]
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	res := h.actions.Delete(r.Context(), response.Result[domain.ItemView]{}, validation.Form{"id": mux.Vars(r)["id"]})
	response.Write(w, res, http.StatusOK)
}

// RegisterRoutes registers all item routes
func (h *ItemHandler) RegisterRoutes(router *mux.Router) {
	// /select must be registered before /{id}
	router.HandleFunc("/api/items", h.wrap("/api/items", h.ListItems)).Methods("GET")
	router.HandleFunc("/api/items/select", h.wrap("/api/items/select", h.SelectItems)).Methods("GET")
	router.HandleFunc("/api/items/{id}", h.wrap("/api/items/{id}", h.GetItem)).Methods("GET")
	router.HandleFunc("/api/items", h.wrap("/api/items", h.CreateItem)).Methods("POST")
	router.HandleFunc("/api/items/{id}", h.wrap("/api/items/{id}", h.UpdateItem)).Methods("PUT")
	router.HandleFunc("/api/items/{id}", h.wrap("/api/items/{id}", h.DeleteItem)).Methods("DELETE")
}

func (h *ItemHandler) wrap(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	if h.metrics == nil {
		return next
	}
	return h.metrics.Wrap("item", endpoint, next)
}

func parseForm(w http.ResponseWriter, r *http.Request) (validation.Form, bool) {
	if err := r.ParseForm(); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Invalid form body")
		response.Write(w, response.Fail[domain.ItemView](response.KindValidation, "Invalid form body"), http.StatusOK)
		return nil, false
	}
	return validation.FormFromValues(r.PostForm), true
}
