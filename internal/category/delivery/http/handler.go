package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-service/internal/category/action"
	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/validation"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/metrics"
	"github.com/tair/inventory-service/pkg/pagination"
	"github.com/tair/inventory-service/pkg/response"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	actions *action.CategoryActions
	metrics *metrics.Metrics
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(actions *action.CategoryActions, m *metrics.Metrics) *CategoryHandler {
	return &CategoryHandler{actions: actions, metrics: m}
}

// ListCategories handles GET /api/categories
// @Summary List categories
// @Description Paginated, case-insensitive name search, newest first
// @Tags Categories
// @Produce json
// @Param search query string false "Name substring"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size 1..100 (default 10)"
// @Success 200 {object} CategoryPageEnvelope
// @Failure 400 {object} CategoryPageEnvelope
// @Failure 500 {object} CategoryPageEnvelope
// @Router /api/categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res := h.actions.List(r.Context(), response.Result[pagination.Page[domain.Category]]{}, validation.FormFromValues(r.URL.Query()))
	response.Write(w, res, http.StatusOK)
}

// AllCategories handles GET /api/categories/all
// @Summary List all categories
// @Description Every category ordered by name, for select boxes
// @Tags Categories
// @Produce json
// @Success 200 {object} CategoryListEnvelope
// @Failure 500 {object} CategoryListEnvelope
// @Router /api/categories/all [get]
func (h *CategoryHandler) AllCategories(w http.ResponseWriter, r *http.Request) {
	res := h.actions.All(r.Context(), response.Result[[]domain.Category]{}, validation.Form{})
	response.Write(w, res, http.StatusOK)
}

// GetCategory handles GET /api/categories/{id}
// @Summary Get a category
// @Description Returns data null when the category does not exist
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryEnvelope
// @Failure 400 {object} CategoryEnvelope
// @Failure 401 {object} CategoryEnvelope
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	form := validation.Form{"id": mux.Vars(r)["id"]}
	res := h.actions.Get(r.Context(), response.Result[domain.Category]{}, form)
	response.Write(w, res, http.StatusOK)
}

// CreateCategory handles POST /api/categories
// @Summary Create or overwrite a category
// @Description Upsert keyed on name
// @Tags Categories
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Success 201 {object} CategoryEnvelope
// @Failure 400 {object} CategoryEnvelope
// @Failure 401 {object} CategoryEnvelope
// @Failure 500 {object} CategoryEnvelope
// @Router /api/categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm[domain.Category](w, r)
	if !ok {
		return
	}
	res := h.actions.Create(r.Context(), response.Result[domain.Category]{}, form)
	response.Write(w, res, http.StatusCreated)
}

// UpdateCategory handles PUT /api/categories/{id}
// @Summary Update a category
// @Tags Categories
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Success 200 {object} CategoryEnvelope
// @Failure 400 {object} CategoryEnvelope
// @Failure 401 {object} CategoryEnvelope
// @Failure 404 {object} CategoryEnvelope
// @Failure 500 {object} CategoryEnvelope
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm[domain.Category](w, r)
	if !ok {
		return
	}
	res := h.actions.Update(r.Context(), response.Result[domain.Category]{}, form.With("id", mux.Vars(r)["id"]))
	response.Write(w, res, http.StatusOK)
}

// DeleteCategory handles DELETE /api/categories/{id}
// @Summary Delete a category
// @Description Deleting an absent category succeeds with data null
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryEnvelope
// @Failure 400 {object} CategoryEnvelope
// @Failure 401 {object} CategoryEnvelope
// @Failure 500 {object} CategoryEnvelope
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	form := validation.Form{"id": mux.Vars(r)["id"]}
	res := h.actions.Delete(r.Context(), response.Result[domain.Category]{}, form)
	response.Write(w, res, http.StatusOK)
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/categories", h.wrap("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories/all", h.wrap("/api/categories/all", h.AllCategories)).Methods("GET")
	router.HandleFunc("/api/categories/{id}", h.wrap("/api/categories/{id}", h.GetCategory)).Methods("GET")
	router.HandleFunc("/api/categories", h.wrap("/api/categories", h.CreateCategory)).Methods("POST")
	router.HandleFunc("/api/categories/{id}", h.wrap("/api/categories/{id}", h.UpdateCategory)).Methods("PUT")
	router.HandleFunc("/api/categories/{id}", h.wrap("/api/categories/{id}", h.DeleteCategory)).Methods("DELETE")
}

func (h *CategoryHandler) wrap(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	if h.metrics == nil {
		return next
	}
	return h.metrics.Wrap("category", endpoint, next)
}

// parseForm reads a form-encoded body. On failure it writes a 400 envelope.
func parseForm[T any](w http.ResponseWriter, r *http.Request) (validation.Form, bool) {
	if err := r.ParseForm(); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Invalid form body")
		response.Write(w, response.Fail[T](response.KindValidation, "Invalid form body"), http.StatusOK)
		return nil, false
	}
	return validation.FormFromValues(r.PostForm), true
}
