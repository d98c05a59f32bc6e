package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-service/internal/unit/action"
	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/internal/validation"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/metrics"
	"github.com/tair/inventory-service/pkg/pagination"
	"github.com/tair/inventory-service/pkg/response"
)

// UnitHandler handles HTTP requests for units
type UnitHandler struct {
	actions *action.UnitActions
	metrics *metrics.Metrics
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(actions *action.UnitActions, m *metrics.Metrics) *UnitHandler {
	return &UnitHandler{actions: actions, metrics: m}
}

// ListUnits handles GET /api/units
// @Summary List units
// @Description Paginated, case-insensitive name search, newest first
// @Tags Units
// @Produce json
// @Param search query string false "Name substring"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size 1..100 (default 10)"
// @Success 200 {object} UnitPageEnvelope
// @Failure 400 {object} UnitPageEnvelope
// @Failure 500 {object} UnitPageEnvelope
// @Router /api/units [get]
func (h *UnitHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	res := h.actions.List(r.Context(), response.Result[pagination.Page[domain.Unit]]{}, validation.FormFromValues(r.URL.Query()))
	response.Write(w, res, http.StatusOK)
}

// AllUnits handles GET /api/units/all
// @Summary List all units
// @Description Every unit ordered by name, for select boxes
// @Tags Units
// @Produce json
// @Success 200 {object} UnitListEnvelope
// @Failure 500 {object} UnitListEnvelope
// @Router /api/units/all [get]
func (h *UnitHandler) AllUnits(w http.ResponseWriter, r *http.Request) {
	res := h.actions.All(r.Context(), response.Result[[]domain.Unit]{}, validation.Form{})
	response.Write(w, res, http.StatusOK)
}

// GetUnit handles GET /api/units/{id}
// @Summary Get a unit
// @Description Returns data null when the unit does not exist
// @Tags Units
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit ID"
// @Success 200 {object} UnitEnvelope
// @Failure 400 {object} UnitEnvelope
// @Failure 401 {object} UnitEnvelope
// @Router /api/units/{id} [get]
func (h *UnitHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	form := validation.Form{"id": mux.Vars(r)["id"]}
	res := h.actions.Get(r.Context(), response.Result[domain.Unit]{}, form)
	response.Write(w, res, http.StatusOK)
}

// CreateUnit handles POST /api/units
// @Summary Create or overwrite a unit
// @Description Upsert keyed on name
// @Tags Units
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Success 201 {object} UnitEnvelope
// @Failure 400 {object} UnitEnvelope
// @Failure 401 {object} UnitEnvelope
// @Failure 500 {object} UnitEnvelope
// @Router /api/units [post]
func (h *UnitHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm[domain.Unit](w, r)
	if !ok {
		return
	}
	res := h.actions.Create(r.Context(), response.Result[domain.Unit]{}, form)
	response.Write(w, res, http.StatusCreated)
}

// UpdateUnit handles PUT /api/units/{id}
// @Summary Update a unit
// @Tags Units
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit ID"
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Success 200 {object} UnitEnvelope
// @Failure 400 {object} UnitEnvelope
// @Failure 401 {object} UnitEnvelope
// @Failure 404 {object} UnitEnvelope
// @Failure 500 {object} UnitEnvelope
// @Router /api/units/{id} [put]
func (h *UnitHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm[domain.Unit](w, r)
	if !ok {
		return
	}
	res := h.actions.Update(r.Context(), response.Result[domain.Unit]{}, form.With("id", mux.Vars(r)["id"]))
	response.Write(w, res, http.StatusOK)
}

// DeleteUnit handles DELETE /api/units/{id}
// @Summary Delete a unit
// @Description Deleting an absent unit succeeds with data null
// @Tags Units
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit ID"
// @Success 200 {object} UnitEnvelope
// @Failure 400 {object} UnitEnvelope
// @Failure 401 {object} UnitEnvelope
// @Failure 500 {object} UnitEnvelope
// @Router /api/units/{id} [delete]
func (h *UnitHandler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	form := validation.Form{"id": mux.Vars(r)["id"]}
	res := h.actions.Delete(r.Context(), response.Result[domain.Unit]{}, form)
	response.Write(w, res, http.StatusOK)
}

// RegisterRoutes registers all unit routes
func (h *UnitHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/units", h.wrap("/api/units", h.ListUnits)).Methods("GET")
	router.HandleFunc("/api/units/all", h.wrap("/api/units/all", h.AllUnits)).Methods("GET")
	router.HandleFunc("/api/units/{id}", h.wrap("/api/units/{id}", h.GetUnit)).Methods("GET")
	router.HandleFunc("/api/units", h.wrap("/api/units", h.CreateUnit)).Methods("POST")
	router.HandleFunc("/api/units/{id}", h.wrap("/api/units/{id}", h.UpdateUnit)).Methods("PUT")
	router.HandleFunc("/api/units/{id}", h.wrap("/api/units/{id}", h.DeleteUnit)).Methods("DELETE")
}

func (h *UnitHandler) wrap(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	if h.metrics == nil {
		return next
	}
	return h.metrics.Wrap("unit", endpoint, next)
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
