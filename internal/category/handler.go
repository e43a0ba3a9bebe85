package category

import (
	"net/http"
	"strconv"

	"github.com/danupratama/category-admin/internal"
	"github.com/danupratama/category-admin/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListCategories(filter Filter, page, limit int) ListEnvelope
	GetCategory(id int64) CategoryEnvelope
	CreateCategory(input CreateCategoryDTO) CategoryEnvelope
	UpdateCategory(id int64, input UpdateCategoryDTO) CategoryEnvelope
	DeleteCategory(id int64) CategoryEnvelope
	State() StateSnapshot
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// ListCategories handles GET /categories?page=&limit=&search=&is_active=
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := positiveIntParam(query.Get("page"), 1)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	limit, err := positiveIntParam(query.Get("limit"), 10)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	filter := Filter{Search: query.Get("search")}
	if raw := query.Get("is_active"); raw != "" {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			h.WriteAppError(w, internal.NewValidationError("is_active must be a boolean", internal.ErrCodeValidationFailed))
			return
		}
		filter.IsActive = &isActive
	}

	env := h.Service.ListCategories(filter, page, limit)
	h.WriteJSON(w, http.StatusOK, env)
}

// GetCategory handles GET /categories/{id}
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	env := h.Service.GetCategory(id)
	if !env.Success {
		h.WriteJSON(w, http.StatusNotFound, env)
		return
	}
	h.WriteJSON(w, http.StatusOK, env)
}

// CreateCategory handles POST /categories
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input CreateCategoryDTO
	if err := h.DecodeJSON(r, &input); err != nil {
		h.Logger.Error("CreateCategory: invalid payload", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := input.Validate(); err != nil {
		h.WriteAppError(w, err)
		return
	}

	env := h.Service.CreateCategory(input)
	h.WriteJSON(w, http.StatusCreated, env)
}

// UpdateCategory handles PATCH /categories/{id}
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	var input UpdateCategoryDTO
	if err := h.DecodeJSON(r, &input); err != nil {
		h.Logger.Error("UpdateCategory: invalid payload", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := input.Validate(); err != nil {
		h.WriteAppError(w, err)
		return
	}

	env := h.Service.UpdateCategory(id, input)
	if !env.Success {
		h.WriteJSON(w, http.StatusNotFound, env)
		return
	}
	h.WriteJSON(w, http.StatusOK, env)
}

// DeleteCategory handles DELETE /categories/{id}
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	env := h.Service.DeleteCategory(id)
	if !env.Success {
		h.WriteJSON(w, http.StatusNotFound, env)
		return
	}
	h.WriteJSON(w, http.StatusOK, env)
}

// GetState handles GET /state, the dashboard bootstrap snapshot.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.State())
}

func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, internal.NewValidationError("id must be a positive integer", internal.ErrCodeInvalidID)
	}
	return id, nil
}

func positiveIntParam(raw string, defaultVal int) (int, error) {
	if raw == "" {
		return defaultVal, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 1 {
		return 0, internal.NewValidationError("page and limit must be positive integers", internal.ErrCodeInvalidPagination)
	}
	return val, nil
}
