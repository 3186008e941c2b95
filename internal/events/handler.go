package events

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/splitbill/pkg/response"
)

// Handler exposes the audit trail read-only
type Handler struct {
	store Store
}

// NewHandler creates a new events handler
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Routes returns the router for event endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

// List handles GET /events
// @Summary      List audit events
// @Description  Newest first, optionally filtered by type
// @Tags         events
// @Produce      json
// @Param        type query string false "Event type, e.g. expense.created"
// @Param        limit query int false "Maximum number of events" default(50)
// @Success      200 {object} response.APIResponse{data=[]Event}
// @Router       /events [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 500 {
		limit = 50
	}

	list, err := h.store.List(r.Context(), r.URL.Query().Get("type"), limit)
	if err != nil {
		response.InternalError(w, "Failed to list events")
		return
	}

	response.JSON(w, http.StatusOK, list)
}
