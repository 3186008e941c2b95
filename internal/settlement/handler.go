package settlement

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/splitbill/internal/group"
	"github.com/fkhayef/splitbill/pkg/middleware"
	"github.com/fkhayef/splitbill/pkg/request"
	"github.com/fkhayef/splitbill/pkg/response"
)

// Handler handles HTTP requests for settlements and balances
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.GetByID)

	return r
}

// RegisterGroupRoutes adds the group scoped endpoints to the /groups router
func (h *Handler) RegisterGroupRoutes(r chi.Router) {
	r.Post("/{id}/settlements", h.Create)
	r.Get("/{id}/settlements", h.List)
	r.Get("/{id}/balances", h.Balances)
	r.Get("/{id}/balances/export", h.Export)
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrCannotSettleSelf),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrReceiverNotMember):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrSettlementNotFound):
		response.NotFound(w, err.Error())
	default:
		group.WriteError(w, err, fallback)
	}
}

func pathID(w http.ResponseWriter, r *http.Request, what string) (int64, bool) {
	id, err := request.ID(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid "+what+" ID")
		return 0, false
	}
	return id, true
}

// Create handles POST /groups/{id}/settlements
// @Summary      Record a settlement
// @Description  Record that the caller paid another member directly
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        X-User-ID header int true "Caller user ID"
// @Param        id path int true "Group ID"
// @Param        request body CreateSettlementRequest true "Settlement"
// @Success      201 {object} response.APIResponse{data=SettlementResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /groups/{id}/settlements [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(w, r, "group")
	if !ok {
		return
	}
	fromUserID, _ := middleware.GetUserID(r.Context())

	var req CreateSettlementRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	settlement, err := h.service.RecordSettlement(r.Context(), groupID, fromUserID, &req)
	if err != nil {
		writeError(w, err, "Failed to record settlement")
		return
	}

	response.JSON(w, http.StatusCreated, settlement.ToResponse())
}

// List handles GET /groups/{id}/settlements
// @Summary      List settlements
// @Tags         settlements
// @Produce      json
// @Param        X-User-ID header int true "Caller user ID"
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Failure      403 {object} response.APIResponse
// @Router       /groups/{id}/settlements [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(w, r, "group")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(r.Context())

	settlements, err := h.service.List(r.Context(), groupID, userID)
	if err != nil {
		writeError(w, err, "Failed to list settlements")
		return
	}

	out := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		out[i] = s.ToResponse()
	}

	response.JSON(w, http.StatusOK, out)
}

// GetByID handles GET /settlements/{id}
// @Summary      Get a settlement
// @Tags         settlements
// @Produce      json
// @Param        X-User-ID header int true "Caller user ID"
// @Param        id path int true "Settlement ID"
// @Success      200 {object} response.APIResponse{data=SettlementResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /settlements/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "settlement")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(r.Context())

	settlement, err := h.service.GetByID(r.Context(), id, userID)
	if err != nil {
		writeError(w, err, "Failed to get settlement")
		return
	}

	response.JSON(w, http.StatusOK, settlement.ToResponse())
}

// Balances handles GET /groups/{id}/balances
// @Summary      Group balances
// @Description  Net balances and the suggested payments that settle them
// @Tags         settlements
// @Produce      json
// @Param        X-User-ID header int true "Caller user ID"
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=BalancesResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/balances [get]
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(w, r, "group")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(r.Context())

	report, err := h.service.GetBalances(r.Context(), groupID, userID)
	if err != nil {
		writeError(w, err, "Failed to compute balances")
		return
	}

	response.JSON(w, http.StatusOK, NewBalancesResponse(report))
}

// Export handles GET /groups/{id}/balances/export
// @Summary      Export balances
// @Description  Download the group balances as an Excel workbook
// @Tags         settlements
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        X-User-ID header int true "Caller user ID"
// @Param        id path int true "Group ID"
// @Success      200 {file} file
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/balances/export [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(w, r, "group")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(r.Context())

	g, report, err := h.service.ExportBalances(r.Context(), groupID, userID)
	if err != nil {
		writeError(w, err, "Failed to export balances")
		return
	}

	f, err := BalanceWorkbook(g.Name, report)
	if err != nil {
		response.InternalError(w, "Failed to export balances")
		return
	}
	defer f.Close()

	response.Attachment(w, ExportFilename(g.Name, time.Now()), XLSXContentType, func(out io.Writer) error {
		_, err := f.WriteTo(out)
		return err
	})
}
