package expense

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/internal/expense/split"
	"github.com/fkhayef/splitbill/internal/group"
	"github.com/fkhayef/splitbill/pkg/middleware"
	"github.com/fkhayef/splitbill/pkg/request"
	"github.com/fkhayef/splitbill/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Post("/validate-split", h.ValidateSplit)
	r.Get("/search", h.Search)
	r.Get("/group/{groupId}", h.ListByGroup)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	var splitErr *split.SplitError
	switch {
	case errors.As(err, &splitErr):
		response.BadRequest(w, splitErr.Error())
	case errors.Is(err, ErrAmountTooLarge), errors.Is(err, ErrParticipantNotMember):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrExpenseNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrNotPayer):
		response.Forbidden(w, err.Error())
	default:
		group.WriteError(w, err, fallback)
	}
}

func expenseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := request.ID(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return 0, false
	}
	return id, true
}

// ValidateSplit handles POST /expenses/validate-split
// @Summary      Validate a split
// @Description  Check a split without recording an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        X-User-ID header int true "Caller user ID"
// @Param        request body SplitInput true "Split to check"
// @Success      200 {object} response.APIResponse{data=split.ValidationResult}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses/validate-split [post]
func (h *Handler) ValidateSplit(w http.ResponseWriter, r *http.Request) {
	var in SplitInput
	if err := request.DecodeJSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, h.service.ValidateSplit(&in))
}

// Create handles POST /expenses
// @Summary      Create an expense
// @Description  Record an expense paid by the caller and split it between participants
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        X-User-ID header int true "Caller user ID"
// @Param        request body CreateExpenseRequest true "Expense creation request"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payerID, _ := middleware.GetUserID(r.Context())

	var req CreateExpenseRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	created, err := h.service.CreateExpense(r.Context(), payerID, &req)
	if err != nil {
		writeError(w, err, "Failed to create expense")
		return
	}

	response.JSON(w, http.StatusCreated, created.ToResponse())
}

// GetByID handles GET /expenses/{id}
// @Summary      Get an expense
// @Tags         expenses
// @Produce      json
// @Param        X-User-ID header int true "Caller user ID"
// @Param        id path int true "Expense ID"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := expenseID(w, r)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(r.Context())

	expense, err := h.service.GetExpense(r.Context(), id, userID)
	if err != nil {
		writeError(w, err, "Failed to get expense")
		return
	}

	response.JSON(w, http.StatusOK, expense.ToResponse())
}

// ListByGroup handles GET /expenses/group/{groupId}
// @Summary      List a group's expenses
// @Tags         expenses
// @Produce      json
// @Param        X-User-ID header int true "Caller user ID"
// @Param        groupId path int true "Group ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Failure      403 {object} response.APIResponse
// @Router       /expenses/group/{groupId} [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := request.ID(chi.URLParam(r, "groupId"))
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}
	userID, _ := middleware.GetUserID(r.Context())
	page, perPage := request.Page(r)

	expenses, total, err := h.service.ListByGroupID(r.Context(), groupID, userID, page, perPage)
	if err != nil {
		writeError(w, err, "Failed to list expenses")
		return
	}

	out := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = e.ToResponse()
	}

	response.JSONWithMeta(w, http.StatusOK, out, response.NewMeta(page, perPage, total))
}

// Search handles GET /expenses/search
// @Summary      Search expenses
// @Description  Search expenses across the caller's groups
// @Tags         expenses
// @Produce      json
// @Param        X-User-ID header int true "Caller user ID"
// @Param        q query string false "Text in the description"
// @Param        category query string false "Expense category"
// @Param        group_id query int false "Group ID"
// @Param        from query string false "Earliest date (RFC 3339)"
// @Param        to query string false "Latest date (RFC 3339)"
// @Param        min_amount query string false "Minimum amount"
// @Param        max_amount query string false "Maximum amount"
// @Param        limit query int false "Page size" default(50)
// @Param        offset query int false "Offset" default(0)
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	filter, err := parseSearch(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	filter.UserID = userID

	expenses, total, err := h.service.Search(r.Context(), filter)
	if err != nil {
		response.InternalError(w, "Failed to search expenses")
		return
	}

	out := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = e.ToResponse()
	}

	response.JSONWithMeta(w, http.StatusOK, out, &response.Meta{Total: total, PerPage: filter.Limit})
}

func parseSearch(r *http.Request) (SearchFilter, error) {
	q := r.URL.Query()
	filter := SearchFilter{Query: q.Get("q")}

	if v := q.Get("category"); v != "" {
		c, ok := ParseCategory(v)
		if !ok {
			return filter, errors.New("invalid category")
		}
		filter.Category = c
	}
	if v := q.Get("group_id"); v != "" {
		id, err := request.ID(v)
		if err != nil {
			return filter, errors.New("invalid group_id")
		}
		filter.GroupID = id
	}
	for _, p := range []struct {
		key string
		dst **time.Time
	}{{"from", &filter.From}, {"to", &filter.To}} {
		if v := q.Get(p.key); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return filter, errors.New("invalid " + p.key + " date")
			}
			*p.dst = &t
		}
	}
	for _, p := range []struct {
		key string
		dst **decimal.Decimal
	}{{"min_amount", &filter.MinAmount}, {"max_amount", &filter.MaxAmount}} {
		if v := q.Get(p.key); v != "" {
			d, err := decimal.NewFromString(v)
			if err != nil {
				return filter, errors.New("invalid " + p.key)
			}
			*p.dst = &d
		}
	}

	limit, offset, err := request.LimitOffset(r, 50)
	if err != nil {
		return filter, err
	}
	filter.Limit, filter.Offset = limit, offset

	return filter, nil
}

// Update handles PUT /expenses/{id}
// @Summary      Update an expense
// @Description  Change description, category or date. Payer or group owner only.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        X-User-ID header int true "Caller user ID"
// @Param        id path int true "Expense ID"
// @Param        request body UpdateExpenseRequest true "Expense update request"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := expenseID(w, r)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(r.Context())

	var req UpdateExpenseRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	expense, err := h.service.Update(r.Context(), id, userID, &req)
	if err != nil {
		writeError(w, err, "Failed to update expense")
		return
	}

	response.JSON(w, http.StatusOK, expense.ToResponse())
}

// Delete handles DELETE /expenses/{id}
// @Summary      Delete an expense
// @Description  Payer or group owner only; archived groups are read-only
// @Tags         expenses
// @Produce      json
// @Param        X-User-ID header int true "Caller user ID"
// @Param        id path int true "Expense ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /expenses/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := expenseID(w, r)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(r.Context())

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		writeError(w, err, "Failed to delete expense")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}
