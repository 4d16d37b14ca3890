package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/infrastructure/http/middleware"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// ShoppingAPIHandlers handles shopping list requests
type ShoppingAPIHandlers struct {
	shoppingService inbound.ShoppingService
	validate        *validator.Validate
	logger          *zap.Logger
}

// NewShoppingAPIHandlers creates shopping API handlers
func NewShoppingAPIHandlers(shoppingService inbound.ShoppingService, logger *zap.Logger) *ShoppingAPIHandlers {
	return &ShoppingAPIHandlers{
		shoppingService: shoppingService,
		validate:        validator.New(),
		logger:          logger,
	}
}

// TotalsRequest is the payload for totals and export calls. Items accepts a
// flat array or an object mapping category names to item arrays.
type TotalsRequest struct {
	ListID    *uuid.UUID                  `json:"listId,omitempty"`
	Items     json.RawMessage             `json:"items,omitempty"`
	Options   shopping.Options            `json:"options"`
	TaxRegion string                      `json:"taxRegion,omitempty"`
	Currency  inbound.CurrencyPreferences `json:"currency"`
	Format    string                      `json:"format,omitempty"`
}

// SaveListRequest is the payload for POST /shopping/lists
type SaveListRequest struct {
	Name   string          `json:"name" validate:"required,max=255"`
	Items  []shopping.Item `json:"items"`
	Budget float64         `json:"budget" validate:"gte=0"`
}

// toCommand converts the request into the application command, decoding the
// loosely shaped items payload.
func (req *TotalsRequest) toCommand(userID uuid.UUID) (inbound.CalculateTotalsCommand, error) {
	cmd := inbound.CalculateTotalsCommand{
		UserID:    userID,
		ListID:    req.ListID,
		Options:   req.Options,
		TaxRegion: req.TaxRegion,
		Currency:  req.Currency,
	}

	if len(req.Items) > 0 && !bytes.Equal(bytes.TrimSpace(req.Items), []byte("null")) {
		var list shopping.List
		wrapped := append(append([]byte(`{"items":`), req.Items...), '}')
		if err := json.Unmarshal(wrapped, &list); err != nil {
			return cmd, errors.NewValidationError("invalid items payload: " + err.Error())
		}
		cmd.List = &list
	}

	return cmd, nil
}

// CalculateTotals handles POST /api/v1/shopping/totals
func (h *ShoppingAPIHandlers) CalculateTotals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req TotalsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	cmd, err := req.toCommand(userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	totals, err := h.shoppingService.CalculateTotals(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    totals,
	})
}

// ExportTotals handles POST /api/v1/shopping/totals/export
func (h *ShoppingAPIHandlers) ExportTotals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req TotalsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	cmd, err := req.toCommand(userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	text, summary, err := h.shoppingService.ExportTotals(r.Context(), inbound.ExportTotalsCommand{
		CalculateTotalsCommand: cmd,
		Format:                 req.Format,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if req.Format == shopping.FormatText {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(text))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    summary,
	})
}

// SaveList handles POST /api/v1/shopping/lists
func (h *ShoppingAPIHandlers) SaveList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req SaveListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	list, err := h.shoppingService.SaveList(r.Context(), inbound.SaveListCommand{
		UserID: userID,
		Name:   req.Name,
		Items:  req.Items,
		Budget: req.Budget,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    list,
		Message: "Shopping list saved",
	})
}

// GetList handles GET /api/v1/shopping/lists/{id}
func (h *ShoppingAPIHandlers) GetList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	listID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, errors.NewValidationError("invalid list id"))
		return
	}

	list, err := h.shoppingService.GetList(r.Context(), listID, userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    list,
	})
}

// ListLists handles GET /api/v1/shopping/lists
func (h *ShoppingAPIHandlers) ListLists(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	result, err := h.shoppingService.ListLists(r.Context(), userID, inbound.PaginationParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
	})
}

// DeleteList handles DELETE /api/v1/shopping/lists/{id}
func (h *ShoppingAPIHandlers) DeleteList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	listID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, errors.NewValidationError("invalid list id"))
		return
	}

	if err := h.shoppingService.DeleteList(r.Context(), listID, userID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Shopping list deleted",
	})
}
