package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/http/middleware"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// InventoryAPIHandlers handles pantry inventory requests
type InventoryAPIHandlers struct {
	inventoryService inbound.InventoryService
	validate         *validator.Validate
	logger           *zap.Logger
}

// NewInventoryAPIHandlers creates inventory API handlers
func NewInventoryAPIHandlers(inventoryService inbound.InventoryService, logger *zap.Logger) *InventoryAPIHandlers {
	return &InventoryAPIHandlers{
		inventoryService: inventoryService,
		validate:         validator.New(),
		logger:           logger,
	}
}

// AddItemRequest is the payload for POST /inventory
type AddItemRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Category string  `json:"category" validate:"max=100"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit" validate:"max=50"`
}

// UpdateQuantityRequest is the payload for PUT /inventory/{id}/quantity
type UpdateQuantityRequest struct {
	Delta float64 `json:"delta" validate:"required"`
}

// MatchRequest is the payload for POST /inventory/match
type MatchRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,required"`
}

// ListItems handles GET /api/v1/inventory
func (h *InventoryAPIHandlers) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	items, err := h.inventoryService.ListItems(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
	})
}

// AddItem handles POST /api/v1/inventory
func (h *InventoryAPIHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	item, err := h.inventoryService.AddItem(r.Context(), inbound.AddInventoryItemCommand{
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    item,
		Message: "Item added to pantry",
	})
}

// UpdateQuantity handles PUT /api/v1/inventory/{id}/quantity
func (h *InventoryAPIHandlers) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, errors.NewValidationError("invalid item id"))
		return
	}

	var req UpdateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	item, err := h.inventoryService.UpdateQuantity(r.Context(), itemID, userID, req.Delta)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    item,
	})
}

// RemoveItem handles DELETE /api/v1/inventory/{id}
func (h *InventoryAPIHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, errors.NewValidationError("invalid item id"))
		return
	}

	if err := h.inventoryService.RemoveItem(r.Context(), itemID, userID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Item removed from pantry",
	})
}

// MatchIngredients handles POST /api/v1/inventory/match
func (h *InventoryAPIHandlers) MatchIngredients(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req MatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	report, err := h.inventoryService.MatchIngredients(r.Context(), inbound.MatchIngredientsCommand{
		UserID:      userID,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    report,
	})
}
