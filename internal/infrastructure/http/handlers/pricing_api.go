package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/http/middleware"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// PricingAPIHandlers handles price tracking requests
type PricingAPIHandlers struct {
	pricingService inbound.PricingService
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewPricingAPIHandlers creates pricing API handlers
func NewPricingAPIHandlers(pricingService inbound.PricingService, logger *zap.Logger) *PricingAPIHandlers {
	return &PricingAPIHandlers{
		pricingService: pricingService,
		validate:       validator.New(),
		logger:         logger,
	}
}

// RecordPriceRequest is the payload for POST /prices
type RecordPriceRequest struct {
	ItemName string  `json:"itemName" validate:"required,max=255"`
	Store    string  `json:"store" validate:"required,max=255"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// RecordPrice handles POST /api/v1/prices
func (h *PricingAPIHandlers) RecordPrice(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req RecordPriceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	err := h.pricingService.RecordPrice(r.Context(), inbound.RecordPriceCommand{
		UserID:   userID,
		ItemName: req.ItemName,
		Store:    req.Store,
		Price:    req.Price,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Message: "Price recorded",
	})
}

// Lookup handles GET /api/v1/prices/lookup?item=...&store=...&limit=...
func (h *PricingAPIHandlers) Lookup(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	item := r.URL.Query().Get("item")
	if item == "" {
		writeError(w, h.logger, errors.NewValidationError("item query parameter is required"))
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.pricingService.Lookup(r.Context(), inbound.PriceLookupQuery{
		UserID:     userID,
		ItemName:   item,
		Store:      r.URL.Query().Get("store"),
		StoreLimit: limit,
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
