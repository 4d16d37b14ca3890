// Package shopping provides the application layer for shopping list totals
// and saved shopping lists
// This implements the use cases defined in the inbound ports
package shopping

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// Defaults carries the deployment's commerce defaults, sourced from config.
type Defaults struct {
	TaxRegion        string
	Currency         string
	CurrencySymbol   string
	CurrencyPosition string
	DecimalPlaces    int
}

// ShoppingService implements the shopping list use cases
type ShoppingService struct {
	listRepo outbound.ShoppingListRepository
	defaults Defaults
	logger   *zap.Logger
}

// NewShoppingService creates a new shopping service
func NewShoppingService(
	listRepo outbound.ShoppingListRepository,
	defaults Defaults,
	logger *zap.Logger,
) inbound.ShoppingService {
	return &ShoppingService{
		listRepo: listRepo,
		defaults: defaults,
		logger:   logger.Named("shopping-service"),
	}
}

// calculatorFor builds a calculator from the deployment defaults plus any
// per-request currency overrides.
func (s *ShoppingService) calculatorFor(cmd inbound.CalculateTotalsCommand) *shopping.Calculator {
	region := cmd.TaxRegion
	if region == "" {
		region = s.defaults.TaxRegion
	}
	taxRate, _ := shopping.LookupTaxRate(region)

	cfg := shopping.Config{
		TaxRate:          taxRate,
		Currency:         s.defaults.Currency,
		CurrencySymbol:   s.defaults.CurrencySymbol,
		CurrencyPosition: s.defaults.CurrencyPosition,
		DecimalPlaces:    s.defaults.DecimalPlaces,
	}
	if cmd.Currency.Currency != "" {
		cfg.Currency = cmd.Currency.Currency
	}
	if cmd.Currency.CurrencySymbol != "" {
		cfg.CurrencySymbol = cmd.Currency.CurrencySymbol
	}
	if cmd.Currency.CurrencyPosition != "" {
		cfg.CurrencyPosition = cmd.Currency.CurrencyPosition
	}
	if cmd.Currency.DecimalPlaces != 0 {
		cfg.DecimalPlaces = cmd.Currency.DecimalPlaces
	}

	return shopping.NewCalculator(cfg)
}

// resolveList loads the saved list when ListID is set, otherwise uses the
// ad-hoc payload.
func (s *ShoppingService) resolveList(ctx context.Context, cmd inbound.CalculateTotalsCommand) (*shopping.List, *shopping.Options, error) {
	opts := cmd.Options

	if cmd.ListID == nil {
		if cmd.List == nil {
			return shopping.NewList(nil), &opts, nil
		}
		return cmd.List, &opts, nil
	}

	saved, err := s.listRepo.FindByID(ctx, *cmd.ListID)
	if err != nil {
		return nil, nil, errors.NewDatabaseError("find shopping list", err)
	}
	if saved == nil {
		return nil, nil, errors.NewListNotFoundError(cmd.ListID.String())
	}
	if saved.UserID != cmd.UserID {
		return nil, nil, errors.NewInsufficientPermissionsError("read this list")
	}

	if opts.Budget == 0 {
		opts.Budget = saved.Budget
	}
	return shopping.NewList(saved.Items), &opts, nil
}

// CalculateTotals runs the totals rollup for an ad-hoc payload or saved list
func (s *ShoppingService) CalculateTotals(ctx context.Context, cmd inbound.CalculateTotalsCommand) (*shopping.Totals, error) {
	list, opts, err := s.resolveList(ctx, cmd)
	if err != nil {
		return nil, err
	}

	calc := s.calculatorFor(cmd)
	totals := calc.CalculateTotals(list, *opts)

	s.logger.Debug("Calculated shopping list totals",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("items", totals.TotalItems),
		zap.Float64("total", totals.Total),
	)

	return totals, nil
}

// ExportTotals renders totals in the requested format. The text format
// returns the receipt block; any other format returns the display summary.
func (s *ShoppingService) ExportTotals(ctx context.Context, cmd inbound.ExportTotalsCommand) (string, *shopping.Summary, error) {
	list, opts, err := s.resolveList(ctx, cmd.CalculateTotalsCommand)
	if err != nil {
		return "", nil, err
	}

	calc := s.calculatorFor(cmd.CalculateTotalsCommand)
	totals := calc.CalculateTotals(list, *opts)

	if cmd.Format == shopping.FormatText {
		return calc.ExportText(totals), nil, nil
	}
	return "", calc.GenerateSummary(totals), nil
}

// SaveList persists a shopping list
func (s *ShoppingService) SaveList(ctx context.Context, cmd inbound.SaveListCommand) (*shopping.SavedList, error) {
	if cmd.Name == "" {
		return nil, errors.NewValidationError("list name is required")
	}

	list := shopping.NewSavedList(cmd.UserID, cmd.Name, cmd.Items, cmd.Budget)
	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, errors.NewDatabaseError("create shopping list", err)
	}

	s.logger.Info("Shopping list saved",
		zap.String("list_id", list.ID.String()),
		zap.String("name", list.Name),
		zap.Int("items", len(list.Items)),
	)

	return list, nil
}

// GetList loads one saved list
func (s *ShoppingService) GetList(ctx context.Context, listID, userID uuid.UUID) (*shopping.SavedList, error) {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, errors.NewDatabaseError("find shopping list", err)
	}
	if list == nil {
		return nil, errors.NewListNotFoundError(listID.String())
	}
	if list.UserID != userID {
		return nil, errors.NewInsufficientPermissionsError("read this list")
	}
	return list, nil
}

// ListLists returns a page of the user's saved lists
func (s *ShoppingService) ListLists(ctx context.Context, userID uuid.UUID, params inbound.PaginationParams) (*inbound.SavedListPage, error) {
	if params.PageSize <= 0 {
		params.PageSize = 20
	}
	if params.Page < 0 {
		params.Page = 0
	}

	lists, total, err := s.listRepo.FindByUser(ctx, userID, params.Page*params.PageSize, params.PageSize)
	if err != nil {
		return nil, errors.NewDatabaseError("list shopping lists", err)
	}

	return &inbound.SavedListPage{
		Lists:      lists,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: (total + params.PageSize - 1) / params.PageSize,
	}, nil
}

// DeleteList removes a saved list
func (s *ShoppingService) DeleteList(ctx context.Context, listID, userID uuid.UUID) error {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return errors.NewDatabaseError("find shopping list", err)
	}
	if list == nil {
		return errors.NewListNotFoundError(listID.String())
	}
	if list.UserID != userID {
		return errors.NewInsufficientPermissionsError("delete this list")
	}

	if err := s.listRepo.Delete(ctx, listID); err != nil {
		return errors.NewDatabaseError("delete shopping list", err)
	}

	s.logger.Info("Shopping list deleted",
		zap.String("list_id", listID.String()),
	)

	return nil
}
