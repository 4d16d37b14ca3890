package shopping

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// fakeListRepo is an in-memory ShoppingListRepository for tests.
type fakeListRepo struct {
	lists map[uuid.UUID]*shopping.SavedList
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{lists: make(map[uuid.UUID]*shopping.SavedList)}
}

func (r *fakeListRepo) Create(ctx context.Context, list *shopping.SavedList) error {
	r.lists[list.ID] = list
	return nil
}

func (r *fakeListRepo) Update(ctx context.Context, list *shopping.SavedList) error {
	r.lists[list.ID] = list
	return nil
}

func (r *fakeListRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.lists, id)
	return nil
}

func (r *fakeListRepo) FindByID(ctx context.Context, id uuid.UUID) (*shopping.SavedList, error) {
	return r.lists[id], nil
}

func (r *fakeListRepo) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*shopping.SavedList, int, error) {
	var all []*shopping.SavedList
	for _, list := range r.lists {
		if list.UserID == userID {
			all = append(all, list)
		}
	}
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

type ShoppingServiceTestSuite struct {
	suite.Suite
	repo    *fakeListRepo
	service inbound.ShoppingService
	userID  uuid.UUID
}

func (s *ShoppingServiceTestSuite) SetupTest() {
	s.repo = newFakeListRepo()
	s.userID = uuid.New()
	s.service = NewShoppingService(s.repo, Defaults{
		TaxRegion:        "US-NY",
		Currency:         "USD",
		CurrencySymbol:   "$",
		CurrencyPosition: "before",
		DecimalPlaces:    2,
	}, zap.NewNop())
}

func TestShoppingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShoppingServiceTestSuite))
}

func (s *ShoppingServiceTestSuite) TestCalculateTotalsAdHocList() {
	list := shopping.NewList([]shopping.Item{
		{Name: "Milk", Category: "Dairy", Amount: shopping.Num(2), Price: shopping.Num(3.50)},
	})

	totals, err := s.service.CalculateTotals(context.Background(), inbound.CalculateTotalsCommand{
		UserID: s.userID,
		List:   list,
		Options: shopping.Options{
			TaxableCategories: []string{"Dairy"},
		},
	})

	s.Require().NoError(err)
	s.InDelta(7.00, totals.Subtotal, 1e-9)
	s.InDelta(0.56, totals.TaxAmount, 1e-9)
	s.InDelta(7.56, totals.Total, 1e-9)
}

func (s *ShoppingServiceTestSuite) TestCalculateTotalsEmptyCommand() {
	totals, err := s.service.CalculateTotals(context.Background(), inbound.CalculateTotalsCommand{
		UserID: s.userID,
	})

	s.Require().NoError(err)
	s.Zero(totals.Total)
	s.Zero(totals.TotalItems)
}

func (s *ShoppingServiceTestSuite) TestCalculateTotalsSavedListUsesStoredBudget() {
	saved, err := s.service.SaveList(context.Background(), inbound.SaveListCommand{
		UserID: s.userID,
		Name:   "Weekly run",
		Items: []shopping.Item{
			{Name: "Bread", Price: shopping.Num(4)},
		},
		Budget: 50,
	})
	s.Require().NoError(err)

	totals, err := s.service.CalculateTotals(context.Background(), inbound.CalculateTotalsCommand{
		UserID: s.userID,
		ListID: &saved.ID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(totals.BudgetRemaining)
	s.InDelta(46, *totals.BudgetRemaining, 1e-9)
}

func (s *ShoppingServiceTestSuite) TestCalculateTotalsForeignListRejected() {
	saved, err := s.service.SaveList(context.Background(), inbound.SaveListCommand{
		UserID: s.userID,
		Name:   "Mine",
	})
	s.Require().NoError(err)

	otherUser := uuid.New()
	_, err = s.service.CalculateTotals(context.Background(), inbound.CalculateTotalsCommand{
		UserID: otherUser,
		ListID: &saved.ID,
	})

	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeInsufficientPermissions, appErr.Code)
}

func (s *ShoppingServiceTestSuite) TestCalculateTotalsUnknownList() {
	missing := uuid.New()
	_, err := s.service.CalculateTotals(context.Background(), inbound.CalculateTotalsCommand{
		UserID: s.userID,
		ListID: &missing,
	})

	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeListNotFound, appErr.Code)
}

func (s *ShoppingServiceTestSuite) TestExportTotalsTextFormat() {
	list := shopping.NewList([]shopping.Item{
		{Name: "Milk", Price: shopping.Num(3.50)},
	})

	text, summary, err := s.service.ExportTotals(context.Background(), inbound.ExportTotalsCommand{
		CalculateTotalsCommand: inbound.CalculateTotalsCommand{
			UserID: s.userID,
			List:   list,
		},
		Format: shopping.FormatText,
	})

	s.Require().NoError(err)
	s.Nil(summary)
	s.Contains(text, "Shopping List Totals")
	s.Contains(text, "TOTAL:")
}

func (s *ShoppingServiceTestSuite) TestExportTotalsSummaryFormat() {
	list := shopping.NewList([]shopping.Item{
		{Name: "Milk", Price: shopping.Num(3.50)},
	})

	text, summary, err := s.service.ExportTotals(context.Background(), inbound.ExportTotalsCommand{
		CalculateTotalsCommand: inbound.CalculateTotalsCommand{
			UserID: s.userID,
			List:   list,
		},
		Format: "json",
	})

	s.Require().NoError(err)
	s.Empty(text)
	s.Require().NotNil(summary)
	s.Equal("$3.50", summary.Total)
}

func (s *ShoppingServiceTestSuite) TestSaveListRequiresName() {
	_, err := s.service.SaveList(context.Background(), inbound.SaveListCommand{
		UserID: s.userID,
	})

	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeValidationFailed, appErr.Code)
}

func (s *ShoppingServiceTestSuite) TestListListsPagination() {
	for i := 0; i < 3; i++ {
		_, err := s.service.SaveList(context.Background(), inbound.SaveListCommand{
			UserID: s.userID,
			Name:   "List",
		})
		s.Require().NoError(err)
	}

	page, err := s.service.ListLists(context.Background(), s.userID, inbound.PaginationParams{
		Page:     0,
		PageSize: 2,
	})

	s.Require().NoError(err)
	s.Len(page.Lists, 2)
	s.Equal(3, page.Total)
	s.Equal(2, page.TotalPages)
}

func (s *ShoppingServiceTestSuite) TestDeleteList() {
	saved, err := s.service.SaveList(context.Background(), inbound.SaveListCommand{
		UserID: s.userID,
		Name:   "Short lived",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteList(context.Background(), saved.ID, s.userID))

	err = s.service.DeleteList(context.Background(), saved.ID, s.userID)
	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeListNotFound, appErr.Code)
}
