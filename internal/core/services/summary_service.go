package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// uncategorizedLabel is used for expenses whose category is no longer in
// the active category list. Categories may be retired after expenses
// reference them, so this is a fallback, not an error.
const uncategorizedLabel = "Uncategorized"

// monthKey identifies a month-view session.
type monthKey struct {
	year  int
	month int
}

// monthSnapshot holds the last fetched state of one month view. On a
// failed refresh the previous data is kept (stale-but-present) and the
// first error encountered is recorded.
type monthSnapshot struct {
	state       domain.MonthViewState
	err         error
	collections []domain.DailyCollection
	expenses    []domain.Expense
	categories  []domain.ExpenseCategory
	sales       []domain.ProductSale
	salaries    []domain.Salary
}

// summaryService composes the derived monthly financial summary from the
// other aggregators' fetches. Derived figures are computed by pure
// functions over the latest snapshot, not by the store.
type summaryService struct {
	BaseService
	collectionSvc portssvc.CollectionSvcFacade
	expenseSvc    portssvc.ExpenseSvcFacade
	saleSvc       portssvc.ProductSaleSvcFacade
	salarySvc     portssvc.SalarySvcFacade

	mu    sync.Mutex
	views map[monthKey]*monthSnapshot
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(
	collectionSvc portssvc.CollectionSvcFacade,
	expenseSvc portssvc.ExpenseSvcFacade,
	saleSvc portssvc.ProductSaleSvcFacade,
	salarySvc portssvc.SalarySvcFacade,
) portssvc.SummarySvcFacade {
	return &summaryService{
		collectionSvc: collectionSvc,
		expenseSvc:    expenseSvc,
		saleSvc:       saleSvc,
		salarySvc:     salarySvc,
		views:         make(map[monthKey]*monthSnapshot),
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// Refresh re-runs the month's sub-fetches concurrently and swaps the
// snapshot on success. The category fetch is a background concern: its
// failure is logged and an empty list kept rather than failing the
// refresh. Of the remaining fetches the first error encountered wins and
// the previous snapshot data stays in place.
func (s *summaryService) Refresh(ctx context.Context, year, month int) error {
	if _, _, err := monthBounds(year, month); err != nil {
		return err
	}

	key := monthKey{year: year, month: month}
	s.setState(key, domain.ViewLoading)

	var (
		collections []domain.DailyCollection
		expenses    []domain.Expense
		categories  []domain.ExpenseCategory
		sales       []domain.ProductSale
		salaries    []domain.Salary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		collections, err = s.collectionSvc.FetchMonth(gctx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.expenseSvc.FetchMonth(gctx, year, month)
		if err != nil {
			return err
		}
		categories, err = s.expenseSvc.ListCategories(gctx)
		if err != nil {
			s.LogWarn(gctx, "Category refresh failed, continuing with empty list", slog.String("error", err.Error()))
			categories = []domain.ExpenseCategory{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sales, err = s.saleSvc.FetchMonth(gctx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		salaries, err = s.salarySvc.FetchMonth(gctx, year, month)
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Month refresh failed", slog.Int("year", year), slog.Int("month", month))
		s.setError(key, err)
		return fmt.Errorf("failed to refresh month %d-%02d: %w", year, month, err)
	}

	s.mu.Lock()
	s.views[key] = &monthSnapshot{
		state:       domain.ViewReady,
		collections: collections,
		expenses:    expenses,
		categories:  categories,
		sales:       sales,
		salaries:    salaries,
	}
	s.mu.Unlock()

	s.LogInfo(ctx, "Month refreshed",
		slog.Int("year", year), slog.Int("month", month),
		slog.Int("collections", len(collections)), slog.Int("expenses", len(expenses)),
		slog.Int("sales", len(sales)), slog.Int("salaries", len(salaries)))
	return nil
}

// Compose derives the summary for (year, month) from the latest snapshot,
// refreshing first when the month has not been fetched yet. A failed
// refresh does not fail composition: the response carries the view error
// alongside whatever data was last successfully fetched.
func (s *summaryService) Compose(ctx context.Context, year, month int) (dto.MonthlySummaryResponse, error) {
	if _, _, err := monthBounds(year, month); err != nil {
		return dto.MonthlySummaryResponse{}, err
	}

	key := monthKey{year: year, month: month}
	if s.snapshot(key) == nil {
		// First composition for this month; refresh errors are reflected
		// in the snapshot state rather than propagated.
		_ = s.Refresh(ctx, year, month)
	}

	snap := s.snapshot(key)
	summary := deriveSummary(year, month, snap.collections, snap.expenses, snap.categories, snap.sales)
	return dto.ToMonthlySummaryResponse(summary, snap.state, snap.err), nil
}

func (s *summaryService) snapshot(key monthKey) *monthSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views[key]
}

func (s *summaryService) setState(key monthKey, state domain.MonthViewState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.views[key]
	if !ok {
		snap = &monthSnapshot{
			collections: []domain.DailyCollection{},
			expenses:    []domain.Expense{},
			categories:  []domain.ExpenseCategory{},
			sales:       []domain.ProductSale{},
			salaries:    []domain.Salary{},
		}
		s.views[key] = snap
	}
	snap.state = state
	snap.err = nil
}

func (s *summaryService) setError(key monthKey, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.views[key]
	snap.state = domain.ViewErrored
	snap.err = err
}

// deriveSummary computes the monthly summary from already-fetched state.
// It performs no store calls.
func deriveSummary(
	year, month int,
	collections []domain.DailyCollection,
	expenses []domain.Expense,
	categories []domain.ExpenseCategory,
	sales []domain.ProductSale,
) domain.MonthlySummary {
	totalCollection := decimalSumCollections(collections)
	totalExpenses := decimalSumExpenses(expenses)
	salesTotal := decimalSumSales(sales)
	totalSalary := totalCollection.Mul(payableShare)

	totalIncome := totalCollection.Add(salesTotal)
	totalDeductions := totalExpenses.Add(totalSalary)

	return domain.MonthlySummary{
		Year:               year,
		Month:              month,
		TotalCollection:    totalCollection,
		TotalExpenses:      totalExpenses,
		TotalSalary:        totalSalary,
		ProductSalesTotal:  salesTotal,
		ExpensesByCategory: groupExpensesByCategory(expenses, categories),
		FinalBalance:       totalIncome.Sub(totalDeductions),
	}
}

// groupExpensesByCategory totals expenses per category_id, labeling groups
// whose category is missing from the active list as Uncategorized, and
// sorts the groups by descending total. Ties keep their relative order.
func groupExpensesByCategory(expenses []domain.Expense, categories []domain.ExpenseCategory) []domain.CategoryTotal {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.CategoryID] = c.Name
	}

	index := make(map[string]int)
	groups := make([]domain.CategoryTotal, 0)
	for _, e := range expenses {
		i, ok := index[e.CategoryID]
		if !ok {
			name, found := names[e.CategoryID]
			if !found {
				name = uncategorizedLabel
			}
			i = len(groups)
			index[e.CategoryID] = i
			groups = append(groups, domain.CategoryTotal{CategoryID: e.CategoryID, Name: name})
		}
		groups[i].Total = groups[i].Total.Add(e.Amount)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Total.GreaterThan(groups[b].Total)
	})
	return groups
}
