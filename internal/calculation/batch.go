package calculation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nhamdan/ksapay/internal/domain"
)

// BatchItem is one (employee, period, policy) triple in a payroll run.
type BatchItem struct {
	Employee *domain.EmployeeRecord
	Period   *domain.PayPeriodRecord
	Policy   *domain.CompanyPolicyRecord
}

// RunBatch computes payroll for every item concurrently. Calculations are
// pure functions of their inputs, so the run is an embarrassingly parallel
// map: results are order-preserving and the first failing item cancels the
// rest. Workers of zero or less means no concurrency limit.
func (e *Engine) RunBatch(ctx context.Context, items []BatchItem, workers int) ([]*domain.PayrollResult, error) {
	results := make([]*domain.PayrollResult, len(items))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := e.Calculate(item.Employee, item.Period, item.Policy)
			if err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
