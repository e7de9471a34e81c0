package calculation

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatchPreservesOrder(t *testing.T) {
	engine := NewEngine(engineAsOf)

	items := make([]BatchItem, 20)
	for i := range items {
		emp := testEmployee()
		emp.ID = fmt.Sprintf("emp-%03d", i)
		items[i] = BatchItem{Employee: emp, Period: testPeriod()}
	}

	results, err := engine.RunBatch(context.Background(), items, 4)
	require.NoError(t, err)
	require.Len(t, results, 20)

	for i, result := range results {
		assert.Equal(t, fmt.Sprintf("emp-%03d", i), result.EmployeeID)
	}
}

func TestRunBatchMatchesSingleCalculation(t *testing.T) {
	engine := NewEngine(engineAsOf)

	single, err := engine.Calculate(testEmployee(), testPeriod(), nil)
	require.NoError(t, err)

	batch, err := engine.RunBatch(context.Background(), []BatchItem{
		{Employee: testEmployee(), Period: testPeriod()},
	}, 0)
	require.NoError(t, err)
	require.Len(t, batch, 1)

	assert.Equal(t, single, batch[0])
}

func TestRunBatchPropagatesItemErrors(t *testing.T) {
	engine := NewEngine(engineAsOf)

	bad := testEmployee()
	bad.BasicSalary = decimal.NewFromInt(-1)

	items := []BatchItem{
		{Employee: testEmployee(), Period: testPeriod()},
		{Employee: bad, Period: testPeriod()},
	}

	_, err := engine.RunBatch(context.Background(), items, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch item 1")
}

func TestRunBatchHonorsContextCancellation(t *testing.T) {
	engine := NewEngine(engineAsOf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]BatchItem, 50)
	for i := range items {
		items[i] = BatchItem{Employee: testEmployee(), Period: testPeriod()}
	}

	_, err := engine.RunBatch(ctx, items, 1)
	assert.Error(t, err)
}

func TestRunBatchEmptyInput(t *testing.T) {
	engine := NewEngine(engineAsOf)

	results, err := engine.RunBatch(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}
