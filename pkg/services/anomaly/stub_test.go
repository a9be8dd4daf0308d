package anomaly

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
)

// stubCostExplorer is a hand-rolled CostExplorerAPI double. It records
// every call (root-cause fetches run concurrently, hence the mutex) and
// delegates to the configured functions.
type stubCostExplorer struct {
	mu sync.Mutex

	anomaliesFn func(in *costexplorer.GetAnomaliesInput) (*costexplorer.GetAnomaliesOutput, error)
	usageFn     func(in *costexplorer.GetCostAndUsageInput) (*costexplorer.GetCostAndUsageOutput, error)

	anomalyCalls []*costexplorer.GetAnomaliesInput
	usageCalls   []*costexplorer.GetCostAndUsageInput
}

func (s *stubCostExplorer) GetAnomalies(
	_ context.Context,
	in *costexplorer.GetAnomaliesInput,
	_ ...func(*costexplorer.Options),
) (*costexplorer.GetAnomaliesOutput, error) {
	s.mu.Lock()
	s.anomalyCalls = append(s.anomalyCalls, in)
	s.mu.Unlock()
	return s.anomaliesFn(in)
}

func (s *stubCostExplorer) GetCostAndUsage(
	_ context.Context,
	in *costexplorer.GetCostAndUsageInput,
	_ ...func(*costexplorer.Options),
) (*costexplorer.GetCostAndUsageOutput, error) {
	s.mu.Lock()
	s.usageCalls = append(s.usageCalls, in)
	s.mu.Unlock()
	return s.usageFn(in)
}

func (s *stubCostExplorer) usageCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.usageCalls)
}

func strPtr(s string) *string {
	return &s
}

// filterService digs the SERVICE clause value out of a usage filter, for
// stubs that answer differently per root cause.
func filterService(expr *types.Expression) string {
	if expr == nil {
		return ""
	}
	if expr.Dimensions != nil && expr.Dimensions.Key == types.DimensionService {
		return expr.Dimensions.Values[0]
	}
	for _, clause := range expr.And {
		if clause.Dimensions != nil && clause.Dimensions.Key == types.DimensionService {
			return clause.Dimensions.Values[0]
		}
	}
	return ""
}

func dailyBucket(date, amount, unit string) types.ResultByTime {
	next := date // callers only assert on Start; End stays synthetic
	return types.ResultByTime{
		TimePeriod: &types.DateInterval{Start: &date, End: &next},
		Total: map[string]types.MetricValue{
			"UnblendedCost": {Amount: &amount, Unit: &unit},
		},
	}
}
