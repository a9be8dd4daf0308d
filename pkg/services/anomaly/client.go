package anomaly

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
)

// CostExplorerAPI captures the two Cost Explorer calls the pipeline
// issues: the paginated anomaly listing and the cost-and-usage lookup.
// *costexplorer.Client satisfies it in production.
type CostExplorerAPI interface {
	GetAnomalies(
		ctx context.Context,
		params *costexplorer.GetAnomaliesInput,
		optFns ...func(*costexplorer.Options),
	) (*costexplorer.GetAnomaliesOutput, error)

	GetCostAndUsage(
		ctx context.Context,
		params *costexplorer.GetCostAndUsageInput,
		optFns ...func(*costexplorer.Options),
	) (*costexplorer.GetCostAndUsageOutput, error)
}
