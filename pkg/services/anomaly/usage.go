package anomaly

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/cost-radar/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	dateLayout          = "2006-01-02"
	metricUnblendedCost = "UnblendedCost"

	defaultAmount = "0"
	defaultUnit   = "USD"
)

// Dimensions holds the optional constraints a usage lookup is scoped to.
// A nil (or empty) value means the dimension is unconstrained.
type Dimensions struct {
	Service       *string
	Region        *string
	UsageType     *string
	LinkedAccount *string
}

// UsageFetcher retrieves the daily cost series matching a set of
// dimension constraints over an inclusive date range.
type UsageFetcher struct {
	client CostExplorerAPI
	logger zerolog.Logger
}

func NewUsageFetcher(client CostExplorerAPI, logger zerolog.Logger) *UsageFetcher {
	return &UsageFetcher{
		client: client,
		logger: logger,
	}
}

// Fetch returns one UsagePoint per daily bucket the billing API reports,
// in response order, without gap-filling. A failed lookup is logged and
// degrades to an empty series; it never propagates, so a single root
// cause cannot abort the anomaly it belongs to.
func (f *UsageFetcher) Fetch(ctx context.Context, start, end time.Time, dims Dimensions) []domain.UsagePoint {
	result, err := f.client.GetCostAndUsage(ctx, buildUsageInput(start, end, dims))
	if err != nil {
		f.logger.Error().
			Err(err).
			Str("service", deref(dims.Service)).
			Str("region", deref(dims.Region)).
			Str("usage_type", deref(dims.UsageType)).
			Str("linked_account", deref(dims.LinkedAccount)).
			Msg("failed to fetch usage series for root cause")
		return nil
	}

	points := make([]domain.UsagePoint, 0, len(result.ResultsByTime))
	for _, bucket := range result.ResultsByTime {
		point := domain.UsagePoint{
			Amount: defaultAmount,
			Unit:   defaultUnit,
		}
		if bucket.TimePeriod != nil {
			point.Date = aws.ToString(bucket.TimePeriod.Start)
		}
		if metric, ok := bucket.Total[metricUnblendedCost]; ok {
			if metric.Amount != nil {
				point.Amount = *metric.Amount
			}
			if metric.Unit != nil {
				point.Unit = *metric.Unit
			}
		}
		points = append(points, point)
	}

	return points
}

func buildUsageInput(start, end time.Time, dims Dimensions) *costexplorer.GetCostAndUsageInput {
	return &costexplorer.GetCostAndUsageInput{
		TimePeriod: &types.DateInterval{
			Start: aws.String(start.Format(dateLayout)),
			// The API treats the end bound as exclusive; advance it one
			// day so the anomaly's last day is included.
			End: aws.String(end.AddDate(0, 0, 1).Format(dateLayout)),
		},
		Granularity: types.GranularityDaily,
		Metrics:     []string{metricUnblendedCost},
		Filter:      buildFilter(dims),
	}
}

// buildFilter produces the filter expression the billing API expects:
// nil when no dimension is present, a single equality clause for one,
// and an And over the equality clauses for two or more. Clauses are
// emitted in the fixed order SERVICE, REGION, USAGE_TYPE, LINKED_ACCOUNT.
func buildFilter(dims Dimensions) *types.Expression {
	var clauses []types.Expression

	add := func(key types.Dimension, value *string) {
		if value == nil || *value == "" {
			return
		}
		clauses = append(clauses, types.Expression{
			Dimensions: &types.DimensionValues{
				Key:    key,
				Values: []string{*value},
			},
		})
	}

	add(types.DimensionService, dims.Service)
	add(types.DimensionRegion, dims.Region)
	add(types.DimensionUsageType, dims.UsageType)
	add(types.DimensionLinkedAccount, dims.LinkedAccount)

	switch len(clauses) {
	case 0:
		return nil
	case 1:
		return &clauses[0]
	default:
		return &types.Expression{And: clauses}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
