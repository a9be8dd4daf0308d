package anomaly

import (
	"context"
	"maps"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/cost-radar/pkg/models/domain"
)

// TagSource supplies the descriptive labels attached to a root cause.
// The anomaly listing itself carries no tag data, so labels come from an
// external source keyed on the root cause's dimension values.
type TagSource interface {
	Tags(ctx context.Context, dims Dimensions) map[string]string
}

// StaticTagSource labels every root cause with the same fixed set,
// typically loaded from the radar configuration profile.
type StaticTagSource map[string]string

func (s StaticTagSource) Tags(_ context.Context, _ Dimensions) map[string]string {
	return maps.Clone(map[string]string(s))
}

// Resolver converts a raw root-cause record into its domain entity and
// attaches the usage series scoped to the root cause's dimensions.
type Resolver struct {
	fetcher *UsageFetcher
	tags    TagSource
}

func NewResolver(fetcher *UsageFetcher, tags TagSource) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		tags:    tags,
	}
}

// Resolve builds the RootCause entity. Dimension fields are copied
// verbatim with absent values kept as nil, the contribution is formatted
// to two decimals ("0.00" when missing), and the usage series is fetched
// exactly once over the anomaly's date span.
func (r *Resolver) Resolve(ctx context.Context, raw types.RootCause, start, end time.Time) domain.RootCause {
	cause := domain.RootCause{
		Service:           presentValue(raw.Service),
		Region:            presentValue(raw.Region),
		UsageType:         presentValue(raw.UsageType),
		LinkedAccount:     presentValue(raw.LinkedAccount),
		LinkedAccountName: presentValue(raw.LinkedAccountName),
		CostImpact:        domain.ZeroMoney,
	}

	if raw.Impact != nil {
		cause.CostImpact = domain.MoneyFromFloat(raw.Impact.Contribution)
	}

	dims := Dimensions{
		Service:       cause.Service,
		Region:        cause.Region,
		UsageType:     cause.UsageType,
		LinkedAccount: cause.LinkedAccount,
	}

	if r.tags != nil {
		cause.Tags = r.tags.Tags(ctx, dims)
	}

	cause.UsageSeries = r.fetcher.Fetch(ctx, start, end, dims)
	return cause
}

// presentValue maps a missing or empty source field to nil so downstream
// filter building and formatting can branch on presence unambiguously.
func presentValue(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
