package anomaly

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/cost-radar/pkg/models/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultWindowDays is the lookback applied when no window is given.
	DefaultWindowDays = 90

	// DefaultFanOut bounds concurrent usage-series fetches per anomaly,
	// to stay within Cost Explorer rate limits.
	DefaultFanOut = 4

	currencyUSD = "USD"
)

// ErrRepeatedPageToken signals a pagination protocol violation: the
// listing returned a continuation token it already returned before.
var ErrRepeatedPageToken = errors.New("anomaly listing repeated a page token")

// Aggregator drives the anomaly listing, computes per-anomaly derived
// metrics and orchestrates root-cause resolution into a Report.
type Aggregator struct {
	client   CostExplorerAPI
	resolver *Resolver
	logger   zerolog.Logger
	fanOut   int
}

func NewAggregator(client CostExplorerAPI, resolver *Resolver, logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		client:   client,
		resolver: resolver,
		logger:   logger,
		fanOut:   DefaultFanOut,
	}
}

// WithFanOut overrides the per-anomaly root-cause fetch concurrency.
// Values below 1 reset it to the default.
func (a *Aggregator) WithFanOut(n int) *Aggregator {
	if n < 1 {
		n = DefaultFanOut
	}
	a.fanOut = n
	return a
}

// DefaultWindow returns [now - DefaultWindowDays, now] in UTC days.
func DefaultWindow(now time.Time) domain.DateWindow {
	now = now.UTC()
	return domain.DateWindow{
		Start: now.AddDate(0, 0, -DefaultWindowDays),
		End:   now,
	}
}

// Collect pages through every anomaly in the window and returns the
// assembled report. A listing failure or an unparsable listing response
// aborts the run; a failed usage-series lookup only degrades the root
// cause it belongs to.
func (a *Aggregator) Collect(ctx context.Context, window domain.DateWindow) (*domain.Report, error) {
	if window.Start.IsZero() || window.End.IsZero() {
		window = DefaultWindow(time.Now())
	}

	report := &domain.Report{Window: window}
	seen := make(map[string]struct{})

	var token *string
	for {
		result, err := a.client.GetAnomalies(ctx, &costexplorer.GetAnomaliesInput{
			DateInterval: &types.AnomalyDateInterval{
				StartDate: aws.String(window.Start.Format(dateLayout)),
				EndDate:   aws.String(window.End.Format(dateLayout)),
			},
			NextPageToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list anomalies: %w", err)
		}

		for _, raw := range result.Anomalies {
			entry, err := a.buildAnomaly(ctx, raw)
			if err != nil {
				return nil, err
			}
			report.Anomalies = append(report.Anomalies, *entry)
		}

		token = result.NextPageToken
		if !hasNextPage(token) {
			break
		}
		if _, dup := seen[*token]; dup {
			return nil, fmt.Errorf("%w: %q", ErrRepeatedPageToken, *token)
		}
		seen[*token] = struct{}{}
	}

	a.logger.Info().
		Int("anomalies", len(report.Anomalies)).
		Str("start", window.Start.Format(dateLayout)).
		Str("end", window.End.Format(dateLayout)).
		Msg("anomaly collection finished")

	return report, nil
}

// hasNextPage is the pagination termination predicate: the loop stops
// when the listing stops returning a continuation token.
func hasNextPage(token *string) bool {
	return token != nil && *token != ""
}

func (a *Aggregator) buildAnomaly(ctx context.Context, raw types.Anomaly) (*domain.Anomaly, error) {
	id := aws.ToString(raw.AnomalyId)

	start, err := parseAnomalyDate(aws.ToString(raw.AnomalyStartDate))
	if err != nil {
		return nil, fmt.Errorf("anomaly %s: failed to parse start date: %w", id, err)
	}
	end, err := parseAnomalyDate(aws.ToString(raw.AnomalyEndDate))
	if err != nil {
		return nil, fmt.Errorf("anomaly %s: failed to parse end date: %w", id, err)
	}

	duration := int(end.Sub(start).Hours()/24) + 1
	if duration < 1 {
		duration = 1
	}

	var impact float64
	if raw.Impact != nil {
		impact = raw.Impact.TotalImpact
	}

	entry := &domain.Anomaly{
		ID:                 id,
		StartDate:          start,
		EndDate:            end,
		LastDetectedDate:   end,
		DurationDays:       duration,
		TotalImpact:        domain.MoneyFromFloat(impact),
		AverageDailyImpact: averageDailyImpact(impact, duration),
		Currency:           currencyUSD,
		RootCauses:         a.resolveRootCauses(ctx, raw.RootCauses, start, end),
	}

	return entry, nil
}

func averageDailyImpact(impact float64, duration int) domain.Money {
	if duration > 0 {
		return domain.MoneyFromFloat(impact / float64(duration))
	}
	return domain.MoneyFromFloat(impact)
}

// resolveRootCauses fans the per-root-cause lookups out with a bounded
// group. Results land at their original index, so the report keeps the
// order the service returned regardless of completion order.
func (a *Aggregator) resolveRootCauses(
	ctx context.Context,
	raw []types.RootCause,
	start, end time.Time,
) []domain.RootCause {
	if len(raw) == 0 {
		return nil
	}

	resolved := make([]domain.RootCause, len(raw))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.fanOut)
	for i, cause := range raw {
		i, cause := i, cause
		g.Go(func() error {
			resolved[i] = a.resolver.Resolve(ctx, cause, start, end)
			return nil
		})
	}

	// Resolve never returns an error: fetch failures degrade to an
	// empty usage series inside the fetcher.
	_ = g.Wait()

	return resolved
}

// parseAnomalyDate reads the calendar-day part of a listing timestamp,
// ignoring any time-of-day component.
func parseAnomalyDate(s string) (time.Time, error) {
	datePart, _, _ := strings.Cut(s, "T")
	return time.Parse(dateLayout, datePart)
}
