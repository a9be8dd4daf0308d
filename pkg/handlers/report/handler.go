package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/cost-radar/pkg/adapters"
	"github.com/de-tools/cost-radar/pkg/models/domain"
	"github.com/de-tools/cost-radar/pkg/services/anomaly"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// Collector runs one aggregation pass over the anomaly listing.
type Collector interface {
	Collect(ctx context.Context, window domain.DateWindow) (*domain.Report, error)
}

type Handler struct {
	collector Collector
}

func NewHandler(collector Collector) *Handler {
	return &Handler{collector: collector}
}

// GetAnomalies serves the assembled report for the requested window.
// Query params `from` and `to` are YYYY-MM-DD; both default to the
// standard 90-day lookback.
func (h *Handler) GetAnomalies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	window, err := parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.collector.Collect(ctx, window)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("anomaly collection failed")
		http.Error(w, "failed to collect anomalies", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(report))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode anomaly report")
	}
}

func parseWindow(r *http.Request) (domain.DateWindow, error) {
	window := anomaly.DefaultWindow(time.Now())

	if from := r.URL.Query().Get("from"); from != "" {
		start, err := time.Parse(dateLayout, from)
		if err != nil {
			return domain.DateWindow{}, err
		}
		window.Start = start
	}

	if to := r.URL.Query().Get("to"); to != "" {
		end, err := time.Parse(dateLayout, to)
		if err != nil {
			return domain.DateWindow{}, err
		}
		window.End = end
	}

	if window.End.Before(window.Start) {
		return domain.DateWindow{}, fmt.Errorf("window end %s is before start %s",
			window.End.Format(dateLayout), window.Start.Format(dateLayout))
	}

	return window, nil
}
