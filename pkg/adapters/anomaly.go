package adapters

import (
	"maps"

	"github.com/de-tools/cost-radar/pkg/models/api"
	"github.com/de-tools/cost-radar/pkg/models/domain"
)

const dateLayout = "2006-01-02"

func MapReportDomainToApi(report *domain.Report) api.Report {
	apiReport := api.Report{
		StartDate: report.Window.Start.Format(dateLayout),
		EndDate:   report.Window.End.Format(dateLayout),
		Anomalies: make([]api.Anomaly, 0, len(report.Anomalies)),
	}

	for _, a := range report.Anomalies {
		apiReport.Anomalies = append(apiReport.Anomalies, MapAnomalyDomainToApi(a))
	}

	return apiReport
}

func MapAnomalyDomainToApi(a domain.Anomaly) api.Anomaly {
	apiAnomaly := api.Anomaly{
		AnomalyID:        a.ID,
		StartDate:        a.StartDate.Format(dateLayout),
		EndDate:          a.EndDate.Format(dateLayout),
		LastDetectedDate: a.LastDetectedDate.Format(dateLayout),
		DurationInDays:   a.DurationDays,
		TotalCostImpact:  a.TotalImpact.String(),
		AverageDailyCost: a.AverageDailyImpact.String(),
		Currency:         a.Currency,
		RootCauses:       make([]api.RootCause, 0, len(a.RootCauses)),
	}

	for _, rc := range a.RootCauses {
		apiAnomaly.RootCauses = append(apiAnomaly.RootCauses, MapRootCauseDomainToApi(rc))
	}

	return apiAnomaly
}

func MapRootCauseDomainToApi(rc domain.RootCause) api.RootCause {
	apiCause := api.RootCause{
		Service:           rc.Service,
		Region:            rc.Region,
		UsageType:         rc.UsageType,
		LinkedAccount:     rc.LinkedAccount,
		LinkedAccountName: rc.LinkedAccountName,
		Tags:              maps.Clone(rc.Tags),
		CostImpact:        rc.CostImpact.String(),
		CostUsageGraph:    make([]api.UsagePoint, 0, len(rc.UsageSeries)),
	}

	for _, p := range rc.UsageSeries {
		apiCause.CostUsageGraph = append(apiCause.CostUsageGraph, api.UsagePoint{
			Date:   p.Date,
			Amount: p.Amount,
			Unit:   p.Unit,
		})
	}

	return apiCause
}
