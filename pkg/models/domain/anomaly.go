package domain

import "time"

// UsagePoint is one daily cost bucket attributed to a root cause.
// Amount and Unit keep the raw values returned by the billing API.
type UsagePoint struct {
	Date   string
	Amount string
	Unit   string
}

// RootCause is one attributed contributor to an anomaly's total impact.
// Dimension fields are nil when the billing service reported no value;
// nil is distinct from an empty string and means "absent".
type RootCause struct {
	Service           *string
	Region            *string
	UsageType         *string
	LinkedAccount     *string
	LinkedAccountName *string
	CostImpact        Money
	Tags              map[string]string
	UsageSeries       []UsagePoint
}

// Anomaly is a detected cost deviation over an inclusive date range.
type Anomaly struct {
	ID                 string
	StartDate          time.Time
	EndDate            time.Time
	LastDetectedDate   time.Time
	DurationDays       int
	TotalImpact        Money
	AverageDailyImpact Money
	Currency           string
	RootCauses         []RootCause
}

// DateWindow is an inclusive calendar-day range, UTC.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Report is the result of one aggregation run. Anomalies keep the order
// they arrived in across listing pages; nothing is re-sorted downstream.
type Report struct {
	Window    DateWindow
	Anomalies []Anomaly
}
