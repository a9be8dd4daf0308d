package api

// UsagePoint mirrors domain.UsagePoint for serialization. Field names
// follow the established report document layout consumed by the
// rendering side.
type UsagePoint struct {
	Date   string `json:"Date"`
	Amount string `json:"Amount"`
	Unit   string `json:"Unit"`
}

type RootCause struct {
	Service           *string           `json:"Service"`
	Region            *string           `json:"Region"`
	UsageType         *string           `json:"UsageType"`
	LinkedAccount     *string           `json:"LinkedAccount"`
	LinkedAccountName *string           `json:"LinkedAccountName"`
	Tags              map[string]string `json:"Tags"`
	CostImpact        string            `json:"CostImpact"`
	CostUsageGraph    []UsagePoint      `json:"CostUsageGraph"`
}

type Anomaly struct {
	AnomalyID        string      `json:"AnomalyId"`
	StartDate        string      `json:"StartDate"`
	EndDate          string      `json:"EndDate"`
	LastDetectedDate string      `json:"LastDetectedDate"`
	DurationInDays   int         `json:"DurationInDays"`
	TotalCostImpact  string      `json:"TotalCostImpact"`
	AverageDailyCost string      `json:"AverageDailyCost"`
	Currency         string      `json:"Currency"`
	RootCauses       []RootCause `json:"RootCauses"`
}

type Report struct {
	StartDate string    `json:"StartDate"`
	EndDate   string    `json:"EndDate"`
	Anomalies []Anomaly `json:"Anomalies"`
}
