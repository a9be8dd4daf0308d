package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/de-tools/cost-radar/pkg/models/api"
	"github.com/de-tools/cost-radar/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.Report {
	service := "Amazon Elastic Compute Cloud - Compute"
	region := "us-east-1"
	return &domain.Report{
		Window: domain.DateWindow{
			Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		Anomalies: []domain.Anomaly{
			{
				ID:                 "anomaly-1",
				StartDate:          time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				EndDate:            time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
				LastDetectedDate:   time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
				DurationDays:       3,
				TotalImpact:        "30.00",
				AverageDailyImpact: "10.00",
				Currency:           "USD",
				RootCauses: []domain.RootCause{
					{
						Service:    &service,
						Region:     &region,
						CostImpact: "30.00",
						UsageSeries: []domain.UsagePoint{
							{Date: "2024-02-01", Amount: "10.00", Unit: "USD"},
							{Date: "2024-02-02", Amount: "12.00", Unit: "USD"},
							{Date: "2024-02-03", Amount: "8.00", Unit: "USD"},
						},
					},
				},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "", expected: FormatTable},
		{input: "table", expected: FormatTable},
		{input: "JSON", expected: FormatJSON},
		{input: "html", expected: FormatHTML},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(sampleReport(), FormatJSON))

	var decoded api.Report
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "2024-01-01", decoded.StartDate)
	require.Len(t, decoded.Anomalies, 1)
	assert.Equal(t, "anomaly-1", decoded.Anomalies[0].AnomalyID)
	require.Len(t, decoded.Anomalies[0].RootCauses, 1)
	assert.Len(t, decoded.Anomalies[0].RootCauses[0].CostUsageGraph, 3)
}

func TestReporter_Table(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(sampleReport(), FormatTable))

	out := buf.String()
	assert.Contains(t, out, "anomaly-1")
	assert.Contains(t, out, "2024-02-01 to 2024-02-03")
	assert.Contains(t, out, "Amazon Elastic Compute Cloud - Compute / us-east-1")
	assert.Contains(t, out, "3 usage points")
}

func TestReporter_HTML(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(sampleReport(), FormatHTML))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "anomaly-1")
}
