package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/bytedance/sonic"
	"github.com/de-tools/cost-radar/pkg/adapters"
	"github.com/de-tools/cost-radar/pkg/models/domain"
)

// Format selects the report rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatHTML  Format = "html"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected table, json or html)", s)
	}
}

type TableConfig struct {
	IDWidth     int
	PeriodWidth int
	DaysWidth   int
	AmountWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		IDWidth:     40,
		PeriodWidth: 26,
		DaysWidth:   6,
		AmountWidth: 14,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// Handle renders the report to the reporter's writer.
func (r *Reporter) Handle(report *domain.Report, format Format) error {
	return r.HandleTo(r.writer, report, format)
}

// HandleTo renders the report to an explicit writer, e.g. an output file.
func (r *Reporter) HandleTo(w io.Writer, report *domain.Report, format Format) error {
	switch format {
	case FormatJSON:
		return r.writeJSON(w, report)
	case FormatHTML:
		return r.writeHTML(w, report)
	default:
		return r.writeTable(w, report)
	}
}

func (r *Reporter) writeJSON(w io.Writer, report *domain.Report) error {
	data, err := sonic.MarshalIndent(adapters.MapReportDomainToApi(report), "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = w.Write(append(data, '\n'))
	return err
}

func (r *Reporter) writeTable(w io.Writer, report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(id, period string, days interface{}, total, avg string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*v | %*s | %*s |",
				r.config.IDWidth, id,
				r.config.PeriodWidth, period,
				r.config.DaysWidth, days,
				r.config.AmountWidth, total,
				r.config.AmountWidth, avg)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+",
				strings.Repeat("-", r.config.IDWidth+2),
				strings.Repeat("-", r.config.PeriodWidth+2),
				strings.Repeat("-", r.config.DaysWidth+2),
				strings.Repeat("-", r.config.AmountWidth+2),
				strings.Repeat("-", r.config.AmountWidth+2))
		},
		"dims": func(values ...*string) string {
			var present []string
			for _, v := range values {
				if v != nil {
					present = append(present, *v)
				}
			}
			if len(present) == 0 {
				return "(no dimensions)"
			}
			return strings.Join(present, " / ")
		},
	}

	tmpl := `
AWS Cost Anomalies ({{len .Anomalies}} found)

Window: {{.StartDate}} to {{.EndDate}}

{{separator}}
{{formatRow "Anomaly" "Period" "Days" "Total (USD)" "Avg / Day"}}
{{separator}}
{{range .Anomalies}}{{formatRow .AnomalyID (printf "%s to %s" .StartDate .EndDate) .DurationInDays .TotalCostImpact .AverageDailyCost}}
{{end}}{{separator}}
{{range .Anomalies}}
=== {{.AnomalyID}} ===
{{range .RootCauses}}  - {{dims .Service .Region .UsageType .LinkedAccount}}: ${{.CostImpact}} ({{len .CostUsageGraph}} usage points)
{{end}}{{end}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(w, adapters.MapReportDomainToApi(report))
}
