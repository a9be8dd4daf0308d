package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/de-tools/cost-radar/pkg/adapters"
	"github.com/de-tools/cost-radar/pkg/models/domain"
)

// htmlReport is a self-contained static report page: one section per
// anomaly with its summary, root-cause tables and usage rows. Chart
// widgets and client-side filtering stay with the consuming side.
const htmlReport = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>AWS Cost Anomalies Report</title>
<style>
  body { font-family: Arial, sans-serif; padding: 20px; background: #f7f9fa; }
  h1 { text-align: center; color: #2c3e50; }
  .anomaly { background: #fff; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.07);
             margin: 0 auto 20px; max-width: 90%; padding: 20px; }
  .anomaly h2 { font-size: 1em; color: #4682b4; margin-top: 0; }
  table { border-collapse: collapse; width: 100%; margin-bottom: 16px; }
  th, td { border: 1px solid #ddd; padding: 8px; text-align: left; font-size: 0.9em; }
  th { background: #e6f0f7; color: #2c3e50; text-transform: uppercase; font-size: 0.8em; }
  .impact { color: #e74c3c; font-weight: 600; }
  .tag { background: #e9ecef; border-radius: 4px; padding: 2px 6px; margin-right: 6px;
         font-size: 0.85em; display: inline-block; }
</style>
</head>
<body>
<h1>AWS Cost Anomalies Report</h1>
<p style="text-align:center">{{.StartDate}} to {{.EndDate}} &mdash; {{len .Anomalies}} anomalies</p>
{{range .Anomalies}}
<div class="anomaly">
  <h2>{{.AnomalyID}}</h2>
  <table>
    <tr><th>Date Range</th><th>Duration</th><th>Total Cost Impact</th><th>Average Daily Cost</th><th>Currency</th></tr>
    <tr>
      <td>{{.StartDate}} to {{.EndDate}}</td>
      <td>{{.DurationInDays}} days</td>
      <td class="impact">${{.TotalCostImpact}}</td>
      <td>${{.AverageDailyCost}}</td>
      <td>{{.Currency}}</td>
    </tr>
  </table>
  {{range .RootCauses}}
  <table>
    <tr><th>Service</th><th>Region</th><th>Usage Type</th><th>Linked Account</th><th>Cost Impact</th><th>Tags</th></tr>
    <tr>
      <td>{{with .Service}}{{.}}{{end}}</td>
      <td>{{with .Region}}{{.}}{{end}}</td>
      <td>{{with .UsageType}}{{.}}{{end}}</td>
      <td>{{with .LinkedAccount}}{{.}}{{end}}{{with .LinkedAccountName}} ({{.}}){{end}}</td>
      <td class="impact">${{.CostImpact}}</td>
      <td>{{range $k, $v := .Tags}}<span class="tag">{{$k}}: {{$v}}</span>{{end}}</td>
    </tr>
  </table>
  {{if .CostUsageGraph}}
  <table>
    <tr><th>Date</th><th>Amount</th><th>Unit</th></tr>
    {{range .CostUsageGraph}}
    <tr><td>{{.Date}}</td><td>{{.Amount}}</td><td>{{.Unit}}</td></tr>
    {{end}}
  </table>
  {{end}}
  {{end}}
</div>
{{end}}
</body>
</html>
`

func (r *Reporter) writeHTML(w io.Writer, report *domain.Report) error {
	t, err := template.New("html-report").Parse(htmlReport)
	if err != nil {
		return fmt.Errorf("failed to parse html template: %w", err)
	}

	return t.Execute(w, adapters.MapReportDomainToApi(report))
}
