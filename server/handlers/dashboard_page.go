package handlers

import "html/template"

const DASHBOARD_TITLE = "Info Vis Dashboard"

// The page is a fixed tree: each output region is an iframe whose URL carries
// the current control values, and the form re-submits them on change.
const dashboardPageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 1.5em; }
.row { display: flex; flex-wrap: wrap; gap: 2em; }
.eight.columns { flex: 2; min-width: 600px; }
.four.columns { flex: 1; min-width: 400px; }
iframe { border: none; width: 100%; height: 560px; }
table { border-collapse: collapse; font-size: 0.9em; }
td, th { border: 1px solid #ccc; padding: 2px 6px; text-align: right; }
pre { background: #f6f6f6; padding: 1em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<form id="controls" method="get" action="/" onchange="this.submit()">
<div class="row">
  <div class="eight columns">
    <h1>Dot Plot</h1>
    <div>Temperature against month, filtered by cloud cover.</div>
    <iframe id="{{.DotPlotRegion}}" src="{{.DotPlotURL}}"></iframe>
    <div id="{{.CloudsControl}}">
      <input type="range" name="cloud_min" min="{{.CloudLow}}" max="{{.CloudHigh}}" step="{{.SliderStep}}" value="{{.State.Clouds.Min}}" list="cloud-marks"
        oninput="this.value = Math.min(+this.value, +this.form.cloud_max.value)">
      <input type="range" name="cloud_max" min="{{.CloudLow}}" max="{{.CloudHigh}}" step="{{.SliderStep}}" value="{{.State.Clouds.Max}}" list="cloud-marks"
        oninput="this.value = Math.max(+this.value, +this.form.cloud_min.value)">
      <datalist id="cloud-marks">{{range .SliderMarks}}<option value="{{.}}" label="{{.}}"></option>{{end}}</datalist>
      <span>{{.State.Clouds.Min}}% to {{.State.Clouds.Max}}%</span>
    </div>
    <h6>Drag Slider to Filter Based On Clouds (%)</h6>
  </div>
  <div class="four columns">
    <h1>Box Plot</h1>
    <div>Temperature distribution over the selected dates.</div>
    <iframe id="{{.BoxPlotRegion}}" src="{{.BoxPlotURL}}"></iframe>
    <input id="{{.DateStartControl}}" type="date" name="start_date" min="{{.DateLow}}" max="{{.DateHigh}}" value="{{.StartDate}}">
    <input id="{{.DateEndControl}}" type="date" name="end_date" min="{{.DateLow}}" max="{{.DateHigh}}" value="{{.EndDate}}">
  </div>
</div>
<div class="row">
  <div class="eight columns">
    <h1>Line Chart</h1>
    <div>Temperature for each weather condition, wind rose and feels-like scatter.</div>
    <iframe src="{{.StaticURL}}" style="height: 1700px"></iframe>
  </div>
</div>
<div class="row">
  <div class="eight columns">
    <h1>Summary Statistics</h1>
    <select id="{{.FeatureControl}}" name="feature">
    {{range .Features}}<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
    {{end}}</select>
    <pre id="{{.SummaryRegion}}">{{.SummaryText}}</pre>
    <h3>Numeric columns</h3>
    <table>
      <tr><th>variable</th><th>count</th><th>mean</th><th>std</th><th>min</th><th>25%</th><th>50%</th><th>75%</th><th>max</th></tr>
      {{range .NumericTable}}<tr><th>{{.Variable}}</th><td>{{.Count}}</td><td>{{printf "%.2f" .Mean}}</td><td>{{printf "%.2f" .Std}}</td><td>{{printf "%.2f" .Min}}</td><td>{{printf "%.2f" .P25}}</td><td>{{printf "%.2f" .P50}}</td><td>{{printf "%.2f" .P75}}</td><td>{{printf "%.2f" .Max}}</td></tr>
      {{end}}
    </table>
    <h3>Categorical columns</h3>
    <table>
      <tr><th>variable</th><th>count</th><th>unique</th><th>top</th><th>freq</th></tr>
      {{range .CategoricalTable}}<tr><th>{{.Variable}}</th><td>{{.Count}}</td><td>{{.Unique}}</td><td>{{.Top}}</td><td>{{.Freq}}</td></tr>
      {{end}}
    </table>
  </div>
</div>
</form>
</body>
</html>
`

var dashboardPage = template.Must(template.New("dashboard").Parse(dashboardPageTemplate))
