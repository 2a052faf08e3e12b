package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"
)

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
body { font-family: sans-serif; }
table { border-collapse: collapse; width: 90%; margin: 10px; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; }
tr.dangerous td { background-color: #fde8e8; }
tr.placeholder td { color: #999; }
span.marker { color: #c00; font-weight: bold; }
</style>
</head>
<body>
<h1>{{ .Title }}</h1>
{{- with .Report.Source }}{{ if .Path }}
<table>
<tr><th>File</th><td>{{ .Path }}</td></tr>
{{- if .Architecture }}
<tr><th>Architecture</th><td>{{ .Architecture }}</td></tr>
{{- end }}
{{- if .Subsystem }}
<tr><th>Subsystem</th><td>{{ .Subsystem }}</td></tr>
{{- end }}
</table>
{{- end }}{{ end }}
{{- range .Report.DLLs }}
<h2>{{ .Name }}</h2>
<p><strong>DLL Explanation:</strong> {{ .Summary }}</p>
<table>
<tr><th>API Function</th><th>Explanation</th></tr>
{{- range .Functions }}
<tr{{ if .Dangerous }} class="dangerous"{{ else if .Placeholder }} class="placeholder"{{ end }}><td>{{ .Name }}{{ if .Dangerous }} <span class="marker">{{ $.Marker }}</span>{{ end }}</td><td>{{ .Description }}</td></tr>
{{- end }}
</table>
{{- if gt .Omitted 0 }}
<p>... {{ .Omitted }} more {{ plural "function" "functions" .Omitted }}</p>
{{- end }}
{{- end }}
{{- if .Report.MarkDangerous }}
<h2>Most Dangerous/Suspicious Functions</h2>
<table>
<tr><th>API Function</th><th>Explanation</th></tr>
{{- range .Report.Dangerous }}
<tr class="dangerous"><td>{{ .Name }}</td><td>{{ .Description }}</td></tr>
{{- else }}
<tr><td colspan="2">(none imported)</td></tr>
{{- end }}
</table>
{{- end }}
</body>
</html>
`

var htmlTmpl = template.Must(template.New("html").Funcs(sprig.HtmlFuncMap()).Parse(htmlTemplate))

func renderHTML(w io.Writer, r *Report) error {
	data := struct {
		Title  string
		Marker string
		Report *Report
	}{textTitle, DangerMarker, r}

	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("生成HTML报告失败: %w", err)
	}
	return nil
}
