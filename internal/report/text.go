package report

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const textTitle = "PE Import Analysis"

// DangerMarker is appended to dangerous functions in the text report.
const DangerMarker = "[DANGEROUS]"

const textTemplate = `{{ .Title }}
{{ repeat (len .Title) "=" }}
{{- with .Report.Source }}{{ if .Path }}
File: {{ .Path }}
{{- if .Architecture }}
Architecture: {{ .Architecture }}
{{- end }}
{{- if .Subsystem }}
Subsystem: {{ .Subsystem }}
{{- end }}
{{- end }}{{ end }}
{{ range .Report.DLLs }}
{{ .Name }}:
    DLL Explanation: {{ .Summary }}
{{- range .Functions }}
    {{ .Name }} : {{ .Description }}{{ if .Dangerous }} {{ $.Marker }}{{ end }}
{{- end }}
{{- if gt .Omitted 0 }}
    ... ({{ .Omitted }} more {{ plural "function" "functions" .Omitted }})
{{- end }}
{{ end }}
{{- if .Report.MarkDangerous }}
Most Dangerous/Suspicious Functions:
{{- range .Report.Dangerous }}
    {{ .Name }} : {{ .Description }}
{{- else }}
    (none imported)
{{- end }}
{{ end -}}
`

var textTmpl = template.Must(template.New("text").Funcs(sprig.TxtFuncMap()).Parse(textTemplate))

func renderText(w io.Writer, r *Report) error {
	data := struct {
		Title  string
		Marker string
		Report *Report
	}{textTitle, DangerMarker, r}

	if err := textTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("生成文本报告失败: %w", err)
	}
	return nil
}
