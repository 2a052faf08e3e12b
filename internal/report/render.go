package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Format is an output format.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatPDF      Format = "pdf"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatHTML, FormatMarkdown, FormatJSON, FormatPDF}
}

// ParseFormat parses a format name or common file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "text", "txt", "":
		return FormatText, nil
	case "html", "htm":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("未知的输出格式: %s (可选: text, html, markdown, json, pdf)", s)
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	case FormatPDF:
		return ".pdf"
	default:
		return ".txt"
	}
}

// Render writes r to w in format f. Output is a pure function of r and f.
func Render(w io.Writer, r *Report, f Format) error {
	switch f {
	case FormatText:
		return renderText(w, r)
	case FormatHTML:
		return renderHTML(w, r)
	case FormatMarkdown:
		return renderMarkdown(w, r)
	case FormatJSON:
		return renderJSON(w, r)
	case FormatPDF:
		return renderPDF(w, r)
	default:
		return fmt.Errorf("未知的输出格式: %s", f)
	}
}

// RenderBytes renders r into memory.
func RenderBytes(r *Report, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, r, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
