package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
)

func renderMarkdown(w io.Writer, r *Report) error {
	md := markdown.NewMarkdown(w)

	md.H1(textTitle)
	md.PlainText("")

	if src := r.Source; src.Path != "" {
		rows := [][]string{{"File", "`" + src.Path + "`"}}
		if src.Architecture != "" {
			rows = append(rows, []string{"Architecture", src.Architecture})
		}
		if src.Subsystem != "" {
			rows = append(rows, []string{"Subsystem", src.Subsystem})
		}
		md.Table(markdown.TableSet{Header: []string{"Property", "Value"}, Rows: rows})
		md.PlainText("")
	}

	for _, dll := range r.DLLs {
		writeMarkdownDLL(md, dll)
	}

	if r.MarkDangerous {
		writeMarkdownDangerous(md, r.Dangerous)
	}

	if err := md.Build(); err != nil {
		return fmt.Errorf("生成Markdown报告失败: %w", err)
	}
	return nil
}

func writeMarkdownDLL(md *markdown.Markdown, dll DLL) {
	md.H2(dll.Name)
	md.PlainText("")
	md.PlainText("**DLL Explanation:** " + dll.Summary)
	md.PlainText("")

	rows := make([][]string, 0, len(dll.Functions))
	for _, fn := range dll.Functions {
		name := "`" + fn.Name + "`"
		if fn.Dangerous {
			name += " " + DangerMarker
		}
		rows = append(rows, []string{name, fn.Description})
	}
	md.Table(markdown.TableSet{Header: []string{"API Function", "Explanation"}, Rows: rows})
	md.PlainText("")

	if dll.Omitted > 0 {
		md.PlainTextf("_... %d more functions_", dll.Omitted)
		md.PlainText("")
	}
}

func writeMarkdownDangerous(md *markdown.Markdown, fns []Function) {
	md.H2("Most Dangerous/Suspicious Functions")
	md.PlainText("")

	if len(fns) == 0 {
		md.Note("No dangerous or suspicious functions are imported.")
		md.PlainText("")
		return
	}

	md.Warningf("%d dangerous or suspicious function(s) imported.", len(fns))
	md.PlainText("")

	rows := make([][]string, 0, len(fns))
	for _, fn := range fns {
		rows = append(rows, []string{"`" + fn.Name + "`", fn.Description})
	}
	md.Table(markdown.TableSet{Header: []string{"API Function", "Explanation"}, Rows: rows})
	md.PlainText("")
}
