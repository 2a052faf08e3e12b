// Package cli provides command-line interface utilities.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ZacharyZcR/PEImport/internal/pe"
	"github.com/ZacharyZcR/PEImport/internal/report"
)

// Reporter prints a coloured console summary of an import report.
type Reporter struct {
	w       io.Writer
	info    *pe.Info
	rep     *report.Report
	verbose bool
}

// NewReporter creates a new reporter for the given analysis and report.
func NewReporter(w io.Writer, info *pe.Info, rep *report.Report) *Reporter {
	return &Reporter{w: w, info: info, rep: rep}
}

// SetVerbose enables verbose mode (list every function).
func (r *Reporter) SetVerbose(verbose bool) {
	r.verbose = verbose
}

// Print outputs the summary.
func (r *Reporter) Print() {
	r.printHeader()
	r.printBasicInfo()
	r.printImports()
	if r.rep.MarkDangerous {
		r.printDangerous()
	}
}

// PrintSaved reports where the rendered report was written.
func (r *Reporter) PrintSaved(path string, size int) {
	green := color.New(color.FgGreen, color.Bold)
	_, _ = green.Fprintf(r.w, "\n✓ 报告已保存: %s (%s)\n", path, formatSize(int64(size)))
}

func (r *Reporter) printHeader() {
	cyan := color.New(color.FgCyan, color.Bold)
	_, _ = cyan.Fprintln(r.w, "\n╔════════════════════════════════════════╗")
	_, _ = cyan.Fprintln(r.w, "║          PEImport 导入分析             ║")
	_, _ = cyan.Fprintln(r.w, "╚════════════════════════════════════════╝")
}

func (r *Reporter) printBasicInfo() {
	if r.info == nil {
		return
	}
	yellow := color.New(color.FgYellow, color.Bold)
	_, _ = yellow.Fprintln(r.w, "\n【基本信息】")

	fmt.Fprintf(r.w, "  %-20s: %s\n", "文件路径", r.info.FilePath)
	fmt.Fprintf(r.w, "  %-20s: %s\n", "文件大小", formatSize(r.info.FileSize))
	fmt.Fprintf(r.w, "  %-20s: %s\n", "架构", r.info.Architecture)
	fmt.Fprintf(r.w, "  %-20s: %s\n", "子系统", r.info.Subsystem)
}

func (r *Reporter) printImports() {
	yellow := color.New(color.FgYellow, color.Bold)
	_, _ = yellow.Fprintf(r.w, "\n【导入表】(共 %d 个DLL, %d 个函数)\n", len(r.rep.DLLs), r.rep.FunctionCount())

	if len(r.rep.DLLs) == 0 {
		fmt.Fprintln(r.w, "  未发现导入")
		return
	}

	green := color.New(color.FgGreen)
	gray := color.New(color.FgHiBlack)
	red := color.New(color.FgRed, color.Bold)

	for i, dll := range r.rep.DLLs {
		funcs := realFunctions(dll.Functions)
		_, _ = green.Fprintf(r.w, "  %3d. %s (%d 个函数)", i+1, dll.Name, len(funcs)+dll.Omitted)
		var tags []string
		if dll.System {
			tags = append(tags, "系统")
		}
		if !dll.Known {
			tags = append(tags, "未收录")
		}
		if len(tags) > 0 {
			_, _ = gray.Fprintf(r.w, " [%s]", strings.Join(tags, ", "))
		}
		fmt.Fprintln(r.w)

		maxDisplay := 10
		if r.verbose {
			maxDisplay = len(funcs)
		}
		displayCount := min(len(funcs), maxDisplay)

		for _, fn := range funcs[:displayCount] {
			if fn.Dangerous {
				_, _ = red.Fprintf(r.w, "       - %s %s\n", fn.Name, report.DangerMarker)
				continue
			}
			fmt.Fprintf(r.w, "       - %s\n", fn.Name)
		}

		if hidden := len(funcs) - displayCount + dll.Omitted; hidden > 0 {
			_, _ = gray.Fprintf(r.w, "       ... (还有 %d 个函数)\n", hidden)
		}
	}
}

func (r *Reporter) printDangerous() {
	yellow := color.New(color.FgYellow, color.Bold)
	_, _ = yellow.Fprintf(r.w, "\n【危险函数】(共 %d 个)\n", len(r.rep.Dangerous))

	if len(r.rep.Dangerous) == 0 {
		green := color.New(color.FgGreen)
		_, _ = green.Fprintln(r.w, "  ✓ 未发现危险函数")
		return
	}

	red := color.New(color.FgRed, color.Bold)
	for _, fn := range r.rep.Dangerous {
		_, _ = red.Fprintf(r.w, "  ⚠ %s", fn.Name)
		fmt.Fprintf(r.w, ": %s\n", fn.Description)
	}
}

func realFunctions(fns []report.Function) []report.Function {
	out := make([]report.Function, 0, len(fns))
	for _, fn := range fns {
		if !fn.Placeholder {
			out = append(out, fn)
		}
	}
	return out
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
