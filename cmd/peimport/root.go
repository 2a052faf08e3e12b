package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ZacharyZcR/PEImport/internal/cli"
	"github.com/ZacharyZcR/PEImport/internal/config"
	"github.com/ZacharyZcR/PEImport/internal/report"
)

// NewRootCmd creates the root command. Running it with a file path analyses
// that file.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peimport <path_to_pe_file>",
		Short: "PE导入表分析工具",
		Long: `PEImport 读取Windows PE文件的导入表, 为每个DLL和导入函数附加说明,
并生成文本、HTML、Markdown、JSON或PDF格式的报告。

在终端中运行且未指定 -y 时, 会交互式询问是否标记危险函数、输出格式和文件名。`,
		Args:          cobra.ExactArgs(1),
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnalyze,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "详细模式: 输出调试日志并列出所有函数")
	cmd.PersistentFlags().String("config", "", "配置文件路径 (默认: "+config.DefaultPath()+")")
	cmd.PersistentFlags().String("catalog", "", "附加的YAML描述文件, 合并到内置描述表")

	flags := cmd.Flags()
	flags.Bool("html", false, "输出HTML报告 (等同于 --format html)")
	flags.Bool("dangerous", false, "标记危险/可疑函数并生成汇总")
	flags.StringP("format", "f", "", "报告格式: text, html, markdown, json, pdf")
	flags.StringP("output", "o", "", "报告输出文件 (默认: <文件名>.<扩展名>)")
	flags.BoolP("yes", "y", false, "不询问, 直接使用参数和配置")
	flags.Int("min-functions", 0, "用占位项将每个DLL的函数列表补齐到N项")
	flags.Int("max-per-dll", 0, "每个DLL最多列出的函数数量 (0 表示不限制)")
	flags.Bool("known-only", false, "只列出描述表中收录的DLL")

	cmd.AddCommand(NewCatalogCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		red := color.New(color.FgRed, color.Bold)
		_, _ = red.Fprintf(os.Stderr, "\n错误: %v\n\n", err)
		os.Exit(1)
	}
}

// setupLogger creates a logger based on verbosity.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// loadConfig loads the configuration file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog, _ = flags.GetString("catalog")
	}
	if flags.Lookup("format") == nil {
		// Subcommands only share the persistent flags.
		return cfg, cfg.Validate()
	}
	if flags.Changed("dangerous") {
		cfg.Dangerous, _ = flags.GetBool("dangerous")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("html") {
		html, _ := flags.GetBool("html")
		switch {
		case html:
			cfg.Format = string(report.FormatHTML)
		case cfg.ReportFormat() == report.FormatHTML:
			cfg.Format = string(report.FormatText)
		}
	}
	if flags.Changed("min-functions") {
		cfg.MinFunctions, _ = flags.GetInt("min-functions")
	}
	if flags.Changed("max-per-dll") {
		cfg.MaxPerDLL, _ = flags.GetInt("max-per-dll")
	}
	if flags.Changed("known-only") {
		cfg.KnownOnly, _ = flags.GetBool("known-only")
	}
	return cfg, cfg.Validate()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	a := &analysis{
		path:        args[0],
		cfg:         cfg,
		output:      mustString(cmd, "output"),
		verbose:     verbose,
		out:         cmd.OutOrStdout(),
		logger:      logger,
		askDanger:   !cmd.Flags().Changed("dangerous"),
		askFormat:   !cmd.Flags().Changed("format") && !cmd.Flags().Changed("html"),
		interactive: !yes && cli.IsInteractive(os.Stdin),
	}
	if a.interactive {
		a.prompter = cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return a.run()
}

// analysis is one analyse-and-write run.
type analysis struct {
	path    string
	cfg     *config.Config
	output  string
	verbose bool
	out     io.Writer
	logger  *slog.Logger

	interactive bool
	askDanger   bool
	askFormat   bool
	prompter    *cli.Prompter
}

func (a *analysis) run() error {
	cat, err := a.cfg.LoadCatalog()
	if err != nil {
		return err
	}
	a.logger.Debug("catalog loaded", "dlls", cat.Len(), "overlay", a.cfg.Catalog)

	info, err := cli.Extract(a.path)
	if err != nil {
		return err
	}
	a.logger.Debug("imports extracted", "file", info.FilePath, "dlls", len(info.DLLs()), "imports", len(info.Imports))

	if a.interactive {
		if err := a.prompt(); err != nil {
			return err
		}
	}

	format := a.cfg.ReportFormat()
	output := a.output
	if output == "" {
		output = defaultOutput(a.cfg.OutputDir, a.path, format)
		if a.interactive {
			if output, err = a.prompter.Ask("输出文件名", output); err != nil {
				return err
			}
		}
	}

	rep := cli.BuildReport(info, cat, a.cfg.ReportOptions())

	reporter := cli.NewReporter(a.out, info, rep)
	reporter.SetVerbose(a.verbose)
	reporter.Print()

	data, err := report.RenderBytes(rep, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil { //nolint:gosec // reports are meant to be shared
		return fmt.Errorf("写入报告失败: %w", err)
	}
	a.logger.Debug("report written", "path", output, "format", format, "bytes", len(data))

	reporter.PrintSaved(output, len(data))
	return nil
}

// prompt asks for the settings not fixed on the command line.
func (a *analysis) prompt() error {
	if a.askDanger {
		ok, err := a.prompter.Confirm("是否标记危险/可疑函数?", a.cfg.Dangerous)
		if err != nil {
			return err
		}
		a.cfg.Dangerous = ok
	}
	if a.askFormat {
		html, err := a.prompter.Confirm("是否保存为HTML?", a.cfg.ReportFormat() == report.FormatHTML)
		if err != nil {
			return err
		}
		if html {
			a.cfg.Format = string(report.FormatHTML)
		} else if a.cfg.ReportFormat() == report.FormatHTML {
			a.cfg.Format = string(report.FormatText)
		}
	}
	return nil
}

// defaultOutput names the report after the input file: dir/<base>.<ext>.
func defaultOutput(dir, path string, f report.Format) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, base+f.Ext())
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
