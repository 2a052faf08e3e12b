package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ZacharyZcR/PEImport/internal/catalog"
)

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [dll]",
		Short: "显示内置的DLL/函数描述表",
		Long: `不带参数时列出描述表中的所有DLL。
指定DLL时列出其全部函数说明, 并用占位项补齐到 --min 项 (默认取配置 catalog_min)。`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCatalog,
	}

	cmd.Flags().Int("min", catalog.DefaultMinFunctions, "函数列表补齐到的项数 (0 表示不补齐)")
	cmd.Flags().Bool("all", false, "输出所有DLL的完整函数列表")
	cmd.Flags().Bool("dangerous", false, "列出危险/可疑函数名单")

	return cmd
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := cfg.LoadCatalog()
	if err != nil {
		return err
	}

	target := cfg.CatalogMin
	if cmd.Flags().Changed("min") {
		target, _ = cmd.Flags().GetInt("min")
	}
	if target < 0 {
		return fmt.Errorf("--min 不能为负数: %d", target)
	}

	out := cmd.OutOrStdout()

	if dangerous, _ := cmd.Flags().GetBool("dangerous"); dangerous {
		printDangerousSet(out, cat)
		return nil
	}

	if len(args) == 1 {
		entry, ok := cat.Lookup(args[0])
		if !ok {
			return fmt.Errorf("描述表中没有 %s", args[0])
		}
		printEntry(out, entry.Padded(target))
		return nil
	}

	if all, _ := cmd.Flags().GetBool("all"); all {
		for i, entry := range cat.Entries() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printEntry(out, entry.Padded(target))
		}
		return nil
	}

	green := color.New(color.FgGreen)
	for i, entry := range cat.Entries() {
		_, _ = green.Fprintf(out, "%3d. %-14s", i+1, entry.Name)
		fmt.Fprintf(out, " (%d) %s\n", len(entry.Functions), entry.Summary)
	}
	return nil
}

func printEntry(w io.Writer, entry catalog.Entry) {
	fmt.Fprintf(w, "%s:\n", entry.Name)
	fmt.Fprintf(w, "    DLL Explanation: %s\n", entry.Summary)
	for _, fn := range entry.Functions {
		fmt.Fprintf(w, "    %s : %s\n", fn.Name, fn.Description)
	}
}

func printDangerousSet(w io.Writer, cat *catalog.Catalog) {
	red := color.New(color.FgRed, color.Bold)
	for _, name := range catalog.DangerousFunctions() {
		_, _ = red.Fprint(w, name)
		if desc, ok := cat.Search(name); ok {
			fmt.Fprintf(w, " : %s", desc)
		}
		fmt.Fprintln(w)
	}
}
