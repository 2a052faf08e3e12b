// Package main provides the PEImport GUI application.
package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ZacharyZcR/PEImport/internal/catalog"
	"github.com/ZacharyZcR/PEImport/internal/cli"
	"github.com/ZacharyZcR/PEImport/internal/config"
	"github.com/ZacharyZcR/PEImport/internal/report"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		cfg = config.New()
	}

	myApp := app.New()
	myWindow := myApp.NewWindow("PEImport - PE导入表分析工具")
	myWindow.Resize(fyne.NewSize(900, 700))

	cat, err := cfg.LoadCatalog()
	if err != nil {
		cat = catalog.Default()
	}

	// File path
	filePathEntry := widget.NewEntry()
	filePathEntry.SetPlaceHolder("选择PE文件...")

	// Report preview
	preview := widget.NewMultiLineEntry()
	preview.SetPlaceHolder("报告预览将显示在这里...")
	preview.Wrapping = fyne.TextWrapOff
	preview.Disable()

	statusLabel := widget.NewLabel("就绪")

	dangerousCheck := widget.NewCheck("标记危险/可疑函数", nil)
	dangerousCheck.SetChecked(cfg.Dangerous)
	knownOnlyCheck := widget.NewCheck("只显示已收录的DLL", nil)
	knownOnlyCheck.SetChecked(cfg.KnownOnly)

	formatNames := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		formatNames = append(formatNames, string(f))
	}
	formatSelect := widget.NewSelect(formatNames, nil)
	formatSelect.SetSelected(string(cfg.ReportFormat()))

	// Last rendered report, written by the save button.
	var (
		rendered       []byte
		renderedFormat report.Format
	)

	fileButton := widget.NewButton("选择文件", func() {
		dialog.ShowFileOpen(func(file fyne.URIReadCloser, err error) {
			if err != nil || file == nil {
				return
			}
			defer func() { _ = file.Close() }()
			filePathEntry.SetText(file.URI().Path())
		}, myWindow)
	})

	var saveButton *widget.Button

	analyzeButton := widget.NewButton("分析", func() {
		if filePathEntry.Text == "" {
			dialog.ShowError(errors.New("请先选择PE文件"), myWindow)
			return
		}

		format, err := report.ParseFormat(formatSelect.Selected)
		if err != nil {
			dialog.ShowError(err, myWindow)
			return
		}
		opts := cfg.ReportOptions()
		opts.MarkDangerous = dangerousCheck.Checked
		opts.KnownOnly = knownOnlyCheck.Checked
		path := filePathEntry.Text

		statusLabel.SetText("正在分析...")
		saveButton.Disable()
		go func() {
			text, data, err := analyzePEFile(path, cat, opts, format)
			fyne.Do(func() {
				if err != nil {
					dialog.ShowError(err, myWindow)
					statusLabel.SetText("分析失败")
					return
				}
				rendered, renderedFormat = data, format
				preview.SetText(text)
				saveButton.Enable()
				statusLabel.SetText(fmt.Sprintf("分析完成 (%s, %d 字节)", format, len(data)))
			})
		}()
	})

	saveButton = widget.NewButton("保存报告", func() {
		if rendered == nil {
			return
		}
		save := dialog.NewFileSave(func(file fyne.URIWriteCloser, err error) {
			if err != nil || file == nil {
				return
			}
			defer func() { _ = file.Close() }()
			if _, err := file.Write(rendered); err != nil {
				dialog.ShowError(fmt.Errorf("写入报告失败: %w", err), myWindow)
				return
			}
			statusLabel.SetText("报告已保存: " + file.URI().Path())
		}, myWindow)
		save.SetFileName(reportName(filePathEntry.Text, renderedFormat))
		save.Show()
	})
	saveButton.Disable()

	// Layout
	fileBox := container.NewBorder(nil, nil, nil, fileButton, filePathEntry)
	optionsBox := container.NewHBox(
		dangerousCheck,
		knownOnlyCheck,
		widget.NewLabel("格式:"),
		formatSelect,
	)

	mainContent := container.NewBorder(
		container.NewVBox(
			widget.NewLabel("PE文件路径:"),
			fileBox,
			optionsBox,
			widget.NewSeparator(),
			container.NewGridWithColumns(2, analyzeButton, saveButton),
		),
		container.NewVBox(
			widget.NewSeparator(),
			statusLabel,
		),
		nil,
		nil,
		container.NewScroll(preview),
	)

	myWindow.SetContent(mainContent)
	myWindow.ShowAndRun()
}

// analyzePEFile returns a text preview and the report rendered in format.
// Binary formats are previewed as text.
func analyzePEFile(path string, cat *catalog.Catalog, opts report.Options, format report.Format) (string, []byte, error) {
	_, rep, err := cli.Analyze(path, cat, opts)
	if err != nil {
		return "", nil, err
	}

	data, err := report.RenderBytes(rep, format)
	if err != nil {
		return "", nil, err
	}
	if format == report.FormatPDF {
		text, err := report.RenderBytes(rep, report.FormatText)
		if err != nil {
			return "", nil, err
		}
		return string(text), data, nil
	}
	return string(data), data, nil
}

func reportName(path string, f report.Format) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + f.Ext()
}
