package cli

import (
	"github.com/ZacharyZcR/PEImport/internal/catalog"
	"github.com/ZacharyZcR/PEImport/internal/pe"
	"github.com/ZacharyZcR/PEImport/internal/report"
)

// Extract opens the PE file at path and returns its analysis.
func Extract(path string) (*pe.Info, error) {
	reader, err := pe.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	return pe.NewAnalyzer(reader).Analyze()
}

// BuildReport annotates info's imports and records the source metadata.
func BuildReport(info *pe.Info, cat *catalog.Catalog, opts report.Options) *report.Report {
	return report.Build(info.Imports, cat, opts).WithSource(report.Source{
		Path:         info.FilePath,
		Architecture: info.Architecture,
		Subsystem:    info.Subsystem,
	})
}

// Analyze runs Extract and BuildReport.
func Analyze(path string, cat *catalog.Catalog, opts report.Options) (*pe.Info, *report.Report, error) {
	info, err := Extract(path)
	if err != nil {
		return nil, nil, err
	}
	return info, BuildReport(info, cat, opts), nil
}
