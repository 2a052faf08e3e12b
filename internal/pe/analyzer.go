package pe

import (
	"debug/pe"
	"fmt"
)

// Info contains analyzed PE file information.
type Info struct {
	FilePath     string
	FileSize     int64
	Architecture string
	Subsystem    string
	Imports      []ImportEntry
}

// Analyzer extracts information from PE files.
type Analyzer struct {
	reader *Reader
}

// NewAnalyzer creates a new analyzer for the given reader.
func NewAnalyzer(r *Reader) *Analyzer {
	return &Analyzer{reader: r}
}

// Analyze extracts header metadata and the import list.
func (a *Analyzer) Analyze() (*Info, error) {
	f := a.reader.File()

	info := &Info{
		FilePath:     a.reader.FilePath(),
		FileSize:     a.reader.FileSize(),
		Architecture: getArchitecture(f.Machine),
	}

	switch opt := f.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		info.Subsystem = getSubsystem(opt.Subsystem)
	case *pe.OptionalHeader64:
		info.Subsystem = getSubsystem(opt.Subsystem)
	}

	imports, err := ExtractImports(a.reader)
	if err != nil {
		return nil, err
	}
	info.Imports = imports

	return info, nil
}

// DLLs groups the imports by DLL.
func (info *Info) DLLs() []ImportInfo {
	return GroupImports(info.Imports)
}

func getArchitecture(machine uint16) string {
	switch machine {
	case pe.IMAGE_FILE_MACHINE_I386:
		return "x86 (32-bit)"
	case pe.IMAGE_FILE_MACHINE_AMD64:
		return "x64 (64-bit)"
	case pe.IMAGE_FILE_MACHINE_ARM, pe.IMAGE_FILE_MACHINE_ARMNT:
		return "ARM"
	case pe.IMAGE_FILE_MACHINE_ARM64:
		return "ARM64"
	default:
		return fmt.Sprintf("Unknown (0x%X)", machine)
	}
}

func getSubsystem(subsystem uint16) string {
	switch subsystem {
	case pe.IMAGE_SUBSYSTEM_WINDOWS_GUI:
		return "Windows GUI"
	case pe.IMAGE_SUBSYSTEM_WINDOWS_CUI:
		return "Windows Console"
	case pe.IMAGE_SUBSYSTEM_NATIVE:
		return "Native"
	case pe.IMAGE_SUBSYSTEM_EFI_APPLICATION:
		return "EFI Application"
	default:
		return fmt.Sprintf("Unknown (0x%X)", subsystem)
	}
}
