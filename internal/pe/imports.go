package pe

import (
	"bytes"
	"debug/pe"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

const (
	importDescriptorSize = 20 // sizeof(IMAGE_IMPORT_DESCRIPTOR)
	maxThunks            = 10000
	maxNameLen           = 256

	// UnknownDLL names descriptors whose name could not be read.
	UnknownDLL = "unknown_dll"
)

// ImportEntry is one imported function. DLL is lowercase; Function is kept
// as stored in the binary, or Ordinal_<n> for imports by ordinal.
type ImportEntry struct {
	DLL      string
	Function string
}

// ImportInfo contains information about imported DLL and functions.
type ImportInfo struct {
	DLL       string
	Functions []string
}

// ImportDescriptor represents IMAGE_IMPORT_DESCRIPTOR.
type ImportDescriptor struct {
	OriginalFirstThunk uint32 // RVA to Import Name Table (INT).
	TimeDateStamp      uint32 // Usually 0.
	ForwarderChain     uint32 // Usually 0.
	Name               uint32 // RVA to DLL name.
	FirstThunk         uint32 // RVA to Import Address Table (IAT).
}

// ImportFunction represents an imported function.
type ImportFunction struct {
	Name        string
	Ordinal     uint16
	IsByOrdinal bool
}

// DisplayName returns the function name, or Ordinal_<n> for ordinal imports.
func (fn ImportFunction) DisplayName() string {
	if fn.IsByOrdinal {
		return fmt.Sprintf("Ordinal_%d", fn.Ordinal)
	}
	return fn.Name
}

// importReader walks the import directory of an opened PE file.
type importReader struct {
	file   io.ReaderAt
	peFile *pe.File
}

// ExtractImports returns the imported functions of the file in import table
// order. A file without an import directory yields no entries and no error.
func ExtractImports(r *Reader) ([]ImportEntry, error) {
	return extractImports(r.File(), r.RawFile())
}

func extractImports(f *pe.File, raw io.ReaderAt) ([]ImportEntry, error) {
	ir := &importReader{file: raw, peFile: f}

	importDir, ok := ir.importDirectory()
	if !ok {
		return nil, nil
	}

	entries, err := ir.readEntries(importDir)
	if err == nil {
		return entries, nil
	}

	// Descriptor table unreadable; let debug/pe have a go.
	fallback, symErr := symbolImports(f)
	if symErr != nil {
		return nil, fmt.Errorf("读取导入表失败: %w", err)
	}
	return fallback, nil
}

// GroupImports groups entries by DLL, keeping first-appearance order.
func GroupImports(entries []ImportEntry) []ImportInfo {
	index := make(map[string]int)
	var groups []ImportInfo
	for _, e := range entries {
		i, ok := index[e.DLL]
		if !ok {
			i = len(groups)
			index[e.DLL] = i
			groups = append(groups, ImportInfo{DLL: e.DLL})
		}
		groups[i].Functions = append(groups[i].Functions, e.Function)
	}
	return groups
}

// symbolImports uses debug/pe's "Function:DLL" symbol list. It cannot see
// ordinal imports.
func symbolImports(f *pe.File) ([]ImportEntry, error) {
	symbols, err := f.ImportedSymbols()
	if err != nil {
		return nil, err
	}

	entries := make([]ImportEntry, 0, len(symbols))
	for _, symbol := range symbols {
		// Split "FunctionName:DLL.dll" -> ["FunctionName", "DLL.dll"]
		parts := strings.SplitN(symbol, ":", 2)
		if len(parts) != 2 {
			continue
		}
		entries = append(entries, ImportEntry{
			DLL:      normalizeDLLName(parts[1]),
			Function: parts[0],
		})
	}
	return entries, nil
}

func (ir *importReader) readEntries(importDir pe.DataDirectory) ([]ImportEntry, error) {
	descriptors, err := ir.readImportDescriptors(importDir)
	if err != nil {
		return nil, err
	}

	var entries []ImportEntry
	for _, desc := range descriptors {
		dllName, err := ir.readString(desc.Name)
		if err != nil {
			dllName = ""
		}
		dll := normalizeDLLName(dllName)

		functions, err := ir.readImportFunctions(desc)
		if err != nil {
			continue
		}
		for _, fn := range functions {
			name := fn.DisplayName()
			if name == "" {
				continue
			}
			entries = append(entries, ImportEntry{DLL: dll, Function: name})
		}
	}
	return entries, nil
}

// importDirectory returns the Import Table data directory.
func (ir *importReader) importDirectory() (pe.DataDirectory, bool) {
	var importDir pe.DataDirectory

	if oh32, ok := ir.peFile.OptionalHeader.(*pe.OptionalHeader32); ok {
		if len(oh32.DataDirectory) > pe.IMAGE_DIRECTORY_ENTRY_IMPORT {
			importDir = oh32.DataDirectory[pe.IMAGE_DIRECTORY_ENTRY_IMPORT]
		}
	} else if oh64, ok := ir.peFile.OptionalHeader.(*pe.OptionalHeader64); ok {
		if len(oh64.DataDirectory) > pe.IMAGE_DIRECTORY_ENTRY_IMPORT {
			importDir = oh64.DataDirectory[pe.IMAGE_DIRECTORY_ENTRY_IMPORT]
		}
	}

	return importDir, importDir.VirtualAddress != 0
}

// readImportDescriptors reads import descriptors up to the null terminator.
func (ir *importReader) readImportDescriptors(importDir pe.DataDirectory) ([]ImportDescriptor, error) {
	offset, err := ir.rvaToOffset(importDir.VirtualAddress)
	if err != nil {
		return nil, err
	}

	var descriptors []ImportDescriptor
	descData := make([]byte, importDescriptorSize)
	for {
		if _, err := ir.file.ReadAt(descData, int64(offset)); err != nil {
			if len(descriptors) == 0 {
				return nil, fmt.Errorf("读取导入描述符失败: %w", err)
			}
			break
		}

		desc := ImportDescriptor{
			OriginalFirstThunk: binary.LittleEndian.Uint32(descData[0:4]),
			TimeDateStamp:      binary.LittleEndian.Uint32(descData[4:8]),
			ForwarderChain:     binary.LittleEndian.Uint32(descData[8:12]),
			Name:               binary.LittleEndian.Uint32(descData[12:16]),
			FirstThunk:         binary.LittleEndian.Uint32(descData[16:20]),
		}

		// Null descriptor marks end.
		if desc.OriginalFirstThunk == 0 && desc.Name == 0 && desc.FirstThunk == 0 {
			break
		}

		descriptors = append(descriptors, desc)
		offset += importDescriptorSize
	}

	return descriptors, nil
}

// readImportFunctions reads the functions of one descriptor from the INT, or
// from the IAT when the linker left the INT out.
func (ir *importReader) readImportFunctions(desc ImportDescriptor) ([]ImportFunction, error) {
	thunkRVA := desc.OriginalFirstThunk
	if thunkRVA == 0 {
		thunkRVA = desc.FirstThunk
	}
	return ir.readImportThunks(thunkRVA, ir.is64Bit())
}

// readImportThunks reads a null-terminated thunk array.
func (ir *importReader) readImportThunks(rva uint32, is64bit bool) ([]ImportFunction, error) {
	if rva == 0 {
		return nil, fmt.Errorf("invalid RVA")
	}

	offset, err := ir.rvaToOffset(rva)
	if err != nil {
		return nil, err
	}

	var functions []ImportFunction
	ptrSize := uint32(4)
	if is64bit {
		ptrSize = 8
	}
	ordinalFlag := ir.ordinalFlag(is64bit)

	for len(functions) < maxThunks {
		thunkData, err := ir.readThunkValue(offset, is64bit)
		if err != nil || thunkData == 0 {
			break
		}

		functions = append(functions, ir.parseImportFunction(thunkData, ordinalFlag))
		offset += ptrSize
	}

	return functions, nil
}

// readThunkValue reads a single thunk value from file.
func (ir *importReader) readThunkValue(offset uint32, is64bit bool) (uint64, error) {
	size := 4
	if is64bit {
		size = 8
	}

	buf := make([]byte, size)
	if _, err := ir.file.ReadAt(buf, int64(offset)); err != nil {
		return 0, err
	}

	if is64bit {
		return binary.LittleEndian.Uint64(buf), nil
	}
	return uint64(binary.LittleEndian.Uint32(buf)), nil
}

// parseImportFunction parses function information from thunk data.
func (ir *importReader) parseImportFunction(thunkData, ordinalFlag uint64) ImportFunction {
	var fn ImportFunction

	if thunkData&ordinalFlag != 0 {
		fn.IsByOrdinal = true
		fn.Ordinal = uint16(thunkData & 0xFFFF)
		return fn
	}

	nameOffset, err := ir.rvaToOffset(uint32(thunkData))
	if err != nil {
		return fn
	}

	// IMAGE_IMPORT_BY_NAME: a 2-byte hint precedes the name.
	fn.Name = ir.readStringAtOffset(nameOffset + 2)

	return fn
}

func (ir *importReader) ordinalFlag(is64bit bool) uint64 {
	if is64bit {
		return 0x8000000000000000
	}
	return 0x80000000
}

func (ir *importReader) is64Bit() bool {
	_, ok := ir.peFile.OptionalHeader.(*pe.OptionalHeader64)
	return ok
}

// rvaToOffset converts RVA to file offset.
func (ir *importReader) rvaToOffset(rva uint32) (uint32, error) {
	for _, section := range ir.peFile.Sections {
		size := max(section.VirtualSize, section.Size)
		if rva >= section.VirtualAddress && rva-section.VirtualAddress < size {
			return rva - section.VirtualAddress + section.Offset, nil
		}
	}
	return 0, fmt.Errorf("RVA 0x%X 不在任何节区中", rva)
}

// readString reads a null-terminated string at given RVA.
func (ir *importReader) readString(rva uint32) (string, error) {
	offset, err := ir.rvaToOffset(rva)
	if err != nil {
		return "", err
	}
	return ir.readStringAtOffset(offset), nil
}

// readStringAtOffset reads a null-terminated string at file offset.
func (ir *importReader) readStringAtOffset(offset uint32) string {
	var buf bytes.Buffer
	b := make([]byte, 1)

	for buf.Len() < maxNameLen {
		if _, err := ir.file.ReadAt(b, int64(offset)); err != nil {
			break
		}
		if b[0] == 0 {
			break
		}
		buf.WriteByte(b[0])
		offset++
	}

	return buf.String()
}

func normalizeDLLName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return UnknownDLL
	}
	return name
}
