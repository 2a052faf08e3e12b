// Package petest builds minimal PE images with an import table for tests.
package petest

import (
	"bytes"
	"debug/pe"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

const (
	headerSize  = 0x200
	sectionRVA  = 0x1000
	fileAlign   = 0x200
	sectionAlgn = 0x1000
)

// DLL describes one import descriptor.
type DLL struct {
	Name      string
	Functions []string
	Ordinals  []uint16
}

// Image describes the PE to build.
type Image struct {
	Is32Bit   bool
	Subsystem uint16
	DLLs      []DLL
	// NoINT leaves OriginalFirstThunk zero so only the IAT lists functions.
	NoINT bool
	// NoImportDirectory leaves the import data directory empty.
	NoImportDirectory bool
	// ImportRVA overrides the import directory RVA.
	ImportRVA uint32
}

// Build returns the bytes of a PE file with a single .idata section.
func Build(img Image) []byte {
	ptrSize := 8
	if img.Is32Bit {
		ptrSize = 4
	}

	section, descSize := buildImportSection(img, ptrSize)

	var buf bytes.Buffer
	dos := make([]byte, 0x40)
	dos[0], dos[1] = 'M', 'Z'
	binary.LittleEndian.PutUint32(dos[0x3c:], 0x40)
	buf.Write(dos)
	buf.WriteString("PE\x00\x00")

	importDir := pe.DataDirectory{VirtualAddress: sectionRVA, Size: uint32(descSize)}
	if img.ImportRVA != 0 {
		importDir.VirtualAddress = img.ImportRVA
	}
	if img.NoImportDirectory {
		importDir = pe.DataDirectory{}
	}

	subsystem := img.Subsystem
	if subsystem == 0 {
		subsystem = pe.IMAGE_SUBSYSTEM_WINDOWS_CUI
	}
	sizeOfImage := uint32(sectionRVA + align(len(section), sectionAlgn))

	var optional any
	machine := uint16(pe.IMAGE_FILE_MACHINE_AMD64)
	if img.Is32Bit {
		machine = pe.IMAGE_FILE_MACHINE_I386
		oh := pe.OptionalHeader32{
			Magic:               0x10b,
			ImageBase:           0x400000,
			SectionAlignment:    sectionAlgn,
			FileAlignment:       fileAlign,
			SizeOfImage:         sizeOfImage,
			SizeOfHeaders:       headerSize,
			Subsystem:           subsystem,
			NumberOfRvaAndSizes: 16,
		}
		oh.DataDirectory[pe.IMAGE_DIRECTORY_ENTRY_IMPORT] = importDir
		optional = &oh
	} else {
		oh := pe.OptionalHeader64{
			Magic:               0x20b,
			ImageBase:           0x140000000,
			SectionAlignment:    sectionAlgn,
			FileAlignment:       fileAlign,
			SizeOfImage:         sizeOfImage,
			SizeOfHeaders:       headerSize,
			Subsystem:           subsystem,
			NumberOfRvaAndSizes: 16,
		}
		oh.DataDirectory[pe.IMAGE_DIRECTORY_ENTRY_IMPORT] = importDir
		optional = &oh
	}

	fh := pe.FileHeader{
		Machine:              machine,
		NumberOfSections:     1,
		SizeOfOptionalHeader: uint16(binary.Size(optional)),
		Characteristics:      pe.IMAGE_FILE_EXECUTABLE_IMAGE,
	}
	mustWrite(&buf, fh)
	mustWrite(&buf, optional)

	sh := pe.SectionHeader32{
		Name:             [8]uint8{'.', 'i', 'd', 'a', 't', 'a'},
		VirtualSize:      uint32(len(section)),
		VirtualAddress:   sectionRVA,
		SizeOfRawData:    uint32(len(section)),
		PointerToRawData: headerSize,
		Characteristics:  pe.IMAGE_SCN_CNT_INITIALIZED_DATA | pe.IMAGE_SCN_MEM_READ | pe.IMAGE_SCN_MEM_WRITE,
	}
	mustWrite(&buf, sh)

	buf.Write(make([]byte, headerSize-buf.Len()))
	buf.Write(section)
	return buf.Bytes()
}

// WriteFile builds img into a file under t.TempDir and returns its path.
func WriteFile(t testing.TB, name string, img Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, Build(img), 0o600); err != nil {
		t.Fatalf("write PE fixture: %v", err)
	}
	return path
}

// buildImportSection lays out descriptors, thunk arrays, hint/name entries
// and DLL names, in that order.
func buildImportSection(img Image, ptrSize int) ([]byte, int) {
	descSize := (len(img.DLLs) + 1) * 20
	pos := descSize

	thunkOff := make([]int, len(img.DLLs))
	for i, d := range img.DLLs {
		thunkOff[i] = pos
		pos += (len(d.Functions) + len(d.Ordinals) + 1) * ptrSize
	}

	nameOff := make([][]int, len(img.DLLs))
	for i, d := range img.DLLs {
		for _, fn := range d.Functions {
			nameOff[i] = append(nameOff[i], pos)
			pos += 2 + len(fn) + 1
		}
	}

	dllOff := make([]int, len(img.DLLs))
	for i, d := range img.DLLs {
		dllOff[i] = pos
		pos += len(d.Name) + 1
	}

	data := make([]byte, align(pos, fileAlign))
	le := binary.LittleEndian
	rva := func(off int) uint32 { return uint32(sectionRVA + off) }

	for i, d := range img.DLLs {
		desc := data[i*20:]
		if !img.NoINT {
			le.PutUint32(desc[0:], rva(thunkOff[i]))
		}
		le.PutUint32(desc[12:], rva(dllOff[i]))
		le.PutUint32(desc[16:], rva(thunkOff[i]))

		slot := thunkOff[i]
		putThunk := func(v uint64) {
			if ptrSize == 8 {
				le.PutUint64(data[slot:], v)
			} else {
				le.PutUint32(data[slot:], uint32(v))
			}
			slot += ptrSize
		}
		for j, fn := range d.Functions {
			putThunk(uint64(rva(nameOff[i][j])))
			copy(data[nameOff[i][j]+2:], fn)
		}
		for _, ord := range d.Ordinals {
			if ptrSize == 8 {
				putThunk(1<<63 | uint64(ord))
			} else {
				putThunk(1<<31 | uint64(ord))
			}
		}

		copy(data[dllOff[i]:], d.Name)
	}

	return data, descSize
}

func align(n, to int) int {
	if n == 0 {
		return to
	}
	return (n + to - 1) / to * to
}

func mustWrite(buf *bytes.Buffer, v any) {
	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		panic(err)
	}
}
