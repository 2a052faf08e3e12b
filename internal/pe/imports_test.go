package pe

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ZacharyZcR/PEImport/internal/pe/petest"
)

func openFixture(t *testing.T, img petest.Image) *Reader {
	t.Helper()
	reader, err := Open(petest.WriteFile(t, "fixture.exe", img))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = reader.Close() })
	return reader
}

func TestExtractImports(t *testing.T) {
	dlls := []petest.DLL{
		{Name: "KERNEL32.dll", Functions: []string{"CreateFileW", "Xyz123"}},
		{Name: "WS2_32.dll", Functions: []string{"connect"}, Ordinals: []uint16{17}},
	}
	want := []ImportEntry{
		{DLL: "kernel32.dll", Function: "CreateFileW"},
		{DLL: "kernel32.dll", Function: "Xyz123"},
		{DLL: "ws2_32.dll", Function: "connect"},
		{DLL: "ws2_32.dll", Function: "Ordinal_17"},
	}

	tests := []struct {
		name string
		img  petest.Image
	}{
		{name: "PE32+", img: petest.Image{DLLs: dlls}},
		{name: "PE32", img: petest.Image{Is32Bit: true, DLLs: dlls}},
		{name: "IAT only", img: petest.Image{NoINT: true, DLLs: dlls}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractImports(openFixture(t, tt.img))
			if err != nil {
				t.Fatalf("ExtractImports() error = %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("ExtractImports() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestExtractImportsWithoutImportTable(t *testing.T) {
	tests := []struct {
		name string
		img  petest.Image
	}{
		{name: "no import directory", img: petest.Image{NoImportDirectory: true}},
		{name: "empty descriptor table", img: petest.Image{}},
		{name: "directory outside sections", img: petest.Image{ImportRVA: 0x9000, DLLs: []petest.DLL{{Name: "a.dll", Functions: []string{"f"}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractImports(openFixture(t, tt.img))
			if err != nil {
				t.Fatalf("ExtractImports() error = %v", err)
			}
			if len(got) != 0 {
				t.Errorf("ExtractImports() = %+v, want none", got)
			}
		})
	}
}

func TestSymbolImports(t *testing.T) {
	reader := openFixture(t, petest.Image{DLLs: []petest.DLL{
		{Name: "ADVAPI32.dll", Functions: []string{"RegOpenKeyExW"}, Ordinals: []uint16{3}},
	}})

	got, err := symbolImports(reader.File())
	if err != nil {
		t.Fatalf("symbolImports() error = %v", err)
	}

	// debug/pe skips ordinal imports.
	want := []ImportEntry{{DLL: "advapi32.dll", Function: "RegOpenKeyExW"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("symbolImports() = %+v, want %+v", got, want)
	}
}

func TestGroupImports(t *testing.T) {
	entries := []ImportEntry{
		{DLL: "b.dll", Function: "one"},
		{DLL: "a.dll", Function: "two"},
		{DLL: "b.dll", Function: "three"},
	}
	want := []ImportInfo{
		{DLL: "b.dll", Functions: []string{"one", "three"}},
		{DLL: "a.dll", Functions: []string{"two"}},
	}

	if got := GroupImports(entries); !reflect.DeepEqual(got, want) {
		t.Errorf("GroupImports() = %+v, want %+v", got, want)
	}
	if got := GroupImports(nil); len(got) != 0 {
		t.Errorf("GroupImports(nil) = %+v, want empty", got)
	}
}

func TestNormalizeDLLName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "KERNEL32.dll", want: "kernel32.dll"},
		{in: "  ntdll.DLL ", want: "ntdll.dll"},
		{in: "", want: UnknownDLL},
	}

	for _, tt := range tests {
		if got := normalizeDLLName(tt.in); got != tt.want {
			t.Errorf("normalizeDLLName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	notPE := filepath.Join(dir, "readme.txt")
	if err := os.WriteFile(notPE, []byte("this is not a portable executable"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.exe")},
		{name: "directory", path: dir},
		{name: "not a PE file", path: notPE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := Open(tt.path)
			if err == nil {
				_ = reader.Close()
				t.Fatalf("Open(%q) error = nil, want error", tt.path)
			}
		})
	}
}
