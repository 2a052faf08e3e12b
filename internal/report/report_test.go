package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZacharyZcR/PEImport/internal/catalog"
	"github.com/ZacharyZcR/PEImport/internal/pe"
)

const createFileDesc = "Creates or opens a file, device, or I/O resource and returns a handle."

func sampleImports() []pe.ImportEntry {
	return []pe.ImportEntry{
		{DLL: "kernel32.dll", Function: "CreateFile"},
		{DLL: "kernel32.dll", Function: "Xyz123"},
	}
}

func TestBuildAnnotatesKnownAndUnknown(t *testing.T) {
	rep := Build(sampleImports(), nil, Options{})

	require.Len(t, rep.DLLs, 1)
	dll := rep.DLLs[0]
	assert.Equal(t, "kernel32.dll", dll.Name)
	assert.True(t, dll.Known)
	assert.True(t, dll.System)
	assert.Equal(t, catalog.Default().Summary("kernel32.dll"), dll.Summary)

	require.Len(t, dll.Functions, 2)
	assert.Equal(t, Function{Name: "CreateFile", Description: createFileDesc, Known: true}, dll.Functions[0])
	assert.Equal(t, Function{Name: "Xyz123", Description: catalog.DefaultDescription}, dll.Functions[1])

	assert.False(t, rep.MarkDangerous)
	assert.Empty(t, rep.Dangerous)
}

func TestBuildUnknownDLL(t *testing.T) {
	imports := []pe.ImportEntry{{DLL: "mystery.dll", Function: "DoThing"}}

	rep := Build(imports, nil, Options{})
	require.Len(t, rep.DLLs, 1)
	assert.Equal(t, catalog.DefaultSummary, rep.DLLs[0].Summary)
	assert.False(t, rep.DLLs[0].Known)
	assert.Equal(t, catalog.DefaultDescription, rep.DLLs[0].Functions[0].Description)

	rep = Build(imports, nil, Options{KnownOnly: true})
	assert.Empty(t, rep.DLLs)
}

func TestBuildOrderingAndDedup(t *testing.T) {
	imports := []pe.ImportEntry{
		{DLL: "ws2_32.dll", Function: "send"},
		{DLL: "kernel32.dll", Function: "ReadFile"},
		{DLL: "ws2_32.dll", Function: "Connect"},
		{DLL: "kernel32.dll", Function: "ReadFile"},
		{DLL: "advapi32.dll", Function: "RegOpenKeyExW"},
	}

	rep := Build(imports, nil, Options{})
	var dlls []string
	for _, d := range rep.DLLs {
		dlls = append(dlls, d.Name)
	}
	assert.Equal(t, []string{"advapi32.dll", "kernel32.dll", "ws2_32.dll"}, dlls)

	assert.Len(t, rep.DLLs[1].Functions, 1)
	assert.Equal(t, "Connect", rep.DLLs[2].Functions[0].Name)
	assert.Equal(t, "send", rep.DLLs[2].Functions[1].Name)
	assert.Equal(t, 4, rep.FunctionCount())
}

func TestBuildDangerous(t *testing.T) {
	imports := []pe.ImportEntry{
		{DLL: "kernel32.dll", Function: "VirtualAlloc"},
		{DLL: "kernel32.dll", Function: "GetProcAddress"},
		{DLL: "kernel32.dll", Function: "ReadFile"},
		{DLL: "kernelbase.dll", Function: "GetProcAddress"},
		{DLL: "kernel32.dll", Function: "WriteProcessMemory"},
	}

	t.Run("flag off", func(t *testing.T) {
		rep := Build(imports, nil, Options{})
		for _, dll := range rep.DLLs {
			for _, fn := range dll.Functions {
				assert.False(t, fn.Dangerous, fn.Name)
			}
		}
		assert.Empty(t, rep.Dangerous)
	})

	t.Run("flag on", func(t *testing.T) {
		rep := Build(imports, nil, Options{MarkDangerous: true})
		require.True(t, rep.MarkDangerous)

		marked := map[string]bool{}
		for _, dll := range rep.DLLs {
			for _, fn := range dll.Functions {
				if fn.Dangerous {
					marked[dll.Name+"!"+fn.Name] = true
				}
			}
		}
		assert.Equal(t, map[string]bool{
			"kernel32.dll!GetProcAddress":     true,
			"kernel32.dll!VirtualAlloc":       true,
			"kernel32.dll!WriteProcessMemory": true,
			"kernelbase.dll!GetProcAddress":   true,
		}, marked)

		var names []string
		for _, fn := range rep.Dangerous {
			names = append(names, fn.Name)
			assert.True(t, fn.Dangerous)
		}
		assert.Equal(t, []string{"GetProcAddress", "VirtualAlloc", "WriteProcessMemory"}, names)
		assert.True(t, rep.Dangerous[0].Known)
		assert.Equal(t, catalog.DefaultDescription, rep.Dangerous[2].Description)
	})
}

func TestBuildPadding(t *testing.T) {
	rep := Build(sampleImports(), nil, Options{MinFunctions: 5})
	fns := rep.DLLs[0].Functions
	require.Len(t, fns, 5)
	assert.Equal(t, "CreateFile", fns[0].Name)
	assert.Equal(t, "Xyz123", fns[1].Name)
	for i, fn := range fns[2:] {
		assert.Equal(t, catalog.Placeholder(i+3).Name, fn.Name)
		assert.Equal(t, catalog.DefaultDescription, fn.Description)
		assert.True(t, fn.Placeholder)
	}
	assert.Equal(t, 2, rep.FunctionCount())

	// Padding never truncates.
	rep = Build(sampleImports(), nil, Options{MinFunctions: 1})
	assert.Len(t, rep.DLLs[0].Functions, 2)
}

func TestBuildMaxPerDLL(t *testing.T) {
	imports := []pe.ImportEntry{
		{DLL: "kernel32.dll", Function: "ReadFile"},
		{DLL: "kernel32.dll", Function: "CreateFile"},
		{DLL: "kernel32.dll", Function: "WriteFile"},
	}

	rep := Build(imports, nil, Options{MaxPerDLL: 2})
	dll := rep.DLLs[0]
	require.Len(t, dll.Functions, 2)
	assert.Equal(t, "CreateFile", dll.Functions[0].Name)
	assert.Equal(t, "ReadFile", dll.Functions[1].Name)
	assert.Equal(t, 1, dll.Omitted)
}

func TestBuildPaddingWithMaxPerDLL(t *testing.T) {
	imports := make([]pe.ImportEntry, 0, 8)
	for i := 1; i <= 8; i++ {
		imports = append(imports, pe.ImportEntry{DLL: "kernel32.dll", Function: fmt.Sprintf("a%d", i)})
	}

	t.Run("truncated list is not padded", func(t *testing.T) {
		dll := Build(imports, nil, Options{MinFunctions: 10, MaxPerDLL: 5}).DLLs[0]
		require.Len(t, dll.Functions, 5)
		for i, fn := range dll.Functions {
			assert.Equal(t, fmt.Sprintf("a%d", i+1), fn.Name)
			assert.False(t, fn.Placeholder)
		}
		assert.Equal(t, 3, dll.Omitted)
	})

	t.Run("padding stops at the cap", func(t *testing.T) {
		dll := Build(imports[:2], nil, Options{MinFunctions: 10, MaxPerDLL: 5}).DLLs[0]
		require.Len(t, dll.Functions, 5)
		assert.Equal(t, "a2", dll.Functions[1].Name)
		assert.Equal(t, "placeholder_5", dll.Functions[4].Name)
		assert.Zero(t, dll.Omitted)
	})

	t.Run("text output lists real imports only", func(t *testing.T) {
		rep := Build(imports, nil, Options{MinFunctions: 10, MaxPerDLL: 5})
		out, err := RenderBytes(rep, FormatText)
		require.NoError(t, err)
		assert.Contains(t, string(out), "    a5 : ")
		assert.NotContains(t, string(out), "placeholder_")
		assert.Contains(t, string(out), "... (3 more functions)")
	})
}

func TestBuildWithOverlay(t *testing.T) {
	overlay, err := catalog.ParseOverlay([]byte(`
dlls:
  mystery.dll:
    summary: In-house helper library.
    functions:
      - name: DoThing
        description: Does the thing.
`))
	require.NoError(t, err)

	cat := catalog.Default().Merge(overlay)
	rep := Build([]pe.ImportEntry{{DLL: "Mystery.dll", Function: "DoThing"}}, cat, Options{KnownOnly: true})

	require.Len(t, rep.DLLs, 1)
	assert.Equal(t, "In-house helper library.", rep.DLLs[0].Summary)
	assert.Equal(t, "Does the thing.", rep.DLLs[0].Functions[0].Description)
}

func TestBuildEmpty(t *testing.T) {
	rep := Build(nil, nil, Options{MarkDangerous: true, MinFunctions: 3})
	assert.Empty(t, rep.DLLs)
	assert.Empty(t, rep.Dangerous)
	assert.Zero(t, rep.FunctionCount())
}

func TestWithSource(t *testing.T) {
	rep := Build(sampleImports(), nil, Options{})
	src := Source{Path: "a.exe", Architecture: "x64 (64-bit)"}

	withSrc := rep.WithSource(src)
	assert.Equal(t, src, withSrc.Source)
	assert.Empty(t, rep.Source.Path)
	assert.Equal(t, rep.DLLs, withSrc.DLLs)
}
